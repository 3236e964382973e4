package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadata_With(t *testing.T) {
	var m Metadata
	m = m.With("reason", "invalid_password").With("attempt", 3)

	assert.Equal(t, Metadata{"reason": "invalid_password", "attempt": 3}, m)
	assert.Equal(t, "invalid_password", m.String("reason"))
	assert.Empty(t, m.String("attempt"))
	assert.Empty(t, m.String("missing"))
}

func TestMetadata_ValueScan(t *testing.T) {
	stored, err := Metadata{"role": "editor", "count": 2}.Value()
	require.NoError(t, err)
	assert.JSONEq(t, `{"role":"editor","count":2}`, stored.(string))

	for name, src := range map[string]any{"text": stored, "bytes": []byte(stored.(string))} {
		t.Run(name, func(t *testing.T) {
			var m Metadata
			require.NoError(t, m.Scan(src))
			assert.Equal(t, "editor", m.String("role"))
			assert.Equal(t, float64(2), m["count"])
		})
	}
}

func TestMetadata_Empty(t *testing.T) {
	v, err := Metadata{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	m := Metadata{"stale": true}
	require.NoError(t, m.Scan(nil))
	assert.Nil(t, m)

	m = Metadata{"stale": true}
	require.NoError(t, m.Scan(""))
	assert.Nil(t, m)
}

func TestMetadata_ScanRejects(t *testing.T) {
	var m Metadata
	assert.ErrorContains(t, m.Scan(42), "unsupported type int")
	assert.ErrorContains(t, m.Scan(`{"broken"`), "decoding audit metadata")
}

func TestAuditLog_BeforeCreate(t *testing.T) {
	l := &AuditLog{Action: AuditActionLogin}
	require.NoError(t, l.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, l.ID)
	assert.WithinDuration(t, time.Now(), l.CreatedAt, time.Minute)

	id := uuid.New()
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l = &AuditLog{ID: id, CreatedAt: at}
	require.NoError(t, l.BeforeCreate(nil))
	assert.Equal(t, id, l.ID)
	assert.Equal(t, at, l.CreatedAt)

	l.SetMetadata("trace_id", "abc")
	assert.Equal(t, "abc", l.Metadata.String("trace_id"))
}
