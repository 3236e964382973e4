package services

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"group-ledger/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureAuditLog(t *testing.T, emit func(AuditLoggerInterface)) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	emit(NewAuditLogger(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestAuditLogger_CarriesTraceID(t *testing.T) {
	groupID, userID := uuid.New(), uuid.New()
	ctx := WithTraceID(context.Background(), "trace-42")

	entry := captureAuditLog(t, func(l AuditLoggerInterface) {
		l.LogMembershipChanged(ctx, groupID, userID, "joined", models.GroupRoleViewer)
	})

	assert.Equal(t, "membership changed", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "membership_changed", entry["event_type"])
	assert.Equal(t, "trace-42", entry["correlation_id"])
	assert.Equal(t, groupID.String(), entry["group_id"])
	assert.Equal(t, "viewer", entry["role"])
}

func TestAuditLogger_Levels(t *testing.T) {
	tests := []struct {
		name      string
		emit      func(AuditLoggerInterface)
		wantLevel string
		wantEvent string
	}{
		{
			name:      "denied access warns",
			emit:      func(l AuditLoggerInterface) { l.LogAuthorizationDenied(context.Background(), uuid.New(), uuid.New(), "viewer") },
			wantLevel: "WARN",
			wantEvent: "authorization_denied",
		},
		{
			name: "recurring execution is info",
			emit: func(l AuditLoggerInterface) {
				l.LogRecurringExecuted(context.Background(), uuid.New(), uuid.New(), time.Now(), 12)
			},
			wantLevel: "INFO",
			wantEvent: "recurring_executed",
		},
		{
			name:      "publish failure warns",
			emit:      func(l AuditLoggerInterface) { l.LogEventPublishFailed(context.Background(), "created", uuid.New(), "closed") },
			wantLevel: "WARN",
			wantEvent: "event_publish_failed",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := captureAuditLog(t, tt.emit)
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, tt.wantEvent, entry["event_type"])
			assert.Equal(t, "", entry["correlation_id"])
		})
	}
}

func TestWithTraceID_IgnoresEmpty(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, ctx, WithTraceID(ctx, ""))
}
