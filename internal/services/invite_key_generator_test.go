package services

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var inviteKeyPattern = regexp.MustCompile(`^[0-9A-Z]{8}$`)

// countingMetrics records counter increments by metric name.
type countingMetrics struct {
	mu       sync.Mutex
	counters map[string]int
	gauges   map[string]float64
}

func newCountingMetrics() *countingMetrics {
	return &countingMetrics{counters: map[string]int{}, gauges: map[string]float64{}}
}

func (m *countingMetrics) IncrementCounter(name string, tags map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters[name]++
}

func (m *countingMetrics) RecordProcessingTime(name string, duration time.Duration) {}

func (m *countingMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gauges[name] = value
}

func (m *countingMetrics) count(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counters[name]
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// keyBlock encodes key as the 16 random bytes randomKey consumes per draw.
func keyBlock(key string) []byte {
	block := make([]byte, InviteKeyLength*2)
	for i, c := range key {
		block[i] = byte(strings.IndexRune(inviteKeyAlphabet, c))
	}
	return block
}

func seededGenerator(maxAttempts int, metrics MetricsRecorderInterface, keys ...string) *InviteKeyGenerator {
	var random bytes.Buffer
	for _, k := range keys {
		random.Write(keyBlock(k))
	}
	return newInviteKeyGenerator(maxAttempts, &random, NewAuditLogger(discardLogger()), metrics)
}

func TestInviteKeyGenerator_RetriesOnSeededCollision(t *testing.T) {
	metrics := newCountingMetrics()
	existing := map[string]bool{"AAAAAAAA": true}
	gen := seededGenerator(20, metrics, "AAAAAAAA", "K7Q2ZZ09")

	lookups := 0
	key, err := gen.Generate(func(k string) (bool, error) {
		lookups++
		return existing[k], nil
	})

	require.NoError(t, err)
	assert.Equal(t, "K7Q2ZZ09", key)
	assert.False(t, existing[key])
	assert.Equal(t, 2, lookups)
	assert.Equal(t, 1, metrics.count(MetricInviteKeyCollision))
	assert.Zero(t, metrics.count(MetricInviteKeyExhausted))
}

func TestInviteKeyGenerator_Exhausted(t *testing.T) {
	metrics := newCountingMetrics()
	gen := seededGenerator(3, metrics, "AAAAAAAA", "BBBBBBBB", "CCCCCCCC")

	lookups := 0
	key, err := gen.Generate(func(string) (bool, error) {
		lookups++
		return true, nil
	})

	assert.ErrorIs(t, err, ErrKeyGenerationExhausted)
	assert.Empty(t, key)
	assert.Equal(t, 3, lookups)
	assert.Equal(t, 3, metrics.count(MetricInviteKeyCollision))
	assert.Equal(t, 1, metrics.count(MetricInviteKeyExhausted))
}

func TestInviteKeyGenerator_RejectsBiasedBytes(t *testing.T) {
	random := []byte{252, 253, 254, 255, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
	gen := newInviteKeyGenerator(1, bytes.NewReader(random), NewAuditLogger(discardLogger()), NoopMetrics{})

	key, err := gen.Generate(func(string) (bool, error) { return false, nil })

	require.NoError(t, err)
	assert.Equal(t, "01234567", key)
}

func TestInviteKeyGenerator_LookupErrorStops(t *testing.T) {
	gen := seededGenerator(5, NoopMetrics{}, "AAAAAAAA")
	boom := errors.New("database unavailable")

	_, err := gen.Generate(func(string) (bool, error) { return false, boom })

	assert.ErrorIs(t, err, boom)
}

func TestInviteKeyGenerator_RandomSourceFailure(t *testing.T) {
	gen := newInviteKeyGenerator(5, bytes.NewReader([]byte{1, 2, 3}), NewAuditLogger(discardLogger()), NoopMetrics{})

	_, err := gen.Generate(func(string) (bool, error) { return false, nil })

	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestInviteKeyGenerator_DefaultAttempts(t *testing.T) {
	gen := NewInviteKeyGenerator(0, NewAuditLogger(discardLogger()), NoopMetrics{})
	assert.Equal(t, DefaultInviteKeyAttempts, gen.MaxAttempts())

	gen = NewInviteKeyGenerator(-4, NewAuditLogger(discardLogger()), NoopMetrics{})
	assert.Equal(t, DefaultInviteKeyAttempts, gen.MaxAttempts())
}

func TestInviteKeyGenerator_CryptoKeysMatchAlphabet(t *testing.T) {
	gen := NewInviteKeyGenerator(DefaultInviteKeyAttempts, NewAuditLogger(discardLogger()), NoopMetrics{})
	seen := map[string]bool{}

	for i := 0; i < 200; i++ {
		key, err := gen.Generate(func(k string) (bool, error) { return seen[k], nil })
		require.NoError(t, err)
		assert.Regexp(t, inviteKeyPattern, key)
		assert.False(t, seen[key])
		seen[key] = true
	}
}
