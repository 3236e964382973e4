package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPublisher struct {
	err   error
	calls int
}

func (p *stubPublisher) PublishTransaction(ctx context.Context, event TransactionEvent) error {
	p.calls++
	return p.err
}

func (p *stubPublisher) Close() error { return nil }

func testEvent() TransactionEvent {
	return TransactionEvent{
		Type:          EventTransactionCreated,
		GroupID:       uuid.New(),
		TransactionID: uuid.New(),
		Amount:        decimal.NewFromInt(10),
		OccurredAt:    time.Now(),
	}
}

func TestGuardedPublisher_OpensAfterMaxFailures(t *testing.T) {
	stub := &stubPublisher{err: errors.New("broker down")}
	g := NewGuardedPublisher(stub, BreakerConfig{MaxFailures: 2, ResetTimeout: time.Minute, HalfOpenMaxSucc: 1}, nil)
	ctx := context.Background()

	assert.Error(t, g.PublishTransaction(ctx, testEvent()))
	assert.Equal(t, StateClosed, g.State())
	assert.Error(t, g.PublishTransaction(ctx, testEvent()))
	assert.Equal(t, StateOpen, g.State())

	err := g.PublishTransaction(ctx, testEvent())
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.Equal(t, 2, stub.calls)
}

func TestGuardedPublisher_HalfOpenRecovers(t *testing.T) {
	stub := &stubPublisher{err: errors.New("broker down")}
	g := NewGuardedPublisher(stub, BreakerConfig{MaxFailures: 1, ResetTimeout: time.Minute, HalfOpenMaxSucc: 2}, nil)
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	g.now = func() time.Time { return clock }
	ctx := context.Background()

	require.Error(t, g.PublishTransaction(ctx, testEvent()))
	require.Equal(t, StateOpen, g.State())

	clock = clock.Add(2 * time.Minute)
	stub.err = nil

	require.NoError(t, g.PublishTransaction(ctx, testEvent()))
	assert.Equal(t, StateHalfOpen, g.State())
	require.NoError(t, g.PublishTransaction(ctx, testEvent()))
	assert.Equal(t, StateClosed, g.State())
}

func TestGuardedPublisher_HalfOpenFailureReopens(t *testing.T) {
	stub := &stubPublisher{err: errors.New("broker down")}
	g := NewGuardedPublisher(stub, BreakerConfig{MaxFailures: 1, ResetTimeout: time.Second, HalfOpenMaxSucc: 1}, nil)
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	g.now = func() time.Time { return clock }
	ctx := context.Background()

	require.Error(t, g.PublishTransaction(ctx, testEvent()))
	clock = clock.Add(2 * time.Second)

	require.Error(t, g.PublishTransaction(ctx, testEvent()))
	assert.Equal(t, StateOpen, g.State())
	assert.ErrorIs(t, g.PublishTransaction(ctx, testEvent()), ErrCircuitOpen)
}

func TestTransactionEventFromJSON(t *testing.T) {
	event := testEvent()
	body, err := event.ToJSON()
	require.NoError(t, err)

	decoded, err := TransactionEventFromJSON(body)
	require.NoError(t, err)
	assert.Equal(t, event.TransactionID, decoded.TransactionID)
	assert.True(t, event.Amount.Equal(decoded.Amount))

	_, err = TransactionEventFromJSON([]byte("{not json"))
	assert.Error(t, err)
}

func TestNoopPublisher(t *testing.T) {
	p := NewNoopPublisher(nil)
	assert.NoError(t, p.PublishTransaction(context.Background(), testEvent()))
	assert.NoError(t, p.Close())
}
