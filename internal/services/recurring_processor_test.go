package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"group-ledger/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestRecurringProcessor_SweepUsesClock(t *testing.T) {
	ctrl := gomock.NewController(t)
	recurring := service_mocks.NewMockRecurringServiceInterface(ctrl)
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	recurring.EXPECT().ProcessDue(gomock.Any(), now).Return(3, nil)

	p := NewRecurringProcessor(recurring, time.Hour, discardLogger())
	p.now = func() time.Time { return now }

	assert.Equal(t, 3, p.Sweep(context.Background()))
}

func TestRecurringProcessor_SweepErrorIsLogged(t *testing.T) {
	ctrl := gomock.NewController(t)
	recurring := service_mocks.NewMockRecurringServiceInterface(ctrl)
	recurring.EXPECT().ProcessDue(gomock.Any(), gomock.Any()).Return(1, errors.New("db gone"))

	p := NewRecurringProcessor(recurring, time.Hour, discardLogger())

	assert.Equal(t, 1, p.Sweep(context.Background()))
}

func TestRecurringProcessor_SkipsOverlappingSweep(t *testing.T) {
	ctrl := gomock.NewController(t)
	recurring := service_mocks.NewMockRecurringServiceInterface(ctrl)
	p := NewRecurringProcessor(recurring, time.Hour, discardLogger())

	p.running.Store(true)

	assert.Zero(t, p.Sweep(context.Background()))
}

func TestRecurringProcessor_StartStopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	recurring := service_mocks.NewMockRecurringServiceInterface(ctrl)
	ctx, cancel := context.WithCancel(context.Background())

	swept := make(chan struct{})
	recurring.EXPECT().ProcessDue(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, time.Time) (int, error) {
		close(swept)
		return 0, nil
	})

	p := NewRecurringProcessor(recurring, time.Hour, discardLogger())
	done := make(chan struct{})
	go func() {
		p.Start(ctx)
		close(done)
	}()

	<-swept
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("processor did not stop")
	}
}

func TestRecurringProcessor_DefaultInterval(t *testing.T) {
	p := NewRecurringProcessor(nil, 0, discardLogger())
	assert.Equal(t, DefaultRecurringInterval, p.interval)
}
