package services

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"
)

const DefaultRecurringInterval = time.Minute

// RecurringProcessor periodically executes due recurring obligations. It is
// an optional trigger; Execute stays idempotent without it.
type RecurringProcessor struct {
	recurring RecurringServiceInterface
	interval  time.Duration
	running   atomic.Bool
	now       func() time.Time
	logger    *slog.Logger
}

func NewRecurringProcessor(recurring RecurringServiceInterface, interval time.Duration, logger *slog.Logger) *RecurringProcessor {
	if interval <= 0 {
		interval = DefaultRecurringInterval
	}
	return &RecurringProcessor{
		recurring: recurring,
		interval:  interval,
		now:       time.Now,
		logger:    logger,
	}
}

// Start blocks until ctx is cancelled, sweeping once immediately and then on
// every tick.
func (p *RecurringProcessor) Start(ctx context.Context) {
	p.logger.Info("starting recurring processor",
		slog.Duration("interval", p.interval),
	)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.Sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("recurring processor stopped")
			return
		case <-ticker.C:
			p.Sweep(ctx)
		}
	}
}

// Sweep runs one ProcessDue pass. A sweep still in progress is not
// overlapped.
func (p *RecurringProcessor) Sweep(ctx context.Context) int {
	if !p.running.CompareAndSwap(false, true) {
		p.logger.Warn("previous recurring sweep still running, skipping tick")
		return 0
	}
	defer p.running.Store(false)

	executed, err := p.recurring.ProcessDue(ctx, p.now().UTC())
	if err != nil && ctx.Err() == nil {
		p.logger.Error("recurring sweep failed",
			slog.String("error", err.Error()),
		)
	}
	return executed
}
