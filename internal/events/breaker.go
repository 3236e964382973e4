package events

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

var ErrCircuitOpen = errors.New("event publisher circuit is open")

type CircuitState int

const (
	StateClosed CircuitState = iota
	StateOpen
	StateHalfOpen
)

func (s CircuitState) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half_open"
	default:
		return "closed"
	}
}

type BreakerConfig struct {
	MaxFailures     int
	ResetTimeout    time.Duration
	HalfOpenMaxSucc int
}

func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		MaxFailures:     5,
		ResetTimeout:    30 * time.Second,
		HalfOpenMaxSucc: 3,
	}
}

// GuardedPublisher stops calling a failing broker for ResetTimeout after
// MaxFailures consecutive errors, then probes it again in half-open state.
type GuardedPublisher struct {
	next   Publisher
	logger *slog.Logger
	now    func() time.Time

	mu                sync.Mutex
	config            BreakerConfig
	state             CircuitState
	failures          int
	halfOpenSuccesses int
	lastFailureTime   time.Time
}

func NewGuardedPublisher(next Publisher, config BreakerConfig, logger *slog.Logger) *GuardedPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &GuardedPublisher{
		next:   next,
		config: config,
		logger: logger,
		now:    time.Now,
		state:  StateClosed,
	}
}

func (g *GuardedPublisher) PublishTransaction(ctx context.Context, event TransactionEvent) error {
	if !g.allow(ctx) {
		return ErrCircuitOpen
	}

	if err := g.next.PublishTransaction(ctx, event); err != nil {
		g.recordFailure(ctx)
		return err
	}

	g.recordSuccess(ctx)
	return nil
}

func (g *GuardedPublisher) Close() error {
	return g.next.Close()
}

// State reports the current breaker state.
func (g *GuardedPublisher) State() CircuitState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

func (g *GuardedPublisher) allow(ctx context.Context) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state == StateOpen && g.now().Sub(g.lastFailureTime) > g.config.ResetTimeout {
		g.transition(ctx, StateHalfOpen)
	}
	return g.state != StateOpen
}

func (g *GuardedPublisher) recordSuccess(ctx context.Context) {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch g.state {
	case StateHalfOpen:
		g.halfOpenSuccesses++
		if g.halfOpenSuccesses >= g.config.HalfOpenMaxSucc {
			g.transition(ctx, StateClosed)
		}
	case StateClosed:
		g.failures = 0
	}
}

func (g *GuardedPublisher) recordFailure(ctx context.Context) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.lastFailureTime = g.now()

	switch g.state {
	case StateHalfOpen:
		g.transition(ctx, StateOpen)
	case StateClosed:
		g.failures++
		if g.failures >= g.config.MaxFailures {
			g.transition(ctx, StateOpen)
		}
	}
}

// transition must be called with mu held.
func (g *GuardedPublisher) transition(ctx context.Context, to CircuitState) {
	from := g.state
	g.state = to
	g.halfOpenSuccesses = 0
	if to == StateClosed {
		g.failures = 0
	}

	g.logger.WarnContext(ctx, "event publisher circuit state change",
		slog.String("old_state", from.String()),
		slog.String("new_state", to.String()))
}
