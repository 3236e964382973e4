package events

import (
	"context"
	"log/slog"
)

// Publisher delivers ledger events to downstream consumers.
type Publisher interface {
	PublishTransaction(ctx context.Context, event TransactionEvent) error
	Close() error
}

// NoopPublisher logs and discards events. Used when no broker is configured.
type NoopPublisher struct {
	logger *slog.Logger
}

func NewNoopPublisher(logger *slog.Logger) *NoopPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &NoopPublisher{logger: logger}
}

func (p *NoopPublisher) PublishTransaction(ctx context.Context, event TransactionEvent) error {
	p.logger.DebugContext(ctx, "event discarded, no broker configured",
		"type", event.Type,
		"transaction_id", event.TransactionID)
	return nil
}

func (p *NoopPublisher) Close() error {
	return nil
}
