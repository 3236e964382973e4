package server

import (
	"log/slog"

	"group-ledger/internal/config"
	"group-ledger/internal/events"
	"group-ledger/internal/handlers"
)

// NewPublisher connects to the broker when AMQP_URL is set and guards it with
// a circuit breaker. A broker that cannot be reached at startup leaves the
// process running without events. The returned BreakerState is nil when
// events are disabled.
func NewPublisher(cfg *config.Config, logger *slog.Logger) (events.Publisher, handlers.BreakerState) {
	if cfg.AMQP.URL == "" {
		logger.Info("AMQP disabled; transaction events are dropped")
		return events.NewNoopPublisher(logger), nil
	}

	client, err := events.NewAMQPClient(cfg.AMQP.URL, cfg.AMQP.Exchange, cfg.AMQP.Queue, logger)
	if err != nil {
		logger.Warn("failed to connect to AMQP broker, continuing without events", "error", err)
		return events.NewNoopPublisher(logger), nil
	}

	logger.Info("AMQP publisher ready", "exchange", cfg.AMQP.Exchange, "queue", cfg.AMQP.Queue)
	guarded := events.NewGuardedPublisher(client, events.DefaultBreakerConfig(), logger)
	return guarded, guarded
}
