package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"group-ledger/internal/events"

	"github.com/spf13/cobra"
)

func newEventsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Inspect ledger events on the broker",
	}

	tail := &cobra.Command{
		Use:   "tail",
		Short: "Print ledger events from the queue until interrupted",
		Long: `Consumes the configured AMQP queue and prints each event. Consumed
events are acknowledged, so point this at a dedicated queue in production.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.config()
			if err != nil {
				return err
			}
			amqpCfg := cfg.AMQP
			if amqpCfg.URL == "" {
				return fmt.Errorf("AMQP_URL is not set")
			}

			client, err := events.NewAMQPClient(amqpCfg.URL, amqpCfg.Exchange, amqpCfg.Queue, a.logger)
			if err != nil {
				return err
			}
			defer client.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			err = client.Consume(ctx, func(event *events.TransactionEvent) error {
				return a.print(event, fmt.Sprintf("%s  %-19s group=%s tx=%s amount=%s",
					event.OccurredAt.Format(time.RFC3339), event.Type, event.GroupID, event.TransactionID, event.Amount.StringFixed(2)))
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}

	cmd.AddCommand(tail)
	return cmd
}
