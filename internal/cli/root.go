// Package cli implements ledgerctl, the operator command line for a
// group-ledger deployment.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"group-ledger/internal/config"
	"group-ledger/internal/database"
	"group-ledger/internal/events"
	"group-ledger/internal/logging"
	"group-ledger/internal/server"
	"group-ledger/internal/services"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	out      io.Writer
	jsonOut  bool
	now      func() time.Time
	loadConf func() (*config.Config, error)
}

// NewRootCommand builds the ledgerctl command tree.
func NewRootCommand() *cobra.Command {
	a := &app{now: time.Now, loadConf: config.Load}

	root := &cobra.Command{
		Use:   "ledgerctl",
		Short: "Operate a group-ledger deployment",
		Long: `ledgerctl runs maintenance tasks against the ledger database and broker.

Examples:
  ledgerctl migrate up                     Apply pending SQL migrations
  ledgerctl process-recurring              Execute every due recurring obligation
  ledgerctl regenerate-invite-key <group>  Rotate a group's invite key
  ledgerctl next-occurrence --frequency monthly --start 2024-01-31`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()
			a.out = cmd.OutOrStdout()
			a.logger = logging.New(cmd.ErrOrStderr(), logging.ParseLevel(os.Getenv("LOG_LEVEL")), os.Getenv("LOG_FORMAT"))
			slog.SetDefault(a.logger)
			return nil
		},
	}
	root.PersistentFlags().BoolVar(&a.jsonOut, "json", false, "Output as JSON")

	root.AddCommand(
		newMigrateCommand(a),
		newProcessRecurringCommand(a),
		newRegenerateInviteKeyCommand(a),
		newNextOccurrenceCommand(a),
		newCleanupTokensCommand(a),
		newPruneAuditCommand(a),
		newEventsCommand(a),
	)
	return root
}

// Execute runs ledgerctl with os.Args.
func Execute() error {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

// config loads the environment configuration on first use so commands that
// never touch the database do not need it.
func (a *app) config() (*config.Config, error) {
	if a.cfg == nil {
		cfg, err := a.loadConf()
		if err != nil {
			return nil, fmt.Errorf("loading configuration: %w", err)
		}
		a.cfg = cfg
	}
	return a.cfg, nil
}

func (a *app) openDB() (*database.DB, error) {
	cfg, err := a.config()
	if err != nil {
		return nil, err
	}
	db, err := database.New(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	return db, nil
}

// withServices opens the database and hands fn the same service graph the
// api builds. Events go to the broker only when publish is set.
func (a *app) withServices(publish bool, fn func(*server.Services) error) error {
	cfg, err := a.config()
	if err != nil {
		return err
	}
	db, err := a.openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	var publisher events.Publisher = events.NewNoopPublisher(a.logger)
	if publish {
		publisher, _ = server.NewPublisher(cfg, a.logger)
	}
	defer publisher.Close()

	return fn(server.NewServices(cfg, db.DB, publisher, services.NoopMetrics{}, a.logger))
}

// print writes v as indented JSON with --json, otherwise the text lines.
func (a *app) print(v any, lines ...string) error {
	if a.jsonOut {
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(a.out, line); err != nil {
			return err
		}
	}
	return nil
}
