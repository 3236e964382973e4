package cli

import (
	"fmt"

	"group-ledger/internal/database"

	"github.com/spf13/cobra"
)

func newMigrateCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage SQL schema migrations",
	}

	up := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withMigrator(func(r *database.MigrationRunner) error {
				if err := r.WaitForDatabase(cmd.Context()); err != nil {
					return err
				}
				if err := r.Up(); err != nil {
					return err
				}
				return a.printMigrationStatus(r)
			})
		},
	}

	var steps int
	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if steps <= 0 {
				return fmt.Errorf("--steps must be positive")
			}
			return a.withMigrator(func(r *database.MigrationRunner) error {
				if err := r.Down(steps); err != nil {
					return err
				}
				return a.printMigrationStatus(r)
			})
		},
	}
	down.Flags().IntVar(&steps, "steps", 1, "Number of migrations to roll back")

	status := &cobra.Command{
		Use:   "status",
		Short: "Show the applied migration version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withMigrator(a.printMigrationStatus)
		},
	}

	cmd.AddCommand(up, down, status)
	return cmd
}

func (a *app) withMigrator(fn func(*database.MigrationRunner) error) error {
	cfg, err := a.config()
	if err != nil {
		return err
	}
	db, err := a.openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("getting sql.DB: %w", err)
	}
	return fn(database.NewMigrationRunner(sqlDB, &cfg.Database))
}

func (a *app) printMigrationStatus(r *database.MigrationRunner) error {
	status, err := r.Status()
	if err != nil {
		return fmt.Errorf("reading migration status: %w", err)
	}
	line := fmt.Sprintf("version %d", status.Version)
	if status.Dirty {
		line += " (dirty)"
	}
	return a.print(status, line)
}
