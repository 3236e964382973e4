package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"group-ledger/internal/config"
	"group-ledger/internal/database"
	"group-ledger/internal/logging"
	"group-ledger/internal/server"
	"group-ledger/internal/services"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// .env is optional outside local development
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	logger := logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	if err := run(cfg, logger); err != nil {
		logger.Error("api exited with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Initialize(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	publisher, breaker := server.NewPublisher(cfg, logger)
	defer publisher.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	svc := server.NewServices(cfg, db.DB, publisher, services.NewPrometheusMetrics(reg), logger)
	srv := server.New(cfg, db.DB, svc, breaker, reg, logger)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return srv.Run(ctx, shutdownTimeout)
	})

	if cfg.Recurring.ProcessorEnabled {
		processor := services.NewRecurringProcessor(svc.Recurring, cfg.Recurring.Interval, logger)
		g.Go(func() error {
			processor.Start(ctx)
			return nil
		})
	} else {
		logger.Info("recurring processor disabled; obligations run only on explicit execute")
	}

	err = g.Wait()
	logger.Info("api stopped")
	return err
}
