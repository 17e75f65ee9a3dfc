package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"finmind/internal/amqp"
	"finmind/internal/backend"
	"finmind/internal/config"
	"finmind/internal/export"
	"finmind/internal/worker"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	// Setup structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	logger.Info("Starting reminder-worker")

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}
	if cfg.AMQPURL == "" {
		logger.Error("AMQP_URL is required for the reminder worker")
		os.Exit(1)
	}

	be, err := backend.New(cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize data backend", "error", err, "backend", cfg.DataBackend)
		os.Exit(1)
	}
	if be.Cleanup != nil {
		defer be.Cleanup()
	}

	amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to initialize AMQP client", "error", err)
		os.Exit(1)
	}
	defer amqpClient.Close()

	// Google Sheets export is optional; without a spreadsheet id consumed
	// reminders are only logged.
	var exporter *export.SheetsExporter
	if cfg.GoogleSpreadsheetID != "" {
		exporter, err = export.NewFromEnv(context.Background(), cfg.GoogleSpreadsheetID, cfg.GoogleSheetName)
		if err != nil {
			logger.Error("Failed to initialize Sheets exporter", "error", err)
			os.Exit(1)
		}
		logger.Info("Sheets export enabled",
			"spreadsheet_id", cfg.GoogleSpreadsheetID,
			"sheet", cfg.GoogleSheetName)
	} else {
		logger.Info("Sheets export disabled - no GOOGLE_SPREADSHEET_ID provided")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reminderWorker := worker.NewReminderWorker(be.Store, amqpClient)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return reminderWorker.Run(ctx, cfg.ScanInterval)
	})

	g.Go(func() error {
		return amqpClient.ConsumeReminders(ctx, func(msg *amqp.ReminderMessage) error {
			slog.Info("Reminder due",
				"item_id", msg.ItemID,
				"name", msg.Name,
				"amount", msg.Amount.String(),
				"due_date", msg.DueDate,
				"state", msg.State,
				"days", msg.Days)

			if exporter != nil {
				return exporter.AppendReminder(ctx, msg)
			}
			return nil
		})
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Worker stopped with error", "error", err)
		os.Exit(1)
	}

	logger.Info("Worker stopped gracefully")
}
