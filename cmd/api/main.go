package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/smdp2000/Banking-Ledger-System/internal/adapter/handler"
	"github.com/smdp2000/Banking-Ledger-System/internal/adapter/middleware"
	"github.com/smdp2000/Banking-Ledger-System/internal/adapter/storage"
	"github.com/smdp2000/Banking-Ledger-System/internal/core/config"
	"github.com/smdp2000/Banking-Ledger-System/internal/core/ledger"
	"github.com/smdp2000/Banking-Ledger-System/internal/core/rates"
	"github.com/smdp2000/Banking-Ledger-System/internal/core/worker"
)

func main() {
	// 1. Load Config
	cfg := config.LoadConfig()

	// 2. Setup Logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// 3. Build Stores & Core
	eventLog := storage.NewEventLog()
	snapshots := storage.NewSnapshotStore()
	table := rates.NewTable()

	projector := ledger.NewProjector(eventLog, snapshots, table, cfg.BaseCurrency)
	processor := ledger.NewProcessor(eventLog, snapshots, projector, cfg.BaseCurrency)

	transactionHandler := &handler.TransactionHandler{Processor: processor}
	balanceHandler := &handler.BalanceHandler{Processor: processor, BaseCurrency: cfg.BaseCurrency}

	// 4. Start the Rate Refresher
	rateClient := rates.NewClient(cfg.RateAPIURL, cfg.RateAPIKey, cfg.BaseCurrency)
	refresher := worker.StartRateRefresher(table, rateClient, cfg.RateRefreshInterval)

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	app.Use(cors.New())

	// 6. Routes
	idempotency := middleware.NewIdempotencyStore()

	app.Get("/ping", handler.Ping)
	app.Put("/load", middleware.Idempotency(idempotency), transactionHandler.Load)
	app.Put("/authorization", middleware.Idempotency(idempotency), transactionHandler.Authorize)
	app.Get("/events/:accountId", transactionHandler.GetEvents)
	app.Get("/balance/:accountId", balanceHandler.GetBalance)

	// Create a channel to listen for OS signals (Ctrl+C, Docker Stop)
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Run Server in a separate Goroutine so it doesn't block
	go func() {
		slog.Info("🚀 Server starting", "env", cfg.Env, "port", cfg.Port, "base_currency", cfg.BaseCurrency)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("Server forced to shutdown", "error", err)
		}
	}()

	// Block here until we receive a stop signal
	<-stop
	slog.Info("🛑 Shutting down server...")

	// Stop the background refresher before the server goes away
	refresher.Stop()
	slog.Info("✅ Rate refresher stopped")

	// Tell Fiber to stop accepting new requests and finish active ones
	if err := app.Shutdown(); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}

	slog.Info("👋 Server exited successfully")
}
