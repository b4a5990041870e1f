// Command stablewatch runs one stablecoin balance measurement pass: it reads
// the summed free balance of the configured stable assets from the exchange
// account, diffs it against the last persisted observation, appends the new
// observation to the balance log, and pushes a notification to Telegram and,
// optionally, a Google Sheets row.
//
// Usage:
//
//	stablewatch (no arguments; scheduling is external)
//
// Required environment variables:
//
//	For the exchange account: API_KEY, API_SECRET
//	For Telegram delivery: BOT_TOKEN, CHAT_ID
package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"stablewatch/config"
	"stablewatch/internal"
	"stablewatch/internal/clients"
	"stablewatch/internal/services/balance"
	"stablewatch/internal/services/notifier"
	"stablewatch/internal/services/spreadsheet"
	"stablewatch/internal/services/tracker"
	"stablewatch/internal/storage/balancelog"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Get()
	if err != nil {
		log.Fatal(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	var source balance.Source
	switch cfg.Platform {
	case "binance":
		source = balance.NewBinanceSource(clients.NewBinanceClient(cfg.APIKey, cfg.APISecret))
	case "bybit":
		source = balance.NewBybitSource(clients.NewBybitClient(cfg.APIKey, cfg.APISecret))
	default:
		log.Fatalf("unsupported platform %q", cfg.Platform)
	}

	store, err := balancelog.NewWALStore(cfg.DataDir)
	if err != nil {
		logger.Fatal("failed to open balance log", zap.Error(err))
	}
	defer store.Close()

	ctx := context.Background()

	var recorder internal.Recorder
	if cfg.SheetsEnabled {
		rec, err := spreadsheet.NewRecorder(ctx, cfg.ServiceAccountFile, cfg.SpreadsheetID, cfg.SpreadsheetName)
		if err != nil {
			logger.Warn("spreadsheet recording unavailable", zap.Error(err))
		} else {
			recorder = rec
		}
	}

	app := internal.NewApp(
		tracker.New(store, balance.NewReader(source, cfg.StableAssets), logger),
		notifier.NewComposer(cfg.ChatID),
		notifier.NewTelegram(cfg.BotToken, logger),
		recorder,
		logger,
	)

	if err := app.Run(ctx); err != nil {
		logger.Fatal("balance tracking cycle failed", zap.Error(err))
	}
}
