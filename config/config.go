// Package config resolves the process configuration from the environment,
// once, at startup.
package config

import (
	"github.com/caarlos0/env/v6"
	"github.com/pkg/errors"
)

// Config is the full configuration surface of one run.
type Config struct {
	// Platform selects the exchange the balance is read from.
	Platform  string `env:"PLATFORM" envDefault:"binance"`
	APIKey    string `env:"API_KEY,required"`
	APISecret string `env:"API_SECRET,required"`

	// StableAssets is the fixed list of stable-value asset symbols whose
	// free balances are summed.
	StableAssets []string `env:"STABLE_ASSETS" envSeparator:"," envDefault:"BUSD,USDT,USDC"`

	BotToken string `env:"BOT_TOKEN,required"`
	ChatID   int64  `env:"CHAT_ID,required"`

	// DataDir holds the append-only balance log, created on demand.
	DataDir string `env:"DB_DATA_DIR" envDefault:"/data/db"`

	SheetsEnabled      bool   `env:"SHEETS_RECORDING_ENABLED" envDefault:"false"`
	SpreadsheetID      string `env:"STABLECOINS_BALANCE_SPREADSHEET_ID"`
	SpreadsheetName    string `env:"STABLECOINS_SPREADSHEET" envDefault:"Stablecoins"`
	ServiceAccountFile string `env:"SERVICE_ACCOUNT_FILE_PATH" envDefault:"./service.json"`
}

// Get parses and validates the configuration. Any missing required value is
// an error here, before the first external call.
func Get() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse environment")
	}

	switch cfg.Platform {
	case "binance", "bybit":
	default:
		return Config{}, errors.Errorf("unsupported platform %q", cfg.Platform)
	}

	if len(cfg.StableAssets) == 0 {
		return Config{}, errors.New("STABLE_ASSETS must name at least one asset")
	}

	if cfg.SheetsEnabled && cfg.SpreadsheetID == "" {
		return Config{}, errors.New("STABLECOINS_BALANCE_SPREADSHEET_ID must be set when sheets recording is enabled")
	}

	return cfg, nil
}
