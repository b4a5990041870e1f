package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("API_KEY", "k")
	t.Setenv("API_SECRET", "s")
	t.Setenv("BOT_TOKEN", "token")
	t.Setenv("CHAT_ID", "42")
}

func TestGetDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Get()
	require.NoError(t, err)

	assert.Equal(t, "binance", cfg.Platform)
	assert.Equal(t, []string{"BUSD", "USDT", "USDC"}, cfg.StableAssets)
	assert.Equal(t, "/data/db", cfg.DataDir)
	assert.Equal(t, int64(42), cfg.ChatID)
	assert.False(t, cfg.SheetsEnabled)
}

func TestGetMissingCredentials(t *testing.T) {
	t.Setenv("API_KEY", "k")

	_, err := Get()
	require.Error(t, err)
}

func TestGetUnsupportedPlatform(t *testing.T) {
	setRequired(t)
	t.Setenv("PLATFORM", "kraken")

	_, err := Get()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kraken")
}

func TestGetSheetsFlagTruthyValues(t *testing.T) {
	for _, v := range []string{"true", "TRUE", "1"} {
		t.Run(v, func(t *testing.T) {
			setRequired(t)
			t.Setenv("SHEETS_RECORDING_ENABLED", v)
			t.Setenv("STABLECOINS_BALANCE_SPREADSHEET_ID", "sheet-id")

			cfg, err := Get()
			require.NoError(t, err)
			assert.True(t, cfg.SheetsEnabled)
		})
	}
}

func TestGetSheetsEnabledRequiresSpreadsheetID(t *testing.T) {
	setRequired(t)
	t.Setenv("SHEETS_RECORDING_ENABLED", "1")

	_, err := Get()
	require.Error(t, err)
}
