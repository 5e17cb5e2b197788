package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CanslimScanner/internal/model"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "data/stocks.json", cfg.Output.Path)
	assert.Equal(t, 50, cfg.Output.TopN)
	assert.Equal(t, 15, cfg.Output.ConsoleTop)
	assert.Equal(t, 4, cfg.Fetch.Workers)
	assert.Equal(t, 100*time.Millisecond, cfg.Fetch.PriceDelay)
	assert.Equal(t, 150*time.Millisecond, cfg.Fetch.EarningsDelay)
	assert.Equal(t, 250*time.Millisecond, cfg.Fetch.SnapshotDelay)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Schedule.Cron)
	require.NoError(t, cfg.Validate())
}

func TestLoad_YAMLAndEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
output:
  path: out/a.json
  top_n: 10
fetch:
  workers: 2
  price_delay: 50ms
universe:
  - symbol: ABC
    name: Abc Corp
    sector: Technology
    industry: Software
`)
	t.Setenv("SCANNER_CRON", "0 30 6 * * 1-5")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "out/a.json", cfg.Output.Path)
	assert.Equal(t, 10, cfg.Output.TopN)
	assert.Equal(t, 2, cfg.Fetch.Workers)
	assert.Equal(t, 50*time.Millisecond, cfg.Fetch.PriceDelay)
	assert.Equal(t, "0 30 6 * * 1-5", cfg.Schedule.Cron)
	assert.Equal(t, "debug", cfg.Log.Level)
	require.Len(t, cfg.Universe, 1)
	assert.Equal(t, "ABC", cfg.Universe[0].Symbol)
	require.NoError(t, cfg.Validate())
}

func TestLoad_ExplicitZeroValuesKept(t *testing.T) {
	path := writeConfig(t, `
output:
  console_top: 0
fetch:
  price_delay: 0s
  earnings_delay: 0s
  snapshot_delay: 0s
telegram:
  top: 0
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Zero(t, cfg.Output.ConsoleTop)
	assert.Zero(t, cfg.Fetch.PriceDelay)
	assert.Zero(t, cfg.Fetch.EarningsDelay)
	assert.Zero(t, cfg.Fetch.SnapshotDelay)
	assert.Zero(t, cfg.Telegram.Top)
	// Keys absent from the file still get defaults.
	assert.Equal(t, 50, cfg.Output.TopN)
	assert.Equal(t, 4, cfg.Fetch.Workers)
	require.NoError(t, cfg.Validate())
}

func TestLoad_TelegramFromEnv(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("TELEGRAM_CHAT_ID", "-1001")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "123:abc", cfg.Telegram.BotToken)
	assert.Equal(t, "-1001", cfg.Telegram.ChatID)
	assert.Equal(t, 10, cfg.Telegram.Top)
	require.NoError(t, cfg.Validate())
}

func TestLoad_BadWorkersEnv(t *testing.T) {
	t.Setenv("SCANNER_WORKERS", "many")
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad cron", func(c *Config) { c.Schedule.Cron = "every day" }},
		{"bad log level", func(c *Config) { c.Log.Level = "verbose" }},
		{"too many workers", func(c *Config) { c.Fetch.Workers = 100 }},
		{"bad url", func(c *Config) { c.Sources.ChartURL = "not a url" }},
		{"telegram token without chat", func(c *Config) { c.Telegram.BotToken = "123:abc"; c.Telegram.ChatID = "" }},
		{"universe entry without sector", func(c *Config) { c.Universe = append(c.Universe, model.SymbolEntry{Symbol: "ZZZ"}) }},
		{"duplicate universe symbol", func(c *Config) {
			c.Universe = []model.SymbolEntry{
				{Symbol: "NVDA", Sector: "Technology"},
				{Symbol: "MSFT", Sector: "Technology"},
				{Symbol: "NVDA", Sector: "Technology"},
			}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
			require.NoError(t, err)
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
