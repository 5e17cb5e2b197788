package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"

	"CanslimScanner/internal/model"
)

const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// Config holds all application configuration.
type Config struct {
	Output struct {
		Path       string `yaml:"path" validate:"required"`
		TopN       int    `yaml:"top_n" validate:"gt=0"`
		ConsoleTop int    `yaml:"console_top" validate:"gte=0"`
	} `yaml:"output"`
	Fetch struct {
		Workers       int           `yaml:"workers" validate:"gte=1,lte=32"`
		Timeout       time.Duration `yaml:"timeout" validate:"gt=0"`
		UserAgent     string        `yaml:"user_agent" validate:"required"`
		PriceDelay    time.Duration `yaml:"price_delay" validate:"gte=0"`
		EarningsDelay time.Duration `yaml:"earnings_delay" validate:"gte=0"`
		SnapshotDelay time.Duration `yaml:"snapshot_delay" validate:"gte=0"`
	} `yaml:"fetch"`
	Sources struct {
		ChartURL    string `yaml:"chart_url" validate:"required,url"`
		QuoteURL    string `yaml:"quote_url" validate:"required,url"`
		SummaryURL  string `yaml:"summary_url" validate:"required,url"`
		SnapshotURL string `yaml:"snapshot_url" validate:"required,url"`
	} `yaml:"sources"`
	Schedule struct {
		Cron       string `yaml:"cron"`
		RunOnStart bool   `yaml:"run_on_start"`
	} `yaml:"schedule"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id" validate:"required_with=BotToken"`
		Top      int    `yaml:"top" validate:"gte=0"`
	} `yaml:"telegram"`
	Log struct {
		Level string `yaml:"level" validate:"oneof=debug info warn error"`
	} `yaml:"log"`
	Universe []model.SymbolEntry `yaml:"universe" validate:"unique=Symbol,dive"`
	Proxy    string              `yaml:"proxy"`
}

// Load starts from defaults, reads config from a YAML file over them, then
// applies .env and environment variable overrides. Keys present in the file
// win over defaults even when their value is zero.
func Load(path string) (*Config, error) {
	cfg := defaults()

	// .env is optional; real environment variables win over it.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("SCANNER_OUTPUT"); v != "" {
		cfg.Output.Path = v
	}
	if v := os.Getenv("SCANNER_CRON"); v != "" {
		cfg.Schedule.Cron = v
	}
	if v := os.Getenv("SCANNER_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("SCANNER_WORKERS: %w", err)
		}
		cfg.Fetch.Workers = n
	}
	if v := os.Getenv("RUN_ON_START"); v != "" {
		cfg.Schedule.RunOnStart = v == "true"
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	return cfg, nil
}

func defaults() *Config {
	cfg := &Config{}
	cfg.Output.Path = "data/stocks.json"
	cfg.Output.TopN = 50
	cfg.Output.ConsoleTop = 15
	cfg.Fetch.Workers = 4
	cfg.Fetch.Timeout = 30 * time.Second
	cfg.Fetch.UserAgent = DefaultUserAgent
	cfg.Fetch.PriceDelay = 100 * time.Millisecond
	cfg.Fetch.EarningsDelay = 150 * time.Millisecond
	cfg.Fetch.SnapshotDelay = 250 * time.Millisecond
	cfg.Sources.ChartURL = "https://query1.finance.yahoo.com/v8/finance/chart"
	cfg.Sources.QuoteURL = "https://query1.finance.yahoo.com/v7/finance/quote"
	cfg.Sources.SummaryURL = "https://query1.finance.yahoo.com/v10/finance/quoteSummary"
	cfg.Sources.SnapshotURL = "https://finviz.com/quote.ashx"
	cfg.Telegram.Top = 10
	cfg.Log.Level = "info"
	return cfg
}

// Validate checks field constraints and the cron expression.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Schedule.Cron != "" {
		parser := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
		if _, err := parser.Parse(c.Schedule.Cron); err != nil {
			return fmt.Errorf("schedule.cron: %w", err)
		}
	}
	return nil
}
