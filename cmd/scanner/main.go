package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"CanslimScanner/internal/collector"
	"CanslimScanner/internal/config"
	"CanslimScanner/internal/logging"
	"CanslimScanner/internal/notifier"
	"CanslimScanner/internal/scheduler"
	"CanslimScanner/internal/universe"
)

func main() {
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	boot := logging.New("info")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		boot.Fatal().Err(err).Str("path", cfgPath).Msg("load config")
	}
	log := logging.New(cfg.Log.Level)
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("config validation")
	}
	log.Info().Str("config", cfgPath).Msg("CANSLIM scanner starting")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = run(ctx, cfg, os.Stdout, log)
	stop()
	if err != nil {
		log.Fatal().Err(err).Msg("scanner failed")
	}
}

// run performs a single scan when no cron spec is configured, otherwise it
// schedules scans until ctx is cancelled.
func run(ctx context.Context, cfg *config.Config, out io.Writer, log zerolog.Logger) error {
	sched := newScheduler(ctx, cfg, out, log)

	if cfg.Schedule.Cron == "" {
		if _, err := sched.RunNow(ctx); err != nil {
			return fmt.Errorf("scan: %w", err)
		}
		return nil
	}

	if err := sched.Register(cfg.Schedule.Cron); err != nil {
		return err
	}
	sched.Start()

	if cfg.Schedule.RunOnStart {
		log.Info().Msg("RUN_ON_START enabled, scanning now")
		sched.RunInBackground(ctx)
	}

	log.Info().Str("cron", cfg.Schedule.Cron).Msg("scanner is running, press Ctrl+C to stop")
	<-ctx.Done()

	log.Info().Msg("shutdown signal received, stopping")
	sched.Stop()
	log.Info().Msg("scanner stopped")
	return nil
}

func newScheduler(ctx context.Context, cfg *config.Config, out io.Writer, log zerolog.Logger) *scheduler.Scheduler {
	yahoo := collector.NewYahooFetcher(cfg.Sources.ChartURL, cfg.Sources.QuoteURL, cfg.Sources.SummaryURL,
		cfg.Fetch.UserAgent, cfg.Proxy, cfg.Fetch.Timeout)
	finviz := collector.NewFinvizFetcher(cfg.Sources.SnapshotURL, cfg.Fetch.UserAgent, cfg.Proxy, cfg.Fetch.Timeout)
	log.Info().Str("prices", yahoo.Name()).Str("fundamentals", finviz.Name()).Msg("data sources")

	col := &collector.Collector{
		Charts:        yahoo,
		Quotes:        yahoo,
		Earnings:      yahoo,
		Snapshots:     finviz,
		Workers:       cfg.Fetch.Workers,
		PriceDelay:    cfg.Fetch.PriceDelay,
		EarningsDelay: cfg.Fetch.EarningsDelay,
		SnapshotDelay: cfg.Fetch.SnapshotDelay,
		Log:           log,
	}

	sched := scheduler.NewScheduler(ctx, col, universe.Resolve(cfg.Universe), scheduler.Options{
		OutputPath: cfg.Output.Path,
		TopN:       cfg.Output.TopN,
		ConsoleTop: cfg.Output.ConsoleTop,
		Sources:    []string{yahoo.Name(), finviz.Name()},
		NotifyTop:  cfg.Telegram.Top,
	}, out, log)

	if cfg.Telegram.BotToken != "" {
		sched.Notifier = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy, log)
		log.Info().Msg("telegram run summaries enabled")
	}
	return sched
}
