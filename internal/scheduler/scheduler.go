package scheduler

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"CanslimScanner/internal/collector"
	"CanslimScanner/internal/model"
	"CanslimScanner/internal/notifier"
	"CanslimScanner/internal/report"
	"CanslimScanner/internal/strategy"
)

// Options controls what a scan run writes.
type Options struct {
	OutputPath string
	TopN       int
	ConsoleTop int
	Sources    []string
	// NotifyTop is how many symbols the run summary lists.
	NotifyTop int
}

// Notifier delivers the run summary. Delivery failures never fail a run.
type Notifier interface {
	SendWithRetry(ctx context.Context, text string, maxRetries int) error
}

const notifyRetries = 3

// Scheduler runs scans once or on a cron schedule.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Universe  []model.SymbolEntry
	Opts      Options
	Notifier  Notifier
	Out       io.Writer
	Log       zerolog.Logger
	Ctx       context.Context

	// mu serializes runs so two scans never write the output file together.
	mu sync.Mutex
	wg sync.WaitGroup
}

// NewScheduler creates a new Scheduler. Cron specs include a seconds field
// and a scan that is still running when the next tick fires is skipped.
func NewScheduler(ctx context.Context, col *collector.Collector, universe []model.SymbolEntry, opts Options, out io.Writer, log zerolog.Logger) *Scheduler {
	cl := cronLogger{log: log}
	return &Scheduler{
		Cron: cron.New(
			cron.WithSeconds(),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		Collector: col,
		Universe:  universe,
		Opts:      opts,
		Out:       out,
		Log:       log,
		Ctx:       ctx,
	}
}

// Register schedules the scan task.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.scanTask); err != nil {
		return fmt.Errorf("register scan task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	s.Log.Info().Int("entries", len(s.Cron.Entries())).Msg("scheduler started")
}

// Stop stops the cron scheduler and waits for running scans, scheduled or
// started by RunInBackground, to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	s.wg.Wait()
	s.Log.Info().Msg("scheduler stopped")
}

// RunInBackground starts a scan outside the cron schedule. Stop waits for it.
func (s *Scheduler) RunInBackground(ctx context.Context) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if _, err := s.RunNow(ctx); err != nil {
			s.Log.Error().Err(err).Msg("startup scan failed")
		}
	}()
}

func (s *Scheduler) scanTask() {
	if _, err := s.RunNow(s.Ctx); err != nil {
		s.Log.Error().Err(err).Msg("scheduled scan failed")
	}
}

// RunNow executes one full scan: fetch, rate, persist, print and notify.
// Concurrent calls run one after another.
func (s *Scheduler) RunNow(ctx context.Context) (*model.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	runID := uuid.NewString()
	log := s.Log.With().Str("run_id", runID).Logger()
	start := time.Now()
	log.Info().Int("symbols", len(s.Universe)).Msg("scan started")

	col := *s.Collector
	col.Log = log
	data, err := col.Collect(ctx, s.Universe)
	if err != nil {
		return nil, fmt.Errorf("collect: %w", err)
	}

	ranked := strategy.Rank(s.Universe, data)
	log.Info().Int("rated", len(ranked)).Int("dropped", len(s.Universe)-len(ranked)).Msg("ratings computed")

	snap := report.BuildSnapshot(runID, s.Opts.Sources, ranked, s.Opts.TopN)
	if err := report.SaveSnapshot(s.Opts.OutputPath, snap); err != nil {
		return nil, fmt.Errorf("save snapshot: %w", err)
	}

	if s.Out != nil {
		if s.Opts.ConsoleTop > 0 {
			fmt.Fprint(s.Out, report.FormatLeaderboard(snap.Stocks, s.Opts.ConsoleTop))
		}
		fmt.Fprint(s.Out, report.FormatSaved(len(snap.Stocks), s.Opts.OutputPath))
	}

	if s.Notifier != nil {
		if err := s.Notifier.SendWithRetry(ctx, notifier.FormatRunSummary(snap, s.Opts.NotifyTop), notifyRetries); err != nil {
			log.Warn().Err(err).Msg("run summary not delivered")
		}
	}

	log.Info().
		Int("saved", len(snap.Stocks)).
		Str("path", s.Opts.OutputPath).
		Dur("elapsed", time.Since(start)).
		Msg("scan finished")
	return snap, nil
}

// cronLogger routes cron's own messages through zerolog.
type cronLogger struct {
	log zerolog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debug().Fields(keysAndValues).Msg("cron: " + msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error().Err(err).Fields(keysAndValues).Msg("cron: " + msg)
}
