// Package scheduler watches a directory and feeds new files to the import
// use case on a fixed interval.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"ads-reconciler/internal/core/domain"
	"ads-reconciler/internal/core/ingest"
	"ads-reconciler/internal/core/port"
)

var (
	ErrAlreadyRunning = errors.New("scheduler already running")
	ErrNotRunning     = errors.New("scheduler not running")
)

// Extensions lists the file types a scan picks up.
var Extensions = []string{".csv", ".txt", ".xlsx"}

// Config configures a Scheduler.
type Config struct {
	Dir        string
	Interval   time.Duration
	Options    ingest.Options
	RunOnStart bool
}

// Scheduler is a process-scoped component owned by main. It scans Dir every
// Interval, skips files the ledger has already seen and imports the rest one
// by one. Manual triggers share an in-flight scan.
type Scheduler struct {
	imports port.ImportUseCase
	cfg     Config
	log     *slog.Logger
	now     func() time.Time

	group singleflight.Group

	mu         sync.Mutex
	cancel     context.CancelFunc
	done       chan struct{}
	lastRun    *time.Time
	nextRun    *time.Time
	lastReport *port.ScanReport
}

func New(imports port.ImportUseCase, cfg Config, log *slog.Logger) *Scheduler {
	return &Scheduler{imports: imports, cfg: cfg, log: log, now: time.Now}
}

// Start launches the scan loop. The loop stops when ctx is cancelled or Stop
// is called.
func (s *Scheduler) Start(ctx context.Context) error {
	if s.cfg.Interval <= 0 {
		return fmt.Errorf("scheduler interval must be positive, got %s", s.cfg.Interval)
	}
	if err := os.MkdirAll(s.cfg.Dir, 0o755); err != nil {
		return fmt.Errorf("create watch dir: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return ErrAlreadyRunning
	}
	loopCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})
	next := s.now().Add(s.cfg.Interval)
	s.nextRun = &next

	go s.loop(loopCtx, s.done)
	s.log.Info("scheduler started", "dir", s.cfg.Dir, "interval", s.cfg.Interval, "profile", s.cfg.Options.Profile)
	return nil
}

// Stop cancels the loop and waits for an in-flight scan to wind down or ctx
// to expire.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done, s.nextRun = nil, nil, nil
	s.mu.Unlock()
	if cancel == nil {
		return ErrNotRunning
	}

	cancel()
	select {
	case <-done:
		s.log.Info("scheduler stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Scheduler) Status() port.SchedulerStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return port.SchedulerStatus{
		Running:    s.cancel != nil,
		Dir:        s.cfg.Dir,
		Interval:   s.cfg.Interval,
		LastRun:    s.lastRun,
		NextRun:    s.nextRun,
		LastReport: s.lastReport,
	}
}

// Trigger scans now. Concurrent callers receive the same report.
func (s *Scheduler) Trigger(ctx context.Context) (*port.ScanReport, error) {
	ch := s.group.DoChan("scan", func() (any, error) {
		return s.scan(context.WithoutCancel(ctx))
	})
	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*port.ScanReport), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (s *Scheduler) loop(ctx context.Context, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	if s.cfg.RunOnStart {
		s.tick(ctx)
	}
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	_, err, _ := s.group.Do("scan", func() (any, error) {
		return s.scan(ctx)
	})
	if err != nil {
		s.log.Error("scheduled scan failed", "err", err)
	}
	s.mu.Lock()
	if s.cancel != nil {
		next := s.now().Add(s.cfg.Interval)
		s.nextRun = &next
	}
	s.mu.Unlock()
}

// scan imports every eligible file in the watch directory in name order.
func (s *Scheduler) scan(ctx context.Context) (*port.ScanReport, error) {
	report := &port.ScanReport{StartedAt: s.now()}
	files, err := s.candidates()
	if err != nil {
		return nil, err
	}

	for _, path := range files {
		if ctx.Err() != nil {
			break
		}
		name := filepath.Base(path)
		outcome := port.FileOutcome{Filename: name}

		seen, err := s.imports.Seen(ctx, name)
		switch {
		case err != nil:
			outcome.Error = err.Error()
			report.Failed++
		case seen:
			outcome.Skipped = true
			report.Skipped++
			s.log.Debug("file already in ledger", "file", name)
		default:
			res, err := s.imports.ImportFile(ctx, path, s.cfg.Options, domain.SourceScheduler)
			outcome.Result = res
			if err != nil {
				outcome.Error = err.Error()
			}
			if err != nil || res == nil || !res.Success {
				report.Failed++
			} else {
				report.Processed++
			}
		}
		report.Files = append(report.Files, outcome)
	}

	report.FinishedAt = s.now()
	s.mu.Lock()
	at := report.StartedAt
	s.lastRun = &at
	s.lastReport = report
	s.mu.Unlock()
	s.log.Info("scan finished",
		"processed", report.Processed, "failed", report.Failed, "skipped", report.Skipped,
		"took", report.FinishedAt.Sub(report.StartedAt))
	return report, nil
}

func (s *Scheduler) candidates() ([]string, error) {
	entries, err := os.ReadDir(s.cfg.Dir)
	if err != nil {
		return nil, fmt.Errorf("read watch dir: %w", err)
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if !slices.Contains(Extensions, strings.ToLower(filepath.Ext(e.Name()))) {
			continue
		}
		out = append(out, filepath.Join(s.cfg.Dir, e.Name()))
	}
	slices.Sort(out)
	return out, nil
}
