package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"ads-reconciler/internal/core/domain"
	"ads-reconciler/internal/core/ingest"
	"ads-reconciler/internal/core/port"
)

const (
	processedDir     = "processed"
	errorsDir        = "errors"
	relocationPrefix = "20060102_150405_"
)

// ImportService implements port.ImportUseCase on top of the engine and the
// ledger.
type ImportService struct {
	engine *Engine
	ledger *Ledger
	log    *slog.Logger
	now    func() time.Time
}

func NewImportService(engine *Engine, ledger *Ledger, log *slog.Logger) *ImportService {
	return &ImportService{engine: engine, ledger: ledger, log: log, now: time.Now}
}

func (s *ImportService) Import(ctx context.Context, req port.ImportRequest) (*port.BatchResult, error) {
	return s.engine.Process(ctx, req)
}

// ImportFile reads path, processes it and moves it to processed/ or errors/
// next to the original. A batch that completed with some failed rows still
// counts as processed.
func (s *ImportService) ImportFile(ctx context.Context, path string, opts ingest.Options, source domain.BatchSource) (*port.BatchResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	res, err := s.engine.Process(ctx, port.ImportRequest{
		Filename: filepath.Base(path),
		FilePath: path,
		Data:     data,
		Source:   source,
		Options:  opts,
	})
	if err != nil {
		return nil, err
	}

	dest := errorsDir
	if res.Success {
		dest = processedDir
	}
	moved, err := s.relocate(path, dest)
	if err != nil {
		return res, err
	}
	s.log.Info("file relocated", "batch", res.BatchID, "from", path, "to", moved)
	return res, nil
}

func (s *ImportService) relocate(path, sub string) (string, error) {
	dir := filepath.Join(filepath.Dir(path), sub)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}
	target := filepath.Join(dir, s.now().Format(relocationPrefix)+filepath.Base(path))
	if err := os.Rename(path, target); err != nil {
		return "", fmt.Errorf("move %s: %w", path, err)
	}
	return target, nil
}

func (s *ImportService) Seen(ctx context.Context, filename string) (bool, error) {
	return s.ledger.Seen(ctx, filename)
}

func (s *ImportService) GetBatch(ctx context.Context, id string) (*domain.ImportBatch, error) {
	return s.ledger.Get(ctx, id)
}

func (s *ImportService) ListBatches(ctx context.Context, filter port.BatchFilter) ([]domain.ImportBatch, error) {
	return s.ledger.List(ctx, filter)
}
