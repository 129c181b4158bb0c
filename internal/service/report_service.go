package service

import (
	"context"
	"errors"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"logreport/config"
	"logreport/internal/aggregator"
	"logreport/internal/filter"
	"logreport/internal/ingest"
)

var ErrFilenameRequired = errors.New("filename is required")

// Report is everything produced by one ingestion of one log file.
type Report struct {
	ID      string
	Source  string
	Digest  string
	Bytes   int64
	Entries int
	Counts  aggregator.Counts
	Filter  filter.Result
}

type ReportService interface {
	Generate(ctx context.Context, filename string, level string) (*Report, error)
	ResolvePath(filename string) string
}

type reportService struct {
	loader  ingest.Loader
	baseDir string
}

func NewReportService(cfg *config.Config, loader ingest.Loader) ReportService {
	return &reportService{
		loader:  loader,
		baseDir: cfg.Ingest.BaseDir,
	}
}

// ResolvePath joins relative filenames onto the configured base directory.
func (s *reportService) ResolvePath(filename string) string {
	if filepath.IsAbs(filename) {
		return filepath.Clean(filename)
	}
	return filepath.Join(s.baseDir, filename)
}

// Generate loads filename, counts its entries by level and filters them by
// level. Any load or parse error aborts the whole run and no report is returned.
func (s *reportService) Generate(ctx context.Context, filename string, level string) (*Report, error) {
	if filename == "" {
		return nil, ErrFilenameRequired
	}
	startTime := time.Now()
	path := s.ResolvePath(filename)

	loaded, err := s.loader.Load(ctx, path)
	if err != nil {
		log.Debug().Err(err).Str("file", path).Msg("Log ingestion failed")
		return nil, err
	}

	counts := aggregator.Aggregate(loaded.Entries)
	filtered := filter.Apply(loaded.Entries, counts, level)

	report := &Report{
		ID:      uuid.NewString(),
		Source:  path,
		Digest:  loaded.Digest,
		Bytes:   loaded.Bytes,
		Entries: len(loaded.Entries),
		Counts:  counts,
		Filter:  filtered,
	}

	log.Info().
		Str("report_id", report.ID).
		Str("file", path).
		Int("entries", report.Entries).
		Int("levels", counts.Len()).
		Int("matched", len(filtered.Lines)).
		Dur("duration", time.Since(startTime)).
		Msg("Generated log report")

	return report, nil
}
