package scheduler

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"logreport/config"
	"logreport/internal/report"
	"logreport/internal/service"
)

// Target names the log file and level a scheduled report is built from.
type Target struct {
	Filename string
	Level    string
	Out      io.Writer
}

// Runner builds and prints one report per call. Overlapping calls are skipped.
type Runner struct {
	svc      service.ReportService
	renderer report.Renderer
	target   Target
	runLock  sync.Mutex
}

func NewRunner(svc service.ReportService, renderer report.Renderer, target Target) *Runner {
	return &Runner{svc: svc, renderer: renderer, target: target}
}

// RunOnce generates and renders a single report. Each run is independent of
// the previous one.
func (r *Runner) RunOnce(ctx context.Context) error {
	if !r.runLock.TryLock() {
		log.Warn().Str("file", r.target.Filename).Msg("Report run already in progress, skipping.")
		return nil
	}
	defer r.runLock.Unlock()

	result, err := r.svc.Generate(ctx, r.target.Filename, r.target.Level)
	if err != nil {
		return fmt.Errorf("generate report for %s: %w", r.target.Filename, err)
	}
	return r.renderer.Render(r.target.Out, result)
}

func NewScheduler(lc fx.Lifecycle, cfg *config.Config, runner *Runner) (*cron.Cron, error) {
	parser := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.DowOptional | cron.Descriptor)
	c := cron.New(cron.WithParser(parser))

	schedule := cfg.Scheduler.Schedule
	_, err := c.AddFunc(schedule, func() {
		if err := runner.RunOnce(context.Background()); err != nil {
			log.Error().Err(err).Msg("Scheduled report run failed")
		}
	})
	if err != nil {
		return nil, fmt.Errorf("invalid schedule %q: %w", schedule, err)
	}
	log.Info().Str("schedule", schedule).Msg("Scheduled report job")

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Str("file", runner.target.Filename).Msg("Watching log file for scheduled reports")
			c.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			// Stop returns once any report run still in flight has finished.
			select {
			case <-c.Stop().Done():
				log.Info().Str("file", runner.target.Filename).Msg("Report schedule stopped")
				return nil
			case <-ctx.Done():
				log.Warn().Str("file", runner.target.Filename).Msg("Gave up waiting for the running report to finish")
				return ctx.Err()
			}
		},
	})

	return c, nil
}
