package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/lovelyhome/carehome/internal/config"
	"github.com/lovelyhome/carehome/internal/domain/models"
	"github.com/lovelyhome/carehome/internal/service/notify"
	"github.com/lovelyhome/carehome/internal/service/reporting"
	"github.com/lovelyhome/carehome/internal/store/memory"
)

const jobTimeout = 2 * time.Minute

// ReportArchive persists daily occupancy reports.
type ReportArchive interface {
	SaveOccupancyReport(ctx context.Context, report models.OccupancyReport) error
}

// RosterSyncer mirrors the roster to an external sheet.
type RosterSyncer interface {
	Sync(ctx context.Context, snap memory.Snapshot) error
}

// Options carries the optional collaborators. A nil Archive or Roster skips
// the corresponding work.
type Options struct {
	Archive ReportArchive
	Roster  RosterSyncer
}

// Scheduler manages scheduled tasks.
type Scheduler struct {
	cron         *cron.Cron
	cfg          config.ReportingConfig
	source       reporting.Source
	reportingSvc *reporting.Service
	notifier     notify.Notifier
	opts         Options
	now          func() time.Time
	logger       *zap.Logger
}

// NewScheduler creates a new scheduler instance running in the configured timezone.
func NewScheduler(cfg config.ReportingConfig, source reporting.Source, reportingSvc *reporting.Service, notifier notify.Notifier, opts Options, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Scheduler{
		cron:         cron.New(cron.WithLocation(cfg.Location())),
		cfg:          cfg,
		source:       source,
		reportingSvc: reportingSvc,
		notifier:     notifier,
		opts:         opts,
		now:          time.Now,
		logger:       logger,
	}
}

// Start registers the jobs and starts the cron loop.
func (s *Scheduler) Start() error {
	jobs := []struct {
		name string
		spec string
		run  func(context.Context) error
	}{
		{"checkup digest", s.cfg.CheckupCronSchedule, s.SendCheckupDigest},
		{"daily report", s.cfg.ReportCronSchedule, s.ArchiveDailyReport},
		{"roster sync", s.cfg.RosterSyncCronSchedule, s.SyncRoster},
	}

	for _, job := range jobs {
		if _, err := s.cron.AddFunc(job.spec, s.wrap(job.name, job.run)); err != nil {
			return fmt.Errorf("schedule %s: %w", job.name, err)
		}
	}

	s.logger.Info("starting scheduler", zap.Int("jobs", len(jobs)), zap.String("timezone", s.cfg.Timezone))
	s.cron.Start()
	return nil
}

// Stop stops the scheduler and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	<-s.cron.Stop().Done()
}

func (s *Scheduler) wrap(name string, run func(context.Context) error) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		if err := run(ctx); err != nil {
			s.logger.Error("scheduled job failed", zap.String("job", name), zap.Error(err))
			return
		}
		s.logger.Info("scheduled job completed", zap.String("job", name))
	}
}

// SendCheckupDigest notifies the coordinator of upcoming and overdue checkups.
func (s *Scheduler) SendCheckupDigest(ctx context.Context) error {
	digest, err := s.reportingSvc.CheckupDigest(ctx, s.now())
	if err != nil {
		return fmt.Errorf("build checkup digest: %w", err)
	}
	if err := s.notifier.Notify(ctx, digest); err != nil {
		return fmt.Errorf("send checkup digest: %w", err)
	}
	return nil
}

// ArchiveDailyReport stores today's occupancy report and sends the summary.
func (s *Scheduler) ArchiveDailyReport(ctx context.Context) error {
	if s.opts.Archive != nil {
		report := s.reportingSvc.BuildDailyReport(s.now())
		if err := s.opts.Archive.SaveOccupancyReport(ctx, report); err != nil {
			return fmt.Errorf("archive daily report: %w", err)
		}
	}

	summary, err := s.reportingSvc.OccupancySummary(ctx)
	if err != nil {
		return fmt.Errorf("build occupancy summary: %w", err)
	}
	if err := s.notifier.Notify(ctx, summary); err != nil {
		return fmt.Errorf("send occupancy summary: %w", err)
	}
	return nil
}

// SyncRoster mirrors the roster when a sheet is configured.
func (s *Scheduler) SyncRoster(ctx context.Context) error {
	if s.opts.Roster == nil {
		return nil
	}
	return s.opts.Roster.Sync(ctx, s.source.Snapshot())
}
