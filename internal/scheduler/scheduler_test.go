package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lovelyhome/carehome/internal/config"
	"github.com/lovelyhome/carehome/internal/domain/models"
	"github.com/lovelyhome/carehome/internal/service/reporting"
	"github.com/lovelyhome/carehome/internal/store/memory"
)

type recordingNotifier struct {
	messages []string
	err      error
}

func (r *recordingNotifier) Notify(_ context.Context, message string) error {
	r.messages = append(r.messages, message)
	return r.err
}

type recordingArchive struct {
	reports []models.OccupancyReport
}

func (r *recordingArchive) SaveOccupancyReport(_ context.Context, report models.OccupancyReport) error {
	r.reports = append(r.reports, report)
	return nil
}

type recordingRoster struct {
	snaps []memory.Snapshot
}

func (r *recordingRoster) Sync(_ context.Context, snap memory.Snapshot) error {
	r.snaps = append(r.snaps, snap)
	return nil
}

func testConfig() config.ReportingConfig {
	return config.ReportingConfig{
		CheckupCronSchedule:    "0 8 * * *",
		ReportCronSchedule:     "0 20 * * *",
		RosterSyncCronSchedule: "0 21 * * *",
		Timezone:               "UTC",
		CheckupWindowDays:      7,
	}
}

func newTestScheduler(t *testing.T, n *recordingNotifier, opts Options) *Scheduler {
	t.Helper()
	store := memory.NewStore()
	home := store.AddHome(models.HomeDraft{Name: "Sunshine", Capacity: 10})
	_, err := store.AddResident(home.ID, models.ResidentDraft{Name: "Arun", NextCheckup: models.MustParseDate("2025-04-15")})
	require.NoError(t, err)

	svc := reporting.NewService(store, 7, time.UTC, nil)
	s := NewScheduler(testConfig(), store, svc, n, opts, nil)
	s.now = func() time.Time { return time.Date(2025, time.April, 12, 8, 0, 0, 0, time.UTC) }
	return s
}

func TestSendCheckupDigest(t *testing.T) {
	n := &recordingNotifier{}
	s := newTestScheduler(t, n, Options{})

	require.NoError(t, s.SendCheckupDigest(context.Background()))
	require.Len(t, n.messages, 1)
	assert.Contains(t, n.messages[0], "Arun, Sunshine: 2025-04-15")
}

func TestArchiveDailyReport(t *testing.T) {
	n := &recordingNotifier{}
	archive := &recordingArchive{}
	s := newTestScheduler(t, n, Options{Archive: archive})

	require.NoError(t, s.ArchiveDailyReport(context.Background()))
	require.Len(t, archive.reports, 1)
	assert.Equal(t, 1, archive.reports[0].TrackedResidents)
	assert.Equal(t, 1, archive.reports[0].CheckupsDue)
	require.Len(t, n.messages, 1)
	assert.Contains(t, n.messages[0], "Sunshine: 1/10")
}

func TestArchiveDailyReport_NotifierError(t *testing.T) {
	boom := errors.New("offline")
	s := newTestScheduler(t, &recordingNotifier{err: boom}, Options{})
	assert.ErrorIs(t, s.ArchiveDailyReport(context.Background()), boom)
}

func TestSyncRoster(t *testing.T) {
	s := newTestScheduler(t, &recordingNotifier{}, Options{})
	assert.NoError(t, s.SyncRoster(context.Background()))

	roster := &recordingRoster{}
	s = newTestScheduler(t, &recordingNotifier{}, Options{Roster: roster})
	require.NoError(t, s.SyncRoster(context.Background()))
	require.Len(t, roster.snaps, 1)
	assert.Len(t, roster.snaps[0].Residents, 1)
}

func TestStartRegistersJobs(t *testing.T) {
	s := newTestScheduler(t, &recordingNotifier{}, Options{})
	require.NoError(t, s.Start())
	assert.Len(t, s.cron.Entries(), 3)
	s.Stop()

	cfg := testConfig()
	cfg.ReportCronSchedule = "whenever"
	bad := NewScheduler(cfg, memory.NewStore(), reporting.NewService(memory.NewStore(), 7, time.UTC, nil), &recordingNotifier{}, Options{}, nil)
	assert.Error(t, bad.Start())
}
