package reporting

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lovelyhome/carehome/internal/domain/models"
	"github.com/lovelyhome/carehome/internal/store/memory"
)

type fixture struct {
	store *memory.Store
	svc   *Service
	now   time.Time
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	store := memory.NewStore(
		memory.WithHomeIDs(memory.NewCounterGenerator(0)),
		memory.WithResidentIDs(memory.NewCounterGenerator(0)),
	)
	sunshine := store.AddHome(models.HomeDraft{Name: "Sunshine", Capacity: 35, CurrentOccupancy: 26})
	golden := store.AddHome(models.HomeDraft{Name: "Golden", Capacity: 1})

	add := func(homeID, name, next string) {
		_, err := store.AddResident(homeID, models.ResidentDraft{Name: name, NextCheckup: models.MustParseDate(next)})
		require.NoError(t, err)
	}
	add(sunshine.ID, "Priya", "2025-05-20")
	add(sunshine.ID, "Arun", "2025-04-15")
	add(golden.ID, "Krishnan", "2025-04-09")
	add(golden.ID, "Meena", "2025-04-10")
	_, err := store.AddResident(golden.ID, models.ResidentDraft{Name: "Unscheduled"})
	require.NoError(t, err)

	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	return fixture{
		store: store,
		svc:   NewService(store, 7, loc, nil),
		// 20:00 UTC on the 9th is already the 10th in Kolkata.
		now: time.Date(2025, time.April, 9, 20, 0, 0, 0, time.UTC),
	}
}

func TestOccupancySummary(t *testing.T) {
	f := newFixture(t)

	summary, err := f.svc.OccupancySummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Occupancy across 2 homes: 31/36\n- Sunshine: 28/35\n- Golden: 3/1 (over capacity)", summary)

	empty := NewService(memory.NewStore(), 0, nil, nil)
	summary, err = empty.OccupancySummary(context.Background())
	require.NoError(t, err)
	assert.Contains(t, summary, "no homes")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = f.svc.OccupancySummary(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCheckupAgenda(t *testing.T) {
	f := newFixture(t)

	items := f.svc.CheckupAgenda(f.now, 7)
	require.Len(t, items, 3)

	assert.Equal(t, "Krishnan", items[0].Resident)
	assert.True(t, items[0].Overdue)
	assert.Equal(t, "Golden", items[0].Home)

	assert.Equal(t, "Meena", items[1].Resident)
	assert.False(t, items[1].Overdue, "due today is not overdue")

	assert.Equal(t, "Arun", items[2].Resident)
	assert.Equal(t, "2025-04-15", items[2].Due.String())

	assert.Len(t, f.svc.CheckupAgenda(f.now, 0), 2)
	assert.Len(t, f.svc.CheckupAgenda(f.now, 60), 4)
}

func TestCheckupDigest(t *testing.T) {
	f := newFixture(t)

	digest, err := f.svc.CheckupDigest(context.Background(), f.now)
	require.NoError(t, err)
	assert.Equal(t,
		"Checkups (2025-04-10-2025-04-17): 3 scheduled.\n"+
			"- Krishnan, Golden: 2025-04-09 OVERDUE\n"+
			"- Meena, Golden: 2025-04-10\n"+
			"- Arun, Sunshine: 2025-04-15",
		digest)

	later := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	empty := NewService(memory.NewStore(), 7, time.UTC, nil)
	digest, err = empty.CheckupDigest(context.Background(), later)
	require.NoError(t, err)
	assert.Equal(t, "Checkups (2025-06-01-2025-06-08): none due.", digest)
}

func TestCheckupDigestWithin(t *testing.T) {
	f := newFixture(t)

	digest, err := f.svc.CheckupDigestWithin(context.Background(), f.now, 0)
	require.NoError(t, err)
	assert.Equal(t,
		"Checkups (2025-04-10-2025-04-10): 2 scheduled.\n"+
			"- Krishnan, Golden: 2025-04-09 OVERDUE\n"+
			"- Meena, Golden: 2025-04-10",
		digest)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = f.svc.CheckupDigestWithin(ctx, f.now, 7)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBuildDailyReport(t *testing.T) {
	f := newFixture(t)

	report := f.svc.BuildDailyReport(f.now)
	assert.Equal(t, "2025-04-10", report.Date.Format(models.DateLayout))
	assert.Equal(t, 36, report.TotalCapacity)
	assert.Equal(t, 31, report.TotalOccupancy)
	assert.Equal(t, 5, report.TrackedResidents)
	assert.Equal(t, 2, report.CheckupsDue)
	assert.Equal(t, 1, report.CheckupsOverdue)
	assert.Equal(t, f.now, report.CreatedAt)

	require.Len(t, report.Homes, 2)
	assert.Equal(t, 2, report.Homes[0].TrackedResidents)
	assert.False(t, report.Homes[0].OverCapacity)
	assert.True(t, report.Homes[1].OverCapacity)
}

func TestNewServiceDefaults(t *testing.T) {
	svc := NewService(memory.NewStore(), -1, nil, nil)
	assert.Equal(t, DefaultWindowDays, svc.WindowDays())
}
