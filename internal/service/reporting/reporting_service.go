package reporting

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/lovelyhome/carehome/internal/domain/models"
	"github.com/lovelyhome/carehome/internal/store/memory"
)

// DefaultWindowDays is the look-ahead used when none is configured.
const DefaultWindowDays = 7

// Source provides a consistent view of homes and residents.
type Source interface {
	Snapshot() memory.Snapshot
}

// Service derives occupancy and checkup analytics from the entity store.
type Service struct {
	source     Source
	windowDays int
	loc        *time.Location
	logger     *zap.Logger
}

// NewService wires a reporting service. Calendar days are computed in loc.
func NewService(source Source, windowDays int, loc *time.Location, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Service{source: source, windowDays: windowDays, loc: loc, logger: logger}
}

// WindowDays returns the default checkup look-ahead.
func (s *Service) WindowDays() int {
	return s.windowDays
}

// OccupancySummary renders one line per home as "name: occupancy/capacity".
func (s *Service) OccupancySummary(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("occupancy summary: %w", err)
	}

	snap := s.source.Snapshot()
	if len(snap.Homes) == 0 {
		return "Occupancy: no homes registered yet.", nil
	}

	var totalOcc, totalCap int
	lines := make([]string, 0, len(snap.Homes))
	for _, h := range snap.Homes {
		totalOcc += h.CurrentOccupancy
		totalCap += h.Capacity
		line := fmt.Sprintf("- %s: %d/%d", h.Name, h.CurrentOccupancy, h.Capacity)
		if h.OverCapacity() {
			line += " (over capacity)"
		}
		lines = append(lines, line)
	}

	header := fmt.Sprintf("Occupancy across %d homes: %d/%d", len(snap.Homes), totalOcc, totalCap)
	return header + "\n" + strings.Join(lines, "\n"), nil
}

// CheckupAgenda lists residents whose next checkup falls on or before
// today+days, overdue ones included, earliest first. Residents without a
// scheduled checkup are skipped.
func (s *Service) CheckupAgenda(now time.Time, days int) []models.CheckupItem {
	return s.agenda(s.source.Snapshot(), now, days)
}

func (s *Service) agenda(snap memory.Snapshot, now time.Time, days int) []models.CheckupItem {
	if days < 0 {
		days = 0
	}
	today := s.today(now)
	horizon := today.AddDate(0, 0, days)

	names := make(map[string]string, len(snap.Homes))
	for _, h := range snap.Homes {
		names[h.ID] = h.Name
	}

	items := make([]models.CheckupItem, 0)
	for _, r := range snap.Residents {
		if r.NextCheckup.IsZero() || r.NextCheckup.After(horizon) {
			continue
		}
		items = append(items, models.CheckupItem{
			ResidentID: r.ID,
			Resident:   r.Name,
			HomeID:     r.HomeID,
			Home:       names[r.HomeID],
			Due:        r.NextCheckup,
			Overdue:    r.NextCheckup.Before(today),
		})
	}

	slices.SortStableFunc(items, func(a, b models.CheckupItem) int {
		return a.Due.Time().Compare(b.Due.Time())
	})
	return items
}

// CheckupDigest renders the default-window agenda as a text message.
func (s *Service) CheckupDigest(ctx context.Context, now time.Time) (string, error) {
	return s.CheckupDigestWithin(ctx, now, s.windowDays)
}

// CheckupDigestWithin renders the agenda for the next days days.
func (s *Service) CheckupDigestWithin(ctx context.Context, now time.Time, days int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("checkup digest: %w", err)
	}
	days = max(days, 0)

	today := s.today(now)
	items := s.CheckupAgenda(now, days)
	if len(items) == 0 {
		return fmt.Sprintf("Checkups (%s-%s): none due.", today, today.AddDate(0, 0, days)), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Checkups (%s-%s): %d scheduled.", today, today.AddDate(0, 0, days), len(items))
	for _, item := range items {
		fmt.Fprintf(&b, "\n- %s, %s: %s", item.Resident, item.Home, item.Due)
		if item.Overdue {
			b.WriteString(" OVERDUE")
		}
	}
	return b.String(), nil
}

// BuildDailyReport aggregates per-home occupancy and checkup counts for the
// calendar day of now.
func (s *Service) BuildDailyReport(now time.Time) models.OccupancyReport {
	snap := s.source.Snapshot()
	tracked := memory.GroupByHome(snap.Residents)

	report := models.OccupancyReport{
		Date:             s.today(now).Time(),
		Homes:            make([]models.HomeOccupancy, 0, len(snap.Homes)),
		TrackedResidents: len(snap.Residents),
		CreatedAt:        now.UTC(),
	}
	for _, h := range snap.Homes {
		report.Homes = append(report.Homes, models.HomeOccupancy{
			HomeID:           h.ID,
			Name:             h.Name,
			Capacity:         h.Capacity,
			CurrentOccupancy: h.CurrentOccupancy,
			TrackedResidents: len(tracked[h.ID]),
			OverCapacity:     h.OverCapacity(),
		})
		report.TotalCapacity += h.Capacity
		report.TotalOccupancy += h.CurrentOccupancy
	}

	for _, item := range s.agenda(snap, now, s.windowDays) {
		if item.Overdue {
			report.CheckupsOverdue++
		} else {
			report.CheckupsDue++
		}
	}

	s.logger.Debug("daily report built",
		zap.Int("homes", len(report.Homes)),
		zap.Int("checkups_due", report.CheckupsDue),
		zap.Int("checkups_overdue", report.CheckupsOverdue))
	return report
}

func (s *Service) today(now time.Time) models.Date {
	return models.DateOf(now.In(s.loc))
}
