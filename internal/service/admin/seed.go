package admin

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/lovelyhome/carehome/internal/domain/models"
)

type seedHome struct {
	draft     models.HomeDraft
	residents []models.ResidentDraft
}

// Seeded homes declare their full head count; only some of those people are
// tracked as residents.
var demoHomes = []seedHome{
	{
		draft: models.HomeDraft{
			Name:             "Sunshine Children's Home",
			Type:             models.CategoryOrphanage,
			Location:         "Chennai",
			Capacity:         35,
			CurrentOccupancy: 28,
			ContactPerson:    "Ravi Kumar",
			ContactNumber:    "9876543210",
		},
		residents: []models.ResidentDraft{
			{
				Name:             "Arun",
				Age:              12,
				MedicalCondition: "Asthma",
				CheckupFrequency: models.FrequencyMonthly,
				LastCheckup:      models.MustParseDate("2025-03-15"),
				NextCheckup:      models.MustParseDate("2025-04-15"),
				Notes:            "Requires regular inhaler. Doing well in studies.",
			},
			{
				Name:             "Priya",
				Age:              9,
				MedicalCondition: "None",
				CheckupFrequency: models.FrequencyQuarterly,
				LastCheckup:      models.MustParseDate("2025-02-20"),
				NextCheckup:      models.MustParseDate("2025-05-20"),
				Notes:            "Interested in art and craft. Healthy development.",
			},
		},
	},
	{
		draft: models.HomeDraft{
			Name:             "Golden Years Haven",
			Type:             models.CategoryOldAgeHome,
			Location:         "Coimbatore",
			Capacity:         40,
			CurrentOccupancy: 32,
			ContactPerson:    "Lakshmi Devi",
			ContactNumber:    "8765432109",
		},
		residents: []models.ResidentDraft{
			{
				Name:             "Krishnan",
				Age:              72,
				MedicalCondition: "High Blood Pressure",
				CheckupFrequency: models.FrequencyBiWeekly,
				LastCheckup:      models.MustParseDate("2025-04-02"),
				NextCheckup:      models.MustParseDate("2025-04-16"),
				Notes:            "Taking medication regularly. Enjoys reading.",
			},
		},
	},
}

// Seed loads the demo homes and residents. Each home is created with its
// untracked head count so that, once its residents are admitted, occupancy
// lands on the declared figure.
func (s *Service) Seed() error {
	for _, h := range demoHomes {
		draft := h.draft
		draft.CurrentOccupancy = max(draft.CurrentOccupancy-len(h.residents), 0)
		home := s.store.AddHome(draft)

		for _, r := range h.residents {
			if _, err := s.store.AddResident(home.ID, r); err != nil {
				return fmt.Errorf("seed resident %s: %w", r.Name, err)
			}
		}
	}
	s.logger.Info("demo data seeded", zap.Int("homes", len(demoHomes)))
	return nil
}
