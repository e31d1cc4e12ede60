package models

import (
	"errors"
	"strings"
)

// ErrUnknownFrequency indicates a checkup frequency outside the supported set.
var ErrUnknownFrequency = errors.New("unknown checkup frequency")

// DefaultMedicalCondition is recorded when a resident has no known condition.
const DefaultMedicalCondition = "None"

// CheckupFrequency enumerates how often a resident sees a doctor.
type CheckupFrequency string

const (
	FrequencyWeekly       CheckupFrequency = "Weekly"
	FrequencyBiWeekly     CheckupFrequency = "Bi-weekly"
	FrequencyMonthly      CheckupFrequency = "Monthly"
	FrequencyQuarterly    CheckupFrequency = "Quarterly"
	FrequencySemiAnnually CheckupFrequency = "Semi-annually"
	FrequencyAnnually     CheckupFrequency = "Annually"
)

// CheckupFrequencies lists the frequencies from most to least frequent.
var CheckupFrequencies = []CheckupFrequency{
	FrequencyWeekly,
	FrequencyBiWeekly,
	FrequencyMonthly,
	FrequencyQuarterly,
	FrequencySemiAnnually,
	FrequencyAnnually,
}

// ParseCheckupFrequency matches a frequency case-insensitively, ignoring
// hyphens so "BiWeekly" and "bi-weekly" both resolve. Empty means Monthly.
func ParseCheckupFrequency(value string) (CheckupFrequency, error) {
	key := normalizeFrequency(value)
	if key == "" {
		return FrequencyMonthly, nil
	}
	for _, f := range CheckupFrequencies {
		if normalizeFrequency(string(f)) == key {
			return f, nil
		}
	}
	return "", ErrUnknownFrequency
}

func normalizeFrequency(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	value = strings.ReplaceAll(value, "-", "")
	return strings.ReplaceAll(value, " ", "")
}

// Next returns the checkup date that follows from.
func (f CheckupFrequency) Next(from Date) Date {
	switch f {
	case FrequencyWeekly:
		return from.AddDate(0, 0, 7)
	case FrequencyBiWeekly:
		return from.AddDate(0, 0, 14)
	case FrequencyQuarterly:
		return from.AddDate(0, 3, 0)
	case FrequencySemiAnnually:
		return from.AddDate(0, 6, 0)
	case FrequencyAnnually:
		return from.AddDate(1, 0, 0)
	default:
		return from.AddDate(0, 1, 0)
	}
}

// Resident is a person cared for by exactly one home.
type Resident struct {
	ID               string           `json:"id"`
	HomeID           string           `json:"home_id"`
	Name             string           `json:"name"`
	Age              int              `json:"age"`
	MedicalCondition string           `json:"medical_condition"`
	CheckupFrequency CheckupFrequency `json:"checkup_frequency"`
	LastCheckup      Date             `json:"last_checkup"`
	NextCheckup      Date             `json:"next_checkup"`
	Notes            string           `json:"notes"`
}

// ResidentDraft carries the fields of a resident before it is committed.
type ResidentDraft struct {
	Name             string
	Age              int
	MedicalCondition string
	CheckupFrequency CheckupFrequency
	LastCheckup      Date
	NextCheckup      Date
	Notes            string
}

// ResidentPatch updates the non-nil fields of a resident. Setting HomeID
// transfers the resident to another home.
type ResidentPatch struct {
	HomeID           *string
	Name             *string
	Age              *int
	MedicalCondition *string
	CheckupFrequency *CheckupFrequency
	LastCheckup      *Date
	NextCheckup      *Date
	Notes            *string
}

// Apply copies the set fields of the patch into r, HomeID excluded.
func (p ResidentPatch) Apply(r *Resident) {
	if p.Name != nil {
		r.Name = *p.Name
	}
	if p.Age != nil {
		r.Age = *p.Age
	}
	if p.MedicalCondition != nil {
		r.MedicalCondition = *p.MedicalCondition
	}
	if p.CheckupFrequency != nil {
		r.CheckupFrequency = *p.CheckupFrequency
	}
	if p.LastCheckup != nil {
		r.LastCheckup = *p.LastCheckup
	}
	if p.NextCheckup != nil {
		r.NextCheckup = *p.NextCheckup
	}
	if p.Notes != nil {
		r.Notes = *p.Notes
	}
}
