package models

import (
	"errors"
	"strings"
)

// ErrUnknownCategory indicates a home category outside the supported set.
var ErrUnknownCategory = errors.New("unknown home category")

// HomeCategory enumerates the kinds of facilities the charity runs.
type HomeCategory string

const (
	CategoryOrphanage   HomeCategory = "Orphanage"
	CategoryOldAgeHome  HomeCategory = "Old Age Home"
	CategoryShelterHome HomeCategory = "Shelter Home"
	CategoryCareCenter  HomeCategory = "Care Center"
)

// HomeCategories lists the categories in display order.
var HomeCategories = []HomeCategory{
	CategoryOrphanage,
	CategoryOldAgeHome,
	CategoryShelterHome,
	CategoryCareCenter,
}

// ParseHomeCategory matches a category case-insensitively. An empty value
// resolves to the default, Orphanage.
func ParseHomeCategory(value string) (HomeCategory, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return CategoryOrphanage, nil
	}
	for _, c := range HomeCategories {
		if strings.EqualFold(value, string(c)) {
			return c, nil
		}
	}
	return "", ErrUnknownCategory
}

// Home is a managed care facility record.
type Home struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Type             HomeCategory `json:"type"`
	Location         string       `json:"location"`
	Capacity         int          `json:"capacity"`
	CurrentOccupancy int          `json:"current_occupancy"`
	ContactPerson    string       `json:"contact_person"`
	ContactNumber    string       `json:"contact_number"`
}

// OverCapacity reports whether occupancy exceeds the declared capacity.
func (h Home) OverCapacity() bool {
	return h.CurrentOccupancy > h.Capacity
}

// HomeDraft carries the fields of a home before it is committed. Occupancy is
// the baseline head count, which may include people not tracked as residents.
type HomeDraft struct {
	Name             string
	Type             HomeCategory
	Location         string
	Capacity         int
	CurrentOccupancy int
	ContactPerson    string
	ContactNumber    string
}

// HomePatch updates the non-nil fields of a home. Occupancy is owned by the
// store and cannot be patched.
type HomePatch struct {
	Name          *string
	Type          *HomeCategory
	Location      *string
	Capacity      *int
	ContactPerson *string
	ContactNumber *string
}

// Apply copies the set fields of the patch into h.
func (p HomePatch) Apply(h *Home) {
	if p.Name != nil {
		h.Name = *p.Name
	}
	if p.Type != nil {
		h.Type = *p.Type
	}
	if p.Location != nil {
		h.Location = *p.Location
	}
	if p.Capacity != nil {
		h.Capacity = *p.Capacity
	}
	if p.ContactPerson != nil {
		h.ContactPerson = *p.ContactPerson
	}
	if p.ContactNumber != nil {
		h.ContactNumber = *p.ContactNumber
	}
}
