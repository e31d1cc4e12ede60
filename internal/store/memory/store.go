package memory

import (
	"errors"
	"fmt"
	"sync"

	"github.com/lovelyhome/carehome/internal/domain/models"
)

var (
	// ErrHomeNotFound indicates no home carries the requested id.
	ErrHomeNotFound = errors.New("home not found")
	// ErrResidentNotFound indicates no resident carries the requested id.
	ErrResidentNotFound = errors.New("resident not found")
)

// Snapshot is a point-in-time copy of both collections.
type Snapshot struct {
	Homes     []models.Home
	Residents []models.Resident
}

// Option customizes a Store.
type Option func(*Store)

// WithHomeIDs sets the generator used for new homes.
func WithHomeIDs(gen IDGenerator) Option {
	return func(s *Store) {
		if gen != nil {
			s.homeIDs = gen
		}
	}
}

// WithResidentIDs sets the generator used for new residents.
func WithResidentIDs(gen IDGenerator) Option {
	return func(s *Store) {
		if gen != nil {
			s.residentIDs = gen
		}
	}
}

// Store holds the homes and residents collections in insertion order and
// keeps them referentially consistent: every resident references an existing
// home, and home occupancy moves with resident adds, removals and transfers.
type Store struct {
	mu          sync.RWMutex
	homes       []models.Home
	residents   []models.Resident
	homeIDs     IDGenerator
	residentIDs IDGenerator
}

// NewStore constructs an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		homeIDs:     UUIDGenerator{},
		residentIDs: UUIDGenerator{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddHome appends a new home built from the draft and returns it.
func (s *Store) AddHome(draft models.HomeDraft) models.Home {
	home := models.Home{
		Name:             draft.Name,
		Type:             draft.Type,
		Location:         draft.Location,
		Capacity:         max(draft.Capacity, 0),
		CurrentOccupancy: max(draft.CurrentOccupancy, 0),
		ContactPerson:    draft.ContactPerson,
		ContactNumber:    draft.ContactNumber,
	}
	if home.Type == "" {
		home.Type = models.CategoryOrphanage
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	home.ID = s.homeIDs.NewID()
	s.homes = append(s.homes, home)
	return home
}

// UpdateHome applies the patch to the home with the given id.
func (s *Store) UpdateHome(id string, patch models.HomePatch) (models.Home, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.homeIndex(id)
	if idx < 0 {
		return models.Home{}, fmt.Errorf("update home %q: %w", id, ErrHomeNotFound)
	}
	home := s.homes[idx]
	patch.Apply(&home)
	if home.Type == "" {
		home.Type = models.CategoryOrphanage
	}
	home.Capacity = max(home.Capacity, 0)
	home.ID = id
	s.homes[idx] = home
	return home, nil
}

// DeleteHome removes the home along with every resident it owns and returns
// the number of residents removed.
func (s *Store) DeleteHome(id string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.homeIndex(id)
	if idx < 0 {
		return 0, fmt.Errorf("delete home %q: %w", id, ErrHomeNotFound)
	}
	s.homes = append(s.homes[:idx:idx], s.homes[idx+1:]...)

	kept := s.residents[:0:0]
	removed := 0
	for _, r := range s.residents {
		if r.HomeID == id {
			removed++
			continue
		}
		kept = append(kept, r)
	}
	s.residents = kept
	return removed, nil
}

// AddResident appends a resident to an existing home and bumps its occupancy.
func (s *Store) AddResident(homeID string, draft models.ResidentDraft) (models.Resident, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	homeIdx := s.homeIndex(homeID)
	if homeIdx < 0 {
		return models.Resident{}, fmt.Errorf("add resident to home %q: %w", homeID, ErrHomeNotFound)
	}

	resident := models.Resident{
		HomeID:           homeID,
		Name:             draft.Name,
		Age:              max(draft.Age, 0),
		MedicalCondition: draft.MedicalCondition,
		CheckupFrequency: draft.CheckupFrequency,
		LastCheckup:      draft.LastCheckup,
		NextCheckup:      draft.NextCheckup,
		Notes:            draft.Notes,
	}
	normalizeResident(&resident)
	resident.ID = s.residentIDs.NewID()

	s.residents = append(s.residents, resident)
	s.homes[homeIdx].CurrentOccupancy++
	return resident, nil
}

// UpdateResident applies the patch to the resident with the given id. A patch
// that changes HomeID moves one unit of occupancy from the old home to the new.
func (s *Store) UpdateResident(id string, patch models.ResidentPatch) (models.Resident, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.residentIndex(id)
	if idx < 0 {
		return models.Resident{}, fmt.Errorf("update resident %q: %w", id, ErrResidentNotFound)
	}
	resident := s.residents[idx]

	targetIdx := -1
	if patch.HomeID != nil && *patch.HomeID != resident.HomeID {
		targetIdx = s.homeIndex(*patch.HomeID)
		if targetIdx < 0 {
			return models.Resident{}, fmt.Errorf("transfer resident %q to home %q: %w", id, *patch.HomeID, ErrHomeNotFound)
		}
	}

	patch.Apply(&resident)
	if patch.LastCheckup != nil && patch.NextCheckup == nil {
		// A new last checkup invalidates the previously derived due date.
		resident.NextCheckup = models.Date{}
	}
	normalizeResident(&resident)
	resident.Age = max(resident.Age, 0)
	resident.ID = id

	if targetIdx >= 0 {
		if srcIdx := s.homeIndex(resident.HomeID); srcIdx >= 0 {
			s.homes[srcIdx].CurrentOccupancy = max(s.homes[srcIdx].CurrentOccupancy-1, 0)
		}
		s.homes[targetIdx].CurrentOccupancy++
		resident.HomeID = *patch.HomeID
	}

	s.residents[idx] = resident
	return resident, nil
}

// DeleteResident removes a resident and decrements its home's occupancy,
// never below zero.
func (s *Store) DeleteResident(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.residentIndex(id)
	if idx < 0 {
		return fmt.Errorf("delete resident %q: %w", id, ErrResidentNotFound)
	}
	homeID := s.residents[idx].HomeID
	s.residents = append(s.residents[:idx:idx], s.residents[idx+1:]...)

	if homeIdx := s.homeIndex(homeID); homeIdx >= 0 {
		s.homes[homeIdx].CurrentOccupancy = max(s.homes[homeIdx].CurrentOccupancy-1, 0)
	}
	return nil
}

// ReconcileOccupancy resets a home's occupancy to its tracked resident count.
func (s *Store) ReconcileOccupancy(homeID string) (models.Home, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.homeIndex(homeID)
	if idx < 0 {
		return models.Home{}, fmt.Errorf("reconcile home %q: %w", homeID, ErrHomeNotFound)
	}
	count := 0
	for _, r := range s.residents {
		if r.HomeID == homeID {
			count++
		}
	}
	s.homes[idx].CurrentOccupancy = count
	return s.homes[idx], nil
}

// Homes returns a copy of all homes in insertion order.
func (s *Store) Homes() []models.Home {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Home(nil), s.homes...)
}

// Residents returns a copy of all residents in insertion order.
func (s *Store) Residents() []models.Resident {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Resident(nil), s.residents...)
}

// Home looks up a single home.
func (s *Store) Home(id string) (models.Home, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := s.homeIndex(id)
	if idx < 0 {
		return models.Home{}, fmt.Errorf("get home %q: %w", id, ErrHomeNotFound)
	}
	return s.homes[idx], nil
}

// Resident looks up a single resident.
func (s *Store) Resident(id string) (models.Resident, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := s.residentIndex(id)
	if idx < 0 {
		return models.Resident{}, fmt.Errorf("get resident %q: %w", id, ErrResidentNotFound)
	}
	return s.residents[idx], nil
}

// ResidentsOfHome lists the residents of one home in insertion order.
func (s *Store) ResidentsOfHome(homeID string) ([]models.Resident, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.homeIndex(homeID) < 0 {
		return nil, fmt.Errorf("list residents of home %q: %w", homeID, ErrHomeNotFound)
	}
	out := make([]models.Resident, 0)
	for _, r := range s.residents {
		if r.HomeID == homeID {
			out = append(out, r)
		}
	}
	return out, nil
}

// ResidentsByHome partitions residents by home id.
func (s *Store) ResidentsByHome() map[string][]models.Resident {
	return GroupByHome(s.Residents())
}

// Snapshot copies both collections under a single read lock.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Homes:     append([]models.Home(nil), s.homes...),
		Residents: append([]models.Resident(nil), s.residents...),
	}
}

// GroupByHome partitions residents by home id, preserving their order.
func GroupByHome(residents []models.Resident) map[string][]models.Resident {
	groups := make(map[string][]models.Resident)
	for _, r := range residents {
		groups[r.HomeID] = append(groups[r.HomeID], r)
	}
	return groups
}

func (s *Store) homeIndex(id string) int {
	for i := range s.homes {
		if s.homes[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) residentIndex(id string) int {
	for i := range s.residents {
		if s.residents[i].ID == id {
			return i
		}
	}
	return -1
}

func normalizeResident(r *models.Resident) {
	if r.MedicalCondition == "" {
		r.MedicalCondition = models.DefaultMedicalCondition
	}
	if r.CheckupFrequency == "" {
		r.CheckupFrequency = models.FrequencyMonthly
	}
	if r.NextCheckup.IsZero() && !r.LastCheckup.IsZero() {
		r.NextCheckup = r.CheckupFrequency.Next(r.LastCheckup)
	}
}
