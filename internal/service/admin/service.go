package admin

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/lovelyhome/carehome/internal/auth"
	"github.com/lovelyhome/carehome/internal/domain/models"
	"github.com/lovelyhome/carehome/internal/store/memory"
)

// ErrInvalidCredentials is returned by Login when verification fails.
var ErrInvalidCredentials = errors.New("invalid credentials")

// LoginFailedMessage is shown to the user after a rejected login.
const LoginFailedMessage = "Invalid credentials. Please try again."

// Ack is the title and message confirming an admin action.
type Ack struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// HomeRoster is a home together with the residents it cares for.
type HomeRoster struct {
	Home      models.Home       `json:"home"`
	Residents []models.Resident `json:"residents"`
}

// Service funnels admin intents into the entity store behind the session gate.
type Service struct {
	store  *memory.Store
	gate   *auth.Gate
	logger *zap.Logger
}

// NewService wires the admin service.
func NewService(store *memory.Store, gate *auth.Gate, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, gate: gate, logger: logger}
}

// Login opens the admin gate.
func (s *Service) Login(username, password string) (Ack, error) {
	if !s.gate.Login(username, password) {
		return Ack{Title: "Login Failed", Message: LoginFailedMessage}, ErrInvalidCredentials
	}
	return Ack{Title: "Login Successful", Message: "Welcome to the admin dashboard."}, nil
}

// Logout closes the admin gate.
func (s *Service) Logout() {
	s.gate.Logout()
}

// Session reports the gate state.
func (s *Service) Session() auth.State {
	return s.gate.State()
}

// Homes lists all homes.
func (s *Service) Homes() []models.Home {
	return s.store.Homes()
}

// Home fetches one home.
func (s *Service) Home(id string) (models.Home, error) {
	return s.store.Home(id)
}

// AddHome creates a home.
func (s *Service) AddHome(draft models.HomeDraft) (models.Home, Ack) {
	home := s.store.AddHome(draft)
	s.logger.Info("home added", zap.String("home_id", home.ID), zap.String("name", home.Name))
	return home, Ack{Title: "Home Added", Message: fmt.Sprintf("%s has been added successfully.", home.Name)}
}

// UpdateHome patches a home.
func (s *Service) UpdateHome(id string, patch models.HomePatch) (models.Home, Ack, error) {
	home, err := s.store.UpdateHome(id, patch)
	if err != nil {
		return models.Home{}, Ack{}, err
	}
	s.logger.Info("home updated", zap.String("home_id", id))
	return home, Ack{Title: "Home Updated", Message: fmt.Sprintf("%s has been updated successfully.", home.Name)}, nil
}

// DeleteHome removes a home and its residents.
func (s *Service) DeleteHome(id string) (Ack, error) {
	removed, err := s.store.DeleteHome(id)
	if err != nil {
		return Ack{}, err
	}
	s.logger.Info("home deleted", zap.String("home_id", id), zap.Int("residents_removed", removed))
	return Ack{Title: "Home Deleted", Message: "The home and all its residents have been removed."}, nil
}

// ReconcileOccupancy resets a home's occupancy to its tracked resident count.
func (s *Service) ReconcileOccupancy(id string) (models.Home, Ack, error) {
	before, err := s.store.Home(id)
	if err != nil {
		return models.Home{}, Ack{}, err
	}
	home, err := s.store.ReconcileOccupancy(id)
	if err != nil {
		return models.Home{}, Ack{}, err
	}
	s.logger.Info("occupancy reconciled",
		zap.String("home_id", id),
		zap.Int("previous", before.CurrentOccupancy),
		zap.Int("current", home.CurrentOccupancy))
	return home, Ack{
		Title:   "Occupancy Reconciled",
		Message: fmt.Sprintf("%s now counts %d residents.", home.Name, home.CurrentOccupancy),
	}, nil
}

// Residents lists all residents.
func (s *Service) Residents() []models.Resident {
	return s.store.Residents()
}

// Resident fetches one resident.
func (s *Service) Resident(id string) (models.Resident, error) {
	return s.store.Resident(id)
}

// ResidentsOfHome lists the residents of one home.
func (s *Service) ResidentsOfHome(homeID string) ([]models.Resident, error) {
	return s.store.ResidentsOfHome(homeID)
}

// AddResident admits a resident to a home.
func (s *Service) AddResident(homeID string, draft models.ResidentDraft) (models.Resident, Ack, error) {
	resident, err := s.store.AddResident(homeID, draft)
	if err != nil {
		return models.Resident{}, Ack{}, err
	}
	s.logger.Info("resident added",
		zap.String("resident_id", resident.ID),
		zap.String("home_id", homeID))
	return resident, Ack{Title: "Resident Added", Message: fmt.Sprintf("%s has been added successfully.", resident.Name)}, nil
}

// UpdateResident patches a resident, transferring it when HomeID changes.
func (s *Service) UpdateResident(id string, patch models.ResidentPatch) (models.Resident, Ack, error) {
	before, err := s.store.Resident(id)
	if err != nil {
		return models.Resident{}, Ack{}, err
	}
	resident, err := s.store.UpdateResident(id, patch)
	if err != nil {
		return models.Resident{}, Ack{}, err
	}

	fields := []zap.Field{zap.String("resident_id", id)}
	if before.HomeID != resident.HomeID {
		fields = append(fields, zap.String("from_home", before.HomeID), zap.String("to_home", resident.HomeID))
	}
	s.logger.Info("resident updated", fields...)
	return resident, Ack{Title: "Resident Updated", Message: fmt.Sprintf("%s's information has been updated.", resident.Name)}, nil
}

// DeleteResident removes a resident.
func (s *Service) DeleteResident(id string) (Ack, error) {
	if err := s.store.DeleteResident(id); err != nil {
		return Ack{}, err
	}
	s.logger.Info("resident removed", zap.String("resident_id", id))
	return Ack{Title: "Resident Removed", Message: "The resident has been removed from the database."}, nil
}

// Dashboard groups every home with its residents, both in insertion order.
func (s *Service) Dashboard() []HomeRoster {
	snap := s.store.Snapshot()
	groups := memory.GroupByHome(snap.Residents)

	out := make([]HomeRoster, 0, len(snap.Homes))
	for _, h := range snap.Homes {
		residents := groups[h.ID]
		if residents == nil {
			residents = []models.Resident{}
		}
		out = append(out, HomeRoster{Home: h, Residents: residents})
	}
	return out
}
