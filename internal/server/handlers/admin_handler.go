package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lovelyhome/carehome/internal/domain/models"
	"github.com/lovelyhome/carehome/internal/service/admin"
)

// AdminHandler serves the homes and residents dashboard.
type AdminHandler struct {
	svc    *admin.Service
	logger *zap.Logger
}

// NewAdminHandler constructs the dashboard handler.
func NewAdminHandler(svc *admin.Service, logger *zap.Logger) *AdminHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdminHandler{svc: svc, logger: logger}
}

// homeRequest carries every editable home field. Updates replace all of them.
type homeRequest struct {
	Name          string `json:"name" binding:"required"`
	Type          string `json:"type"`
	Location      string `json:"location" binding:"required"`
	Capacity      *int   `json:"capacity" binding:"required,min=0"`
	ContactPerson string `json:"contact_person" binding:"required"`
	ContactNumber string `json:"contact_number" binding:"required"`
}

type createHomeRequest struct {
	homeRequest
	CurrentOccupancy *int `json:"current_occupancy" binding:"required,min=0"`
}

func (r homeRequest) patch() (models.HomePatch, error) {
	category, err := models.ParseHomeCategory(r.Type)
	if err != nil {
		return models.HomePatch{}, fmt.Errorf("%w: %q", err, r.Type)
	}
	name := strings.TrimSpace(r.Name)
	location := strings.TrimSpace(r.Location)
	person := strings.TrimSpace(r.ContactPerson)
	number := strings.TrimSpace(r.ContactNumber)
	return models.HomePatch{
		Name:          &name,
		Type:          &category,
		Location:      &location,
		Capacity:      r.Capacity,
		ContactPerson: &person,
		ContactNumber: &number,
	}, nil
}

func (r createHomeRequest) draft() (models.HomeDraft, error) {
	p, err := r.patch()
	if err != nil {
		return models.HomeDraft{}, err
	}
	return models.HomeDraft{
		Name:             *p.Name,
		Type:             *p.Type,
		Location:         *p.Location,
		Capacity:         *p.Capacity,
		CurrentOccupancy: *r.CurrentOccupancy,
		ContactPerson:    *p.ContactPerson,
		ContactNumber:    *p.ContactNumber,
	}, nil
}

// residentRequest carries every editable resident field. HomeID is only read
// on update, where a different value transfers the resident.
type residentRequest struct {
	HomeID           string `json:"home_id"`
	Name             string `json:"name" binding:"required"`
	Age              *int   `json:"age" binding:"required,min=0"`
	MedicalCondition string `json:"medical_condition"`
	CheckupFrequency string `json:"checkup_frequency"`
	LastCheckup      string `json:"last_checkup"`
	NextCheckup      string `json:"next_checkup"`
	Notes            string `json:"notes"`
}

func (r residentRequest) draft() (models.ResidentDraft, error) {
	freq, err := models.ParseCheckupFrequency(r.CheckupFrequency)
	if err != nil {
		return models.ResidentDraft{}, fmt.Errorf("%w: %q", err, r.CheckupFrequency)
	}
	last, err := models.ParseDate(r.LastCheckup)
	if err != nil {
		return models.ResidentDraft{}, fmt.Errorf("%w: last_checkup: %v", errInvalidRequest, err)
	}
	next, err := models.ParseDate(r.NextCheckup)
	if err != nil {
		return models.ResidentDraft{}, fmt.Errorf("%w: next_checkup: %v", errInvalidRequest, err)
	}
	return models.ResidentDraft{
		Name:             strings.TrimSpace(r.Name),
		Age:              *r.Age,
		MedicalCondition: strings.TrimSpace(r.MedicalCondition),
		CheckupFrequency: freq,
		LastCheckup:      last,
		NextCheckup:      next,
		Notes:            strings.TrimSpace(r.Notes),
	}, nil
}

func (r residentRequest) patch() (models.ResidentPatch, error) {
	d, err := r.draft()
	if err != nil {
		return models.ResidentPatch{}, err
	}
	p := models.ResidentPatch{
		Name:             &d.Name,
		Age:              &d.Age,
		MedicalCondition: &d.MedicalCondition,
		CheckupFrequency: &d.CheckupFrequency,
		LastCheckup:      &d.LastCheckup,
		NextCheckup:      &d.NextCheckup,
		Notes:            &d.Notes,
	}
	if homeID := strings.TrimSpace(r.HomeID); homeID != "" {
		p.HomeID = &homeID
	}
	// An empty next_checkup is derived from last_checkup by the store.
	if d.NextCheckup.IsZero() && !d.LastCheckup.IsZero() {
		p.NextCheckup = nil
	}
	return p, nil
}

// ListHomes returns every home.
func (h *AdminHandler) ListHomes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"homes": h.svc.Homes()})
}

// GetHome returns one home.
func (h *AdminHandler) GetHome(c *gin.Context) {
	home, err := h.svc.Home(c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"home": home})
}

// CreateHome registers a home.
func (h *AdminHandler) CreateHome(c *gin.Context) {
	var req createHomeRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}
	draft, err := req.draft()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	home, ack := h.svc.AddHome(draft)
	c.JSON(http.StatusCreated, gin.H{"home": home, "title": ack.Title, "message": ack.Message})
}

// UpdateHome replaces a home's editable fields.
func (h *AdminHandler) UpdateHome(c *gin.Context) {
	var req homeRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}
	patch, err := req.patch()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	home, ack, err := h.svc.UpdateHome(c.Param("id"), patch)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"home": home, "title": ack.Title, "message": ack.Message})
}

// DeleteHome removes a home and its residents.
func (h *AdminHandler) DeleteHome(c *gin.Context) {
	ack, err := h.svc.DeleteHome(c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"title": ack.Title, "message": ack.Message})
}

// ReconcileHome resets occupancy to the tracked resident count.
func (h *AdminHandler) ReconcileHome(c *gin.Context) {
	home, ack, err := h.svc.ReconcileOccupancy(c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"home": home, "title": ack.Title, "message": ack.Message})
}

// ListHomeResidents returns the residents of one home.
func (h *AdminHandler) ListHomeResidents(c *gin.Context) {
	residents, err := h.svc.ResidentsOfHome(c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"residents": residents})
}

// CreateResident admits a resident to the home in the path.
func (h *AdminHandler) CreateResident(c *gin.Context) {
	var req residentRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}
	draft, err := req.draft()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	resident, ack, err := h.svc.AddResident(c.Param("id"), draft)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"resident": resident, "title": ack.Title, "message": ack.Message})
}

// ListResidents returns every resident.
func (h *AdminHandler) ListResidents(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"residents": h.svc.Residents()})
}

// GetResident returns one resident.
func (h *AdminHandler) GetResident(c *gin.Context) {
	resident, err := h.svc.Resident(c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"resident": resident})
}

// UpdateResident replaces a resident's editable fields.
func (h *AdminHandler) UpdateResident(c *gin.Context) {
	var req residentRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}
	patch, err := req.patch()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	resident, ack, err := h.svc.UpdateResident(c.Param("id"), patch)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"resident": resident, "title": ack.Title, "message": ack.Message})
}

// DeleteResident removes a resident.
func (h *AdminHandler) DeleteResident(c *gin.Context) {
	ack, err := h.svc.DeleteResident(c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"title": ack.Title, "message": ack.Message})
}

// Dashboard returns homes grouped with their residents.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"homes": h.svc.Dashboard()})
}
