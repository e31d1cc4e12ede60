package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lovelyhome/carehome/internal/service/outreach"
)

// SiteHandler serves the public site: content, donations and forms.
type SiteHandler struct {
	svc    *outreach.Service
	logger *zap.Logger
}

// NewSiteHandler constructs the public site handler.
func NewSiteHandler(svc *outreach.Service, logger *zap.Logger) *SiteHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SiteHandler{svc: svc, logger: logger}
}

func (h *SiteHandler) Site(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.SiteInfo())
}

func (h *SiteHandler) DonationOptions(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.DonationOptions())
}

// Donate simulates a donation and returns its receipt.
func (h *SiteHandler) Donate(c *gin.Context) {
	var req outreach.DonationRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	receipt, err := h.svc.Donate(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{
		"title":   "Thank you for your donation!",
		"message": receipt.Message,
		"receipt": receipt,
	})
}

// Contact stores a contact form message.
func (h *SiteHandler) Contact(c *gin.Context) {
	var req outreach.ContactRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	msg, err := h.svc.SubmitContact(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"title":   "Message Sent!",
		"message": outreach.ContactAcknowledgement,
		"contact": msg,
	})
}

// Inbox lists contact messages for the admin.
func (h *SiteHandler) Inbox(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"messages": h.svc.Inbox()})
}

func (h *SiteHandler) ListSessions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sessions": h.svc.Sessions()})
}

func (h *SiteHandler) Schedule(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"days": h.svc.Schedule()})
}

// CreateSession schedules a speaker session.
func (h *SiteHandler) CreateSession(c *gin.Context) {
	var req outreach.SessionRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	session, err := h.svc.AddSession(req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"title":   "Session Added!",
		"message": "The new session has been scheduled successfully.",
		"session": session,
	})
}

func (h *SiteHandler) ListTalents(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"talents": h.svc.Talents()})
}

// CreateTalent adds a resident to the talent showcase.
func (h *SiteHandler) CreateTalent(c *gin.Context) {
	var req outreach.TalentRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	talent := h.svc.AddTalent(req)
	c.JSON(http.StatusCreated, gin.H{
		"title":   "Talent Added!",
		"message": "The new talent has been added to the showcase.",
		"talent":  talent,
	})
}
