package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lovelyhome/carehome/internal/auth"
	"github.com/lovelyhome/carehome/internal/service/admin"
)

// AuthHandler exposes the admin session gate.
type AuthHandler struct {
	svc    *admin.Service
	logger *zap.Logger
}

// NewAuthHandler constructs the session handler.
func NewAuthHandler(svc *admin.Service, logger *zap.Logger) *AuthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthHandler{svc: svc, logger: logger}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login opens the gate on valid credentials.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	ack, err := h.svc.Login(req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": ack.Message, "title": ack.Title})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"title":   ack.Title,
		"message": ack.Message,
		"state":   h.svc.Session(),
	})
}

// Logout closes the gate.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.svc.Logout()
	c.JSON(http.StatusOK, gin.H{"state": h.svc.Session()})
}

// Session reports the gate state.
func (h *AuthHandler) Session(c *gin.Context) {
	state := h.svc.Session()
	c.JSON(http.StatusOK, gin.H{"state": state, "authenticated": state == auth.StateAuthenticated})
}
