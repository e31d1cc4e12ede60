package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lovelyhome/carehome/internal/domain/models"
	"github.com/lovelyhome/carehome/internal/service/outreach"
	"github.com/lovelyhome/carehome/internal/store/memory"
)

var errInvalidRequest = errors.New("invalid request")

var badRequestErrors = []error{
	errInvalidRequest,
	models.ErrUnknownCategory,
	models.ErrUnknownFrequency,
	outreach.ErrInvalidAmount,
	outreach.ErrUnsupportedCurrency,
	outreach.ErrUnsupportedCategory,
	outreach.ErrInvalidDate,
	outreach.ErrUnsupportedRole,
	outreach.ErrUnsupportedDuration,
}

// statusFor maps a service error to its HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, memory.ErrHomeNotFound), errors.Is(err, memory.ErrResidentNotFound):
		return http.StatusNotFound
	}
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}

func respondError(c *gin.Context, logger *zap.Logger, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error("request failed", zap.Error(err), zap.String("path", c.FullPath()))
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}
	logger.Debug("request rejected", zap.Error(err), zap.Int("status", status))
	c.JSON(status, gin.H{"error": err.Error()})
}

// bindJSON decodes and validates the body, answering 400 on failure.
func bindJSON(c *gin.Context, logger *zap.Logger, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		logger.Warn("invalid request body", zap.Error(err), zap.String("path", c.FullPath()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return false
	}
	return true
}
