package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Authenticator reports whether the admin gate is open.
type Authenticator interface {
	Authenticated() bool
}

// RequireAdmin rejects the request with 401 while the gate is closed.
func RequireAdmin(gate Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if gate == nil || !gate.Authenticated() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "admin login required"})
			return
		}
		c.Next()
	}
}
