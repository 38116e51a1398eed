// Package middleware contain utilities middleware code
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dhasan111-hiringdock/FIrstconnect/internal/auth"
)

// RequireAdmin redirects unauthorized requests to the login page instead of
// executing the wrapped handler. It never answers with an error page.
func RequireAdmin(gate auth.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !gate.IsAuthorized(c) {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
