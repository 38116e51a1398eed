package auth

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	// Load env
	_ "github.com/joho/godotenv/autoload"
)

// DefaultAdminEmail is used when ADMIN_EMAIL is not configured.
const DefaultAdminEmail = "umar@firstconnect.com"

const loginErrorMessage = "This login is restricted. Only the authorised admin email can sign in."

// LoginHandler holds the gate and the configured admin identifier for the
// login and logout endpoints.
type LoginHandler struct {
	Gate       Gate
	AdminEmail string
}

// NewLoginHandler creates a LoginHandler, reading the admin email from the
// environment.
func NewLoginHandler(gate Gate) *LoginHandler {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = DefaultAdminEmail
	}
	return &LoginHandler{
		Gate:       gate,
		AdminEmail: email,
	}
}

// ShowLogin renders the login form, skipping straight to the dashboard for a
// request that is already authorized.
func (h *LoginHandler) ShowLogin(c *gin.Context) {
	if h.Gate.IsAuthorized(c) {
		c.Redirect(http.StatusFound, "/admin/jobs")
		return
	}
	c.HTML(http.StatusOK, "admin_login.tmpl", gin.H{})
}

// Login checks the submitted identifier against the configured admin email,
// case-insensitively. Success sets the marker and redirects to the dashboard;
// failure re-renders the form with an inline message and no marker.
func (h *LoginHandler) Login(c *gin.Context) {
	email := strings.TrimSpace(c.PostForm("email"))
	if !strings.EqualFold(email, h.AdminEmail) {
		c.HTML(http.StatusOK, "admin_login.tmpl", gin.H{
			"Error": loginErrorMessage,
		})
		return
	}
	h.Gate.Grant(c)
	c.Redirect(http.StatusFound, "/admin/jobs")
}

// Logout clears the marker and returns to the public board.
func (h *LoginHandler) Logout(c *gin.Context) {
	h.Gate.Revoke(c)
	c.Redirect(http.StatusFound, "/")
}
