// Package auth implements the shared-admin login and the cookie gate that
// protects the admin routes.
package auth

import "github.com/gin-gonic/gin"

const (
	cookieName = "adminAuth"
	// cookieSentinel is the only marker value that authorizes. Anything else
	// in the cookie, "true" and "0" included, stays anonymous.
	cookieSentinel = "1"
)

// Gate is the capability check for admin operations. It is advisory, not
// cryptographic; a failed check redirects to login, never to an error page.
type Gate interface {
	IsAuthorized(c *gin.Context) bool
	Grant(c *gin.Context)
	Revoke(c *gin.Context)
}

// CookieGate authorizes requests whose admin cookie equals the sentinel.
type CookieGate struct{}

// NewCookieGate returns the portal's cookie-marker gate.
func NewCookieGate() *CookieGate {
	return &CookieGate{}
}

// IsAuthorized reports whether the request carries the exact sentinel marker.
func (*CookieGate) IsAuthorized(c *gin.Context) bool {
	marker, err := c.Cookie(cookieName)
	return err == nil && marker == cookieSentinel
}

// Grant sets the marker on the response.
func (*CookieGate) Grant(c *gin.Context) {
	c.SetCookie(cookieName, cookieSentinel, 0, "/", "", false, true)
}

// Revoke clears the marker unconditionally.
func (*CookieGate) Revoke(c *gin.Context) {
	c.SetCookie(cookieName, "", -1, "/", "", false, true)
}
