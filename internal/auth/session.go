package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	// CookieName is the name of the admin session cookie.
	CookieName = "adminSession"

	// localsKey holds the *Session of an authenticated request.
	localsKey = "adminSession"
)

// Session is an authenticated admin session.
type Session struct {
	Token     string
	ExpiresAt time.Time
}

// TTL returns the remaining lifetime of the session at now.
func (s *Session) TTL(now time.Time) time.Duration {
	return s.ExpiresAt.Sub(now)
}

// WithContext stores s as the session of the request.
func WithContext(c *fiber.Ctx, s *Session) {
	c.Locals(localsKey, s)
}

// FromContext returns the session of the request, or nil for visitors.
func FromContext(c *fiber.Ctx) *Session {
	s, ok := c.Locals(localsKey).(*Session)
	if !ok {
		return nil
	}

	return s
}

// SetCookie writes the adminSession cookie for s. It is HttpOnly and
// SameSite=Strict, and Secure whenever the request arrived over TLS.
func SetCookie(c *fiber.Ctx, s *Session, maxAge time.Duration) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    s.Token,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		Expires:  s.ExpiresAt,
		Secure:   c.Protocol() == "https",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}

// ClearCookie expires the adminSession cookie.
func ClearCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		Secure:   c.Protocol() == "https",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}
