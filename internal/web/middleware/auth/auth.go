package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/linkshelf/linkshelf/internal/auth"
	"github.com/linkshelf/linkshelf/internal/web/handler/dashboard"
	"github.com/linkshelf/linkshelf/internal/web/handler/login"
	"github.com/linkshelf/linkshelf/internal/web/handler/logout"
)

// New returns the middleware guarding the admin area.
func New(svc *auth.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Allow logout page without authentication
		if IsLogoutPage(c) {
			return c.Next()
		}

		isLoginPage := IsLoginPage(c)
		token := c.Cookies(auth.CookieName)

		sess, err := svc.Resume(c.UserContext(), token)
		if err != nil && !errors.Is(err, auth.ErrNoSession) {
			log.Error().Err(err).Msg("failed to resume admin session")
		}

		if sess == nil {
			if token != "" {
				auth.ClearCookie(c)
			}

			// If we're already on the login page, don't redirect (would cause loop)
			if isLoginPage {
				return c.Next()
			}

			return c.Redirect(login.Path)
		}

		// sliding expiration: the cookie follows the extended session row
		auth.SetCookie(c, sess, svc.TTL())
		auth.WithContext(c, sess)

		if isLoginPage && c.Method() == fiber.MethodGet {
			return c.Redirect(dashboard.Path)
		}

		return c.Next()
	}
}

// IsLoginPage checks if the current request is for the login page.
func IsLoginPage(c *fiber.Ctx) bool {
	return strings.HasPrefix(strings.ToLower(c.Path()), login.Path)
}

// IsLogoutPage checks if the current request is for the logout page.
func IsLogoutPage(c *fiber.Ctx) bool {
	return strings.HasPrefix(strings.ToLower(c.Path()), logout.Path)
}
