package logout

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/linkshelf/linkshelf/internal/auth"
	"github.com/linkshelf/linkshelf/internal/config"
	"github.com/linkshelf/linkshelf/internal/web/handler"
	"github.com/linkshelf/linkshelf/internal/web/handler/login"
)

const (
	// Path is the path of the logout action.
	Path = handler.AdminPath + "/logout"
)

// Service is the logout handler service.
type Service struct {
	handler.Service
	cfg  *config.Config
	auth *auth.Service
}

// Handler is the logout handler.
var Handler = Service{}

// Init initializes the logout handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, authService *auth.Service) {
	if app == nil || cfg == nil || authService == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.auth = authService

	// logout route (passed through by the auth middleware)
	app.Get(Path, s.Logout)
	app.Post(Path, s.Logout)
}

// Logout ends the admin session: every session row with the cookie token
// is deleted and the cookie is cleared.
func (s *Service) Logout(c *fiber.Ctx) error {
	if token := c.Cookies(auth.CookieName); token != "" {
		if err := s.auth.Logout(c.UserContext(), token); err != nil {
			log.Error().Err(err).Msg("failed to delete admin session")
		}
	}

	auth.ClearCookie(c)

	return c.Redirect(login.Path)
}
