package login

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/linkshelf/linkshelf/internal/auth"
	"github.com/linkshelf/linkshelf/internal/config"
	"github.com/linkshelf/linkshelf/internal/metrics"
	"github.com/linkshelf/linkshelf/internal/web/handler"
	"github.com/linkshelf/linkshelf/internal/web/handler/dashboard"
)

const (
	// Path is the path to the login page.
	Path = handler.AdminPath + "/login"

	// TemplateName is the name of the login template.
	TemplateName = "admin/login"
)

// Service is the login handler service.
type Service struct {
	handler.Service
	cfg  *config.Config
	auth *auth.Service
}

// Handler is the login handler.
var Handler = Service{}

// Init initializes the login handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, authService *auth.Service) error {
	if app == nil || cfg == nil || db == nil || authService == nil {
		return errors.New("app, cfg, db or auth service is nil")
	}

	s.cfg = cfg
	s.auth = authService

	// register routes
	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.Get)
		router.Post(handler.RouterRootPath, s.Post)
	})

	return nil
}

// Get handles the login page rendering.
func (s *Service) Get(c *fiber.Ctx) error {
	return c.Render(TemplateName, handler.Page(c, s.cfg, nil), handler.BaseLayout)
}

// Post handles the login form submission.
func (s *Service) Post(c *fiber.Ctx) error {
	sess, err := s.auth.Login(c.UserContext(), c.FormValue("password"))
	if err != nil {
		msg, result := loginError(err)
		metrics.Logins.WithLabelValues(result).Inc()

		if result == metrics.LoginError {
			log.Error().Err(err).Msg("admin login failed")
		} else {
			log.Info().Str("ip", c.IP()).Str("result", result).Msg("admin login rejected")
		}

		return c.Render(TemplateName, handler.Page(c, s.cfg, fiber.Map{
			"error": msg,
		}), handler.BaseLayout)
	}

	metrics.Logins.WithLabelValues(metrics.LoginSuccess).Inc()
	log.Info().Str("ip", c.IP()).Msg("admin logged in")

	auth.SetCookie(c, sess, s.auth.TTL())

	return c.Redirect(dashboard.Path)
}

// loginError maps a login failure to the form message and metric label.
func loginError(err error) (msg, result string) {
	switch {
	case errors.Is(err, auth.ErrEmptyPassword):
		return MsgEmptyPassword, metrics.LoginEmpty
	case errors.Is(err, auth.ErrNotSetUp):
		return MsgNotSetUp, metrics.LoginNotSetUp
	case errors.Is(err, auth.ErrIncorrectPassword):
		return MsgIncorrectPassword, metrics.LoginIncorrect
	default:
		return MsgVerifyFailed, metrics.LoginError
	}
}
