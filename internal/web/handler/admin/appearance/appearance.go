// Package appearance provides the admin actions on the background image.
package appearance

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/linkshelf/linkshelf/internal/config"
	controller "github.com/linkshelf/linkshelf/internal/db/controller/appearance"
	"github.com/linkshelf/linkshelf/internal/web/form"
	"github.com/linkshelf/linkshelf/internal/web/handler"
	"github.com/linkshelf/linkshelf/internal/web/handler/dashboard"
)

const (
	// Path applies a background image.
	Path = handler.AdminPath + "/appearance"

	// RemovePath removes the background image.
	RemovePath = Path + "/remove"

	// MsgInvalidURL is shown when the background url does not validate.
	MsgInvalidURL = "Please enter a valid image URL"
)

// Service is the admin appearance handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	db        *gorm.DB
	dashboard *dashboard.Service
}

// Handler is the admin appearance handler.
var Handler = Service{}

// Init initializes the admin appearance handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, dash *dashboard.Service) {
	if app == nil || cfg == nil || db == nil || dash == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.db = db
	s.dashboard = dash

	app.Post(Path, handler.AdminOnly, s.Apply)
	app.Post(RemovePath, handler.AdminOnly, s.Remove)
}

// Apply merges the background image into the appearance setting.
func (s *Service) Apply(c *fiber.Ctx) error {
	f := form.ParseBackground(c)

	if errs := form.Validate(f); len(errs) > 0 {
		return s.dashboard.Render(c, dashboard.TabSettings, func(d *dashboard.Data) {
			d.SettingsForm = f
		}, fiber.Map{"error": MsgInvalidURL})
	}

	if err := controller.ApplyBackground(s.db.WithContext(c.UserContext()), f.URL); err != nil {
		log.Error().Err(err).Msg("failed to apply background image")
		return handler.Redirect(c, dashboard.TabURL(dashboard.TabSettings), "",
			"Error saving background image. Please try again.")
	}

	log.Info().Str("url", f.URL).Msg("background image applied")

	return handler.Redirect(c, dashboard.TabURL(dashboard.TabSettings), "Background image applied", "")
}

// Remove deletes the background image field only.
func (s *Service) Remove(c *fiber.Ctx) error {
	if err := controller.RemoveBackground(s.db.WithContext(c.UserContext())); err != nil {
		log.Error().Err(err).Msg("failed to remove background image")
		return handler.Redirect(c, dashboard.TabURL(dashboard.TabSettings), "",
			"Error removing background image. Please try again.")
	}

	log.Info().Msg("background image removed")

	return handler.Redirect(c, dashboard.TabURL(dashboard.TabSettings), "Background image removed", "")
}
