// Package suggest provides the public suggestion form.
package suggest

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/linkshelf/linkshelf/internal/config"
	"github.com/linkshelf/linkshelf/internal/db/controller/suggestion"
	"github.com/linkshelf/linkshelf/internal/metrics"
	"github.com/linkshelf/linkshelf/internal/web/form"
	"github.com/linkshelf/linkshelf/internal/web/handler"
)

const (
	// Path is the path to the suggestion page.
	Path = "/suggest"

	// TemplateName is the name of the suggestion template.
	TemplateName = "suggest"

	// MsgThanks is shown once a suggestion is stored.
	MsgThanks = "Thank you for your suggestion! It will be reviewed by the admin."

	// MsgRequired is shown when name or url is missing.
	MsgRequired = "Name and URL are required"

	// MsgSubmitFailed is shown when the suggestion could not be stored.
	MsgSubmitFailed = "Error submitting suggestion. Please try again."
)

// Service is the suggestion form handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the suggestion form handler.
var Handler = Service{}

// Init initializes the suggestion form handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.Get)
		router.Post(handler.RouterRootPath, s.Post)
	})

	return nil
}

// Get renders an empty form.
func (s *Service) Get(c *fiber.Ctx) error {
	return s.render(c, form.Suggestion{}, nil)
}

// Post stores the suggestion. The form is reset after a success and kept
// after a failure.
func (s *Service) Post(c *fiber.Ctx) error {
	f := form.ParseSuggestion(c)

	if errs := form.Validate(f); len(errs) > 0 {
		return s.render(c, f, fiber.Map{"error": MsgRequired})
	}

	if err := suggestion.Create(s.db.WithContext(c.UserContext()), f.Model()); err != nil {
		log.Error().Err(err).Msg("failed to store suggestion")
		return s.render(c, f, fiber.Map{"error": MsgSubmitFailed})
	}

	metrics.SuggestionsSubmitted.Inc()
	log.Info().Str("name", f.Name).Str("url", f.URL).Msg("suggestion submitted")

	return s.render(c, form.Suggestion{}, fiber.Map{"message": MsgThanks})
}

func (s *Service) render(c *fiber.Ctx, f form.Suggestion, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	data["Form"] = f

	return c.Render(TemplateName, handler.Page(c, s.cfg, data), handler.BaseLayout)
}
