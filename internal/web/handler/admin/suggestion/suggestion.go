// Package suggestion provides the admin review actions on suggestions.
package suggestion

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/linkshelf/linkshelf/internal/config"
	controller "github.com/linkshelf/linkshelf/internal/db/controller/suggestion"
	"github.com/linkshelf/linkshelf/internal/metrics"
	"github.com/linkshelf/linkshelf/internal/web/handler"
	"github.com/linkshelf/linkshelf/internal/web/handler/dashboard"
)

const (
	// Path is the path of the suggestion collection.
	Path = handler.AdminPath + "/suggestions"

	// MsgNotFound is shown when the suggestion does not exist.
	MsgNotFound = "Suggestion not found"
)

// Service is the admin suggestion handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the admin suggestion handler.
var Handler = Service{}

// Init initializes the admin suggestion handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.db = db

	app.Post(Path+"/:id/approve", handler.AdminOnly, s.Approve)
	app.Post(Path+"/:id/delete", handler.AdminOnly, s.Delete)
}

// Approve turns a suggestion into a visible link.
func (s *Service) Approve(c *fiber.Ctx) error {
	id := c.Params("id")
	back := dashboard.TabURL(dashboard.TabSuggestions)

	l, err := controller.Approve(s.db.WithContext(c.UserContext()), id)
	switch {
	case errors.Is(err, controller.ErrSuggestionNotFound):
		return handler.Redirect(c, back, "", MsgNotFound)
	case err != nil:
		log.Error().Err(err).Str("suggestion_id", id).Msg("failed to approve suggestion")
		return handler.Redirect(c, back, "", "Error approving suggestion. Please try again.")
	}

	metrics.LinkChanges.WithLabelValues("approve").Inc()
	log.Info().Str("suggestion_id", id).Str("link_id", l.ID).Msg("suggestion approved")

	return handler.Redirect(c, back, "Suggestion approved and added to links", "")
}

// Delete discards a suggestion once the confirmation was submitted.
func (s *Service) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	back := dashboard.TabURL(dashboard.TabSuggestions)
	db := s.db.WithContext(c.UserContext())

	if !handler.Confirmed(c) {
		sg, err := controller.Get(db, id)
		if err != nil {
			return handler.Redirect(c, back, "", MsgNotFound)
		}

		return handler.RenderConfirm(c, handler.Page(c, s.cfg, nil),
			"Are you sure you want to delete this suggestion?", sg.Name,
			Path+"/"+sg.ID+"/delete", back)
	}

	err := controller.Delete(db, id)
	switch {
	case errors.Is(err, controller.ErrSuggestionNotFound):
		return handler.Redirect(c, back, "", MsgNotFound)
	case err != nil:
		log.Error().Err(err).Str("suggestion_id", id).Msg("failed to delete suggestion")
		return handler.Redirect(c, back, "", "Error deleting suggestion. Please try again.")
	}

	log.Info().Str("suggestion_id", id).Msg("suggestion deleted")

	return handler.Redirect(c, back, "Suggestion deleted", "")
}
