// Package link provides the admin actions on links.
package link

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/linkshelf/linkshelf/internal/config"
	controller "github.com/linkshelf/linkshelf/internal/db/controller/link"
	"github.com/linkshelf/linkshelf/internal/metrics"
	"github.com/linkshelf/linkshelf/internal/web/form"
	"github.com/linkshelf/linkshelf/internal/web/handler"
	"github.com/linkshelf/linkshelf/internal/web/handler/dashboard"
)

const (
	// Path is the path of the link collection.
	Path = handler.AdminPath + "/links"

	// MsgRequired is shown when name or url is missing.
	MsgRequired = "Name and URL are required"
)

// Service is the admin link handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	db        *gorm.DB
	dashboard *dashboard.Service
}

// Handler is the admin link handler.
var Handler = Service{}

// Init initializes the admin link handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, dash *dashboard.Service) {
	if app == nil || cfg == nil || db == nil || dash == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.db = db
	s.dashboard = dash

	app.Post(Path, handler.AdminOnly, s.Create)
	app.Post(Path+"/:id", handler.AdminOnly, s.Update)
	app.Post(Path+"/:id/delete", handler.AdminOnly, s.Delete)
}

// Create handles the add link form.
func (s *Service) Create(c *fiber.Ctx) error {
	f := form.ParseLink(c)

	if errs := form.Validate(f); len(errs) > 0 {
		return s.dashboard.Render(c, dashboard.TabLinks, func(d *dashboard.Data) {
			d.CreateForm = f
		}, fiber.Map{"error": MsgRequired})
	}

	l := f.Model()
	if err := controller.Create(s.db.WithContext(c.UserContext()), l); err != nil {
		log.Error().Err(err).Msg("failed to create link")

		return s.dashboard.Render(c, dashboard.TabLinks, func(d *dashboard.Data) {
			d.CreateForm = f
		}, fiber.Map{"error": "Error adding link. Please try again."})
	}

	metrics.LinkChanges.WithLabelValues("create").Inc()
	log.Info().Str("link_id", l.ID).Str("name", l.Name).Msg("link created")

	return handler.Redirect(c, dashboard.TabURL(dashboard.TabLinks), "Link added successfully", "")
}

// Update handles the inline edit form.
func (s *Service) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	f := form.ParseLink(c)

	if errs := form.Validate(f); len(errs) > 0 {
		return s.dashboard.Render(c, dashboard.TabLinks, func(d *dashboard.Data) {
			d.EditID = id
			d.EditForm = f
		}, fiber.Map{"error": MsgRequired})
	}

	_, err := controller.Update(s.db.WithContext(c.UserContext()), id, f.Model())
	switch {
	case errors.Is(err, controller.ErrLinkNotFound):
		return handler.Redirect(c, dashboard.TabURL(dashboard.TabLinks), "", dashboard.MsgLinkNotFound)
	case err != nil:
		log.Error().Err(err).Str("link_id", id).Msg("failed to update link")
		return handler.Redirect(c, dashboard.TabURL(dashboard.TabLinks), "", "Error updating link. Please try again.")
	}

	metrics.LinkChanges.WithLabelValues("update").Inc()
	log.Info().Str("link_id", id).Msg("link updated")

	return handler.Redirect(c, dashboard.TabURL(dashboard.TabLinks), "Link updated", "")
}

// Delete removes a link once the confirmation was submitted.
func (s *Service) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	db := s.db.WithContext(c.UserContext())

	if !handler.Confirmed(c) {
		l, err := controller.Get(db, id)
		if err != nil {
			return handler.Redirect(c, dashboard.TabURL(dashboard.TabLinks), "", dashboard.MsgLinkNotFound)
		}

		return handler.RenderConfirm(c, handler.Page(c, s.cfg, nil),
			"Are you sure you want to delete this link?", l.Name,
			Path+"/"+l.ID+"/delete", dashboard.TabURL(dashboard.TabLinks))
	}

	err := controller.Delete(db, id)
	switch {
	case errors.Is(err, controller.ErrLinkNotFound):
		return handler.Redirect(c, dashboard.TabURL(dashboard.TabLinks), "", dashboard.MsgLinkNotFound)
	case err != nil:
		log.Error().Err(err).Str("link_id", id).Msg("failed to delete link")
		return handler.Redirect(c, dashboard.TabURL(dashboard.TabLinks), "", "Error deleting link. Please try again.")
	}

	metrics.LinkChanges.WithLabelValues("delete").Inc()
	log.Info().Str("link_id", id).Msg("link deleted")

	return handler.Redirect(c, dashboard.TabURL(dashboard.TabLinks), "Link deleted", "")
}
