// Package dashboard provides the tabbed admin dashboard.
package dashboard

import (
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/linkshelf/linkshelf/internal/config"
	"github.com/linkshelf/linkshelf/internal/db/controller/appearance"
	"github.com/linkshelf/linkshelf/internal/db/controller/link"
	"github.com/linkshelf/linkshelf/internal/db/controller/suggestion"
	"github.com/linkshelf/linkshelf/internal/db/models"
	"github.com/linkshelf/linkshelf/internal/web/form"
	"github.com/linkshelf/linkshelf/internal/web/handler"
	"github.com/linkshelf/linkshelf/internal/web/navigation"
)

const (
	// Path is the path to the dashboard page.
	Path = handler.AdminPath

	// TemplateName is the name of the dashboard template.
	TemplateName = "admin/dashboard"

	// TabLinks lists and edits links.
	TabLinks = "links"

	// TabSuggestions reviews suggestions.
	TabSuggestions = "suggestions"

	// TabSettings holds the appearance widget.
	TabSettings = "settings"

	// MsgLinkNotFound is shown when the link to edit does not exist.
	MsgLinkNotFound = "Link not found"
)

// Data represents the dashboard view model.
type Data struct {
	ActiveTab string

	Links      []models.Link
	LinksError string
	EditID     string
	EditForm   form.Link
	CreateForm form.Link

	Suggestions      []models.Suggestion
	SuggestionsError string

	BackgroundImage string
	SettingsForm    form.Background
}

// Service is the dashboard handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the dashboard handler.
var Handler = Service{}

// Init initializes the dashboard handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.db = db
	s.cfg = cfg

	app.Get(Path, s.Get)

	return nil
}

// TabURL returns the dashboard url showing tab.
func TabURL(tab string) string {
	return Path + "?" + url.Values{"tab": {tab}}.Encode()
}

// Get handles the dashboard page rendering.
func (s *Service) Get(c *fiber.Ctx) error {
	tab := c.Query("tab", TabLinks)
	editID := c.Query("edit")

	data := s.load(c, tab)

	if editID != "" && data.ActiveTab == TabLinks {
		l, err := link.Get(s.db.WithContext(c.UserContext()), editID)
		switch {
		case errors.Is(err, link.ErrLinkNotFound):
			return handler.Redirect(c, TabURL(TabLinks), "", MsgLinkNotFound)
		case err != nil:
			log.Error().Err(err).Str("link_id", editID).Msg("failed to get link")
			return handler.Redirect(c, TabURL(TabLinks), "", "Error getting link details. Please try again.")
		}

		data.EditID = l.ID
		data.EditForm = form.LinkFrom(l)
	}

	return s.render(c, data, nil)
}

// Render shows tab with extra template values, used by the admin action
// handlers to re-render a form with its validation error.
func (s *Service) Render(c *fiber.Ctx, tab string, customize func(*Data), extra fiber.Map) error {
	data := s.load(c, tab)
	if customize != nil {
		customize(&data)
	}

	return s.render(c, data, extra)
}

func (s *Service) render(c *fiber.Ctx, data Data, extra fiber.Map) error {
	nav := navigation.NewContext("Admin", data.ActiveTab).
		AddBreadcrumb("Home", handler.RootPath, false).
		AddBreadcrumb("Admin", Path, true).
		AddTab(TabLinks, "Manage Links", TabURL(TabLinks)).
		AddTab(TabSuggestions, "Review Suggestions", TabURL(TabSuggestions)).
		AddTab(TabSettings, "Settings", TabURL(TabSettings))

	m := fiber.Map{}
	for k, v := range extra {
		m[k] = v
	}
	m["Navigation"] = nav
	m["Data"] = data

	return c.Render(TemplateName, handler.Page(c, s.cfg, m), handler.BaseLayout)
}

// load fetches what tab shows. Store errors end up in the tab's error
// region, the page itself always renders.
func (s *Service) load(c *fiber.Ctx, tab string) Data {
	switch tab {
	case TabLinks, TabSuggestions, TabSettings:
	default:
		tab = TabLinks
	}

	db := s.db.WithContext(c.UserContext())
	data := Data{ActiveTab: tab, CreateForm: form.Link{Visible: true}}

	switch tab {
	case TabLinks:
		links, err := link.List(db)
		if err != nil {
			log.Error().Err(err).Msg("failed to list links")
			data.LinksError = "Error loading links. Please try again."
		}
		data.Links = links

	case TabSuggestions:
		suggestions, err := suggestion.List(db)
		if err != nil {
			log.Error().Err(err).Msg("failed to list suggestions")
			data.SuggestionsError = "Error loading suggestions. Please try again."
		}
		data.Suggestions = suggestions

	case TabSettings:
		settings, err := appearance.Load(db)
		if err != nil {
			log.Error().Err(err).Msg("failed to load appearance settings")
		}
		data.BackgroundImage = settings.BackgroundImage
		data.SettingsForm = form.Background{URL: settings.BackgroundImage}
	}

	return data
}
