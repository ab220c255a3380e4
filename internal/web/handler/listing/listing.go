// Package listing provides the public link directory page and its folder
// and password gate actions.
package listing

import (
	"errors"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/linkshelf/linkshelf/internal/config"
	"github.com/linkshelf/linkshelf/internal/db/controller/link"
	"github.com/linkshelf/linkshelf/internal/directory"
	"github.com/linkshelf/linkshelf/internal/metrics"
	"github.com/linkshelf/linkshelf/internal/web/handler"
	"github.com/linkshelf/linkshelf/internal/web/session"
)

const (
	// Path is the public page.
	Path = handler.RootPath

	// TogglePath flips a folder or subfolder open or closed.
	TogglePath = "/folders/toggle"

	// UnlockFolderPath checks a folder password.
	UnlockFolderPath = "/folders/unlock"

	// LinksPath prefixes the per-link actions.
	LinksPath = "/links"

	// TemplateName is the name of the listing template.
	TemplateName = "index"

	// MsgEmpty is shown when there is no visible link.
	MsgEmpty = "No links available."

	// MsgLoadFailed is shown when the links could not be read.
	MsgLoadFailed = "Error loading links. Please try again later."

	// MsgIncorrectPassword is shown next to a gate after a wrong entry.
	MsgIncorrectPassword = "Incorrect password"
)

// Service is the listing handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the listing handler.
var Handler = Service{}

// Init initializes the listing handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db

	app.Get(Path, s.Get)
	app.Post(TogglePath, s.Toggle)
	app.Post(UnlockFolderPath, s.UnlockFolder)
	app.Post(LinksPath+"/:id/unlock", s.UnlockLink)

	return nil
}

// Get renders the directory. ?q filters it, ?reveal=<id> opens the
// password input of one locked link.
func (s *Service) Get(c *fiber.Ctx) error {
	state, _, err := session.Load(c)
	if err != nil {
		log.Warn().Err(err).Msg("failed to load visitor session")
		state = session.NewViewState()
	}

	return s.render(c, state, &viewBuilder{
		reveal: c.Query("reveal"),
	})
}

// Toggle flips the folder, or the subfolder when sub is set. Only the
// addressed key changes.
func (s *Service) Toggle(c *fiber.Ctx) error {
	folder := c.FormValue("folder")
	sub := c.FormValue("sub")

	state, sess, err := session.Load(c)
	if err != nil {
		log.Error().Err(err).Msg("failed to load visitor session")
		return c.Redirect(back(c))
	}

	if sub != "" {
		state.ToggleSubfolder(folder, sub)
	} else {
		state.ToggleFolder(folder)
	}

	if err = session.Save(sess, state); err != nil {
		log.Error().Err(err).Msg("failed to save visitor session")
	}

	return c.Redirect(back(c))
}

// UnlockFolder compares the entry with the folder password.
func (s *Service) UnlockFolder(c *fiber.Ctx) error {
	folder := c.FormValue("folder")
	entry := strings.TrimSpace(c.FormValue("password"))

	state, sess, err := session.Load(c)
	if err != nil {
		log.Error().Err(err).Msg("failed to load visitor session")
		return c.Redirect(back(c))
	}

	links, err := link.ListVisible(s.db.WithContext(c.UserContext()))
	if err != nil {
		log.Error().Err(err).Msg("failed to list links")
		return s.render(c, state, &viewBuilder{})
	}

	var target *directory.Folder
	for _, f := range directory.Build(links).Folders {
		if f.Name == folder {
			target = f
			break
		}
	}

	if target == nil || !target.HasPassword {
		return c.Redirect(back(c))
	}

	ok := entry == target.Password
	metrics.Unlock(metrics.GateFolder, ok)

	if !ok {
		return s.render(c, state, &viewBuilder{
			folderErr: map[string]string{folder: MsgIncorrectPassword},
		})
	}

	state.UnlockFolder(folder)
	if err = session.Save(sess, state); err != nil {
		log.Error().Err(err).Msg("failed to save visitor session")
	}

	return c.Redirect(back(c))
}

// UnlockLink compares the entry with the link password.
func (s *Service) UnlockLink(c *fiber.Ctx) error {
	id := c.Params("id")
	entry := strings.TrimSpace(c.FormValue("password"))

	state, sess, err := session.Load(c)
	if err != nil {
		log.Error().Err(err).Msg("failed to load visitor session")
		return c.Redirect(back(c))
	}

	l, err := link.Get(s.db.WithContext(c.UserContext()), id)
	switch {
	case errors.Is(err, link.ErrLinkNotFound):
		return c.Redirect(back(c))
	case err != nil:
		log.Error().Err(err).Str("link_id", id).Msg("failed to get link")
		return c.Redirect(back(c))
	}

	if !l.Visible || !l.HasPassword() {
		return c.Redirect(back(c))
	}

	ok := entry == *l.Password
	metrics.Unlock(metrics.GateLink, ok)

	if !ok {
		return s.render(c, state, &viewBuilder{
			reveal:  id,
			linkErr: map[string]string{id: MsgIncorrectPassword},
		})
	}

	state.UnlockLink(id)
	if err = session.Save(sess, state); err != nil {
		log.Error().Err(err).Msg("failed to save visitor session")
	}

	return c.Redirect(back(c))
}

func (s *Service) render(c *fiber.Ctx, state *session.ViewState, b *viewBuilder) error {
	query := strings.TrimSpace(c.FormValue("q"))

	b.state = state
	b.query = query
	b.searching = query != ""

	data := fiber.Map{"Query": query}

	links, err := link.ListVisible(s.db.WithContext(c.UserContext()))
	if err != nil {
		log.Error().Err(err).Msg("failed to list visible links")
		data["LinksError"] = MsgLoadFailed

		return c.Render(TemplateName, handler.Page(c, s.cfg, data), handler.BaseLayout)
	}

	if len(links) == 0 {
		data["Empty"] = MsgEmpty
	}

	// lock state and folder passwords come from the full list, search only
	// narrows what is displayed
	tree := directory.Build(links)
	if b.searching {
		tree = tree.Prune(b.matcher())
	}

	data["Folders"] = b.folders(tree)
	data["Loose"] = b.links(tree.Loose, "")
	data["Searching"] = b.searching

	return c.Render(TemplateName, handler.Page(c, s.cfg, data), handler.BaseLayout)
}

// back returns the listing url keeping the active search. FormValue reads
// the query string as well as the posted form.
func back(c *fiber.Ctx) string {
	q := strings.TrimSpace(c.FormValue("q"))
	if q == "" {
		return Path
	}

	return Path + "?" + url.Values{"q": {q}}.Encode()
}
