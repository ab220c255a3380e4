package listing

import (
	"net/url"

	"github.com/linkshelf/linkshelf/internal/db/models"
	"github.com/linkshelf/linkshelf/internal/directory"
	"github.com/linkshelf/linkshelf/internal/web/session"
)

// LinkView is one rendered link. URL and DisplayURL stay empty while the
// link is locked.
type LinkView struct {
	ID          string
	Name        string
	URL         string
	DisplayURL  string
	Description string
	ImageURL    string
	Locked      bool
	Revealed    bool
	RevealURL   string
	Search      string
	Error       string
}

// SubfolderView is one rendered subfolder.
type SubfolderView struct {
	Name  string
	Open  bool
	Links []LinkView
}

// FolderView is one rendered folder. A locked folder carries no links.
type FolderView struct {
	Name       string
	Count      int
	Open       bool
	Locked     bool
	Error      string
	Links      []LinkView
	Subfolders []SubfolderView
}

// viewBuilder turns the grouped tree into view models for one visitor.
type viewBuilder struct {
	state     *session.ViewState
	query     string
	searching bool
	reveal    string
	folderErr map[string]string
	linkErr   map[string]string
}

func (b *viewBuilder) folders(tree directory.Tree) []FolderView {
	out := make([]FolderView, 0, len(tree.Folders))

	for _, f := range tree.Folders {
		unlocked := b.state.FolderUnlocked(f.Name)

		v := FolderView{
			Name:   f.Name,
			Count:  f.Len(),
			Open:   b.searching || b.state.FolderOpen(f.Name),
			Locked: f.HasPassword && !unlocked,
			Error:  b.folderErr[f.Name],
		}

		if v.Locked {
			out = append(out, v)
			continue
		}

		shared := sharedPassword(f)

		v.Links = b.links(f.Links, shared)
		for _, s := range f.Subfolders {
			v.Subfolders = append(v.Subfolders, SubfolderView{
				Name:  s.Name,
				Open:  b.searching || b.state.SubfolderOpen(f.Name, s.Name),
				Links: b.links(s.Links, shared),
			})
		}

		out = append(out, v)
	}

	return out
}

func (b *viewBuilder) links(links []models.Link, shared string) []LinkView {
	out := make([]LinkView, 0, len(links))

	for i := range links {
		l := &links[i]

		locked := b.linkLocked(l, shared)

		v := LinkView{
			ID:          l.ID,
			Name:        l.Name,
			Description: models.StringValue(l.Description),
			ImageURL:    models.StringValue(l.ImageURL),
			Locked:      locked,
			Revealed:    locked && b.reveal == l.ID,
			Search:      b.query,
			Error:       b.linkErr[l.ID],
		}

		if locked {
			v.RevealURL = revealURL(l.ID, b.query)
		} else {
			v.URL = l.URL
			v.DisplayURL = directory.DisplayURL(l.URL)
		}

		out = append(out, v)
	}

	return out
}

// matcher returns the search predicate for Tree.Prune. Members of a locked
// folder are only found through the folder name and locked links never
// through their url.
func (b *viewBuilder) matcher() func(*directory.Folder, models.Link) bool {
	return func(f *directory.Folder, l models.Link) bool {
		if f != nil && f.HasPassword && !b.state.FolderUnlocked(f.Name) {
			return directory.Contains(f.Name, b.query)
		}

		return directory.Match(l, b.query, !b.linkLocked(&l, sharedPassword(f)))
	}
}

func (b *viewBuilder) linkLocked(l *models.Link, shared string) bool {
	if !l.HasPassword() || b.state.LinkUnlocked(l.ID) {
		return false
	}

	// the folder password also opens member links sharing it
	return shared == "" || *l.Password != shared
}

// sharedPassword returns the password of a gated folder, "" otherwise.
func sharedPassword(f *directory.Folder) string {
	if f == nil || !f.HasPassword {
		return ""
	}

	return f.Password
}

func revealURL(id, query string) string {
	v := url.Values{"reveal": {id}}
	if query != "" {
		v.Set("q", query)
	}

	return Path + "?" + v.Encode()
}
