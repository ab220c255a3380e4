// Package directory groups a flat list of links into the folder tree shown
// on the public page.
package directory

import (
	"net/url"
	"strings"

	"github.com/linkshelf/linkshelf/internal/db/models"
)

// Tree is the grouped form of a link list.
type Tree struct {
	Loose   []models.Link // links without folder, in input order
	Folders []*Folder     // in order of first appearance
}

// Folder groups the links sharing a folder value.
type Folder struct {
	Name       string
	Links      []models.Link // direct members, no subfolder
	Subfolders []*Subfolder  // in order of first appearance

	// HasPassword and Password come from the first member link carrying a
	// password. Later passwords in the same folder are ignored.
	HasPassword bool
	Password    string
}

// Subfolder groups the links of a folder sharing a subfolder value.
type Subfolder struct {
	Name  string
	Links []models.Link
}

// Len returns the number of links in the folder, subfolders included.
func (f *Folder) Len() int {
	n := len(f.Links)
	for _, s := range f.Subfolders {
		n += len(s.Links)
	}

	return n
}

// Build partitions links by folder and subfolder. Keys are compared by
// exact value; a link with a subfolder but no folder is loose.
func Build(links []models.Link) Tree {
	var tree Tree
	folders := map[string]*Folder{}

	for _, l := range links {
		name := models.StringValue(l.Folder)
		if name == "" {
			tree.Loose = append(tree.Loose, l)
			continue
		}

		f, ok := folders[name]
		if !ok {
			f = &Folder{Name: name}
			folders[name] = f
			tree.Folders = append(tree.Folders, f)
		}

		if !f.HasPassword && l.Password != nil {
			f.HasPassword = true
			f.Password = *l.Password
		}

		sub := models.StringValue(l.Subfolder)
		if sub == "" {
			f.Links = append(f.Links, l)
			continue
		}

		s := f.subfolder(sub)
		s.Links = append(s.Links, l)
	}

	return tree
}

func (f *Folder) subfolder(name string) *Subfolder {
	for _, s := range f.Subfolders {
		if s.Name == name {
			return s
		}
	}

	s := &Subfolder{Name: name}
	f.Subfolders = append(f.Subfolders, s)

	return s
}

// Prune returns a copy of t keeping the links for which keep returns
// true. keep receives the link's folder, nil for loose links. Folder
// passwords are carried over from t, so they never depend on which links
// survive. Folders and subfolders left empty are dropped.
func (t Tree) Prune(keep func(f *Folder, l models.Link) bool) Tree {
	var out Tree

	for _, l := range t.Loose {
		if keep(nil, l) {
			out.Loose = append(out.Loose, l)
		}
	}

	for _, f := range t.Folders {
		pf := &Folder{Name: f.Name, HasPassword: f.HasPassword, Password: f.Password}

		for _, l := range f.Links {
			if keep(f, l) {
				pf.Links = append(pf.Links, l)
			}
		}

		for _, s := range f.Subfolders {
			ps := &Subfolder{Name: s.Name}
			for _, l := range s.Links {
				if keep(f, l) {
					ps.Links = append(ps.Links, l)
				}
			}

			if len(ps.Links) > 0 {
				pf.Subfolders = append(pf.Subfolders, ps)
			}
		}

		if pf.Len() > 0 {
			out.Folders = append(out.Folders, pf)
		}
	}

	return out
}

// Match reports whether the name, folder or subfolder of l contains query,
// ignoring case. The url is only searched when withURL is set, so a
// locked link's url can not be guessed through the search box. A blank
// query matches every link.
func Match(l models.Link, query string, withURL bool) bool {
	if Blank(query) {
		return true
	}

	fields := []string{l.Name, models.StringValue(l.Folder), models.StringValue(l.Subfolder)}
	if withURL {
		fields = append(fields, l.URL)
	}

	for _, field := range fields {
		if Contains(field, query) {
			return true
		}
	}

	return false
}

// Contains reports whether s contains the trimmed query, ignoring case.
func Contains(s, query string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(strings.TrimSpace(query)))
}

// Blank reports whether query searches nothing.
func Blank(query string) bool {
	return strings.TrimSpace(query) == ""
}

// DisplayURL shortens raw to host and path for display. Values that do
// not parse as absolute urls are returned unchanged.
func DisplayURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}

	return strings.TrimSuffix(u.Host+u.EscapedPath(), "/")
}
