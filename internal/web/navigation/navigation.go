// Package navigation provides utilities for managing navigation state,
// breadcrumbs and dashboard tabs.
package navigation

// BreadcrumbItem represents a single breadcrumb link.
type BreadcrumbItem struct {
	Title  string
	URL    string
	Active bool
}

// Tab is one dashboard tab.
type Tab struct {
	Name   string
	Title  string
	URL    string
	Active bool
}

// Context represents the navigation context for a page.
type Context struct {
	ActiveTab   string
	Breadcrumbs []BreadcrumbItem
	Tabs        []Tab
	PageTitle   string
}

// NewContext creates a new navigation context.
func NewContext(pageTitle, activeTab string) *Context {
	return &Context{
		PageTitle:   pageTitle,
		ActiveTab:   activeTab,
		Breadcrumbs: make([]BreadcrumbItem, 0),
		Tabs:        make([]Tab, 0),
	}
}

// AddBreadcrumb adds a breadcrumb item to the context.
func (c *Context) AddBreadcrumb(title, url string, active bool) *Context {
	c.Breadcrumbs = append(c.Breadcrumbs, BreadcrumbItem{
		Title:  title,
		URL:    url,
		Active: active,
	})

	return c
}

// AddTab appends a tab, marking it active when it is the active tab.
func (c *Context) AddTab(name, title, url string) *Context {
	c.Tabs = append(c.Tabs, Tab{
		Name:   name,
		Title:  title,
		URL:    url,
		Active: name == c.ActiveTab,
	})

	return c
}

// IsActive checks if the given tab is the active one.
func (c *Context) IsActive(tab string) bool {
	return c.ActiveTab == tab
}

// HasTab reports whether a tab called name was added.
func (c *Context) HasTab(name string) bool {
	for _, t := range c.Tabs {
		if t.Name == name {
			return true
		}
	}

	return false
}
