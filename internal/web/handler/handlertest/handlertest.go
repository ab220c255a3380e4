// Package handlertest provides fixtures for handler tests.
package handlertest

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/linkshelf/linkshelf/internal/auth"
	"github.com/linkshelf/linkshelf/internal/config"
)

// NoOpViews is a minimal Fiber Views engine used for tests.
// It writes the "error" field from the provided fiber.Map, else the
// "message" field, else the template name, so tests can assert what a
// handler rendered.
type NoOpViews struct{}

// Load implements fiber.Views.
func (NoOpViews) Load() error { return nil }

// Render implements fiber.Views.
func (NoOpViews) Render(w io.Writer, name string, data interface{}, _ ...string) error {
	if m, ok := data.(fiber.Map); ok {
		for _, key := range []string{"error", "message"} {
			if v, exists := m[key]; exists && v != nil && v != "" {
				_, _ = io.WriteString(w, fmt.Sprint(v))
				return nil
			}
		}
	}

	_, _ = io.WriteString(w, name)

	return nil
}

// DumpViews writes the template name followed by the whole data map,
// which lets tests assert on view model contents.
type DumpViews struct{}

// Load implements fiber.Views.
func (DumpViews) Load() error { return nil }

// Render implements fiber.Views.
func (DumpViews) Render(w io.Writer, name string, data interface{}, _ ...string) error {
	_, err := fmt.Fprintf(w, "%s\n%+v", name, data)
	return err
}

// NewApp returns a fiber app rendering with views.
func NewApp(views fiber.Views) *fiber.App {
	return fiber.New(fiber.Config{Views: views})
}

// NewConfig returns a config suitable for handler tests.
func NewConfig() *config.Config {
	return &config.Config{
		Title: "Test Links",
		Webserver: config.Webserver{
			URL:  "http://localhost",
			Port: 3000,
			Session: config.Session{
				ExpiryTime:        time.Hour,
				VisitorExpiryTime: time.Hour,
			},
		},
	}
}

// Get performs a GET request carrying cookies.
func Get(t *testing.T, app *fiber.App, target string, cookies ...*http.Cookie) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err, "app.Test failed")

	return resp
}

// PostForm performs a form encoded POST request carrying cookies.
func PostForm(t *testing.T, app *fiber.App, target string, form url.Values, cookies ...*http.Cookie) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err, "app.Test failed")

	return resp
}

// Body reads and closes the response body.
func Body(t *testing.T, resp *http.Response) string {
	t.Helper()

	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return string(b)
}

// Cookie returns the cookie called name set by resp, or nil.
func Cookie(resp *http.Response, name string) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c
		}
	}

	return nil
}

// AsAdmin installs a middleware marking every request as authenticated.
func AsAdmin(app *fiber.App) {
	app.Use(func(c *fiber.Ctx) error {
		auth.WithContext(c, &auth.Session{Token: "test", ExpiresAt: time.Now().Add(time.Hour)})
		return c.Next()
	})
}
