package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkshelf/linkshelf/internal/auth"
	"github.com/linkshelf/linkshelf/internal/config"
)

func TestRedirect(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return Redirect(c, "/admin?tab=links", "Link added successfully", "")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/admin?message=Link+added+successfully&tab=links", resp.Header.Get("Location"))
}

func TestPage(t *testing.T) {
	cfg := &config.Config{Title: "Links"}

	var got fiber.Map

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		c.Locals(LocalsBackground, "https://bg")
		auth.WithContext(c, &auth.Session{Token: "t"})
		got = Page(c, cfg, fiber.Map{"message": "kept"})

		return nil
	})

	_, err := app.Test(httptest.NewRequest(http.MethodGet, "/?message=ignored&error=boom", nil), -1)
	require.NoError(t, err)

	assert.Equal(t, "Links", got["Title"])
	assert.Equal(t, "https://bg", got["Background"])
	assert.Equal(t, true, got["IsAdmin"])
	assert.Equal(t, "kept", got["message"])
	assert.Equal(t, "boom", got["error"])
}
