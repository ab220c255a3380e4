package session

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkshelf/linkshelf/internal/db/dbtest"
)

func TestLoadSaveRoundTrip(t *testing.T) {
	Init(NewGormStorage(dbtest.New(t)), time.Hour)

	app := fiber.New()
	app.Post("/open", func(c *fiber.Ctx) error {
		state, sess, err := Load(c)
		if err != nil {
			return err
		}

		state.ToggleFolder(c.FormValue("folder"))

		return Save(sess, state)
	})
	app.Get("/state", func(c *fiber.Ctx) error {
		state, _, err := Load(c)
		if err != nil {
			return err
		}

		if state.FolderOpen("Work") {
			return c.SendString("open")
		}

		return c.SendString("closed")
	})

	req := httptest.NewRequest(http.MethodPost, "/open", strings.NewReader("folder=Work"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var cookie string
	for _, c := range resp.Cookies() {
		if c.Name == CookieName {
			cookie = c.Value
		}
	}
	require.NotEmpty(t, cookie, "visitor cookie must be issued")

	req = httptest.NewRequest(http.MethodGet, "/state", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: cookie})
	resp, err = app.Test(req, -1)
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "open", string(body))
}
