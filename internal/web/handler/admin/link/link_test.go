package link

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	controller "github.com/linkshelf/linkshelf/internal/db/controller/link"
	"github.com/linkshelf/linkshelf/internal/db/dbtest"
	"github.com/linkshelf/linkshelf/internal/db/models"
	"github.com/linkshelf/linkshelf/internal/web/handler"
	"github.com/linkshelf/linkshelf/internal/web/handler/dashboard"
	"github.com/linkshelf/linkshelf/internal/web/handler/handlertest"
)

func newTestApp(t *testing.T, admin bool) (*fiber.App, *gorm.DB) {
	t.Helper()

	db := dbtest.New(t)
	cfg := handlertest.NewConfig()
	app := handlertest.NewApp(handlertest.NoOpViews{})
	if admin {
		handlertest.AsAdmin(app)
	}

	dash := &dashboard.Service{}
	require.NoError(t, dash.Init(app, cfg, db))

	var s Service
	s.Init(app, cfg, db, dash)

	return app, db
}

func seedLink(t *testing.T, db *gorm.DB) *models.Link {
	t.Helper()

	l := &models.Link{Name: "Go", URL: "https://go.dev", Visible: true, Folder: models.OptionalString("Languages")}
	require.NoError(t, controller.Create(db, l))

	return l
}

func countLinks(t *testing.T, db *gorm.DB) int64 {
	t.Helper()

	var n int64
	require.NoError(t, db.Model(&models.Link{}).Count(&n).Error)

	return n
}

func TestCreate(t *testing.T) {
	app, db := newTestApp(t, true)

	resp := handlertest.PostForm(t, app, Path, url.Values{
		"name":     {"Go"},
		"url":      {"https://go.dev"},
		"folder":   {"Languages"},
		"password": {""},
		"visible":  {"on"},
	})
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Location"), "message=Link+added+successfully")

	links, err := controller.List(db)
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, "Go", links[0].Name)
	assert.True(t, links[0].Visible)
	assert.Equal(t, "Languages", models.StringValue(links[0].Folder))
	assert.Nil(t, links[0].Password, "blank password is stored as NULL")
	assert.Nil(t, links[0].Subfolder)
}

func TestCreateValidation(t *testing.T) {
	app, db := newTestApp(t, true)

	resp := handlertest.PostForm(t, app, Path, url.Values{"name": {"Go"}, "url": {"  "}})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, MsgRequired, handlertest.Body(t, resp))
	assert.Zero(t, countLinks(t, db))
}

func TestRequiresAdmin(t *testing.T) {
	app, db := newTestApp(t, false)
	l := seedLink(t, db)

	resp := handlertest.PostForm(t, app, Path, url.Values{"name": {"x"}, "url": {"y"}})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = handlertest.PostForm(t, app, Path+"/"+l.ID+"/delete", url.Values{"confirm": {handler.FormConfirmYes}})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, int64(1), countLinks(t, db))
}

func TestUpdate(t *testing.T) {
	app, db := newTestApp(t, true)
	l := seedLink(t, db)

	resp := handlertest.PostForm(t, app, Path+"/"+l.ID, url.Values{
		"name":      {"Go Dev"},
		"url":       {"https://go.dev/doc"},
		"folder":    {""},
		"subfolder": {"ignored without folder"},
	})
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Location"), "message=Link+updated")

	got, err := controller.Get(db, l.ID)
	require.NoError(t, err)
	assert.Equal(t, "Go Dev", got.Name)
	assert.Equal(t, "https://go.dev/doc", got.URL)
	assert.False(t, got.Visible, "unchecked box hides the link")
	assert.Nil(t, got.Folder)
}

func TestUpdateValidationAndMissing(t *testing.T) {
	app, db := newTestApp(t, true)
	l := seedLink(t, db)

	resp := handlertest.PostForm(t, app, Path+"/"+l.ID, url.Values{"name": {""}, "url": {"https://x"}})
	assert.Equal(t, MsgRequired, handlertest.Body(t, resp))

	got, err := controller.Get(db, l.ID)
	require.NoError(t, err)
	assert.Equal(t, "Go", got.Name)

	resp = handlertest.PostForm(t, app, Path+"/missing", url.Values{"name": {"a"}, "url": {"b"}})
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Location"), "error=Link+not+found")
}

func TestDeleteNeedsConfirmation(t *testing.T) {
	app, db := newTestApp(t, true)
	l := seedLink(t, db)

	resp := handlertest.PostForm(t, app, Path+"/"+l.ID+"/delete", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, handler.ConfirmTemplateName, handlertest.Body(t, resp))
	assert.Equal(t, int64(1), countLinks(t, db), "declined confirmation never deletes")

	resp = handlertest.PostForm(t, app, Path+"/"+l.ID+"/delete", url.Values{"confirm": {"no"}})
	assert.Equal(t, handler.ConfirmTemplateName, handlertest.Body(t, resp))
	assert.Equal(t, int64(1), countLinks(t, db))

	resp = handlertest.PostForm(t, app, Path+"/"+l.ID+"/delete", url.Values{"confirm": {handler.FormConfirmYes}})
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Location"), "message=Link+deleted")
	assert.Zero(t, countLinks(t, db))

	resp = handlertest.PostForm(t, app, Path+"/"+l.ID+"/delete", url.Values{"confirm": {handler.FormConfirmYes}})
	assert.Contains(t, resp.Header.Get("Location"), "error=Link+not+found")
}
