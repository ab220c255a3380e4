package link

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/linkshelf/linkshelf/internal/db/dbtest"
	"github.com/linkshelf/linkshelf/internal/db/models"
)

func seed(t *testing.T, db *gorm.DB, links ...models.Link) []models.Link {
	t.Helper()

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := range links {
		links[i].CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, db.Create(&links[i]).Error)
	}

	return links
}

func TestCreate(t *testing.T) {
	db := dbtest.New(t)

	l := &models.Link{
		Name:    "Go",
		URL:     "https://go.dev",
		Visible: true,
		Folder:  models.OptionalString("Languages"),
	}
	require.NoError(t, Create(db, l))
	assert.Len(t, l.ID, 20)
	assert.False(t, l.CreatedAt.IsZero())

	got, err := Get(db, l.ID)
	require.NoError(t, err)
	assert.Equal(t, "Languages", models.StringValue(got.Folder))
	assert.Nil(t, got.Password)
	assert.Nil(t, got.Subfolder)
}

func TestCreateValidation(t *testing.T) {
	db := dbtest.New(t)

	require.ErrorIs(t, Create(db, &models.Link{Name: "x"}), ErrNameOrURLEmpty)
	require.ErrorIs(t, Create(db, &models.Link{URL: "https://x"}), ErrNameOrURLEmpty)
	require.ErrorIs(t, Create(nil, &models.Link{Name: "x", URL: "y"}), ErrDBNil)
}

func TestListOrdering(t *testing.T) {
	db := dbtest.New(t)
	seed(t, db,
		models.Link{Name: "old", URL: "https://a", Visible: true},
		models.Link{Name: "hidden", URL: "https://b", Visible: false},
		models.Link{Name: "new", URL: "https://c", Visible: true},
	)

	all, err := List(db)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"new", "hidden", "old"}, names(all))

	visible, err := ListVisible(db)
	require.NoError(t, err)
	assert.Equal(t, []string{"old", "new"}, names(visible))
}

func TestUpdate(t *testing.T) {
	db := dbtest.New(t)
	links := seed(t, db, models.Link{
		Name:     "Docs",
		URL:      "https://docs",
		Visible:  true,
		Folder:   models.OptionalString("Work"),
		Password: models.OptionalString("pw"),
	})

	updated, err := Update(db, links[0].ID, &models.Link{
		Name:    "Docs v2",
		URL:     "https://docs/v2",
		Visible: false,
	})
	require.NoError(t, err)
	assert.Equal(t, "Docs v2", updated.Name)
	assert.Equal(t, "https://docs/v2", updated.URL)
	assert.False(t, updated.Visible)
	assert.Nil(t, updated.Folder, "cleared optional field must be NULL")
	assert.Nil(t, updated.Password)
	assert.True(t, updated.UpdatedAt.After(links[0].UpdatedAt) || updated.UpdatedAt.Equal(links[0].UpdatedAt))

	_, err = Update(db, "missing", &models.Link{Name: "x", URL: "y"})
	require.ErrorIs(t, err, ErrLinkNotFound)

	_, err = Update(db, links[0].ID, &models.Link{Name: "", URL: "y"})
	require.ErrorIs(t, err, ErrNameOrURLEmpty)
}

func TestDelete(t *testing.T) {
	db := dbtest.New(t)
	links := seed(t, db, models.Link{Name: "a", URL: "https://a"})

	require.NoError(t, Delete(db, links[0].ID))
	require.ErrorIs(t, Delete(db, links[0].ID), ErrLinkNotFound)

	_, err := Get(db, links[0].ID)
	require.ErrorIs(t, err, ErrLinkNotFound)
}

func names(links []models.Link) []string {
	out := make([]string, 0, len(links))
	for _, l := range links {
		out = append(out, l.Name)
	}

	return out
}
