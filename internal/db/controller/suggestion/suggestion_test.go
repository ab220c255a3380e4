package suggestion

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/linkshelf/linkshelf/internal/db/dbtest"
	"github.com/linkshelf/linkshelf/internal/db/models"
)

func TestCreateAndList(t *testing.T) {
	db := dbtest.New(t)

	require.NoError(t, Create(db, &models.Suggestion{Name: "first", URL: "https://1"}))
	require.NoError(t, Create(db, &models.Suggestion{
		Name:        "second",
		URL:         "https://2",
		Description: models.OptionalString("  "),
	}))

	list, err := List(db)
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, s := range list {
		assert.Nil(t, s.Description)
		assert.Len(t, s.ID, 20)
	}

	require.ErrorIs(t, Create(db, &models.Suggestion{Name: "x"}), ErrNameOrURLEmpty)
}

func TestApprove(t *testing.T) {
	db := dbtest.New(t)

	s := &models.Suggestion{
		Name:        "Go",
		URL:         "https://go.dev",
		Description: models.OptionalString("The Go site"),
		Folder:      models.OptionalString("Languages"),
	}
	require.NoError(t, Create(db, s))

	created, err := Approve(db, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "Go", created.Name)
	assert.Equal(t, "https://go.dev", created.URL)
	assert.True(t, created.Visible)
	assert.Nil(t, created.Password)
	assert.Equal(t, "The Go site", models.StringValue(created.Description))
	assert.Equal(t, "Languages", models.StringValue(created.Folder))

	var stored models.Link
	require.NoError(t, db.Where("id = ?", created.ID).First(&stored).Error)
	assert.True(t, stored.Visible)

	_, err = Get(db, s.ID)
	require.ErrorIs(t, err, ErrSuggestionNotFound)
}

func TestApproveMissing(t *testing.T) {
	db := dbtest.New(t)

	_, err := Approve(db, "nope")
	require.ErrorIs(t, err, ErrSuggestionNotFound)

	var count int64
	require.NoError(t, db.Model(&models.Link{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestApproveRollsBack(t *testing.T) {
	db := dbtest.New(t)

	s := &models.Suggestion{Name: "Go", URL: "https://go.dev"}
	require.NoError(t, Create(db, s))

	boom := errors.New("boom")
	require.NoError(t, db.Callback().Delete().Before("gorm:delete").Register("test:fail_delete", func(tx *gorm.DB) {
		_ = tx.AddError(boom)
	}))

	_, err := Approve(db, s.ID)
	require.ErrorIs(t, err, boom)

	require.NoError(t, db.Callback().Delete().Remove("test:fail_delete"))

	var count int64
	require.NoError(t, db.Model(&models.Link{}).Count(&count).Error)
	assert.Zero(t, count, "link creation must be rolled back")

	_, err = Get(db, s.ID)
	require.NoError(t, err, "suggestion must survive a failed approve")
}

func TestDelete(t *testing.T) {
	db := dbtest.New(t)

	s := &models.Suggestion{Name: "a", URL: "https://a"}
	require.NoError(t, Create(db, s))

	require.NoError(t, Delete(db, s.ID))
	require.ErrorIs(t, Delete(db, s.ID), ErrSuggestionNotFound)
}
