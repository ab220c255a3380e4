package daemon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkshelf/linkshelf/internal/config"
	"github.com/linkshelf/linkshelf/internal/db/controller/credentials"
	"github.com/linkshelf/linkshelf/internal/db/dbtest"
)

func TestSeed(t *testing.T) {
	db := dbtest.New(t)

	require.NoError(t, seed(&config.Config{}, db))
	exists, err := credentials.Exists(db)
	require.NoError(t, err)
	assert.False(t, exists, "no initial password, nothing seeded")

	require.NoError(t, seed(&config.Config{Admin: config.Admin{InitialPassword: "first"}}, db))
	require.NoError(t, seed(&config.Config{Admin: config.Admin{InitialPassword: "second"}}, db))

	ok, err := credentials.Verify(db, "first")
	require.NoError(t, err)
	assert.True(t, ok, "existing credentials are kept")
}
