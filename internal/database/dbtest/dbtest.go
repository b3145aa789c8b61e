// Package dbtest opens migrated in-memory databases for tests.
package dbtest

import (
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"swapi/internal/database"
)

// Open returns a fresh migrated sqlite database private to t.
// The database lives until the test finishes.
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := database.Connect("file:"+name+"?mode=memory&cache=shared", zerolog.New(io.Discard))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
