package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T, dsn string) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&DBUser{},
		&DBInvite{},
		&DBOneTimeCode{},
		&DBMechanic{},
		&DBVendor{},
		&DBTransaction{},
	))
	return db
}

// newTestDB opens an isolated in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	return openTestDB(t, ":memory:")
}

// newSharedTestDB opens a named shared-cache in-memory database so several
// connections within the process see the same data.
func newSharedTestDB(t *testing.T, name string) *gorm.DB {
	return openTestDB(t, "file:"+name+"?mode=memory&cache=shared&_busy_timeout=5000")
}

func seedInvite(t *testing.T, db *gorm.DB, invite *DBInvite) *DBInvite {
	t.Helper()
	if invite.CreatedAt.IsZero() {
		invite.CreatedAt = time.Now().Add(-time.Hour)
	}
	if invite.ExpiresAt.IsZero() {
		invite.ExpiresAt = time.Now().Add(time.Hour)
	}
	require.NoError(t, db.Create(invite).Error)
	return invite
}

func seedCode(t *testing.T, db *gorm.DB, code *DBOneTimeCode) *DBOneTimeCode {
	t.Helper()
	if code.CreatedAt.IsZero() {
		code.CreatedAt = time.Now().Add(-time.Minute)
	}
	if code.ExpiresAt.IsZero() {
		code.ExpiresAt = time.Now().Add(3 * time.Minute)
	}
	require.NoError(t, db.Create(code).Error)
	return code
}
