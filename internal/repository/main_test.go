package repository

import (
	"fmt"
	"testing"
	"time"

	"amity/internal/database"
	"amity/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an isolated in-memory SQLite database migrated to the
// application schema. One connection keeps the shared-cache memory DB alive
// for the whole test.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, database.Migrate(db))

	return db
}

// mustCreateUser persists a minimal valid user and returns it.
func mustCreateUser(t *testing.T, db *gorm.DB, uid string) *models.User {
	t.Helper()

	user := &models.User{
		UID:         uid,
		Nickname:    "nick-" + uid,
		Email:       uid + "@example.com",
		Gender:      models.GenderFemale,
		Status:      models.UserStatusOnline,
		DateOfBirth: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(user).Error)
	return user
}
