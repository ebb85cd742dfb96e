package services

import (
	"testing"

	"waqf-task-tracker/internal/adapters/persistence/models"
	"waqf-task-tracker/internal/config"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory SQLite database with the schema migrated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "open test database")
	require.NoError(t, models.AutoMigrate(db), "migrate test database")

	return db
}

// newTestConfig returns a config suitable for service tests.
func newTestConfig() *config.Config {
	return &config.Config{
		AppMode: "dev",
		JWT: config.JWTConfig{
			Secret:      "service_test_secret",
			SessionDays: 30,
		},
		Cookie: config.CookieConfig{
			SameSite: "lax",
		},
	}
}
