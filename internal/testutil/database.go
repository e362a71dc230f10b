// Package testutil opens isolated in-memory stores for package tests.
package testutil

import (
	migration "Culinary-Alchemy/cmd/database/migrate"
	"Culinary-Alchemy/entities"
	"fmt"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var unsafeName = regexp.MustCompile(`[^A-Za-z0-9_]`)

// NewTestDB returns a migrated SQLite database private to t. Foreign keys are enforced and
// the pool is pinned to one connection so the shared-cache database lives as long as t.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", unsafeName.ReplaceAllString(t.Name(), "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, migration.Migrate(db))
	return db
}

// SeedCatalog inserts meal types and dietaries with ids 1..n each.
func SeedCatalog(t *testing.T, db *gorm.DB, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		require.NoError(t, db.Create(&entities.MealType{ID: uint(i), Title: fmt.Sprintf("meal type %d", i)}).Error)
		require.NoError(t, db.Create(&entities.Dietary{ID: uint(i), Title: fmt.Sprintf("dietary %d", i)}).Error)
	}
}

func CreateUser(t *testing.T, db *gorm.DB, username string) *entities.User {
	t.Helper()
	user := &entities.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "$2a$10$abcdefghijklmnopqrstuuKq0y7Qm6b2rZ3ZgM6zW0QpD6Hn1f9y",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func CreateRecipe(t *testing.T, db *gorm.DB, userID uint, title string) *entities.Recipe {
	t.Helper()
	recipe := &entities.Recipe{UserID: userID, Title: title}
	require.NoError(t, db.Omit("User", "Images", "MealTypes", "Dietaries").Create(recipe).Error)
	return recipe
}
