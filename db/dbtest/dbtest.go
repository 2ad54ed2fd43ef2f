// Package dbtest opens a throwaway migrated database for package tests.
package dbtest

import (
	"Gin_postgres_redis_library/db"
	"Gin_postgres_redis_library/models"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open returns a Repo over a fresh SQLite file under t.TempDir. A single
// connection keeps SQLite from reporting lock errors when tests run
// operations from several goroutines.
func Open(t testing.TB) *db.Repo {
	t.Helper()

	path := filepath.Join(t.TempDir(), "library.db")
	conn, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	require.NoError(t, err)

	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Migrate(conn))
	return db.NewRepo(conn)
}

func SeedUser(t testing.TB, repo *db.Repo, name string, role models.Role) *models.User {
	t.Helper()
	u := &models.User{
		ID:       uuid.NewString(),
		Username: name + "@library.test",
		Name:     name,
		Role:     role,
	}
	require.NoError(t, repo.CreateUser(context.Background(), u))
	return u
}

func SeedBook(t testing.TB, repo *db.Repo, title string, stock int) *models.Book {
	t.Helper()
	b := &models.Book{
		Title:     title,
		Author:    "Anonymous",
		Publisher: "Library Press",
		Year:      2020,
		Stock:     stock,
		Category:  models.CategoryGeneral,
	}
	require.NoError(t, repo.CreateBook(context.Background(), b))
	return b
}

func Stock(t testing.TB, repo *db.Repo, bookID uint) int {
	t.Helper()
	b, err := repo.FindBookByID(context.Background(), bookID)
	require.NoError(t, err)
	return b.Stock
}
