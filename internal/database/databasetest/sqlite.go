// Package databasetest opens throwaway in-memory databases for tests.
package databasetest

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"casting-agency/internal/config"
	"casting-agency/internal/database"
	"casting-agency/internal/models"

	"gorm.io/driver/sqlite"
)

var seq atomic.Int64

// New returns a migrated SQLite database with foreign keys enforced. It is
// closed when the test ends.
func New(t testing.TB) *database.Database {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_foreign_keys=on", name, seq.Add(1))

	db, err := database.Open(sqlite.Open(dsn), config.DatabaseConfig{
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		QueryTimeout: 5 * time.Second,
		AutoMigrate:  true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

// CastIDs lists the actor ids linked to movieID, ascending.
func CastIDs(t testing.TB, db *database.Database, movieID uint) []uint {
	t.Helper()

	var ids []uint
	err := db.Model(&models.MovieActor{}).
		Where("movie_id = ?", movieID).
		Order("actor_id ASC").
		Pluck("actor_id", &ids).Error
	if err != nil {
		t.Fatalf("list cast of movie %d: %v", movieID, err)
	}
	return ids
}

// Exec runs raw SQL against db, e.g. to install a failing trigger.
func Exec(t testing.TB, db *database.Database, sql string) {
	t.Helper()

	if err := db.Exec(sql).Error; err != nil {
		t.Fatalf("exec %q: %v", sql, err)
	}
}
