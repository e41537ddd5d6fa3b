// Package testutil provides an in-memory database migrated with the production models.
package testutil

import (
	"testing"

	"solarquote/internal/database"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens an isolated in-memory SQLite database, migrates it and seeds the default
// penalty rules. The pool holds a single connection, so every query issued inside a
// transaction must go through the transaction handle.
//
// The single connection also serializes concurrent transactions and SQLite ignores
// FOR UPDATE. Parallel tests against this database check that each decision is made from
// state read inside its own transaction; they do not exercise Postgres row-lock contention.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared&_pragma=foreign_keys(1)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sqlite handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := database.SeedPenaltyRules(db); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return db
}
