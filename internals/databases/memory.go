package database

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// OpenMemory opens a private in-memory SQLite store with the schema applied.
// Each call gets its own database, so tests never share rows.
func OpenMemory() (*Storage, error) {
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared&_busy_timeout=5000"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		return nil, errors.Wrap(err, "open memory sqlite")
	}
	st, err := wrap(db, BackendSQLite, "sqlite3")
	if err != nil {
		return nil, err
	}
	TunePool(st)
	if err := EnsureSchema(st); err != nil {
		return nil, err
	}
	return st, nil
}
