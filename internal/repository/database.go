package repository

import (
	"fmt"
	"log/slog"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xolan/timetrace/internal/apperr"
	"github.com/xolan/timetrace/internal/osutil"
)

// readOnlyPragmas are applied to every pooled connection through the DSN.
const readOnlyPragmas = "_pragma=query_only(1)&_pragma=busy_timeout(5000)"

// Open connects to an existing store in read-only mode. The engine never
// creates stores, so a missing file is an error rather than a fresh database.
func Open(dbPath string) (*gorm.DB, error) {
	if dbPath == "" {
		return nil, apperr.Validationf("no database path configured (set [database] path or --db)")
	}
	exists, err := osutil.FileExists(dbPath)
	if err != nil {
		return nil, apperr.Store("repository.Open", err)
	}
	if !exists {
		return nil, &apperr.Error{Kind: apperr.KindStore, Op: "repository.Open",
			Msg: fmt.Sprintf("database not found at %s", dbPath)}
	}

	db, err := gorm.Open(sqlite.Open(dbPath+"?"+readOnlyPragmas), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, apperr.Store("repository.Open", err)
	}

	slog.Debug("database opened", "path", dbPath)
	return db, nil
}

// Close releases the connection pool behind db.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
