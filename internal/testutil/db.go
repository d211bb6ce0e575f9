// Package testutil provides an in-memory store and fixture helpers for tests.
package testutil

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xolan/timetrace/internal/schema"
)

// OpenTestDB opens an in-memory SQLite store with every table migrated.
func OpenTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db := openMemory(t)
	if err := db.AutoMigrate(schema.All()...); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

// OpenLegacyTestDB opens an in-memory store whose time_records table predates
// the path snapshot column.
func OpenLegacyTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db := openMemory(t)
	if err := db.AutoMigrate(&schema.Day{}, &schema.Project{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	legacy := `CREATE TABLE time_records (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		logical_id TEXT,
		date TEXT,
		start_time TEXT,
		end_time TEXT,
		start_timestamp INTEGER,
		end_timestamp INTEGER,
		duration INTEGER,
		remark TEXT,
		project_id INTEGER
	)`
	if err := db.Exec(legacy).Error; err != nil {
		t.Fatalf("create legacy time_records: %v", err)
	}
	return db
}

func openMemory(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	// Each pooled connection would get its own private :memory: database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

// AddDay inserts a day row. Year and month are derived from day.Date when zero.
func AddDay(t *testing.T, db *gorm.DB, day schema.Day) schema.Day {
	t.Helper()

	if day.Year == 0 || day.Month == 0 {
		d, err := time.Parse("2006-01-02", day.Date)
		if err != nil {
			t.Fatalf("bad fixture date %q: %v", day.Date, err)
		}
		day.Year = d.Year()
		day.Month = int(d.Month())
	}
	if err := db.Create(&day).Error; err != nil {
		t.Fatalf("insert day %s: %v", day.Date, err)
	}
	return day
}

// AddRecord inserts a time record on date, creating the day row if needed.
func AddRecord(t *testing.T, db *gorm.DB, date, path string, seconds int64, remark string) schema.TimeRecord {
	t.Helper()

	var count int64
	if err := db.Model(&schema.Day{}).Where("date = ?", date).Count(&count).Error; err != nil {
		t.Fatalf("count day %s: %v", date, err)
	}
	if count == 0 {
		AddDay(t, db, schema.Day{Date: date})
	}

	d, _ := time.Parse("2006-01-02", date)
	start := d.Add(9 * time.Hour)
	rec := schema.TimeRecord{
		LogicalID:           uuid.NewString(),
		Date:                date,
		StartTime:           start.Format("15:04"),
		EndTime:             start.Add(time.Duration(seconds) * time.Second).Format("15:04"),
		StartTimestamp:      start.Unix(),
		EndTimestamp:        start.Unix() + seconds,
		Duration:            seconds,
		Remark:              remark,
		ProjectPathSnapshot: path,
	}
	if err := db.Create(&rec).Error; err != nil {
		t.Fatalf("insert record on %s: %v", date, err)
	}
	return rec
}

// AddProject inserts a project node and returns its id.
func AddProject(t *testing.T, db *gorm.DB, name string, parentID *uint) uint {
	t.Helper()

	p := schema.Project{Name: name, ParentID: parentID}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("insert project %s: %v", name, err)
	}
	return p.ID
}
