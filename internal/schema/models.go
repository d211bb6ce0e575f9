// Package schema describes the tables of a timetrace store. The query engine
// only reads them; migrations are used by tests and by the ingestion side.
package schema

// Day is one calendar date.
type Day struct {
	Date            string `gorm:"primaryKey;size:10"` // YYYY-MM-DD
	Year            int    `gorm:"index"`
	Month           int    `gorm:"index"`
	Status          int
	Sleep           int
	Exercise        int
	GetupTime       *string `gorm:"size:5"` // HH:MM, NULL when unknown
	Remark          string
	StudySeconds    int64
	ExerciseSeconds int64
	SleepSeconds    int64
	TotalSeconds    int64
}

func (Day) TableName() string { return "days" }

// TimeRecord is one tracked interval. ProjectPathSnapshot is written once at
// ingestion time and never follows later renames of the project tree.
type TimeRecord struct {
	ID                  uint   `gorm:"primaryKey"`
	LogicalID           string `gorm:"size:36;uniqueIndex"`
	Date                string `gorm:"size:10;index"`
	StartTime           string `gorm:"size:5"`
	EndTime             string `gorm:"size:5"`
	StartTimestamp      int64
	EndTimestamp        int64
	Duration            int64 // seconds
	Remark              string
	ProjectID           *uint  `gorm:"index"`
	ProjectPathSnapshot string `gorm:"index"`
}

func (TimeRecord) TableName() string { return "time_records" }

// Project is a node of the live project tree.
type Project struct {
	ID       uint   `gorm:"primaryKey"`
	Name     string `gorm:"size:128;not null"`
	ParentID *uint  `gorm:"index"`
}

func (Project) TableName() string { return "projects" }

// All returns every model, in dependency order, for AutoMigrate.
func All() []any {
	return []any{&Day{}, &Project{}, &TimeRecord{}}
}
