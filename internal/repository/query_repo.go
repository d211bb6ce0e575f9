// Package repository executes sqlbuilder statements against a timetrace store
// and maps the rows into model types.
package repository

import (
	"context"
	"log/slog"

	"gorm.io/gorm"

	"github.com/xolan/timetrace/internal/apperr"
	"github.com/xolan/timetrace/internal/filter"
	"github.com/xolan/timetrace/internal/model"
	"github.com/xolan/timetrace/internal/schema"
	"github.com/xolan/timetrace/internal/sqlbuilder"
)

const pathSnapshotColumn = "project_path_snapshot"

// Single-column scan targets.
type (
	yearRow struct{ Year int }
	dateRow struct{ Date string }
	nameRow struct{ Name string }
)

// QueryRepository runs read-only queries over an injected connection.
// The caller owns the connection's lifecycle.
type QueryRepository struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewQueryRepository wraps db. A nil logger falls back to slog.Default().
func NewQueryRepository(db *gorm.DB, logger *slog.Logger) *QueryRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &QueryRepository{db: db, logger: logger}
}

// Years lists the distinct years matching f.
func (r *QueryRepository) Years(ctx context.Context, f filter.Filter) ([]int, error) {
	var rows []yearRow
	if err := r.run(ctx, "repository.Years", sqlbuilder.Years(f), &rows); err != nil {
		return nil, err
	}
	years := make([]int, len(rows))
	for i, row := range rows {
		years[i] = row.Year
	}
	return years, nil
}

// Months lists the distinct (year, month) pairs matching f.
func (r *QueryRepository) Months(ctx context.Context, f filter.Filter) ([]model.YearMonth, error) {
	var out []model.YearMonth
	if err := r.run(ctx, "repository.Months", sqlbuilder.Months(f), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Days lists the dates matching f.
func (r *QueryRepository) Days(ctx context.Context, f filter.Filter) ([]string, error) {
	var rows []dateRow
	if err := r.run(ctx, "repository.Days", sqlbuilder.Days(f), &rows); err != nil {
		return nil, err
	}
	days := make([]string, len(rows))
	for i, row := range rows {
		days[i] = row.Date
	}
	return days, nil
}

// DayDurations returns per-day totals for every matching day, zero days included.
func (r *QueryRepository) DayDurations(ctx context.Context, f filter.Filter) ([]model.DayTotal, error) {
	var out []model.DayTotal
	if err := r.run(ctx, "repository.DayDurations", sqlbuilder.DayDurations(f), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RootDayDurations returns sparse per-day totals for records matching f.
func (r *QueryRepository) RootDayDurations(ctx context.Context, f filter.Filter) ([]model.DayTotal, error) {
	var out []model.DayTotal
	if err := r.run(ctx, "repository.RootDayDurations", sqlbuilder.RootDayDurations(f), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Records lists the time records matching f.
func (r *QueryRepository) Records(ctx context.Context, f filter.Filter) ([]model.Record, error) {
	var out []model.Record
	if err := r.run(ctx, "repository.Records", sqlbuilder.Records(f), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ProjectPaths aggregates totals per path snapshot.
func (r *QueryRepository) ProjectPaths(ctx context.Context, f filter.Filter) ([]model.PathTotal, error) {
	var out []model.PathTotal
	if err := r.run(ctx, "repository.ProjectPaths", sqlbuilder.ProjectPaths(f), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ActivityUsage returns per-activity per-day usage inside [start, end].
func (r *QueryRepository) ActivityUsage(ctx context.Context, start, end, prefix string) ([]model.ActivityUsage, error) {
	var out []model.ActivityUsage
	if err := r.run(ctx, "repository.ActivityUsage", sqlbuilder.ActivityUsage(start, end, prefix), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// LatestDate returns the most recent tracked date, or "" for an empty store.
func (r *QueryRepository) LatestDate(ctx context.Context) (string, error) {
	var row dateRow
	if err := r.run(ctx, "repository.LatestDate", sqlbuilder.LatestDate(), &row); err != nil {
		return "", err
	}
	return row.Date, nil
}

// RootNames lists the current top-level project names.
func (r *QueryRepository) RootNames(ctx context.Context) ([]string, error) {
	var rows []nameRow
	if err := r.run(ctx, "repository.RootNames", sqlbuilder.RootNames(), &rows); err != nil {
		return nil, err
	}
	names := make([]string, len(rows))
	for i, row := range rows {
		names[i] = row.Name
	}
	return names, nil
}

// ProjectMappings lists every live project with its current full path.
func (r *QueryRepository) ProjectMappings(ctx context.Context) ([]model.ProjectMapping, error) {
	var out []model.ProjectMapping
	if err := r.run(ctx, "repository.ProjectMappings", sqlbuilder.ProjectMappings(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// run executes stmt and scans the result into dest.
func (r *QueryRepository) run(ctx context.Context, op string, stmt sqlbuilder.Statement, dest any) error {
	if stmt.UsesPathSnapshot {
		if err := r.ensurePathSnapshot(ctx, op); err != nil {
			return err
		}
	}

	r.logger.Debug("running query", "op", op, "sql", stmt.SQL, "args", stmt.Args)
	if err := r.db.WithContext(ctx).Raw(stmt.SQL, stmt.Args...).Scan(dest).Error; err != nil {
		r.logger.Warn("query failed", "op", op, "error", err)
		return apperr.Store(op, err)
	}
	return nil
}

// ensurePathSnapshot fails fast on stores created before path snapshots
// were recorded. Those stores would otherwise return empty or wrong totals.
func (r *QueryRepository) ensurePathSnapshot(ctx context.Context, op string) error {
	if r.db.WithContext(ctx).Migrator().HasColumn(&schema.TimeRecord{}, pathSnapshotColumn) {
		return nil
	}
	return apperr.Schema(op, "time_records."+pathSnapshotColumn+
		" is missing: this store predates path snapshots, rebuild or upgrade it with the ingestion tool before querying")
}
