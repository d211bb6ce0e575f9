package service

import (
	"context"

	"github.com/xolan/timetrace/internal/filter"
	"github.com/xolan/timetrace/internal/model"
)

// Repository is the read-only store access the engine needs.
// *repository.QueryRepository satisfies it.
type Repository interface {
	Years(ctx context.Context, f filter.Filter) ([]int, error)
	Months(ctx context.Context, f filter.Filter) ([]model.YearMonth, error)
	Days(ctx context.Context, f filter.Filter) ([]string, error)
	DayDurations(ctx context.Context, f filter.Filter) ([]model.DayTotal, error)
	RootDayDurations(ctx context.Context, f filter.Filter) ([]model.DayTotal, error)
	Records(ctx context.Context, f filter.Filter) ([]model.Record, error)
	ProjectPaths(ctx context.Context, f filter.Filter) ([]model.PathTotal, error)
	ActivityUsage(ctx context.Context, start, end, prefix string) ([]model.ActivityUsage, error)
	LatestDate(ctx context.Context) (string, error)
	RootNames(ctx context.Context) ([]string, error)
	ProjectMappings(ctx context.Context) ([]model.ProjectMapping, error)
}

// QueryEngine is the in-process surface exposed to front-ends and bridges.
type QueryEngine interface {
	// Execute runs any action and returns the generic envelope.
	Execute(ctx context.Context, req Request) Response
	// QueryTree runs the tree action and returns the richer tree envelope.
	QueryTree(ctx context.Context, req Request) TreeResponse
	// MappingNames lists current project names with their full paths.
	MappingNames(ctx context.Context) (*MappingResult, error)
	// RootNames lists the live root project names.
	RootNames(ctx context.Context) ([]string, error)
}

var _ QueryEngine = (*Engine)(nil)
