package cmd

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/xolan/timetrace/internal/config"
	"github.com/xolan/timetrace/internal/repository"
	"github.com/xolan/timetrace/internal/service"
	"github.com/xolan/timetrace/internal/timeutil"
)

// EngineOpener opens the store at dbPath and returns an engine over it plus a
// release func for the connection.
type EngineOpener func(cfg config.Config, dbPath string, clock timeutil.Clock, logger *slog.Logger) (*service.Engine, func(), error)

// Deps holds external dependencies for CLI commands, enabling testability.
type Deps struct {
	Stdout     io.Writer
	Stderr     io.Writer
	Exit       func(code int)
	Now        func() time.Time
	ConfigPath func() (string, error)
	OpenEngine EngineOpener
}

// DefaultDeps returns the default production dependencies.
func DefaultDeps() *Deps {
	return &Deps{
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		Exit:       os.Exit,
		Now:        time.Now,
		ConfigPath: config.GetConfigPath,
		OpenEngine: openEngine,
	}
}

// deps is the global dependencies instance used by commands.
// In production, this is DefaultDeps(). Tests can replace it.
var deps = DefaultDeps()

// SetDeps sets the global dependencies (for testing).
func SetDeps(d *Deps) {
	deps = d
}

// ResetDeps resets dependencies to defaults (for testing cleanup).
func ResetDeps() {
	deps = DefaultDeps()
}

// openEngine opens the SQLite store read-only and wires the query engine.
func openEngine(cfg config.Config, dbPath string, clock timeutil.Clock, logger *slog.Logger) (*service.Engine, func(), error) {
	db, err := repository.Open(dbPath)
	if err != nil {
		return nil, nil, err
	}
	repo := repository.NewQueryRepository(db, logger)
	engine := service.NewEngine(repo, EngineSettings(cfg), clock, logger)
	release := func() {
		if err := repository.Close(db); err != nil {
			logger.Warn("failed to close database", "error", err)
		}
	}
	return engine, release, nil
}

// EngineSettings maps the [query] config section onto engine fallbacks.
func EngineSettings(cfg config.Config) service.Settings {
	return service.Settings{
		ChartLookbackDays:   cfg.Query.ChartLookbackDays,
		RecentDays:          cfg.Query.RecentDays,
		SuggestLookbackDays: cfg.Query.SuggestLookbackDays,
		SuggestTopN:         cfg.Query.SuggestTopN,
		SuggestScoreMode:    service.ScoreMode(cfg.Query.SuggestScoreMode),
		TreeMaxDepth:        cfg.Query.TreeMaxDepth,
		StatsTopN:           cfg.Query.StatsTopN,
	}
}
