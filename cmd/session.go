package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xolan/timetrace/internal/apperr"
	"github.com/xolan/timetrace/internal/config"
	"github.com/xolan/timetrace/internal/render"
	"github.com/xolan/timetrace/internal/service"
)

// Exit codes by failure kind.
const (
	exitOK         = 0
	exitFailure    = 1
	exitValidation = 2
	exitSchema     = 3
	exitStore      = 4
)

// exitCode maps a typed failure to the process exit code.
func exitCode(err error) int {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		return exitValidation
	case apperr.KindSchema:
		return exitSchema
	case apperr.KindStore:
		return exitStore
	default:
		return exitFailure
	}
}

// session is the per-invocation state shared by the query commands.
type session struct {
	cfg     config.Config
	logger  *slog.Logger
	mode    render.Mode
	engine  *service.Engine
	release func()
}

func (s *session) close() {
	if s.release != nil {
		s.release()
	}
}

// loadConfig resolves the config file (--config or the default location)
// and loads it. It reports failures itself and returns false.
func loadConfig(cmd *cobra.Command) (config.Config, string, bool) {
	configPath, ok := resolveConfigPath(cmd)
	if !ok {
		return config.Config{}, "", false
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to load configuration")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check that your config file is valid TOML format: %s\n", configPath)
		deps.Exit(exitCode(err))
		return config.Config{}, "", false
	}
	return cfg, configPath, true
}

// quietConfig loads the config without reporting failures, for shell
// completion.
func quietConfig(cmd *cobra.Command) (config.Config, string, bool) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		var err error
		if configPath, err = deps.ConfigPath(); err != nil {
			return config.Config{}, "", false
		}
	}
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return config.Config{}, "", false
	}
	return cfg, configPath, true
}

// openSession loads config, applies the global flags, sets up logging and
// opens the engine. It reports failures itself and returns nil.
func openSession(cmd *cobra.Command) *session {
	cfg, _, ok := loadConfig(cmd)
	if !ok {
		return nil
	}

	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Log.Level = level
	}
	if _, err := config.ParseLevel(cfg.Log.Level); err != nil {
		reportError(err)
		return nil
	}
	logger := config.SetupLogger(cfg.Log.Level, deps.Stderr)

	format, _ := cmd.Flags().GetString("format")
	if format == "" {
		format = cfg.Output.Mode
	}
	mode, err := render.ParseMode(format)
	if err != nil {
		reportError(err)
		return nil
	}

	dbPath, _ := cmd.Flags().GetString("db")
	if dbPath == "" {
		if dbPath, err = cfg.DatabasePath(); err != nil {
			_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to determine database location")
			_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
			deps.Exit(exitFailure)
			return nil
		}
	}

	engine, release, err := deps.OpenEngine(cfg, dbPath, deps.Now, logger)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to open the time-tracking store")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Set [database] path in the config file or pass --db")
		deps.Exit(exitCode(err))
		return nil
	}

	return &session{cfg: cfg, logger: logger, mode: mode, engine: engine, release: release}
}

// runQuery executes req through the engine and prints the rendered content.
func runQuery(cmd *cobra.Command, req service.Request) {
	s := openSession(cmd)
	if s == nil {
		return
	}
	defer s.close()

	req.OutputMode = s.mode
	resp := s.engine.Execute(context.Background(), req)
	if !resp.OK {
		reportError(resp.Err())
		return
	}

	content := resp.Content
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	_, _ = fmt.Fprint(deps.Stdout, content)
}

// reportError prints err with a hint matching its kind and exits.
func reportError(err error) {
	_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Dates accept YYYY, YYYYMM, YYYYMMDD or YYYY-MM-DD; run with --help for flag details")
	case apperr.KindSchema:
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Rebuild or upgrade the store with the ingestion tool, then retry")
	case apperr.KindStore:
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check that the database file is readable and not corrupted")
	}
	deps.Exit(exitCode(err))
}
