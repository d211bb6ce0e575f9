package cmd

import (
	"bytes"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gorm.io/gorm"

	"github.com/xolan/timetrace/internal/apperr"
	"github.com/xolan/timetrace/internal/config"
	"github.com/xolan/timetrace/internal/repository"
	"github.com/xolan/timetrace/internal/schema"
	"github.com/xolan/timetrace/internal/service"
	"github.com/xolan/timetrace/internal/testutil"
	"github.com/xolan/timetrace/internal/timeutil"
)

// 2026-02-18 15:04:05 UTC, a Wednesday.
var testNow = time.Date(2026, 2, 18, 15, 4, 5, 0, time.UTC)

// testEnv captures output and the exit code of one command run.
type testEnv struct {
	stdout   *bytes.Buffer
	stderr   *bytes.Buffer
	exitCode int
	exited   bool
	dir      string
	dbPath   string // last path passed to OpenEngine
}

// seedDB builds:
//
//	2026-02-01  study_math 3600 "algebra"
//	2026-02-02  study_cs 1800 "graphs"
//	2026-02-03  nothing tracked
//	2026-02-04  work_deep 900 "100% focus"
func seedDB(t *testing.T) *gorm.DB {
	t.Helper()
	db := testutil.OpenTestDB(t)
	testutil.AddRecord(t, db, "2026-02-01", "study_math", 3600, "algebra")
	testutil.AddRecord(t, db, "2026-02-02", "study_cs", 1800, "graphs")
	testutil.AddDay(t, db, schema.Day{Date: "2026-02-03"})
	testutil.AddRecord(t, db, "2026-02-04", "work_deep", 900, "100% focus")

	study := testutil.AddProject(t, db, "study", nil)
	testutil.AddProject(t, db, "math", &study)
	testutil.AddProject(t, db, "cs", &study)
	testutil.AddProject(t, db, "work", nil)
	return db
}

// setupCmd installs test dependencies over db and returns the captured env.
func setupCmd(t *testing.T, db *gorm.DB) *testEnv {
	t.Helper()
	resetFlags(rootCmd)

	env := &testEnv{
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
		dir:    t.TempDir(),
	}
	// Keep the default database location inside the test directory.
	t.Setenv("HOME", env.dir)
	t.Setenv("XDG_CONFIG_HOME", env.dir)
	SetDeps(&Deps{
		Stdout: env.stdout,
		Stderr: env.stderr,
		Exit: func(code int) {
			env.exitCode = code
			env.exited = true
		},
		Now: func() time.Time { return testNow },
		ConfigPath: func() (string, error) {
			return filepath.Join(env.dir, config.ConfigFile), nil
		},
		OpenEngine: func(cfg config.Config, dbPath string, clock timeutil.Clock, logger *slog.Logger) (*service.Engine, func(), error) {
			env.dbPath = dbPath
			repo := repository.NewQueryRepository(db, logger)
			return service.NewEngine(repo, EngineSettings(cfg), clock, logger), func() {}, nil
		},
	})
	t.Cleanup(func() {
		ResetDeps()
		resetFlags(rootCmd)
	})
	return env
}

// resetFlags restores every flag of cmd and its children to its default,
// since cobra keeps parsed values on the global commands between runs.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func runCmd(t *testing.T, env *testEnv, args ...string) {
	t.Helper()
	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(env.stderr)
	if err := Execute(args); err != nil {
		t.Fatalf("Execute(%v) unexpected error: %v", args, err)
	}
}

func TestExecute_Help(t *testing.T) {
	env := setupCmd(t, seedDB(t))
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	defer rootCmd.SetOut(nil)

	if err := Execute([]string{"--help"}); err != nil {
		t.Fatalf("Execute(--help) unexpected error: %v", err)
	}
	for _, want := range []string{"days-stats", "suggest", "tree", "--format"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("help missing %q", want)
		}
	}
	if env.exited {
		t.Error("help must not exit")
	}
}

func TestRootCommand_RejectsArgs(t *testing.T) {
	setupCmd(t, seedDB(t))
	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)

	if err := Execute([]string{"bogus"}); err == nil {
		t.Error("expected error for unknown command")
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"validation", apperr.Validationf("bad %s", "input"), exitValidation},
		{"schema", apperr.Schema("days", "missing column"), exitSchema},
		{"store", apperr.Store("days", io.ErrUnexpectedEOF), exitStore},
		{"plain", io.EOF, exitFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.expected {
				t.Errorf("exitCode(%v) = %d, expected %d", tt.err, got, tt.expected)
			}
		})
	}
}

func TestEngineSettings(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Query.SuggestTopN = 9
	cfg.Query.SuggestScoreMode = "duration"
	cfg.Query.TreeMaxDepth = 3

	s := EngineSettings(cfg)
	if s.SuggestTopN != 9 || s.SuggestScoreMode != service.ScoreDuration || s.TreeMaxDepth != 3 {
		t.Errorf("EngineSettings = %+v", s)
	}
	if s.ChartLookbackDays != 7 || s.RecentDays != 7 || s.SuggestLookbackDays != 10 {
		t.Errorf("EngineSettings defaults = %+v", s)
	}
}

func TestVersionCommand(t *testing.T) {
	env := setupCmd(t, seedDB(t))
	SetVersionInfo("1.2.3", "abc123", "2026-02-18")
	defer SetVersionInfo("dev", "none", "unknown")

	runCmd(t, env, "version")
	out := env.stdout.String()
	for _, want := range []string{"1.2.3", "abc123", "2026-02-18"} {
		if !strings.Contains(out, want) {
			t.Errorf("version output missing %q: %s", want, out)
		}
	}
}
