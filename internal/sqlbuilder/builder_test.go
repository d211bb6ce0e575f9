package sqlbuilder

import (
	"reflect"
	"strings"
	"testing"

	"github.com/xolan/timetrace/internal/filter"
)

func TestEscapeLike(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"math", "math"},
		{"100%", `100\%`},
		{"study_math", `study\_math`},
		{`back\slash`, `back\\slash`},
		{`%_\`, `\%\_\\`},
	}

	for _, tt := range tests {
		if got := EscapeLike(tt.input); got != tt.expected {
			t.Errorf("EscapeLike(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestPatterns(t *testing.T) {
	if got := ContainsPattern("50%"); got != `%50\%%` {
		t.Errorf("ContainsPattern = %q", got)
	}
	if got := PrefixPattern("study_"); got != `study\_%` {
		t.Errorf("PrefixPattern = %q", got)
	}
	if got := RootPrefixPattern("study"); got != `study\_%` {
		t.Errorf("RootPrefixPattern(study) = %q", got)
	}
	// A root that contains the separator stays a literal.
	if got := RootPrefixPattern("deep_work"); got != `deep\_work\_%` {
		t.Errorf("RootPrefixPattern(deep_work) = %q", got)
	}
}

func TestDays_NoFilter(t *testing.T) {
	stmt := Days(filter.Filter{})
	expected := "SELECT d.date AS date FROM days d ORDER BY d.date ASC"
	if stmt.SQL != expected {
		t.Errorf("SQL = %q, expected %q", stmt.SQL, expected)
	}
	if len(stmt.Args) != 0 {
		t.Errorf("Args = %v, expected none", stmt.Args)
	}
	if stmt.UsesPathSnapshot {
		t.Error("UsesPathSnapshot = true for a filter without root")
	}
}

func TestDays_OnlyPresentFieldsAreAnded(t *testing.T) {
	f := filter.Filter{
		Year:      2026,
		From:      "2026-02-01",
		DayRemark: "rain",
		Exercise:  filter.IntPtr(1),
		Overnight: true,
		Reverse:   true,
		Limit:     5,
	}
	stmt := Days(f)

	for _, fragment := range []string{
		"d.year = ?",
		"d.date >= ?",
		`d.remark LIKE ? ESCAPE '\'`,
		"d.exercise = ?",
		"(d.getup_time IS NULL OR d.getup_time = '' OR d.getup_time = '00:00')",
		"ORDER BY d.date DESC",
		"LIMIT ?",
	} {
		if !strings.Contains(stmt.SQL, fragment) {
			t.Errorf("SQL missing %q: %s", fragment, stmt.SQL)
		}
	}
	for _, absent := range []string{"d.month", "d.date <= ?", "d.status", "EXISTS"} {
		if strings.Contains(stmt.SQL, absent) {
			t.Errorf("SQL unexpectedly contains %q: %s", absent, stmt.SQL)
		}
	}

	expectedArgs := []any{2026, "2026-02-01", "%rain%", 1, 5}
	if !reflect.DeepEqual(stmt.Args, expectedArgs) {
		t.Errorf("Args = %v, expected %v", stmt.Args, expectedArgs)
	}
}

func TestDays_UserTextNeverInterpolated(t *testing.T) {
	evil := "x'; DROP TABLE days; --"
	stmt := Days(filter.Filter{Remark: evil, DayRemark: evil, Root: evil, Project: evil})
	if strings.Contains(stmt.SQL, "DROP TABLE") {
		t.Fatalf("user text leaked into SQL: %s", stmt.SQL)
	}
	if got := strings.Count(stmt.SQL, "?"); got != len(stmt.Args) {
		t.Errorf("placeholders = %d, args = %d", got, len(stmt.Args))
	}
}

func TestDays_RecordPredicatesUseExists(t *testing.T) {
	stmt := Days(filter.Filter{Root: "study", Remark: "algebra"})
	if !strings.Contains(stmt.SQL, "EXISTS (SELECT 1 FROM time_records r WHERE r.date = d.date AND ") {
		t.Errorf("expected EXISTS subquery, got: %s", stmt.SQL)
	}
	if !stmt.UsesPathSnapshot {
		t.Error("UsesPathSnapshot = false for a root filter")
	}
	expectedArgs := []any{"%algebra%", "study", `study\_%`}
	if !reflect.DeepEqual(stmt.Args, expectedArgs) {
		t.Errorf("Args = %v, expected %v", stmt.Args, expectedArgs)
	}
}

func TestRootPredicate(t *testing.T) {
	stmt := ProjectPaths(filter.Filter{Root: "study"})
	fragment := `(r.project_path_snapshot = ? OR r.project_path_snapshot LIKE ? ESCAPE '\')`
	if !strings.Contains(stmt.SQL, fragment) {
		t.Errorf("SQL missing root predicate: %s", stmt.SQL)
	}
}

func TestLegacyProjectPredicate(t *testing.T) {
	stmt := Records(filter.Filter{Project: "math"})
	if !strings.Contains(stmt.SQL, "r.project_id IN (SELECT p.id FROM projects p WHERE p.name LIKE ?") {
		t.Errorf("SQL missing legacy project predicate: %s", stmt.SQL)
	}
	if !reflect.DeepEqual(stmt.Args, []any{"%math%"}) {
		t.Errorf("Args = %v", stmt.Args)
	}
}

func TestDayDurations_JoinArgsPrecedeWhereArgs(t *testing.T) {
	stmt := DayDurations(filter.Filter{Root: "study", From: "2026-02-01", To: "2026-02-03", Limit: 10})

	if !strings.Contains(stmt.SQL, "LEFT JOIN time_records r ON r.date = d.date AND (r.project_path_snapshot") {
		t.Errorf("record predicates must be in the join condition: %s", stmt.SQL)
	}
	if !strings.Contains(stmt.SQL, "ORDER BY total_seconds ASC, d.date ASC") {
		t.Errorf("expected ordering by total: %s", stmt.SQL)
	}
	expectedArgs := []any{"study", `study\_%`, "2026-02-01", "2026-02-03", 10}
	if !reflect.DeepEqual(stmt.Args, expectedArgs) {
		t.Errorf("Args = %v, expected %v", stmt.Args, expectedArgs)
	}
}

func TestDayDurations_NoLimitWhenZero(t *testing.T) {
	stmt := DayDurations(filter.Filter{Reverse: true})
	if strings.Contains(stmt.SQL, "LIMIT") {
		t.Errorf("unexpected LIMIT: %s", stmt.SQL)
	}
	if !strings.Contains(stmt.SQL, "ORDER BY total_seconds DESC, d.date DESC") {
		t.Errorf("expected descending order: %s", stmt.SQL)
	}
}

func TestMonths_Order(t *testing.T) {
	stmt := Months(filter.Filter{Month: 2})
	if !strings.HasSuffix(stmt.SQL, "WHERE d.month = ? ORDER BY d.year ASC, d.month ASC") {
		t.Errorf("SQL = %s", stmt.SQL)
	}
}

func TestActivityUsage(t *testing.T) {
	stmt := ActivityUsage("2026-02-01", "2026-02-10", "study_")
	expectedArgs := []any{"2026-02-01", "2026-02-10", `study\_%`}
	if !reflect.DeepEqual(stmt.Args, expectedArgs) {
		t.Errorf("Args = %v, expected %v", stmt.Args, expectedArgs)
	}
	if !stmt.UsesPathSnapshot {
		t.Error("UsesPathSnapshot = false")
	}

	noPrefix := ActivityUsage("2026-02-01", "2026-02-10", "")
	if len(noPrefix.Args) != 2 {
		t.Errorf("Args without prefix = %v", noPrefix.Args)
	}
}

func TestProjectMappings_SeparatorBound(t *testing.T) {
	stmt := ProjectMappings()
	if !reflect.DeepEqual(stmt.Args, []any{PathSeparator}) {
		t.Errorf("Args = %v", stmt.Args)
	}
	if !strings.HasPrefix(stmt.SQL, "WITH RECURSIVE") {
		t.Errorf("SQL = %s", stmt.SQL)
	}
}
