// Package sqlbuilder translates a filter.Filter into parameterized SQLite
// statements. User text only ever travels in Args; the SQL text is built from
// fixed fragments.
package sqlbuilder

import (
	"strings"

	"github.com/xolan/timetrace/internal/filter"
)

// Statement is a parameterized query ready for the repository.
type Statement struct {
	SQL  string
	Args []any
	// UsesPathSnapshot is set when the query reads
	// time_records.project_path_snapshot and needs the schema guard.
	UsesPathSnapshot bool
}

// Overnight days have no usable getup time.
const overnightPredicate = `(d.getup_time IS NULL OR d.getup_time = '' OR d.getup_time = '00:00')`

const escapeClause = ` ESCAPE '\'`

// clause accumulates AND-ed predicates and their bound values in order.
type clause struct {
	preds []string
	args  []any
}

func (c *clause) add(pred string, args ...any) {
	c.preds = append(c.preds, pred)
	c.args = append(c.args, args...)
}

func (c *clause) merge(other clause) {
	c.preds = append(c.preds, other.preds...)
	c.args = append(c.args, other.args...)
}

func (c clause) empty() bool {
	return len(c.preds) == 0
}

// join renders the predicates with the given leading keyword, e.g. " WHERE ".
func (c clause) join(keyword string) string {
	if c.empty() {
		return ""
	}
	return keyword + strings.Join(c.preds, " AND ")
}

// dayPredicates compiles the day-level fields against alias d.
func dayPredicates(f filter.Filter) clause {
	var c clause
	if f.Year != 0 {
		c.add("d.year = ?", f.Year)
	}
	if f.Month != 0 {
		c.add("d.month = ?", f.Month)
	}
	if f.From != "" {
		c.add("d.date >= ?", f.From)
	}
	if f.To != "" {
		c.add("d.date <= ?", f.To)
	}
	if f.DayRemark != "" {
		c.add("d.remark LIKE ?"+escapeClause, ContainsPattern(f.DayRemark))
	}
	if f.Exercise != nil {
		c.add("d.exercise = ?", *f.Exercise)
	}
	if f.Status != nil {
		c.add("d.status = ?", *f.Status)
	}
	if f.Overnight {
		c.add(overnightPredicate)
	}
	return c
}

// recordPredicates compiles the record-level fields against alias r and
// reports whether the path snapshot column is involved.
func recordPredicates(f filter.Filter) (clause, bool) {
	var c clause
	usesSnapshot := false
	if f.Remark != "" {
		c.add("r.remark LIKE ?"+escapeClause, ContainsPattern(f.Remark))
	}
	if f.Project != "" {
		// Legacy filter: matches the current project name, not the snapshot.
		c.add("r.project_id IN (SELECT p.id FROM projects p WHERE p.name LIKE ?"+escapeClause+")",
			ContainsPattern(f.Project))
	}
	if f.Root != "" {
		c.add("(r.project_path_snapshot = ? OR r.project_path_snapshot LIKE ?"+escapeClause+")",
			f.Root, RootPrefixPattern(f.Root))
		usesSnapshot = true
	}
	return c, usesSnapshot
}

// orderBy renders an ORDER BY over cols, ascending unless reverse.
func orderBy(reverse bool, cols ...string) string {
	dir := " ASC"
	if reverse {
		dir = " DESC"
	}
	parts := make([]string, len(cols))
	for i, col := range cols {
		parts[i] = col + dir
	}
	return " ORDER BY " + strings.Join(parts, ", ")
}

// appendLimit adds LIMIT only for a positive limit.
func appendLimit(sql string, args []any, limit int) (string, []any) {
	if limit > 0 {
		return sql + " LIMIT ?", append(args, limit)
	}
	return sql, args
}
