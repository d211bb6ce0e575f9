package sqlbuilder

import "github.com/xolan/timetrace/internal/filter"

// dayScope returns the WHERE predicates for queries driven by the days table.
// Record-level predicates become an EXISTS so a day matches when at least one
// of its records does.
func dayScope(f filter.Filter) (clause, bool) {
	c := dayPredicates(f)
	rec, usesSnapshot := recordPredicates(f)
	if !rec.empty() {
		c.add("EXISTS (SELECT 1 FROM time_records r WHERE r.date = d.date AND "+rec.join("")+")", rec.args...)
	}
	return c, usesSnapshot
}

// Years lists the distinct years that match f.
func Years(f filter.Filter) Statement {
	w, snapshot := dayScope(f)
	sql := "SELECT DISTINCT d.year AS year FROM days d" + w.join(" WHERE ") + orderBy(f.Reverse, "d.year")
	sql, args := appendLimit(sql, w.args, f.Limit)
	return Statement{SQL: sql, Args: args, UsesPathSnapshot: snapshot}
}

// Months lists the distinct (year, month) pairs that match f.
func Months(f filter.Filter) Statement {
	w, snapshot := dayScope(f)
	sql := "SELECT DISTINCT d.year AS year, d.month AS month FROM days d" + w.join(" WHERE ") +
		orderBy(f.Reverse, "d.year", "d.month")
	sql, args := appendLimit(sql, w.args, f.Limit)
	return Statement{SQL: sql, Args: args, UsesPathSnapshot: snapshot}
}

// Days lists the dates that match f.
func Days(f filter.Filter) Statement {
	w, snapshot := dayScope(f)
	sql := "SELECT d.date AS date FROM days d" + w.join(" WHERE ") + orderBy(f.Reverse, "d.date")
	sql, args := appendLimit(sql, w.args, f.Limit)
	return Statement{SQL: sql, Args: args, UsesPathSnapshot: snapshot}
}

// DayDurations returns one (date, total) row per matching day, including
// days with nothing tracked. Record-level predicates live in the join
// condition so that such days survive with a zero total.
func DayDurations(f filter.Filter) Statement {
	rec, snapshot := recordPredicates(f)
	days := dayPredicates(f)

	join := "r.date = d.date"
	if !rec.empty() {
		join += " AND " + rec.join("")
	}

	sql := "SELECT d.date AS date, COALESCE(SUM(r.duration), 0) AS total_seconds" +
		" FROM days d LEFT JOIN time_records r ON " + join +
		days.join(" WHERE ") +
		" GROUP BY d.date" +
		orderBy(f.Reverse, "total_seconds", "d.date")

	var args []any
	args = append(args, rec.args...)
	args = append(args, days.args...)
	sql, args = appendLimit(sql, args, f.Limit)
	return Statement{SQL: sql, Args: args, UsesPathSnapshot: snapshot}
}

// RootDayDurations returns sparse (date, total) rows: only dates with at
// least one matching record appear. Used by the chart, which zero-fills.
func RootDayDurations(f filter.Filter) Statement {
	w := recordScope(f)
	_, snapshot := recordPredicates(f)
	sql := "SELECT r.date AS date, COALESCE(SUM(r.duration), 0) AS total_seconds" +
		" FROM time_records r JOIN days d ON d.date = r.date" +
		w.join(" WHERE ") +
		" GROUP BY r.date" +
		orderBy(f.Reverse, "r.date")
	sql, args := appendLimit(sql, w.args, f.Limit)
	return Statement{SQL: sql, Args: args, UsesPathSnapshot: snapshot}
}

// Records lists individual time records for search.
func Records(f filter.Filter) Statement {
	w := recordScope(f)
	sql := "SELECT r.date AS date, r.start_time AS start_time, r.end_time AS end_time," +
		" r.duration AS duration_seconds, r.remark AS remark, r.project_path_snapshot AS path" +
		" FROM time_records r JOIN days d ON d.date = r.date" +
		w.join(" WHERE ") +
		orderBy(f.Reverse, "r.date", "r.start_timestamp")
	sql, args := appendLimit(sql, w.args, f.Limit)
	return Statement{SQL: sql, Args: args, UsesPathSnapshot: true}
}

// ProjectPaths aggregates totals per path snapshot.
func ProjectPaths(f filter.Filter) Statement {
	var w clause
	w.add("r.project_path_snapshot <> ''")
	w.merge(recordScope(f))
	sql := "SELECT r.project_path_snapshot AS path, SUM(r.duration) AS total_seconds" +
		" FROM time_records r JOIN days d ON d.date = r.date" +
		w.join(" WHERE ") +
		" GROUP BY r.project_path_snapshot" +
		orderBy(f.Reverse, "r.project_path_snapshot")
	sql, args := appendLimit(sql, w.args, f.Limit)
	return Statement{SQL: sql, Args: args, UsesPathSnapshot: true}
}

// ActivityUsage aggregates record count and duration per activity path per
// date inside [start, end]. An empty prefix matches every activity.
func ActivityUsage(start, end, prefix string) Statement {
	var w clause
	w.add("r.date >= ?", start)
	w.add("r.date <= ?", end)
	w.add("r.project_path_snapshot <> ''")
	if prefix != "" {
		w.add("r.project_path_snapshot LIKE ?"+escapeClause, PrefixPattern(prefix))
	}
	sql := "SELECT r.project_path_snapshot AS path, r.date AS date," +
		" COUNT(1) AS usage_count, COALESCE(SUM(r.duration), 0) AS total_seconds" +
		" FROM time_records r" +
		w.join(" WHERE ") +
		" GROUP BY r.project_path_snapshot, r.date" +
		orderBy(false, "r.project_path_snapshot", "r.date")
	return Statement{SQL: sql, Args: w.args, UsesPathSnapshot: true}
}

// LatestDate returns the most recent date that has a record, or ''.
func LatestDate() Statement {
	return Statement{SQL: "SELECT COALESCE(MAX(r.date), '') AS date FROM time_records r"}
}

// RootNames lists the current top-level project names.
func RootNames() Statement {
	return Statement{SQL: "SELECT p.name AS name FROM projects p WHERE p.parent_id IS NULL ORDER BY p.name ASC"}
}

// ProjectMappings walks the live project tree and returns every node's
// current name with its full separator-joined path.
func ProjectMappings() Statement {
	sql := "WITH RECURSIVE tree(id, name, path) AS (" +
		"SELECT p.id, p.name, p.name FROM projects p WHERE p.parent_id IS NULL" +
		" UNION ALL " +
		"SELECT c.id, c.name, tree.path || ? || c.name FROM projects c JOIN tree ON c.parent_id = tree.id" +
		") SELECT name, path FROM tree ORDER BY path ASC"
	return Statement{SQL: sql, Args: []any{PathSeparator}}
}

// recordScope is the WHERE clause for queries driven by time_records joined
// to days: day predicates first, then record predicates.
func recordScope(f filter.Filter) clause {
	c := dayPredicates(f)
	rec, _ := recordPredicates(f)
	c.merge(rec)
	return c
}
