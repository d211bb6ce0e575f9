// Package views holds the tab models of the dashboard. Each view loads its
// data through the query engine in a tea.Cmd and renders the typed result.
package views

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xolan/timetrace/internal/render"
	"github.com/xolan/timetrace/internal/service"
	"github.com/xolan/timetrace/internal/timeutil"
	"github.com/xolan/timetrace/internal/tui/ui"
)

// Engine runs typed queries. *service.Engine satisfies it.
type Engine interface {
	Run(ctx context.Context, req service.Request) (service.Result, error)
}

// Scope is a named period anchored on a day. Shifting moves the anchor by
// one period; recent windows always end today.
type Scope struct {
	Period string
	Anchor time.Time
}

// NewScope returns a scope of the given period containing today.
func NewScope(period string, today time.Time) Scope {
	return Scope{Period: period, Anchor: timeutil.DateOf(today)}
}

// Arg formats the anchor as the period argument ExpandPeriod accepts.
func (s Scope) Arg() string {
	switch s.Period {
	case timeutil.PeriodDay:
		return timeutil.FormatDate(s.Anchor)
	case timeutil.PeriodWeek:
		year, week := s.Anchor.ISOWeek()
		return fmt.Sprintf("%d-W%02d", year, week)
	case timeutil.PeriodMonth:
		return s.Anchor.Format("200601")
	case timeutil.PeriodYear:
		return s.Anchor.Format("2006")
	}
	return ""
}

// Shift moves the anchor n periods forward (negative n moves back).
func (s Scope) Shift(n int) Scope {
	switch s.Period {
	case timeutil.PeriodDay:
		s.Anchor = s.Anchor.AddDate(0, 0, n)
	case timeutil.PeriodWeek:
		s.Anchor = s.Anchor.AddDate(0, 0, 7*n)
	case timeutil.PeriodMonth:
		s.Anchor = timeutil.StartOfMonth(s.Anchor).AddDate(0, n, 0)
	case timeutil.PeriodYear:
		s.Anchor = s.Anchor.AddDate(n, 0, 0)
	}
	return s
}

// Label is a short title for the scope, e.g. "week 2026-W07".
func (s Scope) Label() string {
	if arg := s.Arg(); arg != "" {
		return s.Period + " " + arg
	}
	return s.Period
}

// periodKey maps a period key press to a period name.
func periodKey(keys ui.KeyMap, msg string) (string, bool) {
	for period, bound := range map[string][]string{
		timeutil.PeriodDay:    keys.Day.Keys(),
		timeutil.PeriodWeek:   keys.Week.Keys(),
		timeutil.PeriodMonth:  keys.Month.Keys(),
		timeutil.PeriodYear:   keys.Year.Keys(),
		timeutil.PeriodRecent: keys.Recent.Keys(),
	} {
		for _, k := range bound {
			if k == msg {
				return period, true
			}
		}
	}
	return "", false
}

// runQuery calls the engine off the update loop.
func runQuery(engine Engine, req service.Request) (service.Result, error) {
	return engine.Run(context.Background(), req)
}

func renderStatLine(styles ui.Styles, label, value string) string {
	return styles.StatLabel.Render(label) + " " + styles.StatValue.Render(value) + "\n"
}

func renderError(styles ui.Styles, err error) string {
	return styles.Error.Render(fmt.Sprintf("Error: %v", err))
}

// renderRow renders one aligned "index name duration" line.
func renderRow(styles ui.Styles, index, name string, seconds int64, selected bool) string {
	line := styles.RowIndex.Render(index) + " " + styles.RowPath.Render(name) + " " +
		styles.RowDuration.Render(render.FormatDuration(seconds))
	if selected {
		return styles.RowSelected.Render(line)
	}
	return styles.RowNormal.Render(line)
}

// header renders a view title followed by a muted subtitle.
func header(styles ui.Styles, title, subtitle string) string {
	var b strings.Builder
	b.WriteString(styles.ViewTitle.Render(title))
	if subtitle != "" {
		b.WriteString("  ")
		b.WriteString(styles.Subtitle.Render(subtitle))
	}
	b.WriteString("\n\n")
	return b.String()
}

// updateScope applies a period or navigation key and reports whether the
// scope changed.
func updateScope(keys ui.KeyMap, s Scope, msg tea.KeyMsg, today time.Time) (Scope, bool) {
	switch {
	case key.Matches(msg, keys.PrevPeriod):
		if s.Period == timeutil.PeriodRecent {
			return s, false
		}
		return s.Shift(-1), true
	case key.Matches(msg, keys.NextPeriod):
		if s.Period == timeutil.PeriodRecent {
			return s, false
		}
		return s.Shift(1), true
	}
	if period, ok := periodKey(keys, msg.String()); ok {
		return NewScope(period, today), true
	}
	return s, false
}
