package views

import (
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

// statsTopDays is how many of the longest days the view lists.
const statsTopDays = 5

// StatsModel is the model for the stats view
type StatsModel struct {
	engine Engine
	styles ui.Styles
	keys   ui.KeyMap
	now    func() time.Time

	// UI state
	width   int
	height  int
	scope   Scope
	result  *service.DaysStatsResult
	loading bool
	err     error
}

// NewStatsModel creates a new stats view model over the current week
func NewStatsModel(engine Engine, styles ui.Styles, keys ui.KeyMap, now func() time.Time) StatsModel {
	return StatsModel{
		engine:  engine,
		styles:  styles,
		keys:    keys,
		now:     now,
		scope:   NewScope(timeutil.PeriodWeek, now()),
		loading: true,
	}
}

// statsLoadedMsg is sent when stats are loaded
type statsLoadedMsg struct {
	scope  Scope
	result *service.DaysStatsResult
	err    error
}

// Init implements tea.Model
func (m StatsModel) Init() tea.Cmd {
	return m.loadStats()
}

// Update implements tea.Model
func (m StatsModel) Update(msg tea.Msg) (StatsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Refresh) {
			m.loading = true
			return m, m.loadStats()
		}
		if scope, changed := updateScope(m.keys, m.scope, msg, m.now()); changed {
			m.scope = scope
			m.loading = true
			return m, m.loadStats()
		}

	case statsLoadedMsg:
		// Drop answers for a scope the user already left.
		if msg.scope != m.scope {
			return m, nil
		}
		m.loading = false
		m.err = msg.err
		m.result = msg.result

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	return m, nil
}

// View implements tea.Model
func (m StatsModel) View() string {
	var b strings.Builder

	subtitle := m.scope.Label()
	if m.result != nil && m.result.Start != "" {
		subtitle = fmt.Sprintf("%s (%s .. %s)", subtitle, m.result.Start, m.result.End)
	}
	b.WriteString(header(m.styles, "Daily Statistics", subtitle))

	if m.loading {
		b.WriteString("Loading...")
		return b.String()
	}
	if m.err != nil {
		b.WriteString(renderError(m.styles, m.err))
		return b.String()
	}
	if m.result == nil || m.result.Stats.Count == 0 {
		b.WriteString("No tracked days in this period")
		return b.String()
	}

	s := m.result.Stats
	b.WriteString(renderStatLine(m.styles, "Days:", fmt.Sprintf("%d %s", s.Count, render.Pluralize("day", s.Count))))
	b.WriteString(renderStatLine(m.styles, "Total:", render.FormatDuration(s.TotalSeconds)))
	b.WriteString(renderStatLine(m.styles, "Mean:", render.FormatDuration(int64(s.Mean))))
	b.WriteString(renderStatLine(m.styles, "Median:", render.FormatDuration(int64(s.Median))))
	b.WriteString(renderStatLine(m.styles, "Std deviation:", render.FormatDuration(int64(s.StdDev))))
	b.WriteString(renderStatLine(m.styles, "Median abs dev:", render.FormatDuration(int64(s.MAD))))
	b.WriteString(renderStatLine(m.styles, "Min / Max:", render.FormatDuration(s.Min)+" / "+render.FormatDuration(s.Max)))
	b.WriteString(renderStatLine(m.styles, "P25 / P75:", render.FormatDuration(s.P25)+" / "+render.FormatDuration(s.P75)))
	b.WriteString(renderStatLine(m.styles, "P90 / P95:", render.FormatDuration(s.P90)+" / "+render.FormatDuration(s.P95)))
	b.WriteString(renderStatLine(m.styles, "IQR:", render.FormatDuration(s.IQR)))

	if len(m.result.Top) > 0 {
		b.WriteString("\n")
		b.WriteString(m.styles.ViewTitle.Render("Longest Days"))
		b.WriteString("\n")
		for i, d := range m.result.Top {
			b.WriteString(renderRow(m.styles, fmt.Sprintf("%d.", i+1), d.Date, d.TotalSeconds, false))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// SetSize sets the view dimensions
func (m *StatsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// loadStats creates a command to load stats for the current scope
func (m StatsModel) loadStats() tea.Cmd {
	scope := m.scope
	engine := m.engine
	return func() tea.Msg {
		res, err := runQuery(engine, service.Request{
			Action:    service.ActionDaysStats,
			Period:    scope.Period,
			PeriodArg: scope.Arg(),
			TopN:      statsTopDays,
		})
		msg := statsLoadedMsg{scope: scope, err: err}
		if err == nil {
			msg.result, _ = res.(*service.DaysStatsResult)
		}
		return msg
	}
}
