package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xolan/timetrace/internal/render"
	"github.com/xolan/timetrace/internal/series"
	"github.com/xolan/timetrace/internal/service"
	"github.com/xolan/timetrace/internal/timeutil"
	"github.com/xolan/timetrace/internal/tui/ui"
)

const (
	minChartWidth  = 20
	minChartHeight = 6
	// barSlot is the number of columns each bar needs to stay readable.
	barSlot = 3
)

// ChartModel shows the daily series for all roots or for one root.
type ChartModel struct {
	engine Engine
	styles ui.Styles
	keys   ui.KeyMap
	now    func() time.Time

	// UI state
	width   int
	height  int
	scope   Scope
	roots   []string
	rootIdx int // 0 = all roots, i = roots[i-1]
	result  *service.ChartResult
	loading bool
	err     error
}

// NewChartModel creates a chart over the recent window.
func NewChartModel(engine Engine, styles ui.Styles, keys ui.KeyMap, now func() time.Time) ChartModel {
	return ChartModel{
		engine:  engine,
		styles:  styles,
		keys:    keys,
		now:     now,
		scope:   NewScope(timeutil.PeriodRecent, now()),
		width:   60,
		height:  16,
		loading: true,
	}
}

type chartLoadedMsg struct {
	scope  Scope
	root   string
	result *service.ChartResult
	err    error
}

// Init implements tea.Model
func (m ChartModel) Init() tea.Cmd {
	return m.loadChart()
}

// Root returns the charted root, empty for all roots.
func (m ChartModel) Root() string {
	if m.rootIdx == 0 || m.rootIdx > len(m.roots) {
		return ""
	}
	return m.roots[m.rootIdx-1]
}

// Update implements tea.Model
func (m ChartModel) Update(msg tea.Msg) (ChartModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Refresh):
			m.loading = true
			return m, m.loadChart()
		case key.Matches(msg, m.keys.NextRoot):
			if len(m.roots) == 0 {
				return m, nil
			}
			m.rootIdx = (m.rootIdx + 1) % (len(m.roots) + 1)
			m.loading = true
			return m, m.loadChart()
		case key.Matches(msg, m.keys.PrevRoot):
			if len(m.roots) == 0 {
				return m, nil
			}
			m.rootIdx = (m.rootIdx + len(m.roots)) % (len(m.roots) + 1)
			m.loading = true
			return m, m.loadChart()
		}
		if scope, changed := updateScope(m.keys, m.scope, msg, m.now()); changed {
			m.scope = scope
			m.loading = true
			return m, m.loadChart()
		}

	case chartLoadedMsg:
		if msg.scope != m.scope || msg.root != m.Root() {
			return m, nil
		}
		m.loading = false
		m.err = msg.err
		m.result = msg.result
		if msg.result != nil {
			m.roots = msg.result.Roots
		}

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	return m, nil
}

// View implements tea.Model
func (m ChartModel) View() string {
	var b strings.Builder

	root := m.Root()
	if root == "" {
		root = "all roots"
	}
	b.WriteString(header(m.styles, "Daily Time", fmt.Sprintf("%s, %s", root, m.scope.Label())))

	if m.loading {
		b.WriteString("Loading...")
		return b.String()
	}
	if m.err != nil {
		b.WriteString(renderError(m.styles, m.err))
		return b.String()
	}
	if m.result == nil {
		b.WriteString("No data")
		return b.String()
	}

	s := m.result.Series
	b.WriteString(m.renderChart(s))
	b.WriteString("\n\n")
	b.WriteString(renderStatLine(m.styles, "Range:", fmt.Sprintf("%s .. %s", s.Start, s.End)))
	b.WriteString(renderStatLine(m.styles, "Total:", render.FormatDuration(s.TotalSeconds)))
	b.WriteString(renderStatLine(m.styles, "Active days:", fmt.Sprintf("%d of %d", s.ActiveDays, s.RangeDays)))
	b.WriteString(renderStatLine(m.styles, "Average per day:", render.FormatDuration(s.AverageSeconds)))
	return b.String()
}

// renderChart draws the series in hours, folding consecutive days into one
// bar when the range is wider than the view.
func (m ChartModel) renderChart(s series.Series) string {
	w := max(m.width-4, minChartWidth)
	h := max(m.height-8, minChartHeight)

	chart := barchart.New(w, h)
	chart.PushAll(chartBars(s.Points, w/barSlot, m.styles))
	chart.Draw()
	return chart.View()
}

// chartBars groups points into at most maxBars bars labelled by their
// first day.
func chartBars(points []series.Point, maxBars int, styles ui.Styles) []barchart.BarData {
	if len(points) == 0 {
		return nil
	}
	bucket := 1
	if maxBars > 0 && len(points) > maxBars {
		bucket = (len(points) + maxBars - 1) / maxBars
	}

	bars := make([]barchart.BarData, 0, (len(points)+bucket-1)/bucket)
	for i := 0; i < len(points); i += bucket {
		end := min(i+bucket, len(points))
		var seconds int64
		for _, p := range points[i:end] {
			seconds += p.DurationSeconds
		}
		bars = append(bars, barchart.BarData{
			Label: barLabel(points[i].Date, bucket),
			Values: []barchart.BarValue{{
				Name:  points[i].Date,
				Value: float64(seconds) / 3600.0,
				Style: styles.ChartBar,
			}},
		})
	}
	return bars
}

// barLabel is the day of month for single days and MM-DD for folded bars.
func barLabel(date string, bucket int) string {
	if len(date) != len("2006-01-02") {
		return date
	}
	if bucket == 1 {
		return date[8:]
	}
	return date[5:]
}

// SetSize sets the view dimensions
func (m *ChartModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m ChartModel) loadChart() tea.Cmd {
	scope := m.scope
	root := m.Root()
	engine := m.engine
	return func() tea.Msg {
		req := service.Request{Action: service.ActionReportChart}
		req.Root = root
		if scope.Period != timeutil.PeriodRecent {
			req.Period = scope.Period
			req.PeriodArg = scope.Arg()
		}
		res, err := runQuery(engine, req)
		msg := chartLoadedMsg{scope: scope, root: root, err: err}
		if err == nil {
			msg.result, _ = res.(*service.ChartResult)
		}
		return msg
	}
}
