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
	"github.com/xolan/timetrace/internal/tree"
	"github.com/xolan/timetrace/internal/tui/ui"
)

// treeRow is one visible node with its depth.
type treeRow struct {
	node  *tree.Node
	depth int
}

// TreeModel shows the project forest for a period.
type TreeModel struct {
	engine Engine
	styles ui.Styles
	keys   ui.KeyMap
	now    func() time.Time

	// UI state
	width   int
	height  int
	scope   Scope
	depth   int // tree.Unlimited or >= 1
	rows    []treeRow
	total   int64
	cursor  int
	offset  int
	loading bool
	err     error
}

// NewTreeModel creates a tree over the current month with no depth limit.
func NewTreeModel(engine Engine, styles ui.Styles, keys ui.KeyMap, now func() time.Time) TreeModel {
	return TreeModel{
		engine:  engine,
		styles:  styles,
		keys:    keys,
		now:     now,
		scope:   NewScope(timeutil.PeriodMonth, now()),
		depth:   tree.Unlimited,
		loading: true,
	}
}

type treeLoadedMsg struct {
	scope  Scope
	depth  int
	result *service.TreeResult
	err    error
}

// Init implements tea.Model
func (m TreeModel) Init() tea.Cmd {
	return m.loadTree()
}

// Update implements tea.Model
func (m TreeModel) Update(msg tea.Msg) (TreeModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
				m.clampOffset()
			}
			return m, nil
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.rows)-1 {
				m.cursor++
				m.clampOffset()
			}
			return m, nil
		case key.Matches(msg, m.keys.DepthDown):
			next := m.depth - 1
			if m.depth == tree.Unlimited {
				next = m.deepest() - 1
			}
			if next < 1 {
				return m, nil
			}
			m.depth = next
			m.loading = true
			return m, m.loadTree()
		case key.Matches(msg, m.keys.DepthUp):
			if m.depth == tree.Unlimited {
				return m, nil
			}
			m.depth++
			m.loading = true
			return m, m.loadTree()
		case key.Matches(msg, m.keys.Refresh):
			m.loading = true
			return m, m.loadTree()
		}
		if scope, changed := updateScope(m.keys, m.scope, msg, m.now()); changed {
			m.scope = scope
			m.loading = true
			return m, m.loadTree()
		}

	case treeLoadedMsg:
		if msg.scope != m.scope || msg.depth != m.depth {
			return m, nil
		}
		m.loading = false
		m.err = msg.err
		m.rows = nil
		m.total = 0
		if msg.result != nil {
			for _, n := range msg.result.Roots {
				m.total += n.DurationSeconds
			}
			tree.Walk(msg.result.Roots, func(n *tree.Node, depth int) {
				m.rows = append(m.rows, treeRow{node: n, depth: depth})
			})
		}
		m.cursor = min(m.cursor, max(len(m.rows)-1, 0))
		m.clampOffset()

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	return m, nil
}

// deepest returns the number of levels currently shown.
func (m TreeModel) deepest() int {
	d := 0
	for _, r := range m.rows {
		d = max(d, r.depth+1)
	}
	return d
}

func (m TreeModel) visibleRows() int {
	return max(m.height-6, 5)
}

func (m *TreeModel) clampOffset() {
	visible := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	} else if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
}

// View implements tea.Model
func (m TreeModel) View() string {
	var b strings.Builder

	depth := "unlimited depth"
	if m.depth != tree.Unlimited {
		depth = fmt.Sprintf("depth %d", m.depth)
	}
	b.WriteString(header(m.styles, "Project Tree", m.scope.Label()+", "+depth))

	if m.loading {
		b.WriteString("Loading...")
		return b.String()
	}
	if m.err != nil {
		b.WriteString(renderError(m.styles, m.err))
		return b.String()
	}
	if len(m.rows) == 0 {
		b.WriteString("No time recorded in this period")
		return b.String()
	}

	end := min(m.offset+m.visibleRows(), len(m.rows))
	for i := m.offset; i < end; i++ {
		r := m.rows[i]
		share := ""
		if m.total > 0 {
			share = fmt.Sprintf("%3d%%", r.node.DurationSeconds*100/m.total)
		}
		name := render.Indent(r.depth) + r.node.Name
		b.WriteString(renderRow(m.styles, share, fmt.Sprintf("%-28s", name), r.node.DurationSeconds, i == m.cursor))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(renderStatLine(m.styles, "Selected:", m.rows[m.cursor].node.Path))
	b.WriteString(renderStatLine(m.styles, "Total:", render.FormatDuration(m.total)))
	return b.String()
}

// SetSize sets the view dimensions
func (m *TreeModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m TreeModel) loadTree() tea.Cmd {
	scope := m.scope
	depth := m.depth
	engine := m.engine
	return func() tea.Msg {
		res, err := runQuery(engine, service.Request{
			Action:    service.ActionTree,
			Period:    scope.Period,
			PeriodArg: scope.Arg(),
			MaxDepth:  depth,
		})
		msg := treeLoadedMsg{scope: scope, depth: depth, err: err}
		if err == nil {
			msg.result, _ = res.(*service.TreeResult)
		}
		return msg
	}
}
