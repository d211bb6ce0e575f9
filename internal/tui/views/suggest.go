package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xolan/timetrace/internal/service"
	"github.com/xolan/timetrace/internal/tui/ui"
)

// suggestTopN is how many activities the view asks for.
const suggestTopN = 10

// SuggestModel ranks recently used activities.
type SuggestModel struct {
	engine Engine
	styles ui.Styles
	keys   ui.KeyMap

	// UI state
	width   int
	height  int
	mode    service.ScoreMode
	cursor  int
	result  *service.SuggestResult
	loading bool
	err     error
}

// NewSuggestModel creates a suggestion view using the engine's default mode.
func NewSuggestModel(engine Engine, styles ui.Styles, keys ui.KeyMap) SuggestModel {
	return SuggestModel{
		engine:  engine,
		styles:  styles,
		keys:    keys,
		loading: true,
	}
}

type suggestLoadedMsg struct {
	mode   service.ScoreMode
	result *service.SuggestResult
	err    error
}

// Init implements tea.Model
func (m SuggestModel) Init() tea.Cmd {
	return m.loadSuggestions()
}

// Update implements tea.Model
func (m SuggestModel) Update(msg tea.Msg) (SuggestModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.result != nil && m.cursor < len(m.result.Items)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.ToggleMode):
			m.mode = m.nextMode()
			m.loading = true
			return m, m.loadSuggestions()
		case key.Matches(msg, m.keys.Refresh):
			m.loading = true
			return m, m.loadSuggestions()
		}

	case suggestLoadedMsg:
		if msg.mode != m.mode {
			return m, nil
		}
		m.loading = false
		m.err = msg.err
		m.result = msg.result
		m.cursor = 0

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
	}

	return m, nil
}

// nextMode flips between the two score modes. Before the first toggle the
// mode is whatever the engine defaulted to.
func (m SuggestModel) nextMode() service.ScoreMode {
	current := m.mode
	if current == "" && m.result != nil {
		current = m.result.Mode
	}
	if current == service.ScoreDuration {
		return service.ScoreFrequency
	}
	return service.ScoreDuration
}

// View implements tea.Model
func (m SuggestModel) View() string {
	var b strings.Builder

	subtitle := ""
	if m.result != nil {
		subtitle = fmt.Sprintf("by %s, %s .. %s", m.result.Mode, m.result.Start, m.result.End)
	}
	b.WriteString(header(m.styles, "Suggested Activities", subtitle))

	if m.loading {
		b.WriteString("Loading...")
		return b.String()
	}
	if m.err != nil {
		b.WriteString(renderError(m.styles, m.err))
		return b.String()
	}
	if m.result == nil || len(m.result.Items) == 0 {
		b.WriteString("Nothing tracked recently")
		return b.String()
	}

	for i, s := range m.result.Items {
		b.WriteString(renderRow(m.styles, fmt.Sprintf("%d.", i+1), fmt.Sprintf("%-28s", s.Path), s.TotalSeconds, i == m.cursor))
		b.WriteString("\n")
	}

	sel := m.result.Items[m.cursor]
	b.WriteString("\n")
	b.WriteString(renderStatLine(m.styles, "Score:", fmt.Sprintf("%d", sel.Score)))
	b.WriteString(renderStatLine(m.styles, "Used:", fmt.Sprintf("%d times", sel.UsageCount)))
	b.WriteString(renderStatLine(m.styles, "Last used:", sel.LastDate))
	return b.String()
}

// SetSize sets the view dimensions
func (m *SuggestModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m SuggestModel) loadSuggestions() tea.Cmd {
	mode := m.mode
	engine := m.engine
	return func() tea.Msg {
		res, err := runQuery(engine, service.Request{
			Action:    service.ActionActivitySuggest,
			ScoreMode: mode,
			TopN:      suggestTopN,
		})
		msg := suggestLoadedMsg{mode: mode, err: err}
		if err == nil {
			msg.result, _ = res.(*service.SuggestResult)
		}
		return msg
	}
}
