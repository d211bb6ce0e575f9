package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xolan/timetrace/internal/config"
	"github.com/xolan/timetrace/internal/tui/ui"
)

// ConfigInfo is the loaded configuration and where it came from.
type ConfigInfo struct {
	Config config.Config
	Path   string
	Exists bool
}

// ConfigModel is the model for the config view
type ConfigModel struct {
	themeProvider *ui.ThemeProvider
	styles        ui.Styles
	keys          ui.KeyMap

	// UI state
	width     int
	height    int
	info      ConfigInfo
	themeName string
	status    string
	statusErr bool

	// Theme selector state
	selectingTheme bool
	themes         []string
	themeCursor    int
	themeOffset    int // For scrolling
}

// maxVisibleThemes is the maximum number of themes to show at once
const maxVisibleThemes = 10

// NewConfigModel creates a new config view model
func NewConfigModel(info ConfigInfo, themeProvider *ui.ThemeProvider, styles ui.Styles, keys ui.KeyMap) ConfigModel {
	m := ConfigModel{
		themeProvider: themeProvider,
		styles:        styles,
		keys:          keys,
		info:          info,
		themeName:     themeProvider.CurrentName(),
		themes:        themeProvider.AvailableThemes(),
	}
	m.resetCursor()
	return m
}

// Init implements tea.Model
func (m ConfigModel) Init() tea.Cmd {
	return nil
}

// IsSelecting reports whether the theme selector has focus.
func (m ConfigModel) IsSelecting() bool {
	return m.selectingTheme
}

// Update implements tea.Model
func (m ConfigModel) Update(msg tea.Msg) (ConfigModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.selectingTheme {
			return m.handleThemeSelection(msg)
		}
		if key.Matches(msg, m.keys.Select) || key.Matches(msg, m.keys.Themes) {
			m.selectingTheme = true
			m.updateThemeOffset()
			return m, nil
		}

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		m.themeName = msg.ThemeName
		m.resetCursor()

	case ui.ThemeSavedMsg:
		if msg.Err != nil {
			m.status = fmt.Sprintf("Failed to save theme: %v", msg.Err)
			m.statusErr = true
		} else {
			m.status = fmt.Sprintf("Saved theme %s to %s", msg.ThemeName, m.info.Path)
			m.statusErr = false
			m.info.Exists = true
			m.info.Config.TUI.Theme = msg.ThemeName
		}
	}

	return m, nil
}

// handleThemeSelection handles keys when theme selector is open
func (m ConfigModel) handleThemeSelection(msg tea.KeyMsg) (ConfigModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.themeCursor > 0 {
			m.themeCursor--
			m.updateThemeOffset()
		}

	case key.Matches(msg, m.keys.Down):
		if m.themeCursor < len(m.themes)-1 {
			m.themeCursor++
			m.updateThemeOffset()
		}

	case key.Matches(msg, m.keys.Select):
		m.selectingTheme = false
		if len(m.themes) == 0 {
			return m, nil
		}
		selected := m.themes[m.themeCursor]
		return m, func() tea.Msg {
			return ui.ThemeChangeRequestMsg{ThemeName: selected}
		}

	case key.Matches(msg, m.keys.Back):
		m.selectingTheme = false
		m.resetCursor()
	}

	return m, nil
}

func (m *ConfigModel) resetCursor() {
	for i, t := range m.themes {
		if t == m.themeName {
			m.themeCursor = i
			break
		}
	}
}

// updateThemeOffset adjusts scroll offset to keep cursor visible
func (m *ConfigModel) updateThemeOffset() {
	if m.themeCursor < m.themeOffset {
		m.themeOffset = m.themeCursor
	} else if m.themeCursor >= m.themeOffset+maxVisibleThemes {
		m.themeOffset = m.themeCursor - maxVisibleThemes + 1
	}
}

// View implements tea.Model
func (m ConfigModel) View() string {
	var b strings.Builder

	b.WriteString(header(m.styles, "Configuration", ""))

	b.WriteString(renderStatLine(m.styles, "Config file:", m.info.Path))
	b.WriteString(m.styles.StatLabel.Render("Status:"))
	b.WriteString(" ")
	if m.info.Exists {
		b.WriteString(m.styles.Success.Render("File exists"))
	} else {
		b.WriteString(m.styles.Warning.Render("Using defaults (no config file)"))
	}
	b.WriteString("\n\n")
	b.WriteString(strings.Repeat("─", min(50, max(m.width, 10))))
	b.WriteString("\n\n")

	cfg := m.info.Config
	db := cfg.Database.Path
	if db == "" {
		db = "(default)"
	}
	b.WriteString(renderStatLine(m.styles, "database.path", db))
	b.WriteString(renderStatLine(m.styles, "output.mode", cfg.Output.Mode))
	b.WriteString(renderStatLine(m.styles, "query.recent_days", fmt.Sprint(cfg.Query.RecentDays)))
	b.WriteString(renderStatLine(m.styles, "query.suggest_mode", cfg.Query.SuggestScoreMode))

	if m.selectingTheme {
		b.WriteString(m.renderThemeSelector())
	} else {
		b.WriteString(renderStatLine(m.styles, "tui.theme", m.themeName))
		b.WriteString("\n")
		b.WriteString(m.styles.StatLabel.Render("Press Enter or 'T' to change theme"))
	}

	if m.status != "" {
		b.WriteString("\n\n")
		if m.statusErr {
			b.WriteString(m.styles.Error.Render(m.status))
		} else {
			b.WriteString(m.styles.Success.Render(m.status))
		}
	}

	return b.String()
}

// renderThemeSelector renders the theme selection list
func (m ConfigModel) renderThemeSelector() string {
	var b strings.Builder

	b.WriteString(m.styles.StatLabel.Render("tui.theme"))
	b.WriteString(" ")
	b.WriteString(m.styles.StatValue.Render("Select a theme"))
	b.WriteString("\n\n")

	endIdx := min(m.themeOffset+maxVisibleThemes, len(m.themes))

	if m.themeOffset > 0 {
		b.WriteString(m.styles.StatLabel.Render("  ↑ more themes above"))
		b.WriteString("\n")
	}

	for i := m.themeOffset; i < endIdx; i++ {
		theme := m.themes[i]
		current := ""
		if theme == m.themeName {
			current = m.styles.Success.Render(" (current)")
		}
		if i == m.themeCursor {
			b.WriteString(m.styles.RowSelected.Render("▸ " + theme))
		} else {
			b.WriteString("  " + m.styles.StatValue.Render(theme))
		}
		b.WriteString(current)
		b.WriteString("\n")
	}

	if endIdx < len(m.themes) {
		b.WriteString(m.styles.StatLabel.Render("  ↓ more themes below"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.StatLabel.Render("↑/↓ navigate  Enter select  Esc cancel"))

	return b.String()
}

// SetSize sets the view dimensions
func (m *ConfigModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}
