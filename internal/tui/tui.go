// Package tui provides the interactive dashboard for timetrace.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/xolan/timetrace/internal/tui/ui"
	"github.com/xolan/timetrace/internal/tui/views"
)

// Tab represents a view tab
type Tab int

const (
	TabStats Tab = iota
	TabChart
	TabTree
	TabSuggest
	TabConfig
)

var tabNames = []string{"Stats", "Chart", "Tree", "Suggest", "Config"}

// Options configures the dashboard.
type Options struct {
	Config views.ConfigInfo
	// SaveTheme persists a theme choice; nil disables saving.
	SaveTheme func(theme string) error
	// Now is the clock periods are anchored on; nil uses time.Now.
	Now func() time.Time
}

// Model is the root TUI model
type Model struct {
	engine    views.Engine
	saveTheme func(string) error

	// UI state
	activeTab Tab
	width     int
	height    int
	showHelp  bool

	// View models
	statsView   views.StatsModel
	chartView   views.ChartModel
	treeView    views.TreeModel
	suggestView views.SuggestModel
	configView  views.ConfigModel

	// Theme and styles
	themeProvider *ui.ThemeProvider
	styles        ui.Styles
	keys          ui.KeyMap
}

// New creates a new TUI model
func New(engine views.Engine, opts Options) Model {
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	themeProvider := ui.NewThemeProvider(opts.Config.Config.TUI.Theme)
	styles := themeProvider.Styles()
	keys := ui.DefaultKeyMap()

	return Model{
		engine:        engine,
		saveTheme:     opts.SaveTheme,
		activeTab:     TabStats,
		themeProvider: themeProvider,
		styles:        styles,
		keys:          keys,
		statsView:     views.NewStatsModel(engine, styles, keys, now),
		chartView:     views.NewChartModel(engine, styles, keys, now),
		treeView:      views.NewTreeModel(engine, styles, keys, now),
		suggestView:   views.NewSuggestModel(engine, styles, keys),
		configView:    views.NewConfigModel(opts.Config, themeProvider, styles, keys),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.statsView.Init()
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// The theme selector owns every key while it is open.
		if m.isCapturingKeys() {
			break
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, m.keys.NextTab):
			return m.switchTab(Tab((int(m.activeTab) + 1) % len(tabNames)))

		case key.Matches(msg, m.keys.PrevTab):
			return m.switchTab(Tab((int(m.activeTab) - 1 + len(tabNames)) % len(tabNames)))

		case key.Matches(msg, m.keys.Tab1):
			return m.switchTab(TabStats)
		case key.Matches(msg, m.keys.Tab2):
			return m.switchTab(TabChart)
		case key.Matches(msg, m.keys.Tab3):
			return m.switchTab(TabTree)
		case key.Matches(msg, m.keys.Tab4):
			return m.switchTab(TabSuggest)
		case key.Matches(msg, m.keys.Tab5):
			return m.switchTab(TabConfig)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		contentHeight := m.height - 4 // tabs and status bar
		m.statsView.SetSize(m.width, contentHeight)
		m.chartView.SetSize(m.width, contentHeight)
		m.treeView.SetSize(m.width, contentHeight)
		m.suggestView.SetSize(m.width, contentHeight)
		m.configView.SetSize(m.width, contentHeight)
		return m, nil

	case ui.ThemeChangeRequestMsg:
		m.themeProvider.SetTheme(msg.ThemeName)
		m.styles = m.themeProvider.Styles()

		themeMsg := ui.ThemeChangedMsg{
			ThemeName: m.themeProvider.CurrentName(),
			Styles:    m.styles,
		}
		m.statsView, _ = m.statsView.Update(themeMsg)
		m.chartView, _ = m.chartView.Update(themeMsg)
		m.treeView, _ = m.treeView.Update(themeMsg)
		m.suggestView, _ = m.suggestView.Update(themeMsg)
		m.configView, _ = m.configView.Update(themeMsg)

		return m, m.saveThemeConfig(themeMsg.ThemeName)

	case ui.ThemeSavedMsg:
		m.configView, cmd = m.configView.Update(msg)
		return m, cmd
	}

	switch m.activeTab {
	case TabStats:
		m.statsView, cmd = m.statsView.Update(msg)
	case TabChart:
		m.chartView, cmd = m.chartView.Update(msg)
	case TabTree:
		m.treeView, cmd = m.treeView.Update(msg)
	case TabSuggest:
		m.suggestView, cmd = m.suggestView.Update(msg)
	case TabConfig:
		m.configView, cmd = m.configView.Update(msg)
	}

	return m, cmd
}

// switchTab activates tab and reloads its data.
func (m Model) switchTab(tab Tab) (tea.Model, tea.Cmd) {
	m.activeTab = tab
	return m, m.initCurrentView()
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	switch m.activeTab {
	case TabStats:
		b.WriteString(m.statsView.View())
	case TabChart:
		b.WriteString(m.chartView.View())
	case TabTree:
		b.WriteString(m.treeView.View())
	case TabSuggest:
		b.WriteString(m.suggestView.View())
	case TabConfig:
		b.WriteString(m.configView.View())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	if m.showHelp {
		return m.renderHelpOverlay()
	}

	return m.styles.App.Render(b.String())
}

// renderTabs renders the tab bar
func (m Model) renderTabs() string {
	tabs := make([]string, 0, len(tabNames))
	for i, name := range tabNames {
		if Tab(i) == m.activeTab {
			tabs = append(tabs, m.styles.TabActive.Render(name))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(name))
		}
	}
	return m.styles.TabBar.Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

// renderStatusBar renders the status bar at the bottom
func (m Model) renderStatusBar() string {
	var parts []string

	if m.isCapturingKeys() {
		parts = append(parts, m.renderKeyHelp("↑/↓", "navigate"))
		parts = append(parts, m.renderKeyHelp("Enter", "select"))
		parts = append(parts, m.renderKeyHelp("Esc", "cancel"))
	} else {
		switch m.activeTab {
		case TabStats:
			parts = append(parts, m.renderKeyHelp("t/w/m/y/e", "period"))
			parts = append(parts, m.renderKeyHelp("h/l", "prev/next"))
		case TabChart:
			parts = append(parts, m.renderKeyHelp("t/w/m/y/e", "period"))
			parts = append(parts, m.renderKeyHelp("h/l", "prev/next"))
			parts = append(parts, m.renderKeyHelp("[/]", "root"))
		case TabTree:
			parts = append(parts, m.renderKeyHelp("t/w/m/y/e", "period"))
			parts = append(parts, m.renderKeyHelp("h/l", "prev/next"))
			parts = append(parts, m.renderKeyHelp("+/-", "depth"))
		case TabSuggest:
			parts = append(parts, m.renderKeyHelp("o", "score mode"))
		case TabConfig:
			parts = append(parts, m.renderKeyHelp("T", "themes"))
		}

		parts = append(parts, m.renderKeyHelp("1-5", "views"))
		parts = append(parts, m.renderKeyHelp("?", "help"))
		parts = append(parts, m.renderKeyHelp("q", "quit"))
	}

	content := strings.Join(parts, "  ")

	if padding := m.width - lipgloss.Width(content); padding > 0 {
		content += strings.Repeat(" ", padding)
	}

	return m.styles.StatusBar.Render(content)
}

// renderKeyHelp renders a single key help item
func (m Model) renderKeyHelp(key, desc string) string {
	return fmt.Sprintf("%s %s",
		m.styles.StatusKey.Render(key),
		m.styles.StatusHelp.Render(desc))
}

// isCapturingKeys checks if the current view is capturing keyboard input
func (m Model) isCapturingKeys() bool {
	return m.activeTab == TabConfig && m.configView.IsSelecting()
}

// initCurrentView reloads the current view when switching tabs
func (m Model) initCurrentView() tea.Cmd {
	switch m.activeTab {
	case TabStats:
		return m.statsView.Init()
	case TabChart:
		return m.chartView.Init()
	case TabTree:
		return m.treeView.Init()
	case TabSuggest:
		return m.suggestView.Init()
	case TabConfig:
		return m.configView.Init()
	}
	return nil
}

// saveThemeConfig persists the theme choice
func (m Model) saveThemeConfig(themeName string) tea.Cmd {
	if m.saveTheme == nil {
		return nil
	}
	save := m.saveTheme
	return func() tea.Msg {
		return ui.ThemeSavedMsg{ThemeName: themeName, Err: save(themeName)}
	}
}

// renderHelpOverlay renders the keyboard help for the active view
func (m Model) renderHelpOverlay() string {
	var help strings.Builder

	help.WriteString(m.styles.DialogTitle.Render("Keyboard Shortcuts"))
	help.WriteString("\n")

	help.WriteString(m.styles.StatLabel.Render("Global:"))
	help.WriteString("\n")
	help.WriteString("  Tab/1-5    Switch views\n")
	help.WriteString("  r          Refresh\n")
	help.WriteString("  ?          Toggle help\n")
	help.WriteString("  q          Quit\n")
	help.WriteString("\n")

	switch m.activeTab {
	case TabStats, TabChart, TabTree:
		help.WriteString(m.styles.StatLabel.Render(tabNames[m.activeTab] + ":"))
		help.WriteString("\n")
		help.WriteString("  t/w/m/y    Day/Week/Month/Year\n")
		help.WriteString("  e          Recent days\n")
		help.WriteString("  h/l        Previous/Next period\n")
		if m.activeTab == TabChart {
			help.WriteString("  [ / ]      Previous/Next root\n")
		}
		if m.activeTab == TabTree {
			help.WriteString("  j/k        Navigate nodes\n")
			help.WriteString("  + / -      Deeper/Shallower\n")
		}
	case TabSuggest:
		help.WriteString(m.styles.StatLabel.Render("Suggest:"))
		help.WriteString("\n")
		help.WriteString("  j/k        Navigate\n")
		help.WriteString("  o          Frequency/Duration scoring\n")
	case TabConfig:
		help.WriteString(m.styles.StatLabel.Render("Config:"))
		help.WriteString("\n")
		help.WriteString("  T/Enter    Open theme selector\n")
		help.WriteString("  j/k        Navigate themes\n")
		help.WriteString("  Esc        Cancel\n")
	}

	help.WriteString("\n")
	help.WriteString(m.styles.StatLabel.Render("Press ? to close"))

	return m.styles.App.Render(m.styles.Dialog.Render(help.String()))
}

// Run starts the TUI application
func Run(engine views.Engine, opts Options) error {
	p := tea.NewProgram(New(engine, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
