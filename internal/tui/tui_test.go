package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/xolan/timetrace/internal/config"
	"github.com/xolan/timetrace/internal/repository"
	"github.com/xolan/timetrace/internal/service"
	"github.com/xolan/timetrace/internal/testutil"
	"github.com/xolan/timetrace/internal/tui/ui"
	"github.com/xolan/timetrace/internal/tui/views"
)

var testNow = time.Date(2026, 2, 18, 15, 4, 5, 0, time.UTC)

func setupTestEngine(t *testing.T) *service.Engine {
	t.Helper()
	db := testutil.OpenTestDB(t)
	testutil.AddRecord(t, db, "2026-02-16", "study_math", 3600, "algebra")
	testutil.AddRecord(t, db, "2026-02-17", "work_deep", 1800, "review")
	testutil.AddProject(t, db, "study", nil)
	testutil.AddProject(t, db, "work", nil)

	clock := func() time.Time { return testNow }
	return service.NewEngine(repository.NewQueryRepository(db, nil), service.DefaultSettings(), clock, nil)
}

func setupTestModel(t *testing.T) Model {
	t.Helper()
	return New(setupTestEngine(t), Options{
		Config: views.ConfigInfo{Config: config.DefaultConfig(), Path: "config.toml"},
		Now:    func() time.Time { return testNow },
	})
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNew(t *testing.T) {
	model := setupTestModel(t)

	if model.activeTab != TabStats {
		t.Errorf("expected initial tab to be Stats, got %d", model.activeTab)
	}
	if model.engine == nil {
		t.Error("expected engine to be set")
	}
	if model.showHelp {
		t.Error("expected showHelp to be false initially")
	}
	if model.themeProvider.CurrentName() != "dracula" {
		t.Errorf("theme = %q, expected dracula", model.themeProvider.CurrentName())
	}
}

func TestInit_LoadsStats(t *testing.T) {
	model := setupTestModel(t)

	cmd := model.Init()
	if cmd == nil {
		t.Fatal("expected Init to return a command")
	}

	next, _ := model.Update(cmd())
	next, _ = next.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	view := next.View()
	for _, want := range []string{"Daily Statistics", "week 2026-W08", "1h 30m"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestUpdate_WindowSizeMsg(t *testing.T) {
	model := setupTestModel(t)

	newModel, _ := model.Update(tea.WindowSizeMsg{Width: 100, Height: 50})
	m := newModel.(Model)

	if m.width != 100 {
		t.Errorf("expected width 100, got %d", m.width)
	}
	if m.height != 50 {
		t.Errorf("expected height 50, got %d", m.height)
	}
}

func TestUpdate_QuitKey(t *testing.T) {
	model := setupTestModel(t)

	_, cmd := model.Update(runes("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestUpdate_HelpKey(t *testing.T) {
	model := setupTestModel(t)

	newModel, _ := model.Update(runes("?"))
	m := newModel.(Model)
	if !m.showHelp {
		t.Error("expected showHelp to be true after pressing ?")
	}

	newModel, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	if !strings.Contains(newModel.View(), "Keyboard Shortcuts") {
		t.Error("expected help overlay in view")
	}

	newModel, _ = newModel.Update(runes("?"))
	if newModel.(Model).showHelp {
		t.Error("expected showHelp to be false after pressing ? again")
	}
}

func TestUpdate_TabNavigation(t *testing.T) {
	model := setupTestModel(t)

	tests := []struct {
		msg      tea.KeyMsg
		expected Tab
	}{
		{tea.KeyMsg{Type: tea.KeyTab}, TabChart},
		{tea.KeyMsg{Type: tea.KeyTab}, TabTree},
		{tea.KeyMsg{Type: tea.KeyShiftTab}, TabChart},
		{runes("5"), TabConfig},
		{tea.KeyMsg{Type: tea.KeyTab}, TabStats},
		{tea.KeyMsg{Type: tea.KeyShiftTab}, TabConfig},
		{runes("4"), TabSuggest},
		{runes("1"), TabStats},
	}

	var current tea.Model = model
	for i, tt := range tests {
		var cmd tea.Cmd
		current, cmd = current.Update(tt.msg)
		if got := current.(Model).activeTab; got != tt.expected {
			t.Fatalf("step %d: activeTab = %d, expected %d", i, got, tt.expected)
		}
		if tt.expected != TabConfig && cmd == nil {
			t.Errorf("step %d: expected a load command when switching to %s", i, tabNames[tt.expected])
		}
	}
}

func TestView_Loading(t *testing.T) {
	model := setupTestModel(t)
	if model.View() != "Loading..." {
		t.Errorf("expected Loading... before the first size message, got %q", model.View())
	}
}

func TestView_AllTabs(t *testing.T) {
	model := setupTestModel(t)
	newModel, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	titles := map[Tab]string{
		TabStats:   "Daily Statistics",
		TabChart:   "Daily Time",
		TabTree:    "Project Tree",
		TabSuggest: "Suggested Activities",
		TabConfig:  "Configuration",
	}
	for tab, title := range titles {
		m := newModel.(Model)
		var next tea.Model
		var cmd tea.Cmd
		next, cmd = m.switchTab(tab)
		if cmd != nil {
			next, _ = next.Update(cmd())
		}
		view := next.View()
		if !strings.Contains(view, title) {
			t.Errorf("tab %s: view missing %q:\n%s", tabNames[tab], title, view)
		}
		for _, name := range tabNames {
			if !strings.Contains(view, name) {
				t.Errorf("tab %s: tab bar missing %q", tabNames[tab], name)
			}
		}
	}
}

func TestTreeTab_ShowsProjects(t *testing.T) {
	model := setupTestModel(t)
	next, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	next, cmd := next.Update(runes("3"))
	next, _ = next.Update(cmd())

	view := next.View()
	for _, want := range []string{"month 202602", "study", "math", "work", "1h 30m"} {
		if !strings.Contains(view, want) {
			t.Errorf("tree view missing %q:\n%s", want, view)
		}
	}
}

func TestRenderStatusBar(t *testing.T) {
	model := setupTestModel(t)
	model.width = 160

	tests := []struct {
		tab  Tab
		hint string
	}{
		{TabStats, "period"},
		{TabChart, "root"},
		{TabTree, "depth"},
		{TabSuggest, "score mode"},
		{TabConfig, "themes"},
	}
	for _, tt := range tests {
		model.activeTab = tt.tab
		bar := model.renderStatusBar()
		if !strings.Contains(bar, tt.hint) {
			t.Errorf("%s status bar missing %q: %s", tabNames[tt.tab], tt.hint, bar)
		}
		if !strings.Contains(bar, "quit") {
			t.Errorf("%s status bar missing quit hint", tabNames[tt.tab])
		}
	}
}

func TestThemeSelectorCapturesKeys(t *testing.T) {
	model := setupTestModel(t)

	next, _ := model.Update(runes("5"))
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m := next.(Model)
	if !m.isCapturingKeys() {
		t.Fatal("expected theme selector to capture keys")
	}

	// q and tab go to the selector instead of quitting or switching.
	next, cmd := m.Update(runes("q"))
	if cmd != nil {
		if _, ok := cmd().(tea.QuitMsg); ok {
			t.Error("q must not quit while selecting a theme")
		}
	}
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyTab})
	if next.(Model).activeTab != TabConfig {
		t.Error("tab must not switch views while selecting a theme")
	}
}

func TestThemeChange_SavesAndBroadcasts(t *testing.T) {
	var saved string
	model := New(setupTestEngine(t), Options{
		Config: views.ConfigInfo{Config: config.DefaultConfig(), Path: "config.toml"},
		Now:    func() time.Time { return testNow },
		SaveTheme: func(theme string) error {
			saved = theme
			return nil
		},
	})

	next, cmd := model.Update(ui.ThemeChangeRequestMsg{ThemeName: "nord"})
	m := next.(Model)
	if m.themeProvider.CurrentName() != "nord" {
		t.Errorf("theme = %q, expected nord", m.themeProvider.CurrentName())
	}
	if cmd == nil {
		t.Fatal("expected a save command")
	}
	msg := cmd()
	if saved != "nord" {
		t.Errorf("saved theme = %q, expected nord", saved)
	}

	next, _ = m.Update(msg)
	next, _ = next.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	next, _ = next.Update(runes("5"))
	if !strings.Contains(next.View(), "Saved theme nord") {
		t.Errorf("expected saved status in config view:\n%s", next.View())
	}
}

func TestThemeChange_SaveError(t *testing.T) {
	model := New(setupTestEngine(t), Options{
		SaveTheme: func(string) error { return errors.New("read-only file system") },
	})

	_, cmd := model.Update(ui.ThemeChangeRequestMsg{ThemeName: "nord"})
	saved, ok := cmd().(ui.ThemeSavedMsg)
	if !ok || saved.Err == nil {
		t.Errorf("expected ThemeSavedMsg with error, got %+v", saved)
	}
}

func TestThemeChange_NoSaver(t *testing.T) {
	model := setupTestModel(t)
	if _, cmd := model.Update(ui.ThemeChangeRequestMsg{ThemeName: "nord"}); cmd != nil {
		t.Error("expected no save command without a saver")
	}
}
