package ui

import (
	"strings"
	"testing"
)

func TestDefaultStyles_Render(t *testing.T) {
	styles := DefaultStyles()

	tests := []struct {
		name   string
		render func(...string) string
	}{
		{"App", styles.App.Render},
		{"TabActive", styles.TabActive.Render},
		{"TabInactive", styles.TabInactive.Render},
		{"ViewTitle", styles.ViewTitle.Render},
		{"StatusBar", styles.StatusBar.Render},
		{"RowSelected", styles.RowSelected.Render},
		{"RowPath", styles.RowPath.Render},
		{"RowDuration", styles.RowDuration.Render},
		{"ChartBar", styles.ChartBar.Render},
		{"StatLabel", styles.StatLabel.Render},
		{"StatValue", styles.StatValue.Render},
		{"Dialog", styles.Dialog.Render},
		{"Error", styles.Error.Render},
		{"Warning", styles.Warning.Render},
		{"Success", styles.Success.Render},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// ANSI codes may be absent in non-TTY environments; the text must survive.
			if out := tt.render("study_math"); !strings.Contains(out, "study_math") {
				t.Errorf("%s.Render() = %q, expected it to contain the input", tt.name, out)
			}
		})
	}
}

func TestFixedWidthStyles(t *testing.T) {
	styles := DefaultStyles()

	if w := styles.StatLabel.GetWidth(); w != 20 {
		t.Errorf("StatLabel width = %d, expected 20", w)
	}
	if w := styles.RowDuration.GetWidth(); w != 10 {
		t.Errorf("RowDuration width = %d, expected 10", w)
	}
}

func TestNewStylesFromRegistry(t *testing.T) {
	tp := NewThemeProvider("nord")
	styles := NewStylesFromRegistry(tp.Registry())

	if out := styles.TabActive.Render("Stats"); !strings.Contains(out, "Stats") {
		t.Errorf("TabActive.Render() = %q", out)
	}
	if !styles.ViewTitle.GetBold() {
		t.Error("ViewTitle expected bold")
	}
}
