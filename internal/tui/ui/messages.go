package ui

// ThemeChangeRequestMsg is sent when a theme change is requested.
type ThemeChangeRequestMsg struct {
	ThemeName string
}

// ThemeChangedMsg is broadcast to all views when the theme changes.
type ThemeChangedMsg struct {
	ThemeName string
	Styles    Styles
}

// ThemeSavedMsg reports the outcome of persisting the theme choice.
type ThemeSavedMsg struct {
	ThemeName string
	Err       error
}
