package tui

import (
	"github.com/anmicius0/parking-slot-manager/internal/config"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	weightMedium = 500
	weightLight  = 300
)

var (
	colorError   = lipgloss.Color("196")
	colorSuccess = lipgloss.Color("42")
	colorMuted   = lipgloss.Color("240")
	colorAccent  = lipgloss.Color("205")
)

// Styles are the terminal rendering of a config.Theme. Terminals pick their
// own font, so FontFamily and FontSize only survive as the weight mapping.
type Styles struct {
	Title   lipgloss.Style
	Body    lipgloss.Style
	Hint    lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
	Header  lipgloss.Style
	Form    *huh.Theme
}

// weighted applies a CSS font weight to a style: medium and above is bold,
// light and below is faint.
func weighted(s lipgloss.Style, weight int) lipgloss.Style {
	switch {
	case weight >= weightMedium:
		return s.Bold(true)
	case weight <= weightLight:
		return s.Faint(true)
	}
	return s
}

// formTheme returns the huh palette with the given name, defaulting to charm.
func formTheme(name string) *huh.Theme {
	switch name {
	case "dracula":
		return huh.ThemeDracula()
	case "base16":
		return huh.ThemeBase16()
	case "catppuccin":
		return huh.ThemeCatppuccin()
	case "base":
		return huh.ThemeBase()
	default:
		return huh.ThemeCharm()
	}
}

// NewStyles builds the styles for a theme.
func NewStyles(t config.Theme) Styles {
	form := formTheme(t.Form)
	form.Focused.Title = weighted(form.Focused.Title, t.FontWeightMedium)
	form.Blurred.Title = weighted(form.Blurred.Title, t.FontWeightMedium)
	form.Focused.Description = weighted(form.Focused.Description, t.FontWeightLight)
	form.Blurred.Description = weighted(form.Blurred.Description, t.FontWeightLight)

	return Styles{
		Title:   weighted(lipgloss.NewStyle().Foreground(colorAccent).MarginBottom(1), t.FontWeightMedium),
		Body:    weighted(lipgloss.NewStyle(), t.FontWeightRegular),
		Hint:    weighted(lipgloss.NewStyle().Foreground(colorMuted), t.FontWeightLight),
		Error:   weighted(lipgloss.NewStyle().Foreground(colorError), t.FontWeightMedium),
		Success: weighted(lipgloss.NewStyle().Foreground(colorSuccess), t.FontWeightMedium),
		Header:  weighted(lipgloss.NewStyle().Foreground(colorAccent).Padding(0, 1), t.FontWeightMedium),
		Form:    form,
	}
}
