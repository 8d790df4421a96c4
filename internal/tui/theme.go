package tui

import (
	"github.com/akyairhashvil/prep-tracker/internal/models"
	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Name        string
	Base        lipgloss.Style
	Border      lipgloss.Color
	FocusBorder lipgloss.Color
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Focused     lipgloss.Style
	Dim         lipgloss.Style
	Topic       lipgloss.Style
	DoneTopic   lipgloss.Style
	Badge       lipgloss.Style
	Achievement lipgloss.Style
	Status      map[models.DayStatus]lipgloss.Style
	Categories  map[string]lipgloss.Color // keyed by models.Category.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:        "Default",
		Base:        lipgloss.NewStyle().Margin(1, 2),
		Border:      lipgloss.Color("99"),
		FocusBorder: lipgloss.Color("205"),
		Title:       lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true),
		Subtitle:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Focused:     lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:         lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Topic:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		DoneTopic:   lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Strikethrough(true),
		Badge:       lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("34")).Padding(0, 1),
		Achievement: lipgloss.NewStyle().Foreground(lipgloss.Color("130")).Background(lipgloss.Color("223")).Padding(0, 1),
		Status: map[models.DayStatus]lipgloss.Style{
			models.DayCompleted: lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("34")),
			models.DayCurrent:   lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("33")).Bold(true),
			models.DayMissed:    lipgloss.NewStyle().Foreground(lipgloss.Color("88")).Background(lipgloss.Color("224")),
			models.DayUpcoming:  lipgloss.NewStyle().Foreground(lipgloss.Color("242")).Background(lipgloss.Color("254")),
		},
		Categories: map[string]lipgloss.Color{
			"blue":   lipgloss.Color("33"),
			"green":  lipgloss.Color("35"),
			"purple": lipgloss.Color("99"),
			"orange": lipgloss.Color("208"),
			"red":    lipgloss.Color("160"),
		},
	},
	"dracula": {
		Name:        "Dracula",
		Base:        lipgloss.NewStyle().Margin(1, 2),
		Border:      lipgloss.Color("62"),
		FocusBorder: lipgloss.Color("212"),
		Title:       lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Subtitle:    lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Focused:     lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Dim:         lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Topic:       lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		DoneTopic:   lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Strikethrough(true),
		Badge:       lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Background(lipgloss.Color("120")).Padding(0, 1),
		Achievement: lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Background(lipgloss.Color("215")).Padding(0, 1),
		Status: map[models.DayStatus]lipgloss.Style{
			models.DayCompleted: lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Background(lipgloss.Color("120")),
			models.DayCurrent:   lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Background(lipgloss.Color("117")).Bold(true),
			models.DayMissed:    lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Background(lipgloss.Color("210")),
			models.DayUpcoming:  lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("60")),
		},
		Categories: map[string]lipgloss.Color{
			"blue":   lipgloss.Color("117"),
			"green":  lipgloss.Color("120"),
			"purple": lipgloss.Color("141"),
			"orange": lipgloss.Color("215"),
			"red":    lipgloss.Color("203"),
		},
	},
}

// ThemeByName returns the named theme, or the default one.
func ThemeByName(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes["default"]
}

// StatusStyle is the calendar cell style for a day status.
func (t Theme) StatusStyle(s models.DayStatus) lipgloss.Style {
	if style, ok := t.Status[s]; ok {
		return style
	}
	return t.Dim
}

// CategoryStyle is the header banner style for a category.
func (t Theme) CategoryStyle(c models.Category) lipgloss.Style {
	color, ok := t.Categories[c.Style]
	if !ok {
		color = t.Border
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(color).Bold(true).Padding(0, 1)
}
