// Package tui is the bubbletea interface of the tracker: a calendar of the
// 25 plan days, the current day's topic checklist, summary counters and the
// achievement list.
package tui

import (
	"github.com/akyairhashvil/prep-tracker/internal/config"
	"github.com/akyairhashvil/prep-tracker/internal/tracker"
	"github.com/akyairhashvil/prep-tracker/internal/util"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// pane is the part of the screen receiving navigation keys.
type pane int

const (
	paneTopics pane = iota
	paneCalendar
)

// Model is the root bubbletea model. The tracker is shared: every mutation
// made here runs the tracker's change hooks, which persist the state.
type Model struct {
	tracker    *tracker.Tracker
	keys       *HandlerRegistry
	help       help.Model
	overallBar progress.Model
	daysBar    progress.Model
	dayBar     progress.Model
	theme      Theme
	focus      pane
	topicIdx   int
	cursorDay  int
	width      int
	height     int
}

func NewModel(t *tracker.Tracker, themeName string) Model {
	newBar := func() progress.Model {
		return progress.New(progress.WithDefaultGradient(), progress.WithWidth(config.ProgressBarWidth))
	}
	return Model{
		tracker:    t,
		keys:       defaultRegistry(),
		help:       help.New(),
		overallBar: newBar(),
		daysBar:    newBar(),
		dayBar:     newBar(),
		theme:      ThemeByName(themeName),
		focus:      paneTopics,
		cursorDay:  t.Day(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m = m.changeDay(m.tracker.Previous)
		case tea.MouseButtonWheelDown:
			m = m.changeDay(m.tracker.Next)
		}
		return m, nil
	case tea.KeyMsg:
		next, cmd, _ := m.keys.Handle(m, msg)
		return next, cmd
	}
	return m, nil
}

func (m *Model) resize() {
	barWidth := util.Clamp(m.width/4, config.MinProgressBarWidth, config.ProgressBarWidth)
	m.overallBar.Width = barWidth
	m.daysBar.Width = util.Clamp(config.CalendarPanelWidth-6, config.MinProgressBarWidth, config.ProgressBarWidth)
	m.dayBar.Width = util.Clamp(m.width/5, config.MinProgressBarWidth, config.ProgressBarWidth)
	m.help.Width = m.width
}

// changeDay runs a tracker navigation and resets per-day cursors when the
// day actually moved.
func (m Model) changeDay(move func()) Model {
	before := m.tracker.Day()
	move()
	if m.tracker.Day() != before {
		m.topicIdx = 0
	}
	m.cursorDay = m.tracker.Day()
	return m
}
