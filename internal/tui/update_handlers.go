package tui

import (
	"github.com/akyairhashvil/prep-tracker/internal/config"
	"github.com/akyairhashvil/prep-tracker/internal/plan"
	"github.com/akyairhashvil/prep-tracker/internal/util"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func defaultRegistry() *HandlerRegistry {
	r := NewHandlerRegistry()
	r.Register(KeyBinding{
		Binding: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Handler: handleQuit,
	})
	r.Register(KeyBinding{
		Binding: key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "switch pane")),
		Handler: handleSwitchPane,
	})
	r.Register(KeyBinding{
		Binding: key.NewBinding(key.WithKeys("p", "[", "left", "h"), key.WithHelp("p/←", "previous day")),
		Handler: handlePreviousDay,
		Enabled: func(m Model) bool { return m.tracker.Day() > config.FirstDay },
	})
	r.Register(KeyBinding{
		Binding: key.NewBinding(key.WithKeys("n", "]", "right", "l"), key.WithHelp("n/→", "next day")),
		Handler: handleNextDay,
		Enabled: func(m Model) bool { return m.tracker.Day() < config.TotalDays },
	})

	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("up", "k", "down", "j"), key.WithHelp("↑/↓", "select topic")),
		Handler:  handleTopicCursor,
		Panes:    []pane{paneTopics},
		Priority: 10,
	})
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys(" ", "enter", "x"), key.WithHelp("space", "toggle topic")),
		Handler:  handleToggleSelected,
		Panes:    []pane{paneTopics},
		Priority: 10,
	})
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("1", "2", "3"), key.WithHelp("1-3", "toggle topic n")),
		Handler:  handleToggleNumbered,
		Panes:    []pane{paneTopics},
		Priority: 10,
	})

	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("up", "k", "down", "j", "left", "h", "right", "l"), key.WithHelp("←↑↓→", "move")),
		Handler:  handleCalendarCursor,
		Panes:    []pane{paneCalendar},
		Priority: 10,
	})
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("enter", "go to day")),
		Handler:  handleJumpToCursor,
		Panes:    []pane{paneCalendar},
		Priority: 10,
	})
	return r
}

func handleQuit(m Model, _ string) (Model, tea.Cmd, bool) {
	return m, tea.Quit, true
}

func handleSwitchPane(m Model, _ string) (Model, tea.Cmd, bool) {
	if m.focus == paneTopics {
		m.focus = paneCalendar
		m.cursorDay = m.tracker.Day()
	} else {
		m.focus = paneTopics
	}
	return m, nil, true
}

func handlePreviousDay(m Model, _ string) (Model, tea.Cmd, bool) {
	return m.changeDay(m.tracker.Previous), nil, true
}

func handleNextDay(m Model, _ string) (Model, tea.Cmd, bool) {
	return m.changeDay(m.tracker.Next), nil, true
}

func handleTopicCursor(m Model, k string) (Model, tea.Cmd, bool) {
	last := len(plan.Topics(m.tracker.Day())) - 1
	switch k {
	case "up", "k":
		m.topicIdx = util.Clamp(m.topicIdx-1, 0, last)
	case "down", "j":
		m.topicIdx = util.Clamp(m.topicIdx+1, 0, last)
	}
	return m, nil, true
}

func handleToggleSelected(m Model, _ string) (Model, tea.Cmd, bool) {
	m.tracker.ToggleIndex(m.topicIdx)
	return m, nil, true
}

func handleToggleNumbered(m Model, k string) (Model, tea.Cmd, bool) {
	idx := int(k[0] - '1')
	if m.tracker.ToggleIndex(idx) {
		m.topicIdx = idx
	}
	return m, nil, true
}

func handleCalendarCursor(m Model, k string) (Model, tea.Cmd, bool) {
	step := 0
	switch k {
	case "left", "h":
		step = -1
	case "right", "l":
		step = 1
	case "up", "k":
		step = -config.CalendarColumns
	case "down", "j":
		step = config.CalendarColumns
	}
	m.cursorDay = util.Clamp(m.cursorDay+step, config.FirstDay, config.TotalDays)
	return m, nil, true
}

func handleJumpToCursor(m Model, _ string) (Model, tea.Cmd, bool) {
	day := m.cursorDay
	return m.changeDay(func() { m.tracker.SetDay(day) }), nil, true
}
