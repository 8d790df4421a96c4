package tui

import (
	"testing"

	"github.com/akyairhashvil/prep-tracker/internal/models"
	"github.com/akyairhashvil/prep-tracker/internal/plan"
	tea "github.com/charmbracelet/bubbletea"
)

func TestToggleTopicsCompletesDay(t *testing.T) {
	m, tr := setupTestModel(t, models.NewProgress())
	m = press(t, m, " ", "down", " ", "down", "enter")
	p := tr.Snapshot()
	if len(p.Completed) != 3 {
		t.Fatalf("expected 3 completed topics, got %v", p.Completed)
	}
	if !p.HasDay(1) {
		t.Fatalf("day 1 should be complete")
	}
	m = press(t, m, "x")
	if tr.Snapshot().HasDay(1) {
		t.Fatalf("untoggling the third topic should reopen day 1")
	}
	if m.topicIdx != 2 {
		t.Fatalf("topicIdx = %d, want 2", m.topicIdx)
	}
}

func TestNumberKeysToggleTopics(t *testing.T) {
	m, tr := setupTestModel(t, models.NewProgress())
	m = press(t, m, "3")
	if !tr.Snapshot().HasKey(plan.Key(1, plan.Topics(1)[2])) {
		t.Fatalf("key 3 should toggle the third topic")
	}
	if m.topicIdx != 2 {
		t.Fatalf("topicIdx should follow the toggled topic, got %d", m.topicIdx)
	}
}

func TestTopicCursorClamps(t *testing.T) {
	m, _ := setupTestModel(t, models.NewProgress())
	m = press(t, m, "up")
	if m.topicIdx != 0 {
		t.Fatalf("topicIdx = %d, want 0", m.topicIdx)
	}
	m = press(t, m, "down", "down", "down", "j")
	if m.topicIdx != 2 {
		t.Fatalf("topicIdx = %d, want 2", m.topicIdx)
	}
}

func TestDayNavigationKeys(t *testing.T) {
	m, tr := setupTestModel(t, models.NewProgress())
	m = press(t, m, "down", "n")
	if tr.Day() != 2 {
		t.Fatalf("day = %d, want 2", tr.Day())
	}
	if m.topicIdx != 0 {
		t.Fatalf("changing day should reset the topic cursor")
	}
	m = press(t, m, "right", "]", "p")
	if tr.Day() != 3 {
		t.Fatalf("day = %d, want 3", tr.Day())
	}
	m = press(t, m, "left", "left", "left", "[")
	if tr.Day() != 1 {
		t.Fatalf("day = %d, want 1", tr.Day())
	}
	_ = m
}

func TestNavigationClampsAtBounds(t *testing.T) {
	m, tr := setupTestModel(t, models.Progress{Day: 25})
	m = press(t, m, "n", "right")
	if tr.Day() != 25 {
		t.Fatalf("day = %d, want 25", tr.Day())
	}
	tr.SetDay(1)
	press(t, m, "p", "left")
	if tr.Day() != 1 {
		t.Fatalf("day = %d, want 1", tr.Day())
	}
}

func TestCalendarPaneJumps(t *testing.T) {
	m, tr := setupTestModel(t, models.Progress{Day: 3})
	m = press(t, m, "tab")
	if m.focus != paneCalendar || m.cursorDay != 3 {
		t.Fatalf("expected calendar focus on day 3, got focus=%d cursor=%d", m.focus, m.cursorDay)
	}
	m = press(t, m, "down", "down", "right", "l")
	if m.cursorDay != 15 {
		t.Fatalf("cursorDay = %d, want 15", m.cursorDay)
	}
	if tr.Day() != 3 {
		t.Fatalf("moving the calendar cursor must not change the day")
	}
	m = press(t, m, "enter")
	if tr.Day() != 15 {
		t.Fatalf("day = %d, want 15", tr.Day())
	}
	m = press(t, m, "down", "down", "down", "right", "right", "right", "right", "right")
	if m.cursorDay != 25 {
		t.Fatalf("cursorDay = %d, want clamp to 25", m.cursorDay)
	}
	m = press(t, m, "up", "up", "up", "up", "up", "up", "h")
	if m.cursorDay != 1 {
		t.Fatalf("cursorDay = %d, want clamp to 1", m.cursorDay)
	}
	m = press(t, m, " ")
	if tr.Day() != 1 {
		t.Fatalf("day = %d, want 1", tr.Day())
	}
	m = press(t, m, "tab")
	if m.focus != paneTopics {
		t.Fatalf("tab should return focus to topics")
	}
}

func TestCalendarPaneDoesNotToggle(t *testing.T) {
	m, tr := setupTestModel(t, models.NewProgress())
	press(t, m, "tab", "1", "x")
	if len(tr.Snapshot().Completed) != 0 {
		t.Fatalf("topic keys should not act while the calendar is focused")
	}
}

func TestMouseWheelNavigates(t *testing.T) {
	m, tr := setupTestModel(t, models.Progress{Day: 5})
	next, _ := m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	m = next.(Model)
	if tr.Day() != 6 {
		t.Fatalf("wheel down: day = %d, want 6", tr.Day())
	}
	next, _ = m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	m = next.(Model)
	next, _ = m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	if tr.Day() != 4 {
		t.Fatalf("wheel up: day = %d, want 4", tr.Day())
	}
	_ = next
}

func TestQuitKeys(t *testing.T) {
	for _, k := range []string{"q", "ctrl+c"} {
		m, _ := setupTestModel(t, models.NewProgress())
		_, cmd := m.Update(keyMsg(k))
		if cmd == nil {
			t.Fatalf("%s: expected quit command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("%s: expected tea.QuitMsg", k)
		}
	}
}

func TestHooksRunOnKeyMutations(t *testing.T) {
	m, tr := setupTestModel(t, models.NewProgress())
	var snapshots []models.Progress
	tr.OnChange(func(p models.Progress) { snapshots = append(snapshots, p) })
	press(t, m, " ", "n", "tab", "down", "enter")
	if len(snapshots) != 3 {
		t.Fatalf("expected 3 change notifications, got %d", len(snapshots))
	}
	if snapshots[2].Day != 7 {
		t.Fatalf("jump should land on day 7, got %d", snapshots[2].Day)
	}
}

func TestResizeSetsBarWidths(t *testing.T) {
	m, _ := setupTestModel(t, models.NewProgress())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 20, Height: 10})
	m = next.(Model)
	if m.overallBar.Width < 10 || m.dayBar.Width < 10 {
		t.Fatalf("bars narrower than the minimum: %d, %d", m.overallBar.Width, m.dayBar.Width)
	}
	if m.help.Width != 20 {
		t.Fatalf("help width = %d, want 20", m.help.Width)
	}
}
