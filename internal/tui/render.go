package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/prep-tracker/internal/config"
	"github.com/akyairhashvil/prep-tracker/internal/models"
	"github.com/akyairhashvil/prep-tracker/internal/plan"
	"github.com/akyairhashvil/prep-tracker/internal/tracker"
	"github.com/akyairhashvil/prep-tracker/internal/util"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	appTitle   = "Placement Prep Tracker"
	appTagline = "Master Your Skills • Ace Your Interviews • Land Your Dream Job"
)

func truncateLabel(text string, max int) string {
	if max <= 0 {
		return ""
	}
	if ansi.StringWidth(text) <= max {
		return text
	}
	return ansi.Truncate(text, max, config.TruncationSuffix)
}

func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}
	p := m.tracker.Snapshot()

	calendar := m.renderCalendar(p)
	mainWidth := m.width - 4
	if m.width >= config.CompactModeThreshold {
		mainWidth -= lipgloss.Width(calendar) + 2
	}
	main := lipgloss.JoinVertical(lipgloss.Left,
		m.renderTitle(),
		"",
		m.renderSummary(p),
		"",
		m.renderDayCard(p, mainWidth),
		m.renderAchievements(p),
	)

	var body string
	if m.width < config.CompactModeThreshold {
		body = lipgloss.JoinVertical(lipgloss.Left, main, "", calendar)
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Top, calendar, "  ", main)
	}
	footer := m.help.View(m.keys.HelpFor(m))
	return m.theme.Base.Render(lipgloss.JoinVertical(lipgloss.Left, body, "", footer))
}

func (m Model) renderTitle() string {
	return m.theme.Title.Render(appTitle) + " " + m.theme.Dim.Render("v"+VersionLabel()) + "\n" + m.theme.Subtitle.Render(appTagline)
}

func calendarCell(day int, selected bool) string {
	if selected {
		return fmt.Sprintf("[%2d]", day)
	}
	return fmt.Sprintf(" %2d ", day)
}

func (m Model) renderCalendar(p models.Progress) string {
	var b strings.Builder
	title := "Progress Calendar"
	if m.focus == paneCalendar {
		b.WriteString(m.theme.Focused.Render(title))
	} else {
		b.WriteString(m.theme.Title.Render(title))
	}
	b.WriteString("\n\n")

	var row []string
	for day := config.FirstDay; day <= config.TotalDays; day++ {
		status := tracker.Status(day, p.Day, p.CompletedDays)
		selected := m.focus == paneCalendar && day == m.cursorDay
		row = append(row, m.theme.StatusStyle(status).Render(calendarCell(day, selected)))
		if len(row) == config.CalendarColumns {
			b.WriteString(strings.Join(row, " ") + "\n")
			row = row[:0]
		}
	}
	b.WriteString("\n")

	legend := []struct {
		status models.DayStatus
		label  string
	}{
		{models.DayCompleted, fmt.Sprintf("Completed (%d)", len(p.CompletedDays))},
		{models.DayCurrent, "Current Day"},
		{models.DayMissed, "Missed"},
		{models.DayUpcoming, "Upcoming"},
	}
	for _, l := range legend {
		b.WriteString(m.theme.StatusStyle(l.status).Render("  ") + " " + l.label + "\n")
	}

	b.WriteString("\nDay Completion\n")
	b.WriteString(m.daysBar.ViewAs(tracker.DayCompletionRatio(p)/100) + "\n")
	b.WriteString(m.theme.Dim.Render(fmt.Sprintf("%d of %d days completed", len(p.CompletedDays), config.TotalDays)))

	border := m.theme.Border
	if m.focus == paneCalendar {
		border = m.theme.FocusBorder
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(config.CalendarPanelWidth).
		Render(b.String())
}

func (m Model) renderSummary(p models.Progress) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(0, 2).
		Align(lipgloss.Center)
	overall := box.Render(fmt.Sprintf("%.0f%%\nOverall Progress\n%s",
		tracker.OverallProgress(p), m.overallBar.ViewAs(tracker.OverallProgress(p)/100)))
	topics := box.Render(fmt.Sprintf("%d/%d\nTopics Completed", len(p.Completed), config.TotalTopics))
	days := box.Render(fmt.Sprintf("%d\nDays Completed", len(p.CompletedDays)))
	return lipgloss.JoinHorizontal(lipgloss.Top, overall, " ", topics, " ", days)
}

func (m Model) renderDayCard(p models.Progress, width int) string {
	var b strings.Builder
	category := plan.CategoryFor(p.Day)
	b.WriteString(m.theme.CategoryStyle(category).Render(fmt.Sprintf("Day %d - %s", p.Day, category.Name)))
	b.WriteString("\n")
	if p.HasDay(p.Day) {
		b.WriteString(m.theme.Badge.Render("✅ Day Completed!"))
	} else {
		b.WriteString(m.theme.Dim.Render(fmt.Sprintf("Complete all %d topics to mark day as done", config.TopicsPerDay)))
	}
	b.WriteString("\n\n")

	labelWidth := util.Clamp(width-16, config.MinTopicWidth, width)
	for i, topic := range plan.Topics(p.Day) {
		cursor := "  "
		if m.focus == paneTopics && i == m.topicIdx {
			cursor = m.theme.Focused.Render("› ")
		}
		label := truncateLabel(topic, labelWidth)
		line := fmt.Sprintf("%s%d. [ ] %s", cursor, i+1, m.theme.Topic.Render(label))
		if tracker.TopicDone(p, topic) {
			line = fmt.Sprintf("%s%d. [x] %s %s", cursor, i+1, m.theme.DoneTopic.Render(label), m.theme.Badge.Render("✓ Done"))
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")
	b.WriteString(m.renderControls(p))
	return b.String()
}

func (m Model) renderControls(p models.Progress) string {
	prev := m.theme.Topic.Render("← Previous Day")
	if p.Day <= config.FirstDay {
		prev = m.theme.Dim.Render("← Previous Day")
	}
	next := m.theme.Topic.Render("Next Day →")
	if p.Day >= config.TotalDays {
		next = m.theme.Dim.Render("Next Day →")
	}
	dayProgress := "Day Progress " + m.dayBar.ViewAs(tracker.CurrentDayProgress(p)/100)
	return lipgloss.JoinHorizontal(lipgloss.Center, prev, "   ", dayProgress, "   ", next)
}

func (m Model) renderAchievements(p models.Progress) string {
	recent := tracker.RecentAchievements(p)
	if len(recent) == 0 {
		return ""
	}
	badges := make([]string, 0, len(recent))
	for _, day := range recent {
		badges = append(badges, m.theme.Achievement.Render(fmt.Sprintf("Day %d ✅", day)))
	}
	return "\n" + m.theme.Title.Render("🏆 Recent Achievements") + "\n" + strings.Join(badges, " ")
}
