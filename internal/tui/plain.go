package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/prep-tracker/internal/config"
	"github.com/akyairhashvil/prep-tracker/internal/models"
	"github.com/akyairhashvil/prep-tracker/internal/plan"
	"github.com/akyairhashvil/prep-tracker/internal/tracker"
)

var statusMarks = map[models.DayStatus]string{
	models.DayCompleted: "✓",
	models.DayCurrent:   "●",
	models.DayMissed:    "✗",
	models.DayUpcoming:  "·",
}

// RenderPlain formats p as uncoloured text for non-interactive output.
func RenderPlain(p models.Progress) string {
	var b strings.Builder
	category := plan.CategoryFor(p.Day)
	fmt.Fprintf(&b, "%s\n\n", appTitle)
	fmt.Fprintf(&b, "Day %d - %s (%d/%d topics)\n", p.Day, category.Name, tracker.DoneCount(p, p.Day), config.TopicsPerDay)
	for _, topic := range plan.Topics(p.Day) {
		mark := " "
		if tracker.TopicDone(p, topic) {
			mark = "x"
		}
		fmt.Fprintf(&b, "  [%s] %s\n", mark, topic)
	}
	fmt.Fprintf(&b, "\nOverall progress: %.0f%% (%d/%d topics)\n", tracker.OverallProgress(p), len(p.Completed), config.TotalTopics)
	fmt.Fprintf(&b, "Days completed: %d/%d\n\n", len(p.CompletedDays), config.TotalDays)

	for day := config.FirstDay; day <= config.TotalDays; day++ {
		fmt.Fprintf(&b, "%3d%s", day, statusMarks[tracker.Status(day, p.Day, p.CompletedDays)])
		if day%config.CalendarColumns == 0 {
			b.WriteString("\n")
		}
	}

	if recent := tracker.RecentAchievements(p); len(recent) > 0 {
		parts := make([]string, len(recent))
		for i, d := range recent {
			parts[i] = fmt.Sprintf("Day %d", d)
		}
		fmt.Fprintf(&b, "\nRecent achievements: %s\n", strings.Join(parts, ", "))
	}
	return b.String()
}
