package tracker

import (
	"slices"

	"github.com/akyairhashvil/prep-tracker/internal/config"
	"github.com/akyairhashvil/prep-tracker/internal/models"
	"github.com/akyairhashvil/prep-tracker/internal/plan"
	"github.com/akyairhashvil/prep-tracker/internal/util"
)

// Status derives how day is displayed. Completion wins over everything, so a
// completed future day still shows as completed.
func Status(day, currentDay int, completedDays []int) models.DayStatus {
	switch {
	case slices.Contains(completedDays, day):
		return models.DayCompleted
	case day == currentDay:
		return models.DayCurrent
	case day < currentDay:
		return models.DayMissed
	default:
		return models.DayUpcoming
	}
}

// DoneCount is the number of day's topics marked complete in p.
func DoneCount(p models.Progress, day int) int {
	n := 0
	for _, topic := range plan.Topics(day) {
		if p.HasKey(plan.Key(day, topic)) {
			n++
		}
	}
	return n
}

// OverallProgress is the share of all 75 plan topics completed, in percent.
// It counts stored keys rather than re-validating them.
func OverallProgress(p models.Progress) float64 {
	return util.Percent(len(p.Completed), config.TotalTopics)
}

// DayCompletionRatio is the share of plan days completed, in percent.
func DayCompletionRatio(p models.Progress) float64 {
	return util.Percent(len(p.CompletedDays), config.TotalDays)
}

// CurrentDayProgress is the share of the current day's topics completed, in percent.
func CurrentDayProgress(p models.Progress) float64 {
	return util.Percent(DoneCount(p, p.Day), config.TopicsPerDay)
}

// RecentAchievements returns the last completed days in the order they were
// completed, capped at config.MaxAchievements.
func RecentAchievements(p models.Progress) []int {
	days := p.CompletedDays
	if len(days) > config.MaxAchievements {
		days = days[len(days)-config.MaxAchievements:]
	}
	return slices.Clone(days)
}

// TopicDone reports whether topic is complete on the current day.
func TopicDone(p models.Progress, topic string) bool {
	return p.HasKey(plan.Key(p.Day, topic))
}

// Status of day relative to the tracker's current state.
func (t *Tracker) Status(day int) models.DayStatus {
	return Status(day, t.state.Day, t.state.CompletedDays)
}

// Category of the current day.
func (t *Tracker) Category() models.Category {
	return plan.CategoryFor(t.state.Day)
}

// DayComplete reports whether the current day is in CompletedDays.
func (t *Tracker) DayComplete() bool {
	return t.state.HasDay(t.state.Day)
}
