// Package tracker owns the progress state of the study plan. All mutations go
// through a Tracker, which keeps the completed-day set consistent with the
// completed topics and runs its change hooks after every mutation.
package tracker

import (
	"slices"

	"github.com/akyairhashvil/prep-tracker/internal/config"
	"github.com/akyairhashvil/prep-tracker/internal/models"
	"github.com/akyairhashvil/prep-tracker/internal/plan"
	"github.com/akyairhashvil/prep-tracker/internal/util"
)

// Tracker is the single owner of a models.Progress value.
type Tracker struct {
	state    models.Progress
	onChange []func(models.Progress)
}

// New returns a tracker seeded with p. A nil slice in p is treated as empty.
func New(p models.Progress) *Tracker {
	return &Tracker{state: p.Clone()}
}

// OnChange registers fn to run with a snapshot after every mutation.
func (t *Tracker) OnChange(fn func(models.Progress)) {
	t.onChange = append(t.onChange, fn)
}

// Snapshot returns a copy of the current state.
func (t *Tracker) Snapshot() models.Progress {
	return t.state.Clone()
}

// Day returns the currently selected day.
func (t *Tracker) Day() int {
	return t.state.Day
}

// Toggle flips completion of topic on the current day and reconciles the
// day's membership in CompletedDays. It returns false, without changing
// anything, when topic is not one of the current day's topics.
func (t *Tracker) Toggle(topic string) bool {
	day := t.state.Day
	if !plan.HasTopic(day, topic) {
		return false
	}
	key := plan.Key(day, topic)
	if i := slices.Index(t.state.Completed, key); i >= 0 {
		t.state.Completed = slices.Delete(t.state.Completed, i, i+1)
	} else {
		t.state.Completed = append(t.state.Completed, key)
	}

	done := DoneCount(t.state, day)
	switch {
	case done == config.TopicsPerDay && !t.state.HasDay(day):
		t.state.CompletedDays = append(t.state.CompletedDays, day)
	case done < config.TopicsPerDay && t.state.HasDay(day):
		i := slices.Index(t.state.CompletedDays, day)
		t.state.CompletedDays = slices.Delete(t.state.CompletedDays, i, i+1)
	}
	t.notify()
	return true
}

// ToggleIndex toggles the i-th topic of the current day.
func (t *Tracker) ToggleIndex(i int) bool {
	names := plan.Topics(t.state.Day)
	if i < 0 || i >= len(names) {
		return false
	}
	return t.Toggle(names[i])
}

// SetDay jumps directly to day. It does not clamp: callers only pass days
// from the rendered calendar, and an out-of-range day is undefined.
func (t *Tracker) SetDay(day int) {
	t.state.Day = day
	t.notify()
}

// Next moves forward one day, stopping at the last day.
func (t *Tracker) Next() {
	t.SetDay(util.Clamp(t.state.Day+1, config.FirstDay, config.TotalDays))
}

// Previous moves back one day, stopping at the first day.
func (t *Tracker) Previous() {
	t.SetDay(util.Clamp(t.state.Day-1, config.FirstDay, config.TotalDays))
}

func (t *Tracker) notify() {
	for _, fn := range t.onChange {
		fn(t.state.Clone())
	}
}
