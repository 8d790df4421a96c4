// Package testutil holds fluent builders for test fixtures.
package testutil

import (
	"github.com/akyairhashvil/prep-tracker/internal/models"
	"github.com/akyairhashvil/prep-tracker/internal/plan"
)

// ProgressBuilder provides fluent API for creating test progress states.
type ProgressBuilder struct {
	progress models.Progress
}

func NewProgress() *ProgressBuilder {
	return &ProgressBuilder{progress: models.NewProgress()}
}

func (b *ProgressBuilder) OnDay(day int) *ProgressBuilder {
	b.progress.Day = day
	return b
}

// WithTopics marks the topics at the given indexes of day complete without
// touching CompletedDays.
func (b *ProgressBuilder) WithTopics(day int, indexes ...int) *ProgressBuilder {
	names := plan.Topics(day)
	for _, i := range indexes {
		if i >= 0 && i < len(names) {
			key := plan.Key(day, names[i])
			if !b.progress.HasKey(key) {
				b.progress.Completed = append(b.progress.Completed, key)
			}
		}
	}
	return b
}

// WithCompletedDays marks every topic of each day complete and records the
// days in the order given.
func (b *ProgressBuilder) WithCompletedDays(days ...int) *ProgressBuilder {
	for _, d := range days {
		b.WithTopics(d, 0, 1, 2)
		if !b.progress.HasDay(d) {
			b.progress.CompletedDays = append(b.progress.CompletedDays, d)
		}
	}
	return b
}

func (b *ProgressBuilder) Build() models.Progress {
	return b.progress.Clone()
}
