package models

import (
	"slices"

	"github.com/akyairhashvil/prep-tracker/internal/config"
)

// DayStatus is the derived display state of a single plan day.
type DayStatus string

const (
	DayCompleted DayStatus = "completed"
	DayCurrent   DayStatus = "current"
	DayMissed    DayStatus = "missed"
	DayUpcoming  DayStatus = "upcoming"
)

// Category is a named phase of the plan owning a contiguous day range.
type Category struct {
	Name     string
	FirstDay int
	LastDay  int
	Style    string // palette key: blue, green, purple, orange, red
}

// Contains reports whether day falls inside the category's range.
func (c Category) Contains(day int) bool {
	return day >= c.FirstDay && day <= c.LastDay
}

// Progress is the persisted tracker state.
type Progress struct {
	Day           int
	Completed     []string // composite "<day>-<topic>" keys, insertion order
	CompletedDays []int    // insertion order; drives the achievement list
}

// NewProgress returns the first-run state: day one, nothing completed.
func NewProgress() Progress {
	return Progress{
		Day:           config.FirstDay,
		Completed:     []string{},
		CompletedDays: []int{},
	}
}

// Clone returns a deep copy so callers cannot alias tracker state.
func (p Progress) Clone() Progress {
	out := Progress{Day: p.Day}
	out.Completed = append([]string{}, p.Completed...)
	out.CompletedDays = append([]int{}, p.CompletedDays...)
	return out
}

// HasKey reports whether the composite key is marked complete.
func (p Progress) HasKey(key string) bool {
	return slices.Contains(p.Completed, key)
}

// HasDay reports whether day is marked complete.
func (p Progress) HasDay(day int) bool {
	return slices.Contains(p.CompletedDays, day)
}
