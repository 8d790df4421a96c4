package database

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/akyairhashvil/prep-tracker/internal/config"
	"github.com/akyairhashvil/prep-tracker/internal/models"
	"github.com/akyairhashvil/prep-tracker/internal/plan"
	"github.com/akyairhashvil/prep-tracker/internal/util"
)

// Load reads the persisted progress. Each of the three entries falls back to
// its default independently when missing or malformed. An error is returned
// only when the store cannot be read at all, together with the default state.
func (d *Database) Load(ctx context.Context) (models.Progress, error) {
	p := models.NewProgress()
	values, err := d.settings(ctx, config.KeyDay, config.KeyCompleted, config.KeyCompletedDays)
	if err != nil {
		return p, err
	}

	if raw, ok := values[config.KeyDay]; ok {
		if day, err := decodeDay(raw); err != nil {
			util.LogError("load "+config.KeyDay, err)
		} else {
			p.Day = day
		}
	}
	if raw, ok := values[config.KeyCompleted]; ok {
		if keys, err := decodeCompleted(raw); err != nil {
			util.LogError("load "+config.KeyCompleted, err)
		} else {
			p.Completed = keys
		}
	}
	if raw, ok := values[config.KeyCompletedDays]; ok {
		if days, err := decodeCompletedDays(raw); err != nil {
			util.LogError("load "+config.KeyCompletedDays, err)
		} else {
			p.CompletedDays = days
		}
	}
	return p, nil
}

// Save writes all three entries in a single transaction.
func (d *Database) Save(ctx context.Context, p models.Progress) error {
	if d.closed {
		return &OpError{Op: "save", Err: ErrStoreClosed}
	}
	entries, err := encodeProgress(p)
	if err != nil {
		return &OpError{Op: "encode", Err: err}
	}
	tx, err := d.DB.BeginTx(ctx, nil)
	if err != nil {
		return &OpError{Op: "begin", Err: err}
	}
	for _, e := range entries {
		if err := setSetting(ctx, tx, e.key, e.value); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return &OpError{Op: "commit", Err: err}
	}
	return nil
}

type entry struct {
	key, value string
}

func encodeProgress(p models.Progress) ([]entry, error) {
	completed := p.Completed
	if completed == nil {
		completed = []string{}
	}
	days := p.CompletedDays
	if days == nil {
		days = []int{}
	}
	completedJSON, err := json.Marshal(completed)
	if err != nil {
		return nil, err
	}
	daysJSON, err := json.Marshal(days)
	if err != nil {
		return nil, err
	}
	return []entry{
		{config.KeyDay, strconv.Itoa(p.Day)},
		{config.KeyCompleted, string(completedJSON)},
		{config.KeyCompletedDays, string(daysJSON)},
	}, nil
}

func decodeDay(raw string) (int, error) {
	day, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, err
	}
	if !plan.ValidDay(day) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidDay, day)
	}
	return day, nil
}

// decodeCompleted parses a JSON array of composite keys, dropping keys that
// name no plan topic and repeated keys.
func decodeCompleted(raw string) ([]string, error) {
	var keys []string
	if err := json.Unmarshal([]byte(raw), &keys); err != nil {
		return nil, err
	}
	out := make([]string, 0, len(keys))
	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		switch {
		case !plan.ValidKey(k):
			util.LogDropped(config.KeyCompleted, k, "unknown topic")
		case seen[k]:
			util.LogDropped(config.KeyCompleted, k, "duplicate")
		default:
			seen[k] = true
			out = append(out, k)
		}
	}
	return out, nil
}

// decodeCompletedDays parses a JSON array of day numbers, keeping insertion
// order and dropping out-of-range or repeated days.
func decodeCompletedDays(raw string) ([]int, error) {
	var days []int
	if err := json.Unmarshal([]byte(raw), &days); err != nil {
		return nil, err
	}
	out := make([]int, 0, len(days))
	seen := make(map[int]bool, len(days))
	for _, d := range days {
		switch {
		case !plan.ValidDay(d):
			util.LogDropped(config.KeyCompletedDays, d, "outside the plan")
		case seen[d]:
			util.LogDropped(config.KeyCompletedDays, d, "duplicate")
		default:
			seen[d] = true
			out = append(out, d)
		}
	}
	return out, nil
}
