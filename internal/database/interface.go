package database

import (
	"context"

	"github.com/akyairhashvil/prep-tracker/internal/models"
)

// SettingsStore is the flat key-value surface of the database.
type SettingsStore interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
}

// ProgressStore loads and saves whole progress snapshots.
type ProgressStore interface {
	Load(ctx context.Context) (models.Progress, error)
	Save(ctx context.Context, p models.Progress) error
}

// Repository combines the store interfaces.
type Repository interface {
	SettingsStore
	ProgressStore
	Close() error
}

var _ Repository = (*Database)(nil)
