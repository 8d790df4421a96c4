package tracker

import (
	"context"

	"github.com/akyairhashvil/prep-tracker/internal/models"
	"github.com/akyairhashvil/prep-tracker/internal/util"
)

// Saver persists a full progress snapshot.
//
//go:generate mockgen -source=persist.go -destination=mock_saver_test.go -package=tracker
type Saver interface {
	Save(ctx context.Context, p models.Progress) error
}

// PersistTo returns a change hook that writes every snapshot to s. Failures
// are logged and otherwise ignored; the in-memory state stays authoritative.
func PersistTo(ctx context.Context, s Saver) func(models.Progress) {
	return func(p models.Progress) {
		util.LogError("save progress", s.Save(ctx, p))
	}
}
