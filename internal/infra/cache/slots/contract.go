package slots

import (
	"context"

	"github.com/m04kA/SMC-ViewingService/internal/scheduling"
)

// Cache кэш рассчитанных слотов
type Cache interface {
	Get(ctx context.Context, key Key) ([]scheduling.Slot, int64, bool)
	Set(ctx context.Context, key Key, generation int64, slots []scheduling.Slot) error
	Invalidate(ctx context.Context, agencyID int64) error
}

type Logger interface {
	Warn(format string, v ...interface{})
}
