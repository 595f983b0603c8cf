package slots

import (
	"context"

	"github.com/m04kA/SMC-ViewingService/internal/scheduling"
)

// NoopCache используется, когда Redis выключен в конфиге
type NoopCache struct{}

func NewNoopCache() *NoopCache {
	return &NoopCache{}
}

func (NoopCache) Get(context.Context, Key) ([]scheduling.Slot, int64, bool) {
	return nil, NoGeneration, false
}

func (NoopCache) Set(context.Context, Key, int64, []scheduling.Slot) error {
	return nil
}

func (NoopCache) Invalidate(context.Context, int64) error {
	return nil
}
