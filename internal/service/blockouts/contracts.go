package blockouts

import (
	"context"

	"github.com/m04kA/SMC-ViewingService/internal/domain"
)

// BlockoutRepository интерфейс репозитория блокировок
type BlockoutRepository interface {
	Create(ctx context.Context, blockout *domain.Blockout) (*domain.Blockout, error)
	GetByAgency(ctx context.Context, agencyID int64) ([]domain.Blockout, error)
	Delete(ctx context.Context, agencyID, id int64) error
}

// SlotCache инвалидация кэша слотов агентства
type SlotCache interface {
	Invalidate(ctx context.Context, agencyID int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
