package availability

import (
	"context"

	"github.com/m04kA/SMC-ViewingService/internal/domain"
)

// AvailabilityRepository интерфейс репозитория недельного расписания
type AvailabilityRepository interface {
	GetByAgency(ctx context.Context, agencyID int64) ([]domain.AvailabilityRule, error)
	ReplaceForAgency(ctx context.Context, agencyID int64, rules []domain.AvailabilityRule) error
}

// SlotCache инвалидация кэша слотов агентства
type SlotCache interface {
	Invalidate(ctx context.Context, agencyID int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
