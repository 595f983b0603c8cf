package viewings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ViewingService/internal/domain"
	"github.com/m04kA/SMC-ViewingService/internal/scheduling"
)

// ViewingRepository интерфейс репозитория показов
type ViewingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Viewing, error)
	GetByAgency(ctx context.Context, agencyID int64) ([]*domain.Viewing, error)
	GetConfirmedByAgentAndDate(ctx context.Context, agentID int64, date time.Time) ([]*domain.Viewing, error)
	UpdateStatus(ctx context.Context, viewing *domain.Viewing) error
}

// FeasibilityChecker проверка времени относительно расписания агента
type FeasibilityChecker interface {
	CheckFeasibility(req scheduling.FeasibilityRequest) (scheduling.FeasibilityResult, error)
}

// SlotCache инвалидация кэша слотов агентства
type SlotCache interface {
	Invalidate(ctx context.Context, agencyID int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
