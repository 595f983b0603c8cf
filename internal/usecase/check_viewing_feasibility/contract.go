package check_viewing_feasibility

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ViewingService/internal/domain"
	"github.com/m04kA/SMC-ViewingService/internal/scheduling"
)

// ViewingRepository интерфейс репозитория показов
type ViewingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Viewing, error)
	GetConfirmedByAgentAndDate(ctx context.Context, agentID int64, date time.Time) ([]*domain.Viewing, error)
}

// FeasibilityEngine проверка времени показа относительно расписания агента
type FeasibilityEngine interface {
	Evaluate(req scheduling.FeasibilityRequest) (scheduling.Evaluation, error)
}

// Metrics счетчик проверок
type Metrics interface {
	IncFeasibilityCheck(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
