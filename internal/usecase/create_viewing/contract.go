package create_viewing

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ViewingService/internal/domain"
)

// ViewingRepository интерфейс репозитория показов
type ViewingRepository interface {
	Create(ctx context.Context, viewing *domain.Viewing) (*domain.Viewing, error)
}

// PropertyRepository интерфейс репозитория объектов
type PropertyRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Property, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
