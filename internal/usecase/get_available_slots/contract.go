package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ViewingService/internal/domain"
	"github.com/m04kA/SMC-ViewingService/internal/infra/cache/slots"
	"github.com/m04kA/SMC-ViewingService/internal/scheduling"
	"github.com/m04kA/SMC-ViewingService/internal/travel"
)

// PropertyRepository интерфейс репозитория объектов
type PropertyRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Property, error)
}

// AvailabilityRepository интерфейс репозитория недельного расписания
type AvailabilityRepository interface {
	GetByAgency(ctx context.Context, agencyID int64) ([]domain.AvailabilityRule, error)
}

// BlockoutRepository интерфейс репозитория блокировок
type BlockoutRepository interface {
	GetByAgencyAndDate(ctx context.Context, agencyID int64, date time.Time) ([]domain.Blockout, error)
}

// ViewingRepository интерфейс репозитория показов
type ViewingRepository interface {
	// GetConfirmedByAgentAndDate получает подтвержденные показы агента на дату
	GetConfirmedByAgentAndDate(ctx context.Context, agentID int64, date time.Time) ([]*domain.Viewing, error)
}

// SlotEngine движок расчета слотов
type SlotEngine interface {
	Generate(req scheduling.GenerateRequest) ([]scheduling.Slot, error)
	Config() scheduling.Config
}

// LocationResolver разрешает почтовый индекс в координаты
type LocationResolver interface {
	Resolve(key, fallbackKey string) travel.Location
}

// SlotCache кэш рассчитанных слотов
// Get возвращает поколение агентства, Set сохраняет слоты под ним
type SlotCache interface {
	Get(ctx context.Context, key slots.Key) ([]scheduling.Slot, int64, bool)
	Set(ctx context.Context, key slots.Key, generation int64, slots []scheduling.Slot) error
}

// Metrics счетчики выданных слотов
type Metrics interface {
	AddSlotsGenerated(status string, count int)
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
