package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ViewingService/internal/domain"
	"github.com/m04kA/SMC-ViewingService/internal/infra/cache/slots"
	propertyRepo "github.com/m04kA/SMC-ViewingService/internal/infra/storage/property"
	"github.com/m04kA/SMC-ViewingService/internal/scheduling"
)

// UseCase use case для получения доступных слотов для показа объекта
type UseCase struct {
	propertyRepo     PropertyRepository
	availabilityRepo AvailabilityRepository
	blockoutRepo     BlockoutRepository
	viewingRepo      ViewingRepository
	engine           SlotEngine
	resolver         LocationResolver
	cache            SlotCache
	metrics          Metrics
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	propertyRepo PropertyRepository,
	availabilityRepo AvailabilityRepository,
	blockoutRepo BlockoutRepository,
	viewingRepo ViewingRepository,
	engine SlotEngine,
	resolver LocationResolver,
	cache SlotCache,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		propertyRepo:     propertyRepo,
		availabilityRepo: availabilityRepo,
		blockoutRepo:     blockoutRepo,
		viewingRepo:      viewingRepo,
		engine:           engine,
		resolver:         resolver,
		cache:            cache,
		metrics:          metrics,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время, дата по умолчанию - сегодня
	now := uc.timeProvider.Now()
	date := req.Date
	if date.IsZero() {
		date = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}

	uc.logger.Info("GetAvailableSlots: property=%d, date=%s", req.PropertyID, date.Format(domain.DateFormat))

	// 3. Получаем объект
	property, err := uc.propertyRepo.GetByID(ctx, req.PropertyID)
	if err != nil {
		if errors.Is(err, propertyRepo.ErrPropertyNotFound) {
			uc.logger.Warn("GetAvailableSlots: property id=%d not found", req.PropertyID)
			return nil, ErrPropertyNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get property id=%d: %v", req.PropertyID, err)
		return nil, fmt.Errorf("%w: failed to get property: %v", ErrInternal, err)
	}

	// 4. Геокодируем объект, офис агентства используется как запасной адрес.
	// Запасной адрес влияет только на координаты в ответе: движок оценивает дорогу
	// по индексу объекта, и неизвестный индекс считается центром Лондона
	location := uc.resolver.Resolve(property.Postcode, property.AgencyBasePostcode)
	response := &Response{
		Date:       date,
		PropertyID: property.ID,
		Location: Location{
			Lat:       location.Lat,
			Lon:       location.Lon,
			Precision: location.Precision,
		},
		Slots: []Slot{},
	}

	// 5. Прошедшие даты не содержат слотов
	if isDateInPast(date, now) {
		uc.logger.Info("GetAvailableSlots: date %s is in the past", date.Format(domain.DateFormat))
		return response, nil
	}

	// 6. Для будущих дат пробуем кэш; сегодняшние слоты зависят от текущего времени
	// Поколение читается до снимка данных, иначе изменение расписания между ними попадет в кэш
	cacheable := !isSameDay(date, now)
	cacheKey := slots.Key{AgencyID: property.AgencyID, PropertyID: property.ID, Date: date}
	generation := slots.NoGeneration
	if cacheable {
		cached, gen, ok := uc.cache.Get(ctx, cacheKey)
		if ok {
			response.Slots = toSlots(cached)
			return response, nil
		}
		generation = gen
	}

	// 7. Собираем снимок данных для движка
	generateReq, err := uc.snapshot(ctx, property, date, now)
	if err != nil {
		return nil, err
	}

	// 8. Рассчитываем слоты
	generated, err := uc.engine.Generate(generateReq)
	if err != nil {
		// Сохраненные правила или показы не прошли валидацию движка
		uc.logger.Error("GetAvailableSlots: engine rejected stored data for property=%d: %v", property.ID, err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	uc.recordMetrics(generated)

	if cacheable {
		if err := uc.cache.Set(ctx, cacheKey, generation, generated); err != nil {
			uc.logger.Warn("GetAvailableSlots: failed to cache slots: %v", err)
		}
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for property=%d, date=%s",
		len(generated), property.ID, date.Format(domain.DateFormat))

	response.Slots = toSlots(generated)
	return response, nil
}

func (uc *UseCase) snapshot(ctx context.Context, property *domain.Property, date, now time.Time) (scheduling.GenerateRequest, error) {
	rules, err := uc.availabilityRepo.GetByAgency(ctx, property.AgencyID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get availability for agency=%d: %v", property.AgencyID, err)
		return scheduling.GenerateRequest{}, fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
	}

	blockouts, err := uc.blockoutRepo.GetByAgencyAndDate(ctx, property.AgencyID, date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get blockouts for agency=%d: %v", property.AgencyID, err)
		return scheduling.GenerateRequest{}, fmt.Errorf("%w: failed to get blockouts: %v", ErrInternal, err)
	}

	viewings, err := uc.viewingRepo.GetConfirmedByAgentAndDate(ctx, property.AgentID, date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get viewings for agent=%d: %v", property.AgentID, err)
		return scheduling.GenerateRequest{}, fmt.Errorf("%w: failed to get viewings: %v", ErrInternal, err)
	}

	cfg := uc.engine.Config()
	return scheduling.GenerateRequest{
		AgentID:         property.AgentID,
		Date:            date,
		LocationKey:     property.Postcode,
		DurationMinutes: cfg.ViewingDurationMinutes,
		BufferMinutes:   cfg.TravelBufferMinutes,
		Now:             now,
		Rules:           domain.ToWeeklyRules(domain.CompleteWeek(property.AgencyID, rules)),
		Exclusions:      domain.ToExclusions(blockouts),
		Appointments:    domain.ToAppointments(viewings),
	}, nil
}

func (uc *UseCase) recordMetrics(generated []scheduling.Slot) {
	counts := make(map[scheduling.SlotStatus]int)
	for _, s := range generated {
		counts[s.Status]++
	}
	for status, count := range counts {
		uc.metrics.AddSlotsGenerated(string(status), count)
	}
}

func toSlots(generated []scheduling.Slot) []Slot {
	result := make([]Slot, 0, len(generated))
	for _, s := range generated {
		result = append(result, Slot{
			Time:          s.Time,
			Status:        s.Status,
			TravelMinutes: s.TravelMinutes,
		})
	}
	return result
}
