package availability

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ViewingService/internal/domain"
	"github.com/m04kA/SMC-ViewingService/internal/service/availability/models"
)

// Service сервис недельного расписания агентства
type Service struct {
	availabilityRepo AvailabilityRepository
	cache            SlotCache
	txManager        TransactionManager
	logger           Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	availabilityRepo AvailabilityRepository,
	cache SlotCache,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		availabilityRepo: availabilityRepo,
		cache:            cache,
		txManager:        txManager,
		logger:           logger,
	}
}

// GetWeek возвращает расписание на все семь дней
// Ненастроенные дни заполняются значением по умолчанию (09:00-18:00, включен)
func (s *Service) GetWeek(ctx context.Context, agencyID int64) (*models.AvailabilityResponse, error) {
	s.logger.Info("GetWeek: fetching availability for agency=%d", agencyID)

	if agencyID <= 0 {
		return nil, fmt.Errorf("%w: agencyID must be positive", ErrInvalidInput)
	}

	rules, err := s.availabilityRepo.GetByAgency(ctx, agencyID)
	if err != nil {
		s.logger.Error("GetWeek: repository error for agency=%d: %v", agencyID, err)
		return nil, fmt.Errorf("%w: GetWeek - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRules(agencyID, domain.CompleteWeek(agencyID, rules)), nil
}

// Replace атомарно заменяет расписание агентства
func (s *Service) Replace(ctx context.Context, agencyID int64, req *models.UpdateAvailabilityRequest) (*models.AvailabilityResponse, error) {
	s.logger.Info("Replace: updating availability for agency=%d, rules=%d", agencyID, len(req.Availability))

	// 1. Валидируем входные данные
	if agencyID <= 0 {
		return nil, fmt.Errorf("%w: agencyID must be positive", ErrInvalidInput)
	}

	rules := req.ToDomainRules(agencyID)
	if err := validateRules(rules); err != nil {
		s.logger.Warn("Replace: validation failed for agency=%d: %v", agencyID, err)
		return nil, err
	}

	// 2. Заменяем правила в транзакции
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.availabilityRepo.ReplaceForAgency(txCtx, agencyID, rules); err != nil {
			s.logger.Error("Replace: repository error for agency=%d: %v", agencyID, err)
			return fmt.Errorf("%w: Replace - repository error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// 3. Сбрасываем кэш слотов агентства
	if err := s.cache.Invalidate(ctx, agencyID); err != nil {
		s.logger.Warn("Replace: failed to invalidate slot cache for agency=%d: %v", agencyID, err)
	}

	s.logger.Info("Replace: successfully updated availability for agency=%d", agencyID)
	return models.FromDomainRules(agencyID, domain.CompleteWeek(agencyID, rules)), nil
}
