package viewings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ViewingService/internal/domain"
	viewingRepo "github.com/m04kA/SMC-ViewingService/internal/infra/storage/viewing"
	"github.com/m04kA/SMC-ViewingService/internal/scheduling"
	"github.com/m04kA/SMC-ViewingService/internal/service/viewings/models"
	"github.com/m04kA/SMC-ViewingService/pkg/types"
)

// Service сервис для работы с показами со стороны агентства
type Service struct {
	viewingRepo ViewingRepository
	checker     FeasibilityChecker
	cache       SlotCache
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса показов
func NewService(
	viewingRepo ViewingRepository,
	checker FeasibilityChecker,
	cache SlotCache,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		viewingRepo: viewingRepo,
		checker:     checker,
		cache:       cache,
		txManager:   txManager,
		logger:      logger,
	}
}

// ListByAgency получает все показы агентства, сначала новые
func (s *Service) ListByAgency(ctx context.Context, agencyID int64) (*models.ViewingListResponse, error) {
	s.logger.Info("ListByAgency: fetching viewings for agency=%d", agencyID)

	if agencyID <= 0 {
		return nil, fmt.Errorf("%w: agencyID must be positive", ErrInvalidInput)
	}

	viewings, err := s.viewingRepo.GetByAgency(ctx, agencyID)
	if err != nil {
		s.logger.Error("ListByAgency: repository error for agency=%d: %v", agencyID, err)
		return nil, fmt.Errorf("%w: ListByAgency - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByAgency: successfully fetched %d viewings for agency=%d", len(viewings), agencyID)
	return models.FromDomainViewingList(viewings), nil
}

// UpdateStatus меняет статус показа и, опционально, предлагает другое время
// При подтверждении confirmed_time = suggestedTime или requested_time, и это время
// заново проверяется против остальных подтвержденных показов агента в сериализуемой транзакции
func (s *Service) UpdateStatus(ctx context.Context, viewingID int64, req *models.UpdateStatusRequest) (*models.ViewingResponse, error) {
	s.logger.Info("UpdateStatus: viewing id=%d, status=%s", viewingID, req.Status)

	// 1. Валидация входных данных
	status, err := models.ToDomainViewingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for viewing id=%d", req.Status, viewingID)
		return nil, ErrInvalidStatus
	}

	var suggested *types.TimeString
	if req.SuggestedTime != nil && *req.SuggestedTime != "" {
		t, err := types.NewTimeStringFromString(*req.SuggestedTime)
		if err != nil {
			s.logger.Warn("UpdateStatus: invalid suggestedTime=%s for viewing id=%d", *req.SuggestedTime, viewingID)
			return nil, fmt.Errorf("%w: invalid suggestedTime format, use HH:MM", ErrInvalidInput)
		}
		suggested = &t
	}

	var updated *domain.Viewing
	var wasConfirmed bool

	// 2. Читаем, проверяем и сохраняем показ в одной транзакции
	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		viewing, err := s.viewingRepo.GetByID(txCtx, viewingID)
		if err != nil {
			if errors.Is(err, viewingRepo.ErrViewingNotFound) {
				s.logger.Warn("UpdateStatus: viewing id=%d not found", viewingID)
				return ErrViewingNotFound
			}
			s.logger.Error("UpdateStatus: failed to get viewing id=%d: %v", viewingID, err)
			return fmt.Errorf("%w: failed to get viewing: %v", ErrInternal, err)
		}

		wasConfirmed = viewing.IsConfirmed()

		viewing.Status = status
		if suggested != nil {
			viewing.SuggestedTime = suggested
		}

		if status == domain.StatusConfirmed {
			confirmedTime := viewing.RequestedTime
			if suggested != nil {
				confirmedTime = *suggested
			}
			viewing.ConfirmedTime = &confirmedTime

			if err := s.ensureFeasible(txCtx, viewing); err != nil {
				return err
			}
		} else {
			// Показ уходит из расписания агента
			viewing.ConfirmedTime = nil
		}

		if err := s.viewingRepo.UpdateStatus(txCtx, viewing); err != nil {
			if errors.Is(err, viewingRepo.ErrViewingNotFound) {
				return ErrViewingNotFound
			}
			s.logger.Error("UpdateStatus: failed to update viewing id=%d: %v", viewingID, err)
			return fmt.Errorf("%w: failed to update viewing: %v", ErrInternal, err)
		}

		updated = viewing
		return nil
	})

	if err != nil {
		return nil, err
	}

	// 3. Расписание агента изменилось, сбрасываем кэш слотов агентства
	if wasConfirmed || updated.IsConfirmed() {
		if err := s.cache.Invalidate(ctx, updated.AgencyID); err != nil {
			s.logger.Warn("UpdateStatus: failed to invalidate slot cache for agency=%d: %v", updated.AgencyID, err)
		}
	}

	s.logger.Info("UpdateStatus: viewing id=%d is now %s", updated.ID, updated.Status)
	return models.FromDomainViewing(updated), nil
}

// ensureFeasible проверяет подтверждаемое время против остальных подтвержденных показов агента
// Строки читаются с блокировкой, так как вызов идет внутри транзакции
func (s *Service) ensureFeasible(ctx context.Context, viewing *domain.Viewing) error {
	confirmed, err := s.viewingRepo.GetConfirmedByAgentAndDate(ctx, viewing.AgentID, viewing.RequestedDate)
	if err != nil {
		s.logger.Error("UpdateStatus: failed to get confirmed viewings for agent=%d: %v", viewing.AgentID, err)
		return fmt.Errorf("%w: failed to get confirmed viewings: %v", ErrInternal, err)
	}

	result, err := s.checker.CheckFeasibility(scheduling.FeasibilityRequest{
		AgentID:      viewing.AgentID,
		Date:         viewing.RequestedDate,
		Time:         viewing.EffectiveTime(),
		LocationKey:  viewing.PropertyPostcode,
		ExcludeID:    viewing.ID,
		Appointments: domain.ToAppointments(confirmed),
	})
	if err != nil {
		s.logger.Error("UpdateStatus: feasibility check failed for viewing id=%d: %v", viewing.ID, err)
		return fmt.Errorf("%w: feasibility check failed: %v", ErrInternal, err)
	}

	if !result.Feasible {
		s.logger.Warn("UpdateStatus: viewing id=%d at %s is not feasible: %s", viewing.ID, viewing.EffectiveTime(), result.Reason)
		return fmt.Errorf("%w: %s", ErrInfeasible, result.Reason)
	}

	return nil
}
