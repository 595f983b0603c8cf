package check_viewing_feasibility

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ViewingService/internal/domain"
	viewingRepo "github.com/m04kA/SMC-ViewingService/internal/infra/storage/viewing"
	"github.com/m04kA/SMC-ViewingService/internal/scheduling"
)

// UseCase проверяет, помещается ли показ в день агента
type UseCase struct {
	viewingRepo ViewingRepository
	engine      FeasibilityEngine
	metrics     Metrics
	logger      Logger
}

func NewUseCase(viewingRepo ViewingRepository, engine FeasibilityEngine, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		viewingRepo: viewingRepo,
		engine:      engine,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute оценивает показ относительно других подтвержденных показов агента на ту же дату
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.ViewingID <= 0 {
		return nil, fmt.Errorf("%w: viewingID must be positive", ErrInvalidInput)
	}

	// 1. Получаем показ
	viewing, err := uc.viewingRepo.GetByID(ctx, req.ViewingID)
	if err != nil {
		if errors.Is(err, viewingRepo.ErrViewingNotFound) {
			uc.logger.Warn("CheckViewingFeasibility: viewing id=%d not found", req.ViewingID)
			return nil, ErrViewingNotFound
		}
		uc.logger.Error("CheckViewingFeasibility: failed to get viewing id=%d: %v", req.ViewingID, err)
		return nil, fmt.Errorf("%w: failed to get viewing: %v", ErrInternal, err)
	}

	// 2. Получаем расписание агента на дату показа
	confirmed, err := uc.viewingRepo.GetConfirmedByAgentAndDate(ctx, viewing.AgentID, viewing.RequestedDate)
	if err != nil {
		uc.logger.Error("CheckViewingFeasibility: failed to get confirmed viewings for agent=%d: %v", viewing.AgentID, err)
		return nil, fmt.Errorf("%w: failed to get confirmed viewings: %v", ErrInternal, err)
	}

	// 3. Оцениваем показ, исключая его самого
	evaluation, err := uc.engine.Evaluate(scheduling.FeasibilityRequest{
		AgentID:      viewing.AgentID,
		Date:         viewing.RequestedDate,
		Time:         viewing.EffectiveTime(),
		LocationKey:  viewing.PropertyPostcode,
		ExcludeID:    viewing.ID,
		Appointments: domain.ToAppointments(confirmed),
	})
	if err != nil {
		uc.logger.Error("CheckViewingFeasibility: engine rejected viewing id=%d: %v", viewing.ID, err)
		return nil, fmt.Errorf("%w: failed to evaluate viewing: %v", ErrInternal, err)
	}

	uc.metrics.IncFeasibilityCheck(string(evaluation.Status))
	uc.logger.Info("CheckViewingFeasibility: viewing id=%d at %s is %s", viewing.ID, viewing.EffectiveTime(), evaluation.Status)

	b := badges[evaluation.Status]
	response := &Response{
		ViewingID:     viewing.ID,
		Status:        evaluation.Status,
		Label:         b.label,
		Color:         b.color,
		TravelMinutes: evaluation.TravelMinutes,
	}
	if evaluation.Reason != "" {
		reason := evaluation.Reason
		response.Reason = &reason
	}

	return response, nil
}
