package create_viewing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ViewingService/internal/domain"
	propertyRepo "github.com/m04kA/SMC-ViewingService/internal/infra/storage/property"
)

// UseCase use case для создания запроса на показ
type UseCase struct {
	viewingRepo  ViewingRepository
	propertyRepo PropertyRepository
	leadMinutes  int
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// leadMinutes - минимальный запас до показа, если он запрашивается на сегодня
func NewUseCase(
	viewingRepo ViewingRepository,
	propertyRepo PropertyRepository,
	leadMinutes int,
	logger Logger,
) *UseCase {
	return &UseCase{
		viewingRepo:  viewingRepo,
		propertyRepo: propertyRepo,
		leadMinutes:  leadMinutes,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания запроса на показ
// Показ сохраняется в статусе pending, расписание агента не меняется до подтверждения
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateViewing: property=%d, date=%s, time=%s",
		req.PropertyID, req.RequestedDate.Format(domain.DateFormat), req.RequestedTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateViewing: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время, дата по умолчанию - сегодня
	now := uc.timeProvider.Now()
	date := req.RequestedDate
	if date.IsZero() {
		date = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}

	// 3. Проверяем дату и время относительно текущего момента
	if err := validateRequestedTime(date, req.RequestedTime, now, uc.leadMinutes); err != nil {
		uc.logger.Warn("CreateViewing: requested time rejected: %v", err)
		return nil, err
	}

	// 4. Получаем объект
	property, err := uc.propertyRepo.GetByID(ctx, req.PropertyID)
	if err != nil {
		if errors.Is(err, propertyRepo.ErrPropertyNotFound) {
			uc.logger.Warn("CreateViewing: property id=%d not found", req.PropertyID)
			return nil, ErrPropertyNotFound
		}
		uc.logger.Error("CreateViewing: failed to get property id=%d: %v", req.PropertyID, err)
		return nil, fmt.Errorf("%w: failed to get property: %v", ErrInternal, err)
	}

	// 5. Создаем показ, агент и агентство берутся из объекта
	viewing := &domain.Viewing{
		AgencyID:         property.AgencyID,
		AgentID:          property.AgentID,
		PropertyID:       property.ID,
		PropertyTitle:    property.Title,
		PropertyPostcode: property.Postcode,
		TenantName:       req.TenantName,
		TenantEmail:      req.TenantEmail,
		TenantPhone:      req.TenantPhone,
		RequestedDate:    date,
		RequestedTime:    req.RequestedTime,
		Status:           domain.StatusPending,
		Message:          req.Message,
		MoveInDate:       req.MoveInDate,
		Occupants:        req.Occupants,
		RentBudget:       req.RentBudget,
	}

	created, err := uc.viewingRepo.Create(ctx, viewing)
	if err != nil {
		uc.logger.Error("CreateViewing: failed to create viewing: %v", err)
		return nil, fmt.Errorf("%w: failed to create viewing: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateViewing: successfully created viewing id=%d", created.ID)

	return &Response{
		ID:            created.ID,
		AgencyID:      created.AgencyID,
		AgentID:       created.AgentID,
		PropertyID:    created.PropertyID,
		PropertyTitle: created.PropertyTitle,
		TenantName:    created.TenantName,
		TenantEmail:   created.TenantEmail,
		TenantPhone:   created.TenantPhone,
		RequestedDate: created.RequestedDate,
		RequestedTime: created.RequestedTime,
		Status:        string(created.Status),
		Message:       created.Message,
		MoveInDate:    created.MoveInDate,
		Occupants:     created.Occupants,
		RentBudget:    created.RentBudget,
		CreatedAt:     created.CreatedAt,
	}, nil
}
