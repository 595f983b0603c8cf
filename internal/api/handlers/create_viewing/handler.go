package create_viewing

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ViewingService/internal/api/handlers"
	createViewing "github.com/m04kA/SMC-ViewingService/internal/usecase/create_viewing"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты показа, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени показа, ожидается HH:MM"
	msgInvalidMoveInDate  = "некорректный формат даты заезда, ожидается YYYY-MM-DD"
	msgPropertyNotFound   = "объект не найден"
	msgDateInPast         = "нельзя записаться на показ в прошедшую дату"
	msgTooLateToBook      = "слишком поздно для записи на это время"
)

type Handler struct {
	useCase CreateViewingUseCase
	logger  Logger
}

func NewHandler(useCase CreateViewingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/viewings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateViewingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /viewings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /viewings - Failed to parse request: %v", err)
		var pe *parseError
		if errors.As(err, &pe) {
			handlers.RespondBadRequest(w, pe.msg)
		} else {
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createViewing.ErrPropertyNotFound):
			h.logger.Warn("POST /viewings - Property not found: property_id=%d", req.PropertyID)
			handlers.RespondNotFound(w, msgPropertyNotFound)

		case errors.Is(err, createViewing.ErrDateInPast):
			h.logger.Warn("POST /viewings - Date in past: property_id=%d, date=%s", req.PropertyID, req.RequestedDate)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createViewing.ErrTooLateToBook):
			h.logger.Warn("POST /viewings - Too late to book: property_id=%d, time=%s", req.PropertyID, req.RequestedTime)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, createViewing.ErrInvalidInput):
			h.logger.Warn("POST /viewings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /viewings - Failed to create viewing: property_id=%d, error=%v", req.PropertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /viewings - Viewing requested successfully: viewing_id=%d, property_id=%d",
		result.ID, req.PropertyID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
