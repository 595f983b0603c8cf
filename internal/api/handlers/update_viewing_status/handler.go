package update_viewing_status

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ViewingService/internal/api/handlers"
	"github.com/m04kA/SMC-ViewingService/internal/service/viewings"
	"github.com/m04kA/SMC-ViewingService/internal/service/viewings/models"
)

const (
	msgInvalidViewingID   = "некорректный ID показа"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "показ не найден"
	msgInvalidStatus      = "некорректный статус, допустимы: pending, confirmed, declined"
	msgInfeasible         = "время показа пересекается с расписанием агента"
)

type Handler struct {
	service ViewingService
	logger  Logger
}

func NewHandler(service ViewingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/viewings/{viewingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	viewingID, err := strconv.ParseInt(mux.Vars(r)["viewingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /viewings/{id} - Invalid viewing ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidViewingID)
		return
	}

	var req models.UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /viewings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	viewing, err := h.service.UpdateStatus(r.Context(), viewingID, &req)
	if err != nil {
		switch {
		case errors.Is(err, viewings.ErrViewingNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, viewings.ErrInvalidStatus):
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, viewings.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, viewings.ErrInfeasible):
			h.logger.Warn("PATCH /viewings/{id} - Infeasible time: viewing_id=%d, error=%v", viewingID, err)
			handlers.RespondErrorWithDetails(w, http.StatusConflict, msgInfeasible, infeasibleReason(err))

		default:
			h.logger.Error("PATCH /viewings/{id} - Failed to update status: viewing_id=%d, error=%v", viewingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /viewings/{id} - Status updated: viewing_id=%d, status=%s", viewingID, viewing.Status)
	handlers.RespondJSON(w, http.StatusOK, viewing)
}

// infeasibleReason отрезает текст sentinel-ошибки, оставляя причину от движка
func infeasibleReason(err error) string {
	prefix := viewings.ErrInfeasible.Error() + ": "
	return strings.TrimPrefix(err.Error(), prefix)
}
