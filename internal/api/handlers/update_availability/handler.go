package update_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ViewingService/internal/api/handlers"
	"github.com/m04kA/SMC-ViewingService/internal/service/availability"
	"github.com/m04kA/SMC-ViewingService/internal/service/availability/models"
)

const (
	msgInvalidAgencyID    = "некорректный ID агентства"
	msgInvalidRequestBody = "некорректное тело запроса"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/agencies/{agencyId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	agencyID, err := strconv.ParseInt(mux.Vars(r)["agencyId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /agencies/{id}/availability - Invalid agency ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAgencyID)
		return
	}

	var req models.UpdateAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /agencies/{id}/availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	week, err := h.service.Replace(r.Context(), agencyID, &req)
	if err != nil {
		if errors.Is(err, availability.ErrInvalidInput) {
			h.logger.Warn("PUT /agencies/{id}/availability - Validation failed: agency_id=%d, error=%v", agencyID, err)
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		h.logger.Error("PUT /agencies/{id}/availability - Failed to update availability: agency_id=%d, error=%v", agencyID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /agencies/{id}/availability - Availability updated: agency_id=%d", agencyID)
	handlers.RespondJSON(w, http.StatusOK, week)
}
