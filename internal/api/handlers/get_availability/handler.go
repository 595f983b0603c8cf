package get_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ViewingService/internal/api/handlers"
	"github.com/m04kA/SMC-ViewingService/internal/service/availability"
)

const (
	msgInvalidAgencyID = "некорректный ID агентства"
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

// Handle GET /api/v1/agencies/{agencyId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	agencyID, err := strconv.ParseInt(mux.Vars(r)["agencyId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /agencies/{id}/availability - Invalid agency ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAgencyID)
		return
	}

	week, err := h.service.GetWeek(r.Context(), agencyID)
	if err != nil {
		if errors.Is(err, availability.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidAgencyID)
			return
		}
		h.logger.Error("GET /agencies/{id}/availability - Failed to get availability: agency_id=%d, error=%v", agencyID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, week)
}
