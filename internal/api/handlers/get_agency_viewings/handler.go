package get_agency_viewings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ViewingService/internal/api/handlers"
	"github.com/m04kA/SMC-ViewingService/internal/service/viewings"
)

const (
	msgInvalidAgencyID = "некорректный ID агентства"
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

// Handle GET /api/v1/agencies/{agencyId}/viewings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	agencyID, err := strconv.ParseInt(mux.Vars(r)["agencyId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /agencies/{id}/viewings - Invalid agency ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAgencyID)
		return
	}

	result, err := h.service.ListByAgency(r.Context(), agencyID)
	if err != nil {
		if errors.Is(err, viewings.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidAgencyID)
			return
		}
		h.logger.Error("GET /agencies/{id}/viewings - Failed to list viewings: agency_id=%d, error=%v", agencyID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /agencies/{id}/viewings - Viewings retrieved: agency_id=%d, count=%d", agencyID, len(result.Viewings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
