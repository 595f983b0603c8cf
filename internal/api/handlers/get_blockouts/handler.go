package get_blockouts

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ViewingService/internal/api/handlers"
	"github.com/m04kA/SMC-ViewingService/internal/service/blockouts"
)

const (
	msgInvalidAgencyID = "некорректный ID агентства"
)

type Handler struct {
	service BlockoutService
	logger  Logger
}

func NewHandler(service BlockoutService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/agencies/{agencyId}/blockouts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	agencyID, err := strconv.ParseInt(mux.Vars(r)["agencyId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /agencies/{id}/blockouts - Invalid agency ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAgencyID)
		return
	}

	result, err := h.service.List(r.Context(), agencyID)
	if err != nil {
		if errors.Is(err, blockouts.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidAgencyID)
			return
		}
		h.logger.Error("GET /agencies/{id}/blockouts - Failed to list blockouts: agency_id=%d, error=%v", agencyID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
