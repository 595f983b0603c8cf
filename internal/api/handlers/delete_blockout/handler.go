package delete_blockout

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ViewingService/internal/api/handlers"
	"github.com/m04kA/SMC-ViewingService/internal/service/blockouts"
)

const (
	msgInvalidAgencyID   = "некорректный ID агентства"
	msgInvalidBlockoutID = "некорректный ID блокировки"
	msgNotFound          = "блокировка не найдена"
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

// Handle DELETE /api/v1/agencies/{agencyId}/blockouts/{blockoutId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	agencyID, err := strconv.ParseInt(vars["agencyId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /agencies/{id}/blockouts/{id} - Invalid agency ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAgencyID)
		return
	}

	blockoutID, err := strconv.ParseInt(vars["blockoutId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /agencies/{id}/blockouts/{id} - Invalid blockout ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBlockoutID)
		return
	}

	if err := h.service.Delete(r.Context(), agencyID, blockoutID); err != nil {
		if errors.Is(err, blockouts.ErrBlockoutNotFound) {
			h.logger.Warn("DELETE /agencies/{id}/blockouts/{id} - Blockout not found: agency_id=%d, blockout_id=%d", agencyID, blockoutID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("DELETE /agencies/{id}/blockouts/{id} - Failed to delete blockout: blockout_id=%d, error=%v", blockoutID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /agencies/{id}/blockouts/{id} - Blockout deleted: agency_id=%d, blockout_id=%d", agencyID, blockoutID)
	handlers.RespondNoContent(w)
}
