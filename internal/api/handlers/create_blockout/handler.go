package create_blockout

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ViewingService/internal/api/handlers"
	"github.com/m04kA/SMC-ViewingService/internal/service/blockouts"
	"github.com/m04kA/SMC-ViewingService/internal/service/blockouts/models"
)

const (
	msgInvalidAgencyID    = "некорректный ID агентства"
	msgInvalidRequestBody = "некорректное тело запроса"
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

// Handle POST /api/v1/agencies/{agencyId}/blockouts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	agencyID, err := strconv.ParseInt(mux.Vars(r)["agencyId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /agencies/{id}/blockouts - Invalid agency ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAgencyID)
		return
	}

	var req models.CreateBlockoutRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /agencies/{id}/blockouts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	blockout, err := h.service.Create(r.Context(), agencyID, &req)
	if err != nil {
		if errors.Is(err, blockouts.ErrInvalidInput) {
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		h.logger.Error("POST /agencies/{id}/blockouts - Failed to create blockout: agency_id=%d, error=%v", agencyID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /agencies/{id}/blockouts - Blockout created: agency_id=%d, blockout_id=%d", agencyID, blockout.ID)
	handlers.RespondJSON(w, http.StatusCreated, blockout)
}
