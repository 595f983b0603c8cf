package get_viewing_feasibility

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ViewingService/internal/api/handlers"
	checkFeasibility "github.com/m04kA/SMC-ViewingService/internal/usecase/check_viewing_feasibility"
)

const (
	msgInvalidViewingID = "некорректный ID показа"
	msgViewingNotFound  = "показ не найден"
)

type Handler struct {
	useCase CheckFeasibilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckFeasibilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/viewings/{viewingId}/feasibility
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	viewingID, err := strconv.ParseInt(mux.Vars(r)["viewingId"], 10, 64)
	if err != nil || viewingID <= 0 {
		h.logger.Warn("GET /viewings/{id}/feasibility - Invalid viewing ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidViewingID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &checkFeasibility.Request{ViewingID: viewingID})
	if err != nil {
		switch {
		case errors.Is(err, checkFeasibility.ErrViewingNotFound):
			h.logger.Warn("GET /viewings/{id}/feasibility - Viewing not found: viewing_id=%d", viewingID)
			handlers.RespondNotFound(w, msgViewingNotFound)

		case errors.Is(err, checkFeasibility.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /viewings/{id}/feasibility - Failed to check viewing: viewing_id=%d, error=%v", viewingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
