package get_viewing_feasibility

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ViewingService/internal/scheduling"
	checkFeasibility "github.com/m04kA/SMC-ViewingService/internal/usecase/check_viewing_feasibility"
	"github.com/m04kA/SMC-ViewingService/pkg/logger"
	"github.com/m04kA/SMC-ViewingService/pkg/ptr"
)

type stubUseCase struct {
	resp *checkFeasibility.Response
	err  error
}

func (s *stubUseCase) Execute(context.Context, *checkFeasibility.Request) (*checkFeasibility.Response, error) {
	return s.resp, s.err
}

func serve(h *Handler, id string) *httptest.ResponseRecorder {
	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/v1/viewings/"+id+"/feasibility", nil),
		map[string]string{"viewingId": id})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Conflict(t *testing.T) {
	h := NewHandler(&stubUseCase{resp: &checkFeasibility.Response{
		ViewingID: 4,
		Status:    scheduling.SlotConflict,
		Label:     "Conflict",
		Color:     "#f44336",
		Reason:    ptr.Ptr("insufficient travel time from W2 4DX"),
	}}, logger.NewNop())

	rec := serve(h, "4")
	require.Equal(t, http.StatusOK, rec.Code)

	var body FeasibilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "conflict", body.Status)
	assert.Equal(t, "insufficient travel time from W2 4DX", *body.Reason)
	assert.Nil(t, body.TravelMinutes)
}

func TestHandle_Errors(t *testing.T) {
	rec := serve(NewHandler(&stubUseCase{}, logger.NewNop()), "x")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(NewHandler(&stubUseCase{err: checkFeasibility.ErrViewingNotFound}, logger.NewNop()), "4")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(NewHandler(&stubUseCase{err: checkFeasibility.ErrInternal}, logger.NewNop()), "4")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
