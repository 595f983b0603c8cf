package update_viewing_status

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ViewingService/internal/api/handlers"
	"github.com/m04kA/SMC-ViewingService/internal/service/viewings"
	"github.com/m04kA/SMC-ViewingService/internal/service/viewings/models"
	"github.com/m04kA/SMC-ViewingService/pkg/logger"
)

type stubService struct {
	got *models.UpdateStatusRequest
	err error
}

func (s *stubService) UpdateStatus(_ context.Context, viewingID int64, req *models.UpdateStatusRequest) (*models.ViewingResponse, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return &models.ViewingResponse{ID: viewingID, Status: req.Status}, nil
}

func patch(h *Handler, id, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/viewings/"+id, strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"viewingId": id})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Confirm(t *testing.T) {
	svc := &stubService{}
	rec := patch(NewHandler(svc, logger.NewNop()), "2", `{"status":"confirmed","suggestedTime":"15:30"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "15:30", *svc.got.SuggestedTime)

	var body models.ViewingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "confirmed", body.Status)
}

func TestHandle_InfeasibleReturnsConflictWithReason(t *testing.T) {
	svc := &stubService{err: fmt.Errorf("%w: %s", viewings.ErrInfeasible, "insufficient time before next viewing")}
	rec := patch(NewHandler(svc, logger.NewNop()), "2", `{"status":"confirmed"}`)

	require.Equal(t, http.StatusConflict, rec.Code)
	var body handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, msgInfeasible, body.Message)
	assert.Equal(t, "insufficient time before next viewing", body.Details)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		body       string
		err        error
		wantStatus int
	}{
		{name: "bad id", id: "x", body: `{"status":"declined"}`, wantStatus: http.StatusBadRequest},
		{name: "bad body", id: "2", body: `status=declined`, wantStatus: http.StatusBadRequest},
		{name: "not found", id: "2", body: `{"status":"declined"}`, err: viewings.ErrViewingNotFound, wantStatus: http.StatusNotFound},
		{name: "bad status", id: "2", body: `{"status":"cancelled"}`, err: viewings.ErrInvalidStatus, wantStatus: http.StatusBadRequest},
		{name: "internal", id: "2", body: `{"status":"declined"}`, err: viewings.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := patch(NewHandler(&stubService{err: tt.err}, logger.NewNop()), tt.id, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
