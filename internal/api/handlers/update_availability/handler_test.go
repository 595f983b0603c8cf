package update_availability

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ViewingService/internal/service/availability"
	"github.com/m04kA/SMC-ViewingService/internal/service/availability/models"
	"github.com/m04kA/SMC-ViewingService/pkg/logger"
)

type stubService struct {
	got *models.UpdateAvailabilityRequest
	err error
}

func (s *stubService) Replace(_ context.Context, agencyID int64, req *models.UpdateAvailabilityRequest) (*models.AvailabilityResponse, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return &models.AvailabilityResponse{AgencyID: agencyID}, nil
}

func put(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, "/api/v1/agencies/1/availability", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"agencyId": "1"})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	svc := &stubService{}
	rec := put(NewHandler(svc, logger.NewNop()),
		`{"availability":[{"dayOfWeek":1,"enabled":true,"startTime":"08:00","endTime":"16:00"}]}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, svc.got.Availability, 1)
	assert.Equal(t, "08:00", svc.got.Availability[0].StartTime)
}

func TestHandle_Errors(t *testing.T) {
	rec := put(NewHandler(&stubService{err: availability.ErrInvalidInput}, logger.NewNop()), `{"availability":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = put(NewHandler(&stubService{err: errors.New("boom")}, logger.NewNop()), `{"availability":[]}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = put(NewHandler(&stubService{}, logger.NewNop()), `[`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
