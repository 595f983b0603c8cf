package create_viewing

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ViewingService/internal/domain"
	propertyRepo "github.com/m04kA/SMC-ViewingService/internal/infra/storage/property"
	"github.com/m04kA/SMC-ViewingService/pkg/logger"
	"github.com/m04kA/SMC-ViewingService/pkg/ptr"
	"github.com/m04kA/SMC-ViewingService/pkg/types"
)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeProperties struct{}

func (fakeProperties) GetByID(_ context.Context, id int64) (*domain.Property, error) {
	if id != 3 {
		return nil, propertyRepo.ErrPropertyNotFound
	}
	return &domain.Property{ID: 3, AgencyID: 1, AgentID: 2, Title: "Two-bed flat", Postcode: "W2 4DX"}, nil
}

type fakeViewings struct {
	created *domain.Viewing
	err     error
}

func (f *fakeViewings) Create(_ context.Context, v *domain.Viewing) (*domain.Viewing, error) {
	if f.err != nil {
		return nil, f.err
	}
	v.ID = 42
	f.created = v
	return v, nil
}

func newUseCase(now time.Time, repo *fakeViewings) *UseCase {
	uc := NewUseCase(repo, fakeProperties{}, 30, logger.NewNop())
	uc.timeProvider = fixedTime{now: now}
	return uc
}

func validRequest() *Request {
	return &Request{
		PropertyID:    3,
		TenantName:    "Jane Doe",
		TenantEmail:   "jane@example.com",
		TenantPhone:   "+44 20 0000 0000",
		RequestedDate: time.Date(2030, 1, 7, 0, 0, 0, 0, time.UTC),
		RequestedTime: "10:00",
		Occupants:     ptr.Ptr(2),
	}
}

func TestExecute_CreatesPendingViewing(t *testing.T) {
	repo := &fakeViewings{}
	uc := newUseCase(time.Date(2030, 1, 1, 9, 0, 0, 0, time.UTC), repo)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, int64(2), resp.AgentID)
	assert.Equal(t, "W2 4DX", repo.created.PropertyPostcode)
	assert.Equal(t, 2, *repo.created.Occupants)
}

func TestExecute_SameDayLead(t *testing.T) {
	now := time.Date(2030, 1, 7, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		at      types.TimeString
		wantErr error
	}{
		{name: "exactly now plus lead", at: "10:00", wantErr: ErrTooLateToBook},
		{name: "already passed", at: "09:00", wantErr: ErrTooLateToBook},
		{name: "one minute after lead", at: "10:01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.RequestedTime = tt.at

			_, err := newUseCase(now, &fakeViewings{}).Execute(context.Background(), req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestExecute_DefaultsToToday(t *testing.T) {
	repo := &fakeViewings{}
	uc := newUseCase(time.Date(2030, 1, 7, 8, 0, 0, 0, time.UTC), repo)

	req := validRequest()
	req.RequestedDate = time.Time{}

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "2030-01-07", repo.created.RequestedDate.Format(domain.DateFormat))
}

func TestExecute_Rejections(t *testing.T) {
	now := time.Date(2030, 1, 7, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr error
	}{
		{name: "past date", mutate: func(r *Request) { r.RequestedDate = now.AddDate(0, 0, -1) }, wantErr: ErrDateInPast},
		{name: "missing name", mutate: func(r *Request) { r.TenantName = "  " }, wantErr: ErrInvalidInput},
		{name: "long name", mutate: func(r *Request) { r.TenantName = strings.Repeat("a", 201) }, wantErr: ErrInvalidInput},
		{name: "bad email", mutate: func(r *Request) { r.TenantEmail = "jane" }, wantErr: ErrInvalidInput},
		{name: "bad time", mutate: func(r *Request) { r.RequestedTime = "25:00" }, wantErr: ErrInvalidInput},
		{name: "too many occupants", mutate: func(r *Request) { r.Occupants = ptr.Ptr(21) }, wantErr: ErrInvalidInput},
		{name: "negative budget", mutate: func(r *Request) { r.RentBudget = ptr.Ptr(-1.0) }, wantErr: ErrInvalidInput},
		{name: "unknown property", mutate: func(r *Request) { r.PropertyID = 99 }, wantErr: ErrPropertyNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := newUseCase(now, &fakeViewings{}).Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_RepositoryError(t *testing.T) {
	uc := newUseCase(time.Date(2030, 1, 1, 9, 0, 0, 0, time.UTC), &fakeViewings{err: errors.New("insert failed")})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}
