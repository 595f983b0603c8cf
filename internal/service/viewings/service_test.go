package viewings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ViewingService/internal/domain"
	viewingRepo "github.com/m04kA/SMC-ViewingService/internal/infra/storage/viewing"
	"github.com/m04kA/SMC-ViewingService/internal/scheduling"
	"github.com/m04kA/SMC-ViewingService/internal/service/viewings/models"
	"github.com/m04kA/SMC-ViewingService/pkg/logger"
	"github.com/m04kA/SMC-ViewingService/pkg/ptr"
	"github.com/m04kA/SMC-ViewingService/pkg/types"
)

var monday = time.Date(2030, 1, 7, 0, 0, 0, 0, time.UTC)

type fixedEstimator struct{}

func (fixedEstimator) Estimate(from, to string) int {
	if from == to {
		return 0
	}
	return 20
}

type passthroughTx struct {
	calls int
}

func (tx *passthroughTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	tx.calls++
	return fn(ctx)
}

type recordingCache struct {
	invalidated []int64
}

func (c *recordingCache) Invalidate(_ context.Context, agencyID int64) error {
	c.invalidated = append(c.invalidated, agencyID)
	return nil
}

type memoryViewings struct {
	byID    map[int64]*domain.Viewing
	listErr error
	updated []*domain.Viewing
}

func (m *memoryViewings) GetByID(_ context.Context, id int64) (*domain.Viewing, error) {
	v, ok := m.byID[id]
	if !ok {
		return nil, viewingRepo.ErrViewingNotFound
	}
	copied := *v
	return &copied, nil
}

func (m *memoryViewings) GetByAgency(context.Context, int64) ([]*domain.Viewing, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]*domain.Viewing, 0, len(m.byID))
	for _, v := range m.byID {
		out = append(out, v)
	}
	return out, nil
}

func (m *memoryViewings) GetConfirmedByAgentAndDate(_ context.Context, agentID int64, _ time.Time) ([]*domain.Viewing, error) {
	out := make([]*domain.Viewing, 0)
	for _, v := range m.byID {
		if v.AgentID == agentID && v.IsConfirmed() {
			out = append(out, v)
		}
	}
	return out, nil
}

func (m *memoryViewings) UpdateStatus(_ context.Context, v *domain.Viewing) error {
	m.updated = append(m.updated, v)
	m.byID[v.ID] = v
	return nil
}

func newService(repo *memoryViewings) (*Service, *recordingCache, *passthroughTx) {
	cache := &recordingCache{}
	tx := &passthroughTx{}
	engine := scheduling.NewEngine(scheduling.DefaultConfig(), fixedEstimator{})
	return NewService(repo, engine, cache, tx, logger.NewNop()), cache, tx
}

func viewing(id int64, at types.TimeString, postcode string, status domain.ViewingStatus) *domain.Viewing {
	return &domain.Viewing{
		ID:               id,
		AgencyID:         1,
		AgentID:          1,
		PropertyPostcode: postcode,
		RequestedDate:    monday,
		RequestedTime:    at,
		Status:           status,
	}
}

func TestUpdateStatus_ConfirmUsesRequestedTime(t *testing.T) {
	repo := &memoryViewings{byID: map[int64]*domain.Viewing{
		2: viewing(2, "14:00", "N1 9GU", domain.StatusPending),
	}}
	svc, cache, tx := newService(repo)

	resp, err := svc.UpdateStatus(context.Background(), 2, &models.UpdateStatusRequest{Status: "confirmed"})
	require.NoError(t, err)

	assert.Equal(t, "confirmed", resp.Status)
	require.NotNil(t, resp.ConfirmedTime)
	assert.Equal(t, "14:00", *resp.ConfirmedTime)
	assert.Nil(t, resp.SuggestedTime)
	assert.Equal(t, 1, tx.calls)
	assert.Equal(t, []int64{1}, cache.invalidated)
}

func TestUpdateStatus_ConfirmUsesSuggestedTime(t *testing.T) {
	repo := &memoryViewings{byID: map[int64]*domain.Viewing{
		2: viewing(2, "14:00", "N1 9GU", domain.StatusPending),
	}}
	svc, _, _ := newService(repo)

	resp, err := svc.UpdateStatus(context.Background(), 2, &models.UpdateStatusRequest{
		Status:        "confirmed",
		SuggestedTime: ptr.Ptr("15:30"),
	})
	require.NoError(t, err)

	assert.Equal(t, "15:30", *resp.ConfirmedTime)
	assert.Equal(t, "15:30", *resp.SuggestedTime)
}

func TestUpdateStatus_ConfirmRejectsInfeasibleTime(t *testing.T) {
	repo := &memoryViewings{byID: map[int64]*domain.Viewing{
		1: viewing(1, "10:00", "W2 4DX", domain.StatusConfirmed),
		2: viewing(2, "10:45", "N1 9GU", domain.StatusPending),
	}}
	svc, cache, _ := newService(repo)

	_, err := svc.UpdateStatus(context.Background(), 2, &models.UpdateStatusRequest{Status: "confirmed"})
	assert.ErrorIs(t, err, ErrInfeasible)
	assert.Contains(t, err.Error(), "insufficient travel time")
	assert.Empty(t, repo.updated)
	assert.Empty(t, cache.invalidated)
}

func TestUpdateStatus_ReconfirmIgnoresItself(t *testing.T) {
	repo := &memoryViewings{byID: map[int64]*domain.Viewing{
		1: viewing(1, "10:00", "W2 4DX", domain.StatusConfirmed),
	}}
	svc, _, _ := newService(repo)

	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "confirmed"})
	assert.NoError(t, err)
}

func TestUpdateStatus_DeclineClearsConfirmedTime(t *testing.T) {
	confirmed := viewing(1, "10:00", "W2 4DX", domain.StatusConfirmed)
	confirmed.ConfirmedTime = ptr.Ptr(types.TimeString("10:30"))
	repo := &memoryViewings{byID: map[int64]*domain.Viewing{1: confirmed}}
	svc, cache, _ := newService(repo)

	resp, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "declined"})
	require.NoError(t, err)

	assert.Equal(t, "declined", resp.Status)
	assert.Nil(t, resp.ConfirmedTime)
	assert.Equal(t, []int64{1}, cache.invalidated)
}

func TestUpdateStatus_PendingToDeclinedKeepsCache(t *testing.T) {
	repo := &memoryViewings{byID: map[int64]*domain.Viewing{
		2: viewing(2, "14:00", "N1 9GU", domain.StatusPending),
	}}
	svc, cache, _ := newService(repo)

	_, err := svc.UpdateStatus(context.Background(), 2, &models.UpdateStatusRequest{Status: "declined"})
	require.NoError(t, err)
	assert.Empty(t, cache.invalidated)
}

func TestUpdateStatus_Errors(t *testing.T) {
	repo := &memoryViewings{byID: map[int64]*domain.Viewing{
		2: viewing(2, "14:00", "N1 9GU", domain.StatusPending),
	}}
	svc, _, _ := newService(repo)

	_, err := svc.UpdateStatus(context.Background(), 2, &models.UpdateStatusRequest{Status: "cancelled"})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.UpdateStatus(context.Background(), 2, &models.UpdateStatusRequest{Status: "confirmed", SuggestedTime: ptr.Ptr("3pm")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.UpdateStatus(context.Background(), 404, &models.UpdateStatusRequest{Status: "declined"})
	assert.ErrorIs(t, err, ErrViewingNotFound)
}

func TestListByAgency(t *testing.T) {
	repo := &memoryViewings{byID: map[int64]*domain.Viewing{
		2: viewing(2, "14:00", "N1 9GU", domain.StatusPending),
	}}
	svc, _, _ := newService(repo)

	resp, err := svc.ListByAgency(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, resp.Viewings, 1)
	assert.Equal(t, "N1 9GU", resp.Viewings[0].PropertyPostcode)
	assert.Equal(t, "2030-01-07", resp.Viewings[0].RequestedDate)

	repo.listErr = errors.New("db down")
	_, err = svc.ListByAgency(context.Background(), 1)
	assert.ErrorIs(t, err, ErrInternal)

	_, err = svc.ListByAgency(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
