package availability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ViewingService/internal/domain"
	"github.com/m04kA/SMC-ViewingService/internal/service/availability/models"
	"github.com/m04kA/SMC-ViewingService/pkg/logger"
)

type memoryRules struct {
	rules      []domain.AvailabilityRule
	replaceErr error
	replaced   int
}

func (m *memoryRules) GetByAgency(context.Context, int64) ([]domain.AvailabilityRule, error) {
	return m.rules, nil
}

func (m *memoryRules) ReplaceForAgency(_ context.Context, _ int64, rules []domain.AvailabilityRule) error {
	if m.replaceErr != nil {
		return m.replaceErr
	}
	m.replaced++
	m.rules = rules
	return nil
}

type passthroughTx struct{}

func (passthroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type recordingCache struct {
	invalidated []int64
}

func (c *recordingCache) Invalidate(_ context.Context, agencyID int64) error {
	c.invalidated = append(c.invalidated, agencyID)
	return nil
}

func TestGetWeek_FillsMissingDays(t *testing.T) {
	repo := &memoryRules{rules: []domain.AvailabilityRule{
		{AgencyID: 1, DayOfWeek: 6, Enabled: false, StartTime: "10:00", EndTime: "12:00"},
	}}
	svc := NewService(repo, &recordingCache{}, passthroughTx{}, logger.NewNop())

	resp, err := svc.GetWeek(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, resp.Availability, 7)
	assert.Equal(t, models.RuleResponse{DayOfWeek: 0, Enabled: true, StartTime: "09:00", EndTime: "18:00"}, resp.Availability[0])
	assert.False(t, resp.Availability[6].Enabled)
}

func TestReplace(t *testing.T) {
	repo := &memoryRules{}
	cache := &recordingCache{}
	svc := NewService(repo, cache, passthroughTx{}, logger.NewNop())

	resp, err := svc.Replace(context.Background(), 1, &models.UpdateAvailabilityRequest{
		Availability: []models.RuleRequest{
			{DayOfWeek: 0, Enabled: true, StartTime: "08:00", EndTime: "16:00"},
			{DayOfWeek: 6, Enabled: false, StartTime: "09:00", EndTime: "09:00"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, repo.replaced)
	assert.Len(t, repo.rules, 2)
	assert.Equal(t, []int64{1}, cache.invalidated)
	require.Len(t, resp.Availability, 7)
	assert.Equal(t, "08:00", resp.Availability[0].StartTime)
}

func TestReplace_Validation(t *testing.T) {
	tests := []struct {
		name string
		rule models.RuleRequest
	}{
		{name: "day out of range", rule: models.RuleRequest{DayOfWeek: 7, Enabled: true, StartTime: "09:00", EndTime: "18:00"}},
		{name: "negative day", rule: models.RuleRequest{DayOfWeek: -1, Enabled: true, StartTime: "09:00", EndTime: "18:00"}},
		{name: "bad start format", rule: models.RuleRequest{DayOfWeek: 0, Enabled: true, StartTime: "9:00", EndTime: "18:00"}},
		{name: "bad end format", rule: models.RuleRequest{DayOfWeek: 0, Enabled: true, StartTime: "09:00", EndTime: "24:00"}},
		{name: "inverted window", rule: models.RuleRequest{DayOfWeek: 0, Enabled: true, StartTime: "18:00", EndTime: "09:00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &memoryRules{}
			svc := NewService(repo, &recordingCache{}, passthroughTx{}, logger.NewNop())

			_, err := svc.Replace(context.Background(), 1, &models.UpdateAvailabilityRequest{
				Availability: []models.RuleRequest{tt.rule},
			})
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Equal(t, 0, repo.replaced)
		})
	}
}

func TestReplace_DuplicateDay(t *testing.T) {
	svc := NewService(&memoryRules{}, &recordingCache{}, passthroughTx{}, logger.NewNop())

	_, err := svc.Replace(context.Background(), 1, &models.UpdateAvailabilityRequest{
		Availability: []models.RuleRequest{
			{DayOfWeek: 2, Enabled: true, StartTime: "09:00", EndTime: "18:00"},
			{DayOfWeek: 2, Enabled: false, StartTime: "09:00", EndTime: "18:00"},
		},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "duplicated")
}

func TestReplace_RepositoryError(t *testing.T) {
	cache := &recordingCache{}
	svc := NewService(&memoryRules{replaceErr: errors.New("tx aborted")}, cache, passthroughTx{}, logger.NewNop())

	_, err := svc.Replace(context.Background(), 1, &models.UpdateAvailabilityRequest{
		Availability: []models.RuleRequest{{DayOfWeek: 0, Enabled: true, StartTime: "09:00", EndTime: "18:00"}},
	})
	assert.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, cache.invalidated)
}
