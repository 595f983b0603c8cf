package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ViewingService/pkg/types"
)

func feasibilityRequest(at types.TimeString, location string, appointments ...Appointment) FeasibilityRequest {
	return FeasibilityRequest{
		AgentID:      agentID,
		Date:         monday,
		Time:         at,
		LocationKey:  location,
		Appointments: appointments,
	}
}

func TestEvaluate_TravelScenario(t *testing.T) {
	// A -> B = 22 минуты, самое раннее начало в B: 10:00 + 20 + 10 + 22 = 10:52
	engine := NewEngine(DefaultConfig(), fakeEstimator{minutes: 22})
	prev := confirmed(1, "10:00", "A")

	tests := []struct {
		at     types.TimeString
		status SlotStatus
	}{
		{at: "10:45", status: SlotConflict},
		{at: "10:51", status: SlotConflict},
		{at: "10:52", status: SlotTight},
		{at: "10:55", status: SlotTight},
	}

	for _, tt := range tests {
		t.Run(tt.at.String(), func(t *testing.T) {
			ev, err := engine.Evaluate(feasibilityRequest(tt.at, "B", prev))
			require.NoError(t, err)
			assert.Equal(t, tt.status, ev.Status)

			if tt.status == SlotConflict {
				assert.Equal(t, "insufficient travel time from A", ev.Reason)
				assert.Nil(t, ev.TravelMinutes)
				return
			}
			require.NotNil(t, ev.TravelMinutes)
			assert.Equal(t, 22, *ev.TravelMinutes)
		})
	}
}

func TestEvaluate_TightThresholdBoundary(t *testing.T) {
	prev := confirmed(1, "10:00", "A")

	engine := NewEngine(DefaultConfig(), fakeEstimator{minutes: 20})
	ev, err := engine.Evaluate(feasibilityRequest("11:00", "B", prev))
	require.NoError(t, err)
	assert.Equal(t, SlotOK, ev.Status)
	require.NotNil(t, ev.TravelMinutes)
	assert.Equal(t, 20, *ev.TravelMinutes)

	engine = NewEngine(DefaultConfig(), fakeEstimator{minutes: 21})
	ev, err = engine.Evaluate(feasibilityRequest("11:00", "B", prev))
	require.NoError(t, err)
	assert.Equal(t, SlotTight, ev.Status)
	require.NotNil(t, ev.TravelMinutes)
	assert.Equal(t, 21, *ev.TravelMinutes)
}

func TestEvaluate_SuccessorTravelDoesNotMakeTight(t *testing.T) {
	// дорога к следующему показу 25 минут, но статус зависит только от предыдущего
	engine := NewEngine(DefaultConfig(), fakeEstimator{minutes: 25})
	next := confirmed(1, "11:00", "C")

	ev, err := engine.Evaluate(feasibilityRequest("10:00", "B", next))
	require.NoError(t, err)
	assert.Equal(t, SlotOK, ev.Status)
	assert.Nil(t, ev.TravelMinutes)
}

func TestCheckFeasibility(t *testing.T) {
	engine := NewEngine(DefaultConfig(), fakeEstimator{minutes: 5})

	tests := []struct {
		name         string
		at           types.TimeString
		appointments []Appointment
		feasible     bool
		reason       string
	}{
		{
			name:     "empty itinerary",
			at:       "10:00",
			feasible: true,
		},
		{
			name:         "direct overlap",
			at:           "10:10",
			appointments: []Appointment{confirmed(1, "10:00", "A")},
			reason:       "agent has a viewing at this time",
		},
		{
			name:         "same start",
			at:           "10:00",
			appointments: []Appointment{confirmed(1, "10:00", "B")},
			reason:       "agent has a viewing at this time",
		},
		{
			name:         "overlap reported before predecessor",
			at:           "10:40",
			appointments: []Appointment{confirmed(1, "10:00", "A"), confirmed(2, "10:45", "A")},
			reason:       "agent has a viewing at this time",
		},
		{
			name:         "predecessor too close",
			at:           "10:30",
			appointments: []Appointment{confirmed(1, "10:00", "A")},
			reason:       "insufficient travel time from A",
		},
		{
			name:         "predecessor exactly enough",
			at:           "10:35",
			appointments: []Appointment{confirmed(1, "10:00", "A")},
			feasible:     true,
		},
		{
			name:         "successor too close",
			at:           "10:30",
			appointments: []Appointment{confirmed(1, "11:00", "C")},
			reason:       "insufficient time before next viewing",
		},
		{
			name:         "successor exactly enough",
			at:           "10:25",
			appointments: []Appointment{confirmed(1, "11:00", "C")},
			feasible:     true,
		},
		{
			name: "unsorted input",
			at:   "12:00",
			appointments: []Appointment{
				confirmed(3, "14:00", "C"),
				confirmed(1, "09:00", "A"),
				confirmed(2, "11:30", "A"),
			},
			reason: "insufficient travel time from A",
		},
		{
			name:         "same location needs only the buffer",
			at:           "10:30",
			appointments: []Appointment{confirmed(1, "10:00", "B")},
			feasible:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := engine.CheckFeasibility(feasibilityRequest(tt.at, "B", tt.appointments...))
			require.NoError(t, err)
			assert.Equal(t, tt.feasible, res.Feasible)
			assert.Equal(t, tt.reason, res.Reason)
		})
	}
}

func TestCheckFeasibility_ExcludesSelf(t *testing.T) {
	engine := NewEngine(DefaultConfig(), fakeEstimator{minutes: 5})

	req := feasibilityRequest("10:00", "B", confirmed(42, "10:00", "B"))
	res, err := engine.CheckFeasibility(req)
	require.NoError(t, err)
	assert.False(t, res.Feasible)

	req.ExcludeID = 42
	res, err = engine.CheckFeasibility(req)
	require.NoError(t, err)
	assert.True(t, res.Feasible)
}

func TestCheckFeasibility_InvalidTime(t *testing.T) {
	engine := NewEngine(DefaultConfig(), fakeEstimator{minutes: 5})

	_, err := engine.CheckFeasibility(feasibilityRequest("10:5", "B"))
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "time")
}

func TestItinerary_Neighbours(t *testing.T) {
	it := itinerary{{start: 540}, {start: 600}, {start: 720}}

	prev, next := it.neighbours(600)
	require.NotNil(t, prev)
	require.NotNil(t, next)
	assert.Equal(t, 540, prev.start)
	assert.Equal(t, 720, next.start)

	prev, next = it.neighbours(500)
	assert.Nil(t, prev)
	assert.Equal(t, 540, next.start)

	prev, next = it.neighbours(800)
	assert.Equal(t, 720, prev.start)
	assert.Nil(t, next)
}

func TestWeekday(t *testing.T) {
	assert.Equal(t, 0, Weekday(monday))
	assert.Equal(t, 6, Weekday(monday.AddDate(0, 0, 6)))
}
