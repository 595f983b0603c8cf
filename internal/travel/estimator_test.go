package travel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundUp(t *testing.T) {
	assert.Equal(t, 15, RoundUp(13.2, 5))
	assert.Equal(t, 15, RoundUp(15.0, 5))
	assert.Equal(t, 20, RoundUp(15.01, 5))
	assert.Equal(t, 5, RoundUp(0.1, 5))
	assert.Equal(t, 0, RoundUp(0, 5))
}

func TestHaversine(t *testing.T) {
	assert.Zero(t, Haversine(DefaultCoordinates, DefaultCoordinates))

	// Paddington -> Islington, около 5.8 км
	d := Haversine(postcodeCoords["W2 4DX"], postcodeCoords["N1 9GU"])
	assert.InDelta(t, 5.8, d, 0.2)
}

func TestEstimator_Estimate(t *testing.T) {
	e := NewEstimator(DefaultConfig(), NewResolver())

	tests := []struct {
		name string
		from string
		to   string
		want int
	}{
		{name: "identity", from: "W2 4DX", to: "W2 4DX", want: 0},
		{name: "identity of unknown key", from: "ZZ9 9ZZ", to: "ZZ9 9ZZ", want: 0},
		{name: "identity ignores case", from: "w2 4dx", to: "W2 4DX", want: 0},
		{name: "same coordinates still pay fixed cost", from: "W2 4DX", to: "W2 2PF", want: 5},
		{name: "paddington to islington", from: "W2 4DX", to: "N1 9GU", want: 20},
		{name: "both unknown", from: "ZZ9 9ZZ", to: "QQ1 1QQ", want: 30},
		{name: "one unknown uses default point", from: "ZZ9 9ZZ", to: "W2 4DX", want: 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Estimate(tt.from, tt.to))
		})
	}
}

func TestEstimator_Symmetric(t *testing.T) {
	e := NewEstimator(DefaultConfig(), NewResolver())
	keys := []string{"W2 4DX", "N1 9GU", "SE10 9RT", "E14 5AB", "SW4 0LG", "ZZ9 9ZZ"}

	for _, a := range keys {
		for _, b := range keys {
			got := e.Estimate(a, b)
			assert.GreaterOrEqual(t, got, 0)
			assert.Equal(t, got, e.Estimate(b, a), "%s <-> %s", a, b)
			if a != b {
				assert.Zero(t, got%5, "%s -> %s not rounded", a, b)
			}
		}
	}
}

func TestEstimator_CustomConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.UnknownLocationMinutes = 45
	cfg.FixedCostMinutes = 0
	cfg.RoundingUnitMinutes = 1

	e := NewEstimator(cfg, NewResolver())
	assert.Equal(t, 45, e.Estimate("ZZ9 9ZZ", "QQ1 1QQ"))
	assert.Equal(t, 0, e.Estimate("W2 4DX", "W2 2PF"))
}
