package preset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModerate(t *testing.T) {
	baseline := map[string]float64{
		"rent":          800,
		"groceries":     300,
		"utilities":     150,
		"transport":     132,
		"health":        50,
		"food-delivery": 75,
		"fast-food":     31,
		"subscriptions": 165,
		"shopping":      250,
		"gaming":        85,
		"books":         30,
		"entertainment": 100,
		"cash":          50,
		"hobby":         40,
	}

	got := Moderate(baseline)

	assert.InDelta(t, 800, got["rent"], 1e-9, "fixed costs untouched")
	assert.InDelta(t, 150, got["utilities"], 1e-9)
	assert.InDelta(t, 50, got["health"], 1e-9)
	assert.InDelta(t, 50, got["transport"], 1e-9, "capped at transit pass")
	assert.InDelta(t, 38, got["food-delivery"], 1e-9, "halved and rounded")
	assert.InDelta(t, 16, got["fast-food"], 1e-9)
	assert.InDelta(t, 99, got["subscriptions"], 1e-9)
	assert.InDelta(t, 150, got["shopping"], 1e-9)
	assert.InDelta(t, 51, got["gaming"], 1e-9)
	assert.InDelta(t, 360, got["groceries"], 1e-9, "boosted to offset delivery")
	assert.InDelta(t, 80, got["entertainment"], 1e-9)
	assert.InDelta(t, 24, got["books"], 1e-9)
	assert.InDelta(t, 40, got["cash"], 1e-9)
	assert.InDelta(t, 32, got["hobby"], 1e-9, "unknown category falls back to 80%")
}

func TestModerate_TransportUnderCap(t *testing.T) {
	got := Moderate(map[string]float64{"transport": 30})
	assert.InDelta(t, 30, got["transport"], 1e-9, "already under the cap")
}

func TestAggressive(t *testing.T) {
	baseline := map[string]float64{
		"rent":          800,
		"groceries":     300,
		"utilities":     150,
		"transport":     30,
		"health":        50,
		"food-delivery": 75,
		"fast-food":     31,
		"subscriptions": 165,
		"shopping":      250,
		"gaming":        85,
		"books":         30,
		"entertainment": 100,
		"cash":          50,
		"hobby":         40,
	}

	got := Aggressive(baseline)

	assert.InDelta(t, 800, got["rent"], 1e-9)
	assert.InDelta(t, 50, got["health"], 1e-9)
	assert.InDelta(t, 50, got["transport"], 1e-9, "forced to the pass even when baseline is lower")
	assert.InDelta(t, 0, got["food-delivery"], 1e-9)
	assert.InDelta(t, 0, got["fast-food"], 1e-9)
	assert.InDelta(t, 50, got["subscriptions"], 1e-9)
	assert.InDelta(t, 50, got["shopping"], 1e-9)
	assert.InDelta(t, 21, got["gaming"], 1e-9)
	assert.InDelta(t, 399, got["groceries"], 1e-9)
	assert.InDelta(t, 120, got["utilities"], 1e-9)
	assert.InDelta(t, 50, got["entertainment"], 1e-9)
	assert.InDelta(t, 21, got["books"], 1e-9)
	assert.InDelta(t, 30, got["cash"], 1e-9)
	assert.InDelta(t, 20, got["hobby"], 1e-9, "unknown category falls back to 50%")
}

func TestSavings(t *testing.T) {
	baseline := map[string]float64{"a": 100, "b": 200}
	moderate := map[string]float64{"a": 80, "b": 160}
	aggressive := map[string]float64{"a": 50, "b": 100}

	got := Savings(baseline, moderate, aggressive)
	assert.InDelta(t, 300, got.BaselineTotal, 1e-9)
	assert.InDelta(t, 60, got.ModerateSavings, 1e-9)
	assert.InDelta(t, 150, got.AggressiveSavings, 1e-9)
}

func TestPresets_EmptyBaseline(t *testing.T) {
	assert.Empty(t, Moderate(nil))
	assert.Empty(t, Aggressive(nil))
}
