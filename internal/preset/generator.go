// Package preset derives moderate and aggressive target budgets from a
// per-category baseline.
package preset

import "math"

// Moderate applies the moderate-savings strategy to a baseline of monthly
// averages. Each category has its own rule; categories without one default to
// 80% of baseline. Outputs are rounded to the nearest currency unit, except
// the transport cap which passes the input through min.
func Moderate(baseline map[string]float64) map[string]float64 {
	result := make(map[string]float64, len(baseline))
	for category, value := range baseline {
		result[category] = moderateRule(category, value)
	}
	return result
}

func moderateRule(category string, b float64) float64 {
	switch category {
	case "transport":
		// Public transport pass instead of rides.
		return math.Min(50, b)
	case "food-delivery", "fast-food":
		return math.Round(b * 0.5)
	case "subscriptions", "shopping", "gaming":
		return math.Round(b * 0.6)
	case "groceries":
		// Compensates for less delivery.
		return math.Round(b * 1.2)
	case "entertainment", "books", "cash":
		return math.Round(b * 0.8)
	case "rent", "utilities", "health":
		return b
	default:
		return math.Round(b * 0.8)
	}
}

// Aggressive applies the aggressive-savings strategy. Unrecognized categories
// default to 50% of baseline.
func Aggressive(baseline map[string]float64) map[string]float64 {
	result := make(map[string]float64, len(baseline))
	for category, value := range baseline {
		result[category] = aggressiveRule(category, value)
	}
	return result
}

func aggressiveRule(category string, b float64) float64 {
	switch category {
	case "transport":
		// Forced to a public transport pass, not capped.
		return 50
	case "food-delivery", "fast-food":
		return 0
	case "subscriptions":
		return math.Round(b * 0.3)
	case "shopping":
		return math.Round(b * 0.2)
	case "gaming":
		return math.Round(b * 0.25)
	case "groceries":
		return math.Round(b * 1.33)
	case "entertainment":
		return math.Round(b * 0.5)
	case "books":
		return math.Round(b * 0.7)
	case "cash":
		return math.Round(b * 0.6)
	case "utilities":
		return math.Round(b * 0.8)
	case "rent", "health":
		return b
	default:
		return math.Round(b * 0.5)
	}
}

// SavingsSummary compares preset totals against the baseline total.
type SavingsSummary struct {
	BaselineTotal     float64
	ModerateSavings   float64
	AggressiveSavings float64
}

// Savings computes the potential monthly savings of each preset.
func Savings(baseline, moderate, aggressive map[string]float64) SavingsSummary {
	return SavingsSummary{
		BaselineTotal:     mapTotal(baseline),
		ModerateSavings:   mapTotal(baseline) - mapTotal(moderate),
		AggressiveSavings: mapTotal(baseline) - mapTotal(aggressive),
	}
}

func mapTotal(m map[string]float64) float64 {
	total := 0.0
	for _, v := range m {
		total += v
	}
	return total
}
