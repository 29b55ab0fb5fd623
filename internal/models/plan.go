package models

// DefaultPlan is used when the selector is missing or unknown.
const DefaultPlan = "month"

// Plan fiyatları TRY cinsinden sabit ondalık string (float kayması yok).
var planPrices = map[string]string{
	"week":    "99.00",
	"month":   "139.00",
	"quarter": "269.00",
}

// NormalizePlan maps any selector onto a known plan, falling back to the
// default for unknown or empty input.
func NormalizePlan(plan string) string {
	if _, ok := planPrices[plan]; !ok {
		return DefaultPlan
	}
	return plan
}

// PlanPrice returns the fixed price for a plan selector.
func PlanPrice(plan string) string {
	return planPrices[NormalizePlan(plan)]
}
