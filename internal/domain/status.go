package domain

// Risk categories produced by the stockout-risk model. Bin edges are
// half-open on the lower bound and closed on the upper bound.
const (
	RiskLow    = "Low Risk"
	RiskMedium = "Medium Risk"
	RiskHigh   = "High Risk"
)

// RiskCategoryFor buckets a composite risk score. A score of exactly 0.35
// is Low and exactly 0.65 is Medium.
func RiskCategoryFor(score float64) string {
	switch {
	case score > 0.65:
		return RiskHigh
	case score > 0.35:
		return RiskMedium
	default:
		return RiskLow
	}
}

// Supplier tier recommendations, assigned by rank rather than raw score.
const (
	TierPreferred = "Preferred"
	TierApproved  = "Approved"
	TierReview    = "Review Required"
)

// TierForRank maps a 1-based supplier rank to a tier.
func TierForRank(rank, preferredMax, approvedMax int) string {
	switch {
	case rank <= preferredMax:
		return TierPreferred
	case rank <= approvedMax:
		return TierApproved
	default:
		return TierReview
	}
}

// Stock status for the risk alerts dashboard, based on days of cover.
const (
	StockCritical = "Critical"
	StockWarning  = "Warning"
	StockNormal   = "Normal"
)

// StockStatusFor maps days of remaining stock to an alert status.
func StockStatusFor(daysOfStock float64) string {
	switch {
	case daysOfStock < 7:
		return StockCritical
	case daysOfStock < 14:
		return StockWarning
	default:
		return StockNormal
	}
}

// Action item priorities.
const (
	PriorityCritical = "CRITICAL"
	PriorityHigh     = "HIGH"
	PriorityMedium   = "MEDIUM"
)
