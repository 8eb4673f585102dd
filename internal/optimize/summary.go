package optimize

import (
	"strconv"

	"github.com/andresuchdata/chainsight/internal/domain"
)

// ExecutiveSummary condenses the optimization run into metric/value pairs
// for the leadership report.
func ExecutiveSummary(recs []domain.ReorderRecommendation, rankings []domain.SupplierRanking, anomalies []domain.InventorySnapshot, items []domain.ActionItem, scenarios []domain.Scenario) [][2]string {
	var highRisk, mediumRisk int
	for _, r := range recs {
		switch r.RiskCategory {
		case domain.RiskHigh:
			highRisk++
		case domain.RiskMedium:
			mediumRisk++
		}
	}
	var preferred, review int
	for _, r := range rankings {
		switch r.Recommendation {
		case domain.TierPreferred:
			preferred++
		case domain.TierReview:
			review++
		}
	}
	priorities := CountByPriority(items)

	rows := [][2]string{
		{"Total Products Analyzed", strconv.Itoa(len(recs))},
		{"High Risk Products", strconv.Itoa(highRisk)},
		{"Medium Risk Products", strconv.Itoa(mediumRisk)},
		{"Total Potential Savings", "$" + money(TotalSavings(recs))},
		{"Inventory Anomalies Detected", strconv.Itoa(len(anomalies))},
		{"Critical Actions Required", strconv.Itoa(priorities[domain.PriorityCritical])},
		{"High Priority Actions", strconv.Itoa(priorities[domain.PriorityHigh])},
		{"Preferred Suppliers", strconv.Itoa(preferred)},
		{"Suppliers Needing Review", strconv.Itoa(review)},
	}
	for _, sc := range scenarios {
		rows = append(rows, [2]string{sc.Name, "$" + money(sc.Delta)})
	}
	rows = append(rows, [2]string{
		"Top Recommendation",
		"Implement automated reordering and negotiate with preferred suppliers",
	})
	return rows
}
