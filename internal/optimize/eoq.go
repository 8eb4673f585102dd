// Package optimize turns the risk assessment into reorder policies, what-if
// scenarios and a prioritized action list.
package optimize

import (
	"math"

	"github.com/andresuchdata/chainsight/internal/domain"
	"github.com/andresuchdata/chainsight/internal/stats"
)

// Costs parameterizes the economic order quantity model.
type Costs struct {
	OrderingCost      float64 // fixed cost per purchase order
	HoldingCostRate   float64 // fraction of unit cost carried per year
	ServiceLevelZ     float64 // z value of the target service level
	ScenarioCostLimit float64 // spend above this needs an ROI case
}

// DefaultCosts is the calibration used across the recommendation outputs.
func DefaultCosts() Costs {
	return Costs{OrderingCost: 100, HoldingCostRate: 0.25, ServiceLevelZ: 1.65, ScenarioCostLimit: 100000}
}

// ReorderPoints derives the reorder policy per scored product. Demand is
// annualized from the average per transaction; products with a zero holding
// cost get a zero order quantity rather than a division blowup.
func ReorderPoints(scores []domain.RiskScore, products []domain.Product, costs Costs) []domain.ReorderRecommendation {
	unitCost := make(map[string]float64, len(products))
	for _, p := range products {
		unitCost[p.ProductID] = p.UnitCost
	}

	recs := make([]domain.ReorderRecommendation, 0, len(scores))
	for _, r := range scores {
		rec := domain.ReorderRecommendation{
			ProductID:         r.ProductID,
			ProductName:       r.ProductName,
			Category:          r.Category,
			AvgDemand:         r.AvgDemand,
			DemandStd:         r.DemandStd,
			CurrentStock:      r.CurrentStock,
			LeadTimeDays:      r.LeadTimeDays,
			DemandVolatility:  r.DemandVolatility,
			StockoutRiskScore: r.StockoutRiskScore,
			RiskCategory:      r.RiskCategory,
			UnitCost:          unitCost[r.ProductID],
		}

		rec.AnnualDemand = rec.AvgDemand * 365
		rec.HoldingCost = rec.UnitCost * costs.HoldingCostRate
		if rec.HoldingCost > 0 {
			rec.OptimalOrderQuantity = int(math.Round(math.Sqrt(2 * rec.AnnualDemand * costs.OrderingCost / rec.HoldingCost)))
		}
		rec.SafetyStock = int(math.Round(costs.ServiceLevelZ * rec.DemandStd * math.Sqrt(float64(rec.LeadTimeDays))))
		rec.OptimalReorderPoint = int(math.Round(rec.AvgDemand*float64(rec.LeadTimeDays))) + rec.SafetyStock
		rec.AvgInventoryLevel = rec.SafetyStock + int(math.Round(float64(rec.OptimalOrderQuantity)/2))

		rec.AnnualCarryingCost = stats.Round(float64(rec.AvgInventoryLevel)*rec.UnitCost*costs.HoldingCostRate, 2)
		if rec.OptimalOrderQuantity > 0 {
			rec.OrdersPerYear = stats.Round(rec.AnnualDemand/float64(rec.OptimalOrderQuantity), 1)
		}
		rec.AnnualOrderingCost = stats.Round(rec.OrdersPerYear*costs.OrderingCost, 2)
		rec.TotalAnnualCost = stats.Round(rec.AnnualCarryingCost+rec.AnnualOrderingCost, 2)
		rec.CurrentCarryingCost = stats.Round(rec.CurrentStock*rec.UnitCost*costs.HoldingCostRate, 2)
		rec.PotentialSavings = stats.Round(stats.ClipLower(rec.CurrentCarryingCost-rec.AnnualCarryingCost, 0), 2)

		recs = append(recs, rec)
	}
	return recs
}

// TotalSavings sums the clipped per-product savings.
func TotalSavings(recs []domain.ReorderRecommendation) float64 {
	var total float64
	for _, r := range recs {
		total += r.PotentialSavings
	}
	return stats.Round(total, 2)
}
