package optimize

import (
	"testing"

	"github.com/andresuchdata/chainsight/internal/domain"
)

func score(id string, avg, std float64, lead int, stock float64) domain.RiskScore {
	return domain.RiskScore{
		ProductID:    id,
		AvgDemand:    avg,
		DemandStd:    std,
		LeadTimeDays: lead,
		CurrentStock: stock,
	}
}

func TestReorderPoints(t *testing.T) {
	scores := []domain.RiskScore{score("P0001", 10, 5, 7, 50)}
	products := []domain.Product{{ProductID: "P0001", UnitCost: 20}}

	recs := ReorderPoints(scores, products, DefaultCosts())
	if len(recs) != 1 {
		t.Fatalf("got %d recommendations, want 1", len(recs))
	}
	r := recs[0]

	if r.AnnualDemand != 3650 {
		t.Errorf("AnnualDemand = %v, want 3650", r.AnnualDemand)
	}
	if r.HoldingCost != 5 {
		t.Errorf("HoldingCost = %v, want 5", r.HoldingCost)
	}
	// sqrt(2 * 3650 * 100 / 5) = sqrt(146000) = 382.09...
	if r.OptimalOrderQuantity != 382 {
		t.Errorf("OptimalOrderQuantity = %d, want 382", r.OptimalOrderQuantity)
	}
	// 1.65 * 5 * sqrt(7) = 21.83
	if r.SafetyStock != 22 {
		t.Errorf("SafetyStock = %d, want 22", r.SafetyStock)
	}
	if r.OptimalReorderPoint != 92 {
		t.Errorf("OptimalReorderPoint = %d, want 92", r.OptimalReorderPoint)
	}
	if r.AvgInventoryLevel != 213 {
		t.Errorf("AvgInventoryLevel = %d, want 213", r.AvgInventoryLevel)
	}
	if r.AnnualCarryingCost != 1065 {
		t.Errorf("AnnualCarryingCost = %v, want 1065", r.AnnualCarryingCost)
	}
	if r.OrdersPerYear != 9.6 {
		t.Errorf("OrdersPerYear = %v, want 9.6", r.OrdersPerYear)
	}
	if r.AnnualOrderingCost != 960 {
		t.Errorf("AnnualOrderingCost = %v, want 960", r.AnnualOrderingCost)
	}
	if r.TotalAnnualCost != 2025 {
		t.Errorf("TotalAnnualCost = %v, want 2025", r.TotalAnnualCost)
	}
	if r.CurrentCarryingCost != 250 {
		t.Errorf("CurrentCarryingCost = %v, want 250", r.CurrentCarryingCost)
	}
	// Recommended carrying cost exceeds the current one, savings clip at 0.
	if r.PotentialSavings != 0 {
		t.Errorf("PotentialSavings = %v, want 0", r.PotentialSavings)
	}
}

func TestReorderPointsSafetyStockHalfRoundsUp(t *testing.T) {
	// 1.65 * 10 * sqrt(9) = 49.5
	scores := []domain.RiskScore{score("P0001", 1, 10, 9, 0)}
	products := []domain.Product{{ProductID: "P0001", UnitCost: 1}}

	r := ReorderPoints(scores, products, DefaultCosts())[0]
	if r.SafetyStock != 50 {
		t.Errorf("SafetyStock = %d, want 50", r.SafetyStock)
	}
}

func TestReorderPointsZeroHoldingCost(t *testing.T) {
	scores := []domain.RiskScore{score("P0001", 10, 5, 7, 50)}
	products := []domain.Product{{ProductID: "P0001", UnitCost: 0}}

	r := ReorderPoints(scores, products, DefaultCosts())[0]
	if r.OptimalOrderQuantity != 0 {
		t.Errorf("OptimalOrderQuantity = %d, want 0 when holding cost is 0", r.OptimalOrderQuantity)
	}
	if r.OrdersPerYear != 0 || r.AnnualOrderingCost != 0 {
		t.Errorf("ordering figures = %v/%v, want zeros", r.OrdersPerYear, r.AnnualOrderingCost)
	}
}

func TestReorderPointsPositiveSavings(t *testing.T) {
	// Mountains of slow-moving stock should show up as savings.
	scores := []domain.RiskScore{score("P0001", 0.5, 0.1, 3, 10000)}
	products := []domain.Product{{ProductID: "P0001", UnitCost: 40}}

	r := ReorderPoints(scores, products, DefaultCosts())[0]
	if r.PotentialSavings <= 0 {
		t.Errorf("PotentialSavings = %v, want positive", r.PotentialSavings)
	}
	if got := TotalSavings([]domain.ReorderRecommendation{r, r}); got != 2*r.PotentialSavings {
		t.Errorf("TotalSavings = %v, want %v", got, 2*r.PotentialSavings)
	}
}

func TestEOQGrowsWithDemand(t *testing.T) {
	products := []domain.Product{{ProductID: "P0001", UnitCost: 10}}
	prev := 0
	for _, avg := range []float64{1, 5, 25, 125} {
		r := ReorderPoints([]domain.RiskScore{score("P0001", avg, 1, 5, 0)}, products, DefaultCosts())[0]
		if r.OptimalOrderQuantity <= prev {
			t.Fatalf("EOQ did not grow with demand: %d after %d", r.OptimalOrderQuantity, prev)
		}
		prev = r.OptimalOrderQuantity
	}
}
