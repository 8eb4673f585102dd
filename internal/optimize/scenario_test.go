package optimize

import (
	"strings"
	"testing"

	"github.com/andresuchdata/chainsight/internal/domain"
)

func rec(id, category string, riskScore float64) domain.ReorderRecommendation {
	return domain.ReorderRecommendation{
		ProductID:            id,
		ProductName:          "Product " + id,
		RiskCategory:         category,
		StockoutRiskScore:    riskScore,
		AvgDemand:            10,
		UnitCost:             20,
		SafetyStock:          22,
		OptimalOrderQuantity: 382,
		AvgInventoryLevel:    213,
		AnnualCarryingCost:   1065,
		OptimalReorderPoint:  92,
		PotentialSavings:     0,
	}
}

func TestScenariosReturnsAllThree(t *testing.T) {
	scenarios := Scenarios([]domain.ReorderRecommendation{rec("P0001", domain.RiskHigh, 0.8)}, DefaultCosts())
	if len(scenarios) != 3 {
		t.Fatalf("got %d scenarios, want 3", len(scenarios))
	}
	names := []string{ScenarioSafetyStock, ScenarioPreferred, ScenarioAutoReorder}
	for i, want := range names {
		if scenarios[i].Name != want {
			t.Errorf("scenario %d = %q, want %q", i, scenarios[i].Name, want)
		}
	}
}

func TestSafetyStockScenario(t *testing.T) {
	r := rec("P0001", domain.RiskHigh, 0.8)
	scenarios := Scenarios([]domain.ReorderRecommendation{r}, DefaultCosts())
	s := scenarios[0]

	// Raised safety stock int(22 * 1.2) = 26 at 20 * 0.25 a unit is 130
	// against the 1065 base carrying cost.
	if s.Delta != 935 {
		t.Errorf("Delta = %v, want 935", s.Delta)
	}
	if s.Recommendation != "Implement" {
		t.Errorf("Recommendation = %q, want Implement under the cost limit", s.Recommendation)
	}

	limited := Scenarios([]domain.ReorderRecommendation{r}, Costs{
		OrderingCost: 100, HoldingCostRate: 0.25, ServiceLevelZ: 1.65, ScenarioCostLimit: 500,
	})
	if limited[0].Recommendation != "Evaluate ROI" {
		t.Errorf("Recommendation = %q, want Evaluate ROI over the cost limit", limited[0].Recommendation)
	}
}

func TestPreferredSupplierScenario(t *testing.T) {
	r := rec("P0001", domain.RiskMedium, 0.5)
	s := Scenarios([]domain.ReorderRecommendation{r}, DefaultCosts())[1]

	// Safety stock plus half the order quantity matches the base inventory
	// level exactly for this product, so no stock reduction is priced.
	if s.Delta != 0 {
		t.Errorf("Delta = %v, want 0", s.Delta)
	}
	if !strings.Contains(s.Objective, "15%") {
		t.Errorf("Objective = %q, want the 15%% lead time cut", s.Objective)
	}
}

func TestAutomationScenario(t *testing.T) {
	cases := []struct {
		name     string
		recs     []domain.ReorderRecommendation
		want     float64
		wantRec  string
		wantText string
	}{
		{
			"one high risk product",
			[]domain.ReorderRecommendation{rec("P0001", domain.RiskHigh, 0.8)},
			2000, "Evaluate further", "1 high-risk",
		},
		{
			"three high risk products",
			[]domain.ReorderRecommendation{
				rec("P0001", domain.RiskHigh, 0.8),
				rec("P0002", domain.RiskHigh, 0.7),
				rec("P0003", domain.RiskHigh, 0.9),
			},
			6000, "Implement immediately", "3 high-risk",
		},
		{
			"medium risk fallback",
			[]domain.ReorderRecommendation{
				rec("P0001", domain.RiskMedium, 0.5),
				rec("P0002", domain.RiskMedium, 0.4),
			},
			4000, "Evaluate further", "top 10",
		},
		{
			"no at-risk products",
			[]domain.ReorderRecommendation{rec("P0001", domain.RiskLow, 0.1)},
			10000, "Implement immediately", "top 10",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := Scenarios(tc.recs, DefaultCosts())[2]
			if s.Delta != tc.want {
				t.Errorf("Delta = %v, want %v", s.Delta, tc.want)
			}
			if s.Recommendation != tc.wantRec {
				t.Errorf("Recommendation = %q, want %q", s.Recommendation, tc.wantRec)
			}
			if !strings.Contains(s.Objective, tc.wantText) {
				t.Errorf("Objective = %q, want it to mention %q", s.Objective, tc.wantText)
			}
		})
	}
}
