package dataset

import (
	"github.com/andresuchdata/chainsight/internal/domain"
	"github.com/andresuchdata/chainsight/internal/table"
)

// Recommendations stage artifact names.
const (
	FileReorderPoints    = "optimal_reorder_points.csv"
	FileSupplierRankings = "supplier_rankings.csv"
	FileActionItems      = "priority_action_items.csv"
	FileScenarios        = "scenario_outcomes.csv"
	FileExecSummary      = "executive_summary.csv"
)

var reorderColumns = []string{
	"product_id", "product_name", "category",
	"avg_demand", "demand_std", "current_stock", "lead_time_days",
	"demand_volatility", "stockout_risk_score", "risk_category", "unit_cost",
	"annual_demand", "holding_cost", "optimal_order_quantity", "safety_stock",
	"optimal_reorder_point", "avg_inventory_level",
	"annual_carrying_cost", "orders_per_year", "annual_ordering_cost",
	"total_annual_cost", "current_carrying_cost", "potential_savings",
}

// SaveReorderRecommendations persists the EOQ optimization output.
func (s *Store) SaveReorderRecommendations(recs []domain.ReorderRecommendation) error {
	t := table.New("optimal_reorder_points", reorderColumns)
	for _, r := range recs {
		t.Append([]string{
			r.ProductID, r.ProductName, r.Category,
			formatFloat(r.AvgDemand), formatFloat(r.DemandStd), formatFloat(r.CurrentStock), formatInt(r.LeadTimeDays),
			formatFloat(r.DemandVolatility), formatFloat(r.StockoutRiskScore), r.RiskCategory, formatFloat(r.UnitCost),
			formatFloat(r.AnnualDemand), formatFloat(r.HoldingCost),
			formatInt(r.OptimalOrderQuantity), formatInt(r.SafetyStock),
			formatInt(r.OptimalReorderPoint), formatInt(r.AvgInventoryLevel),
			formatFloat(r.AnnualCarryingCost), formatFloat(r.OrdersPerYear), formatFloat(r.AnnualOrderingCost),
			formatFloat(r.TotalAnnualCost), formatFloat(r.CurrentCarryingCost), formatFloat(r.PotentialSavings),
		})
	}
	return t.WriteCSV(s.RecommendationsPath(FileReorderPoints))
}

// LoadReorderRecommendations reads the EOQ optimization output back.
func (s *Store) LoadReorderRecommendations() ([]domain.ReorderRecommendation, error) {
	t, err := table.ReadCSV(s.RecommendationsPath(FileReorderPoints))
	if err != nil {
		return nil, err
	}
	if err := t.Require(reorderColumns...); err != nil {
		return nil, err
	}

	recs := make([]domain.ReorderRecommendation, 0, t.Len())
	for i := range t.Rows {
		recs = append(recs, domain.ReorderRecommendation{
			ProductID:            t.Get(i, "product_id"),
			ProductName:          t.Get(i, "product_name"),
			Category:             t.Get(i, "category"),
			AvgDemand:            t.Float(i, "avg_demand"),
			DemandStd:            t.Float(i, "demand_std"),
			CurrentStock:         t.Float(i, "current_stock"),
			LeadTimeDays:         t.Int(i, "lead_time_days"),
			DemandVolatility:     t.Float(i, "demand_volatility"),
			StockoutRiskScore:    t.Float(i, "stockout_risk_score"),
			RiskCategory:         t.Get(i, "risk_category"),
			UnitCost:             t.Float(i, "unit_cost"),
			AnnualDemand:         t.Float(i, "annual_demand"),
			HoldingCost:          t.Float(i, "holding_cost"),
			OptimalOrderQuantity: t.Int(i, "optimal_order_quantity"),
			SafetyStock:          t.Int(i, "safety_stock"),
			OptimalReorderPoint:  t.Int(i, "optimal_reorder_point"),
			AvgInventoryLevel:    t.Int(i, "avg_inventory_level"),
			AnnualCarryingCost:   t.Float(i, "annual_carrying_cost"),
			OrdersPerYear:        t.Float(i, "orders_per_year"),
			AnnualOrderingCost:   t.Float(i, "annual_ordering_cost"),
			TotalAnnualCost:      t.Float(i, "total_annual_cost"),
			CurrentCarryingCost:  t.Float(i, "current_carrying_cost"),
			PotentialSavings:     t.Float(i, "potential_savings"),
		})
	}
	return recs, nil
}

var rankingColumns = []string{
	"supplier_id", "supplier_name", "country", "reliability_score",
	"total_orders", "total_qty", "total_value", "delayed_orders",
	"avg_delay", "avg_delivery_time", "on_time_rate",
	"cost_efficiency", "performance_score", "rank", "recommendation",
}

// SaveSupplierRankings persists the ranked supplier table.
func (s *Store) SaveSupplierRankings(rankings []domain.SupplierRanking) error {
	t := table.New("supplier_rankings", rankingColumns)
	for _, r := range rankings {
		t.Append([]string{
			r.SupplierID, r.SupplierName, r.Country, formatFloat(r.ReliabilityScore),
			formatInt(r.TotalOrders), formatInt(r.TotalQty), formatFloat(r.TotalValue), formatInt(r.DelayedOrders),
			formatFloat(r.AvgDelay), formatFloat(r.AvgDeliveryTime), formatFloat(r.OnTimeRate),
			formatFloat(r.CostEfficiency), formatFloat(r.PerformanceScore),
			formatInt(r.Rank), r.Recommendation,
		})
	}
	return t.WriteCSV(s.RecommendationsPath(FileSupplierRankings))
}

// LoadSupplierRankings reads the ranked supplier table back.
func (s *Store) LoadSupplierRankings() ([]domain.SupplierRanking, error) {
	t, err := table.ReadCSV(s.RecommendationsPath(FileSupplierRankings))
	if err != nil {
		return nil, err
	}
	if err := t.Require(rankingColumns...); err != nil {
		return nil, err
	}

	rankings := make([]domain.SupplierRanking, 0, t.Len())
	for i := range t.Rows {
		rankings = append(rankings, domain.SupplierRanking{
			SupplierMetrics: domain.SupplierMetrics{
				SupplierID:       t.Get(i, "supplier_id"),
				SupplierName:     t.Get(i, "supplier_name"),
				Country:          t.Get(i, "country"),
				ReliabilityScore: t.Float(i, "reliability_score"),
				TotalOrders:      t.Int(i, "total_orders"),
				TotalQty:         t.Int(i, "total_qty"),
				TotalValue:       t.Float(i, "total_value"),
				DelayedOrders:    t.Int(i, "delayed_orders"),
				AvgDelay:         t.Float(i, "avg_delay"),
				AvgDeliveryTime:  t.Float(i, "avg_delivery_time"),
				OnTimeRate:       t.Float(i, "on_time_rate"),
			},
			CostEfficiency:   t.Float(i, "cost_efficiency"),
			PerformanceScore: t.Float(i, "performance_score"),
			Rank:             t.Int(i, "rank"),
			Recommendation:   t.Get(i, "recommendation"),
		})
	}
	return rankings, nil
}

// SaveActionItems persists the prioritized action list.
func (s *Store) SaveActionItems(items []domain.ActionItem) error {
	t := table.New("priority_action_items", []string{
		"priority", "category", "entity_id", "entity_name", "action",
		"current_stock", "risk_score", "estimated_impact",
	})
	for _, a := range items {
		t.Append([]string{
			a.Priority, a.Category, a.EntityID, a.EntityName, a.Action,
			formatInt(a.CurrentStock), formatFloat(a.RiskScore), a.EstimatedImpact,
		})
	}
	return t.WriteCSV(s.RecommendationsPath(FileActionItems))
}

// LoadActionItems reads the prioritized action list back.
func (s *Store) LoadActionItems() ([]domain.ActionItem, error) {
	t, err := table.ReadCSV(s.RecommendationsPath(FileActionItems))
	if err != nil {
		return nil, err
	}
	items := make([]domain.ActionItem, 0, t.Len())
	for i := range t.Rows {
		items = append(items, domain.ActionItem{
			Priority:        t.Get(i, "priority"),
			Category:        t.Get(i, "category"),
			EntityID:        t.Get(i, "entity_id"),
			EntityName:      t.Get(i, "entity_name"),
			Action:          t.Get(i, "action"),
			CurrentStock:    t.Int(i, "current_stock"),
			RiskScore:       t.Float(i, "risk_score"),
			EstimatedImpact: t.Get(i, "estimated_impact"),
		})
	}
	return items, nil
}

// SaveScenarios persists the what-if policy simulations.
func (s *Store) SaveScenarios(scenarios []domain.Scenario) error {
	t := table.New("scenario_outcomes", []string{"name", "objective", "delta", "recommendation"})
	for _, sc := range scenarios {
		t.Append([]string{sc.Name, sc.Objective, formatFloat(sc.Delta), sc.Recommendation})
	}
	return t.WriteCSV(s.RecommendationsPath(FileScenarios))
}

// LoadScenarios reads the what-if policy simulations back.
func (s *Store) LoadScenarios() ([]domain.Scenario, error) {
	t, err := table.ReadCSV(s.RecommendationsPath(FileScenarios))
	if err != nil {
		return nil, err
	}
	scenarios := make([]domain.Scenario, 0, t.Len())
	for i := range t.Rows {
		scenarios = append(scenarios, domain.Scenario{
			Name:           t.Get(i, "name"),
			Objective:      t.Get(i, "objective"),
			Delta:          t.Float(i, "delta"),
			Recommendation: t.Get(i, "recommendation"),
		})
	}
	return scenarios, nil
}

// SaveExecutiveSummary persists the metric/value summary table.
func (s *Store) SaveExecutiveSummary(rows [][2]string) error {
	t := table.New("executive_summary", []string{"metric", "value"})
	for _, r := range rows {
		t.Append([]string{r[0], r[1]})
	}
	return t.WriteCSV(s.RecommendationsPath(FileExecSummary))
}
