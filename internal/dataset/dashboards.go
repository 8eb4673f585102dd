package dataset

import (
	"github.com/andresuchdata/chainsight/internal/domain"
	"github.com/andresuchdata/chainsight/internal/table"
)

// Dashboard stage artifact names.
const (
	FileKPISummary           = "kpi_summary.csv"
	FileProductPerformance   = "product_performance.csv"
	FileSupplierPerformance  = "supplier_performance.csv"
	FileWarehousePerformance = "warehouse_performance.csv"
	FileMonthlySummary       = "monthly_trends.csv"
	FileRiskAlerts           = "risk_alerts.csv"
	FileDashActionItems      = "action_items.csv"
	FileDashForecasts        = "demand_forecasts.csv"
	FileForecastSummary      = "forecast_summary.csv"
	FileProjectSummary       = "project_summary.csv"
	FileFactSales            = "fact_sales.csv"
	FileFactInventory        = "fact_inventory.csv"
	FileFactOrders           = "fact_supply_orders.csv"
)

// SaveFactTables copies the enriched fact tables into the dashboards
// directory for drill-down by BI tools.
func (s *Store) SaveFactTables(sales []domain.SalesRecord, inventory []domain.InventorySnapshot, orders []domain.SupplyOrder) error {
	if err := buildSalesTable(sales).WriteCSV(s.DashboardsPath(FileFactSales)); err != nil {
		return err
	}
	if err := s.SaveEnrichedInventory(inventory, s.DashboardsPath(FileFactInventory)); err != nil {
		return err
	}
	return buildOrdersTable(orders).WriteCSV(s.DashboardsPath(FileFactOrders))
}

// SaveKPISummary persists the executive KPI table.
func (s *Store) SaveKPISummary(rows []domain.KPIRow) error {
	t := table.New("kpi_summary", []string{"kpi_category", "kpi_name", "current_value", "target", "status"})
	for _, r := range rows {
		t.Append([]string{r.Category, r.Name, r.Value, r.Target, r.Status})
	}
	return t.WriteCSV(s.DashboardsPath(FileKPISummary))
}

// LoadKPISummary reads the executive KPI table back.
func (s *Store) LoadKPISummary() ([]domain.KPIRow, error) {
	t, err := table.ReadCSV(s.DashboardsPath(FileKPISummary))
	if err != nil {
		return nil, err
	}
	rows := make([]domain.KPIRow, 0, t.Len())
	for i := range t.Rows {
		rows = append(rows, domain.KPIRow{
			Category: t.Get(i, "kpi_category"),
			Name:     t.Get(i, "kpi_name"),
			Value:    t.Get(i, "current_value"),
			Target:   t.Get(i, "target"),
			Status:   t.Get(i, "status"),
		})
	}
	return rows, nil
}

// SaveProductPerformance persists the product drill-down dashboard.
func (s *Store) SaveProductPerformance(rows []domain.ProductPerformance) error {
	t := table.New("product_performance", []string{
		"product_id", "product_name", "category",
		"total_demand", "avg_demand", "demand_std", "total_fulfilled",
		"total_revenue", "total_profit", "stockout_count", "transaction_count",
		"demand_cv", "stockout_rate",
		"unit_cost", "unit_price", "lead_time_days",
		"stockout_risk_score", "risk_category",
		"optimal_order_quantity", "optimal_reorder_point", "safety_stock",
		"potential_savings", "revenue_rank", "profit_rank",
	})
	for _, r := range rows {
		t.Append([]string{
			r.ProductID, r.ProductName, r.Category,
			formatInt(r.TotalDemand), formatFloat(r.AvgDemand), formatFloat(r.DemandStd), formatInt(r.TotalFulfilled),
			formatFloat(r.TotalRevenue), formatFloat(r.TotalProfit), formatInt(r.StockoutCount), formatInt(r.TransactionCount),
			formatFloat(r.DemandCV), formatFloat(r.StockoutRate),
			formatFloat(r.UnitCost), formatFloat(r.UnitPrice), formatInt(r.LeadTimeDays),
			formatFloat(r.StockoutRiskScore), r.RiskCategory,
			formatInt(r.OptimalOrderQuantity), formatInt(r.OptimalReorderPoint), formatInt(r.SafetyStock),
			formatFloat(r.PotentialSavings), formatInt(r.RevenueRank), formatInt(r.ProfitRank),
		})
	}
	return t.WriteCSV(s.DashboardsPath(FileProductPerformance))
}

// SaveSupplierPerformance persists the supplier dashboard.
func (s *Store) SaveSupplierPerformance(rows []domain.SupplierPerformance) error {
	t := table.New("supplier_performance", []string{
		"supplier_id", "supplier_name", "country", "reliability_score",
		"total_orders", "total_qty", "total_value", "delayed_orders",
		"avg_delay", "avg_delivery_time", "on_time_rate",
		"cost_efficiency", "performance_score", "rank", "recommendation",
		"total_orders_pct", "total_value_pct",
	})
	for _, r := range rows {
		t.Append([]string{
			r.SupplierID, r.SupplierName, r.Country, formatFloat(r.ReliabilityScore),
			formatInt(r.TotalOrders), formatInt(r.TotalQty), formatFloat(r.TotalValue), formatInt(r.DelayedOrders),
			formatFloat(r.AvgDelay), formatFloat(r.AvgDeliveryTime), formatFloat(r.OnTimeRate),
			formatFloat(r.CostEfficiency), formatFloat(r.PerformanceScore), formatInt(r.Rank), r.Recommendation,
			formatFloat(r.TotalOrdersPct), formatFloat(r.TotalValuePct),
		})
	}
	return t.WriteCSV(s.DashboardsPath(FileSupplierPerformance))
}

// SaveWarehousePerformance persists the warehouse dashboard.
func (s *Store) SaveWarehousePerformance(rows []domain.WarehousePerformance) error {
	t := table.New("warehouse_performance", []string{
		"warehouse_id", "location", "capacity",
		"total_fulfilled", "total_revenue", "stockout_count", "transaction_count", "stockout_rate",
		"capacity_utilization", "revenue_rank", "efficiency_rank",
	})
	for _, r := range rows {
		t.Append([]string{
			r.WarehouseID, r.Location, formatInt(r.Capacity),
			formatInt(r.TotalFulfilled), formatFloat(r.TotalRevenue),
			formatInt(r.StockoutCount), formatInt(r.TransactionCount), formatFloat(r.StockoutRate),
			formatFloat(r.CapacityUtilization), formatInt(r.RevenueRank), formatInt(r.EfficiencyRank),
		})
	}
	return t.WriteCSV(s.DashboardsPath(FileWarehousePerformance))
}

// SaveMonthlySummary persists the monthly trend dashboard.
func (s *Store) SaveMonthlySummary(rows []domain.MonthlySummary) error {
	t := table.New("monthly_trends", []string{
		"year", "month", "month_name", "revenue", "profit", "demand",
		"stockouts", "transactions", "stockout_rate", "revenue_growth",
	})
	for _, r := range rows {
		t.Append([]string{
			formatInt(r.Year), formatInt(r.Month), r.MonthName,
			formatFloat(r.Revenue), formatFloat(r.Profit), formatInt(r.Demand),
			formatInt(r.Stockouts), formatInt(r.Transactions),
			formatFloat(r.StockoutRate), formatFloat(r.RevenueGrowth),
		})
	}
	return t.WriteCSV(s.DashboardsPath(FileMonthlySummary))
}

// SaveRiskAlerts persists the risk monitoring dashboard.
func (s *Store) SaveRiskAlerts(rows []domain.RiskAlert) error {
	t := table.New("risk_alerts", []string{
		"product_id", "product_name", "category", "avg_demand", "current_stock",
		"days_of_stock", "stockout_risk_score", "risk_category", "status",
	})
	for _, r := range rows {
		t.Append([]string{
			r.ProductID, r.ProductName, r.Category,
			formatFloat(r.AvgDemand), formatFloat(r.CurrentStock),
			formatFloat(r.DaysOfStock), formatFloat(r.StockoutRiskScore),
			r.RiskCategory, r.Status,
		})
	}
	return t.WriteCSV(s.DashboardsPath(FileRiskAlerts))
}

// SaveDashboardActionItems copies the action items into the dashboards
// directory so the serving layer reads from one place.
func (s *Store) SaveDashboardActionItems(items []domain.ActionItem) error {
	t := table.New("action_items", []string{
		"priority", "category", "entity_id", "entity_name", "action",
		"current_stock", "risk_score", "estimated_impact",
	})
	for _, a := range items {
		t.Append([]string{
			a.Priority, a.Category, a.EntityID, a.EntityName, a.Action,
			formatInt(a.CurrentStock), formatFloat(a.RiskScore), a.EstimatedImpact,
		})
	}
	return t.WriteCSV(s.DashboardsPath(FileDashActionItems))
}

// SaveDashboardForecasts copies the forecast points into the dashboards
// directory.
func (s *Store) SaveDashboardForecasts(points []domain.ForecastPoint) error {
	t := table.New("demand_forecasts", forecastColumns)
	for _, p := range points {
		t.Append([]string{
			p.ProductID, formatDate(p.ForecastDate),
			formatFloat(p.ForecastedDemand), formatFloat(p.LowerBound), formatFloat(p.UpperBound),
		})
	}
	return t.WriteCSV(s.DashboardsPath(FileDashForecasts))
}

// SaveForecastSummary persists the per-product forecast rollup.
func (s *Store) SaveForecastSummary(rows []domain.ForecastSummary) error {
	t := table.New("forecast_summary", []string{
		"product_id", "total_30day_forecast", "avg_daily_forecast", "product_name", "category",
	})
	for _, r := range rows {
		t.Append([]string{
			r.ProductID, formatFloat(r.Total30DayForecast), formatFloat(r.AvgDailyForecast),
			r.ProductName, r.Category,
		})
	}
	return t.WriteCSV(s.DashboardsPath(FileForecastSummary))
}

// SaveProjectSummary persists the single-row run summary.
func (s *Store) SaveProjectSummary(p domain.ProjectSummary) error {
	t := table.New("project_summary", []string{
		"completion_date", "total_records_processed", "products_analyzed",
		"warehouses_analyzed", "suppliers_analyzed", "date_range",
		"total_revenue", "total_profit", "potential_savings",
		"anomalies_detected", "high_risk_products", "action_items_generated",
		"forecasts_generated",
	})
	t.Append([]string{
		p.CompletionDate, formatInt(p.TotalRecordsProcessed), formatInt(p.ProductsAnalyzed),
		formatInt(p.WarehousesAnalyzed), formatInt(p.SuppliersAnalyzed), p.DateRange,
		p.TotalRevenue, p.TotalProfit, p.PotentialSavings,
		formatInt(p.AnomaliesDetected), formatInt(p.HighRiskProducts), formatInt(p.ActionItemsGenerated),
		formatInt(p.ForecastsGenerated),
	})
	return t.WriteCSV(s.DashboardsPath(FileProjectSummary))
}
