package domain

// KPIRow is one metric of the executive KPI summary.
type KPIRow struct {
	Category string `json:"kpi_category" db:"kpi_category"`
	Name     string `json:"kpi_name" db:"kpi_name"`
	Value    string `json:"current_value" db:"current_value"`
	Target   string `json:"target" db:"target"`
	Status   string `json:"status" db:"status"`
}

// ProductPerformance joins product metrics with risk and reorder output for
// the product drill-down dashboard.
type ProductPerformance struct {
	ProductMetrics

	UnitCost             float64 `json:"unit_cost" db:"unit_cost"`
	UnitPrice            float64 `json:"unit_price" db:"unit_price"`
	LeadTimeDays         int     `json:"lead_time_days" db:"lead_time_days"`
	StockoutRiskScore    float64 `json:"stockout_risk_score" db:"stockout_risk_score"`
	RiskCategory         string  `json:"risk_category" db:"risk_category"`
	OptimalOrderQuantity int     `json:"optimal_order_quantity" db:"optimal_order_quantity"`
	OptimalReorderPoint  int     `json:"optimal_reorder_point" db:"optimal_reorder_point"`
	SafetyStock          int     `json:"safety_stock" db:"safety_stock"`
	PotentialSavings     float64 `json:"potential_savings" db:"potential_savings"`
	RevenueRank          int     `json:"revenue_rank" db:"revenue_rank"`
	ProfitRank           int     `json:"profit_rank" db:"profit_rank"`
}

// SupplierPerformance extends the ranking with order and value shares.
type SupplierPerformance struct {
	SupplierRanking

	TotalOrdersPct float64 `json:"total_orders_pct" db:"total_orders_pct"`
	TotalValuePct  float64 `json:"total_value_pct" db:"total_value_pct"`
}

// WarehousePerformance extends warehouse metrics with utilization and ranks.
type WarehousePerformance struct {
	WarehouseMetrics

	CapacityUtilization float64 `json:"capacity_utilization" db:"capacity_utilization"`
	RevenueRank         int     `json:"revenue_rank" db:"revenue_rank"`
	EfficiencyRank      int     `json:"efficiency_rank" db:"efficiency_rank"`
}

// MonthlySummary is one month of the time-series trend dashboard.
type MonthlySummary struct {
	Year          int     `json:"year" db:"year"`
	Month         int     `json:"month" db:"month"`
	MonthName     string  `json:"month_name" db:"month_name"`
	Revenue       float64 `json:"revenue" db:"revenue"`
	Profit        float64 `json:"profit" db:"profit"`
	Demand        int     `json:"demand" db:"demand"`
	Stockouts     int     `json:"stockouts" db:"stockouts"`
	Transactions  int     `json:"transactions" db:"transactions"`
	StockoutRate  float64 `json:"stockout_rate" db:"stockout_rate"`
	RevenueGrowth float64 `json:"revenue_growth" db:"revenue_growth"`
}

// RiskAlert is one product on the risk monitoring dashboard.
type RiskAlert struct {
	ProductID         string  `json:"product_id" db:"product_id"`
	ProductName       string  `json:"product_name" db:"product_name"`
	Category          string  `json:"category" db:"category"`
	AvgDemand         float64 `json:"avg_demand" db:"avg_demand"`
	CurrentStock      float64 `json:"current_stock" db:"current_stock"`
	DaysOfStock       float64 `json:"days_of_stock" db:"days_of_stock"`
	StockoutRiskScore float64 `json:"stockout_risk_score" db:"stockout_risk_score"`
	RiskCategory      string  `json:"risk_category" db:"risk_category"`
	Status            string  `json:"status" db:"status"`
}

// ForecastSummary is the per-product rollup of the 30-day forecast.
type ForecastSummary struct {
	ProductID          string  `json:"product_id" db:"product_id"`
	Total30DayForecast float64 `json:"total_30day_forecast" db:"total_30day_forecast"`
	AvgDailyForecast   float64 `json:"avg_daily_forecast" db:"avg_daily_forecast"`
	ProductName        string  `json:"product_name" db:"product_name"`
	Category           string  `json:"category" db:"category"`
}

// ProjectSummary is the single-row run summary written alongside the
// dashboard tables.
type ProjectSummary struct {
	CompletionDate        string `json:"completion_date" db:"completion_date"`
	TotalRecordsProcessed int    `json:"total_records_processed" db:"total_records_processed"`
	ProductsAnalyzed      int    `json:"products_analyzed" db:"products_analyzed"`
	WarehousesAnalyzed    int    `json:"warehouses_analyzed" db:"warehouses_analyzed"`
	SuppliersAnalyzed     int    `json:"suppliers_analyzed" db:"suppliers_analyzed"`
	DateRange             string `json:"date_range" db:"date_range"`
	TotalRevenue          string `json:"total_revenue" db:"total_revenue"`
	TotalProfit           string `json:"total_profit" db:"total_profit"`
	PotentialSavings      string `json:"potential_savings" db:"potential_savings"`
	AnomaliesDetected     int    `json:"anomalies_detected" db:"anomalies_detected"`
	HighRiskProducts      int    `json:"high_risk_products" db:"high_risk_products"`
	ActionItemsGenerated  int    `json:"action_items_generated" db:"action_items_generated"`
	ForecastsGenerated    int    `json:"forecasts_generated" db:"forecasts_generated"`
}
