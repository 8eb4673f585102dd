// internal/domain/metrics.go
package domain

// ProductMetrics aggregates enriched sales per product.
type ProductMetrics struct {
	ProductID        string  `json:"product_id" db:"product_id"`
	TotalDemand      int     `json:"total_demand" db:"total_demand"`
	AvgDemand        float64 `json:"avg_demand" db:"avg_demand"`
	DemandStd        float64 `json:"demand_std" db:"demand_std"`
	TotalFulfilled   int     `json:"total_fulfilled" db:"total_fulfilled"`
	TotalRevenue     float64 `json:"total_revenue" db:"total_revenue"`
	TotalProfit      float64 `json:"total_profit" db:"total_profit"`
	StockoutCount    int     `json:"stockout_count" db:"stockout_count"`
	TransactionCount int     `json:"transaction_count" db:"transaction_count"`
	DemandCV         float64 `json:"demand_cv" db:"demand_cv"`
	StockoutRate     float64 `json:"stockout_rate" db:"stockout_rate"`
	ProductName      string  `json:"product_name" db:"product_name"`
	Category         string  `json:"category" db:"category"`
}

// WarehouseMetrics aggregates enriched sales per warehouse.
type WarehouseMetrics struct {
	WarehouseID      string  `json:"warehouse_id" db:"warehouse_id"`
	TotalFulfilled   int     `json:"total_fulfilled" db:"total_fulfilled"`
	TotalRevenue     float64 `json:"total_revenue" db:"total_revenue"`
	StockoutCount    int     `json:"stockout_count" db:"stockout_count"`
	TransactionCount int     `json:"transaction_count" db:"transaction_count"`
	StockoutRate     float64 `json:"stockout_rate" db:"stockout_rate"`
	Location         string  `json:"location" db:"location"`
	Capacity         int     `json:"capacity" db:"capacity"`
}

// SupplierMetrics aggregates enriched supply orders per supplier.
type SupplierMetrics struct {
	SupplierID       string  `json:"supplier_id" db:"supplier_id"`
	TotalOrders      int     `json:"total_orders" db:"total_orders"`
	TotalQty         int     `json:"total_qty" db:"total_qty"`
	TotalValue       float64 `json:"total_value" db:"total_value"`
	DelayedOrders    int     `json:"delayed_orders" db:"delayed_orders"`
	AvgDelay         float64 `json:"avg_delay" db:"avg_delay"`
	AvgDeliveryTime  float64 `json:"avg_delivery_time" db:"avg_delivery_time"`
	OnTimeRate       float64 `json:"on_time_rate" db:"on_time_rate"`
	SupplierName     string  `json:"supplier_name" db:"supplier_name"`
	Country          string  `json:"country" db:"country"`
	ReliabilityScore float64 `json:"reliability_score" db:"reliability_score"`
}

// MonthlyTrend aggregates enriched sales per (year, month, category).
type MonthlyTrend struct {
	Year         int     `json:"year" db:"year"`
	Month        int     `json:"month" db:"month"`
	Category     string  `json:"category" db:"category"`
	TotalDemand  int     `json:"total_demand" db:"total_demand"`
	TotalRevenue float64 `json:"total_revenue" db:"total_revenue"`
	TotalProfit  float64 `json:"total_profit" db:"total_profit"`
	Stockouts    int     `json:"stockouts" db:"stockouts"`
}

// RiskScore is the composite stockout-risk assessment for one product.
type RiskScore struct {
	ProductID              string  `json:"product_id" db:"product_id"`
	AvgDemand              float64 `json:"avg_demand" db:"avg_demand"`
	DemandStd              float64 `json:"demand_std" db:"demand_std"`
	StockoutCount          int     `json:"stockout_count" db:"stockout_count"`
	TransactionCount       int     `json:"transaction_count" db:"transaction_count"`
	CurrentStock           float64 `json:"current_stock" db:"current_stock"`
	LeadTimeDays           int     `json:"lead_time_days" db:"lead_time_days"`
	DemandVolatility       float64 `json:"demand_volatility" db:"demand_volatility"`
	HistoricalStockoutRate float64 `json:"historical_stockout_rate" db:"historical_stockout_rate"`
	DaysOfStock            float64 `json:"days_of_stock" db:"days_of_stock"`
	StockoutRiskScore      float64 `json:"stockout_risk_score" db:"stockout_risk_score"`
	RiskCategory           string  `json:"risk_category" db:"risk_category"`
	ProductName            string  `json:"product_name" db:"product_name"`
	Category               string  `json:"category" db:"category"`
}

// ReorderRecommendation carries the EOQ optimization output for one product
// together with the risk context it was computed from.
type ReorderRecommendation struct {
	ProductID         string  `json:"product_id" db:"product_id"`
	ProductName       string  `json:"product_name" db:"product_name"`
	Category          string  `json:"category" db:"category"`
	AvgDemand         float64 `json:"avg_demand" db:"avg_demand"`
	DemandStd         float64 `json:"demand_std" db:"demand_std"`
	CurrentStock      float64 `json:"current_stock" db:"current_stock"`
	LeadTimeDays      int     `json:"lead_time_days" db:"lead_time_days"`
	DemandVolatility  float64 `json:"demand_volatility" db:"demand_volatility"`
	StockoutRiskScore float64 `json:"stockout_risk_score" db:"stockout_risk_score"`
	RiskCategory      string  `json:"risk_category" db:"risk_category"`
	UnitCost          float64 `json:"unit_cost" db:"unit_cost"`

	AnnualDemand         float64 `json:"annual_demand" db:"annual_demand"`
	HoldingCost          float64 `json:"holding_cost" db:"holding_cost"`
	OptimalOrderQuantity int     `json:"optimal_order_quantity" db:"optimal_order_quantity"`
	SafetyStock          int     `json:"safety_stock" db:"safety_stock"`
	OptimalReorderPoint  int     `json:"optimal_reorder_point" db:"optimal_reorder_point"`
	AvgInventoryLevel    int     `json:"avg_inventory_level" db:"avg_inventory_level"`
	AnnualCarryingCost   float64 `json:"annual_carrying_cost" db:"annual_carrying_cost"`
	OrdersPerYear        float64 `json:"orders_per_year" db:"orders_per_year"`
	AnnualOrderingCost   float64 `json:"annual_ordering_cost" db:"annual_ordering_cost"`
	TotalAnnualCost      float64 `json:"total_annual_cost" db:"total_annual_cost"`
	CurrentCarryingCost  float64 `json:"current_carrying_cost" db:"current_carrying_cost"`
	PotentialSavings     float64 `json:"potential_savings" db:"potential_savings"`
}

// SupplierRanking extends SupplierMetrics with the composite performance
// score, the stable rank and the tier recommendation.
type SupplierRanking struct {
	SupplierMetrics

	CostEfficiency   float64 `json:"cost_efficiency" db:"cost_efficiency"`
	PerformanceScore float64 `json:"performance_score" db:"performance_score"`
	Rank             int     `json:"rank" db:"rank"`
	Recommendation   string  `json:"recommendation" db:"recommendation"`
}

// ActionItem is one prioritized recommendation for the operations team.
type ActionItem struct {
	Priority        string  `json:"priority" db:"priority"`
	Category        string  `json:"category" db:"category"`
	EntityID        string  `json:"entity_id" db:"entity_id"`
	EntityName      string  `json:"entity_name" db:"entity_name"`
	Action          string  `json:"action" db:"action"`
	CurrentStock    int     `json:"current_stock" db:"current_stock"`
	RiskScore       float64 `json:"risk_score" db:"risk_score"`
	EstimatedImpact string  `json:"estimated_impact" db:"estimated_impact"`
}

// Scenario is the outcome of one fixed what-if policy simulation.
type Scenario struct {
	Name           string  `json:"name" db:"name"`
	Objective      string  `json:"objective" db:"objective"`
	Delta          float64 `json:"delta" db:"delta"`
	Recommendation string  `json:"recommendation" db:"recommendation"`
}
