// internal/domain/models.go
package domain

import "time"

// Product is a row of the products dimension.
type Product struct {
	ProductID    string  `json:"product_id" db:"product_id"`
	ProductName  string  `json:"product_name" db:"product_name"`
	Category     string  `json:"category" db:"category"`
	UnitCost     float64 `json:"unit_cost" db:"unit_cost"`
	UnitPrice    float64 `json:"unit_price" db:"unit_price"`
	LeadTimeDays int     `json:"lead_time_days" db:"lead_time_days"`
}

// Supplier is a row of the suppliers dimension.
type Supplier struct {
	SupplierID       string  `json:"supplier_id" db:"supplier_id"`
	SupplierName     string  `json:"supplier_name" db:"supplier_name"`
	Country          string  `json:"country" db:"country"`
	ReliabilityScore float64 `json:"reliability_score" db:"reliability_score"`
}

// Warehouse is a row of the warehouses dimension.
type Warehouse struct {
	WarehouseID string `json:"warehouse_id" db:"warehouse_id"`
	Location    string `json:"location" db:"location"`
	Capacity    int    `json:"capacity" db:"capacity"`
}

// SalesRecord is a sales transaction. The raw columns come from the source
// system; everything below the marker is derived during enrichment.
type SalesRecord struct {
	TransactionID     string    `json:"transaction_id" db:"transaction_id"`
	Date              time.Time `json:"date" db:"date"`
	ProductID         string    `json:"product_id" db:"product_id"`
	WarehouseID       string    `json:"warehouse_id" db:"warehouse_id"`
	QuantityOrdered   int       `json:"quantity_ordered" db:"quantity_ordered"`
	QuantityFulfilled int       `json:"quantity_fulfilled" db:"quantity_fulfilled"`

	// Derived calendar fields
	Year       int    `json:"year" db:"year"`
	Month      int    `json:"month" db:"month"`
	Quarter    int    `json:"quarter" db:"quarter"`
	DayOfWeek  string `json:"day_of_week" db:"day_of_week"`
	WeekOfYear int    `json:"week_of_year" db:"week_of_year"`

	// Product attributes joined by product_id. HasProduct is false when the
	// product is missing from the dimension; the money fields stay zero then.
	UnitPrice  float64 `json:"unit_price" db:"unit_price"`
	UnitCost   float64 `json:"unit_cost" db:"unit_cost"`
	Category   string  `json:"category" db:"category"`
	HasProduct bool    `json:"-" db:"-"`

	// Derived business metrics
	Revenue         float64 `json:"revenue" db:"revenue"`
	Cost            float64 `json:"cost" db:"cost"`
	Profit          float64 `json:"profit" db:"profit"`
	StockoutFlag    int     `json:"stockout_flag" db:"stockout_flag"`
	FulfillmentRate float64 `json:"fulfillment_rate" db:"fulfillment_rate"`
}

// InventorySnapshot is one observation of stock and sensor temperature for
// a (date, warehouse, product) triple.
type InventorySnapshot struct {
	Date         time.Time `json:"date" db:"date"`
	WarehouseID  string    `json:"warehouse_id" db:"warehouse_id"`
	ProductID    string    `json:"product_id" db:"product_id"`
	CurrentStock int       `json:"current_stock" db:"current_stock"`
	Temperature  float64   `json:"temperature" db:"temperature"`

	// Derived alert flags
	TempAlert     int `json:"temp_alert" db:"temp_alert"`
	LowStockAlert int `json:"low_stock_alert" db:"low_stock_alert"`

	// Set by the anomaly detector
	IsAnomaly int `json:"is_anomaly" db:"is_anomaly"`
}

// SupplyOrder is a purchase order placed with a supplier.
type SupplyOrder struct {
	OrderID            string    `json:"order_id" db:"order_id"`
	OrderDate          time.Time `json:"order_date" db:"order_date"`
	SupplierID         string    `json:"supplier_id" db:"supplier_id"`
	ProductID          string    `json:"product_id" db:"product_id"`
	QtyOrdered         int       `json:"qty_ordered" db:"qty_ordered"`
	DeliveryDaysActual int       `json:"delivery_days_actual" db:"delivery_days_actual"`

	// Supplier attributes joined by supplier_id
	SupplierName     string  `json:"supplier_name" db:"supplier_name"`
	Country          string  `json:"country" db:"country"`
	ReliabilityScore float64 `json:"reliability_score" db:"reliability_score"`

	// Delivery performance derived from the product's lead time
	LeadTimeDays         int     `json:"lead_time_days" db:"lead_time_days"`
	ExpectedDeliveryDays int     `json:"expected_delivery_days" db:"expected_delivery_days"`
	DelayDays            int     `json:"delay_days" db:"delay_days"`
	IsDelayed            int     `json:"is_delayed" db:"is_delayed"`
	UnitCost             float64 `json:"unit_cost" db:"unit_cost"`
	OrderValue           float64 `json:"order_value" db:"order_value"`
}

// ForecastPoint is a single day of a product's demand forecast.
type ForecastPoint struct {
	ProductID        string    `json:"product_id" db:"product_id"`
	ForecastDate     time.Time `json:"forecast_date" db:"forecast_date"`
	ForecastedDemand float64   `json:"forecasted_demand" db:"forecasted_demand"`
	LowerBound       float64   `json:"lower_bound" db:"lower_bound"`
	UpperBound       float64   `json:"upper_bound" db:"upper_bound"`
}
