package dataset

import (
	"github.com/andresuchdata/chainsight/internal/domain"
	"github.com/andresuchdata/chainsight/internal/table"
)

// Processed stage artifact names.
const (
	FileSalesTransformed  = "sales_transformed.csv"
	FileInventoryEnriched = "inventory_transformed.csv"
	FileOrdersTransformed = "supply_orders_transformed.csv"
	FileProductMetrics    = "product_metrics.csv"
	FileWarehouseMetrics  = "warehouse_metrics.csv"
	FileSupplierMetrics   = "supplier_metrics.csv"
	FileMonthlyTrends     = "monthly_trends.csv"
	FileDimProducts       = "dim_products.csv"
	FileDimSuppliers      = "dim_suppliers.csv"
	FileDimWarehouses     = "dim_warehouses.csv"
)

var enrichedSalesColumns = []string{
	"transaction_id", "date", "product_id", "warehouse_id",
	"quantity_ordered", "quantity_fulfilled",
	"year", "month", "quarter", "day_of_week", "week_of_year",
	"unit_price", "unit_cost", "category",
	"revenue", "cost", "profit", "stockout_flag", "fulfillment_rate",
}

func buildSalesTable(sales []domain.SalesRecord) *table.Table {
	t := table.New("sales_transformed", enrichedSalesColumns)
	for _, r := range sales {
		t.Append([]string{
			r.TransactionID, formatDate(r.Date), r.ProductID, r.WarehouseID,
			formatInt(r.QuantityOrdered), formatInt(r.QuantityFulfilled),
			formatInt(r.Year), formatInt(r.Month), formatInt(r.Quarter), r.DayOfWeek, formatInt(r.WeekOfYear),
			formatFloat(r.UnitPrice), formatFloat(r.UnitCost), r.Category,
			formatFloat(r.Revenue), formatFloat(r.Cost), formatFloat(r.Profit),
			formatInt(r.StockoutFlag), formatFloat(r.FulfillmentRate),
		})
	}
	return t
}

// SaveEnrichedSales persists the enriched sales fact table.
func (s *Store) SaveEnrichedSales(sales []domain.SalesRecord) error {
	return buildSalesTable(sales).WriteCSV(s.ProcessedPath(FileSalesTransformed))
}

// LoadEnrichedSales reads the enriched sales fact table back.
func (s *Store) LoadEnrichedSales() ([]domain.SalesRecord, error) {
	t, err := table.ReadCSV(s.ProcessedPath(FileSalesTransformed))
	if err != nil {
		return nil, err
	}
	if err := t.Require(enrichedSalesColumns...); err != nil {
		return nil, err
	}

	sales := make([]domain.SalesRecord, 0, t.Len())
	for i := range t.Rows {
		sales = append(sales, domain.SalesRecord{
			TransactionID:     t.Get(i, "transaction_id"),
			Date:              t.Date(i, "date"),
			ProductID:         t.Get(i, "product_id"),
			WarehouseID:       t.Get(i, "warehouse_id"),
			QuantityOrdered:   t.Int(i, "quantity_ordered"),
			QuantityFulfilled: t.Int(i, "quantity_fulfilled"),
			Year:              t.Int(i, "year"),
			Month:             t.Int(i, "month"),
			Quarter:           t.Int(i, "quarter"),
			DayOfWeek:         t.Get(i, "day_of_week"),
			WeekOfYear:        t.Int(i, "week_of_year"),
			UnitPrice:         t.Float(i, "unit_price"),
			UnitCost:          t.Float(i, "unit_cost"),
			Category:          t.Get(i, "category"),
			HasProduct:        t.Get(i, "category") != "",
			Revenue:           t.Float(i, "revenue"),
			Cost:              t.Float(i, "cost"),
			Profit:            t.Float(i, "profit"),
			StockoutFlag:      t.Int(i, "stockout_flag"),
			FulfillmentRate:   t.Float(i, "fulfillment_rate"),
		})
	}
	return sales, nil
}

var enrichedInventoryColumns = []string{
	"date", "warehouse_id", "product_id", "current_stock", "temperature",
	"temp_alert", "low_stock_alert", "is_anomaly",
}

// SaveEnrichedInventory persists inventory snapshots with alert flags. The
// is_anomaly column stays 0 until the anomaly detector has run.
func (s *Store) SaveEnrichedInventory(snapshots []domain.InventorySnapshot, path string) error {
	t := table.New("inventory_transformed", enrichedInventoryColumns)
	for _, r := range snapshots {
		t.Append(inventoryRecord(r))
	}
	return t.WriteCSV(path)
}

func inventoryRecord(r domain.InventorySnapshot) []string {
	return []string{
		formatDate(r.Date), r.WarehouseID, r.ProductID,
		formatInt(r.CurrentStock), formatFloat(r.Temperature),
		formatInt(r.TempAlert), formatInt(r.LowStockAlert), formatInt(r.IsAnomaly),
	}
}

// LoadEnrichedInventory reads snapshots with alert flags from path.
func (s *Store) LoadEnrichedInventory(path string) ([]domain.InventorySnapshot, error) {
	t, err := table.ReadCSV(path)
	if err != nil {
		return nil, err
	}
	if err := t.Require(enrichedInventoryColumns...); err != nil {
		return nil, err
	}

	snapshots := make([]domain.InventorySnapshot, 0, t.Len())
	for i := range t.Rows {
		snapshots = append(snapshots, domain.InventorySnapshot{
			Date:          t.Date(i, "date"),
			WarehouseID:   t.Get(i, "warehouse_id"),
			ProductID:     t.Get(i, "product_id"),
			CurrentStock:  t.Int(i, "current_stock"),
			Temperature:   t.Float(i, "temperature"),
			TempAlert:     t.Int(i, "temp_alert"),
			LowStockAlert: t.Int(i, "low_stock_alert"),
			IsAnomaly:     t.Int(i, "is_anomaly"),
		})
	}
	return snapshots, nil
}

var enrichedOrderColumns = []string{
	"order_id", "order_date", "supplier_id", "product_id",
	"qty_ordered", "delivery_days_actual",
	"supplier_name", "country", "reliability_score",
	"lead_time_days", "expected_delivery_days", "delay_days", "is_delayed",
	"unit_cost", "order_value",
}

func buildOrdersTable(orders []domain.SupplyOrder) *table.Table {
	t := table.New("supply_orders_transformed", enrichedOrderColumns)
	for _, r := range orders {
		t.Append([]string{
			r.OrderID, formatDate(r.OrderDate), r.SupplierID, r.ProductID,
			formatInt(r.QtyOrdered), formatInt(r.DeliveryDaysActual),
			r.SupplierName, r.Country, formatFloat(r.ReliabilityScore),
			formatInt(r.LeadTimeDays), formatInt(r.ExpectedDeliveryDays),
			formatInt(r.DelayDays), formatInt(r.IsDelayed),
			formatFloat(r.UnitCost), formatFloat(r.OrderValue),
		})
	}
	return t
}

// SaveEnrichedOrders persists supply orders with delivery metrics.
func (s *Store) SaveEnrichedOrders(orders []domain.SupplyOrder) error {
	return buildOrdersTable(orders).WriteCSV(s.ProcessedPath(FileOrdersTransformed))
}

// LoadEnrichedOrders reads supply orders with delivery metrics back.
func (s *Store) LoadEnrichedOrders() ([]domain.SupplyOrder, error) {
	t, err := table.ReadCSV(s.ProcessedPath(FileOrdersTransformed))
	if err != nil {
		return nil, err
	}
	if err := t.Require(enrichedOrderColumns...); err != nil {
		return nil, err
	}

	orders := make([]domain.SupplyOrder, 0, t.Len())
	for i := range t.Rows {
		orders = append(orders, domain.SupplyOrder{
			OrderID:              t.Get(i, "order_id"),
			OrderDate:            t.Date(i, "order_date"),
			SupplierID:           t.Get(i, "supplier_id"),
			ProductID:            t.Get(i, "product_id"),
			QtyOrdered:           t.Int(i, "qty_ordered"),
			DeliveryDaysActual:   t.Int(i, "delivery_days_actual"),
			SupplierName:         t.Get(i, "supplier_name"),
			Country:              t.Get(i, "country"),
			ReliabilityScore:     t.Float(i, "reliability_score"),
			LeadTimeDays:         t.Int(i, "lead_time_days"),
			ExpectedDeliveryDays: t.Int(i, "expected_delivery_days"),
			DelayDays:            t.Int(i, "delay_days"),
			IsDelayed:            t.Int(i, "is_delayed"),
			UnitCost:             t.Float(i, "unit_cost"),
			OrderValue:           t.Float(i, "order_value"),
		})
	}
	return orders, nil
}

// SaveDimensions copies the dimension tables into the processed directory
// for downstream consumers that only read one stage directory.
func (s *Store) SaveDimensions(products []domain.Product, suppliers []domain.Supplier, warehouses []domain.Warehouse) error {
	pt := table.New("dim_products", []string{"product_id", "product_name", "category", "unit_cost", "unit_price", "lead_time_days"})
	for _, p := range products {
		pt.Append([]string{p.ProductID, p.ProductName, p.Category, formatFloat(p.UnitCost), formatFloat(p.UnitPrice), formatInt(p.LeadTimeDays)})
	}
	if err := pt.WriteCSV(s.ProcessedPath(FileDimProducts)); err != nil {
		return err
	}

	st := table.New("dim_suppliers", []string{"supplier_id", "supplier_name", "country", "reliability_score"})
	for _, v := range suppliers {
		st.Append([]string{v.SupplierID, v.SupplierName, v.Country, formatFloat(v.ReliabilityScore)})
	}
	if err := st.WriteCSV(s.ProcessedPath(FileDimSuppliers)); err != nil {
		return err
	}

	wt := table.New("dim_warehouses", []string{"warehouse_id", "location", "capacity"})
	for _, w := range warehouses {
		wt.Append([]string{w.WarehouseID, w.Location, formatInt(w.Capacity)})
	}
	return wt.WriteCSV(s.ProcessedPath(FileDimWarehouses))
}

// LoadDimProducts reads the processed products dimension.
func (s *Store) LoadDimProducts() ([]domain.Product, error) {
	t, err := table.ReadCSV(s.ProcessedPath(FileDimProducts))
	if err != nil {
		return nil, err
	}
	products := make([]domain.Product, 0, t.Len())
	for i := range t.Rows {
		products = append(products, domain.Product{
			ProductID:    t.Get(i, "product_id"),
			ProductName:  t.Get(i, "product_name"),
			Category:     t.Get(i, "category"),
			UnitCost:     t.Float(i, "unit_cost"),
			UnitPrice:    t.Float(i, "unit_price"),
			LeadTimeDays: t.Int(i, "lead_time_days"),
		})
	}
	return products, nil
}

// LoadDimSuppliers reads the processed suppliers dimension.
func (s *Store) LoadDimSuppliers() ([]domain.Supplier, error) {
	t, err := table.ReadCSV(s.ProcessedPath(FileDimSuppliers))
	if err != nil {
		return nil, err
	}
	suppliers := make([]domain.Supplier, 0, t.Len())
	for i := range t.Rows {
		suppliers = append(suppliers, domain.Supplier{
			SupplierID:       t.Get(i, "supplier_id"),
			SupplierName:     t.Get(i, "supplier_name"),
			Country:          t.Get(i, "country"),
			ReliabilityScore: t.Float(i, "reliability_score"),
		})
	}
	return suppliers, nil
}

// LoadDimWarehouses reads the processed warehouses dimension.
func (s *Store) LoadDimWarehouses() ([]domain.Warehouse, error) {
	t, err := table.ReadCSV(s.ProcessedPath(FileDimWarehouses))
	if err != nil {
		return nil, err
	}
	warehouses := make([]domain.Warehouse, 0, t.Len())
	for i := range t.Rows {
		warehouses = append(warehouses, domain.Warehouse{
			WarehouseID: t.Get(i, "warehouse_id"),
			Location:    t.Get(i, "location"),
			Capacity:    t.Int(i, "capacity"),
		})
	}
	return warehouses, nil
}

var productMetricsColumns = []string{
	"product_id", "total_demand", "avg_demand", "demand_std",
	"total_fulfilled", "total_revenue", "total_profit",
	"stockout_count", "transaction_count", "demand_cv", "stockout_rate",
	"product_name", "category",
}

// SaveProductMetrics persists the per-product aggregation.
func (s *Store) SaveProductMetrics(metrics []domain.ProductMetrics) error {
	t := table.New("product_metrics", productMetricsColumns)
	for _, m := range metrics {
		t.Append([]string{
			m.ProductID, formatInt(m.TotalDemand), formatFloat(m.AvgDemand), formatFloat(m.DemandStd),
			formatInt(m.TotalFulfilled), formatFloat(m.TotalRevenue), formatFloat(m.TotalProfit),
			formatInt(m.StockoutCount), formatInt(m.TransactionCount),
			formatFloat(m.DemandCV), formatFloat(m.StockoutRate),
			m.ProductName, m.Category,
		})
	}
	return t.WriteCSV(s.ProcessedPath(FileProductMetrics))
}

// LoadProductMetrics reads the per-product aggregation back.
func (s *Store) LoadProductMetrics() ([]domain.ProductMetrics, error) {
	t, err := table.ReadCSV(s.ProcessedPath(FileProductMetrics))
	if err != nil {
		return nil, err
	}
	if err := t.Require(productMetricsColumns...); err != nil {
		return nil, err
	}

	metrics := make([]domain.ProductMetrics, 0, t.Len())
	for i := range t.Rows {
		metrics = append(metrics, domain.ProductMetrics{
			ProductID:        t.Get(i, "product_id"),
			TotalDemand:      t.Int(i, "total_demand"),
			AvgDemand:        t.Float(i, "avg_demand"),
			DemandStd:        t.Float(i, "demand_std"),
			TotalFulfilled:   t.Int(i, "total_fulfilled"),
			TotalRevenue:     t.Float(i, "total_revenue"),
			TotalProfit:      t.Float(i, "total_profit"),
			StockoutCount:    t.Int(i, "stockout_count"),
			TransactionCount: t.Int(i, "transaction_count"),
			DemandCV:         t.Float(i, "demand_cv"),
			StockoutRate:     t.Float(i, "stockout_rate"),
			ProductName:      t.Get(i, "product_name"),
			Category:         t.Get(i, "category"),
		})
	}
	return metrics, nil
}

// SaveWarehouseMetrics persists the per-warehouse aggregation.
func (s *Store) SaveWarehouseMetrics(metrics []domain.WarehouseMetrics) error {
	t := table.New("warehouse_metrics", []string{
		"warehouse_id", "total_fulfilled", "total_revenue",
		"stockout_count", "transaction_count", "stockout_rate",
		"location", "capacity",
	})
	for _, m := range metrics {
		t.Append([]string{
			m.WarehouseID, formatInt(m.TotalFulfilled), formatFloat(m.TotalRevenue),
			formatInt(m.StockoutCount), formatInt(m.TransactionCount), formatFloat(m.StockoutRate),
			m.Location, formatInt(m.Capacity),
		})
	}
	return t.WriteCSV(s.ProcessedPath(FileWarehouseMetrics))
}

// LoadWarehouseMetrics reads the per-warehouse aggregation back.
func (s *Store) LoadWarehouseMetrics() ([]domain.WarehouseMetrics, error) {
	t, err := table.ReadCSV(s.ProcessedPath(FileWarehouseMetrics))
	if err != nil {
		return nil, err
	}
	metrics := make([]domain.WarehouseMetrics, 0, t.Len())
	for i := range t.Rows {
		metrics = append(metrics, domain.WarehouseMetrics{
			WarehouseID:      t.Get(i, "warehouse_id"),
			TotalFulfilled:   t.Int(i, "total_fulfilled"),
			TotalRevenue:     t.Float(i, "total_revenue"),
			StockoutCount:    t.Int(i, "stockout_count"),
			TransactionCount: t.Int(i, "transaction_count"),
			StockoutRate:     t.Float(i, "stockout_rate"),
			Location:         t.Get(i, "location"),
			Capacity:         t.Int(i, "capacity"),
		})
	}
	return metrics, nil
}

// SaveSupplierMetrics persists the per-supplier aggregation.
func (s *Store) SaveSupplierMetrics(metrics []domain.SupplierMetrics) error {
	t := table.New("supplier_metrics", []string{
		"supplier_id", "total_orders", "total_qty", "total_value",
		"delayed_orders", "avg_delay", "avg_delivery_time", "on_time_rate",
		"supplier_name", "country", "reliability_score",
	})
	for _, m := range metrics {
		t.Append([]string{
			m.SupplierID, formatInt(m.TotalOrders), formatInt(m.TotalQty), formatFloat(m.TotalValue),
			formatInt(m.DelayedOrders), formatFloat(m.AvgDelay), formatFloat(m.AvgDeliveryTime), formatFloat(m.OnTimeRate),
			m.SupplierName, m.Country, formatFloat(m.ReliabilityScore),
		})
	}
	return t.WriteCSV(s.ProcessedPath(FileSupplierMetrics))
}

// LoadSupplierMetrics reads the per-supplier aggregation back.
func (s *Store) LoadSupplierMetrics() ([]domain.SupplierMetrics, error) {
	t, err := table.ReadCSV(s.ProcessedPath(FileSupplierMetrics))
	if err != nil {
		return nil, err
	}
	metrics := make([]domain.SupplierMetrics, 0, t.Len())
	for i := range t.Rows {
		metrics = append(metrics, domain.SupplierMetrics{
			SupplierID:       t.Get(i, "supplier_id"),
			TotalOrders:      t.Int(i, "total_orders"),
			TotalQty:         t.Int(i, "total_qty"),
			TotalValue:       t.Float(i, "total_value"),
			DelayedOrders:    t.Int(i, "delayed_orders"),
			AvgDelay:         t.Float(i, "avg_delay"),
			AvgDeliveryTime:  t.Float(i, "avg_delivery_time"),
			OnTimeRate:       t.Float(i, "on_time_rate"),
			SupplierName:     t.Get(i, "supplier_name"),
			Country:          t.Get(i, "country"),
			ReliabilityScore: t.Float(i, "reliability_score"),
		})
	}
	return metrics, nil
}

// SaveMonthlyTrends persists the (year, month, category) aggregation.
func (s *Store) SaveMonthlyTrends(trends []domain.MonthlyTrend) error {
	t := table.New("monthly_trends", []string{
		"year", "month", "category", "total_demand", "total_revenue", "total_profit", "stockouts",
	})
	for _, m := range trends {
		t.Append([]string{
			formatInt(m.Year), formatInt(m.Month), m.Category,
			formatInt(m.TotalDemand), formatFloat(m.TotalRevenue), formatFloat(m.TotalProfit), formatInt(m.Stockouts),
		})
	}
	return t.WriteCSV(s.ProcessedPath(FileMonthlyTrends))
}

// LoadMonthlyTrends reads the (year, month, category) aggregation back.
func (s *Store) LoadMonthlyTrends() ([]domain.MonthlyTrend, error) {
	t, err := table.ReadCSV(s.ProcessedPath(FileMonthlyTrends))
	if err != nil {
		return nil, err
	}
	trends := make([]domain.MonthlyTrend, 0, t.Len())
	for i := range t.Rows {
		trends = append(trends, domain.MonthlyTrend{
			Year:         t.Int(i, "year"),
			Month:        t.Int(i, "month"),
			Category:     t.Get(i, "category"),
			TotalDemand:  t.Int(i, "total_demand"),
			TotalRevenue: t.Float(i, "total_revenue"),
			TotalProfit:  t.Float(i, "total_profit"),
			Stockouts:    t.Int(i, "stockouts"),
		})
	}
	return trends, nil
}
