package dataset

import (
	"github.com/andresuchdata/chainsight/internal/domain"
	"github.com/andresuchdata/chainsight/internal/table"
)

// Raw table base names as produced by the upstream source systems.
const (
	RawProducts    = "products"
	RawSuppliers   = "suppliers"
	RawWarehouses  = "warehouses"
	RawSales       = "sales_transactions"
	RawInventory   = "inventory_logs"
	RawSupplyOrder = "supply_orders"
)

// LoadProducts reads the products dimension, validating its schema.
func (s *Store) LoadProducts() ([]domain.Product, error) {
	t, err := s.loadRaw(RawProducts)
	if err != nil {
		return nil, err
	}
	if err := t.Require("product_id", "product_name", "category", "unit_cost", "unit_price", "lead_time_days"); err != nil {
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

// LoadSuppliers reads the suppliers dimension.
func (s *Store) LoadSuppliers() ([]domain.Supplier, error) {
	t, err := s.loadRaw(RawSuppliers)
	if err != nil {
		return nil, err
	}
	if err := t.Require("supplier_id", "supplier_name", "country", "reliability_score"); err != nil {
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

// LoadWarehouses reads the warehouses dimension.
func (s *Store) LoadWarehouses() ([]domain.Warehouse, error) {
	t, err := s.loadRaw(RawWarehouses)
	if err != nil {
		return nil, err
	}
	if err := t.Require("warehouse_id", "location", "capacity"); err != nil {
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

// LoadSales reads the raw sales fact table, dropping duplicate transaction
// IDs (first occurrence wins, matching the source system's guarantee).
func (s *Store) LoadSales() ([]domain.SalesRecord, error) {
	t, err := s.loadRaw(RawSales)
	if err != nil {
		return nil, err
	}
	if err := t.Require("transaction_id", "date", "product_id", "warehouse_id", "quantity_ordered", "quantity_fulfilled"); err != nil {
		return nil, err
	}

	seen := make(map[string]bool, t.Len())
	sales := make([]domain.SalesRecord, 0, t.Len())
	for i := range t.Rows {
		id := t.Get(i, "transaction_id")
		if seen[id] {
			continue
		}
		seen[id] = true
		sales = append(sales, domain.SalesRecord{
			TransactionID:     id,
			Date:              t.Date(i, "date"),
			ProductID:         t.Get(i, "product_id"),
			WarehouseID:       t.Get(i, "warehouse_id"),
			QuantityOrdered:   t.Int(i, "quantity_ordered"),
			QuantityFulfilled: t.Int(i, "quantity_fulfilled"),
		})
	}
	return sales, nil
}

// LoadInventory reads the raw inventory snapshot table.
func (s *Store) LoadInventory() ([]domain.InventorySnapshot, error) {
	t, err := s.loadRaw(RawInventory)
	if err != nil {
		return nil, err
	}
	if err := t.Require("date", "warehouse_id", "product_id", "current_stock", "temperature"); err != nil {
		return nil, err
	}

	snapshots := make([]domain.InventorySnapshot, 0, t.Len())
	for i := range t.Rows {
		snapshots = append(snapshots, domain.InventorySnapshot{
			Date:         t.Date(i, "date"),
			WarehouseID:  t.Get(i, "warehouse_id"),
			ProductID:    t.Get(i, "product_id"),
			CurrentStock: t.Int(i, "current_stock"),
			Temperature:  t.Float(i, "temperature"),
		})
	}
	return snapshots, nil
}

// LoadSupplyOrders reads the raw supply order table, dropping duplicate
// order IDs.
func (s *Store) LoadSupplyOrders() ([]domain.SupplyOrder, error) {
	t, err := s.loadRaw(RawSupplyOrder)
	if err != nil {
		return nil, err
	}
	if err := t.Require("order_id", "order_date", "supplier_id", "product_id", "qty_ordered", "delivery_days_actual"); err != nil {
		return nil, err
	}

	seen := make(map[string]bool, t.Len())
	orders := make([]domain.SupplyOrder, 0, t.Len())
	for i := range t.Rows {
		id := t.Get(i, "order_id")
		if seen[id] {
			continue
		}
		seen[id] = true
		orders = append(orders, domain.SupplyOrder{
			OrderID:            id,
			OrderDate:          t.Date(i, "order_date"),
			SupplierID:         t.Get(i, "supplier_id"),
			ProductID:          t.Get(i, "product_id"),
			QtyOrdered:         t.Int(i, "qty_ordered"),
			DeliveryDaysActual: t.Int(i, "delivery_days_actual"),
		})
	}
	return orders, nil
}

// SaveRawProducts writes the products dimension in source system layout.
func (s *Store) SaveRawProducts(products []domain.Product) error {
	t := table.New(RawProducts, []string{"product_id", "product_name", "category", "unit_cost", "lead_time_days", "unit_price"})
	for _, p := range products {
		t.Append([]string{p.ProductID, p.ProductName, p.Category, formatFloat(p.UnitCost), formatInt(p.LeadTimeDays), formatFloat(p.UnitPrice)})
	}
	return t.WriteCSV(s.RawPath(RawProducts + ".csv"))
}

// SaveRawSuppliers writes the suppliers dimension in source system layout.
func (s *Store) SaveRawSuppliers(suppliers []domain.Supplier) error {
	t := table.New(RawSuppliers, []string{"supplier_id", "supplier_name", "country", "reliability_score"})
	for _, v := range suppliers {
		t.Append([]string{v.SupplierID, v.SupplierName, v.Country, formatFloat(v.ReliabilityScore)})
	}
	return t.WriteCSV(s.RawPath(RawSuppliers + ".csv"))
}

// SaveRawWarehouses writes the warehouses dimension in source system layout.
func (s *Store) SaveRawWarehouses(warehouses []domain.Warehouse) error {
	t := table.New(RawWarehouses, []string{"warehouse_id", "location", "capacity"})
	for _, w := range warehouses {
		t.Append([]string{w.WarehouseID, w.Location, formatInt(w.Capacity)})
	}
	return t.WriteCSV(s.RawPath(RawWarehouses + ".csv"))
}

// SaveRawSales writes the sales fact table in source system layout.
func (s *Store) SaveRawSales(sales []domain.SalesRecord) error {
	t := table.New(RawSales, []string{"transaction_id", "date", "product_id", "warehouse_id", "quantity_ordered", "quantity_fulfilled"})
	for _, r := range sales {
		t.Append([]string{r.TransactionID, formatDate(r.Date), r.ProductID, r.WarehouseID, formatInt(r.QuantityOrdered), formatInt(r.QuantityFulfilled)})
	}
	return t.WriteCSV(s.RawPath(RawSales + ".csv"))
}

// SaveRawInventory writes the inventory snapshot table in source system layout.
func (s *Store) SaveRawInventory(snapshots []domain.InventorySnapshot) error {
	t := table.New(RawInventory, []string{"date", "warehouse_id", "product_id", "current_stock", "temperature"})
	for _, r := range snapshots {
		t.Append([]string{formatDate(r.Date), r.WarehouseID, r.ProductID, formatInt(r.CurrentStock), formatFloat(r.Temperature)})
	}
	return t.WriteCSV(s.RawPath(RawInventory + ".csv"))
}

// SaveRawSupplyOrders writes the supply order table in source system layout.
func (s *Store) SaveRawSupplyOrders(orders []domain.SupplyOrder) error {
	t := table.New(RawSupplyOrder, []string{"order_id", "order_date", "supplier_id", "product_id", "qty_ordered", "delivery_days_actual"})
	for _, r := range orders {
		t.Append([]string{r.OrderID, formatDate(r.OrderDate), r.SupplierID, r.ProductID, formatInt(r.QtyOrdered), formatInt(r.DeliveryDaysActual)})
	}
	return t.WriteCSV(s.RawPath(RawSupplyOrder + ".csv"))
}
