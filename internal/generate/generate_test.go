package generate

import (
	"reflect"
	"testing"
	"time"
)

func TestNewDefaultCounts(t *testing.T) {
	d := New(Options{Seed: 42})

	if got := len(d.Products); got != 50 {
		t.Errorf("products = %d, want 50", got)
	}
	if got := len(d.Suppliers); got != 20 {
		t.Errorf("suppliers = %d, want 20", got)
	}
	if got := len(d.Warehouses); got != 10 {
		t.Errorf("warehouses = %d, want 10", got)
	}
	if got := len(d.Sales); got != 15000 {
		t.Errorf("sales = %d, want 15000", got)
	}
	if got := len(d.Orders); got != 3000 {
		t.Errorf("orders = %d, want 3000", got)
	}
	if len(d.Inventory) == 0 {
		t.Error("inventory should not be empty")
	}
}

func TestNewIDFormats(t *testing.T) {
	d := New(Options{Seed: 1, Products: 3, Suppliers: 2, Warehouses: 2, Transactions: 5, Orders: 4})

	if got := d.Products[2].ProductID; got != "P0003" {
		t.Errorf("product id = %q, want P0003", got)
	}
	if got := d.Suppliers[1].SupplierID; got != "S002" {
		t.Errorf("supplier id = %q, want S002", got)
	}
	if got := d.Suppliers[0].SupplierName; got != "Supplier_A" {
		t.Errorf("supplier name = %q, want Supplier_A", got)
	}
	if got := d.Warehouses[1].WarehouseID; got != "W02" {
		t.Errorf("warehouse id = %q, want W02", got)
	}
	if got := d.Sales[4].TransactionID; got != "TRX000005" {
		t.Errorf("transaction id = %q, want TRX000005", got)
	}
	if got := d.Orders[3].OrderID; got != "PO00004" {
		t.Errorf("order id = %q, want PO00004", got)
	}
}

func TestNewIsDeterministic(t *testing.T) {
	opts := Options{Seed: 7, Products: 10, Suppliers: 4, Warehouses: 3, Transactions: 200, Orders: 50}
	a := New(opts)
	b := New(opts)
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed should produce the same dataset")
	}

	c := New(Options{Seed: 8, Products: 10, Suppliers: 4, Warehouses: 3, Transactions: 200, Orders: 50})
	if reflect.DeepEqual(a.Sales, c.Sales) {
		t.Error("different seeds should produce different sales")
	}
}

func TestNewValueRanges(t *testing.T) {
	d := New(Options{Seed: 42})

	for _, p := range d.Products {
		if p.UnitCost < 10 || p.UnitCost > 500 {
			t.Errorf("%s unit cost %v outside [10, 500]", p.ProductID, p.UnitCost)
		}
		if p.UnitPrice < p.UnitCost {
			t.Errorf("%s priced below cost: %v < %v", p.ProductID, p.UnitPrice, p.UnitCost)
		}
		if p.LeadTimeDays < 3 || p.LeadTimeDays > 20 {
			t.Errorf("%s lead time %d outside [3, 20]", p.ProductID, p.LeadTimeDays)
		}
	}
	for _, s := range d.Suppliers {
		if s.ReliabilityScore < 0.70 || s.ReliabilityScore > 0.99 {
			t.Errorf("%s reliability %v outside [0.70, 0.99]", s.SupplierID, s.ReliabilityScore)
		}
	}
	for _, w := range d.Warehouses {
		if w.Capacity < 5000 || w.Capacity >= 20000 {
			t.Errorf("%s capacity %d outside [5000, 20000)", w.WarehouseID, w.Capacity)
		}
	}
	for _, r := range d.Sales {
		if r.QuantityOrdered < 1 || r.QuantityOrdered > 49 {
			t.Errorf("%s ordered %d outside [1, 49]", r.TransactionID, r.QuantityOrdered)
		}
		if r.QuantityFulfilled > r.QuantityOrdered {
			t.Errorf("%s fulfilled %d exceeds ordered %d", r.TransactionID, r.QuantityFulfilled, r.QuantityOrdered)
		}
	}
	for _, o := range d.Orders {
		if o.QtyOrdered < 100 || o.QtyOrdered >= 500 {
			t.Errorf("%s qty %d outside [100, 500)", o.OrderID, o.QtyOrdered)
		}
		if o.DeliveryDaysActual < 5 || o.DeliveryDaysActual >= 30 {
			t.Errorf("%s delivery days %d outside [5, 30)", o.OrderID, o.DeliveryDaysActual)
		}
	}
}

func TestNewDateWindows(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	d := New(Options{Seed: 3, Products: 5, Suppliers: 2, Warehouses: 2, Transactions: 300, Orders: 40,
		SalesStart: start, SalesEnd: end, StockStart: start})

	for _, r := range d.Sales {
		if r.Date.Before(start) || r.Date.After(end) {
			t.Errorf("%s date %s outside sales window", r.TransactionID, r.Date.Format("2006-01-02"))
		}
	}
	for _, snap := range d.Inventory {
		if snap.Date.Before(start) || snap.Date.After(end) {
			t.Errorf("inventory snapshot %s outside window", snap.Date.Format("2006-01-02"))
		}
	}
}

func TestInventoryCoversEveryWarehouse(t *testing.T) {
	d := New(Options{Seed: 42, Products: 30, Suppliers: 5, Warehouses: 4, Transactions: 100, Orders: 20})

	perWarehouse := map[string]map[string]bool{}
	for _, snap := range d.Inventory {
		if perWarehouse[snap.WarehouseID] == nil {
			perWarehouse[snap.WarehouseID] = map[string]bool{}
		}
		perWarehouse[snap.WarehouseID][snap.ProductID] = true
	}
	if len(perWarehouse) != 4 {
		t.Fatalf("warehouses with stock = %d, want 4", len(perWarehouse))
	}
	for id, products := range perWarehouse {
		if len(products) != 20 {
			t.Errorf("%s stocks %d products, want 20", id, len(products))
		}
	}
}
