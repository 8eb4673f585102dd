package aggregate

import (
	"testing"
	"time"

	"github.com/andresuchdata/chainsight/internal/domain"
)

func salesRow(day int, productID, warehouseID string, ordered, fulfilled int, revenue, profit float64) domain.SalesRecord {
	d := time.Date(2024, time.March, day, 0, 0, 0, 0, time.UTC)
	r := domain.SalesRecord{
		Date: d, ProductID: productID, WarehouseID: warehouseID,
		QuantityOrdered: ordered, QuantityFulfilled: fulfilled,
		Year: d.Year(), Month: int(d.Month()),
		Revenue: revenue, Profit: profit,
	}
	if fulfilled < ordered {
		r.StockoutFlag = 1
	}
	return r
}

func TestProducts(t *testing.T) {
	products := []domain.Product{
		{ProductID: "P0001", ProductName: "Widget", Category: "Electronics"},
	}
	sales := []domain.SalesRecord{
		salesRow(1, "P0001", "W01", 10, 10, 100, 40),
		salesRow(2, "P0001", "W01", 20, 15, 150, 60),
		salesRow(3, "P0001", "W02", 30, 30, 300, 120),
	}

	metrics := Products(sales, products)
	if len(metrics) != 1 {
		t.Fatalf("got %d products, want 1", len(metrics))
	}
	m := metrics[0]

	if m.TotalDemand != 60 || m.AvgDemand != 20 {
		t.Errorf("demand = %d avg %v, want 60 avg 20", m.TotalDemand, m.AvgDemand)
	}
	// Sample std of {10, 20, 30} is 10.
	if m.DemandStd != 10 {
		t.Errorf("DemandStd = %v, want 10", m.DemandStd)
	}
	if m.DemandCV != 0.5 {
		t.Errorf("DemandCV = %v, want 0.5", m.DemandCV)
	}
	if m.TotalFulfilled != 55 || m.TotalRevenue != 550 || m.TotalProfit != 220 {
		t.Errorf("totals = %d/%v/%v, want 55/550/220", m.TotalFulfilled, m.TotalRevenue, m.TotalProfit)
	}
	if m.StockoutCount != 1 || m.StockoutRate != 0.333 {
		t.Errorf("stockouts = %d rate %v, want 1 rate 0.333", m.StockoutCount, m.StockoutRate)
	}
	if m.ProductName != "Widget" || m.Category != "Electronics" {
		t.Errorf("dimension join missing: %q/%q", m.ProductName, m.Category)
	}
}

func TestProductsZeroDemandHasZeroCV(t *testing.T) {
	sales := []domain.SalesRecord{
		salesRow(1, "P0002", "W01", 0, 0, 0, 0),
		salesRow(2, "P0002", "W01", 0, 0, 0, 0),
	}
	m := Products(sales, nil)[0]
	if m.AvgDemand != 0 || m.DemandCV != 0 {
		t.Errorf("zero demand: avg %v cv %v, want zeros", m.AvgDemand, m.DemandCV)
	}
}

func TestProductsSortedByID(t *testing.T) {
	sales := []domain.SalesRecord{
		salesRow(1, "P0009", "W01", 1, 1, 10, 5),
		salesRow(1, "P0001", "W01", 1, 1, 10, 5),
		salesRow(1, "P0005", "W01", 1, 1, 10, 5),
	}
	metrics := Products(sales, nil)
	want := []string{"P0001", "P0005", "P0009"}
	for i, id := range want {
		if metrics[i].ProductID != id {
			t.Fatalf("metrics[%d] = %s, want %s", i, metrics[i].ProductID, id)
		}
	}
}

func TestWarehouses(t *testing.T) {
	warehouses := []domain.Warehouse{
		{WarehouseID: "W01", Location: "North", Capacity: 8000},
	}
	sales := []domain.SalesRecord{
		salesRow(1, "P0001", "W01", 10, 8, 80, 30),
		salesRow(2, "P0002", "W01", 10, 10, 100, 40),
	}
	m := Warehouses(sales, warehouses)[0]
	if m.TotalFulfilled != 18 || m.TotalRevenue != 180 {
		t.Errorf("totals = %d/%v, want 18/180", m.TotalFulfilled, m.TotalRevenue)
	}
	if m.StockoutRate != 0.5 {
		t.Errorf("StockoutRate = %v, want 0.5", m.StockoutRate)
	}
	if m.Location != "North" || m.Capacity != 8000 {
		t.Errorf("dimension join missing: %q/%d", m.Location, m.Capacity)
	}
}

func TestSuppliers(t *testing.T) {
	suppliers := []domain.Supplier{
		{SupplierID: "S001", SupplierName: "Supplier_A", Country: "USA", ReliabilityScore: 0.85},
	}
	orders := []domain.SupplyOrder{
		{SupplierID: "S001", QtyOrdered: 100, OrderValue: 1000, DeliveryDaysActual: 12, DelayDays: 2, IsDelayed: 1},
		{SupplierID: "S001", QtyOrdered: 200, OrderValue: 2000, DeliveryDaysActual: 8, DelayDays: -2, IsDelayed: 0},
		{SupplierID: "S001", QtyOrdered: 300, OrderValue: 3000, DeliveryDaysActual: 10, DelayDays: 0, IsDelayed: 0},
	}
	m := Suppliers(orders, suppliers)[0]

	if m.TotalOrders != 3 || m.TotalQty != 600 || m.TotalValue != 6000 {
		t.Errorf("totals = %d/%d/%v", m.TotalOrders, m.TotalQty, m.TotalValue)
	}
	if m.DelayedOrders != 1 || m.OnTimeRate != 0.667 {
		t.Errorf("delays = %d rate %v, want 1 rate 0.667", m.DelayedOrders, m.OnTimeRate)
	}
	if m.AvgDelay != 0 {
		t.Errorf("AvgDelay = %v, want 0", m.AvgDelay)
	}
	if m.AvgDeliveryTime != 10 {
		t.Errorf("AvgDeliveryTime = %v, want 10", m.AvgDeliveryTime)
	}
	if m.ReliabilityScore != 0.85 {
		t.Errorf("dimension join missing: reliability %v", m.ReliabilityScore)
	}
}

func TestMonthlyOrderedChronologically(t *testing.T) {
	mk := func(year, month int, category string, demand int) domain.SalesRecord {
		return domain.SalesRecord{
			Year: year, Month: month, Category: category,
			QuantityOrdered: demand, Revenue: float64(demand) * 10,
		}
	}
	sales := []domain.SalesRecord{
		mk(2024, 2, "Food", 5),
		mk(2023, 12, "Food", 3),
		mk(2024, 2, "Electronics", 7),
		mk(2024, 2, "Food", 2),
	}

	trends := Monthly(sales)
	if len(trends) != 3 {
		t.Fatalf("got %d groups, want 3", len(trends))
	}
	if trends[0].Year != 2023 || trends[0].Month != 12 {
		t.Errorf("first group = %d-%d, want 2023-12", trends[0].Year, trends[0].Month)
	}
	if trends[1].Category != "Electronics" || trends[2].Category != "Food" {
		t.Errorf("categories within a month should be sorted: %q, %q", trends[1].Category, trends[2].Category)
	}
	if trends[2].TotalDemand != 7 || trends[2].TotalRevenue != 70 {
		t.Errorf("2024-02 Food = %d/%v, want 7/70", trends[2].TotalDemand, trends[2].TotalRevenue)
	}
}
