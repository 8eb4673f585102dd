package dashboard

import (
	"strings"
	"testing"
	"time"

	"github.com/andresuchdata/chainsight/internal/domain"
)

func TestProductsRanksByCompetition(t *testing.T) {
	in := &Inputs{
		ProductMetrics: []domain.ProductMetrics{
			{ProductID: "P0001", TotalRevenue: 100, TotalProfit: 50},
			{ProductID: "P0002", TotalRevenue: 300, TotalProfit: 10},
			{ProductID: "P0003", TotalRevenue: 100, TotalProfit: 80},
		},
		Products: []domain.Product{
			{ProductID: "P0001", UnitCost: 5, UnitPrice: 12, LeadTimeDays: 4},
		},
		RiskScores: []domain.RiskScore{
			{ProductID: "P0002", StockoutRiskScore: 0.7, RiskCategory: domain.RiskHigh},
		},
		Reorders: []domain.ReorderRecommendation{
			{ProductID: "P0002", OptimalOrderQuantity: 40, SafetyStock: 8},
		},
	}

	rows := Products(in)
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	if rows[0].ProductID != "P0002" {
		t.Errorf("first by revenue = %s, want P0002", rows[0].ProductID)
	}
	if rows[0].RevenueRank != 1 {
		t.Errorf("P0002 revenue rank = %d, want 1", rows[0].RevenueRank)
	}
	// P0001 and P0003 tie on revenue: both rank 2 under competition ranking.
	if rows[1].RevenueRank != 2 || rows[2].RevenueRank != 2 {
		t.Errorf("tied revenue ranks = %d, %d, want 2, 2", rows[1].RevenueRank, rows[2].RevenueRank)
	}
	if rows[0].RiskCategory != domain.RiskHigh || rows[0].OptimalOrderQuantity != 40 {
		t.Errorf("risk/reorder join missing on P0002")
	}
	for _, r := range rows {
		if r.ProductID == "P0001" && (r.UnitPrice != 12 || r.LeadTimeDays != 4) {
			t.Errorf("product join missing on P0001")
		}
	}
}

func TestSuppliersShares(t *testing.T) {
	rankings := []domain.SupplierRanking{
		{SupplierMetrics: domain.SupplierMetrics{SupplierID: "S001", TotalOrders: 30, TotalValue: 750}},
		{SupplierMetrics: domain.SupplierMetrics{SupplierID: "S002", TotalOrders: 10, TotalValue: 250}},
	}
	rows := Suppliers(rankings)
	if rows[0].TotalOrdersPct != 75 || rows[0].TotalValuePct != 75 {
		t.Errorf("S001 shares = %v/%v, want 75/75", rows[0].TotalOrdersPct, rows[0].TotalValuePct)
	}
	if rows[1].TotalOrdersPct != 25 {
		t.Errorf("S002 order share = %v, want 25", rows[1].TotalOrdersPct)
	}
}

func TestMonthlyGrowthComparesSameMonthPriorYear(t *testing.T) {
	mk := func(year, month int, revenue float64) domain.SalesRecord {
		return domain.SalesRecord{Year: year, Month: month, Revenue: revenue, QuantityOrdered: 1}
	}
	sales := []domain.SalesRecord{
		mk(2023, 1, 100),
		mk(2023, 2, 200),
		mk(2024, 1, 150),
		mk(2024, 2, 150),
	}

	rows := Monthly(sales)
	if len(rows) != 4 {
		t.Fatalf("got %d rows, want 4", len(rows))
	}
	if rows[0].Year != 2023 || rows[0].Month != 1 || rows[0].MonthName != "January" {
		t.Errorf("first row = %d-%d %q", rows[0].Year, rows[0].Month, rows[0].MonthName)
	}
	// First occurrence of a month has no comparison.
	if rows[0].RevenueGrowth != 0 || rows[1].RevenueGrowth != 0 {
		t.Errorf("2023 growth = %v/%v, want zeros", rows[0].RevenueGrowth, rows[1].RevenueGrowth)
	}
	if rows[2].RevenueGrowth != 50 {
		t.Errorf("Jan 2024 growth = %v, want 50", rows[2].RevenueGrowth)
	}
	if rows[3].RevenueGrowth != -25 {
		t.Errorf("Feb 2024 growth = %v, want -25", rows[3].RevenueGrowth)
	}
}

func TestMonthlyStockoutRatePercent(t *testing.T) {
	sales := []domain.SalesRecord{
		{Year: 2024, Month: 3, QuantityOrdered: 1, StockoutFlag: 1},
		{Year: 2024, Month: 3, QuantityOrdered: 1},
		{Year: 2024, Month: 3, QuantityOrdered: 1},
	}
	rows := Monthly(sales)
	if rows[0].StockoutRate != 33.33 {
		t.Errorf("StockoutRate = %v, want 33.33", rows[0].StockoutRate)
	}
}

func TestWarehousesDashUtilization(t *testing.T) {
	metrics := []domain.WarehouseMetrics{
		{WarehouseID: "W01", TotalFulfilled: 4000, TotalRevenue: 900, Capacity: 8000},
		{WarehouseID: "W02", TotalFulfilled: 100, TotalRevenue: 1500, Capacity: 0},
	}
	rows := WarehousesDash(metrics)

	var w1, w2 domain.WarehousePerformance
	for _, r := range rows {
		switch r.WarehouseID {
		case "W01":
			w1 = r
		case "W02":
			w2 = r
		}
	}
	if w1.CapacityUtilization != 50 {
		t.Errorf("W01 utilization = %v, want 50", w1.CapacityUtilization)
	}
	if w2.CapacityUtilization != 0 {
		t.Errorf("zero capacity utilization = %v, want 0", w2.CapacityUtilization)
	}
	if w2.RevenueRank != 1 || w1.RevenueRank != 2 {
		t.Errorf("revenue ranks = %d/%d", w1.RevenueRank, w2.RevenueRank)
	}
}

func TestRiskAlertsStatusAndOrder(t *testing.T) {
	scores := []domain.RiskScore{
		{ProductID: "P0001", DaysOfStock: 20, StockoutRiskScore: 0.2},
		{ProductID: "P0002", DaysOfStock: 3, StockoutRiskScore: 0.9},
		{ProductID: "P0003", DaysOfStock: 10, StockoutRiskScore: 0.5},
	}
	rows := RiskAlerts(scores)

	if rows[0].ProductID != "P0002" || rows[0].Status != domain.StockCritical {
		t.Errorf("first alert = %s %q, want P0002 Critical", rows[0].ProductID, rows[0].Status)
	}
	if rows[1].Status != domain.StockWarning {
		t.Errorf("10 days of stock = %q, want Warning", rows[1].Status)
	}
	if rows[2].Status != domain.StockNormal {
		t.Errorf("20 days of stock = %q, want Normal", rows[2].Status)
	}
}

func kpiInputs() *Inputs {
	return &Inputs{
		Products: []domain.Product{{ProductID: "P0001", UnitCost: 10}},
		Sales: []domain.SalesRecord{
			{Date: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), QuantityOrdered: 10, QuantityFulfilled: 10, Revenue: 1000, Profit: 300},
			{Date: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), QuantityOrdered: 10, QuantityFulfilled: 8, Revenue: 800, Profit: 160, StockoutFlag: 1},
		},
		Inventory: []domain.InventorySnapshot{{CurrentStock: 500}},
		Orders:    []domain.SupplyOrder{{DeliveryDaysActual: 12, IsDelayed: 1}, {DeliveryDaysActual: 8}},
		SupplierMetrics: []domain.SupplierMetrics{
			{SupplierID: "S001", OnTimeRate: 0.95},
		},
		RiskScores:  []domain.RiskScore{{ProductID: "P0001", RiskCategory: domain.RiskHigh}},
		Reorders:    []domain.ReorderRecommendation{{ProductID: "P0001", PotentialSavings: 120.5}},
		ActionItems: []domain.ActionItem{{Priority: domain.PriorityCritical}},
	}
}

func TestKPISummarySixteenRows(t *testing.T) {
	rows := KPISummary(kpiInputs())
	if len(rows) != 16 {
		t.Fatalf("got %d KPI rows, want 16", len(rows))
	}

	byName := make(map[string]domain.KPIRow)
	for _, r := range rows {
		byName[r.Name] = r
	}

	if r := byName["Total Revenue"]; r.Value != "$1,800.00" || r.Status != statusOK {
		t.Errorf("Total Revenue = %q %q", r.Value, r.Status)
	}
	// Margin 460/1800 = 25.6% clears the 20% target.
	if r := byName["Profit Margin %"]; r.Value != "25.6%" || r.Status != statusOK {
		t.Errorf("Profit Margin = %q %q", r.Value, r.Status)
	}
	// Fulfillment 18/20 = 90% misses the 95% target.
	if r := byName["Fulfillment Rate %"]; r.Value != "90.0%" || r.Status != statusWatch {
		t.Errorf("Fulfillment Rate = %q %q", r.Value, r.Status)
	}
	// Stockout rate 1 of 2 transactions breaches the 5% ceiling.
	if r := byName["Stockout Rate %"]; r.Value != "50.0%" || r.Status != statusWatch {
		t.Errorf("Stockout Rate = %q %q", r.Value, r.Status)
	}
	if r := byName["Inventory Value"]; r.Value != "$5,000.00" {
		t.Errorf("Inventory Value = %q", r.Value)
	}
	if r := byName["On-Time Delivery %"]; r.Value != "95.0%" || r.Status != statusOK {
		t.Errorf("On-Time Delivery = %q %q", r.Value, r.Status)
	}
	if r := byName["Delayed Orders %"]; r.Value != "50.0%" || r.Status != statusFail {
		t.Errorf("Delayed Orders = %q %q", r.Value, r.Status)
	}
	if r := byName["High Risk Products"]; r.Value != "1" || r.Status != statusWatch {
		t.Errorf("High Risk Products = %q %q", r.Value, r.Status)
	}
	if r := byName["Critical Actions"]; r.Value != "1" || r.Status != statusWatch {
		t.Errorf("Critical Actions = %q %q", r.Value, r.Status)
	}
}

func TestProjectSummary(t *testing.T) {
	in := kpiInputs()
	now := time.Date(2025, 11, 30, 12, 0, 0, 0, time.UTC)

	p := ProjectSummary(in, now)
	if p.CompletionDate != "2025-11-30" {
		t.Errorf("CompletionDate = %q", p.CompletionDate)
	}
	if p.TotalRecordsProcessed != 5 {
		t.Errorf("TotalRecordsProcessed = %d, want 5", p.TotalRecordsProcessed)
	}
	if !strings.HasPrefix(p.DateRange, "2024-01-05") || !strings.HasSuffix(p.DateRange, "2024-03-05") {
		t.Errorf("DateRange = %q", p.DateRange)
	}
	if p.TotalRevenue != "$1,800.00" || p.HighRiskProducts != 1 {
		t.Errorf("summary = %q, %d high risk", p.TotalRevenue, p.HighRiskProducts)
	}
}
