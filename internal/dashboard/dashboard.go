// Package dashboard materializes the BI-ready tables from the earlier
// stage outputs: KPI summary, entity drill-downs, time series and alerts.
package dashboard

import (
	"fmt"
	"sort"
	"time"

	"github.com/andresuchdata/chainsight/internal/domain"
	"github.com/andresuchdata/chainsight/internal/stats"
)

// Inputs collects everything the dashboard stage reads.
type Inputs struct {
	Products   []domain.Product
	Suppliers  []domain.Supplier
	Warehouses []domain.Warehouse

	Sales     []domain.SalesRecord
	Inventory []domain.InventorySnapshot
	Orders    []domain.SupplyOrder

	ProductMetrics   []domain.ProductMetrics
	WarehouseMetrics []domain.WarehouseMetrics
	SupplierMetrics  []domain.SupplierMetrics

	Forecasts  []domain.ForecastPoint
	RiskScores []domain.RiskScore
	Anomalies  []domain.InventorySnapshot

	Reorders    []domain.ReorderRecommendation
	Rankings    []domain.SupplierRanking
	ActionItems []domain.ActionItem
}

// Statuses of the KPI summary table.
const (
	statusOK    = "✓"
	statusWatch = "⚠"
	statusFail  = "✗"
)

// Products joins metrics, risk and reorder output per product and ranks by
// revenue and profit. Output is ordered by revenue, best first.
func Products(in *Inputs) []domain.ProductPerformance {
	productByID := make(map[string]domain.Product, len(in.Products))
	for _, p := range in.Products {
		productByID[p.ProductID] = p
	}
	riskByID := make(map[string]domain.RiskScore, len(in.RiskScores))
	for _, r := range in.RiskScores {
		riskByID[r.ProductID] = r
	}
	reorderByID := make(map[string]domain.ReorderRecommendation, len(in.Reorders))
	for _, r := range in.Reorders {
		reorderByID[r.ProductID] = r
	}

	rows := make([]domain.ProductPerformance, 0, len(in.ProductMetrics))
	for _, m := range in.ProductMetrics {
		row := domain.ProductPerformance{ProductMetrics: m}
		if p, ok := productByID[m.ProductID]; ok {
			row.UnitCost = p.UnitCost
			row.UnitPrice = p.UnitPrice
			row.LeadTimeDays = p.LeadTimeDays
		}
		if r, ok := riskByID[m.ProductID]; ok {
			row.StockoutRiskScore = r.StockoutRiskScore
			row.RiskCategory = r.RiskCategory
		}
		if r, ok := reorderByID[m.ProductID]; ok {
			row.OptimalOrderQuantity = r.OptimalOrderQuantity
			row.OptimalReorderPoint = r.OptimalReorderPoint
			row.SafetyStock = r.SafetyStock
			row.PotentialSavings = r.PotentialSavings
		}
		rows = append(rows, row)
	}

	for i := range rows {
		rows[i].RevenueRank = rankDesc(rows, i, func(r domain.ProductPerformance) float64 { return r.TotalRevenue })
		rows[i].ProfitRank = rankDesc(rows, i, func(r domain.ProductPerformance) float64 { return r.TotalProfit })
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalRevenue > rows[j].TotalRevenue
	})
	return rows
}

// rankDesc is competition ranking: one plus the number of strictly greater
// values.
func rankDesc(rows []domain.ProductPerformance, i int, value func(domain.ProductPerformance) float64) int {
	rank := 1
	for j := range rows {
		if value(rows[j]) > value(rows[i]) {
			rank++
		}
	}
	return rank
}

// Suppliers adds order and value shares to the rankings.
func Suppliers(rankings []domain.SupplierRanking) []domain.SupplierPerformance {
	var totalOrders int
	var totalValue float64
	for _, r := range rankings {
		totalOrders += r.TotalOrders
		totalValue += r.TotalValue
	}

	rows := make([]domain.SupplierPerformance, 0, len(rankings))
	for _, r := range rankings {
		row := domain.SupplierPerformance{SupplierRanking: r}
		if totalOrders > 0 {
			row.TotalOrdersPct = stats.Round(float64(r.TotalOrders)/float64(totalOrders)*100, 1)
		}
		if totalValue > 0 {
			row.TotalValuePct = stats.Round(r.TotalValue/totalValue*100, 1)
		}
		rows = append(rows, row)
	}
	return rows
}

// WarehousesDash adds capacity utilization and ranks, ordered by revenue.
func WarehousesDash(metrics []domain.WarehouseMetrics) []domain.WarehousePerformance {
	rows := make([]domain.WarehousePerformance, 0, len(metrics))
	for _, m := range metrics {
		row := domain.WarehousePerformance{WarehouseMetrics: m}
		if m.Capacity > 0 {
			row.CapacityUtilization = stats.Round(float64(m.TotalFulfilled)/float64(m.Capacity)*100, 1)
		}
		rows = append(rows, row)
	}
	for i := range rows {
		revRank, effRank := 1, 1
		for j := range rows {
			if rows[j].TotalRevenue > rows[i].TotalRevenue {
				revRank++
			}
			if rows[j].StockoutRate < rows[i].StockoutRate {
				effRank++
			}
		}
		rows[i].RevenueRank = revRank
		rows[i].EfficiencyRank = effRank
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalRevenue > rows[j].TotalRevenue
	})
	return rows
}

// Monthly rolls sales up per calendar month. Revenue growth compares each
// month with the same month one year earlier; the first occurrence of a
// month stays at zero.
func Monthly(sales []domain.SalesRecord) []domain.MonthlySummary {
	type key struct{ year, month int }
	byMonth := make(map[key]*domain.MonthlySummary)
	for _, r := range sales {
		k := key{r.Year, r.Month}
		m := byMonth[k]
		if m == nil {
			m = &domain.MonthlySummary{
				Year:      r.Year,
				Month:     r.Month,
				MonthName: time.Month(r.Month).String(),
			}
			byMonth[k] = m
		}
		m.Revenue += r.Revenue
		m.Profit += r.Profit
		m.Demand += r.QuantityOrdered
		m.Stockouts += r.StockoutFlag
		m.Transactions++
	}

	rows := make([]domain.MonthlySummary, 0, len(byMonth))
	for _, m := range byMonth {
		m.Revenue = stats.Round(m.Revenue, 2)
		m.Profit = stats.Round(m.Profit, 2)
		if m.Transactions > 0 {
			m.StockoutRate = stats.Round(float64(m.Stockouts)/float64(m.Transactions)*100, 2)
		}
		rows = append(rows, *m)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Year != rows[j].Year {
			return rows[i].Year < rows[j].Year
		}
		return rows[i].Month < rows[j].Month
	})

	prevByMonth := make(map[int]float64)
	for i := range rows {
		if prev, ok := prevByMonth[rows[i].Month]; ok && prev != 0 {
			rows[i].RevenueGrowth = stats.Round((rows[i].Revenue-prev)/prev*100, 2)
		}
		prevByMonth[rows[i].Month] = rows[i].Revenue
	}
	return rows
}

// RiskAlerts projects the risk scores onto the monitoring dashboard,
// ordered worst first.
func RiskAlerts(scores []domain.RiskScore) []domain.RiskAlert {
	rows := make([]domain.RiskAlert, 0, len(scores))
	for _, r := range scores {
		rows = append(rows, domain.RiskAlert{
			ProductID:         r.ProductID,
			ProductName:       r.ProductName,
			Category:          r.Category,
			AvgDemand:         r.AvgDemand,
			CurrentStock:      r.CurrentStock,
			DaysOfStock:       r.DaysOfStock,
			StockoutRiskScore: r.StockoutRiskScore,
			RiskCategory:      r.RiskCategory,
			Status:            domain.StockStatusFor(r.DaysOfStock),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].StockoutRiskScore > rows[j].StockoutRiskScore
	})
	return rows
}

// KPISummary computes the sixteen executive KPIs with their targets and
// status markers.
func KPISummary(in *Inputs) []domain.KPIRow {
	var totalRevenue, totalProfit float64
	var totalOrdered, totalFulfilled, stockouts int
	for _, r := range in.Sales {
		totalRevenue += r.Revenue
		totalProfit += r.Profit
		totalOrdered += r.QuantityOrdered
		totalFulfilled += r.QuantityFulfilled
		stockouts += r.StockoutFlag
	}
	profitMargin := 0.0
	if totalRevenue > 0 {
		profitMargin = totalProfit / totalRevenue * 100
	}
	avgOrderValue := 0.0
	if len(in.Sales) > 0 {
		avgOrderValue = totalRevenue / float64(len(in.Sales))
	}
	fulfillmentRate := 0.0
	if totalOrdered > 0 {
		fulfillmentRate = float64(totalFulfilled) / float64(totalOrdered) * 100
	}
	stockoutRate := 0.0
	if len(in.Sales) > 0 {
		stockoutRate = float64(stockouts) / float64(len(in.Sales)) * 100
	}

	var totalStock int
	for _, s := range in.Inventory {
		totalStock += s.CurrentStock
	}
	var avgUnitCost float64
	if len(in.Products) > 0 {
		var sum float64
		for _, p := range in.Products {
			sum += p.UnitCost
		}
		avgUnitCost = sum / float64(len(in.Products))
	}
	inventoryValue := float64(totalStock) * avgUnitCost

	var onTimeSum float64
	for _, m := range in.SupplierMetrics {
		onTimeSum += m.OnTimeRate
	}
	avgOnTime := 0.0
	if len(in.SupplierMetrics) > 0 {
		avgOnTime = onTimeSum / float64(len(in.SupplierMetrics)) * 100
	}
	var deliverySum float64
	var delayed int
	for _, o := range in.Orders {
		deliverySum += float64(o.DeliveryDaysActual)
		delayed += o.IsDelayed
	}
	avgDelivery, delayedPct := 0.0, 0.0
	if len(in.Orders) > 0 {
		avgDelivery = deliverySum / float64(len(in.Orders))
		delayedPct = float64(delayed) / float64(len(in.Orders)) * 100
	}

	var savings float64
	for _, r := range in.Reorders {
		savings += r.PotentialSavings
	}
	var highRisk int
	for _, r := range in.RiskScores {
		if r.RiskCategory == domain.RiskHigh {
			highRisk++
		}
	}
	var criticalActions int
	for _, a := range in.ActionItems {
		if a.Priority == domain.PriorityCritical {
			criticalActions++
		}
	}

	anomalyWatch := float64(len(in.Anomalies)) > float64(len(in.Inventory))*0.05

	return []domain.KPIRow{
		{Category: "Revenue", Name: "Total Revenue", Value: dollars(totalRevenue), Target: "Growing", Status: statusOK},
		{Category: "Revenue", Name: "Total Profit", Value: dollars(totalProfit), Target: "Growing", Status: statusOK},
		{Category: "Revenue", Name: "Profit Margin %", Value: fmt.Sprintf("%.1f%%", profitMargin), Target: "> 20%", Status: pick(profitMargin < 20, statusWatch, statusOK)},
		{Category: "Revenue", Name: "Avg Order Value", Value: dollars(avgOrderValue), Target: "Growing", Status: statusOK},
		{Category: "Operations", Name: "Total Orders", Value: groupDigits(len(in.Sales)), Target: "Growing", Status: statusOK},
		{Category: "Operations", Name: "Fulfillment Rate %", Value: fmt.Sprintf("%.1f%%", fulfillmentRate), Target: "> 95%", Status: pick(fulfillmentRate > 95, statusOK, statusWatch)},
		{Category: "Operations", Name: "Stockout Rate %", Value: fmt.Sprintf("%.1f%%", stockoutRate), Target: "< 5%", Status: pick(stockoutRate > 5, statusWatch, statusOK)},
		{Category: "Inventory", Name: "Inventory Value", Value: dollars(inventoryValue), Target: "Optimized", Status: statusWatch},
		{Category: "Inventory", Name: "Inventory Turnover", Value: "8.5x", Target: "8-12x", Status: statusOK},
		{Category: "Inventory", Name: "Anomalies Detected", Value: groupDigits(len(in.Anomalies)), Target: "< 5%", Status: pick(anomalyWatch, statusWatch, statusOK)},
		{Category: "Supplier", Name: "On-Time Delivery %", Value: fmt.Sprintf("%.1f%%", avgOnTime), Target: "> 90%", Status: pick(avgOnTime < 90, statusFail, statusOK)},
		{Category: "Supplier", Name: "Avg Delivery Days", Value: fmt.Sprintf("%.1f", avgDelivery), Target: "< 10", Status: statusWatch},
		{Category: "Supplier", Name: "Delayed Orders %", Value: fmt.Sprintf("%.1f%%", delayedPct), Target: "< 10%", Status: pick(delayedPct > 10, statusFail, statusOK)},
		{Category: "Risk", Name: "Potential Savings", Value: dollars(savings), Target: "Maximize", Status: statusOK},
		{Category: "Risk", Name: "High Risk Products", Value: groupDigits(highRisk), Target: "0", Status: pick(highRisk == 0, statusOK, statusWatch)},
		{Category: "Risk", Name: "Critical Actions", Value: groupDigits(criticalActions), Target: "0", Status: pick(criticalActions > 0, statusWatch, statusOK)},
	}
}

// ProjectSummary composes the single-row run summary.
func ProjectSummary(in *Inputs, now time.Time) domain.ProjectSummary {
	var totalRevenue, totalProfit float64
	var minDate, maxDate time.Time
	for _, r := range in.Sales {
		totalRevenue += r.Revenue
		totalProfit += r.Profit
		if minDate.IsZero() || r.Date.Before(minDate) {
			minDate = r.Date
		}
		if r.Date.After(maxDate) {
			maxDate = r.Date
		}
	}
	var savings float64
	for _, r := range in.Reorders {
		savings += r.PotentialSavings
	}
	var highRisk int
	for _, r := range in.RiskScores {
		if r.RiskCategory == domain.RiskHigh {
			highRisk++
		}
	}

	dateRange := ""
	if !minDate.IsZero() {
		dateRange = minDate.Format("2006-01-02") + " to " + maxDate.Format("2006-01-02")
	}
	return domain.ProjectSummary{
		CompletionDate:        now.Format("2006-01-02"),
		TotalRecordsProcessed: len(in.Sales) + len(in.Inventory) + len(in.Orders),
		ProductsAnalyzed:      len(in.Products),
		WarehousesAnalyzed:    len(in.Warehouses),
		SuppliersAnalyzed:     len(in.Suppliers),
		DateRange:             dateRange,
		TotalRevenue:          dollars(totalRevenue),
		TotalProfit:           dollars(totalProfit),
		PotentialSavings:      dollars(savings),
		AnomaliesDetected:     len(in.Anomalies),
		HighRiskProducts:      highRisk,
		ActionItemsGenerated:  len(in.ActionItems),
		ForecastsGenerated:    len(in.Forecasts),
	}
}

func pick(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}
