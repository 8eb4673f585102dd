// Package aggregate rolls the enriched facts up into the per-product,
// per-warehouse, per-supplier and monthly metric tables.
package aggregate

import (
	"sort"

	"github.com/andresuchdata/chainsight/internal/domain"
	"github.com/andresuchdata/chainsight/internal/stats"
)

// Products aggregates enriched sales per product. Demand statistics use the
// ordered quantity; the sample standard deviation of a single observation
// is zero, and a zero average demand yields a zero variability coefficient.
func Products(sales []domain.SalesRecord, products []domain.Product) []domain.ProductMetrics {
	type acc struct {
		quantities []float64
		fulfilled  int
		revenue    float64
		profit     float64
		stockouts  int
		count      int
	}
	byProduct := make(map[string]*acc)
	for _, r := range sales {
		a := byProduct[r.ProductID]
		if a == nil {
			a = &acc{}
			byProduct[r.ProductID] = a
		}
		a.quantities = append(a.quantities, float64(r.QuantityOrdered))
		a.fulfilled += r.QuantityFulfilled
		a.revenue += r.Revenue
		a.profit += r.Profit
		a.stockouts += r.StockoutFlag
		a.count++
	}

	productByID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		productByID[p.ProductID] = p
	}

	ids := make([]string, 0, len(byProduct))
	for id := range byProduct {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	metrics := make([]domain.ProductMetrics, 0, len(ids))
	for _, id := range ids {
		a := byProduct[id]
		m := domain.ProductMetrics{
			ProductID:        id,
			TotalDemand:      int(stats.Sum(a.quantities)),
			AvgDemand:        stats.Round(stats.Mean(a.quantities), 2),
			DemandStd:        stats.Round(stats.Std(a.quantities), 2),
			TotalFulfilled:   a.fulfilled,
			TotalRevenue:     stats.Round(a.revenue, 2),
			TotalProfit:      stats.Round(a.profit, 2),
			StockoutCount:    a.stockouts,
			TransactionCount: a.count,
		}
		if m.AvgDemand > 0 {
			m.DemandCV = stats.Round(m.DemandStd/m.AvgDemand, 2)
		}
		if m.TransactionCount > 0 {
			m.StockoutRate = stats.Round(float64(m.StockoutCount)/float64(m.TransactionCount), 3)
		}
		if p, ok := productByID[id]; ok {
			m.ProductName = p.ProductName
			m.Category = p.Category
		}
		metrics = append(metrics, m)
	}
	return metrics
}

// Warehouses aggregates enriched sales per warehouse.
func Warehouses(sales []domain.SalesRecord, warehouses []domain.Warehouse) []domain.WarehouseMetrics {
	type acc struct {
		fulfilled int
		revenue   float64
		stockouts int
		count     int
	}
	byWarehouse := make(map[string]*acc)
	for _, r := range sales {
		a := byWarehouse[r.WarehouseID]
		if a == nil {
			a = &acc{}
			byWarehouse[r.WarehouseID] = a
		}
		a.fulfilled += r.QuantityFulfilled
		a.revenue += r.Revenue
		a.stockouts += r.StockoutFlag
		a.count++
	}

	warehouseByID := make(map[string]domain.Warehouse, len(warehouses))
	for _, w := range warehouses {
		warehouseByID[w.WarehouseID] = w
	}

	ids := make([]string, 0, len(byWarehouse))
	for id := range byWarehouse {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	metrics := make([]domain.WarehouseMetrics, 0, len(ids))
	for _, id := range ids {
		a := byWarehouse[id]
		m := domain.WarehouseMetrics{
			WarehouseID:      id,
			TotalFulfilled:   a.fulfilled,
			TotalRevenue:     stats.Round(a.revenue, 2),
			StockoutCount:    a.stockouts,
			TransactionCount: a.count,
		}
		if m.TransactionCount > 0 {
			m.StockoutRate = stats.Round(float64(m.StockoutCount)/float64(m.TransactionCount), 3)
		}
		if w, ok := warehouseByID[id]; ok {
			m.Location = w.Location
			m.Capacity = w.Capacity
		}
		metrics = append(metrics, m)
	}
	return metrics
}

// Suppliers aggregates enriched supply orders per supplier.
func Suppliers(orders []domain.SupplyOrder, suppliers []domain.Supplier) []domain.SupplierMetrics {
	type acc struct {
		orders     int
		qty        int
		value      float64
		delayed    int
		delayDays  []float64
		deliveries []float64
	}
	bySupplier := make(map[string]*acc)
	for _, r := range orders {
		a := bySupplier[r.SupplierID]
		if a == nil {
			a = &acc{}
			bySupplier[r.SupplierID] = a
		}
		a.orders++
		a.qty += r.QtyOrdered
		a.value += r.OrderValue
		a.delayed += r.IsDelayed
		a.delayDays = append(a.delayDays, float64(r.DelayDays))
		a.deliveries = append(a.deliveries, float64(r.DeliveryDaysActual))
	}

	supplierByID := make(map[string]domain.Supplier, len(suppliers))
	for _, s := range suppliers {
		supplierByID[s.SupplierID] = s
	}

	ids := make([]string, 0, len(bySupplier))
	for id := range bySupplier {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	metrics := make([]domain.SupplierMetrics, 0, len(ids))
	for _, id := range ids {
		a := bySupplier[id]
		m := domain.SupplierMetrics{
			SupplierID:      id,
			TotalOrders:     a.orders,
			TotalQty:        a.qty,
			TotalValue:      stats.Round(a.value, 2),
			DelayedOrders:   a.delayed,
			AvgDelay:        stats.Round(stats.Mean(a.delayDays), 2),
			AvgDeliveryTime: stats.Round(stats.Mean(a.deliveries), 2),
		}
		if m.TotalOrders > 0 {
			m.OnTimeRate = stats.Round(1-float64(m.DelayedOrders)/float64(m.TotalOrders), 3)
		}
		if s, ok := supplierByID[id]; ok {
			m.SupplierName = s.SupplierName
			m.Country = s.Country
			m.ReliabilityScore = s.ReliabilityScore
		}
		metrics = append(metrics, m)
	}
	return metrics
}

// Monthly aggregates enriched sales per (year, month, category), ordered
// chronologically and then by category.
func Monthly(sales []domain.SalesRecord) []domain.MonthlyTrend {
	type key struct {
		year, month int
		category    string
	}
	byMonth := make(map[key]*domain.MonthlyTrend)
	for _, r := range sales {
		k := key{r.Year, r.Month, r.Category}
		m := byMonth[k]
		if m == nil {
			m = &domain.MonthlyTrend{Year: r.Year, Month: r.Month, Category: r.Category}
			byMonth[k] = m
		}
		m.TotalDemand += r.QuantityOrdered
		m.TotalRevenue += r.Revenue
		m.TotalProfit += r.Profit
		m.Stockouts += r.StockoutFlag
	}

	trends := make([]domain.MonthlyTrend, 0, len(byMonth))
	for _, m := range byMonth {
		m.TotalRevenue = stats.Round(m.TotalRevenue, 2)
		m.TotalProfit = stats.Round(m.TotalProfit, 2)
		trends = append(trends, *m)
	}
	sort.Slice(trends, func(i, j int) bool {
		if trends[i].Year != trends[j].Year {
			return trends[i].Year < trends[j].Year
		}
		if trends[i].Month != trends[j].Month {
			return trends[i].Month < trends[j].Month
		}
		return trends[i].Category < trends[j].Category
	})
	return trends
}
