// Package enrich derives the business features the downstream analytics
// consume: calendar fields, money amounts, fulfillment and delivery
// performance, and sensor alert flags.
package enrich

import (
	"github.com/andresuchdata/chainsight/internal/domain"
	"github.com/andresuchdata/chainsight/internal/stats"
)

// Alert thresholds for inventory snapshots.
const (
	TempAlertCelsius  = 25.0
	LowStockThreshold = 100
)

// Sales joins product attributes onto each transaction and derives calendar
// and money features. Transactions referencing an unknown product keep zero
// money amounts and an empty category.
func Sales(sales []domain.SalesRecord, products []domain.Product) []domain.SalesRecord {
	byID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		byID[p.ProductID] = p
	}

	out := make([]domain.SalesRecord, len(sales))
	for i, r := range sales {
		r.Year = r.Date.Year()
		r.Month = int(r.Date.Month())
		r.Quarter = (int(r.Date.Month())-1)/3 + 1
		r.DayOfWeek = r.Date.Weekday().String()
		_, r.WeekOfYear = r.Date.ISOWeek()

		if p, ok := byID[r.ProductID]; ok {
			r.HasProduct = true
			r.UnitPrice = p.UnitPrice
			r.UnitCost = p.UnitCost
			r.Category = p.Category
			r.Revenue = float64(r.QuantityFulfilled) * p.UnitPrice
			r.Cost = float64(r.QuantityFulfilled) * p.UnitCost
			r.Profit = r.Revenue - r.Cost
		}

		if r.QuantityFulfilled < r.QuantityOrdered {
			r.StockoutFlag = 1
		}
		if r.QuantityOrdered > 0 {
			r.FulfillmentRate = stats.Round(float64(r.QuantityFulfilled)/float64(r.QuantityOrdered), 3)
		}

		out[i] = r
	}
	return out
}

// Inventory sets the temperature and low stock alert flags.
func Inventory(snapshots []domain.InventorySnapshot) []domain.InventorySnapshot {
	out := make([]domain.InventorySnapshot, len(snapshots))
	for i, r := range snapshots {
		r.TempAlert = 0
		if r.Temperature > TempAlertCelsius {
			r.TempAlert = 1
		}
		r.LowStockAlert = 0
		if r.CurrentStock < LowStockThreshold {
			r.LowStockAlert = 1
		}
		out[i] = r
	}
	return out
}

// Orders joins supplier and product attributes onto each purchase order and
// derives delivery performance. The product's nominal lead time is the
// delivery expectation; anything beyond it counts as delay.
func Orders(orders []domain.SupplyOrder, suppliers []domain.Supplier, products []domain.Product) []domain.SupplyOrder {
	supplierByID := make(map[string]domain.Supplier, len(suppliers))
	for _, s := range suppliers {
		supplierByID[s.SupplierID] = s
	}
	productByID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		productByID[p.ProductID] = p
	}

	out := make([]domain.SupplyOrder, len(orders))
	for i, r := range orders {
		if s, ok := supplierByID[r.SupplierID]; ok {
			r.SupplierName = s.SupplierName
			r.Country = s.Country
			r.ReliabilityScore = s.ReliabilityScore
		}
		if p, ok := productByID[r.ProductID]; ok {
			r.LeadTimeDays = p.LeadTimeDays
			r.UnitCost = p.UnitCost
			r.OrderValue = float64(r.QtyOrdered) * p.UnitCost
		}
		r.ExpectedDeliveryDays = r.LeadTimeDays
		r.DelayDays = r.DeliveryDaysActual - r.ExpectedDeliveryDays
		r.IsDelayed = 0
		if r.DelayDays > 0 {
			r.IsDelayed = 1
		}
		out[i] = r
	}
	return out
}
