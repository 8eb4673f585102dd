package optimize

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/andresuchdata/chainsight/internal/domain"
)

// Action item categories.
const (
	CategoryStockout = "Stockout Prevention"
	CategoryQuality  = "Quality Alert"
	CategorySupplier = "Supplier Review"
	CategoryCost     = "Cost Optimization"
)

// ActionItems assembles the prioritized action list: the worst stockout
// risks, the hottest anomalous snapshots, the suppliers under review and
// the biggest overstock savings.
func ActionItems(recs []domain.ReorderRecommendation, anomalies []domain.InventorySnapshot, rankings []domain.SupplierRanking) []domain.ActionItem {
	var items []domain.ActionItem
	items = append(items, stockoutActions(recs)...)
	items = append(items, qualityActions(anomalies)...)
	items = append(items, supplierActions(rankings)...)
	items = append(items, costActions(recs)...)
	return items
}

func stockoutActions(recs []domain.ReorderRecommendation) []domain.ActionItem {
	var pool []domain.ReorderRecommendation
	for _, r := range recs {
		if r.RiskCategory == domain.RiskHigh {
			pool = append(pool, r)
		}
	}
	if len(pool) == 0 {
		for _, r := range recs {
			if r.RiskCategory == domain.RiskMedium {
				pool = append(pool, r)
			}
		}
	}
	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].StockoutRiskScore > pool[j].StockoutRiskScore
	})
	if len(pool) > 5 {
		pool = pool[:5]
	}

	items := make([]domain.ActionItem, 0, len(pool))
	for _, r := range pool {
		priority := domain.PriorityHigh
		if r.RiskCategory == domain.RiskHigh {
			priority = domain.PriorityCritical
		}
		orderQty := r.OptimalOrderQuantity
		if monthly := int(r.AvgDemand * 30); monthly > orderQty {
			orderQty = monthly
		}
		items = append(items, domain.ActionItem{
			Priority:        priority,
			Category:        CategoryStockout,
			EntityID:        r.ProductID,
			EntityName:      r.ProductName,
			Action:          fmt.Sprintf("Review stock levels - Order %d units if needed", orderQty),
			CurrentStock:    int(r.CurrentStock),
			RiskScore:       r.StockoutRiskScore,
			EstimatedImpact: fmt.Sprintf("Prevent $%s in potential lost sales", groupDigits(int(r.AvgDemand*30*r.UnitCost))),
		})
	}
	return items
}

func qualityActions(anomalies []domain.InventorySnapshot) []domain.ActionItem {
	if len(anomalies) == 0 {
		return nil
	}

	var hot []domain.InventorySnapshot
	for _, a := range anomalies {
		if a.TempAlert == 1 {
			hot = append(hot, a)
		}
	}
	if len(hot) > 0 {
		sort.SliceStable(hot, func(i, j int) bool {
			return hot[i].Temperature > hot[j].Temperature
		})
	} else {
		hot = anomalies
	}
	if len(hot) > 3 {
		hot = hot[:3]
	}

	items := make([]domain.ActionItem, 0, len(hot))
	for _, a := range hot {
		items = append(items, domain.ActionItem{
			Priority:        domain.PriorityHigh,
			Category:        CategoryQuality,
			EntityID:        a.ProductID,
			EntityName:      "Warehouse " + a.WarehouseID,
			Action:          fmt.Sprintf("Inspect storage conditions - Temp: %.1f°C", a.Temperature),
			CurrentStock:    a.CurrentStock,
			RiskScore:       0.8,
			EstimatedImpact: "Prevent product quality issues",
		})
	}
	return items
}

func supplierActions(rankings []domain.SupplierRanking) []domain.ActionItem {
	var items []domain.ActionItem
	for _, r := range rankings {
		if r.Recommendation != domain.TierReview {
			continue
		}
		items = append(items, domain.ActionItem{
			Priority:        domain.PriorityMedium,
			Category:        CategorySupplier,
			EntityID:        r.SupplierID,
			EntityName:      r.SupplierName,
			Action:          fmt.Sprintf("Review contract - On-time rate: %.1f%%", r.OnTimeRate*100),
			RiskScore:       1 - r.PerformanceScore,
			EstimatedImpact: "Improve delivery reliability",
		})
		if len(items) == 3 {
			break
		}
	}
	return items
}

func costActions(recs []domain.ReorderRecommendation) []domain.ActionItem {
	sorted := make([]domain.ReorderRecommendation, len(recs))
	copy(sorted, recs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PotentialSavings > sorted[j].PotentialSavings
	})
	if len(sorted) > 3 {
		sorted = sorted[:3]
	}

	var items []domain.ActionItem
	for _, r := range sorted {
		if r.PotentialSavings <= 0 {
			continue
		}
		items = append(items, domain.ActionItem{
			Priority:        domain.PriorityMedium,
			Category:        CategoryCost,
			EntityID:        r.ProductID,
			EntityName:      r.ProductName,
			Action:          fmt.Sprintf("Optimize stock to %d units", r.OptimalReorderPoint),
			CurrentStock:    int(r.CurrentStock),
			RiskScore:       0.3,
			EstimatedImpact: fmt.Sprintf("Save $%s/year", money(r.PotentialSavings)),
		})
	}
	return items
}

// CountByPriority tallies items per priority label.
func CountByPriority(items []domain.ActionItem) map[string]int {
	counts := make(map[string]int)
	for _, a := range items {
		counts[a.Priority]++
	}
	return counts
}

// groupDigits renders n with thousands separators.
func groupDigits(n int) string {
	s := strconv.Itoa(n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, d := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// money renders v as a grouped amount with two decimals.
func money(v float64) string {
	whole := int(math.Abs(v))
	cents := int(math.Round((math.Abs(v) - float64(whole)) * 100))
	if cents == 100 {
		whole++
		cents = 0
	}
	s := fmt.Sprintf("%s.%02d", groupDigits(whole), cents)
	if v < 0 {
		return "-" + s
	}
	return s
}
