// Package risk scores each product's stockout exposure on a 0 to 1 scale
// from its demand history, current stock position and replenishment lead
// time.
package risk

import (
	"sort"

	"github.com/andresuchdata/chainsight/internal/domain"
	"github.com/andresuchdata/chainsight/internal/stats"
)

// Component weights of the composite score.
const (
	weightStockoutRate = 0.30
	weightVolatility   = 0.25
	weightStockCover   = 0.25
	weightLeadTime     = 0.20

	volatilityCap  = 2.0
	daysOfStockCap = 365.0
	coverHorizon   = 30.0
)

// LatestStock maps each product to the stock level of its chronologically
// last snapshot. Ties on the date keep the later row, matching the ordering
// of the snapshot extract.
func LatestStock(snapshots []domain.InventorySnapshot) map[string]float64 {
	type obs struct {
		date  int64
		idx   int
		stock float64
	}
	latest := make(map[string]obs)
	for i, s := range snapshots {
		cur, ok := latest[s.ProductID]
		u := s.Date.Unix()
		if !ok || u > cur.date || (u == cur.date && i > cur.idx) {
			latest[s.ProductID] = obs{date: u, idx: i, stock: float64(s.CurrentStock)}
		}
	}
	out := make(map[string]float64, len(latest))
	for id, o := range latest {
		out[id] = o.stock
	}
	return out
}

// Score computes the composite risk assessment per product. Products with
// no snapshot default to zero stock. The lead time component is normalized
// by the longest lead time across the scored products.
func Score(metrics []domain.ProductMetrics, snapshots []domain.InventorySnapshot, products []domain.Product) []domain.RiskScore {
	stock := LatestStock(snapshots)
	productByID := make(map[string]domain.Product, len(products))
	maxLead := 0
	for _, p := range products {
		productByID[p.ProductID] = p
	}
	for _, m := range metrics {
		if p, ok := productByID[m.ProductID]; ok && p.LeadTimeDays > maxLead {
			maxLead = p.LeadTimeDays
		}
	}

	scores := make([]domain.RiskScore, 0, len(metrics))
	for _, m := range metrics {
		p := productByID[m.ProductID]
		r := domain.RiskScore{
			ProductID:        m.ProductID,
			AvgDemand:        m.AvgDemand,
			DemandStd:        m.DemandStd,
			StockoutCount:    m.StockoutCount,
			TransactionCount: m.TransactionCount,
			CurrentStock:     stock[m.ProductID],
			LeadTimeDays:     p.LeadTimeDays,
			ProductName:      p.ProductName,
			Category:         p.Category,
		}

		if m.AvgDemand > 0 {
			r.DemandVolatility = stats.ClipUpper(m.DemandStd/m.AvgDemand, volatilityCap)
			r.DaysOfStock = stats.ClipUpper(r.CurrentStock/m.AvgDemand, daysOfStockCap)
		}
		if m.TransactionCount > 0 {
			r.HistoricalStockoutRate = float64(m.StockoutCount) / float64(m.TransactionCount)
		}

		leadComponent := 0.0
		if maxLead > 0 {
			leadComponent = float64(r.LeadTimeDays) / float64(maxLead)
		}
		r.StockoutRiskScore = stats.Round(
			weightStockoutRate*r.HistoricalStockoutRate+
				weightVolatility*stats.ClipUpper(r.DemandVolatility, 1)+
				weightStockCover*(1-stats.ClipUpper(r.DaysOfStock/coverHorizon, 1))+
				weightLeadTime*leadComponent, 3)
		r.RiskCategory = domain.RiskCategoryFor(r.StockoutRiskScore)

		scores = append(scores, r)
	}
	return scores
}

// HighRisk filters the high risk bucket, worst first.
func HighRisk(scores []domain.RiskScore) []domain.RiskScore {
	var high []domain.RiskScore
	for _, r := range scores {
		if r.RiskCategory == domain.RiskHigh {
			high = append(high, r)
		}
	}
	sort.SliceStable(high, func(i, j int) bool {
		return high[i].StockoutRiskScore > high[j].StockoutRiskScore
	})
	return high
}
