// Package supplier ranks suppliers on a composite of delivery punctuality,
// stated reliability and relative delivery speed.
package supplier

import (
	"sort"

	"github.com/andresuchdata/chainsight/internal/domain"
	"github.com/andresuchdata/chainsight/internal/stats"
)

// Composite score weights.
const (
	weightOnTime      = 0.40
	weightReliability = 0.30
	weightCost        = 0.30
)

// Tiers controls the rank cutoffs of the tier recommendation.
type Tiers struct {
	PreferredRankMax int
	ApprovedRankMax  int
}

// DefaultTiers keeps the top five preferred and the next ten approved.
func DefaultTiers() Tiers {
	return Tiers{PreferredRankMax: 5, ApprovedRankMax: 15}
}

// Rank scores and orders the suppliers, best first. Cost efficiency is one
// minus the delivery time relative to the slowest supplier, so the slowest
// scores zero. The sort is stable: suppliers with equal scores keep their
// metric order, and ranks are dense from one.
func Rank(metrics []domain.SupplierMetrics, tiers Tiers) []domain.SupplierRanking {
	var maxDelivery float64
	for _, m := range metrics {
		if m.AvgDeliveryTime > maxDelivery {
			maxDelivery = m.AvgDeliveryTime
		}
	}

	rankings := make([]domain.SupplierRanking, 0, len(metrics))
	for _, m := range metrics {
		r := domain.SupplierRanking{SupplierMetrics: m}
		if maxDelivery > 0 {
			r.CostEfficiency = 1 - m.AvgDeliveryTime/maxDelivery
		}
		r.PerformanceScore = stats.Round(
			weightOnTime*m.OnTimeRate+
				weightReliability*m.ReliabilityScore+
				weightCost*r.CostEfficiency, 3)
		rankings = append(rankings, r)
	}

	sort.SliceStable(rankings, func(i, j int) bool {
		return rankings[i].PerformanceScore > rankings[j].PerformanceScore
	})
	for i := range rankings {
		rankings[i].Rank = i + 1
		rankings[i].Recommendation = domain.TierForRank(i+1, tiers.PreferredRankMax, tiers.ApprovedRankMax)
	}
	return rankings
}
