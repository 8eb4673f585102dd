package supplier

import (
	"testing"

	"github.com/andresuchdata/chainsight/internal/domain"
)

func metric(id string, onTime, reliability, delivery float64) domain.SupplierMetrics {
	return domain.SupplierMetrics{
		SupplierID:       id,
		OnTimeRate:       onTime,
		ReliabilityScore: reliability,
		AvgDeliveryTime:  delivery,
	}
}

func TestRankCompositeScore(t *testing.T) {
	metrics := []domain.SupplierMetrics{
		metric("S001", 0.9, 0.8, 10), // cost eff 0.5
		metric("S002", 0.5, 0.6, 20), // slowest, cost eff 0
	}
	rankings := Rank(metrics, DefaultTiers())

	// 0.40*0.9 + 0.30*0.8 + 0.30*0.5 = 0.75
	if rankings[0].SupplierID != "S001" || rankings[0].PerformanceScore != 0.75 {
		t.Errorf("top = %s %v, want S001 0.75", rankings[0].SupplierID, rankings[0].PerformanceScore)
	}
	// 0.40*0.5 + 0.30*0.6 + 0.30*0 = 0.38
	if rankings[1].PerformanceScore != 0.38 {
		t.Errorf("second score = %v, want 0.38", rankings[1].PerformanceScore)
	}
	if rankings[1].CostEfficiency != 0 {
		t.Errorf("slowest supplier cost efficiency = %v, want 0", rankings[1].CostEfficiency)
	}
}

func TestRankStableOnTies(t *testing.T) {
	metrics := []domain.SupplierMetrics{
		metric("S003", 0.8, 0.8, 10),
		metric("S001", 0.8, 0.8, 10),
	}
	rankings := Rank(metrics, DefaultTiers())
	if rankings[0].SupplierID != "S003" || rankings[1].SupplierID != "S001" {
		t.Errorf("tied suppliers reordered: %s, %s", rankings[0].SupplierID, rankings[1].SupplierID)
	}
	if rankings[0].Rank != 1 || rankings[1].Rank != 2 {
		t.Errorf("ranks = %d, %d, want 1, 2", rankings[0].Rank, rankings[1].Rank)
	}
}

func TestRankTierAssignment(t *testing.T) {
	var metrics []domain.SupplierMetrics
	for i := 0; i < 20; i++ {
		// Strictly decreasing on-time rate keeps the order predictable.
		metrics = append(metrics, metric("S", 1-float64(i)*0.01, 0.9, 10))
	}
	rankings := Rank(metrics, DefaultTiers())

	for i, r := range rankings {
		want := domain.TierReview
		switch {
		case i < 5:
			want = domain.TierPreferred
		case i < 15:
			want = domain.TierApproved
		}
		if r.Recommendation != want {
			t.Errorf("rank %d recommendation = %q, want %q", r.Rank, r.Recommendation, want)
		}
	}
}

func TestTierForRankEdges(t *testing.T) {
	if got := domain.TierForRank(5, 5, 15); got != domain.TierPreferred {
		t.Errorf("rank 5 = %q, want preferred", got)
	}
	if got := domain.TierForRank(6, 5, 15); got != domain.TierApproved {
		t.Errorf("rank 6 = %q, want approved", got)
	}
	if got := domain.TierForRank(15, 5, 15); got != domain.TierApproved {
		t.Errorf("rank 15 = %q, want approved", got)
	}
	if got := domain.TierForRank(16, 5, 15); got != domain.TierReview {
		t.Errorf("rank 16 = %q, want review", got)
	}
}
