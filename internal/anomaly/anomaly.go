// Package anomaly flags unusual inventory snapshots with an isolation
// forest over the stock level and sensor temperature.
package anomaly

import (
	"math"
	"math/rand"
	"sort"

	"github.com/andresuchdata/chainsight/internal/domain"
)

// Options controls the detector. Contamination is the expected anomaly
// fraction; exactly ceil(contamination * n) snapshots are flagged.
type Options struct {
	Contamination float64
	Seed          int64
}

// DefaultOptions expects one in twenty snapshots to be anomalous.
func DefaultOptions() Options {
	return Options{Contamination: 0.05, Seed: 42}
}

// Result carries the full snapshot set with flags filled in plus the
// flagged subset and its breakdown.
type Result struct {
	Snapshots []domain.InventorySnapshot
	Flagged   []domain.InventorySnapshot

	TempAlerts     int
	LowStockAlerts int
	Other          int
}

// Detect fits a fresh forest on the snapshots and flags the highest scoring
// ones. The model is refit on every run; flags never carry over between
// runs.
func Detect(snapshots []domain.InventorySnapshot, opts Options) *Result {
	res := &Result{Snapshots: make([]domain.InventorySnapshot, len(snapshots))}
	copy(res.Snapshots, snapshots)
	for i := range res.Snapshots {
		res.Snapshots[i].IsAnomaly = 0
	}
	if len(res.Snapshots) == 0 || opts.Contamination <= 0 {
		return res
	}

	rows := make([][]float64, len(res.Snapshots))
	for i, s := range res.Snapshots {
		rows[i] = []float64{float64(s.CurrentStock), s.Temperature}
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	f := buildForest(rows, rng)

	scores := make([]float64, len(rows))
	order := make([]int, len(rows))
	for i, row := range rows {
		scores[i] = f.score(row)
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	flagCount := int(math.Ceil(opts.Contamination * float64(len(rows))))
	if flagCount > len(rows) {
		flagCount = len(rows)
	}
	for _, idx := range order[:flagCount] {
		res.Snapshots[idx].IsAnomaly = 1
	}

	for _, s := range res.Snapshots {
		if s.IsAnomaly == 0 {
			continue
		}
		res.Flagged = append(res.Flagged, s)
		switch {
		case s.TempAlert == 1:
			res.TempAlerts++
		case s.LowStockAlert == 1:
			res.LowStockAlerts++
		default:
			res.Other++
		}
	}
	return res
}
