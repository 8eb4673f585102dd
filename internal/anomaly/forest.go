package anomaly

import (
	"math"
	"math/rand"
)

// Isolation forest over dense float feature rows. Anomalous points isolate
// in fewer random splits, so a shorter average path length means a higher
// score.
type forest struct {
	trees    []*treeNode
	sampleN  int
	features int
}

type treeNode struct {
	left, right *treeNode
	feature     int
	split       float64
	size        int
}

const (
	defaultTrees     = 100
	defaultSubsample = 256
)

func buildForest(rows [][]float64, rng *rand.Rand) *forest {
	sampleN := defaultSubsample
	if sampleN > len(rows) {
		sampleN = len(rows)
	}
	maxDepth := int(math.Ceil(math.Log2(float64(sampleN))))

	f := &forest{sampleN: sampleN, features: len(rows[0])}
	for t := 0; t < defaultTrees; t++ {
		sample := make([][]float64, 0, sampleN)
		for _, idx := range rng.Perm(len(rows))[:sampleN] {
			sample = append(sample, rows[idx])
		}
		f.trees = append(f.trees, buildTree(sample, 0, maxDepth, rng))
	}
	return f
}

func buildTree(rows [][]float64, depth, maxDepth int, rng *rand.Rand) *treeNode {
	if len(rows) <= 1 || depth >= maxDepth {
		return &treeNode{size: len(rows)}
	}

	feature := rng.Intn(len(rows[0]))
	lo, hi := rows[0][feature], rows[0][feature]
	for _, r := range rows {
		if r[feature] < lo {
			lo = r[feature]
		}
		if r[feature] > hi {
			hi = r[feature]
		}
	}
	if lo == hi {
		return &treeNode{size: len(rows)}
	}

	split := lo + rng.Float64()*(hi-lo)
	var left, right [][]float64
	for _, r := range rows {
		if r[feature] < split {
			left = append(left, r)
		} else {
			right = append(right, r)
		}
	}
	return &treeNode{
		feature: feature,
		split:   split,
		left:    buildTree(left, depth+1, maxDepth, rng),
		right:   buildTree(right, depth+1, maxDepth, rng),
	}
}

func (n *treeNode) pathLength(row []float64, depth int) float64 {
	if n.left == nil {
		// Average depth of an unbuilt subtree stands in for the
		// unexpanded external node.
		return float64(depth) + avgPathLength(n.size)
	}
	if row[n.feature] < n.split {
		return n.left.pathLength(row, depth+1)
	}
	return n.right.pathLength(row, depth+1)
}

// avgPathLength is the expected path length of an unsuccessful BST search
// over n points, the normalization constant from Liu et al.
func avgPathLength(n int) float64 {
	if n <= 1 {
		return 0
	}
	h := math.Log(float64(n-1)) + 0.5772156649
	return 2*h - 2*float64(n-1)/float64(n)
}

// score maps a row to (0, 1]; values near 1 are the most isolated.
func (f *forest) score(row []float64) float64 {
	var total float64
	for _, t := range f.trees {
		total += t.pathLength(row, 0)
	}
	mean := total / float64(len(f.trees))
	return math.Pow(2, -mean/avgPathLength(f.sampleN))
}
