// Package stats holds the small numeric helpers shared by the analytics
// stages. Standard deviation is the sample estimate (n-1 denominator).
package stats

import "math"

// Sum returns the sum of the values.
func Sum(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total
}

// Mean returns the arithmetic mean, or 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return Sum(values) / float64(len(values))
}

// Variance returns the sample variance, or 0 when fewer than two values.
func Variance(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	mean := Mean(values)
	sumSq := 0.0
	for _, v := range values {
		diff := v - mean
		sumSq += diff * diff
	}
	return sumSq / float64(len(values)-1)
}

// Std returns the sample standard deviation.
func Std(values []float64) float64 {
	return math.Sqrt(Variance(values))
}

// Round rounds v to the given number of decimal places.
func Round(v float64, decimals int) float64 {
	if decimals <= 0 {
		return math.Round(v)
	}

	factor := math.Pow(10, float64(decimals))
	return math.Round(v*factor) / factor
}

// ClipUpper caps v at max.
func ClipUpper(v, max float64) float64 {
	if v > max {
		return max
	}
	return v
}

// ClipLower floors v at min.
func ClipLower(v, min float64) float64 {
	if v < min {
		return min
	}
	return v
}
