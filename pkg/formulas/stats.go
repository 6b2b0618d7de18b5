package formulas

import (
	"gonum.org/v1/gonum/stat"
)

// Mean calculates the arithmetic mean of a slice of float64 values
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.Mean(data, nil)
}

// StdDev calculates the standard deviation of a slice of float64 values
func StdDev(data []float64) float64 {
	if len(data) < 2 {
		return 0
	}
	return stat.StdDev(data, nil)
}

// WeightedMean calculates the mean of data weighted by weights.
// Falls back to the unweighted mean when the lengths differ or the
// weights sum to zero.
func WeightedMean(data, weights []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	if len(weights) != len(data) {
		return Mean(data)
	}

	total := 0.0
	for _, w := range weights {
		total += w
	}
	if total == 0 {
		return Mean(data)
	}

	return stat.Mean(data, weights)
}
