package formulas

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 2.0, Mean([]float64{1, 2, 3}))
}

func TestStdDev(t *testing.T) {
	assert.Equal(t, 0.0, StdDev([]float64{5}))
	assert.InDelta(t, 1.0, StdDev([]float64{1, 2, 3}), 1e-9)
}

func TestWeightedMean(t *testing.T) {
	tests := []struct {
		name    string
		data    []float64
		weights []float64
		want    float64
	}{
		{
			name: "empty",
			want: 0,
		},
		{
			name:    "mismatched weights fall back to mean",
			data:    []float64{1, 3},
			weights: []float64{1},
			want:    2,
		},
		{
			name:    "zero weights fall back to mean",
			data:    []float64{1, 3},
			weights: []float64{0, 0},
			want:    2,
		},
		{
			name:    "weighted",
			data:    []float64{1, 3},
			weights: []float64{3, 1},
			want:    1.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, WeightedMean(tt.data, tt.weights), 1e-9)
		})
	}
}
