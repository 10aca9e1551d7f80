package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCombineScores(t *testing.T) {
	tests := []struct {
		name        string
		keyword     float64
		qualitative float64
		want        float64
	}{
		{"both zero", 0, 0, 0},
		{"both one", 1, 1, 1},
		{"keyword only", 1, 0, 0.4},
		{"qualitative only", 0, 1, 0.6},
		{"mixed", 0.5, 0.5, 0.5},
		{"typical", 0.75, 0.9, 0.75*0.4 + 0.9*0.6},
		{"clamped above", 2, 2, 1},
		{"clamped below", -1, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, CombineScores(tt.keyword, tt.qualitative), 1e-9)
		})
	}
}

func TestCombineScoresWeightedSum(t *testing.T) {
	// The combined score is exactly 0.4*keyword + 0.6*qualitative for every
	// valid pair.
	for k := 0.0; k <= 1.0; k += 0.1 {
		for q := 0.0; q <= 1.0; q += 0.1 {
			assert.InDelta(t, 0.4*k+0.6*q, CombineScores(k, q), 1e-9)
		}
	}
}

func TestCombineScoresDeterministic(t *testing.T) {
	first := CombineScores(0.3, 0.7)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, CombineScores(0.3, 0.7))
	}
}
