package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"resume-screener/domain"
)

func TestClassifyBucket(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{1.0, domain.BucketExcellent},
		{0.9, domain.BucketExcellent},
		{0.8, domain.BucketExcellent}, // boundary lands in the higher bucket
		{0.7999, domain.BucketGood},
		{0.6, domain.BucketGood},
		{0.5, domain.BucketGood}, // boundary lands in the higher bucket
		{0.4999, domain.BucketNoGo},
		{0.2, domain.BucketNoGo},
		{0.0, domain.BucketNoGo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyBucket(tt.score), "score %v", tt.score)
	}
}

func TestClassifyBucketTotal(t *testing.T) {
	// Every score in [0,1] maps to exactly one of the three buckets.
	valid := map[string]bool{
		domain.BucketExcellent: true,
		domain.BucketGood:      true,
		domain.BucketNoGo:      true,
	}
	for s := 0.0; s <= 1.0; s += 0.001 {
		assert.True(t, valid[ClassifyBucket(s)], "score %v", s)
	}
}
