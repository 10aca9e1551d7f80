package pipeline

import "resume-screener/domain"

// Classification thresholds, checked in order. Boundary values land in the
// higher bucket (0.8 is Excellent, 0.5 is Good).
const (
	excellentThreshold = 0.8
	goodThreshold      = 0.5
)

// ClassifyBucket maps a total score to one of the three triage bucket names.
// Total and exhaustive over [0,1].
func ClassifyBucket(totalScore float64) string {
	switch {
	case totalScore >= excellentThreshold:
		return domain.BucketExcellent
	case totalScore >= goodThreshold:
		return domain.BucketGood
	default:
		return domain.BucketNoGo
	}
}
