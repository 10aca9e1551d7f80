package pipeline

// Score weights. Qualitative judgment is trusted more than lexical overlap.
const (
	keywordWeight     = 0.4
	qualitativeWeight = 0.6
)

// CombineScores merges the keyword and qualitative scores into the final
// ranking score. Pure function; the result is clamped to [0,1].
func CombineScores(keywordScore, qualitativeScore float64) float64 {
	return clamp01(keywordScore*keywordWeight + qualitativeScore*qualitativeWeight)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
