package compare

// Blend weights for the two estimators. The shingle score is weighted
// higher for its sensitivity to partial overlap. Tunable policy
// constants, preserved verbatim for score compatibility.
const (
	exactWeight   = 0.4
	shingleWeight = 0.6
)

// combineScores folds the two algorithm scores into one overall score.
// Identical canonical texts always score 100; two zero sub-scores
// always combine to 0.
func combineScores(exactScore, shingleScore float64, identical bool) float64 {
	if identical {
		return 100
	}
	if exactScore == 0 && shingleScore == 0 {
		return 0
	}
	return exactWeight*exactScore + shingleWeight*shingleScore
}
