package metrics

// ReciprocalRank returns 1/rank of the first prediction found in truth.
func ReciprocalRank(truth Truth, pred []string) float64 {
	for i, id := range pred {
		if truth.Contains(id) {
			return 1.0 / float64(i+1)
		}
	}
	return 0
}

// ReciprocalRankAtK is ReciprocalRank restricted to the top-K predictions.
func ReciprocalRankAtK(truth Truth, pred []string, k int) float64 {
	return ReciprocalRank(truth, cut(pred, k))
}
