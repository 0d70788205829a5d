package metrics

// PrecisionAtK computes the fraction of the top-K predictions that are in truth.
// The denominator is the number of predictions actually inspected, so a list
// shorter than K is scored against its own length.
func PrecisionAtK(truth Truth, pred []string, k int) float64 {
	top := cut(pred, k)
	if len(top) == 0 {
		return 0
	}

	seen := make(map[string]struct{}, len(top))
	var hits int

	for _, id := range top {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if truth.Contains(id) {
			hits++
		}
	}

	return float64(hits) / float64(len(top))
}

// HitRateAtK returns 1 when any of the top-K predictions is in truth, 0 otherwise.
// This is a binary hit indicator: the size of the truth set never enters the
// score, so it differs from textbook recall whenever truth has more than one id.
func HitRateAtK(truth Truth, pred []string, k int) float64 {
	if truth.Empty() {
		return 0
	}
	for _, id := range cut(pred, k) {
		if truth.Contains(id) {
			return 1
		}
	}
	return 0
}

// RecallAtK is the "R@K" name used by evaluation reports. It is HitRateAtK.
func RecallAtK(truth Truth, pred []string, k int) float64 {
	return HitRateAtK(truth, pred, k)
}
