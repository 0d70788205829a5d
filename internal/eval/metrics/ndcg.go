package metrics

import "math"

// NDCGNormFloor is the smallest ideal DCG used for normalisation.
// It caps amplification when the truth list is empty or very short instead of
// dividing by zero.
const NDCGNormFloor = 0.3

// NDCGAtK computes Normalized Discounted Cumulative Gain over the top-K predictions.
//
// With binary relevance every truth document has gain 1. With graded relevance
// the document at position i of the truth list has gain 1/(i+1). A truth
// document is credited once, at its best rank.
func NDCGAtK(truth Truth, pred []string, k int, graded bool) float64 {
	return NDCG(truth, cut(pred, k), graded)
}

// NDCG computes NDCGAtK over the whole prediction list.
func NDCG(truth Truth, pred []string, graded bool) float64 {
	dcg := dcg(truth, pred, graded)
	return dcg / math.Max(NDCGNormFloor, idealDCG(truth, graded))
}

func dcg(truth Truth, pred []string, graded bool) float64 {
	credited := make(map[string]struct{}, truth.Len())
	var sum float64

	for rank, id := range pred {
		pos, ok := truth.Index(id)
		if !ok {
			continue
		}
		if _, done := credited[id]; done {
			continue
		}
		credited[id] = struct{}{}
		sum += gain(pos, graded) / math.Log2(float64(rank+2))
	}

	return sum
}

func idealDCG(truth Truth, graded bool) float64 {
	var sum float64
	for rank := 0; rank < truth.Len(); rank++ {
		sum += gain(rank, graded) / math.Log2(float64(rank+2))
	}
	return sum
}

func gain(truthPos int, graded bool) float64 {
	if !graded {
		return 1
	}
	return 1.0 / float64(truthPos+1)
}
