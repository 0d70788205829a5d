package metrics

import (
	"errors"
	"math"
	"strings"
)

const (
	// TokenSeparator splits a document id into BLEU tokens.
	TokenSeparator = ","

	// MaxBLEUOrder is the highest n-gram order BLEU accumulates.
	MaxBLEUOrder = 4

	// minPrecision replaces a zero n-gram precision so its log stays finite.
	// It is the smallest normal float64.
	minPrecision = 2.2250738585072014e-308
)

var ErrEmptyPrediction = errors.New("empty prediction list")

// BLEU scores the top-1 prediction against the truth ids with sentence-level
// BLEU using uniform weights over the first `order` n-gram orders.
// Every truth id is one reference; ids are tokenised on TokenSeparator.
// An empty truth set or an empty prediction list scores 0.
func BLEU(truth Truth, pred []string, order int) float64 {
	score, err := BLEUStrict(truth, pred, order)
	if err != nil {
		return 0
	}
	return score
}

// BLEUStrict is BLEU but reports ErrEmptyPrediction when there is no top-1
// prediction to score.
func BLEUStrict(truth Truth, pred []string, order int) (float64, error) {
	if truth.Empty() {
		return 0, nil
	}
	if len(pred) == 0 {
		return 0, ErrEmptyPrediction
	}

	refs := make([][]string, 0, truth.Len())
	for _, id := range truth.IDs() {
		refs = append(refs, strings.Split(id, TokenSeparator))
	}
	hyp := strings.Split(pred[0], TokenSeparator)

	return SentenceBLEU(refs, hyp, uniformWeights(order)), nil
}

// SentenceBLEU computes BLEU of hyp against refs without smoothing.
// weights[n-1] weights the modified n-gram precision; at most MaxBLEUOrder
// weights are honoured.
func SentenceBLEU(refs [][]string, hyp []string, weights []float64) float64 {
	if len(weights) > MaxBLEUOrder {
		weights = weights[:MaxBLEUOrder]
	}

	precisions := make([]float64, MaxBLEUOrder)
	for n := 1; n <= MaxBLEUOrder; n++ {
		num, den := modifiedPrecision(refs, hyp, n)
		if n == 1 && num == 0 {
			return 0
		}
		if num == 0 {
			precisions[n-1] = minPrecision
			continue
		}
		precisions[n-1] = float64(num) / float64(den)
	}

	var logSum float64
	for i, w := range weights {
		logSum += w * math.Log(precisions[i])
	}

	return brevityPenalty(refs, len(hyp)) * math.Exp(logSum)
}

// modifiedPrecision returns the clipped n-gram match count and the hypothesis
// n-gram count (at least 1).
func modifiedPrecision(refs [][]string, hyp []string, n int) (int, int) {
	counts := ngramCounts(hyp, n)

	maxRef := make(map[string]int, len(counts))
	for _, ref := range refs {
		refCounts := ngramCounts(ref, n)
		for g := range counts {
			maxRef[g] = max(maxRef[g], refCounts[g])
		}
	}

	var clipped, total int
	for g, c := range counts {
		clipped += min(c, maxRef[g])
		total += c
	}

	return clipped, max(1, total)
}

func ngramCounts(tokens []string, n int) map[string]int {
	counts := make(map[string]int)
	for i := 0; i+n <= len(tokens); i++ {
		counts[strings.Join(tokens[i:i+n], "\x00")]++
	}
	return counts
}

// brevityPenalty uses the reference length closest to hypLen, preferring the
// shorter reference on ties.
func brevityPenalty(refs [][]string, hypLen int) float64 {
	if hypLen == 0 {
		return 0
	}

	closest := -1
	for _, ref := range refs {
		l := len(ref)
		if closest < 0 {
			closest = l
			continue
		}
		d, best := abs(l-hypLen), abs(closest-hypLen)
		if d < best || (d == best && l < closest) {
			closest = l
		}
	}

	if hypLen > closest {
		return 1
	}
	return math.Exp(1 - float64(closest)/float64(hypLen))
}

func uniformWeights(order int) []float64 {
	order = max(1, min(order, MaxBLEUOrder))
	w := make([]float64, order)
	for i := range w {
		w[i] = 1.0 / float64(order)
	}
	return w
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
