package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/rank-eval/internal/eval/metrics"
)

type Kind int

const (
	Unknown Kind = iota
	Precision
	HitRate
	MRR
	NDCG
	BLEU
)

func (k Kind) String() string {
	switch k {
	case Precision:
		return "precision"
	case HitRate:
		return "hit_rate"
	case MRR:
		return "mrr"
	case NDCG:
		return "ndcg"
	case BLEU:
		return "bleu"
	default:
		return "unknown"
	}
}

// Spec is a parsed metric name.
// K is the cutoff; 0 means the whole prediction list for MRR and NDCG.
// For BLEU, K holds the n-gram order.
type Spec struct {
	Name string
	Kind Kind
	K    int
}

// Options tune how a Spec is evaluated.
type Options struct {
	Graded bool // graded relevance for NDCG
	Strict bool // surface BLEU on an empty prediction list as an error
}

// Parse recognises P@K, R@K, HitRate@K, MRR, MRR@K, NDCG, NDCG@K and BLEU-N.
func Parse(name string) (Spec, error) {
	trimmed := strings.TrimSpace(name)

	if order, ok := strings.CutPrefix(trimmed, "BLEU-"); ok {
		n, err := strconv.Atoi(order)
		if err != nil || n < 1 || n > metrics.MaxBLEUOrder {
			return Spec{}, unknown(name)
		}
		return Spec{Name: trimmed, Kind: BLEU, K: n}, nil
	}

	prefix, cutoff, hasCutoff := strings.Cut(trimmed, "@")

	var kind Kind
	switch prefix {
	case "P":
		kind = Precision
	case "R", "HitRate":
		kind = HitRate
	case "MRR":
		kind = MRR
	case "NDCG":
		kind = NDCG
	default:
		return Spec{}, unknown(name)
	}

	if !hasCutoff {
		if kind == Precision || kind == HitRate {
			return Spec{}, unknown(name)
		}
		return Spec{Name: trimmed, Kind: kind}, nil
	}

	k, err := strconv.Atoi(cutoff)
	if err != nil || k <= 0 {
		return Spec{}, unknown(name)
	}

	return Spec{Name: trimmed, Kind: kind, K: k}, nil
}

// Short returns the report key for the spec, e.g. "p10", "r1", "mrr", "bleu2".
func (s Spec) Short() string {
	var prefix string
	switch s.Kind {
	case Precision:
		prefix = "p"
	case HitRate:
		prefix = "r"
	case MRR:
		prefix = "mrr"
	case NDCG:
		prefix = "ndcg"
	case BLEU:
		prefix = "bleu"
	default:
		return ""
	}
	if s.K == 0 {
		return prefix
	}
	return prefix + strconv.Itoa(s.K)
}

// Eval computes the metric for one query. Unknown specs score 0.
func (s Spec) Eval(truth metrics.Truth, pred []string, opts Options) (float64, error) {
	switch s.Kind {
	case Precision:
		return metrics.PrecisionAtK(truth, pred, s.K), nil
	case HitRate:
		return metrics.HitRateAtK(truth, pred, s.K), nil
	case MRR:
		if s.K == 0 {
			return metrics.ReciprocalRank(truth, pred), nil
		}
		return metrics.ReciprocalRankAtK(truth, pred, s.K), nil
	case NDCG:
		if s.K == 0 {
			return metrics.NDCG(truth, pred, opts.Graded), nil
		}
		return metrics.NDCGAtK(truth, pred, s.K, opts.Graded), nil
	case BLEU:
		if !opts.Strict {
			return metrics.BLEU(truth, pred, s.K), nil
		}
		score, err := metrics.BLEUStrict(truth, pred, s.K)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", s.Name, err)
		}
		return score, nil
	default:
		return 0, nil
	}
}
