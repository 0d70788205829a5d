package report

import (
	"strconv"
	"strings"
)

// Label turns a short report key into its display form: "mrr5" -> "mrr@5",
// "bleu2" -> "bleu-2", "mrr" -> "mrr".
func Label(short string) string {
	i := strings.IndexFunc(short, func(r rune) bool { return r >= '0' && r <= '9' })
	if i <= 0 {
		return short
	}
	name, k := short[:i], short[i:]
	if name == "bleu" {
		return name + "-" + k
	}
	return name + "@" + k
}

// Summary renders means on one line in metric order, e.g.
// "mrr@5:0.75, mrr@10:0.75, ..., r@100:1". Keys absent from means are skipped.
func Summary(means map[string]float64, metrics []string) string {
	parts := make([]string, 0, len(metrics))
	for _, m := range metrics {
		v, ok := means[m]
		if !ok {
			continue
		}
		parts = append(parts, Label(m)+":"+strconv.FormatFloat(v, 'f', -1, 64))
	}
	return strings.Join(parts, ", ")
}
