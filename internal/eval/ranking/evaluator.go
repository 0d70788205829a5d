package ranking

import (
	"errors"
	"fmt"

	"github.com/DjordjeVuckovic/rank-eval/internal/eval/catalog"
	"github.com/DjordjeVuckovic/rank-eval/internal/eval/metrics"
)

var ErrQueryPanic = errors.New("query evaluation panicked")

// Vector holds one query's metric values in catalog order.
type Vector struct {
	Specs  []catalog.Spec
	Values []float64
}

func (v Vector) Names() []string {
	names := make([]string, len(v.Specs))
	for i, s := range v.Specs {
		names[i] = s.Name
	}
	return names
}

// Get returns the value stored for a metric name.
func (v Vector) Get(name string) (float64, bool) {
	for i, s := range v.Specs {
		if s.Name == name {
			return v.Values[i], true
		}
	}
	return 0, false
}

// Map returns the values keyed by metric name.
func (v Vector) Map() map[string]float64 {
	m := make(map[string]float64, len(v.Specs))
	for i, s := range v.Specs {
		m[s.Name] = v.Values[i]
	}
	return m
}

// Short returns the values keyed by short report name. Unknown slots are left out.
func (v Vector) Short() map[string]float64 {
	m := make(map[string]float64, len(v.Specs))
	for i, s := range v.Specs {
		if s.Kind == catalog.Unknown {
			continue
		}
		m[s.Short()] = v.Values[i]
	}
	return m
}

type Evaluator struct {
	catalog *catalog.Catalog
	opts    catalog.Options
}

func NewEvaluator(c *catalog.Catalog, opts catalog.Options) *Evaluator {
	if c == nil {
		c = catalog.Default()
	}
	return &Evaluator{catalog: c, opts: opts}
}

func (e *Evaluator) Catalog() *catalog.Catalog { return e.catalog }

// Evaluate computes every catalog metric for one query.
// Unknown catalog entries score 0. A metric fault or panic is returned as an
// error; the vector still has one slot per catalog entry.
func (e *Evaluator) Evaluate(truthIDs []string, pred []string) (v Vector, err error) {
	specs := e.catalog.Specs()
	v = Vector{Specs: specs, Values: make([]float64, len(specs))}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrQueryPanic, r)
		}
	}()

	truth := metrics.NewTruth(truthIDs)
	for i, s := range specs {
		score, evalErr := s.Eval(truth, pred, e.opts)
		if evalErr != nil {
			return v, evalErr
		}
		v.Values[i] = score
	}

	return v, nil
}

// EvaluateOne computes the metrics named in names for one query.
// out[i] is the value of names[i]; names that are not recognised yield 0.
func EvaluateOne(truth []string, pred []string, names []string) []float64 {
	v, _ := NewEvaluator(catalog.New(names...), catalog.Options{}).Evaluate(truth, pred)
	return v.Values
}
