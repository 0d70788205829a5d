package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownMetric = errors.New("unknown metric")

// DefaultNames is the catalog evaluated for every query. Its order fixes the
// layout of per-query vectors.
var DefaultNames = []string{
	"MRR@5", "MRR@10", "MRR",
	"NDCG@10", "NDCG@20", "NDCG@100",
	"P@1", "P@10", "P@20", "P@100",
	"R@1", "R@5", "R@10", "R@100",
	"BLEU-1", "BLEU-2",
}

// DefaultReport lists the short names averaged into a batch result.
// NDCG and BLEU are computed per query but left out of it.
var DefaultReport = []string{
	"mrr5", "mrr10", "mrr",
	"p1", "p10", "p20", "p100",
	"r1", "r5", "r10", "r100",
}

// Catalog is an ordered list of metric specs.
// Names that do not parse keep their slot with Kind Unknown.
type Catalog struct {
	specs []Spec
}

// New builds a catalog from names. It never fails: unrecognised names are
// kept as Unknown slots and reported by Unknown.
func New(names ...string) *Catalog {
	c := &Catalog{specs: make([]Spec, 0, len(names))}
	for _, name := range names {
		s, err := Parse(name)
		if err != nil {
			s = Spec{Name: name, Kind: Unknown}
		}
		c.specs = append(c.specs, s)
	}
	return c
}

// Strict builds a catalog and fails on the first unrecognised name.
func Strict(names ...string) (*Catalog, error) {
	c := &Catalog{specs: make([]Spec, 0, len(names))}
	for _, name := range names {
		s, err := Parse(name)
		if err != nil {
			return nil, err
		}
		c.specs = append(c.specs, s)
	}
	return c, nil
}

func Default() *Catalog {
	return New(DefaultNames...)
}

func (c *Catalog) Len() int { return len(c.specs) }

func (c *Catalog) Specs() []Spec { return c.specs }

func (c *Catalog) Names() []string {
	names := make([]string, len(c.specs))
	for i, s := range c.specs {
		names[i] = s.Name
	}
	return names
}

// ShortNames returns the short names of all recognised specs, in catalog order.
func (c *Catalog) ShortNames() []string {
	var names []string
	for _, s := range c.specs {
		if s.Kind != Unknown {
			names = append(names, s.Short())
		}
	}
	return names
}

// Unknown returns the names that did not parse, in catalog order.
func (c *Catalog) Unknown() []string {
	var names []string
	for _, s := range c.specs {
		if s.Kind == Unknown {
			names = append(names, s.Name)
		}
	}
	return names
}

// IndexShort returns the position of the first spec with the given short name.
func (c *Catalog) IndexShort(short string) int {
	for i, s := range c.specs {
		if s.Kind != Unknown && s.Short() == short {
			return i
		}
	}
	return -1
}

// Index returns the position of name in the catalog, or -1.
func (c *Catalog) Index(name string) int {
	for i, s := range c.specs {
		if s.Name == name {
			return i
		}
	}
	return -1
}

// ShortName converts a metric name such as "P@10" or "BLEU-2" to its short
// report key ("p10", "bleu2").
func ShortName(name string) (string, error) {
	s, err := Parse(name)
	if err != nil {
		return "", err
	}
	return s.Short(), nil
}

func unknown(name string) error {
	return fmt.Errorf("%w: %q", ErrUnknownMetric, strings.TrimSpace(name))
}
