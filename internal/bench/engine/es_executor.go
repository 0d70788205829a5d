package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/DjordjeVuckovic/rank-eval/internal/bench/dataset"
	"github.com/elastic/go-elasticsearch/v8"
)

const (
	QueryPlaceholder   = "{{query}}"
	DefaultESQueryBody = `{"query": {"multi_match": {"query": "{{query}}"}}}`
)

// EsExecutor sends a templated search body to an index and reads ids from
// IDField in _source, or from _id when IDField is empty.
type EsExecutor struct {
	name     string
	client   *elasticsearch.TypedClient
	index    string
	template string
	idField  string
}

func NewEsExecutor(name string, client *elasticsearch.TypedClient, index, template, idField string) *EsExecutor {
	if template == "" {
		template = DefaultESQueryBody
	}
	return &EsExecutor{
		name:     name,
		client:   client,
		index:    index,
		template: template,
		idField:  idField,
	}
}

func (e *EsExecutor) Execute(ctx context.Context, q dataset.Query, k int) (*Execution, error) {
	body, err := renderBody(e.template, q.Text, k)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	res, err := e.client.Search().
		Index(e.index).
		Raw(bytes.NewReader(body)).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("es search: %w", err)
	}
	latency := time.Since(start)

	ids := make([]string, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		id, err := e.hitID(hit.Id_, hit.Source_)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	var total int64
	if res.Hits.Total != nil {
		total = res.Hits.Total.Value
	}

	return &Execution{
		RankedDocIDs: truncate(ids, k),
		TotalMatches: total,
		Latency:      latency,
	}, nil
}

func (e *EsExecutor) hitID(docID *string, source json.RawMessage) (string, error) {
	if e.idField == "" {
		if docID == nil {
			return "", fmt.Errorf("es hit has no _id")
		}
		return *docID, nil
	}

	dec := json.NewDecoder(bytes.NewReader(source))
	dec.UseNumber()
	var doc map[string]any
	if err := dec.Decode(&doc); err != nil {
		return "", fmt.Errorf("es parse _source: %w", err)
	}
	switch v := doc[e.idField].(type) {
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	default:
		return "", fmt.Errorf("es hit field %q has unsupported type %T", e.idField, v)
	}
}

func (e *EsExecutor) Name() string { return e.name }
func (e *EsExecutor) Close() error { return nil }

// renderBody substitutes the JSON-escaped query text and sets the result size.
func renderBody(template, text string, k int) ([]byte, error) {
	escaped, err := json.Marshal(text)
	if err != nil {
		return nil, fmt.Errorf("es escape query: %w", err)
	}
	raw := strings.ReplaceAll(template, QueryPlaceholder, string(escaped[1:len(escaped)-1]))

	var body map[string]any
	if err := json.Unmarshal([]byte(raw), &body); err != nil {
		return nil, fmt.Errorf("es parse query template: %w", err)
	}
	if k > 0 {
		body["size"] = k
	}
	return json.Marshal(body)
}
