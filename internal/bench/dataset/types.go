package dataset

// Query is one evaluation query with its ground-truth document ids.
type Query struct {
	ID    string
	Text  string
	Truth []string
}

type Dataset struct {
	Name    string
	Queries []Query
}

// Prediction is the ranked list an engine returned for one query.
type Prediction struct {
	QueryID string   `json:"query_id"`
	DocIDs  []string `json:"docids"`
}

type queryRecord struct {
	QueryID string   `json:"query_id"`
	Query   string   `json:"query"`
	DocID   string   `json:"docid,omitempty"`
	DocIDs  []string `json:"docids"`
}

func (r queryRecord) truth() []string {
	ids := make([]string, 0, len(r.DocIDs)+1)
	if r.DocID != "" {
		ids = append(ids, r.DocID)
	}
	return append(ids, r.DocIDs...)
}

// Batch is a dataset aligned with predictions, ready for scoring.
type Batch struct {
	QueryIDs []string
	Truth    [][]string
	Pred     [][]string
	// Missing lists queries without a prediction; they are scored with an empty list.
	Missing []string
}

func (b *Batch) Len() int { return len(b.QueryIDs) }
