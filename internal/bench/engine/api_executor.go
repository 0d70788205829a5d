package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/DjordjeVuckovic/rank-eval/internal/bench/dataset"
)

const DefaultAPIPath = "/search"

// APIExecutor calls GET {baseURL}{path}?query=...&size=k and expects
// {"total_matches": n, "hits": [{"id": "..."}]}.
type APIExecutor struct {
	name    string
	baseURL string
	path    string
	client  *http.Client
}

func NewAPIExecutor(name, baseURL, path string) *APIExecutor {
	if path == "" {
		path = DefaultAPIPath
	}
	return &APIExecutor{
		name:    name,
		baseURL: baseURL,
		path:    path,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (e *APIExecutor) Execute(ctx context.Context, q dataset.Query, k int) (*Execution, error) {
	params := url.Values{}
	params.Set("query", q.Text)
	if k > 0 {
		params.Set("size", strconv.Itoa(k))
	}
	reqURL := e.baseURL + e.path + "?" + params.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("api create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := e.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("api request: %w", err)
	}
	defer resp.Body.Close()
	latency := time.Since(start)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("api read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("api status %d: %s", resp.StatusCode, string(body))
	}

	var searchResp apiSearchResponse
	if err := json.Unmarshal(body, &searchResp); err != nil {
		return nil, fmt.Errorf("api parse response: %w", err)
	}

	ids := make([]string, 0, len(searchResp.Hits))
	for _, hit := range searchResp.Hits {
		ids = append(ids, hit.ID)
	}

	return &Execution{
		RankedDocIDs: truncate(ids, k),
		TotalMatches: searchResp.TotalMatches,
		Latency:      latency,
	}, nil
}

func (e *APIExecutor) Name() string { return e.name }
func (e *APIExecutor) Close() error { return nil }

type apiSearchResponse struct {
	TotalMatches int64          `json:"total_matches"`
	Hits         []apiSearchHit `json:"hits"`
}

type apiSearchHit struct {
	ID string `json:"id"`
}
