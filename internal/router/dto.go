package router

import (
	"github.com/DjordjeVuckovic/rank-eval/internal/storage"
	"github.com/google/uuid"
)

type EvaluateRequest struct {
	// Name labels the stored run.
	Name   string `json:"name" example:"nq-dev"`
	Engine string `json:"engine,omitempty" example:"bm25"`
	// Truth[i] and Pred[i] belong to the same query.
	Truth [][]string `json:"truth"`
	Pred  [][]string `json:"pred"`
	// Catalog overrides the metric names computed per query.
	Catalog []string `json:"catalog,omitempty" example:"MRR@10,P@1,NDCG@10"`
	// Report overrides the short names averaged into means.
	Report     []string `json:"report,omitempty" example:"mrr10,p1"`
	IncludeAll bool     `json:"include_all,omitempty"`
	Graded     bool     `json:"graded,omitempty"`
	Strict     bool     `json:"strict,omitempty"`
	// Persist stores the result as a run.
	Persist bool `json:"persist,omitempty"`
}

type QueryError struct {
	Index int    `json:"index"`
	Error string `json:"error"`
}

type EvaluateResponse struct {
	RunID      *uuid.UUID         `json:"run_id,omitempty"`
	Means      map[string]float64 `json:"means"`
	Summary    string             `json:"summary"`
	Evaluated  int                `json:"evaluated"`
	Failed     int                `json:"failed"`
	Unknown    []string           `json:"unknown_metrics,omitempty"`
	Unreported []string           `json:"unreported_metrics,omitempty"`
	Errors     []QueryError       `json:"errors,omitempty"`
}

type QueryRequest struct {
	Truth []string `json:"truth"`
	Pred  []string `json:"pred"`
	// Metrics defaults to the full default catalog.
	Metrics []string `json:"metrics,omitempty" example:"P@1,MRR,BLEU-1"`
	Graded  bool     `json:"graded,omitempty"`
	Strict  bool     `json:"strict,omitempty"`
}

type MetricValue struct {
	Name  string  `json:"name" example:"MRR@10"`
	Value float64 `json:"value" example:"0.5"`
}

type QueryResponse struct {
	Metrics []MetricValue `json:"metrics"`
}

type CatalogEntry struct {
	Name  string `json:"name" example:"P@10"`
	Short string `json:"short" example:"p10"`
	Kind  string `json:"kind" example:"precision"`
	K     int    `json:"k,omitempty" example:"10"`
}

type CatalogResponse struct {
	Metrics []CatalogEntry `json:"metrics"`
	Report  []string       `json:"report"`
}

type RunResponse = storage.Run
