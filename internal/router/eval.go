package router

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/DjordjeVuckovic/rank-eval/internal/apperr"
	"github.com/DjordjeVuckovic/rank-eval/internal/bench/report"
	"github.com/DjordjeVuckovic/rank-eval/internal/eval/catalog"
	"github.com/DjordjeVuckovic/rank-eval/internal/eval/ranking"
	"github.com/DjordjeVuckovic/rank-eval/internal/storage"
	"github.com/labstack/echo/v4"
)

type EvalConfig struct {
	Workers  int
	MaxBatch int
}

type EvalRouter struct {
	e       *echo.Echo
	store   storage.RunStore
	cfg     EvalConfig
	metrics *Metrics
}

func NewEvalRouter(e *echo.Echo, store storage.RunStore, cfg EvalConfig) *EvalRouter {
	return &EvalRouter{
		e:       e,
		store:   store,
		cfg:     cfg,
		metrics: NewMetrics(),
	}
}

func (r *EvalRouter) Bind() {
	v1 := r.e.Group("/v1")
	v1.POST("/evaluate", r.evaluateHandler)
	v1.POST("/evaluate/query", r.evaluateQueryHandler)
	v1.GET("/catalog", r.catalogHandler)
	v1.GET("/runs", r.listRunsHandler)
	v1.GET("/runs/:id", r.getRunHandler)
}

// evaluateHandler godoc
// @Summary Evaluate a batch of rankings
// @Description Scores every (truth, pred) pair and averages the report metrics
// @Tags evaluate
// @Accept json
// @Produce json
// @Param request body EvaluateRequest true "Batch to score"
// @Success 200 {object} EvaluateResponse
// @Failure 400 {object} apperr.ErrorResponse
// @Failure 422 {object} apperr.ErrorResponse
// @Router /v1/evaluate [post]
func (r *EvalRouter) evaluateHandler(c echo.Context) error {
	var req EvaluateRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	if len(req.Truth) > r.cfg.MaxBatch {
		return apperr.NewValidation(fmt.Sprintf("batch of %d queries exceeds the limit of %d", len(req.Truth), r.cfg.MaxBatch))
	}

	cfg, err := r.scoringConfig(req)
	if err != nil {
		return err
	}

	start := time.Now()
	res, err := ranking.NewAggregator(cfg).Evaluate(c.Request().Context(), req.Truth, req.Pred)
	elapsed := time.Since(start).Seconds()

	switch {
	case errors.Is(err, ranking.ErrBatchLengthMismatch), errors.Is(err, ranking.ErrEmptyBatch):
		r.metrics.RecordBatch("rejected", 0, 0, elapsed)
		return apperr.NewValidationWrap("invalid batch", err)
	case errors.Is(err, ranking.ErrNoScoredQueries):
		r.metrics.RecordBatch("failed", 0, res.Failed, elapsed)
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	case err != nil:
		return fmt.Errorf("evaluate batch: %w", err)
	}
	r.metrics.RecordBatch("ok", res.Evaluated, res.Failed, elapsed)

	resp := EvaluateResponse{
		Means:      res.Means,
		Summary:    report.Summary(res.Means, cfg.Report),
		Evaluated:  res.Evaluated,
		Failed:     res.Failed,
		Unknown:    res.Unknown,
		Unreported: res.Unreported,
	}
	for _, q := range res.Queries {
		if q.Err != nil {
			resp.Errors = append(resp.Errors, QueryError{Index: q.Index, Error: q.Err.Error()})
		}
	}

	if req.Persist {
		id, err := r.store.Save(c.Request().Context(), &storage.Run{
			Name:       req.Name,
			Engine:     req.Engine,
			QueryCount: len(req.Truth),
			Evaluated:  res.Evaluated,
			Failed:     res.Failed,
			Means:      res.Means,
		})
		if err != nil {
			return fmt.Errorf("save run: %w", err)
		}
		resp.RunID = &id
		slog.Info("Run stored", "id", id, "name", req.Name, "queries", len(req.Truth))
	}

	return c.JSON(http.StatusOK, resp)
}

func (r *EvalRouter) scoringConfig(req EvaluateRequest) (ranking.Config, error) {
	cfg := ranking.DefaultConfig()
	cfg.Workers = r.cfg.Workers
	cfg.Options = catalog.Options{Graded: req.Graded, Strict: req.Strict}

	if len(req.Catalog) > 0 {
		c, err := newCatalog(req.Catalog, req.Strict)
		if err != nil {
			return ranking.Config{}, err
		}
		cfg.Catalog = c
	}
	if len(req.Report) > 0 {
		cfg.Report = req.Report
	}
	if req.IncludeAll {
		cfg = cfg.IncludeAll()
	}
	return cfg, nil
}

func newCatalog(names []string, strict bool) (*catalog.Catalog, error) {
	if !strict {
		return catalog.New(names...), nil
	}
	c, err := catalog.Strict(names...)
	if err != nil {
		return nil, apperr.NewValidationWrap("invalid metric catalog", err)
	}
	return c, nil
}

// evaluateQueryHandler godoc
// @Summary Evaluate a single ranking
// @Description Returns one value per requested metric, in request order
// @Tags evaluate
// @Accept json
// @Produce json
// @Param request body QueryRequest true "Query to score"
// @Success 200 {object} QueryResponse
// @Failure 400 {object} apperr.ErrorResponse
// @Router /v1/evaluate/query [post]
func (r *EvalRouter) evaluateQueryHandler(c echo.Context) error {
	var req QueryRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}

	names := req.Metrics
	if len(names) == 0 {
		names = catalog.DefaultNames
	}
	cat, err := newCatalog(names, req.Strict)
	if err != nil {
		return err
	}

	v, err := ranking.NewEvaluator(cat, catalog.Options{Graded: req.Graded, Strict: req.Strict}).Evaluate(req.Truth, req.Pred)
	if err != nil {
		return apperr.NewValidationWrap("query could not be scored", err)
	}

	resp := QueryResponse{Metrics: make([]MetricValue, len(v.Specs))}
	for i, s := range v.Specs {
		resp.Metrics[i] = MetricValue{Name: s.Name, Value: v.Values[i]}
	}
	return c.JSON(http.StatusOK, resp)
}

// catalogHandler godoc
// @Summary List the default metric catalog
// @Tags catalog
// @Produce json
// @Success 200 {object} CatalogResponse
// @Router /v1/catalog [get]
func (r *EvalRouter) catalogHandler(c echo.Context) error {
	specs := catalog.Default().Specs()
	resp := CatalogResponse{
		Metrics: make([]CatalogEntry, len(specs)),
		Report:  catalog.DefaultReport,
	}
	for i, s := range specs {
		resp.Metrics[i] = CatalogEntry{Name: s.Name, Short: s.Short(), Kind: s.Kind.String(), K: s.K}
	}
	return c.JSON(http.StatusOK, resp)
}
