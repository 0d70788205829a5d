package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/DjordjeVuckovic/rank-eval/internal/apperr"
	"github.com/DjordjeVuckovic/rank-eval/internal/storage"
	"github.com/DjordjeVuckovic/rank-eval/pkg/pagination"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// listRunsHandler godoc
// @Summary List stored runs
// @Description Most recent first
// @Tags runs
// @Produce json
// @Param page query int false "Page (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} pagination.OffsetResult[storage.Run]
// @Failure 400 {object} apperr.ErrorResponse
// @Router /v1/runs [get]
func (r *EvalRouter) listRunsHandler(c echo.Context) error {
	var page pagination.OffsetRequest
	if err := c.Bind(&page); err != nil {
		return apperr.NewValidationWrap("invalid pagination", err)
	}
	page.Normalize()

	runs, total, err := r.store.List(c.Request().Context(), page.Offset(), page.Size)
	if err != nil {
		return fmt.Errorf("list runs: %w", err)
	}
	return c.JSON(http.StatusOK, pagination.NewOffsetResult(runs, total, page))
}

// getRunHandler godoc
// @Summary Get a stored run
// @Tags runs
// @Produce json
// @Param id path string true "Run id"
// @Success 200 {object} RunResponse
// @Failure 400 {object} apperr.ErrorResponse
// @Failure 404 {object} apperr.ErrorResponse
// @Router /v1/runs/{id} [get]
func (r *EvalRouter) getRunHandler(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.NewValidationWrap("invalid run id", err)
	}

	run, err := r.store.Get(c.Request().Context(), id)
	if errors.Is(err, storage.ErrRunNotFound) {
		return apperr.NewNotFound("run", id.String())
	}
	if err != nil {
		return fmt.Errorf("get run: %w", err)
	}
	return c.JSON(http.StatusOK, run)
}
