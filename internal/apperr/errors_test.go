package apperr_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DjordjeVuckovic/rank-eval/internal/apperr"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidation(t *testing.T) {
	err := apperr.NewValidation("truth is required")

	assert.Equal(t, "truth is required", err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestNewValidationWrap(t *testing.T) {
	inner := fmt.Errorf("2 truth sets, 1 prediction lists")
	err := apperr.NewValidationWrap("batch length mismatch", inner)

	assert.Equal(t, "batch length mismatch: 2 truth sets, 1 prediction lists", err.Error())
	assert.ErrorIs(t, err, inner)
}

func TestValidationError_SurvivesFmtWrapping(t *testing.T) {
	original := apperr.NewValidation("empty batch")
	doubleWrapped := fmt.Errorf("handler: %w", fmt.Errorf("evaluate: %w", original))

	var ve *apperr.ValidationError
	require.ErrorAs(t, doubleWrapped, &ve)
	assert.Equal(t, "empty batch", ve.Message)
}

func TestValidationError_NotFoundForPlainErrors(t *testing.T) {
	wrapped := fmt.Errorf("storage error: %w", errors.New("database connection failed"))

	var ve *apperr.ValidationError
	assert.False(t, errors.As(wrapped, &ve))
}

func TestGlobalErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"validation", apperr.NewValidation("bad input"), http.StatusBadRequest, "bad input"},
		{"not found", fmt.Errorf("get: %w", apperr.NewNotFound("run", "42")), http.StatusNotFound, "run 42 not found"},
		{"http error", echo.NewHTTPError(http.StatusUnprocessableEntity, "no query could be scored"), http.StatusUnprocessableEntity, "no query could be scored"},
		{"internal", errors.New("db down"), http.StatusInternalServerError, "internal server error"},
	}

	e := echo.New()
	handler := apperr.GlobalErrorHandler()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			handler(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body apperr.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantError, body.Error)
		})
	}
}
