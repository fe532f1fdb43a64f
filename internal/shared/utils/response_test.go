package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/brt06a/Testv5/internal/shared/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decodeMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Message
}

func TestErrorResponseWithError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"not found", apperrors.NewNotFoundError("Plan not found"), http.StatusNotFound, "Plan not found"},
		{"validation", apperrors.NewValidationError("Missing order_id"), http.StatusBadRequest, "Missing order_id"},
		{"unauthorized", apperrors.NewUnauthorizedError("Unauthorized"), http.StatusUnauthorized, "Unauthorized"},
		{
			"upstream keeps cause private",
			apperrors.NewUpstreamError("Failed to create payment").WithCause(errors.New("cashfree: 401 bad key")),
			http.StatusInternalServerError,
			"Failed to create payment",
		},
		{"plain error", errors.New("dial tcp: refused"), http.StatusInternalServerError, genericErrorMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			ErrorResponseWithError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantMessage, decodeMessage(t, w))
			assert.NotContains(t, w.Body.String(), "cashfree")
		})
	}
}

func TestOKResponse(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	OKResponse(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
}

func TestJSONResponse_NoEnvelope(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	JSONResponse(c, http.StatusOK, []string{"a", "b"})

	assert.JSONEq(t, `["a","b"]`, w.Body.String())
}
