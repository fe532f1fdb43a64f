package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	plandto "github.com/brt06a/Testv5/internal/application/plan/dto"
	"github.com/brt06a/Testv5/internal/interfaces/http/handlers/testutil"
	apperrors "github.com/brt06a/Testv5/internal/shared/errors"
	"github.com/brt06a/Testv5/internal/shared/logger"
)

func TestPlanHandler_ListPlans_Success(t *testing.T) {
	mockUC := &mockListPlansUC{result: []*plandto.PlanDTO{
		{ID: "p1", Name: "1 Day Pass", Duration: "24 hours", Price: "99.00", Features: []string{"a"}, Popular: false},
		{ID: "p2", Name: "1 Week Pro", Duration: "7 days", Price: "499.00", Features: []string{"b"}, Popular: true},
	}}
	handler := NewPlanHandler(mockUC, logger.NewDiscard())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/plans", nil)
	handler.ListPlans(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var plans []plandto.PlanDTO
	require.NoError(t, testutil.ParseResponse(w, &plans))
	require.Len(t, plans, 2)
	assert.Equal(t, "1 Day Pass", plans[0].Name)
	assert.Equal(t, "499.00", plans[1].Price)
	assert.True(t, plans[1].Popular)
}

func TestPlanHandler_ListPlans_EmptyIsArray(t *testing.T) {
	handler := NewPlanHandler(&mockListPlansUC{result: []*plandto.PlanDTO{}}, logger.NewDiscard())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/plans", nil)
	handler.ListPlans(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestPlanHandler_ListPlans_Error(t *testing.T) {
	mockUC := &mockListPlansUC{err: apperrors.NewInternalError("Failed to fetch plans").WithCause(errors.New("db down"))}
	handler := NewPlanHandler(mockUC, logger.NewDiscard())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/plans", nil)
	handler.ListPlans(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body testutil.MessageBody
	require.NoError(t, testutil.ParseResponse(w, &body))
	assert.Equal(t, "Failed to fetch plans", body.Message)
	assert.NotContains(t, w.Body.String(), "db down")
}
