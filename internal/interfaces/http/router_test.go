package http

import (
	"bytes"
	"context"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/brt06a/Testv5/internal/infrastructure/config"
	"github.com/brt06a/Testv5/internal/infrastructure/migration"
	sharedConfig "github.com/brt06a/Testv5/internal/shared/config"
	"github.com/brt06a/Testv5/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupTestRouter(t *testing.T) *Router {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, gdb.AutoMigrate(migration.AutoMigrateModels()...))

	cfg := &config.Config{
		Server: sharedConfig.ServerConfig{
			Mode:           gin.TestMode,
			PublicBaseURL:  "http://localhost:5000",
			AllowedOrigins: []string{"http://localhost:5000"},
		},
		Database: sharedConfig.DatabaseConfig{Driver: sharedConfig.DriverSQLite, Database: ":memory:"},
		Auth: sharedConfig.AuthConfig{
			Password: sharedConfig.PasswordConfig{BcryptCost: 4},
			Session:  sharedConfig.SessionConfig{Store: sharedConfig.SessionStoreMemory, TTLHours: 24},
		},
		Payment: sharedConfig.PaymentConfig{Gateway: sharedConfig.GatewayMock},
	}

	container, err := NewContainer(context.Background(), gdb, cfg, logger.NewDiscard())
	require.NoError(t, err)

	router := NewRouter(container)
	router.SetupRoutes()

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		router.Shutdown(ctx)
		_ = sqlDB.Close()
	})

	return router
}

type apiCall struct {
	method string
	path   string
	body   string
	token  string
}

func (r *Router) do(t *testing.T, call apiCall) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if call.body != "" {
		body = bytes.NewReader([]byte(call.body))
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(call.method, call.path, body)
	req.Header.Set("Content-Type", "application/json")
	if call.token != "" {
		req.Header.Set("Authorization", "Bearer "+call.token)
	}

	w := httptest.NewRecorder()
	r.GetEngine().ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestRouter_CheckoutFlow(t *testing.T) {
	router := setupTestRouter(t)

	// seed is idempotent
	w := router.do(t, apiCall{method: nethttp.MethodPost, path: "/api/seed"})
	require.Equal(t, nethttp.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Data seeded successfully"}`, w.Body.String())

	w = router.do(t, apiCall{method: nethttp.MethodPost, path: "/api/seed"})
	require.Equal(t, nethttp.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Data already seeded"}`, w.Body.String())

	// catalogue
	w = router.do(t, apiCall{method: nethttp.MethodGet, path: "/api/plans"})
	require.Equal(t, nethttp.StatusOK, w.Code)
	plans := decode[[]map[string]any](t, w)
	require.Len(t, plans, 3)
	assert.Equal(t, "1 Day Pass", plans[0]["name"])
	assert.Equal(t, "1 Week Pro", plans[1]["name"])
	assert.Equal(t, "1 Month Premium", plans[2]["name"])
	assert.Equal(t, true, plans[1]["popular"])
	assert.Equal(t, "499.00", plans[1]["price"])

	weekID := plans[1]["id"].(string)

	// create order
	w = router.do(t, apiCall{
		method: nethttp.MethodPost,
		path:   "/api/payments/create",
		body:   `{"planId":"` + weekID + `","customerName":"Asha","customerEmail":"asha@example.com"}`,
	})
	require.Equal(t, nethttp.StatusOK, w.Code, w.Body.String())
	created := decode[map[string]string](t, w)
	orderID := created["orderId"]
	assert.True(t, strings.HasPrefix(orderID, "order_"))
	assert.Equal(t, "http://localhost:5000/payment-status?order_id="+orderID, created["paymentUrl"])

	// pending payment is visible
	w = router.do(t, apiCall{method: nethttp.MethodGet, path: "/api/payments/verify/" + orderID})
	require.Equal(t, nethttp.StatusOK, w.Code)
	pending := decode[map[string]any](t, w)
	assert.Equal(t, "PENDING", pending["status"])
	assert.Equal(t, "499.00", pending["amount"])
	assert.Equal(t, "INR", pending["currency"])
	assert.Equal(t, "1 Week Pro", pending["planName"])
	assert.Nil(t, pending["completedAt"])

	// gateway reports success
	w = router.do(t, apiCall{
		method: nethttp.MethodPost,
		path:   "/api/payment/webhook",
		body:   `{"order_id":"` + orderID + `","order_status":"PAID","payment":{"payment_method":"upi","utr":"412345678901"}}`,
	})
	require.Equal(t, nethttp.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	w = router.do(t, apiCall{method: nethttp.MethodGet, path: "/api/payments/verify/" + orderID})
	require.Equal(t, nethttp.StatusOK, w.Code)
	paid := decode[map[string]any](t, w)
	assert.Equal(t, "SUCCESS", paid["status"])
	assert.Equal(t, "upi", paid["paymentMethod"])
	assert.Equal(t, "412345678901", paid["utr"])
	assert.Nil(t, paid["transactionId"])
	assert.NotNil(t, paid["completedAt"])

	// a late failure report does not undo success
	w = router.do(t, apiCall{
		method: nethttp.MethodPost,
		path:   "/api/payment/webhook",
		body:   `{"order_id":"` + orderID + `","order_status":"FAILED"}`,
	})
	require.Equal(t, nethttp.StatusOK, w.Code)

	w = router.do(t, apiCall{method: nethttp.MethodGet, path: "/api/payments/verify/" + orderID})
	assert.Equal(t, "SUCCESS", decode[map[string]any](t, w)["status"])
}

func TestRouter_PaymentErrors(t *testing.T) {
	router := setupTestRouter(t)

	tests := []struct {
		name       string
		call       apiCall
		wantStatus int
		wantBody   string
	}{
		{
			name:       "create with unknown plan",
			call:       apiCall{method: nethttp.MethodPost, path: "/api/payments/create", body: `{"planId":"missing"}`},
			wantStatus: nethttp.StatusNotFound,
			wantBody:   `{"message":"Plan not found"}`,
		},
		{
			name:       "create without plan",
			call:       apiCall{method: nethttp.MethodPost, path: "/api/payments/create", body: `{}`},
			wantStatus: nethttp.StatusBadRequest,
			wantBody:   `{"message":"Invalid request data"}`,
		},
		{
			name:       "webhook without order id",
			call:       apiCall{method: nethttp.MethodPost, path: "/api/payment/webhook", body: `{"order_status":"PAID"}`},
			wantStatus: nethttp.StatusBadRequest,
			wantBody:   `{"message":"Missing order_id"}`,
		},
		{
			name:       "webhook for unknown order",
			call:       apiCall{method: nethttp.MethodPost, path: "/api/payment/webhook", body: `{"order_id":"order_0_deadbeef","order_status":"PAID"}`},
			wantStatus: nethttp.StatusNotFound,
			wantBody:   `{"message":"Payment not found"}`,
		},
		{
			name:       "verify unknown order",
			call:       apiCall{method: nethttp.MethodGet, path: "/api/payments/verify/order_0_deadbeef"},
			wantStatus: nethttp.StatusNotFound,
			wantBody:   `{"message":"Payment not found"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := router.do(t, tt.call)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestRouter_AdminSession(t *testing.T) {
	router := setupTestRouter(t)

	w := router.do(t, apiCall{method: nethttp.MethodPost, path: "/api/seed"})
	require.Equal(t, nethttp.StatusOK, w.Code)

	// gated without a token
	w = router.do(t, apiCall{method: nethttp.MethodGet, path: "/api/admin/payments"})
	assert.Equal(t, nethttp.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Unauthorized"}`, w.Body.String())

	w = router.do(t, apiCall{method: nethttp.MethodPost, path: "/api/admin/login", body: `{"username":"admin","password":"nope"}`})
	assert.Equal(t, nethttp.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Invalid credentials"}`, w.Body.String())

	w = router.do(t, apiCall{method: nethttp.MethodPost, path: "/api/admin/login", body: `{"username":"admin"}`})
	assert.Equal(t, nethttp.StatusBadRequest, w.Code)

	w = router.do(t, apiCall{method: nethttp.MethodPost, path: "/api/admin/login", body: `{"username":"admin","password":"admin123"}`})
	require.Equal(t, nethttp.StatusOK, w.Code, w.Body.String())
	login := decode[map[string]any](t, w)
	assert.Equal(t, true, login["success"])
	token := login["sessionId"].(string)
	assert.Len(t, token, 64)

	w = router.do(t, apiCall{method: nethttp.MethodGet, path: "/api/admin/payments", token: token})
	require.Equal(t, nethttp.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = router.do(t, apiCall{method: nethttp.MethodPost, path: "/api/admin/logout", token: token})
	require.Equal(t, nethttp.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	// logout is idempotent and the token is dead
	w = router.do(t, apiCall{method: nethttp.MethodPost, path: "/api/admin/logout", token: token})
	assert.Equal(t, nethttp.StatusOK, w.Code)

	w = router.do(t, apiCall{method: nethttp.MethodGet, path: "/api/admin/payments", token: token})
	assert.Equal(t, nethttp.StatusUnauthorized, w.Code)
}

func TestRouter_Health(t *testing.T) {
	router := setupTestRouter(t)

	w := router.do(t, apiCall{method: nethttp.MethodGet, path: "/health"})
	assert.Equal(t, nethttp.StatusOK, w.Code)
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}
