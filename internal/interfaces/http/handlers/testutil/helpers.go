package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"

	"github.com/brt06a/Testv5/internal/shared/constants"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// NewTestContext creates a test gin.Context with the given method, path, and optional body.
func NewTestContext(method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()

	var req *http.Request
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBytes))
		req.Header.Set(constants.HeaderContentType, "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	return c, w
}

// NewRawTestContext creates a test gin.Context carrying body verbatim.
func NewRawTestContext(method, path string, body []byte) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set(constants.HeaderContentType, "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	return c, w
}

// SetAdminContext sets admin_id and session_id (simulating the admin middleware).
func SetAdminContext(c *gin.Context, adminID string) {
	c.Set(constants.ContextKeyAdminID, adminID)
	c.Set(constants.ContextKeySessionID, "test-session-id")
}

// SetBearer sets the Authorization header to "Bearer <token>".
func SetBearer(c *gin.Context, token string) {
	c.Request.Header.Set(constants.HeaderAuthorization, constants.BearerPrefix+token)
}

// SetURLParam sets a URL parameter on the gin context.
func SetURLParam(c *gin.Context, key, value string) {
	c.Params = append(c.Params, gin.Param{Key: key, Value: value})
}

// ParseResponse parses the JSON response body into the target struct.
func ParseResponse(w *httptest.ResponseRecorder, target interface{}) error {
	return json.Unmarshal(w.Body.Bytes(), target)
}

// MessageBody mirrors utils.MessageResponse for test assertions.
type MessageBody struct {
	Message string `json:"message"`
}
