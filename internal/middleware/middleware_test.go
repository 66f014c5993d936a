package middleware

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "property-lookup/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), LoggingMiddleware(), MetricsMiddleware(), SecureHeaders(false), ErrorHandler(), Recovery())
	r.NoRoute(NotFound())
	return r
}

func perform(r http.Handler, method, path string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestRequestID(t *testing.T) {
	r := newRouter()
	r.GET("/id", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c))
	})

	w := perform(r, http.MethodGet, "/id", nil)
	generated := w.Header().Get(RequestIDHeader)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, w.Body.String())

	w = perform(r, http.MethodGet, "/id", map[string]string{RequestIDHeader: "abc-123"})
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
	assert.Equal(t, "abc-123", w.Body.String())
}

func TestGetRequestID_Unset(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Equal(t, "", GetRequestID(c))
}

func TestSecureHeaders(t *testing.T) {
	r := newRouter()
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := perform(r, http.MethodGet, "/ok", nil)
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Empty(t, w.Header().Get("Strict-Transport-Security"))

	prod := gin.New()
	prod.Use(SecureHeaders(true))
	prod.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	w = perform(prod, http.MethodGet, "/ok", nil)
	assert.Contains(t, w.Header().Get("Strict-Transport-Security"), "max-age=")
}

func TestNotFound(t *testing.T) {
	r := newRouter()

	w := perform(r, http.MethodGet, "/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, map[string]string{"error": "Resource not found"}, decodeError(t, w))
}

func TestErrorHandler_MapsAppErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"validation", apperrors.NewValidationError("missing", nil), http.StatusBadRequest, "redfin_url is required"},
		{"upstream", apperrors.NewUpstreamError("initialInfo failed", stderrors.New("dial tcp 10.0.0.1:443: i/o timeout")), http.StatusInternalServerError, "Internal server error"},
		{"plain error", stderrors.New("database password is hunter2"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRouter()
			r.GET("/fail", func(c *gin.Context) { _ = c.Error(tt.err) })

			w := perform(r, http.MethodGet, "/fail", nil)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, map[string]string{"error": tt.wantBody}, decodeError(t, w))
		})
	}
}

func TestErrorHandler_LeavesWrittenResponses(t *testing.T) {
	r := newRouter()
	r.GET("/partial", func(c *gin.Context) {
		c.JSON(http.StatusAccepted, gin.H{"status": "queued"})
		_ = c.Error(stderrors.New("late failure"))
	})

	w := perform(r, http.MethodGet, "/partial", nil)
	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.JSONEq(t, `{"status":"queued"}`, w.Body.String())
}

func TestRecovery(t *testing.T) {
	r := newRouter()
	r.GET("/panic", func(c *gin.Context) { panic("nil map write") })

	w := perform(r, http.MethodGet, "/panic", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, map[string]string{"error": "Internal server error"}, decodeError(t, w))
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}
