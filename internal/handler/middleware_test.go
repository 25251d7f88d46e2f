package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"
)

func newTestMiddlewareRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), CORS([]string{"http://localhost:3000"}))
	r.GET("/health", GetHealth)
	r.GET("/id", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(requestIDKey))
	})
	return r
}

func TestRequestID_Generated(t *testing.T) {
	r := newTestMiddlewareRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/id", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 36, len(w.Header().Get(requestIDHeader)))
	assert.Equal(t, w.Header().Get(requestIDHeader), w.Body.String())
}

func TestRequestID_Reused(t *testing.T) {
	r := newTestMiddlewareRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/id", nil)
	req.Header.Set(requestIDHeader, "abc")
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc", w.Header().Get(requestIDHeader))
	assert.Equal(t, "abc", w.Body.String())
}

func TestCORS(t *testing.T) {
	r := newTestMiddlewareRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, `{"status":"healthy"}`, w.Body.String())

	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/health", nil)
	req.Header.Set("Origin", "http://evil.example")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
