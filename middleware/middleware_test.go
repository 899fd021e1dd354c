package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"rental-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Logger(), OwnerContext())
	r.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"owner": OwnerID(c), "requestId": c.GetString(utils.RequestIDKey)})
	})
	return r
}

func TestOwnerContext(t *testing.T) {
	r := newRouter()

	for _, header := range []string{"", "abc", "0", "-4"} {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		if header != "" {
			req.Header.Set("X-Owner-ID", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, header)
	}

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("X-Owner-ID", " 42 ")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"owner":42`)
}

func TestLoggerRequestID(t *testing.T) {
	r := newRouter()

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("X-Owner-ID", "1")
	req.Header.Set("X-Request-ID", "req-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
	assert.Contains(t, w.Body.String(), `"requestId":"req-123"`)

	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("X-Owner-ID", "1")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Len(t, w.Header().Get("X-Request-ID"), 36)
}

func TestOwnerIDOutsideContext(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Zero(t, OwnerID(c))
}
