package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestLoginRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	limiter := NewLoginRateLimiter(rate.Limit(0), 2)
	r.POST("/login", limiter.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	hit := func() int {
		req := httptest.NewRequest("POST", "/login", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	// Burst of 2, no refill.
	assert.Equal(t, http.StatusOK, hit())
	assert.Equal(t, http.StatusOK, hit())
	assert.Equal(t, http.StatusTooManyRequests, hit())
}
