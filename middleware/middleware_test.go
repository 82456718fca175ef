package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"xray-education-service/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func sessionTestRouter(required bool) (*gin.Engine, *auth.TokenService) {
	gin.SetMode(gin.TestMode)
	tokens := auth.NewTokenService("test-secret", time.Hour)

	r := gin.New()
	if required {
		r.Use(SessionRequired(tokens))
	} else {
		r.Use(SessionOptional(tokens))
	}
	r.GET("/probe", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"session_id": SessionID(c)})
	})

	return r, tokens
}

func TestSessionRequired_MissingHeader(t *testing.T) {
	r, _ := sessionTestRouter(true)

	req := httptest.NewRequest("GET", "/probe", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionRequired_BadScheme(t *testing.T) {
	r, _ := sessionTestRouter(true)

	req := httptest.NewRequest("GET", "/probe", nil)
	req.Header.Set("Authorization", "Basic abc123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionRequired_ValidToken(t *testing.T) {
	r, tokens := sessionTestRouter(true)

	token, err := tokens.Issue("sess-42")
	assert.NoError(t, err)

	req := httptest.NewRequest("GET", "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "sess-42")
}

func TestSessionOptional_Anonymous(t *testing.T) {
	r, _ := sessionTestRouter(false)

	req := httptest.NewRequest("GET", "/probe", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"session_id":""`)
}

func TestSessionOptional_InvalidTokenRejected(t *testing.T) {
	r, _ := sessionTestRouter(false)

	req := httptest.NewRequest("GET", "/probe", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRateLimiterAllow(t *testing.T) {
	limiter := NewRateLimiter(2, time.Hour)

	assert.True(t, limiter.Allow("1.2.3.4"))
	assert.True(t, limiter.Allow("1.2.3.4"))
	assert.False(t, limiter.Allow("1.2.3.4"))

	// Other clients are tracked independently
	assert.True(t, limiter.Allow("5.6.7.8"))
}

func TestRateLimiterWindowExpiry(t *testing.T) {
	limiter := NewRateLimiter(1, 50*time.Millisecond)

	assert.True(t, limiter.Allow("1.2.3.4"))
	assert.False(t, limiter.Allow("1.2.3.4"))

	time.Sleep(100 * time.Millisecond)
	assert.True(t, limiter.Allow("1.2.3.4"))
}

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimitMiddleware(1, time.Hour))
	r.GET("/probe", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/probe", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "retry_after")
}

func TestCORSMiddlewarePreflights(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORSMiddleware())
	r.GET("/probe", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest("OPTIONS", "/probe", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, 204, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
