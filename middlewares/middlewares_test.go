package middlewares

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Kariqs/amexan-eats-api/auth"
	"github.com/Kariqs/amexan-eats-api/models"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	handlers = append(handlers, func(ctx *gin.Context) {
		identity, _ := CurrentIdentity(ctx)
		ctx.JSON(http.StatusOK, gin.H{"userId": identity.UserID})
	})
	router.GET("/protected", handlers...)
	return router
}

func serve(router http.Handler, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func accessToken(t *testing.T, tokens *auth.TokenMaker, id uint, role models.Role) string {
	t.Helper()
	token, err := tokens.GenerateAccessToken(&models.User{Model: gorm.Model{ID: id}, Email: "u@example.com", Role: role})
	require.NoError(t, err)
	return token
}

func TestRequireAuth(t *testing.T) {
	tokens := auth.NewTokenMaker("secret", time.Hour, time.Minute)
	router := newTestRouter(RequireAuth(tokens))
	token := accessToken(t, tokens, 7, models.RoleUser)

	tests := []struct {
		name          string
		authorization string
		status        int
		body          string
	}{
		{"bearer token", "Bearer " + token, http.StatusOK, `{"userId":7}`},
		{"lowercase scheme", "bearer " + token, http.StatusOK, `{"userId":7}`},
		{"bare token", token, http.StatusOK, `{"userId":7}`},
		{"missing header", "", http.StatusUnauthorized, `{"message":"Authorization token required"}`},
		{"garbage token", "Bearer nope", http.StatusUnauthorized, `{"message":"Invalid or expired token"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(router, tt.authorization)
			assert.Equal(t, tt.status, rec.Code)
			assert.JSONEq(t, tt.body, rec.Body.String())
		})
	}
}

func TestRequireAuth_RejectsResetTokens(t *testing.T) {
	tokens := auth.NewTokenMaker("secret", time.Hour, time.Minute)
	reset, err := tokens.GenerateResetToken(&models.User{Model: gorm.Model{ID: 7}, Role: models.RoleUser})
	require.NoError(t, err)

	rec := serve(newTestRouter(RequireAuth(tokens)), "Bearer "+reset)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRole(t *testing.T) {
	tokens := auth.NewTokenMaker("secret", time.Hour, time.Minute)
	router := newTestRouter(RequireAuth(tokens), RequireRole(models.RoleOwner, models.RoleAdmin))

	rec := serve(router, "Bearer "+accessToken(t, tokens, 1, models.RoleUser))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"message":"You are not allowed to perform this action"}`, rec.Body.String())

	rec = serve(router, "Bearer "+accessToken(t, tokens, 2, models.RoleOwner))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(router, "Bearer "+accessToken(t, tokens, 3, models.RoleAdmin))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRole_WithoutIdentity(t *testing.T) {
	rec := serve(newTestRouter(RequireRole(models.RoleAdmin)), "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"User not found in context"}`, rec.Body.String())
}

type fakeLimiter struct {
	allowed bool
	err     error
	keys    []string
}

func (l *fakeLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.keys = append(l.keys, key)
	return l.allowed, l.err
}

func TestRateLimit(t *testing.T) {
	t.Run("over the limit", func(t *testing.T) {
		limiter := &fakeLimiter{allowed: false}
		rec := serve(newTestRouter(RateLimit(limiter, zerolog.Nop())), "")
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.JSONEq(t, `{"message":"Too many requests, try again later"}`, rec.Body.String())
		require.Len(t, limiter.keys, 1)
		assert.Equal(t, "/protected:192.0.2.1", limiter.keys[0])
	})

	t.Run("within the limit", func(t *testing.T) {
		rec := serve(newTestRouter(RateLimit(&fakeLimiter{allowed: true}, zerolog.Nop())), "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("limiter failure lets the request through", func(t *testing.T) {
		var logs bytes.Buffer
		limiter := &fakeLimiter{err: errors.New("connection refused")}
		rec := serve(newTestRouter(RateLimit(limiter, zerolog.New(&logs))), "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, logs.String(), "rate limiter unavailable")
	})

	t.Run("nil limiter", func(t *testing.T) {
		rec := serve(newTestRouter(RateLimit(nil, zerolog.Nop())), "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

type fakeScripter struct {
	counts map[string]int64
	args   []interface{}
	err    error
}

func (s *fakeScripter) Eval(_ context.Context, _ string, keys []string, args ...interface{}) *redis.Cmd {
	if s.err != nil {
		return redis.NewCmdResult(nil, s.err)
	}
	s.args = args
	s.counts[keys[0]]++
	return redis.NewCmdResult(s.counts[keys[0]], nil)
}

func TestRedisLimiter_Allow(t *testing.T) {
	scripter := &fakeScripter{counts: map[string]int64{}}
	limiter := NewRedisLimiter(scripter, 2, time.Minute)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		allowed, err := limiter.Allow(ctx, "/auth/login:10.0.0.1")
		require.NoError(t, err)
		assert.True(t, allowed)
	}
	allowed, err := limiter.Allow(ctx, "/auth/login:10.0.0.1")
	require.NoError(t, err)
	assert.False(t, allowed)

	allowed, err = limiter.Allow(ctx, "/auth/login:10.0.0.2")
	require.NoError(t, err)
	assert.True(t, allowed)

	assert.Equal(t, int64(3), scripter.counts["ratelimit:/auth/login:10.0.0.1"])
	assert.Equal(t, []interface{}{int64(60000)}, scripter.args)
}

func TestRedisLimiter_Error(t *testing.T) {
	limiter := NewRedisLimiter(&fakeScripter{err: errors.New("dial tcp: refused")}, 2, time.Minute)
	allowed, err := limiter.Allow(context.Background(), "k")
	assert.Error(t, err)
	assert.False(t, allowed)
}

func TestRequestLogger(t *testing.T) {
	var logs bytes.Buffer
	router := gin.New()
	router.Use(RequestLogger(zerolog.New(&logs)))
	router.GET("/ping", func(ctx *gin.Context) {
		zerolog.Ctx(ctx.Request.Context()).Info().Msg("inside handler")
		ctx.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	requestID := rec.Header().Get(RequestIDHeader)
	require.NotEmpty(t, requestID)
	assert.Contains(t, logs.String(), `"message":"inside handler"`)
	assert.Contains(t, logs.String(), `"message":"request handled"`)
	assert.Equal(t, 2, bytes.Count(logs.Bytes(), []byte(requestID)))

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}
