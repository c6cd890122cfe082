package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"panchayat.backend/internal/domain/access"
	"panchayat.backend/internal/domain/entities"
	domainerrors "panchayat.backend/internal/domain/errors"
	"panchayat.backend/internal/usecases"
	"panchayat.backend/pkg/metrics"
	"panchayat.backend/pkg/redis"
)

type verifierStub struct {
	fn func(ctx context.Context, token string) (*usecases.Session, error)
}

func (s verifierStub) VerifySession(ctx context.Context, token string) (*usecases.Session, error) {
	return s.fn(ctx, token)
}

func sessionFor(username string, role entities.UserRole) *usecases.Session {
	return &usecases.Session{
		Actor:     access.Actor{Username: username, Role: role, ProfileID: 1},
		TokenID:   "jti-" + username,
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func serve(r *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set(AuthorizationHeader, token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_BearerFlow(t *testing.T) {
	gin.SetMode(gin.TestMode)
	verifier := verifierStub{fn: func(_ context.Context, token string) (*usecases.Session, error) {
		switch token {
		case "alice-token":
			return sessionFor("alice", entities.RoleCitizen), nil
		case "expired":
			return nil, domainerrors.NewAppError(http.StatusUnauthorized, domainerrors.CodeUnauthorized, "token expired", domainerrors.ErrTokenExpired)
		}
		return nil, domainerrors.Unauthorized("invalid token")
	}}

	r := gin.New()
	r.Use(AuthMiddleware(verifier))
	r.GET("/me", func(c *gin.Context) { c.String(http.StatusOK, GetActor(c).Username) })

	t.Run("missing token", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/me", "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/me", "Basic abc")
		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Bearer")
	})

	t.Run("expired token", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/me", "Bearer expired")
		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "token expired")
	})

	t.Run("valid token", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/me", "Bearer alice-token")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "alice", w.Body.String())
	})
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	verifier := verifierStub{fn: func(_ context.Context, token string) (*usecases.Session, error) {
		return sessionFor(token, entities.UserRole(strings.ToUpper(token))), nil
	}}

	r := gin.New()
	r.Use(AuthMiddleware(verifier))
	r.GET("/admin", RequireRole(entities.RoleAdmin), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	assert.Equal(t, http.StatusNoContent, serve(r, http.MethodGet, "/admin", "Bearer admin").Code)
	assert.Equal(t, http.StatusForbidden, serve(r, http.MethodGet, "/admin", "Bearer citizen").Code)

	bare := gin.New()
	bare.GET("/admin", RequireRole(entities.RoleAdmin), func(c *gin.Context) { c.Status(http.StatusNoContent) })
	assert.Equal(t, http.StatusUnauthorized, serve(bare, http.MethodGet, "/admin", "").Code)
}

func TestGetActor_Anonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Equal(t, access.Actor{}, GetActor(c))
}

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(RequestIDKey)) })

	w := serve(r, http.MethodGet, "/", "")
	generated := w.Header().Get(RequestIDHeader)
	require.NotEmpty(t, generated)
	assert.Equal(t, generated, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := metrics.New()
	r := gin.New()
	r.Use(MetricsMiddleware(m), LoggerMiddleware())
	r.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	serve(r, http.MethodGet, "/items/1", "")
	serve(r, http.MethodGet, "/items/2", "")
	serve(r, http.MethodGet, "/nowhere", "")

	families, err := m.Registry().Gather()
	require.NoError(t, err)
	routes := map[string]float64{}
	for _, f := range families {
		if f.GetName() != "panchayat_http_requests_total" {
			continue
		}
		for _, metric := range f.GetMetric() {
			for _, l := range metric.GetLabel() {
				if l.GetName() == "route" {
					routes[l.GetValue()] += metric.GetCounter().GetValue()
				}
			}
		}
	}
	assert.Equal(t, float64(2), routes["/items/:id"])
	assert.Equal(t, float64(1), routes["unmatched"])
}

func useMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	prev := redis.GetClient()
	redis.SetClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { redis.SetClient(prev) })
	return mr
}

func TestIdempotencyMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	useMiniredis(t)

	calls := 0
	r := gin.New()
	r.Use(AuthMiddleware(verifierStub{fn: func(_ context.Context, token string) (*usecases.Session, error) {
		return sessionFor(token, entities.RoleCitizen), nil
	}}))
	r.POST("/issues", IdempotencyMiddleware(), func(c *gin.Context) {
		calls++
		c.JSON(http.StatusCreated, gin.H{"issue_id": calls})
	})

	post := func(token, key string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/issues", nil)
		req.Header.Set(AuthorizationHeader, "Bearer "+token)
		if key != "" {
			req.Header.Set(IdempotencyHeader, key)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	first := post("alice", "k1")
	require.Equal(t, http.StatusCreated, first.Code)

	replayed := post("alice", "k1")
	assert.Equal(t, http.StatusCreated, replayed.Code)
	assert.Equal(t, "true", replayed.Header().Get("X-Idempotency-Hit"))
	assert.JSONEq(t, first.Body.String(), replayed.Body.String())
	assert.Equal(t, 1, calls)

	// keys are per user
	require.Equal(t, http.StatusCreated, post("bob", "k1").Code)
	assert.Equal(t, 2, calls)

	require.Equal(t, http.StatusCreated, post("alice", "").Code)
	assert.Equal(t, 3, calls)
}

func TestIdempotencyMiddleware_InFlightAndFailures(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mr := useMiniredis(t)

	r := gin.New()
	r.POST("/issues", IdempotencyMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "nope"})
	})
	post := func(key string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/issues", nil)
		req.Header.Set(IdempotencyHeader, key)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	require.NoError(t, mr.Set("idempotency::/issues:busy", processingMarker))
	assert.Equal(t, http.StatusConflict, post("busy").Code)

	assert.Equal(t, http.StatusBadRequest, post("failed").Code)
	assert.False(t, mr.Exists("idempotency::/issues:failed"), "failed responses are not retained")
}

func TestIdempotencyMiddleware_RedisDown(t *testing.T) {
	gin.SetMode(gin.TestMode)
	prev := redisGet
	redisGet = func(context.Context, string) (string, error) { return "", redis.ErrNotInitialized }
	t.Cleanup(func() { redisGet = prev })

	r := gin.New()
	r.POST("/issues", IdempotencyMiddleware(), func(c *gin.Context) { c.Status(http.StatusCreated) })
	req := httptest.NewRequest(http.MethodPost, "/issues", nil)
	req.Header.Set(IdempotencyHeader, "k")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)
}
