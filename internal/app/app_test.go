package app

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"jobmatch/internal/config"
	"jobmatch/internal/database/sqldb"
	"jobmatch/internal/infrastructure/cache"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	cfg := config.Config{
		App:            config.AppConfig{AppName: "jobmatch-test"},
		JWT:            config.JWTConfig{AccessSecret: "secret", AccessExpiresIn: time.Minute},
		Recommendation: config.RecommendationConfig{CacheTTL: time.Minute, JobPool: 200},
	}
	c := newContainer(cfg, zap.NewNop(), sqldb.New(db), cache.NewRedisWithClient(client, time.Minute, nil))
	t.Cleanup(func() { _ = c.Close() })
	return New(c)
}

func TestApp_Health(t *testing.T) {
	a := newTestApp(t)

	resp, err := a.Fiber.Test(httptest.NewRequest(fiber.MethodGet, "/health", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, string(b), `"database":"up"`)
	assert.Contains(t, string(b), `"cache":"up"`)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestApp_AuthenticatedMatch(t *testing.T) {
	a := newTestApp(t)
	tok, err := a.Container.JWT.GenerateAccessToken(uuid.New())
	require.NoError(t, err)

	body := `{"candidate": {"skills": ["Go"]}, "job": {"title": "Go Engineer", "required_skills": ["Go"]}}`
	req := httptest.NewRequest(fiber.MethodPost, "/api/v1/match", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+tok)

	resp, err := a.Fiber.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestListenAddr(t *testing.T) {
	addr, err := ListenAddr("8080")
	require.NoError(t, err)
	assert.Equal(t, ":8080", addr)

	addr, err = ListenAddr(":9090")
	require.NoError(t, err)
	assert.Equal(t, ":9090", addr)

	_, err = ListenAddr("  ")
	assert.Error(t, err)
}
