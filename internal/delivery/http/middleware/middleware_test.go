package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"jobmatch/internal/pkg/jwt"
	"jobmatch/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func do(t *testing.T, app *fiber.App, method, path, auth string) (int, response.SemanticResponse, string) {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if auth != "" {
		req.Header.Set(fiber.HeaderAuthorization, auth)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out response.SemanticResponse
	if len(b) > 0 {
		require.NoError(t, json.Unmarshal(b, &out))
	}
	return resp.StatusCode, out, resp.Header.Get(HeaderRequestID)
}

func newApp() *fiber.App {
	app := fiber.New()
	app.Use(NewAccessLogMiddleware(nil).Middleware())
	app.Use(Metrics())
	app.Use(NewErrorMiddleware(nil).Middleware())
	return app
}

func TestErrorMiddleware_MapsErrors(t *testing.T) {
	app := newApp()
	app.Get("/app", func(c fiber.Ctx) error {
		return NewAppError(fiber.StatusNotFound, "Job not found", nil, errors.New("no rows"))
	})
	app.Get("/internal", func(c fiber.Ctx) error {
		return NewAppError(fiber.StatusInternalServerError, "db password leaked", nil, nil)
	})
	app.Get("/fiber", func(c fiber.Ctx) error { return fiber.NewError(fiber.StatusBadRequest, "bad payload") })
	app.Get("/plain", func(c fiber.Ctx) error { return errors.New("boom") })
	app.Get("/panic", func(c fiber.Ctx) error { panic("kaboom") })

	status, body, rid := do(t, app, fiber.MethodGet, "/app", "")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Job not found", body.Message)
	assert.NotEmpty(t, rid)

	status, body, _ = do(t, app, fiber.MethodGet, "/internal", "")
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, response.MessageInternalServerError, body.Message)

	status, body, _ = do(t, app, fiber.MethodGet, "/fiber", "")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "bad payload", body.Message)

	status, _, _ = do(t, app, fiber.MethodGet, "/plain", "")
	assert.Equal(t, fiber.StatusInternalServerError, status)

	status, body, _ = do(t, app, fiber.MethodGet, "/panic", "")
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, response.MessageInternalServerError, body.Message)
}

func TestAuthMiddleware(t *testing.T) {
	svc := jwt.NewHMACService("secret", time.Minute)
	app := newApp()
	app.Get("/me", NewAuthMiddleware(svc).Middleware(), func(c fiber.Ctx) error {
		id, ok := CandidateID(c)
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}
		return response.Success(c, fiber.StatusOK, "", id.String())
	})

	status, body, _ := do(t, app, fiber.MethodGet, "/me", "")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "Unauthorized", body.Message)

	status, body, _ = do(t, app, fiber.MethodGet, "/me", "Bearer not-a-token")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "Invalid token", body.Message)

	id := uuid.New()
	tok, err := svc.GenerateAccessToken(id)
	require.NoError(t, err)
	status, body, _ = do(t, app, fiber.MethodGet, "/me", "bearer "+tok)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, id.String(), body.Data)
}

func TestBearerTokenFromHeader(t *testing.T) {
	cases := map[string]bool{
		"":              false,
		"Bearer":        false,
		"Basic abc":     false,
		"Bearer   ":     false,
		"Bearer abc":    true,
		" BEARER abc  ": true,
	}
	for in, want := range cases {
		_, ok := bearerTokenFromHeader(in)
		assert.Equal(t, want, ok, in)
	}
}
