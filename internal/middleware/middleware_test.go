package middleware_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"formdesk/internal/middleware"
	"formdesk/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedApp(authService *services.AuthService) *fiber.App {
	app := fiber.New()
	app.Delete("/secret", middleware.AuthRequired(authService, zerolog.Nop()), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"subject": c.Locals("subject")})
	})
	return app
}

func TestAuthRequired(t *testing.T) {
	authService := services.NewAuthService("test_jwt_secret")
	app := newProtectedApp(authService)

	token, err := authService.IssueToken("admin", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"bad token", "Bearer nope", http.StatusUnauthorized},
		{"valid token", "Bearer " + token, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodDelete, "/secret", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	app := fiber.New()
	app.Use(requestid.New())
	app.Use(middleware.RequestLogger(log))
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/boom", func(c *fiber.Ctx) error { return errors.New("boom") })
	app.Get("/missing", func(c *fiber.Ctx) error { return fiber.ErrNotFound })

	cases := []struct {
		path   string
		status int
		level  string
	}{
		{"/ok", http.StatusOK, "info"},
		{"/missing", http.StatusNotFound, "warn"},
		{"/boom", http.StatusInternalServerError, "error"},
	}
	for _, tc := range cases {
		buf.Reset()
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, tc.path, nil), -1)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, tc.status, resp.StatusCode, tc.path)

		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), tc.path)
		assert.Equal(t, tc.level, entry["level"], tc.path)
		assert.Equal(t, float64(tc.status), entry["status"], tc.path)
		assert.Equal(t, tc.path, entry["path"])
		assert.NotEmpty(t, entry["request_id"])
	}
}
