package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"casting-agency/internal/apperror"
	"casting-agency/internal/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexInt(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{`25`, 25, false},
		{`"25"`, 25, false},
		{`" 7 "`, 7, false},
		{`"abc"`, 0, true},
		{`25.5`, 0, true},
		{`true`, 0, true},
	}

	for _, tt := range tests {
		var f FlexInt
		err := json.Unmarshal([]byte(tt.in), &f)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, int(f))
	}

	var missing *FlexInt
	assert.Nil(t, missing.IntPtr())
}

func TestErrorHandler(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	tests := []struct {
		name    string
		err     error
		status  int
		message interface{}
	}{
		{"validation", apperror.Validation("op", errors.New("bad")), fiber.StatusBadRequest, "Bad request"},
		{"not found", apperror.NotFound("op", nil), fiber.StatusNotFound, "Resource not found"},
		{"processing", apperror.Processing("op", nil), fiber.StatusUnprocessableEntity, "Unprocessable entity"},
		{"wrapped not found", errors.Join(errors.New("ctx"), apperror.NotFound("op", nil)), fiber.StatusNotFound, "Resource not found"},
		{"fiber error", fiber.ErrMethodNotAllowed, fiber.StatusMethodNotAllowed, "Method not allowed"},
		{"unlisted fiber error", fiber.ErrTeapot, fiber.StatusInternalServerError, "Internal server error"},
		{"plain error", errors.New("boom"), fiber.StatusInternalServerError, "Internal server error"},
		{"auth error", &auth.AuthError{Code: "unauthorized", Description: "Permission not found."}, fiber.StatusUnauthorized,
			map[string]interface{}{"code": "unauthorized", "description": "Permission not found."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(log)})
			app.Get("/", func(c *fiber.Ctx) error { return tt.err })

			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil), -1)
			require.NoError(t, err)
			defer resp.Body.Close()

			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, float64(tt.status), body["error"])
			assert.Equal(t, tt.message, body["message"])
		})
	}
}

type fakeDB struct{ err error }

func (f fakeDB) HealthCheck() error { return f.err }

func TestHealthReportsDatabase(t *testing.T) {
	app := fiber.New()
	app.Get("/health", Health(fakeDB{err: errors.New("down")}))

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "unhealthy", body.Database)
}
