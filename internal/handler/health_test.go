package handler_test

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"mood-cinema/internal/adapter"
	"mood-cinema/internal/dto"
	"mood-cinema/internal/handler"

	"github.com/go-redis/redismock/v9"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBreaker string

func (s stubBreaker) State() string { return string(s) }

func TestHealthHandler_Redis(t *testing.T) {
	db, mock := redismock.NewClientMock()
	health := handler.NewHealthHandler(adapter.NewRedisCacheAdapter(db), stubBreaker("closed"))
	app := fiber.New()
	app.Get("/healthz", health.Health)

	t.Run("reachable", func(t *testing.T) {
		mock.ExpectPing().SetVal("PONG")

		resp, err := app.Test(httptest.NewRequest("GET", "/healthz", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var body dto.HealthResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "ok", body.Details["redis"])
		assert.Equal(t, "closed", body.Details["tmdb"])
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unreachable", func(t *testing.T) {
		mock.ExpectPing().SetErr(errors.New("connection refused"))

		resp, err := app.Test(httptest.NewRequest("GET", "/healthz", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)

		var body dto.HealthResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "degraded", body.Status)
		assert.Equal(t, "closed", body.Details["tmdb"])
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
