package middleware_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"mood-cinema/internal/domain"
	"mood-cinema/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newErrorApp(err error) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	app.Get("/boom", func(c *fiber.Ctx) error { return err })
	return app
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedBody string
	}{
		{
			name:         "validation errors",
			err:          domain.ValidationErrors{domain.NewMissingFieldError("answers")},
			expectedCode: http.StatusBadRequest,
			expectedBody: string(domain.CodeValidation),
		},
		{
			name:         "missing api key",
			err:          domain.NewMissingAPIKeyError(domain.MsgMissingTMDBKey),
			expectedCode: http.StatusBadRequest,
			expectedBody: domain.MsgMissingTMDBKey,
		},
		{
			name:         "catalog unavailable",
			err:          domain.NewCatalogUnavailableError(errors.New("dial tcp")),
			expectedCode: http.StatusBadGateway,
			expectedBody: string(domain.CodeCatalogUnavailable),
		},
		{
			name:         "llm error",
			err:          domain.NewLLMServiceError(errors.New("429")),
			expectedCode: http.StatusServiceUnavailable,
			expectedBody: string(domain.CodeLLMServiceError),
		},
		{
			name:         "not found",
			err:          domain.NewNotFoundError("session not found"),
			expectedCode: http.StatusNotFound,
			expectedBody: "session not found",
		},
		{
			name:         "fiber error",
			err:          fiber.NewError(fiber.StatusMethodNotAllowed, "nope"),
			expectedCode: http.StatusMethodNotAllowed,
			expectedBody: "HTTP_ERROR",
		},
		{
			name:         "unknown error",
			err:          errors.New("kaboom"),
			expectedCode: http.StatusInternalServerError,
			expectedBody: string(domain.CodeInternal),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newErrorApp(tt.err)

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil), -1)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedCode, resp.StatusCode)
			body, _ := io.ReadAll(resp.Body)
			assert.Contains(t, string(body), tt.expectedBody)
			assert.Equal(t, tt.expectedCode, middleware.StatusOf(tt.err))
		})
	}
}

func TestErrorHandler_DomainErrorContext(t *testing.T) {
	app := newErrorApp(domain.NewInvalidInputError("bad").WithContext("field", "mood"))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body middleware.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, string(domain.CodeInvalidInput), body.Code)
	assert.Equal(t, "mood", body.Details["field"])
}

func TestAPIKey(t *testing.T) {
	tests := []struct {
		name        string
		header      string
		form        string
		fallback    string
		expectedKey string
	}{
		{name: "header wins", header: "from-header", form: "from-form", fallback: "default", expectedKey: "from-header"},
		{name: "form field", form: "from-form", fallback: "default", expectedKey: "from-form"},
		{name: "fallback", fallback: "default", expectedKey: "default"},
		{name: "whitespace header ignored", header: "   ", expectedKey: ""},
		{name: "nothing", expectedKey: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Use(middleware.APIKey(middleware.APIKeyConfig{
				Header:   middleware.TMDBKeyHeader,
				Field:    middleware.TMDBKeyField,
				Local:    middleware.TMDBKeyLocal,
				Fallback: tt.fallback,
			}))

			var gotKey string
			app.Post("/", func(c *fiber.Ctx) error {
				gotKey = middleware.APIKeyFrom(c, middleware.TMDBKeyLocal)
				return c.SendStatus(fiber.StatusOK)
			})

			form := url.Values{}
			if tt.form != "" {
				form.Set(middleware.TMDBKeyField, tt.form)
			}
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			if tt.header != "" {
				req.Header.Set(middleware.TMDBKeyHeader, tt.header)
			}

			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusOK, resp.StatusCode)
			assert.Equal(t, tt.expectedKey, gotKey)
		})
	}
}

func TestValidateSessionID(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	vm := middleware.NewValidationMiddleware()
	app.Get("/sessions/:id", vm.ValidateSessionID(), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(middleware.SessionIDLocal).(string))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/sessions/01HZY3Q9K8M2N4P6R8T0V2X4Z6", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "01HZY3Q9K8M2N4P6R8T0V2X4Z6", string(body))

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/sessions/not-a-session", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRequestLogger_PassesErrorThrough(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	app.Use(middleware.RequestLogger())
	app.Get("/boom", func(c *fiber.Ctx) error {
		return domain.NewLLMServiceError(errors.New("down"))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}
