package middleware

import (
	"strings"

	"mood-cinema/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	TMDBKeyHeader = "X-TMDB-API-Key"
	LLMKeyHeader  = "X-LLM-API-Key"
	TMDBKeyField  = "tmdb_api_key"
	LLMKeyField   = "llm_api_key"

	TMDBKeyLocal = "tmdbAPIKey" // Key for storing the TMDB key in fiber.Ctx locals
	LLMKeyLocal  = "llmAPIKey"  // Key for storing the LLM key in fiber.Ctx locals
)

// APIKeyConfig describes where one API key is read from.
type APIKeyConfig struct {
	Header   string // request header, checked first
	Field    string // form field, checked when the header is empty
	Local    string // fiber.Ctx locals key the result is stored under
	Fallback string // server default, used when the request carries no key
}

// APIKey extracts a caller-supplied API key and stores it in the context.
// It never rejects a request; handlers decide whether a missing key is an error.
func APIKey(cfg APIKeyConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := strings.TrimSpace(c.Get(cfg.Header))
		source := "header"

		if key == "" && cfg.Field != "" {
			key = strings.TrimSpace(c.FormValue(cfg.Field))
			source = "form"
		}

		if key == "" && cfg.Fallback != "" {
			key = cfg.Fallback
			source = "default"
		}

		if key != "" {
			// Header and form values alias fasthttp's request buffer.
			c.Locals(cfg.Local, strings.Clone(key))
			logger.Get().Debug("APIKey: key resolved", zap.String("local", cfg.Local), zap.String("source", source))
		}

		return c.Next()
	}
}

// APIKeyFrom returns the key stored by APIKey, or "" when there is none.
func APIKeyFrom(c *fiber.Ctx, local string) string {
	key, _ := c.Locals(local).(string)
	return key
}
