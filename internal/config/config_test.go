package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "")
	t.Setenv("REDIS_ADDRESS", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8090, cfg.Server.Port)
	assert.Equal(t, "https://api.themoviedb.org/3", cfg.TMDB.BaseURL)
	assert.Equal(t, "ko-KR", cfg.TMDB.Language)
	assert.Equal(t, SortByVoteCount, cfg.TMDB.SortBy)
	assert.Equal(t, 500, cfg.TMDB.MinVoteCount)
	assert.Equal(t, 5, cfg.TMDB.ResultLimit)
	assert.Equal(t, 10*time.Second, cfg.TMDB.Timeout)
	assert.Equal(t, LLMProviderOpenAI, cfg.LLM.Provider)
	assert.Equal(t, 30*time.Minute, cfg.Chat.SessionTTL)
	assert.False(t, cfg.Redis.Enabled())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("REDIS_ADDRESS", "localhost:6379")
	t.Setenv("TMDB_API_KEY", "server-key")
	t.Setenv("LLM_PROVIDER", "ollama")
	t.Setenv("TMDB_SORT_BY", SortByPopularity)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "localhost:6379", cfg.Redis.Address)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, "server-key", cfg.TMDB.APIKey)
	assert.Equal(t, LLMProviderOllama, cfg.LLM.Provider)
	assert.Equal(t, SortByPopularity, cfg.TMDB.SortBy)
}

func TestLoadConfig_RejectsUnknownProvider(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "gemini")

	_, err := LoadConfig()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "llm.provider")
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server: ServerConfig{Port: 8090},
			TMDB:   TMDBConfig{BaseURL: "http://tmdb", SortBy: SortByVoteCount, ResultLimit: 5},
			LLM:    LLMConfig{Provider: LLMProviderOpenAI},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"bad port", func(c *Config) { c.Server.Port = 0 }, "server.port"},
		{"empty base url", func(c *Config) { c.TMDB.BaseURL = "" }, "tmdb.base_url"},
		{"bad sort", func(c *Config) { c.TMDB.SortBy = "title.asc" }, "tmdb.sort_by"},
		{"zero limit", func(c *Config) { c.TMDB.ResultLimit = 0 }, "tmdb.result_limit"},
		{"negative history", func(c *Config) { c.Chat.MaxHistory = -1 }, "chat.max_history"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
