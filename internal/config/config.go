package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Logger LoggerConfig
	Redis  RedisConfig
	TMDB   TMDBConfig
	LLM    LLMConfig
	Chat   ChatConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type LoggerConfig struct {
	Level string
	Env   string
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// Enabled reports whether a Redis address was configured.
func (r RedisConfig) Enabled() bool {
	return r.Address != ""
}

// TMDBConfig holds the movie catalog client settings.
// APIKey is only a fallback for requests that don't carry a user key.
type TMDBConfig struct {
	BaseURL           string
	ImageBaseURL      string
	APIKey            string
	Language          string
	SortBy            string
	MinVoteCount      int
	ResultLimit       int
	Timeout           time.Duration
	RequestsPerSecond float64
	Burst             int
}

type LLMConfig struct {
	Provider    string // "openai" or "ollama"
	ServerURL   string
	Model       string
	APIKey      string
	Temperature float64
	Timeout     time.Duration
}

type ChatConfig struct {
	SessionTTL time.Duration
	MaxHistory int
}

const (
	SortByVoteCount  = "vote_count.desc"
	SortByPopularity = "popularity.desc"

	LLMProviderOpenAI = "openai"
	LLMProviderOllama = "ollama"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", 20)
	v.SetDefault("server.write_timeout", 60)
	v.SetDefault("server.idle_timeout", 20)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.env", "development")

	v.SetDefault("redis.address", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("tmdb.base_url", "https://api.themoviedb.org/3")
	v.SetDefault("tmdb.image_base_url", "https://image.tmdb.org/t/p")
	v.SetDefault("tmdb.language", "ko-KR")
	v.SetDefault("tmdb.sort_by", SortByVoteCount)
	v.SetDefault("tmdb.min_vote_count", 500)
	v.SetDefault("tmdb.result_limit", 5)
	v.SetDefault("tmdb.timeout", 10)
	v.SetDefault("tmdb.requests_per_second", 20)
	v.SetDefault("tmdb.burst", 5)

	v.SetDefault("llm.provider", LLMProviderOpenAI)
	v.SetDefault("llm.server", "http://localhost:11434")
	v.SetDefault("llm.model", "gpt-4o-mini")
	v.SetDefault("llm.temperature", 0.7)
	v.SetDefault("llm.timeout", 60)

	v.SetDefault("chat.session_ttl", 30)
	v.SetDefault("chat.max_history", 20)
}

func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Add config paths based on environment
	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../config")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	config := &Config{
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  time.Duration(v.GetInt("server.read_timeout")) * time.Second,
			WriteTimeout: time.Duration(v.GetInt("server.write_timeout")) * time.Second,
			IdleTimeout:  time.Duration(v.GetInt("server.idle_timeout")) * time.Second,
		},
		Logger: LoggerConfig{
			Level: v.GetString("logger.level"),
			Env:   v.GetString("logger.env"),
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		TMDB: TMDBConfig{
			BaseURL:           v.GetString("tmdb.base_url"),
			ImageBaseURL:      v.GetString("tmdb.image_base_url"),
			APIKey:            v.GetString("tmdb.api_key"),
			Language:          v.GetString("tmdb.language"),
			SortBy:            v.GetString("tmdb.sort_by"),
			MinVoteCount:      v.GetInt("tmdb.min_vote_count"),
			ResultLimit:       v.GetInt("tmdb.result_limit"),
			Timeout:           time.Duration(v.GetInt("tmdb.timeout")) * time.Second,
			RequestsPerSecond: v.GetFloat64("tmdb.requests_per_second"),
			Burst:             v.GetInt("tmdb.burst"),
		},
		LLM: LLMConfig{
			Provider:    v.GetString("llm.provider"),
			ServerURL:   v.GetString("llm.server"),
			Model:       v.GetString("llm.model"),
			APIKey:      v.GetString("llm.api_key"),
			Temperature: v.GetFloat64("llm.temperature"),
			Timeout:     time.Duration(v.GetInt("llm.timeout")) * time.Second,
		},
		Chat: ChatConfig{
			SessionTTL: time.Duration(v.GetInt("chat.session_ttl")) * time.Minute,
			MaxHistory: v.GetInt("chat.max_history"),
		},
	}

	// Override with environment variables if set
	if env := os.Getenv("ENV"); env != "" {
		config.Logger.Env = env
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		config.Logger.Level = level
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.Redis.Password = redisPassword
	}
	if tmdbKey := os.Getenv("TMDB_API_KEY"); tmdbKey != "" {
		config.TMDB.APIKey = tmdbKey
	}
	if tmdbURL := os.Getenv("TMDB_BASE_URL"); tmdbURL != "" {
		config.TMDB.BaseURL = tmdbURL
	}
	if provider := os.Getenv("LLM_PROVIDER"); provider != "" {
		config.LLM.Provider = provider
	}
	if llmServer := os.Getenv("LLM_SERVER"); llmServer != "" {
		config.LLM.ServerURL = llmServer
	}
	if openAIKey := os.Getenv("OPENAI_API_KEY"); openAIKey != "" {
		config.LLM.APIKey = openAIKey
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks values that would otherwise fail at request time.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port: %d", c.Server.Port)
	}
	if c.TMDB.BaseURL == "" {
		return fmt.Errorf("tmdb.base_url is required")
	}
	switch c.TMDB.SortBy {
	case SortByVoteCount, SortByPopularity:
	default:
		return fmt.Errorf("unsupported tmdb.sort_by: %s", c.TMDB.SortBy)
	}
	if c.TMDB.ResultLimit <= 0 {
		return fmt.Errorf("tmdb.result_limit must be positive, got %d", c.TMDB.ResultLimit)
	}
	switch c.LLM.Provider {
	case LLMProviderOpenAI, LLMProviderOllama:
	default:
		return fmt.Errorf("unsupported llm.provider: %s", c.LLM.Provider)
	}
	if c.Chat.MaxHistory < 0 {
		return fmt.Errorf("chat.max_history must not be negative")
	}
	return nil
}
