package chatllm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"text/template"
	"time"

	"mood-cinema/internal/config"
	"mood-cinema/internal/domain"
	"mood-cinema/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

// The mood decides the tone; the reply language follows the user.
var systemPrompt = template.Must(template.New("system_prompt").Parse(`
당신은 사용자의 기분을 세심하게 배려하는 대화 상대입니다.
현재 사용자가 선택한 기분: {{.Emoji}} {{.DisplayName}}

{{.Instruction}}

- 사용자가 쓴 언어로 답하세요.
- 답변은 간결하게, 필요한 경우에만 목록을 사용하세요.
- 사용자의 기분을 단정하거나 과장하지 마세요.
`))

// ModelFunc builds a langchaingo model for one request's API key.
type ModelFunc func(apiKey string) (llms.Model, error)

// Completer implements domain.ChatCompleter on a langchaingo model.
type Completer struct {
	newModel       ModelFunc
	temperature    float64
	timeout        time.Duration
	requiresAPIKey bool
}

var _ domain.ChatCompleter = (*Completer)(nil)

// NewCompleter creates a Completer. requiresAPIKey tells callers whether an empty key is acceptable.
func NewCompleter(newModel ModelFunc, temperature float64, timeout time.Duration, requiresAPIKey bool) *Completer {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Completer{
		newModel:       newModel,
		temperature:    temperature,
		timeout:        timeout,
		requiresAPIKey: requiresAPIKey,
	}
}

// NewFromConfig picks the provider named in cfg.
func NewFromConfig(cfg config.LLMConfig) (*Completer, error) {
	switch cfg.Provider {
	case config.LLMProviderOpenAI:
		return NewCompleter(OpenAIModelFunc(cfg.Model), cfg.Temperature, cfg.Timeout, true), nil
	case config.LLMProviderOllama:
		if cfg.ServerURL == "" {
			return nil, fmt.Errorf("ollama server URL cannot be empty")
		}
		model, err := ollama.New(
			ollama.WithServerURL(cfg.ServerURL),
			ollama.WithModel(cfg.Model),
			ollama.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create ollama client: %w", err)
		}
		return NewCompleter(func(string) (llms.Model, error) { return model, nil }, cfg.Temperature, cfg.Timeout, false), nil
	default:
		return nil, fmt.Errorf("unsupported llm provider: %s", cfg.Provider)
	}
}

// OpenAIModelFunc creates a client per request so the caller's key is never shared.
func OpenAIModelFunc(model string) ModelFunc {
	return func(apiKey string) (llms.Model, error) {
		if apiKey == "" {
			return nil, errors.New("openai API key cannot be empty")
		}
		llm, err := openai.New(openai.WithToken(apiKey), openai.WithModel(model))
		if err != nil {
			return nil, err
		}
		return llm, nil
	}
}

func (c *Completer) RequiresAPIKey() bool {
	return c.requiresAPIKey
}

// Complete implements domain.ChatCompleter
func (c *Completer) Complete(ctx context.Context, apiKey string, mood domain.MoodInfo, history []domain.ChatMessage, message string, onChunk domain.StreamFunc) (string, error) {
	l := logger.Get()

	model, err := c.newModel(apiKey)
	if err != nil {
		return "", fmt.Errorf("failed to create LLM client: %w", err)
	}

	messages, err := buildMessages(mood, history, message)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	opts := []llms.CallOption{llms.WithTemperature(c.temperature)}
	if onChunk != nil {
		opts = append(opts, llms.WithStreamingFunc(func(_ context.Context, chunk []byte) error {
			return onChunk(string(chunk))
		}))
	}

	l.Debug("Sending chat completion",
		zap.String("mood", string(mood.Mood)),
		zap.Int("history_len", len(history)),
		zap.Bool("stream", onChunk != nil))

	resp, err := model.GenerateContent(ctx, messages, opts...)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			l.Error("LLM request timed out", zap.Error(err))
			return "", fmt.Errorf("LLM request timed out: %w", err)
		}
		l.Error("Failed to get response from LLM", zap.Error(err))
		return "", fmt.Errorf("LLM call failed: %w", err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", errors.New("LLM returned no choices")
	}

	return strings.TrimSpace(resp.Choices[0].Content), nil
}

func buildMessages(mood domain.MoodInfo, history []domain.ChatMessage, message string) ([]llms.MessageContent, error) {
	sb := &strings.Builder{}
	if err := systemPrompt.Execute(sb, mood); err != nil {
		return nil, fmt.Errorf("failed to render system prompt: %w", err)
	}

	messages := make([]llms.MessageContent, 0, len(history)+2)
	messages = append(messages, llms.TextParts(llms.ChatMessageTypeSystem, strings.TrimSpace(sb.String())))
	for _, m := range history {
		role := llms.ChatMessageTypeHuman
		if m.Role == domain.ChatRoleAssistant {
			role = llms.ChatMessageTypeAI
		}
		messages = append(messages, llms.TextParts(role, m.Content))
	}
	messages = append(messages, llms.TextParts(llms.ChatMessageTypeHuman, message))
	return messages, nil
}
