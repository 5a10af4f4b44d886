package service

import (
	"context"
	"strings"
	"time"

	"mood-cinema/internal/domain"
	"mood-cinema/internal/dto"
	"mood-cinema/internal/logger"
	"mood-cinema/internal/util"
	"mood-cinema/internal/validation"

	"go.uber.org/zap"
)

// ChatService defines mood chat operations
type ChatService interface {
	Moods() *dto.MoodsResponse
	Validate(apiKey string, req dto.ChatRequest) error
	Chat(ctx context.Context, apiKey string, req dto.ChatRequest, onChunk domain.StreamFunc) (*dto.ChatResponse, error)
	History(ctx context.Context, sessionID string) (*dto.ChatHistoryResponse, error)
	Reset(ctx context.Context, sessionID string) error
}

type chatService struct {
	completer domain.ChatCompleter
	sessions  ChatSessionStore
	validator *validation.Validator
	now       func() time.Time
}

// NewChatService creates a new instance of chatService
func NewChatService(completer domain.ChatCompleter, sessions ChatSessionStore) ChatService {
	if sessions == nil {
		sessions = &noopChatSessionStore{}
	}
	return &chatService{
		completer: completer,
		sessions:  sessions,
		validator: validation.NewValidator(),
		now:       time.Now,
	}
}

// Moods implements ChatService
func (s *chatService) Moods() *dto.MoodsResponse {
	moods := domain.Moods()
	out := make([]dto.MoodResponse, 0, len(moods))
	for _, m := range moods {
		out = append(out, dto.MoodResponse{
			Code:  string(m.Mood),
			Name:  m.DisplayName,
			Emoji: m.Emoji,
		})
	}
	return &dto.MoodsResponse{Moods: out}
}

// Validate implements ChatService. Streaming handlers call it before committing a response.
func (s *chatService) Validate(apiKey string, req dto.ChatRequest) error {
	if errs := s.validator.ValidateChatRequest(req.SessionID, req.Message, req.Mood); len(errs) > 0 {
		return errs
	}
	if s.completer.RequiresAPIKey() && strings.TrimSpace(apiKey) == "" {
		return domain.NewMissingAPIKeyError(domain.MsgMissingLLMKey)
	}
	return nil
}

// Chat implements ChatService.
// History is only written after the model has produced a full reply.
func (s *chatService) Chat(ctx context.Context, apiKey string, req dto.ChatRequest, onChunk domain.StreamFunc) (*dto.ChatResponse, error) {
	if err := s.Validate(apiKey, req); err != nil {
		return nil, err
	}

	moodCode := domain.Mood(req.Mood)
	if moodCode == "" {
		moodCode = domain.DefaultMood
	}
	mood, _ := domain.LookupMood(moodCode)

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = util.NewULID()
	}

	history, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	userTurn := domain.ChatMessage{
		Role:      domain.ChatRoleUser,
		Content:   req.Message,
		Mood:      mood.Mood,
		CreatedAt: s.now(),
	}

	reply, err := s.completer.Complete(ctx, apiKey, mood, history, req.Message, onChunk)
	if err != nil {
		logger.Get().Error("Chat completion failed",
			zap.String("session_id", sessionID),
			zap.String("mood", string(mood.Mood)),
			zap.Error(err))
		return nil, domain.NewLLMServiceError(err)
	}

	history = append(history, userTurn, domain.ChatMessage{
		Role:      domain.ChatRoleAssistant,
		Content:   reply,
		Mood:      mood.Mood,
		CreatedAt: s.now(),
	})
	if err := s.sessions.Save(ctx, sessionID, history); err != nil {
		// The reply already reached the user; a lost history entry is not fatal.
		logger.Get().Warn("Failed to save chat session", zap.String("session_id", sessionID), zap.Error(err))
	}

	return &dto.ChatResponse{
		SessionID: sessionID,
		Reply:     reply,
		Mood:      string(mood.Mood),
	}, nil
}

// History implements ChatService
func (s *chatService) History(ctx context.Context, sessionID string) (*dto.ChatHistoryResponse, error) {
	if errs := s.validator.ValidateSessionID(sessionID); len(errs) > 0 {
		return nil, errs
	}
	messages, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ChatMessageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, dto.ChatMessageResponse{
			Role:      string(m.Role),
			Content:   m.Content,
			Mood:      string(m.Mood),
			CreatedAt: m.CreatedAt,
		})
	}
	return &dto.ChatHistoryResponse{SessionID: sessionID, Messages: out}, nil
}

// Reset implements ChatService
func (s *chatService) Reset(ctx context.Context, sessionID string) error {
	if errs := s.validator.ValidateSessionID(sessionID); len(errs) > 0 {
		return errs
	}
	return s.sessions.Delete(ctx, sessionID)
}
