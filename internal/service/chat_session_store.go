package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"mood-cinema/internal/cache"
	"mood-cinema/internal/domain"
	"mood-cinema/internal/logger"

	"go.uber.org/zap"
)

// ChatSessionStore keeps a session's chat history for the lifetime of the session.
type ChatSessionStore interface {
	Load(ctx context.Context, sessionID string) ([]domain.ChatMessage, error)
	Save(ctx context.Context, sessionID string, messages []domain.ChatMessage) error
	Delete(ctx context.Context, sessionID string) error
}

// chatSessionStoreImpl implements ChatSessionStore using a generic cache.
type chatSessionStoreImpl struct {
	cache      domain.Cache
	ttl        time.Duration
	maxHistory int
}

// NewChatSessionStore creates a store whose entries expire ttl after the last write.
// maxHistory bounds the number of stored messages; 0 disables the bound.
func NewChatSessionStore(c domain.Cache, ttl time.Duration, maxHistory int) ChatSessionStore {
	if c == nil {
		logger.Get().Warn("ChatSessionStore initialized with nil cache. Chat history will not be kept.")
		return &noopChatSessionStore{}
	}
	return &chatSessionStoreImpl{
		cache:      c,
		ttl:        ttl,
		maxHistory: maxHistory,
	}
}

func (s *chatSessionStoreImpl) generateKey(sessionID string) string {
	return cache.GenerateCacheKey("chat", "session", sessionID)
}

// Load returns the stored messages, or an empty history for an unknown session.
func (s *chatSessionStoreImpl) Load(ctx context.Context, sessionID string) ([]domain.ChatMessage, error) {
	key := s.generateKey(sessionID)
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Debug("Chat session cache miss", zap.String("key", key))
			return []domain.ChatMessage{}, nil
		}
		logger.Get().Error("Failed to get chat session from cache", zap.Error(err), zap.String("key", key))
		return nil, domain.NewInternalError(fmt.Sprintf("failed to load chat session for key %s", key), err)
	}
	if data == "" {
		return []domain.ChatMessage{}, nil
	}

	var messages []domain.ChatMessage
	if err := json.Unmarshal([]byte(data), &messages); err != nil {
		logger.Get().Error("Failed to unmarshal chat session", zap.Error(err), zap.String("key", key))
		return nil, domain.NewInternalError(fmt.Sprintf("failed to unmarshal chat session for key %s", key), err)
	}
	return messages, nil
}

// Save replaces the session's history, keeping only the newest maxHistory messages.
func (s *chatSessionStoreImpl) Save(ctx context.Context, sessionID string, messages []domain.ChatMessage) error {
	if s.maxHistory > 0 && len(messages) > s.maxHistory {
		messages = messages[len(messages)-s.maxHistory:]
	}

	key := s.generateKey(sessionID)
	data, err := json.Marshal(messages)
	if err != nil {
		return domain.NewInternalError("failed to marshal chat session", err)
	}

	if err := s.cache.Set(ctx, key, string(data), s.ttl); err != nil {
		logger.Get().Error("Failed to store chat session", zap.Error(err), zap.String("key", key))
		return domain.NewInternalError(fmt.Sprintf("failed to store chat session for key %s", key), err)
	}
	logger.Get().Debug("Stored chat session", zap.String("key", key), zap.Int("messages", len(messages)), zap.Duration("ttl", s.ttl))
	return nil
}

func (s *chatSessionStoreImpl) Delete(ctx context.Context, sessionID string) error {
	key := s.generateKey(sessionID)
	if err := s.cache.Delete(ctx, key); err != nil {
		logger.Get().Error("Failed to delete chat session", zap.Error(err), zap.String("key", key))
		return domain.NewInternalError(fmt.Sprintf("failed to delete chat session for key %s", key), err)
	}
	return nil
}

// noopChatSessionStore is used when no cache is configured; every turn starts without history.
type noopChatSessionStore struct{}

func (s *noopChatSessionStore) Load(ctx context.Context, sessionID string) ([]domain.ChatMessage, error) {
	return []domain.ChatMessage{}, nil
}

func (s *noopChatSessionStore) Save(ctx context.Context, sessionID string, messages []domain.ChatMessage) error {
	return nil
}

func (s *noopChatSessionStore) Delete(ctx context.Context, sessionID string) error {
	return nil
}
