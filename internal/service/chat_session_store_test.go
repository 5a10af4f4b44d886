package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"mood-cinema/internal/domain"
	"mood-cinema/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ManualMockCache for domain.Cache interface
type ManualMockCache struct {
	GetFunc    func(ctx context.Context, key string) (string, error)
	SetFunc    func(ctx context.Context, key string, value string, ttl time.Duration) error
	DeleteFunc func(ctx context.Context, key string) error
	PingFunc   func(ctx context.Context) error
}

func (m *ManualMockCache) Get(ctx context.Context, key string) (string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	return "", errors.New("GetFunc not set")
}

func (m *ManualMockCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	return errors.New("SetFunc not set")
}

func (m *ManualMockCache) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	return errors.New("DeleteFunc not set")
}

func (m *ManualMockCache) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}

const testSessionID = "01HZY3Q9K8M2N4P6R8T0V2X4Z6"

func sampleHistory(n int) []domain.ChatMessage {
	at := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)
	out := make([]domain.ChatMessage, 0, n)
	for i := 0; i < n; i++ {
		role := domain.ChatRoleUser
		if i%2 == 1 {
			role = domain.ChatRoleAssistant
		}
		out = append(out, domain.ChatMessage{
			Role:      role,
			Content:   string(rune('a' + i)),
			Mood:      domain.MoodCalm,
			CreatedAt: at.Add(time.Duration(i) * time.Second),
		})
	}
	return out
}

func TestChatSessionStore_Save(t *testing.T) {
	mockCache := &ManualMockCache{}
	ttl := 30 * time.Minute
	store := service.NewChatSessionStore(mockCache, ttl, 4)
	ctx := context.Background()

	expectedKey := "moodcinema:chat:session:" + testSessionID

	t.Run("stores history as JSON with TTL", func(t *testing.T) {
		history := sampleHistory(2)
		expectedJSON, _ := json.Marshal(history)
		mockCache.SetFunc = func(ctx context.Context, key string, value string, duration time.Duration) error {
			assert.Equal(t, expectedKey, key)
			assert.JSONEq(t, string(expectedJSON), value)
			assert.Equal(t, ttl, duration)
			return nil
		}

		assert.NoError(t, store.Save(ctx, testSessionID, history))
	})

	t.Run("keeps only the newest messages", func(t *testing.T) {
		history := sampleHistory(6)
		mockCache.SetFunc = func(ctx context.Context, key string, value string, duration time.Duration) error {
			var stored []domain.ChatMessage
			require.NoError(t, json.Unmarshal([]byte(value), &stored))
			require.Len(t, stored, 4)
			assert.Equal(t, "c", stored[0].Content)
			assert.Equal(t, "f", stored[3].Content)
			return nil
		}

		assert.NoError(t, store.Save(ctx, testSessionID, history))
	})

	t.Run("cache error", func(t *testing.T) {
		mockCache.SetFunc = func(ctx context.Context, key string, value string, duration time.Duration) error {
			return errors.New("connection reset")
		}

		err := store.Save(ctx, testSessionID, sampleHistory(1))

		var domainErr *domain.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, domain.CodeInternal, domainErr.Code)
	})
}

func TestChatSessionStore_Load(t *testing.T) {
	mockCache := &ManualMockCache{}
	store := service.NewChatSessionStore(mockCache, 30*time.Minute, 0)
	ctx := context.Background()
	expectedKey := "moodcinema:chat:session:" + testSessionID

	t.Run("Cache Hit", func(t *testing.T) {
		history := sampleHistory(3)
		data, _ := json.Marshal(history)
		mockCache.GetFunc = func(ctx context.Context, key string) (string, error) {
			assert.Equal(t, expectedKey, key)
			return string(data), nil
		}

		got, err := store.Load(ctx, testSessionID)
		require.NoError(t, err)
		assert.Equal(t, history, got)
	})

	t.Run("Cache Miss", func(t *testing.T) {
		mockCache.GetFunc = func(ctx context.Context, key string) (string, error) {
			return "", domain.ErrCacheMiss
		}

		got, err := store.Load(ctx, testSessionID)
		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("Cache Error", func(t *testing.T) {
		expectedErr := errors.New("some cache system error")
		mockCache.GetFunc = func(ctx context.Context, key string) (string, error) {
			return "", expectedErr
		}

		got, err := store.Load(ctx, testSessionID)
		assert.Nil(t, got)
		var domainErr *domain.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, domain.CodeInternal, domainErr.Code)
		assert.Contains(t, err.Error(), expectedErr.Error())
	})

	t.Run("Deserialization Error", func(t *testing.T) {
		mockCache.GetFunc = func(ctx context.Context, key string) (string, error) {
			return "[{role:", nil
		}

		_, err := store.Load(ctx, testSessionID)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to unmarshal chat session")
	})
}

func TestChatSessionStore_Delete(t *testing.T) {
	var deleted string
	mockCache := &ManualMockCache{
		DeleteFunc: func(ctx context.Context, key string) error {
			deleted = key
			return nil
		},
	}
	store := service.NewChatSessionStore(mockCache, time.Minute, 0)

	require.NoError(t, store.Delete(context.Background(), testSessionID))
	assert.Equal(t, "moodcinema:chat:session:"+testSessionID, deleted)
}

func TestNewChatSessionStore_NilCache(t *testing.T) {
	store := service.NewChatSessionStore(nil, time.Minute, 10)
	ctx := context.Background()

	assert.NoError(t, store.Save(ctx, testSessionID, sampleHistory(2)))

	got, err := store.Load(ctx, testSessionID)
	assert.NoError(t, err)
	assert.Empty(t, got)

	assert.NoError(t, store.Delete(ctx, testSessionID))
}
