package dto

import "time"

// MoodResponse represents a selectable mood
type MoodResponse struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
}

// MoodsResponse lists moods in display order
type MoodsResponse struct {
	Moods []MoodResponse `json:"moods"`
}

// ChatRequest is one user turn
// @Description Request body for a chat message
type ChatRequest struct {
	SessionID string `json:"session_id,omitempty"`
	Message   string `json:"message"`
	Mood      string `json:"mood"`
}

// ChatResponse is the assistant's full reply
type ChatResponse struct {
	SessionID string `json:"session_id"`
	Reply     string `json:"reply"`
	Mood      string `json:"mood"`
}

// ChatMessageResponse is one stored turn
type ChatMessageResponse struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Mood      string    `json:"mood,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ChatHistoryResponse lists a session's turns, oldest first
type ChatHistoryResponse struct {
	SessionID string                `json:"session_id"`
	Messages  []ChatMessageResponse `json:"messages"`
}

// HealthResponse reports dependency status
type HealthResponse struct {
	Status  string            `json:"status"`
	Details map[string]string `json:"details,omitempty"`
}
