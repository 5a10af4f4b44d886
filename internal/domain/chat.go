package domain

import (
	"context"
	"time"
)

// Mood is the tag a user attaches to a chat message.
type Mood string

const (
	MoodHappy   Mood = "happy"
	MoodSad     Mood = "sad"
	MoodTired   Mood = "tired"
	MoodExcited Mood = "excited"
	MoodCalm    Mood = "calm"
	MoodAngry   Mood = "angry"
)

// MoodInfo is the static configuration of a mood.
type MoodInfo struct {
	Mood        Mood
	DisplayName string
	Emoji       string
	Instruction string // tone guidance for the model
}

var moodTable = []MoodInfo{
	{Mood: MoodHappy, DisplayName: "기쁨", Emoji: "😊", Instruction: "사용자의 좋은 기분에 함께 공감하고 밝은 어조로 대화를 이어가세요."},
	{Mood: MoodSad, DisplayName: "슬픔", Emoji: "😢", Instruction: "차분하고 따뜻한 어조로 위로하고, 섣부른 조언보다 공감을 먼저 표현하세요."},
	{Mood: MoodTired, DisplayName: "피곤함", Emoji: "😪", Instruction: "짧고 부담 없는 문장으로 답하고, 휴식을 권하는 부드러운 어조를 사용하세요."},
	{Mood: MoodExcited, DisplayName: "설렘", Emoji: "🤩", Instruction: "사용자의 기대감에 맞춰 활기차고 경쾌한 어조로 답하세요."},
	{Mood: MoodCalm, DisplayName: "평온", Emoji: "😌", Instruction: "담백하고 편안한 어조로 대화하세요."},
	{Mood: MoodAngry, DisplayName: "화남", Emoji: "😠", Instruction: "감정을 인정해 주고, 자극적인 표현을 피하며 침착하게 답하세요."},
}

var moodIndex = func() map[Mood]MoodInfo {
	idx := make(map[Mood]MoodInfo, len(moodTable))
	for _, m := range moodTable {
		idx[m.Mood] = m
	}
	return idx
}()

// DefaultMood is applied when a request carries no mood.
const DefaultMood = MoodCalm

// Moods returns the mood table in display order.
func Moods() []MoodInfo {
	out := make([]MoodInfo, len(moodTable))
	copy(out, moodTable)
	return out
}

// LookupMood returns the configuration of m.
func LookupMood(m Mood) (MoodInfo, bool) {
	info, ok := moodIndex[m]
	return info, ok
}

// ChatRole identifies the author of a chat message.
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatMessage is one turn of a chat session.
type ChatMessage struct {
	Role      ChatRole  `json:"role"`
	Content   string    `json:"content"`
	Mood      Mood      `json:"mood,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// StreamFunc receives reply chunks as they arrive. Returning an error aborts the reply.
type StreamFunc func(chunk string) error

// ChatCompleter is the port to the language model.
type ChatCompleter interface {
	// Complete sends history plus the new user message and returns the full reply.
	// When onChunk is non-nil the reply is streamed through it as well.
	Complete(ctx context.Context, apiKey string, mood MoodInfo, history []ChatMessage, message string, onChunk StreamFunc) (string, error)

	// RequiresAPIKey reports whether the provider needs a caller-supplied key.
	RequiresAPIKey() bool
}
