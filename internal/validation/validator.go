package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"mood-cinema/internal/domain"
)

const MaxChatMessageLength = 2000

var validULID = regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateAnswerSet checks that there is exactly one valid option label per question.
func (v *Validator) ValidateAnswerSet(bank domain.QuestionBank, answers []string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if len(answers) == 0 {
		errors = append(errors, domain.NewMissingFieldError("answers"))
		return errors
	}
	if len(answers) != len(bank) {
		errors = append(errors, domain.NewOutOfRangeError("answers", len(answers), len(bank), len(bank)))
		return errors
	}

	for i, answer := range answers {
		field := fmt.Sprintf("answers[%d]", i)
		if strings.TrimSpace(answer) == "" {
			errors = append(errors, domain.NewMissingFieldError(field))
			continue
		}
		if _, ok := bank[i].GenreFor(answer); !ok {
			errors = append(errors, domain.NewInvalidAnswerError(field, answer))
		}
	}

	return errors
}

// ValidateChatRequest validates one chat turn. An empty session id starts a new session.
func (v *Validator) ValidateChatRequest(sessionID, message, mood string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if sessionID != "" {
		if verrs := v.ValidateSessionID(sessionID); len(verrs) > 0 {
			errors = append(errors, verrs...)
		}
	}

	if strings.TrimSpace(message) == "" {
		errors = append(errors, domain.NewMissingFieldError("message"))
	} else if n := utf8.RuneCountInString(message); n > MaxChatMessageLength {
		errors = append(errors, domain.NewOutOfRangeError("message", n, 1, MaxChatMessageLength))
	}

	if mood != "" {
		if _, ok := domain.LookupMood(domain.Mood(mood)); !ok {
			errors = append(errors, domain.NewInvalidFormatError("mood", mood))
		}
	}

	return errors
}

// ValidateSessionID checks that id is a ULID.
func (v *Validator) ValidateSessionID(id string) domain.ValidationErrors {
	if strings.TrimSpace(id) == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError("session_id")}
	}
	if !isValidULID(id) {
		return domain.ValidationErrors{domain.NewInvalidFormatError("session_id", id)}
	}
	return nil
}

// isValidULID checks if the string is a valid ULID format
func isValidULID(s string) bool {
	return len(s) == 26 && validULID.MatchString(s)
}
