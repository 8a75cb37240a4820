package middleware

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// maxQueryLength bounds query text (~8KB) before it reaches the engine.
const maxQueryLength = 8192

// maxHistoryTurns bounds caller-supplied conversation history.
const maxHistoryTurns = 50

// ValidateQueryText validates chatbot query text.
func ValidateQueryText(text string) error {
	if strings.TrimSpace(text) == "" {
		return errors.New("query text cannot be empty")
	}
	if len(text) > maxQueryLength {
		return errors.New("query text exceeds maximum length")
	}
	if !utf8.ValidString(text) {
		return errors.New("query text must be valid UTF-8")
	}
	return nil
}

// ValidateHistoryLength validates the number of history turns.
func ValidateHistoryLength(n int) error {
	if n > maxHistoryTurns {
		return errors.New("history exceeds maximum length")
	}
	return nil
}

// ValidateVariant validates an assistant variant path parameter.
func ValidateVariant(variant string) error {
	if variant != "finance" && variant != "travel" {
		return errors.New("unknown assistant variant")
	}
	return nil
}
