package telegram

import (
	"errors"
	"fmt"
)

// APIError represents a structured Telegram Bot API error response.
type APIError struct {
	ErrorCode   int    // HTTP-level error code from Telegram (e.g., 400, 403, 429)
	Description string // Human-readable error description
	RetryAfter  int    // Seconds to wait before retrying (only for 429)
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("telegram API error %d: %s (retry_after=%ds)", e.ErrorCode, e.Description, e.RetryAfter)
	}
	return fmt.Sprintf("telegram API error %d: %s", e.ErrorCode, e.Description)
}

// IsBotBlocked returns true if the error indicates the bot was blocked or removed from the chat (403).
func IsBotBlocked(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode == 403
	}
	return false
}
