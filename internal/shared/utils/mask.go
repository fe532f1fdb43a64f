package utils

import "strings"

// MaskEmail masks an email address for safe logging.
// Example: "user@example.com" -> "u***@example.com"
func MaskEmail(email string) string {
	local, domain, ok := strings.Cut(email, "@")
	if !ok {
		return "***"
	}
	if len(local) <= 1 {
		return local + "***@" + domain
	}
	return local[:1] + "***@" + domain
}

// MaskToken keeps the first n characters of a bearer or session token.
func MaskToken(token string, n int) string {
	if n <= 0 {
		return "..."
	}
	if len(token) <= n {
		return token
	}
	return token[:n] + "..."
}
