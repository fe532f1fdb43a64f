package telegram

import (
	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// EscapeHTML turns customer supplied text into plain text that is safe inside
// a parse_mode=HTML message: markup is dropped and special characters are
// entity encoded.
func EscapeHTML(s string) string {
	return strictPolicy.Sanitize(s)
}
