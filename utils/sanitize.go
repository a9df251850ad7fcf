// File: /utils/sanitize.go
package utils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var htmlPolicy = bluemonday.StrictPolicy()

// SanitizeText strips HTML tags and collapses whitespace in free-text input.
func SanitizeText(text string) string {
	if text == "" {
		return ""
	}

	text = htmlPolicy.Sanitize(text)
	return strings.Join(strings.Fields(text), " ")
}
