// File: /utils/avatar.go
package utils

import (
	"encoding/base64"
	"fmt"
	"strings"
)

const avatarColor = "#4F46E5"

// GenerateAvatarBase64 builds a simple SVG initials avatar as a base64 data
// URL, used when a user registers without a photo.
func GenerateAvatarBase64(name string) string {
	var initials strings.Builder
	for i, part := range strings.Fields(name) {
		if i >= 2 {
			break
		}
		runes := []rune(part)
		initials.WriteString(strings.ToUpper(string(runes[0])))
	}

	svg := fmt.Sprintf(`<svg width="100" height="100" viewBox="0 0 100 100" fill="none" xmlns="http://www.w3.org/2000/svg">
    <rect width="100" height="100" fill="%s"/>
    <text x="50%%" y="50%%" dominant-baseline="middle" text-anchor="middle" fill="white" font-size="20" font-family="Arial">%s</text>
    </svg>`, avatarColor, initials.String())

	encoded := base64.StdEncoding.EncodeToString([]byte(svg))
	return "data:image/svg+xml;base64," + encoded
}
