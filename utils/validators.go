// File: /utils/validators.go
package utils

import (
	"encoding/base64"
	"strings"
	"time"
)

// ValidateDateFormat checks a calendar date in YYYY-MM-DD form.
func ValidateDateFormat(date string) bool {
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}

// ValidateTimeFormat checks a 24-hour clock value in HH:MM form.
func ValidateTimeFormat(clock string) bool {
	_, err := time.Parse("15:04", clock)
	return err == nil
}

// IsValidBase64Image checks whether the string is a base64 data URL image.
func IsValidBase64Image(image string) bool {
	if image == "" {
		return false
	}
	if !strings.HasPrefix(image, "data:image/") {
		return false
	}

	parts := strings.SplitN(image, ",", 2)
	if len(parts) != 2 {
		return false
	}

	_, err := base64.StdEncoding.DecodeString(parts[1])
	return err == nil
}
