package utils

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// GenerateRequestID generates a unique request ID for tracking
func GenerateRequestID() string {
	return uuid.New().String()
}

// FormatDuration formats a duration to a human-readable string
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return d.String()
	}
	if d < time.Minute {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	if d < time.Hour {
		return fmt.Sprintf("%.1fm", d.Minutes())
	}
	return fmt.Sprintf("%.1fh", d.Hours())
}

// Contains checks if a string slice contains a specific string
func Contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

// GetStringOrDefault returns the value if not blank, otherwise returns the default
func GetStringOrDefault(value, defaultValue string) string {
	if strings.TrimSpace(value) == "" {
		return defaultValue
	}
	return value
}

// DownloadFilename builds the suggested attachment name for a rendered resume,
// e.g. "Jane Q Doe" + "docx" -> "resume_Jane_Q_Doe.docx".
// A blank name yields "resume_generated.<ext>".
func DownloadFilename(name, extension string) string {
	if extension == "" {
		extension = "docx"
	}

	base := strings.Join(strings.Fields(name), "_")
	base = strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '_', r == '-', r == '.':
			return r
		default:
			return -1
		}
	}, base)
	base = strings.Trim(base, ".")
	if base == "" {
		base = "generated"
	}

	return fmt.Sprintf("resume_%s.%s", base, extension)
}
