package security

import (
	"regexp"
	"strings"
)

const maxTextLength = 500

var (
	dangerousChars  = regexp.MustCompile("[<>{}|\\\\^~\\[\\]`]")
	spaceRuns       = regexp.MustCompile(`\s+`)
	serialChars     = regexp.MustCompile(`[^a-zA-Z0-9\-\s]`)
	unsafeNameChars = regexp.MustCompile(`[^\w\-.]`)
	emailShape      = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// SanitizeText strips markup-prone characters from free text, collapses
// whitespace runs and caps the length. Applied to every free-text field
// before it reaches the database or the summary document.
func SanitizeText(s string) string {
	if runes := []rune(s); len(runes) > maxTextLength {
		s = string(runes[:maxTextLength])
	}
	s = dangerousChars.ReplaceAllString(s, "")
	s = spaceRuns.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// SanitizeSerial keeps only the characters serial numbers are made of:
// letters, digits, dashes and spaces.
func SanitizeSerial(s string) string {
	s = serialChars.ReplaceAllString(s, "")
	s = spaceRuns.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// SanitizeEmail lower-cases and trims the address and reports whether it
// is shaped like an email at all.
func SanitizeEmail(s string) (string, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	return s, emailShape.MatchString(s)
}

// SafeFileName replaces every character outside letters, digits, dashes,
// dots and underscores, so the name is safe as an object-store key part.
func SafeFileName(name string) string {
	return unsafeNameChars.ReplaceAllString(name, "_")
}
