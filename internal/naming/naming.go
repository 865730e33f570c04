package naming

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// maxFileNameLen caps generated file stems so derived output paths stay
// well under filesystem name limits.
const maxFileNameLen = 100

var separatorReplacer = strings.NewReplacer(" ", "_", "/", "_", "-", "_")

// SanitizeFileName converts free text into a safe file stem: lower-cased,
// separators folded to underscores, everything outside [a-z0-9_] dropped,
// capped at 100 characters. Titles with no representable characters come
// back empty; callers pick their own fallback.
// Example: "Petstore API" -> "petstore_api"
func SanitizeFileName(text string) string {
	text = separatorReplacer.Replace(strings.ToLower(text))

	var result strings.Builder
	result.Grow(len(text))
	for _, r := range text {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' {
			result.WriteRune(r)
		}
	}

	s := result.String()
	if len(s) > maxFileNameLen {
		s = s[:maxFileNameLen]
	}
	return s
}

// DisplayTitle renders a tag or section name for humans: separators
// become spaces, each word is title-cased.
// Example: "pet-store" -> "Pet Store"
func DisplayTitle(text string) string {
	text = strings.NewReplacer("_", " ", "-", " ").Replace(text)
	// Use golang.org/x/text/cases for proper title casing (strings.Title is deprecated)
	return cases.Title(language.English).String(text)
}
