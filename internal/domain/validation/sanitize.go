package validation

import "strings"

// Sanitizers run before storage or display. They are distinct from the
// rules above: rules decide accept/reject, sanitizers transform.

var unsafeReplacer = strings.NewReplacer(
	"<", "",
	">", "",
	"\"", "",
	"'", "",
	"`", "",
	";", "",
)

// CollapseWhitespace trims and folds internal whitespace runs to one space.
func CollapseWhitespace(value string) string {
	return strings.Join(strings.Fields(value), " ")
}

// StripUnsafe removes characters that are unsafe to echo into markup.
func StripUnsafe(value string) string {
	return unsafeReplacer.Replace(value)
}

// MaskID hides a government-style identifier, keeping only the last four
// characters visible.
func MaskID(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ""
	}
	if len(trimmed) <= 4 {
		return strings.Repeat("*", len(trimmed))
	}
	return strings.Repeat("*", len(trimmed)-4) + trimmed[len(trimmed)-4:]
}
