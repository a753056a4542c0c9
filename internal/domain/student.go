package domain

import (
	"strings"
	"unicode"
)

// Student is a roster entry. Username is the identity used for matching
// pull requests; Name is used for directory naming and display.
type Student struct {
	Name     string `json:"name"`
	Username string `json:"username"`
}

// DirName returns the filesystem-safe directory name for the student
func (s Student) DirName() string {
	return SanitizeDirName(s.Name)
}

// SanitizeDirName converts a roster name to a name safe to use as a single
// path component.
// - Letters, digits, hyphens, underscores and periods are kept
// - Whitespace and path separators become hyphens (consecutive ones collapsed)
// - Everything else is removed
// - Leading periods and hyphens are trimmed so the result is never hidden or
// mistaken for a flag
func SanitizeDirName(name string) string {
	var result strings.Builder
	lastWasHyphen := false

	for _, r := range name {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_' || r == '.':
			result.WriteRune(r)
			lastWasHyphen = false
		case r == '-' || unicode.IsSpace(r) || r == '/' || r == '\\':
			if !lastWasHyphen && result.Len() > 0 {
				result.WriteRune('-')
				lastWasHyphen = true
			}
		}
	}

	str := strings.TrimLeft(result.String(), ".-")
	str = strings.TrimRight(str, "-")
	if str == "." || str == ".." {
		return ""
	}
	return str
}
