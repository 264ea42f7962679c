package sanitizer

import (
	"regexp"
	"unicode"
)

// SpaceClass is the body of a regexp character class matching form-input
// whitespace. It extends RE2's ASCII \s with \v, NEL, the Unicode space
// separators, the line and paragraph separators and the byte order mark, so
// pasted non-breaking spaces are treated like ordinary ones.
const SpaceClass = `\s\v\x{85}\p{Zs}\x{2028}\x{2029}\x{FEFF}`

// IsSpace reports whether r belongs to SpaceClass.
func IsSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// Pre-compiled regular expressions for performance
var (
	// HTML stripping
	htmlTagRegex = regexp.MustCompile(`<[^>]*>`)

	// Characters that can break out of attributes, strings or templates
	dangerousCharsRegex = regexp.MustCompile("[<>\"'`;(){}]")

	// Script injection fragments
	jsSchemeRegex     = regexp.MustCompile(`(?i)javascript:`)
	eventHandlerRegex = regexp.MustCompile(`(?i)on\w+[` + SpaceClass + `]*=`)

	// Whitespace normalization
	whitespaceRunRegex = regexp.MustCompile(`[` + SpaceClass + `]{2,}`)

	// Phone separators
	phoneSeparatorRegex = regexp.MustCompile(`[` + SpaceClass + `\-+]`)
)
