package sanitizer

import "strings"

// text is the fixed pipeline behind Text.
var text = Compose(
	StripTags,
	RemoveDangerousChars,
	RemoveScriptFragments,
	Trim,
	CollapseWhitespace,
)

// Text removes markup and script-injection fragments from free-text input and
// normalises its whitespace. It is idempotent and never lengthens the input.
func Text(s string) string {
	if s == "" {
		return s
	}
	return text(s)
}

// StripTags removes HTML tag-like substrings.
func StripTags(s string) string {
	return htmlTagRegex.ReplaceAllString(s, "")
}

// RemoveDangerousChars removes < > " ' ` ; ( ) { }.
func RemoveDangerousChars(s string) string {
	return dangerousCharsRegex.ReplaceAllString(s, "")
}

// RemoveJavaScriptScheme removes every "javascript:" occurrence, case-insensitively.
func RemoveJavaScriptScheme(s string) string {
	return jsSchemeRegex.ReplaceAllString(s, "")
}

// RemoveEventHandlers removes inline handler fragments like "onclick=" or "ONLOAD =".
func RemoveEventHandlers(s string) string {
	return eventHandlerRegex.ReplaceAllString(s, "")
}

// RemoveScriptFragments applies RemoveJavaScriptScheme and RemoveEventHandlers
// until the string stops changing. A single pass is not enough:
// "javajavascript:script:" still contains "javascript:" after one removal.
func RemoveScriptFragments(s string) string {
	for {
		next := RemoveEventHandlers(RemoveJavaScriptScheme(s))
		if next == s {
			return s
		}
		s = next
	}
}

// Trim removes leading and trailing whitespace, including the byte order mark.
func Trim(s string) string {
	return strings.TrimFunc(s, IsSpace)
}

// CollapseWhitespace replaces runs of two or more whitespace characters with a single space.
func CollapseWhitespace(s string) string {
	return whitespaceRunRegex.ReplaceAllString(s, " ")
}
