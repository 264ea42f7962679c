package validator

import (
	"fmt"
	"regexp"
	"unicode"
)

// Matches validates value against a pre-compiled pattern.
// Callers compile patterns once at package level.
func Matches(field, value string, pattern *regexp.Regexp, description string) Rule {
	return Rule{
		Check: func() bool {
			return pattern.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must match %s pattern", description),
			TranslationKey: "validation.regex_pattern",
			TranslationValues: map[string]any{
				"field":       field,
				"pattern":     pattern.String(),
				"description": description,
			},
		},
	}
}

// Digits validates that value consists of ASCII digits only.
// An empty value fails.
func Digits(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return value != "" && isDigits(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must contain only digits",
			TranslationKey: "validation.digits",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// NotAllDigits rejects values made up exclusively of ASCII digits.
// An empty value passes; pair with Required.
func NotAllDigits(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return value == "" || !isDigits(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must not consist of digits only",
			TranslationKey: "validation.not_all_digits",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// NoRepeatedRun rejects values containing a run of at least runLen identical
// characters, compared case-insensitively ("aaaaa", "XxXxX").
// This is a junk-input heuristic, not a security control.
func NoRepeatedRun(field, value string, runLen int) Rule {
	return Rule{
		Check: func() bool {
			return !HasRepeatedRun(value, runLen)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "appears invalid (repeated characters)",
			TranslationKey: "validation.repeated_run",
			TranslationValues: map[string]any{
				"field": field,
				"run":   runLen,
			},
		},
	}
}

// HasRepeatedRun reports whether s contains runLen or more consecutive
// identical characters, ignoring case.
func HasRepeatedRun(s string, runLen int) bool {
	if runLen <= 1 {
		return s != ""
	}

	var prev rune
	count := 0
	for _, r := range s {
		r = unicode.ToLower(r)
		if count > 0 && r == prev {
			count++
		} else {
			prev = r
			count = 1
		}
		if count >= runLen {
			return true
		}
	}
	return false
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
