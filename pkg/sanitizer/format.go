package sanitizer

import "strings"

// NormalizeEmail sanitizes, trims and lower-cases an e-mail address.
// Addresses are compared and transmitted only in this form.
func NormalizeEmail(email string) string {
	return strings.ToLower(Text(email))
}

// NormalizePhone drops spaces, hyphens and plus signs.
// Everything else is kept so that validation can report non-digit input.
func NormalizePhone(phone string) string {
	return phoneSeparatorRegex.ReplaceAllString(phone, "")
}
