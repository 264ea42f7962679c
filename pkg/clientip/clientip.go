package clientip

import (
	"net"
	"net/http"
	"strings"
)

// Unknown is returned when the request carries no usable forwarded address.
// All such requests share one rate-limit bucket.
const Unknown = "unknown"

// Header is the proxy header the client address is read from.
const Header = "X-Forwarded-For"

// GetIP returns the leading X-Forwarded-For entry, normalized, or Unknown
// when the header is absent or its leading entry is not an IP address.
// Later entries are never consulted.
func GetIP(r *http.Request) string {
	forwarded := r.Header.Get(Header)
	if forwarded == "" {
		return Unknown
	}

	leading, _, _ := strings.Cut(forwarded, ",")
	if ip := parseIP(leading); ip != "" {
		return ip
	}
	return Unknown
}

// parseIP validates and normalizes an address, tolerating a port suffix.
// Returns empty string if the IP is invalid.
func parseIP(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	if ip := net.ParseIP(strings.Trim(s, "[]")); ip != nil {
		return ip.String()
	}

	if host, _, err := net.SplitHostPort(s); err == nil {
		if ip := net.ParseIP(host); ip != nil {
			return ip.String()
		}
	}

	return ""
}
