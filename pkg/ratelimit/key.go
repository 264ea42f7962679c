package ratelimit

import "net/http"

// KeyFunc extracts a unique identifier from an HTTP request for rate limiting.
// An empty key skips limiting for the request.
type KeyFunc func(*http.Request) string

// Prefixed namespaces keys produced by fn, e.g. "register:203.0.113.7".
func Prefixed(prefix string, fn KeyFunc) KeyFunc {
	return func(r *http.Request) string {
		key := fn(r)
		if key == "" {
			return ""
		}
		return prefix + ":" + key
	}
}
