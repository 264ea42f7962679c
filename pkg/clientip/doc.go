// Package clientip resolves the originating client address of a request
// served behind a reverse proxy.
//
// The address is the leading entry of the X-Forwarded-For header. Requests
// without the header, or whose leading entry is not a valid IP address,
// resolve to the sentinel Unknown. The resolved value is used as the key of
// the per-IP rate limit, so it is normalized (IPv6 in canonical form, port
// suffix dropped).
//
//	r := chi.NewRouter()
//	r.Use(clientip.Middleware)
//	r.With(ratelimit.Middleware(limiter, clientip.Key)).Post("/api/register", h)
//
// The header is trusted as-is. Deploy behind a proxy that overwrites it.
package clientip
