// Package registration mounts the public registration endpoint.
//
//	r := chi.NewRouter()
//	r.Mount("/api", registration.Router(svc, limiter, registration.WithLogger(log)))
//
// POST /register resolves the client IP, applies the per-IP limiter, refuses
// requests while the notification sink is unconfigured and hands the decoded
// payload to the registration service. Every response body has the shape
// {"success": bool, "error": string, "fieldErrors": {key: message}}; internal
// error details are logged, never returned.
package registration
