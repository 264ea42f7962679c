// Package registration implements the team registration pipeline shared by
// the HTTP endpoint and the form client: the data model, per-field and
// per-step validation, anti-bot guards, notification formatting and the
// Service that relays an accepted registration to a Notifier.
//
// Validation is identical on both sides of the trust boundary. The client runs
// the step validators for live feedback; the server runs ValidateAll again on
// the raw submission and never trusts client-side sanitization.
//
// Error messages are keyed by form field ("teamName", "leaderEmail",
// "member0_phone", "_members", ...) so server responses can be merged into
// the same error map the client renders.
package registration
