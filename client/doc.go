// Package client drives the three-step registration form outside a browser.
//
// A Controller owns the form values, validation feedback, the current step
// and a submission status machine (idle, submitting, success, error). It runs
// the same step validators as the server, applies the client-side anti-bot
// guards (honeypot, minimum fill time, per-session cap) and posts the payload
// through a Transport:
//
//	c := client.NewController(client.NewHTTPTransport("https://example.org/api/register"))
//	c.SetField(registration.KeyTeamName, "fsociety")
//	c.Blur(registration.KeyTeamName)
//	if c.Next() { ... }
//	err := c.Submit(ctx)
//
// Errors are only shown for touched fields; see VisibleErrors.
package client
