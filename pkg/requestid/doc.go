// Package requestid tags every HTTP request with a correlation ID.
//
// Middleware accepts a client-supplied X-Request-ID when it is at most 128
// characters of [a-zA-Z0-9_-], and otherwise generates a UUIDv7. The ID is
// echoed in the response header and available through FromContext.
// LoggerExtractor plugs into logger.WithContextExtractors so every record
// logged with a request context carries request_id.
package requestid
