package registration

import (
	"errors"
	"maps"
)

var (
	ErrSubmittedTooFast = errors.New("registration: submitted too fast")
	ErrSessionCap       = errors.New("registration: session submission limit reached")
	ErrRelayFailed      = errors.New("registration: relay failed")
	ErrNotConfigured    = errors.New("registration: notifier not configured")
)

// ValidationError carries the field error map of a rejected registration.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "registration: validation failed"
}

// FieldErrors returns the field errors of err, or nil when err is not a
// ValidationError.
func FieldErrors(err error) map[string]string {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return maps.Clone(verr.Fields)
	}
	return nil
}
