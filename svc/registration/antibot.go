package registration

import "time"

const (
	// MinFillTime is the shortest plausible time for a human to fill the form.
	MinFillTime = 5 * time.Second

	// MaxSessionSubmissions caps successful submissions per client session.
	MaxSessionSubmissions = 3
)

// HoneypotTripped reports whether the hidden field was filled in.
func HoneypotTripped(value string) bool {
	return value != ""
}

// IsTimingSuspicious reports whether the form was submitted faster than
// MinFillTime after it became interactive. An unknown open time is
// suspicious.
func IsTimingSuspicious(openedAt, now time.Time) bool {
	if openedAt.IsZero() {
		return true
	}
	return now.Sub(openedAt) < MinFillTime
}

// SessionCapReached reports whether a session has used up its submissions.
func SessionCapReached(count int) bool {
	return count >= MaxSessionSubmissions
}
