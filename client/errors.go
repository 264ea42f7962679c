package client

import (
	"errors"

	"github.com/cykrypt/registration/svc/registration"
)

var (
	ErrInvalidStep   = errors.New("client: current step has errors")
	ErrNotSubmitting = errors.New("client: submission not allowed in current status")
	ErrTooFast       = registration.ErrSubmittedTooFast
	ErrSessionCap    = registration.ErrSessionCap
	ErrRejected      = errors.New("client: registration rejected by server")
	ErrTransport     = errors.New("client: request failed")
)

// Messages shown to the user.
const (
	MsgTooFast       = "Please take a moment to review your details before submitting."
	MsgSessionCap    = "Maximum submissions reached for this session."
	MsgNetwork       = "Network error. Please check your connection and try again."
	MsgUnknownFailed = "Registration failed. Please try again."
)
