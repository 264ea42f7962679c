package telegram

import "errors"

var (
	ErrNotConfigured  = errors.New("telegram.errors.not_configured")
	ErrRequestFailed  = errors.New("telegram.errors.request_failed")
	ErrTimeout        = errors.New("telegram.errors.timeout")
	ErrSendFailed     = errors.New("telegram.errors.send_failed")
	ErrInvalidMessage = errors.New("telegram.errors.invalid_message")
)
