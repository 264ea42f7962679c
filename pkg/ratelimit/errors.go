package ratelimit

import "errors"

var (
	ErrInvalidLimit    = errors.New("ratelimit: invalid limit")
	ErrInvalidWindow   = errors.New("ratelimit: invalid window")
	ErrKeyRequired     = errors.New("ratelimit: key is required")
	ErrStoreRequired   = errors.New("ratelimit: store is required")
	ErrStoreFailed     = errors.New("ratelimit: store operation failed")
	ErrUnexpectedReply = errors.New("ratelimit: unexpected store reply")
)
