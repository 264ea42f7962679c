// Package binder decodes HTTP request bodies into Go values.
//
// JSON returns a binder that enforces a body size limit, checks the media
// type and rejects trailing data after the top-level value:
//
//	bind := binder.JSON(binder.WithStrict())
//	if err := bind(r, &req); errors.Is(err, binder.ErrBodyTooLarge) {
//		// ...
//	}
//
// Errors wrap ErrUnsupportedMediaType, ErrBodyTooLarge or
// ErrFailedToParseJSON.
package binder
