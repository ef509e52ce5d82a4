package va

import "errors"

// Sentinel errors mirroring libva's VA_STATUS_ERROR_* family. Callers
// distinguish them with errors.Is.
var (
	ErrInvalidConfig  = errors.New("va: invalid config id")
	ErrInvalidContext = errors.New("va: invalid context id")
	ErrInvalidSurface = errors.New("va: invalid surface id")
	ErrInvalidBuffer  = errors.New("va: invalid buffer id")

	ErrUnsupportedProfile    = errors.New("va: unsupported profile")
	ErrUnsupportedEntrypoint = errors.New("va: unsupported entrypoint")

	ErrOperationFailed = errors.New("va: operation failed")
	ErrUnimplemented   = errors.New("va: not implemented")
)
