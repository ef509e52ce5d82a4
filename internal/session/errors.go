// Package session implements the M2M session manager: queue setup and
// the source-change handshake, input-buffer recycling under
// backpressure, output-buffer dequeue with bounded timeout, and
// surface <-> decoded-buffer binding.
package session

import "errors"

// Sentinel errors a caller can distinguish with errors.Is.
var (
	// ErrNoFreeInputBuffer is returned by EndPicture when the bounded
	// input-buffer recycle wait (<= 1s) exhausts without a buffer
	// becoming free.
	ErrNoFreeInputBuffer = errors.New("session: no free input buffer (recycle wait exhausted)")

	// ErrNoSliceData is returned by EndPicture when RenderPicture was
	// never called with slice data before EndPicture.
	ErrNoSliceData = errors.New("session: EndPicture called with an empty assembly buffer")

	// ErrSurfaceInUse is returned by BeginPicture while an earlier
	// BeginPicture on this session has not yet been completed by
	// EndPicture, whichever surface either call names.
	ErrSurfaceInUse = errors.New("session: surface already bound as the active render target")

	ErrClosed = errors.New("session: use of a closed session")
)
