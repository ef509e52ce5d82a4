package session

import "sync"

// PixelFormat identifies a surface's pixel layout.
type PixelFormat int

const (
	PixelFormatNV12 PixelFormat = iota // 8-bit 4:2:0, the baseline for every codec
	PixelFormatP010                    // 10-bit 4:2:0, HEVC Main-10 / VP9 Profile2
)

// Surface is an opaque consumer-visible handle referring to a decoded
// frame slot.
type Surface struct {
	Width, Height int
	Format        PixelFormat

	mu   sync.Mutex
	cond *sync.Cond

	// boundIndex is the CAPTURE-queue buffer index currently bound to
	// this surface, or -1 if none.
	boundIndex int
	// exportedFD caches the dma-buf descriptor from a prior
	// ExportSurfaceHandle call, or -1 if none.
	exportedFD int
	decoded    bool

	session *Session // set on first use
}

// NewSurface returns an unbound surface of the given dimensions and
// format.
func NewSurface(width, height int, format PixelFormat) *Surface {
	s := &Surface{Width: width, Height: height, Format: format, boundIndex: -1, exportedFD: -1}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// bind records sess as this surface's owning session on first use, and
// recycles any previously-bound output buffer back to the kernel
// before the new binding takes effect. At any time at most one surface
// references a given output-buffer index; when a surface is re-used as
// a render target, any previously-bound output buffer is recycled back
// to the kernel before decoding begins.
func (s *Surface) bind(sess *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		s.session = sess
	}
	if s.boundIndex >= 0 {
		sess.recycleOutputLocked(s.boundIndex)
		s.boundIndex = -1
		s.exportedFD = -1
	}
	s.decoded = false
}

// onDecoded is called by the session's dequeue path when a
// CAPTURE-queue buffer completes for this surface.
func (s *Surface) onDecoded(bufIndex int) {
	s.mu.Lock()
	s.boundIndex = bufIndex
	s.decoded = true
	s.mu.Unlock()
	s.cond.Broadcast()
}

// IsDecoded reports whether this surface currently holds decoded
// pixel data.
func (s *Surface) IsDecoded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.decoded
}

// BoundIndex returns the CAPTURE-queue buffer index bound to this
// surface, or -1 if none.
func (s *Surface) BoundIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.boundIndex
}

// Session returns the session this surface was first bound to, or nil
// if it has never been the target of a BeginPicture call.
func (s *Surface) Session() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}
