package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Sky1-Linux/libva-v4l2-stateful/internal/bitio"
	"github.com/Sky1-Linux/libva-v4l2-stateful/internal/codec"
	"github.com/Sky1-Linux/libva-v4l2-stateful/internal/h264"
	"github.com/Sky1-Linux/libva-v4l2-stateful/internal/hevc"
	"github.com/Sky1-Linux/libva-v4l2-stateful/internal/m2m"
	"github.com/Sky1-Linux/libva-v4l2-stateful/internal/vp8"
	"github.com/Sky1-Linux/libva-v4l2-stateful/internal/vp9"
)

const (
	inputBufferCount  = 8
	inputPlaneSize    = 4 << 20 // 4 MiB
	outputBufferCount = 16

	recycleWaitIterations = 100
	recycleWaitInterval   = 10 * time.Millisecond // 100 * 10ms = 1s bound

	handshakeWaitIterations = 100
	handshakeWaitInterval   = 10 * time.Millisecond // 100 * 10ms = 1s bound

	syncWaitIterations = 50
	syncWaitInterval    = 10 * time.Millisecond // 50 * 10ms = 500ms bound
)

// newCodec constructs the per-codec header synthesiser/assembler for
// kind.
func newCodec(kind codec.Kind) (codec.Codec, error) {
	switch kind {
	case codec.KindH264:
		return h264.New(), nil
	case codec.KindHEVC:
		return hevc.New(), nil
	case codec.KindVP8:
		return vp8.New(), nil
	case codec.KindVP9:
		return vp9.New(), nil
	default:
		return nil, fmt.Errorf("session: unsupported codec kind %v", kind)
	}
}

// Session represents a single active decode stream. All
// session-mutating operations serialise on mu; there is no dedicated
// worker goroutine — every call does its own work inline and returns.
type Session struct {
	mu sync.Mutex

	dev  *m2m.Device
	cdc  codec.Codec
	kind codec.Kind

	maxWidth, maxHeight int

	inputQ  *m2m.Queue
	outputQ *m2m.Queue // nil until the source-change handshake completes

	streamingInput  bool
	streamingOutput bool

	// current holds the render target of the in-progress
	// BeginPicture/RenderPicture*/EndPicture sequence, and pending
	// accumulates that picture's slice units until EndPicture.
	current *Surface
	pending []codec.SliceUnit

	// awaiting is the FIFO of surfaces whose EndPicture has submitted a
	// picture to the kernel but whose decoded output buffer has not
	// yet been dequeued. Decode order always matches submission order,
	// so output completion order equals this submission order.
	awaiting []*Surface

	closed bool
}

// New opens dev for the given codec kind, configures the input queue,
// and subscribes to source-change events. The output queue is
// deliberately left unconfigured until the first-input handshake
// completes.
func New(dev *m2m.Device, kind codec.Kind, maxWidth, maxHeight int) (*Session, error) {
	cdc, err := newCodec(kind)
	if err != nil {
		return nil, err
	}

	fourcc, ok := m2m.OutputFourCC(kind)
	if !ok {
		return nil, fmt.Errorf("session: no OUTPUT fourcc for codec kind %v", kind)
	}
	if _, err := dev.SetFormat(true, m2m.Format{Width: maxWidth, Height: maxHeight, PixelFormat: fourcc, SizeImage: inputPlaneSize}); err != nil {
		return nil, fmt.Errorf("session: configure input format: %w", err)
	}

	inputQ, err := m2m.NewQueue(dev, true, inputBufferCount)
	if err != nil {
		return nil, fmt.Errorf("session: allocate input queue: %w", err)
	}

	if err := dev.SubscribeSourceChange(); err != nil {
		return nil, fmt.Errorf("session: subscribe source-change: %w", err)
	}

	return &Session{dev: dev, cdc: cdc, kind: kind, inputQ: inputQ, maxWidth: maxWidth, maxHeight: maxHeight}, nil
}

// Close stops both kernel streams and releases every mapping.
// Destruction is the only way to unwind a session; any in-flight
// buffers are released by stopping the streams.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true

	var g errgroup.Group
	if s.streamingInput {
		g.Go(func() error { return s.dev.StreamOff(true) })
	}
	if s.streamingOutput {
		g.Go(func() error { return s.dev.StreamOff(false) })
	}
	if err := g.Wait(); err != nil {
		s.dev.Close()
		return fmt.Errorf("session: stream off: %w", err)
	}
	return s.dev.Close()
}

// BeginPicture marks surface as the render target for the picture that
// follows.
func (s *Session) BeginPicture(surf *Surface) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	if s.current != nil {
		return ErrSurfaceInUse
	}
	surf.bind(s)
	s.current = surf
	s.pending = s.pending[:0]
	return nil
}

// RenderPicture absorbs one picture-parameter/slice-data unit: pp
// updates the codec's header cache (regenerating cached NALs if the
// key changed), and slice is latched for EndPicture's assembly pass.
func (s *Session) RenderPicture(pp any, slice codec.SliceUnit) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	if s.current == nil {
		return fmt.Errorf("session: RenderPicture without a preceding BeginPicture")
	}
	if pp != nil {
		if _, err := s.cdc.HandlePictureParams(pp); err != nil {
			return err
		}
	}
	s.pending = append(s.pending, slice)
	return nil
}

// EndPicture assembles the current picture's Annex-B bitstream,
// submits it to the kernel input queue, and attempts a non-blocking
// output dequeue. ctx bounds the input-buffer recycle wait and, on the
// first call, the source-change handshake.
func (s *Session) EndPicture(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	if s.current == nil {
		return fmt.Errorf("session: EndPicture without a preceding BeginPicture")
	}
	if len(s.pending) == 0 {
		return ErrNoSliceData
	}

	capacity := 256 // headroom for synthesised VPS/SPS/PPS and start codes
	for _, sl := range s.pending {
		capacity += len(sl.Data) + 3
	}
	w := bitio.NewWriter(capacity)
	if err := s.cdc.PrepareBitstream(w, s.pending); err != nil {
		return err
	}

	if err := s.enqueueInputLocked(ctx, w.Bytes()); err != nil {
		return err
	}

	s.awaiting = append(s.awaiting, s.current)
	s.current = nil
	s.pending = nil

	s.dequeueOutputLocked()
	return nil
}

// enqueueInputLocked recycles completed input buffers, acquires a free
// one (waiting up to 1s if none are immediately free, or until ctx is
// done), submits data, and on the very first successful enqueue runs
// the first-input handshake. s.mu is held.
func (s *Session) enqueueInputLocked(ctx context.Context, data []byte) error {
	s.drainInputLocked()

	desc, ok := s.inputQ.Acquire()
	if !ok {
		deadline := time.Now().Add(time.Duration(recycleWaitIterations) * recycleWaitInterval)
		for !ok && time.Now().Before(deadline) {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(recycleWaitInterval):
			}
			s.drainInputLocked()
			desc, ok = s.inputQ.Acquire()
		}
		if !ok {
			return ErrNoFreeInputBuffer
		}
	}

	n := copy(desc.Data, data)
	if err := s.inputQ.Submit(desc, uint32(n)); err != nil {
		s.inputQ.Recycle(desc)
		return err
	}

	if !s.streamingInput {
		if err := s.firstInputHandshakeLocked(ctx); err != nil {
			return err
		}
	}
	return nil
}

// drainInputLocked reclaims any input buffers the kernel has finished
// with, without blocking.
func (s *Session) drainInputLocked() {
	for {
		desc, err := s.inputQ.Collect()
		if err != nil {
			return
		}
		s.inputQ.Recycle(desc)
	}
}

// firstInputHandshakeLocked runs the first-input handshake: stream-on
// the input queue, poll for the source-change event (bounded by ctx as
// well as the iteration count), then configure and start the output
// queue.
func (s *Session) firstInputHandshakeLocked(ctx context.Context) error {
	if err := s.dev.StreamOn(true); err != nil {
		return fmt.Errorf("session: STREAMON input: %w", err)
	}
	s.streamingInput = true

loop:
	for i := 0; i < handshakeWaitIterations; i++ {
		evType, err := s.dev.DequeueEvent()
		if err == nil && evType != 0 {
			break
		}
		select {
		case <-ctx.Done():
			break loop
		case <-time.After(handshakeWaitInterval):
		}
	}

	outFmt, err := s.dev.GetFormat(false)
	if err != nil {
		// Fall back to an explicit (width x height, YUV-420 planar)
		// format.
		outFmt = m2m.Format{Width: s.maxWidth, Height: s.maxHeight, PixelFormat: m2m.FourCCNV12}
		if _, err := s.dev.SetFormat(false, outFmt); err != nil {
			return fmt.Errorf("session: fallback output format: %w", err)
		}
	}

	outputQ, err := m2m.NewQueue(s.dev, false, outputBufferCount)
	if err != nil {
		return fmt.Errorf("session: allocate output queue: %w", err)
	}
	for {
		desc, ok := outputQ.Acquire()
		if !ok {
			break
		}
		if err := outputQ.Submit(desc, 0); err != nil {
			return fmt.Errorf("session: enqueue output buffer %d: %w", desc.Index, err)
		}
	}

	if err := s.dev.StreamOn(false); err != nil {
		return fmt.Errorf("session: STREAMON output: %w", err)
	}
	s.outputQ = outputQ
	s.streamingOutput = true
	return nil
}

// dequeueOutputLocked attempts one non-blocking output dequeue. On
// success it binds the completed buffer to the oldest surface still
// awaiting decode.
func (s *Session) dequeueOutputLocked() {
	if s.outputQ == nil || len(s.awaiting) == 0 {
		return
	}
	desc, err := s.outputQ.Collect()
	if err != nil {
		return
	}
	surf := s.awaiting[0]
	s.awaiting = s.awaiting[1:]
	surf.onDecoded(desc.Index)
}

// recycleOutputLocked returns a CAPTURE buffer to the kernel, used by
// Surface.bind when a surface is re-used as a render target while
// still holding a previous binding. Callers must already hold s.mu
// (Surface.bind is only ever invoked from BeginPicture, which does).
func (s *Session) recycleOutputLocked(bufIndex int) {
	if s.outputQ == nil {
		return
	}
	desc := s.outputQ.DescriptorAt(bufIndex)
	if desc == nil {
		return
	}
	_ = s.outputQ.Submit(desc, 0) // re-enqueue directly; never touches the free list
}

// SyncSurface blocks until surf is decoded, ctx is done, or the 500ms
// bound elapses. On exhaustion it marks the surface decoded anyway —
// a deliberate liveness-over-completeness tradeoff.
func (s *Session) SyncSurface(ctx context.Context, surf *Surface) error {
	for i := 0; i < syncWaitIterations; i++ {
		if surf.IsDecoded() {
			return nil
		}
		s.mu.Lock()
		s.dequeueOutputLocked()
		s.mu.Unlock()
		if surf.IsDecoded() {
			return nil
		}
		select {
		case <-ctx.Done():
			surf.onDecoded(surf.BoundIndex())
			return nil
		case <-time.After(syncWaitInterval):
		}
	}
	if !surf.IsDecoded() {
		surf.onDecoded(surf.BoundIndex())
	}
	return nil
}

// ExportSurface returns a dma-buf file descriptor for surf's bound
// output buffer's plane 0, caching it on success.
func (s *Session) ExportSurface(surf *Surface) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := surf.BoundIndex()
	if idx < 0 {
		return -1, fmt.Errorf("session: surface has no bound output buffer")
	}
	surf.mu.Lock()
	cached := surf.exportedFD
	surf.mu.Unlock()
	if cached >= 0 {
		return cached, nil
	}
	fd, err := s.dev.ExportBuffer(false, idx)
	if err != nil {
		return -1, err
	}
	surf.mu.Lock()
	surf.exportedFD = fd
	surf.mu.Unlock()
	return fd, nil
}

// ReadbackNV12 copies Y (w*h bytes) then UV (w*h/2 bytes) from surf's
// bound output buffer into dst.
func (s *Session) ReadbackNV12(surf *Surface, dst []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := surf.BoundIndex()
	if idx < 0 {
		return fmt.Errorf("session: surface has no bound output buffer")
	}
	desc := s.outputQ.DescriptorAt(idx)
	if desc == nil {
		return fmt.Errorf("session: no descriptor for output buffer %d", idx)
	}
	n := copy(dst, desc.Data)
	if n < len(dst) {
		return fmt.Errorf("session: readback truncated: copied %d of %d bytes", n, len(dst))
	}
	return nil
}
