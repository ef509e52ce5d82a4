package m2m

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Device is an open V4L2 stateful M2M decoder instance.
// Open/Close bracket its lifetime; the remaining methods wrap one
// ioctl or mmap call each, translating the kernel's multi-planar
// structures to and from plain Go types.
type Device struct {
	fd int

	outputMapped  [][]byte
	captureMapped [][]byte
}

// Open opens path (e.g. "/dev/video0") read-write.
func Open(path string) (*Device, error) {
	fd, err := unix.Open(path, unix.O_RDWR|unix.O_NONBLOCK, 0)
	if err != nil {
		return nil, fmt.Errorf("m2m: open %s: %w", path, err)
	}
	return &Device{fd: fd}, nil
}

// Close unmaps any remaining buffers and closes the device.
func (d *Device) Close() error {
	for _, b := range d.outputMapped {
		if b != nil {
			_ = unix.Munmap(b)
		}
	}
	for _, b := range d.captureMapped {
		if b != nil {
			_ = unix.Munmap(b)
		}
	}
	return unix.Close(d.fd)
}

// Capability reports the driver/card strings and capability bitmask
// from VIDIOC_QUERYCAP.
type Capability struct {
	Driver string
	Card   string
	Caps   uint32
}

func cString(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}

// QueryCap issues VIDIOC_QUERYCAP.
func (d *Device) QueryCap() (Capability, error) {
	var c capability
	if err := ioctl(d.fd, vidiocQueryCap, unsafe.Pointer(&c)); err != nil {
		return Capability{}, fmt.Errorf("m2m: VIDIOC_QUERYCAP: %w", err)
	}
	caps := c.capabilities
	if c.capabilities&0x80000000 != 0 { // V4L2_CAP_DEVICE_CAPS
		caps = c.deviceCaps
	}
	return Capability{Driver: cString(c.driver[:]), Card: cString(c.card[:]), Caps: caps}, nil
}

// Format is the decoder's pixel format for one queue direction.
type Format struct {
	Width, Height int
	PixelFormat   uint32
	SizeImage     uint32
	BytesPerLine  uint32
}

// SetFormat issues VIDIOC_S_FMT for the given buffer-type direction.
func (d *Device) SetFormat(output bool, f Format) (Format, error) {
	req := format{typ: bufType(output)}
	req.fmt.width = uint32(f.Width)
	req.fmt.height = uint32(f.Height)
	req.fmt.pixelFormat = f.PixelFormat
	req.fmt.field = fieldNone
	req.fmt.numPlanes = 1
	req.fmt.planeFmt[0].sizeImage = f.SizeImage

	if err := ioctl(d.fd, vidiocSFmt, unsafe.Pointer(&req)); err != nil {
		return Format{}, fmt.Errorf("m2m: VIDIOC_S_FMT: %w", err)
	}
	return formatFromWire(req), nil
}

// GetFormat issues VIDIOC_G_FMT, used after a source-change event to
// learn the decoder's negotiated CAPTURE resolution.
func (d *Device) GetFormat(output bool) (Format, error) {
	req := format{typ: bufType(output)}
	if err := ioctl(d.fd, vidiocGFmt, unsafe.Pointer(&req)); err != nil {
		return Format{}, fmt.Errorf("m2m: VIDIOC_G_FMT: %w", err)
	}
	return formatFromWire(req), nil
}

func formatFromWire(req format) Format {
	return Format{
		Width:        int(req.fmt.width),
		Height:       int(req.fmt.height),
		PixelFormat:  req.fmt.pixelFormat,
		SizeImage:    req.fmt.planeFmt[0].sizeImage,
		BytesPerLine: req.fmt.planeFmt[0].bytesPerLine,
	}
}

func bufType(output bool) uint32 {
	if output {
		return bufTypeOutputMPlane
	}
	return bufTypeCaptureMPlane
}

// EnumFormat issues VIDIOC_ENUM_FMT for the given direction and index,
// returning the pixel-format fourcc, or ok=false once index runs past
// the last format the kernel enumerates.
func (d *Device) EnumFormat(output bool, index int) (fourcc uint32, ok bool) {
	fd := fmtdesc{index: uint32(index), typ: bufType(output)}
	if err := ioctl(d.fd, vidiocEnumFmt, unsafe.Pointer(&fd)); err != nil {
		return 0, false
	}
	return fd.pixelFormat, true
}

// RequestBuffers issues VIDIOC_REQBUFS, returning the number of
// buffers the kernel actually allocated (may be clamped upward).
func (d *Device) RequestBuffers(output bool, count int) (int, error) {
	req := requestBuffers{count: uint32(count), typ: bufType(output), memory: memoryMMAP}
	if err := ioctl(d.fd, vidiocReqBufs, unsafe.Pointer(&req)); err != nil {
		return 0, fmt.Errorf("m2m: VIDIOC_REQBUFS: %w", err)
	}
	return int(req.count), nil
}

// QueryBuffer issues VIDIOC_QUERYBUF for buffer index, returning the
// plane's length and mmap offset.
func (d *Device) QueryBuffer(output bool, index int) (length uint32, offset uint32, err error) {
	planes := [1]plane{}
	buf := buffer{
		index:  uint32(index),
		typ:    bufType(output),
		memory: memoryMMAP,
		length: 1,
		planes: uint64(uintptr(unsafe.Pointer(&planes[0]))),
	}
	if err := ioctl(d.fd, vidiocQueryBuf, unsafe.Pointer(&buf)); err != nil {
		return 0, 0, fmt.Errorf("m2m: VIDIOC_QUERYBUF(%d): %w", index, err)
	}
	return planes[0].length, uint32(planes[0].mem), nil
}

// Mmap maps buffer index of the given direction, using length/offset
// from a prior QueryBuffer call, and records the mapping for Close to
// tear down.
func (d *Device) Mmap(output bool, index int, length, offset uint32) ([]byte, error) {
	b, err := unix.Mmap(d.fd, int64(offset), int(length), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("m2m: mmap buffer %d: %w", index, err)
	}
	if output {
		d.outputMapped = growTo(d.outputMapped, index+1)
		d.outputMapped[index] = b
	} else {
		d.captureMapped = growTo(d.captureMapped, index+1)
		d.captureMapped[index] = b
	}
	return b, nil
}

func growTo(s [][]byte, n int) [][]byte {
	for len(s) < n {
		s = append(s, nil)
	}
	return s
}

// QBuf enqueues buffer index with bytesUsed valid bytes in plane 0
// (the driver never uses more than one plane: NV12 is handled as a
// single contiguous allocation and compressed bitstreams are
// inherently single-plane).
func (d *Device) QBuf(output bool, index int, bytesUsed uint32) error {
	planes := [1]plane{{bytesUsed: bytesUsed}}
	buf := buffer{
		index:  uint32(index),
		typ:    bufType(output),
		memory: memoryMMAP,
		length: 1,
		planes: uint64(uintptr(unsafe.Pointer(&planes[0]))),
	}
	if err := ioctl(d.fd, vidiocQBuf, unsafe.Pointer(&buf)); err != nil {
		return fmt.Errorf("m2m: VIDIOC_QBUF(%d): %w", index, err)
	}
	return nil
}

// DQBufResult is one dequeued buffer.
type DQBufResult struct {
	Index     int
	BytesUsed uint32
}

// DQBuf dequeues the next completed buffer for the given direction.
// Callers should treat unix.EAGAIN as "nothing ready yet" (the device
// is opened O_NONBLOCK).
func (d *Device) DQBuf(output bool) (DQBufResult, error) {
	planes := [1]plane{}
	buf := buffer{
		typ:    bufType(output),
		memory: memoryMMAP,
		length: 1,
		planes: uint64(uintptr(unsafe.Pointer(&planes[0]))),
	}
	if err := ioctl(d.fd, vidiocDQBuf, unsafe.Pointer(&buf)); err != nil {
		return DQBufResult{}, err
	}
	return DQBufResult{Index: int(buf.index), BytesUsed: planes[0].bytesUsed}, nil
}

// StreamOn issues VIDIOC_STREAMON for the given direction.
func (d *Device) StreamOn(output bool) error {
	t := bufType(output)
	if err := ioctl(d.fd, vidiocStreamOn, unsafe.Pointer(&t)); err != nil {
		return fmt.Errorf("m2m: VIDIOC_STREAMON: %w", err)
	}
	return nil
}

// StreamOff issues VIDIOC_STREAMOFF for the given direction.
func (d *Device) StreamOff(output bool) error {
	t := bufType(output)
	if err := ioctl(d.fd, vidiocStreamOff, unsafe.Pointer(&t)); err != nil {
		return fmt.Errorf("m2m: VIDIOC_STREAMOFF: %w", err)
	}
	return nil
}

// SubscribeSourceChange subscribes to V4L2_EVENT_SOURCE_CHANGE, fired
// when the decoder determines the stream's actual resolution from the
// bitstream headers.
func (d *Device) SubscribeSourceChange() error {
	sub := eventSubscription{typ: eventSourceChange}
	if err := ioctl(d.fd, vidiocSubscribe, unsafe.Pointer(&sub)); err != nil {
		return fmt.Errorf("m2m: VIDIOC_SUBSCRIBE_EVENT: %w", err)
	}
	return nil
}

// DequeueEvent issues VIDIOC_DQEVENT, returning the event type.
func (d *Device) DequeueEvent() (uint32, error) {
	var ev event
	if err := ioctl(d.fd, vidiocDQEvent, unsafe.Pointer(&ev)); err != nil {
		return 0, err
	}
	return ev.typ, nil
}

// ExportBuffer issues VIDIOC_EXPBUF, returning a dma-buf file
// descriptor for buffer index. Used to hand decoded surfaces to a
// consumer without a copy.
func (d *Device) ExportBuffer(output bool, index int) (int, error) {
	eb := exportBuffer{typ: bufType(output), index: uint32(index)}
	if err := ioctl(d.fd, vidiocExpBuf, unsafe.Pointer(&eb)); err != nil {
		return -1, fmt.Errorf("m2m: VIDIOC_EXPBUF(%d): %w", index, err)
	}
	return int(eb.fd), nil
}
