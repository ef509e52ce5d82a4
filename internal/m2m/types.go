package m2m

// Buffer types (v4l2_buf_type). The stateful M2M decoder always uses
// the multi-planar variants even for single-plane formats.
const (
	bufTypeOutputMPlane  = 9 // V4L2_BUF_TYPE_VIDEO_OUTPUT_MPLANE: compressed bitstream in
	bufTypeCaptureMPlane = 8 // V4L2_BUF_TYPE_VIDEO_CAPTURE_MPLANE: decoded frames out
)

const (
	memoryMMAP = 1 // V4L2_MEMORY_MMAP

	fieldAny  = 0
	fieldNone = 1

	maxPlanes = 3

	eventSourceChange = 5 // V4L2_EVENT_SOURCE_CHANGE
)

// capability mirrors struct v4l2_capability (the fields this driver
// inspects; the kernel ABI struct is larger but the remainder is
// reserved padding we never read).
type capability struct {
	driver       [16]byte
	card         [32]byte
	busInfo      [32]byte
	version      uint32
	capabilities uint32
	deviceCaps   uint32
	_            [3]uint32
}

// planePixFormat mirrors struct v4l2_plane_pix_format.
type planePixFormat struct {
	sizeImage uint32
	bytesPerLine uint32
	_            [6]uint16
}

// pixFormatMPlane mirrors struct v4l2_pix_format_mplane.
type pixFormatMPlane struct {
	width        uint32
	height       uint32
	pixelFormat  uint32
	field        uint32
	colorspace   uint32
	planeFmt     [8]planePixFormat
	numPlanes    uint8
	flags        uint8
	ycbcrEnc     uint8
	quantization uint8
	xferFunc     uint8
	_            [7]uint8
}

// format mirrors struct v4l2_format for the multi-planar union member,
// padded to the kernel's 200-byte union size.
type format struct {
	typ uint32
	_   uint32 // the kernel's fmt union is 8-byte aligned on 64-bit
	fmt pixFormatMPlane
	_   [200 - 192]byte // pad the 192-byte pix_mp member out to the union size
}

// plane mirrors struct v4l2_plane.
type plane struct {
	bytesUsed  uint32
	length     uint32
	mem        uint64 // union { offset uint32; userptr unsigned long; fd int32 }; widened to 8 bytes for alignment
	dataOffset uint32
	_          [11]uint32
}

// buffer mirrors struct v4l2_buffer for the multi-planar case (the
// `m` union resolving to a *plane array pointer + length).
type buffer struct {
	index     uint32
	typ       uint32
	bytesUsed uint32
	flags     uint32
	field     uint32
	timestamp [2]int64
	timecode  [16]byte
	sequence  uint32
	memory    uint32
	planes    uint64 // *plane, as uintptr
	length    uint32
	reserved2 uint32
	requestFd int32
}

// requestBuffers mirrors struct v4l2_requestbuffers.
type requestBuffers struct {
	count        uint32
	typ          uint32
	memory       uint32
	capabilities uint32
	flags        uint8
	_            [3]uint8
}

// fmtdesc mirrors struct v4l2_fmtdesc.
type fmtdesc struct {
	index       uint32
	typ         uint32
	flags       uint32
	description [32]byte
	pixelFormat uint32
	mbusCode    uint32
	_           [3]uint32
}

// exportBuffer mirrors struct v4l2_exportbuffer.
type exportBuffer struct {
	typ    uint32
	index  uint32
	plane  uint32
	flags  uint32
	fd     int32
	_      [11]uint32
}

// eventSubscription mirrors struct v4l2_event_subscription.
type eventSubscription struct {
	typ    uint32
	id     uint32
	flags  uint32
	_      [5]uint32
}

// event mirrors struct v4l2_event (the fields this driver reads; the
// union payload is skipped since source-change carries no data this
// driver needs beyond the event type itself).
type event struct {
	typ       uint32
	u         [64]byte
	pending   uint32
	sequence  uint32
	timestamp [2]int64
	id        uint32
	_         [8]uint32
}
