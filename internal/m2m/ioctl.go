// Package m2m wraps the Linux V4L2 stateful memory-to-memory decoder
// ioctl interface: device open/close, format negotiation, multi-planar
// buffer request/query/mmap, the queue/dequeue loop, streaming on/off,
// and the source-change event subscription used to learn the
// decoder's negotiated resolution.
//
// It talks to the kernel directly through golang.org/x/sys/unix
// syscalls rather than cgo.
package m2m

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// V4L2 ioctl request codes (linux/videodev2.h). These are fixed kernel
// ABI values, not driver-specific.
const (
	vidiocQueryCap   = 0x80685600
	vidiocEnumFmt    = 0xc0405602
	vidiocGFmt       = 0xc0d05604
	vidiocSFmt       = 0xc0d05605
	vidiocReqBufs    = 0xc0145608
	vidiocQueryBuf   = 0xc0585609
	vidiocQBuf       = 0xc058560f
	vidiocDQBuf      = 0xc0585611
	vidiocStreamOn   = 0x40045612
	vidiocStreamOff  = 0x40045613
	vidiocSubscribe  = 0x4020565a
	vidiocDQEvent    = 0x80885659
	vidiocDecoderCmd = 0xc0485660
	vidiocExpBuf     = 0xc0405610
)

func ioctl(fd int, request uintptr, arg unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), request, uintptr(arg))
	if errno != 0 {
		return errno
	}
	return nil
}
