package va

import (
	"fmt"

	"github.com/Sky1-Linux/libva-v4l2-stateful/internal/m2m"
)

// V4L2_CAP_VIDEO_M2M / V4L2_CAP_VIDEO_M2M_MPLANE (linux/videodev2.h).
const (
	capVideoM2M       = 0x00008000
	capVideoM2MMPlane = 0x00004000
)

// candidateDevicePaths is tried in order; the first node that reports
// M2M (single- or multi-planar) capability is opened.
var candidateDevicePaths = []string{"/dev/video0", "/dev/video-dec0"}

// OpenDevice tries each candidate device node in turn, returning the
// first that opens and reports M2M decoder capability.
func OpenDevice() (*m2m.Device, error) {
	var lastErr error
	for _, path := range candidateDevicePaths {
		dev, err := m2m.Open(path)
		if err != nil {
			lastErr = err
			continue
		}
		cap, err := dev.QueryCap()
		if err != nil {
			dev.Close()
			lastErr = err
			continue
		}
		if cap.Caps&(capVideoM2M|capVideoM2MMPlane) == 0 {
			dev.Close()
			lastErr = fmt.Errorf("va: %s: no M2M capability (caps=%#x)", path, cap.Caps)
			continue
		}
		return dev, nil
	}
	return nil, fmt.Errorf("va: no usable M2M decoder device found: %w", lastErr)
}
