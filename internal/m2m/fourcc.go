package m2m

import "github.com/Sky1-Linux/libva-v4l2-stateful/internal/codec"

func fourCC(a, b, c, d byte) uint32 {
	return uint32(a) | uint32(b)<<8 | uint32(c)<<16 | uint32(d)<<24
}

// Kernel pixel-format fourccs for the OUTPUT (compressed) queue, and
// AV1's passthrough fourcc: AV1 carries fourcc AV01 but its header
// synthesis is out of scope here — it is passed through unmodified.
var (
	FourCCH264 = fourCC('H', '2', '6', '4')
	FourCCHEVC = fourCC('H', 'E', 'V', 'C')
	FourCCVP8  = fourCC('V', 'P', '8', '0')
	FourCCVP9  = fourCC('V', 'P', '9', '0')
	FourCCAV1  = fourCC('A', 'V', '0', '1')

	// FourCCNV12 is the CAPTURE-queue pixel format for 8-bit 4:2:0
	// output surfaces.
	FourCCNV12 = fourCC('N', 'V', '1', '2')
	// FourCCP010 is the CAPTURE-queue pixel format for 10-bit 4:2:0
	// output surfaces (HEVC Main-10, VP9 Profile2).
	FourCCP010 = fourCC('P', '0', '1', '0')
)

// OutputFourCC maps a codec kind to its OUTPUT-queue compressed-format
// fourcc.
func OutputFourCC(kind codec.Kind) (uint32, bool) {
	switch kind {
	case codec.KindH264:
		return FourCCH264, true
	case codec.KindHEVC:
		return FourCCHEVC, true
	case codec.KindVP8:
		return FourCCVP8, true
	case codec.KindVP9:
		return FourCCVP9, true
	default:
		return 0, false
	}
}

// Profile is one VA profile advertised for a given kernel-enumerated
// OUTPUT fourcc.
type Profile int

// VA profiles this driver can advertise, by codec: the H.264 fourcc
// maps to three H.264 profiles, HEVC to Main and Main-10, VP9 to
// Profile0 and Profile2, and VP8 to a single profile.
const (
	ProfileH264Baseline Profile = iota
	ProfileH264Main
	ProfileH264High
	ProfileHEVCMain
	ProfileHEVCMain10
	ProfileVP8Version0
	ProfileVP9Profile0
	ProfileVP9Profile2
)

func (p Profile) String() string {
	switch p {
	case ProfileH264Baseline:
		return "H264Baseline"
	case ProfileH264Main:
		return "H264Main"
	case ProfileH264High:
		return "H264High"
	case ProfileHEVCMain:
		return "HEVCMain"
	case ProfileHEVCMain10:
		return "HEVCMain10"
	case ProfileVP8Version0:
		return "VP8Version0"
	case ProfileVP9Profile0:
		return "VP9Profile0"
	case ProfileVP9Profile2:
		return "VP9Profile2"
	default:
		return "unknown"
	}
}

// ProfilesForFourCC returns the VA profiles a decoder advertising
// fourcc on its OUTPUT queue supports.
func ProfilesForFourCC(fc uint32) []Profile {
	switch fc {
	case FourCCH264:
		return []Profile{ProfileH264Baseline, ProfileH264Main, ProfileH264High}
	case FourCCHEVC:
		return []Profile{ProfileHEVCMain, ProfileHEVCMain10}
	case FourCCVP9:
		return []Profile{ProfileVP9Profile0, ProfileVP9Profile2}
	case FourCCVP8:
		return []Profile{ProfileVP8Version0}
	default:
		return nil
	}
}
