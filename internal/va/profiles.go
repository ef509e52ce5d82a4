package va

import (
	"github.com/Sky1-Linux/libva-v4l2-stateful/internal/codec"
	"github.com/Sky1-Linux/libva-v4l2-stateful/internal/m2m"
)

// Entrypoint identifies a VA entry point. This driver advertises
// exactly one, since the kernel M2M decoder is the only thing it
// drives: variable-length decode.
type Entrypoint int

const EntrypointVLD Entrypoint = 0

// codecKindForProfile maps a VA profile to the codec.Kind whose
// session handles it.
func codecKindForProfile(p m2m.Profile) (codec.Kind, bool) {
	switch p {
	case m2m.ProfileH264Baseline, m2m.ProfileH264Main, m2m.ProfileH264High:
		return codec.KindH264, true
	case m2m.ProfileHEVCMain, m2m.ProfileHEVCMain10:
		return codec.KindHEVC, true
	case m2m.ProfileVP8Version0:
		return codec.KindVP8, true
	case m2m.ProfileVP9Profile0, m2m.ProfileVP9Profile2:
		return codec.KindVP9, true
	default:
		return 0, false
	}
}

// candidateFourCCs is the set of OUTPUT-queue fourccs this driver ever
// asks the kernel about, independent of what a particular device
// actually enumerates.
var candidateFourCCs = []uint32{
	m2m.FourCCH264, m2m.FourCCHEVC, m2m.FourCCVP8, m2m.FourCCVP9,
}

// SupportedProfiles enumerates the VA profiles dev's kernel decoder
// advertises, by walking VIDIOC_ENUM_FMT on the OUTPUT queue and
// reverse-mapping every fourcc the kernel reports through
// m2m.ProfilesForFourCC.
func SupportedProfiles(dev *m2m.Device) []m2m.Profile {
	enumerated := make(map[uint32]bool)
	for i := 0; ; i++ {
		fc, ok := dev.EnumFormat(true, i)
		if !ok {
			break
		}
		enumerated[fc] = true
	}

	var out []m2m.Profile
	for _, fc := range candidateFourCCs {
		if !enumerated[fc] {
			continue
		}
		out = append(out, m2m.ProfilesForFourCC(fc)...)
	}
	return out
}
