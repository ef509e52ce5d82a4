// Package codec defines the per-codec variant interface that the
// session holds for its lifetime, and the shared parameter/slice types
// each variant's header synthesiser and bitstream assembler consume.
//
// Each supported codec (H.264, HEVC, VP8, VP9) implements Codec as a
// single concrete type rather than a table of function pointers — an
// interface with one implementation per variant is the idiomatic Go
// substitute for a tagged union.
package codec

import "github.com/Sky1-Linux/libva-v4l2-stateful/internal/bitio"

// Kind identifies which codec a Codec variant implements.
type Kind int

// Supported codec kinds.
const (
	KindH264 Kind = iota
	KindHEVC
	KindVP8
	KindVP9
)

func (k Kind) String() string {
	switch k {
	case KindH264:
		return "h264"
	case KindHEVC:
		return "hevc"
	case KindVP8:
		return "vp8"
	case KindVP9:
		return "vp9"
	default:
		return "unknown"
	}
}

// SliceUnit is one slice-data buffer paired with the slice-parameter
// struct latched for it during RenderPicture. Param is codec-specific
// (h264.SliceParams, hevc.SliceParams, or nil for VP8/VP9 which carry
// no slice-level parsed metadata this driver needs) and is inspected
// only by that codec's own PrepareBitstream.
type SliceUnit struct {
	Param any
	Data  []byte
}

// Codec is the per-session codec variant. The session holds exactly one
// Codec for its lifetime, chosen from the VA config's profile at
// context-creation time.
type Codec interface {
	// Kind reports which codec this variant implements.
	Kind() Kind

	// HandlePictureParams absorbs a parsed picture-parameter struct,
	// regenerating cached header NALs if the (width, height, bit-depth)
	// key changed. changed reports whether the header cache was
	// invalidated, for callers that want to log or test regeneration.
	// VP8/VP9 implementations are no-ops returning (false, nil): those
	// codecs carry no synthesised headers.
	HandlePictureParams(pp any) (changed bool, err error)

	// PrepareBitstream appends the Annex-B (or, for VP8/VP9, raw)
	// bytes for one picture to w: synthesised headers ahead of the
	// first keyframe since the last header-cache change, then every
	// slice's start-code-prefixed payload in order.
	PrepareBitstream(w *bitio.Writer, slices []SliceUnit) error

	// Reset clears any "headers already emitted" latch, forcing the
	// next keyframe to re-emit headers. HandlePictureParams clears the
	// same latch itself when it adopts a new cache key.
	Reset()
}
