package h264

// PictureParams is the subset of the VA API's picture-parameter buffer
// (VAPictureParameterBufferH264) this driver needs to synthesise an SPS
// and PPS. Fields not listed here (reference-picture lists, weighting
// tables beyond the flags that gate them, …) are consumed by the kernel
// decoder from the raw slice bitstream itself and are not part of
// header synthesis.
type PictureParams struct {
	Width  int // declared picture width in pixels
	Height int // declared picture height in pixels

	BitDepthLumaMinus8   int
	BitDepthChromaMinus8 int
	ChromaFormatIDC      int // 1 = 4:2:0, 2 = 4:2:2, 3 = 4:4:4; 0 treated as 1

	NumRefFrames      int
	EntropyCodingMode bool // true = CABAC, false = CAVLC
	Transform8x8Mode  bool

	PicOrderCntType            int
	Log2MaxFrameNumMinus4      int
	Log2MaxPicOrderCntLsbMinus4 int
	DeltaPicOrderAlwaysZero    bool
	GapsInFrameNumValueAllowed bool

	NumSliceGroupsMinus1            int
	WeightedPredFlag                bool
	WeightedBipredIdc               int
	PicInitQPMinus26                int
	PicInitQSMinus26                int
	ChromaQPIndexOffset              int
	SecondChromaQPIndexOffset         int
	DeblockingFilterControlPresent   bool
	ConstrainedIntraPredFlag         bool
	RedundantPicCntPresent           bool
	Direct8x8InferenceFlag           bool
}

func (pp PictureParams) chromaFormatIDC() int {
	if pp.ChromaFormatIDC == 0 {
		return 1
	}
	return pp.ChromaFormatIDC
}

// cacheKey identifies the (width, height, bit-depth) tuple that the
// header cache is keyed on.
type cacheKey struct {
	width, height          int
	bitDepthLuma, bitDepthChroma int
}

func (pp PictureParams) key() cacheKey {
	return cacheKey{
		width:          pp.Width,
		height:         pp.Height,
		bitDepthLuma:   pp.BitDepthLumaMinus8,
		bitDepthChroma: pp.BitDepthChromaMinus8,
	}
}
