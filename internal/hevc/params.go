package hevc

// PictureParams mirrors the subset of VAPictureParameterBufferHEVC that
// drives VPS/SPS/PPS synthesis.
type PictureParams struct {
	Width  int
	Height int

	BitDepthLumaMinus8   int
	BitDepthChromaMinus8 int
	ChromaFormatIDC      int // 1=4:2:0, 2=4:2:2, 3=4:4:4; 0 defaults to 1

	NumRefFrames int // echoed into {vps,sps}_max_dec_pic_buffering_minus1[0]

	PicInitQPMinus26           int
	ConstrainedIntraPredFlag   bool
	WeightedPredFlag           bool
	WeightedBipredFlag         bool
	DeblockingFilterOverride   bool
	DeblockingFilterDisabled   bool
	BetaOffsetDiv2             int
	TcOffsetDiv2               int
}

func (p PictureParams) chromaFormatIDC() int {
	if p.ChromaFormatIDC == 0 {
		return 1
	}
	return p.ChromaFormatIDC
}

// cacheKey identifies the set of parameters that force header
// regeneration: keyed by (width, height, bit-depth, chroma format).
type cacheKey struct {
	width, height          int
	bitDepthLuma           int
	bitDepthChroma         int
	chromaFormatIDC        int
}

func (p PictureParams) key() cacheKey {
	return cacheKey{
		width:           p.Width,
		height:          p.Height,
		bitDepthLuma:    p.BitDepthLumaMinus8,
		bitDepthChroma:  p.BitDepthChromaMinus8,
		chromaFormatIDC: p.chromaFormatIDC(),
	}
}
