package h264

import "github.com/Sky1-Linux/libva-v4l2-stateful/internal/bitio"

// spsCapacity is generous headroom for a synthesised SPS: the packed
// payload is a few dozen bytes at most.
const spsCapacity = 64

// croppedResolutions lists coded resolutions whose height is the
// display height (1080, 720, 360) padded up to a macroblock multiple;
// the SPS crops them by 4 chroma units (8 luma rows) at the bottom.
var croppedResolutions = map[[2]int]int{
	{1920, 1088}: 4,
	{1280, 736}:  4,
	{640, 368}:   4,
}

func cropBottomUnits(width, height int) int {
	return croppedResolutions[[2]int{width, height}]
}

// buildSPS synthesises an Annex-B SPS NAL (including the 0x67 NAL header
// byte, excluding the start code) from pp.
func buildSPS(pp PictureParams) []byte {
	profileIDC := selectProfile(pp)
	widthMbs := pp.Width / 16
	heightMbs := pp.Height / 16
	levelIDC := lookupLevel(widthMbs, heightMbs, pp.NumRefFrames)
	cropBottom := cropBottomUnits(pp.Width, pp.Height)

	w := bitio.NewWriter(spsCapacity)
	w.PutBits(0x67, 8) // NAL header: nal_ref_idc=3, nal_unit_type=7

	w.PutBits(uint64(profileIDC), 8)

	// constraint_set flags: set 0 iff Baseline, set 1 iff profile <= Main.
	var constraintFlags uint64
	if profileIDC == ProfileBaseline {
		constraintFlags |= 1 << 7
	}
	if profileIDC <= ProfileMain {
		constraintFlags |= 1 << 6
	}
	w.PutBits(constraintFlags, 8)
	w.PutBits(uint64(levelIDC), 8)

	w.PutUE(0) // seq_parameter_set_id

	if isHighProfile(profileIDC) {
		chromaFormatIDC := pp.chromaFormatIDC()
		w.PutUE(uint(chromaFormatIDC))
		if chromaFormatIDC == 3 {
			w.PutFlag(false) // separate_colour_plane_flag
		}
		w.PutUE(uint(pp.BitDepthLumaMinus8))
		w.PutUE(uint(pp.BitDepthChromaMinus8))
		w.PutFlag(false) // qpprime_y_zero_transform_bypass_flag
		w.PutFlag(false) // seq_scaling_matrix_present_flag
	}

	w.PutUE(uint(pp.Log2MaxFrameNumMinus4))
	w.PutUE(uint(pp.PicOrderCntType))
	switch pp.PicOrderCntType {
	case 0:
		w.PutUE(uint(pp.Log2MaxPicOrderCntLsbMinus4))
	case 1:
		w.PutFlag(pp.DeltaPicOrderAlwaysZero)
		w.PutSE(0) // offset_for_non_ref_pic
		w.PutSE(0) // offset_for_top_to_bottom_field
		w.PutUE(0) // num_ref_frames_in_pic_order_cnt_cycle
	case 2:
		// no additional fields
	}

	w.PutUE(uint(pp.NumRefFrames))
	w.PutFlag(pp.GapsInFrameNumValueAllowed)
	w.PutUE(uint(widthMbs - 1))
	w.PutUE(uint(heightMbs - 1))

	w.PutFlag(true) // frame_mbs_only_flag — no interlace support
	// frame_mbs_only_flag == true, so mb_adaptive_frame_field_flag is absent

	w.PutFlag(pp.Direct8x8InferenceFlag)

	frameCropping := cropBottom > 0
	w.PutFlag(frameCropping)
	if frameCropping {
		w.PutUE(0)                   // frame_crop_left_offset
		w.PutUE(0)                   // frame_crop_right_offset
		w.PutUE(0)                   // frame_crop_top_offset
		w.PutUE(uint(cropBottom))    // frame_crop_bottom_offset
	}

	w.PutFlag(false) // vui_parameters_present_flag

	w.Finish()
	return w.Bytes()
}
