package hevc

import "github.com/Sky1-Linux/libva-v4l2-stateful/internal/bitio"

const spsCapacity = 64

// ctbSizeLog2 is the fixed 64x64 coding-tree-block size this driver
// advertises; conformance-window alignment is computed against it.
const ctbSizeLog2 = 6
const ctbSize = 1 << ctbSizeLog2

func chromaSubsampling(chromaFormatIDC int) (subWidthC, subHeightC int) {
	switch chromaFormatIDC {
	case 2:
		return 2, 1
	case 3:
		return 1, 1
	default:
		return 2, 2
	}
}

func alignUp(v, to int) int { return (v + to - 1) / to * to }

// buildSPS synthesises an Annex-B SPS NAL.
func buildSPS(pp PictureParams) []byte {
	profile := selectProfile(pp)
	lumaSamples := pp.Width * pp.Height
	levelIDC := lookupLevel(lumaSamples)
	tier := selectTier(levelIDC, lumaSamples)
	chromaFormatIDC := pp.chromaFormatIDC()

	w := bitio.NewWriter(spsCapacity)
	putNALHeader(w, NALTypeSPS)

	w.PutBits(0, 4) // sps_video_parameter_set_id
	w.PutBits(0, 3) // sps_max_sub_layers_minus1
	w.PutFlag(true) // sps_temporal_id_nesting_flag

	writeProfileTierLevel(w, profile, tier, levelIDC)

	w.PutUE(0) // sps_seq_parameter_set_id
	w.PutUE(uint(chromaFormatIDC))
	if chromaFormatIDC == 3 {
		w.PutFlag(false) // separate_colour_plane_flag
	}
	// The coded size is rounded up to the CTB grid; the conformance
	// window below crops it back to the declared size.
	alignedW := alignUp(pp.Width, ctbSize)
	alignedH := alignUp(pp.Height, ctbSize)
	w.PutUE(uint(alignedW)) // pic_width_in_luma_samples
	w.PutUE(uint(alignedH)) // pic_height_in_luma_samples

	confWindow := alignedW != pp.Width || alignedH != pp.Height
	w.PutFlag(confWindow)
	if confWindow {
		subW, subH := chromaSubsampling(chromaFormatIDC)
		w.PutUE(0) // conf_win_left_offset
		w.PutUE(uint((alignedW - pp.Width) / subW))
		w.PutUE(0) // conf_win_top_offset
		w.PutUE(uint((alignedH - pp.Height) / subH))
	}

	w.PutUE(uint(pp.BitDepthLumaMinus8))
	w.PutUE(uint(pp.BitDepthChromaMinus8))
	w.PutUE(4) // log2_max_pic_order_cnt_lsb_minus4

	w.PutFlag(true)                 // sps_sub_layer_ordering_info_present_flag
	w.PutUE(uint(pp.NumRefFrames))  // sps_max_dec_pic_buffering_minus1[0]
	w.PutUE(0)                      // sps_max_num_reorder_pics[0]
	w.PutUE(0)                      // sps_max_latency_increase_plus1[0]

	w.PutUE(0) // log2_min_luma_coding_block_size_minus3
	w.PutUE(uint(ctbSizeLog2 - 3)) // log2_diff_max_min_luma_coding_block_size
	w.PutUE(0) // log2_min_luma_transform_block_size_minus2
	w.PutUE(3) // log2_diff_max_min_luma_transform_block_size
	w.PutUE(0) // max_transform_hierarchy_depth_inter
	w.PutUE(0) // max_transform_hierarchy_depth_intra

	w.PutFlag(false) // scaling_list_enabled_flag
	w.PutFlag(false) // amp_enabled_flag
	w.PutFlag(false) // sample_adaptive_offset_enabled_flag
	w.PutFlag(false) // pcm_enabled_flag

	w.PutUE(0)        // num_short_term_ref_pic_sets
	w.PutFlag(false)  // long_term_ref_pics_present_flag
	w.PutFlag(false)  // sps_temporal_mvp_enabled_flag
	w.PutFlag(false)  // strong_intra_smoothing_enabled_flag

	w.PutFlag(true) // vui_parameters_present_flag
	writeVUI(w, pp.BitDepthLumaMinus8 > 0)

	w.PutFlag(false) // sps_extension_present_flag

	w.Finish()
	return w.Bytes()
}

// writeVUI emits the video signal type / colour description VUI block,
// HDR-aware.
func writeVUI(w *bitio.Writer, hdr bool) {
	w.PutFlag(false) // aspect_ratio_info_present_flag
	w.PutFlag(false) // overscan_info_present_flag

	w.PutFlag(true)  // video_signal_type_present_flag
	w.PutBits(5, 3)  // video_format: unspecified
	w.PutFlag(false) // video_full_range_flag
	w.PutFlag(true)  // colour_description_present_flag
	if hdr {
		w.PutBits(9, 8)  // colour_primaries: BT.2020
		w.PutBits(16, 8) // transfer_characteristics: PQ (SMPTE ST 2084)
		w.PutBits(9, 8)  // matrix_coefficients: BT.2020 non-constant luminance
	} else {
		w.PutBits(1, 8) // colour_primaries: BT.709
		w.PutBits(1, 8) // transfer_characteristics: BT.709
		w.PutBits(1, 8) // matrix_coefficients: BT.709
	}

	w.PutFlag(false) // chroma_loc_info_present_flag
	w.PutFlag(false) // neutral_chroma_indication_flag
	w.PutFlag(false) // field_seq_flag
	w.PutFlag(false) // frame_field_info_present_flag
	w.PutFlag(false) // default_display_window_flag
	w.PutFlag(false) // vui_timing_info_present_flag
	w.PutFlag(false) // bitstream_restriction_flag
}
