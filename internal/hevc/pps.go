package hevc

import "github.com/Sky1-Linux/libva-v4l2-stateful/internal/bitio"

const ppsCapacity = 24

// buildPPS synthesises an Annex-B PPS NAL.
func buildPPS(pp PictureParams) []byte {
	w := bitio.NewWriter(ppsCapacity)
	putNALHeader(w, NALTypePPS)

	w.PutUE(0) // pps_pic_parameter_set_id
	w.PutUE(0) // pps_seq_parameter_set_id
	w.PutFlag(false) // dependent_slice_segments_enabled_flag
	w.PutFlag(false) // output_flag_present_flag
	w.PutBits(0, 3)  // num_extra_slice_header_bits
	w.PutFlag(false) // sign_data_hiding_enabled_flag
	w.PutFlag(false) // cabac_init_present_flag
	w.PutUE(0) // num_ref_idx_l0_default_active_minus1
	w.PutUE(0) // num_ref_idx_l1_default_active_minus1
	w.PutSE(pp.PicInitQPMinus26)
	w.PutFlag(pp.ConstrainedIntraPredFlag)
	w.PutFlag(false) // transform_skip_enabled_flag
	w.PutFlag(false) // cu_qp_delta_enabled_flag
	w.PutSE(0) // pps_cb_qp_offset
	w.PutSE(0) // pps_cr_qp_offset
	w.PutFlag(false) // pps_slice_chroma_qp_offsets_present_flag
	w.PutFlag(pp.WeightedPredFlag)
	w.PutFlag(pp.WeightedBipredFlag)
	w.PutFlag(false) // transquant_bypass_enabled_flag
	w.PutFlag(false) // tiles_enabled_flag
	w.PutFlag(false) // entropy_coding_sync_enabled_flag
	w.PutFlag(true)  // pps_loop_filter_across_slices_enabled_flag

	deblockingPresent := pp.DeblockingFilterOverride || pp.DeblockingFilterDisabled
	w.PutFlag(deblockingPresent)
	if deblockingPresent {
		w.PutFlag(pp.DeblockingFilterOverride)
		w.PutFlag(pp.DeblockingFilterDisabled)
		if !pp.DeblockingFilterDisabled {
			w.PutSE(pp.BetaOffsetDiv2)
			w.PutSE(pp.TcOffsetDiv2)
		}
	}

	w.PutFlag(false) // pps_scaling_list_data_present_flag
	w.PutFlag(false) // lists_modification_present_flag
	w.PutUE(0)       // log2_parallel_merge_level_minus2
	w.PutFlag(false) // slice_segment_header_extension_present_flag
	w.PutFlag(false) // pps_extension_present_flag

	w.Finish()
	return w.Bytes()
}
