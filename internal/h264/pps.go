package h264

import "github.com/Sky1-Linux/libva-v4l2-stateful/internal/bitio"

const ppsCapacity = 32

// buildPPS synthesises an Annex-B PPS NAL (including the 0x68 NAL
// header byte, excluding the start code) from pp.
func buildPPS(pp PictureParams) []byte {
	profileIDC := selectProfile(pp)

	w := bitio.NewWriter(ppsCapacity)
	w.PutBits(0x68, 8) // NAL header: nal_ref_idc=3, nal_unit_type=8

	w.PutUE(0) // pic_parameter_set_id
	w.PutUE(0) // seq_parameter_set_id
	w.PutFlag(pp.EntropyCodingMode)
	w.PutFlag(false) // pic_order_present_flag
	w.PutUE(uint(pp.NumSliceGroupsMinus1))
	w.PutUE(0) // num_ref_idx_l0_default_active_minus1
	w.PutUE(0) // num_ref_idx_l1_default_active_minus1
	w.PutFlag(pp.WeightedPredFlag)
	w.PutBits(uint64(pp.WeightedBipredIdc), 2)
	w.PutSE(pp.PicInitQPMinus26)
	w.PutSE(pp.PicInitQSMinus26)
	w.PutSE(pp.ChromaQPIndexOffset)
	w.PutFlag(pp.DeblockingFilterControlPresent)
	w.PutFlag(pp.ConstrainedIntraPredFlag)
	w.PutFlag(pp.RedundantPicCntPresent)

	if isHighProfile(profileIDC) && pp.Transform8x8Mode {
		w.PutFlag(true)  // transform_8x8_mode_flag
		w.PutFlag(false) // pic_scaling_matrix_present_flag
		w.PutSE(pp.SecondChromaQPIndexOffset)
	}

	w.Finish()
	return w.Bytes()
}
