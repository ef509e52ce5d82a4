package hevc

import "github.com/Sky1-Linux/libva-v4l2-stateful/internal/bitio"

const vpsCapacity = 32

// buildVPS synthesises an Annex-B VPS NAL (including the 2-byte NAL
// header, excluding the start code).
func buildVPS(pp PictureParams) []byte {
	profile := selectProfile(pp)
	lumaSamples := pp.Width * pp.Height
	levelIDC := lookupLevel(lumaSamples)
	tier := selectTier(levelIDC, lumaSamples)

	w := bitio.NewWriter(vpsCapacity)
	putNALHeader(w, NALTypeVPS)

	w.PutBits(0, 4) // vps_video_parameter_set_id
	w.PutFlag(true) // vps_base_layer_internal_flag
	w.PutFlag(true) // vps_base_layer_available_flag
	w.PutBits(0, 6) // vps_max_layers_minus1
	w.PutBits(0, 3) // vps_max_sub_layers_minus1
	w.PutFlag(true) // vps_temporal_id_nesting_flag
	w.PutBits(0xffff, 16) // vps_reserved_0xffff_16bits

	writeProfileTierLevel(w, profile, tier, levelIDC)

	w.PutFlag(true) // vps_sub_layer_ordering_info_present_flag
	w.PutUE(uint(pp.NumRefFrames)) // vps_max_dec_pic_buffering_minus1[0]
	w.PutUE(0)                      // vps_max_num_reorder_pics[0]
	w.PutUE(0)                      // vps_max_latency_increase_plus1[0]

	w.PutBits(0, 6) // vps_max_layer_id
	w.PutUE(0)      // vps_num_layer_sets_minus1
	w.PutFlag(false) // vps_timing_info_present_flag
	w.PutFlag(false) // vps_extension_flag

	w.Finish()
	return w.Bytes()
}

// putNALHeader emits the 2-byte HEVC NAL unit header: forbidden_zero_bit
// (0), nal_unit_type (6 bits), nuh_layer_id (0), nuh_temporal_id_plus1 (1).
func putNALHeader(w *bitio.Writer, nalUnitType int) {
	w.PutFlag(false) // forbidden_zero_bit
	w.PutBits(uint64(nalUnitType), 6)
	w.PutBits(0, 6) // nuh_layer_id
	w.PutBits(1, 3) // nuh_temporal_id_plus1
}
