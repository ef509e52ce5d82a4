package hevc

import "github.com/Sky1-Linux/libva-v4l2-stateful/internal/bitio"

// writeProfileTierLevel emits the profile_tier_level() syntax shared by
// VPS and SPS for the single-sub-layer case this driver always
// produces.
func writeProfileTierLevel(w *bitio.Writer, profile int, tier bool, levelIDC int) {
	w.PutBits(0, 2) // general_profile_space
	w.PutFlag(tier)
	w.PutBits(uint64(profile), 5)
	w.PutBits(uint64(profileCompatibilityFlags(profile)), 32)
	w.PutFlag(true)  // general_progressive_source_flag
	w.PutFlag(false) // general_interlaced_source_flag
	w.PutFlag(false) // general_non_packed_constraint_flag
	w.PutFlag(true)  // general_frame_only_constraint_flag
	w.PutBits(0, 44)  // reserved constraint-indicator bits
	w.PutBits(uint64(levelIDC), 8)
}
