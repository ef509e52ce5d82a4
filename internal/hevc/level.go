package hevc

// lumaSampleThresholds holds the maximum luma sample count (width *
// height) admitted at each level; levelIDCs holds the matching packed
// level_idc (level * 30) for levels 1, 2, 2.1, 3, 3.1, 4, 5 and 6.
var lumaSampleThresholds = []int{
	36864, 122880, 245760, 552960, 983040, 2228224, 8912896, 35651584,
}

var levelIDCs = []int{30, 60, 63, 90, 93, 120, 150, 180}

// lookupLevel returns the packed HEVC level_idc for a picture with the
// given luma sample count, clamping to the highest tabulated level if
// the count exceeds every threshold.
func lookupLevel(lumaSamples int) int {
	for i, t := range lumaSampleThresholds {
		if lumaSamples <= t {
			return levelIDCs[i]
		}
	}
	return levelIDCs[len(levelIDCs)-1]
}

// highTier4K is the luma sample count of a 3840x2160 frame: the
// threshold used for tier selection.
const highTier4K = 3840 * 2160

// selectTier reports whether High tier applies: it requires level_idc
// >= 150 and a luma sample count at least that of 4K.
func selectTier(levelIDC, lumaSamples int) bool {
	return levelIDC >= 150 && lumaSamples >= highTier4K
}
