package h264

// levelEntry is one row of the H.264 Annex A level limits table, reduced
// to the one field this driver's level derivation needs: the maximum
// decoded-picture-buffer size in macroblocks.
type levelEntry struct {
	levelIDC  int // packed level_idc (level * 10, e.g. 41 = level 4.1)
	maxDPBMbs int
}

// levelTable is preserved in the same order and with the same duplicate
// row as the original source: level 5.1 and 5.2 both list maxDPBMbs =
// 184320, making the 5.2 row unreachable since lookupLevel returns the
// first match. Spec.md §9 flags this as ambiguous original behaviour to
// preserve rather than silently fix.
var levelTable = []levelEntry{
	{10, 396},
	{11, 900},
	{12, 2376},
	{13, 2376},
	{20, 2376},
	{21, 4752},
	{22, 8100},
	{30, 8100},
	{31, 18000},
	{32, 20480},
	{40, 32768},
	{41, 32768},
	{42, 34816},
	{50, 110400},
	{51, 184320},
	{52, 184320}, // unreachable: see the levelTable doc above
}

// lookupLevel derives the packed level_idc from the macroblock count
// times (num_ref_frames + 1), tabulated against the level table.
// Returns the first table row whose maxDPBMbs covers the requirement.
func lookupLevel(widthMbs, heightMbs, numRefFrames int) int {
	required := widthMbs * heightMbs * (numRefFrames + 1)
	for _, e := range levelTable {
		if required <= e.maxDPBMbs {
			return e.levelIDC
		}
	}
	return levelTable[len(levelTable)-1].levelIDC
}
