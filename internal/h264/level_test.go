package h264

import "testing"

func TestLookupLevelFirstMatchWins(t *testing.T) {
	t.Parallel()
	// 184320 appears twice (level 5.1 and 5.2); the first match (5.1,
	// packed 51) must win.
	got := lookupLevel(1, 1, 184319) // required == maxDPBMbs of the 5.1 row
	if got != 51 {
		t.Fatalf("lookupLevel: got %d, want 51 (first match, not the duplicate 5.2 row)", got)
	}
}

func TestLookupLevelBaseline(t *testing.T) {
	t.Parallel()
	// 640x368: 40x23 macroblocks, 1 ref frame -> required = 40*23*2 = 1840
	got := lookupLevel(40, 23, 1)
	if got != 12 {
		t.Fatalf("lookupLevel(40x23 mbs, 1 ref): got %d, want 12", got)
	}
}
