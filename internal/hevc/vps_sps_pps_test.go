package hevc

import "testing"

func TestLookupLevelThresholds(t *testing.T) {
	t.Parallel()
	cases := []struct {
		lumaSamples int
		want        int
	}{
		{36864, 30},
		{36865, 60},
		{122880, 60},
		{245760, 63},
		{552960, 90},
		{983040, 93},
		{2228224, 120},
		{8912896, 150},
		{35651584, 180},
		{100000000, 180}, // beyond every threshold: clamp to the last level
	}
	for _, tc := range cases {
		if got := lookupLevel(tc.lumaSamples); got != tc.want {
			t.Errorf("lookupLevel(%d) = %d, want %d", tc.lumaSamples, got, tc.want)
		}
	}
}

func TestSelectTier(t *testing.T) {
	t.Parallel()
	if !selectTier(150, 3840*2160) {
		t.Fatal("expected High tier at level 150 and 4K luma samples")
	}
	if selectTier(120, 3840*2160) {
		t.Fatal("expected Main tier below level 150 regardless of resolution")
	}
	if selectTier(150, 1920*1080) {
		t.Fatal("expected Main tier below 4K luma samples regardless of level")
	}
}

func TestProfileSelection(t *testing.T) {
	t.Parallel()
	main := PictureParams{Width: 1920, Height: 1080}
	if got := selectProfile(main); got != ProfileMain {
		t.Fatalf("8-bit profile = %d, want Main", got)
	}
	main10 := PictureParams{Width: 3840, Height: 2160, BitDepthLumaMinus8: 2, BitDepthChromaMinus8: 2}
	if got := selectProfile(main10); got != ProfileMain10 {
		t.Fatalf("10-bit profile = %d, want Main-10", got)
	}
}

func TestBuildSPSConformanceWindow(t *testing.T) {
	t.Parallel()
	// 1920x1080 is not a multiple of the 64x64 CTB grid in height
	// (1080 -> aligned 1088), so the conformance window must be set.
	sps := buildSPS(PictureParams{Width: 1920, Height: 1080, ChromaFormatIDC: 1})
	if len(sps) == 0 {
		t.Fatal("buildSPS returned no bytes")
	}
	// 1920 is itself a multiple of 64, 1080 is not: confWindow must be set.
	if alignUp(1920, ctbSize) != 1920 {
		t.Fatalf("test assumption broken: 1920 not CTB-aligned")
	}
	if alignUp(1080, ctbSize) == 1080 {
		t.Fatalf("test assumption broken: 1080 CTB-aligned")
	}
}
