package telemetry

import "testing"

func day(d, noApp, app int) DayStats {
	return DayStats{Day: d, PairsNoApp: noApp, PairsApp: app}
}

func findBookmarks(bms []Bookmark, typ BookmarkType) []Bookmark {
	var out []Bookmark
	for _, bm := range bms {
		if bm.Type == typ {
			out = append(out, bm)
		}
	}
	return out
}

func TestBookmarkDetectorPairCrash(t *testing.T) {
	bd := NewBookmarkDetector(10)
	for d := 0; d < 5; d++ {
		if got := bd.Check(day(d, 20, 20)); len(got) != 0 {
			t.Fatalf("day %d: unexpected bookmarks %+v", d, got)
		}
	}

	crashes := findBookmarks(bd.Check(day(5, 12, 20)), BookmarkPairCrash)
	if len(crashes) != 1 {
		t.Fatalf("expected one crash, got %+v", crashes)
	}
	if crashes[0].Population != LabelNoApp || crashes[0].Day != 5 {
		t.Errorf("crash = %+v, want no-app on day 5", crashes[0])
	}

	// The peak resets, so staying low does not report again
	if got := findBookmarks(bd.Check(day(6, 12, 20)), BookmarkPairCrash); len(got) != 0 {
		t.Errorf("crash reported twice: %+v", got)
	}
}

func TestBookmarkDetectorSmallDropIsNotACrash(t *testing.T) {
	tests := []struct {
		name       string
		peak, next int
	}{
		{"under thirty percent", 20, 15},
		{"large share of a tiny peak", 4, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bd := NewBookmarkDetector(10)
			bd.Check(day(0, tt.peak, tt.peak))
			if got := findBookmarks(bd.Check(day(1, tt.next, tt.peak)), BookmarkPairCrash); len(got) != 0 {
				t.Errorf("unexpected crash: %+v", got)
			}
		})
	}
}

func TestBookmarkDetectorCurveDivergence(t *testing.T) {
	bd := NewBookmarkDetector(10)
	var fired []Bookmark
	d := 0
	step := func(noApp, app int) {
		fired = append(fired, findBookmarks(bd.Check(day(d, noApp, app)), BookmarkCurveDivergence)...)
		d++
	}

	for range 3 {
		step(20, 20)
	}
	for range 4 {
		step(20, 15)
	}
	if len(fired) != 0 {
		t.Fatalf("fired before %d apart days: %+v", divergenceDays, fired)
	}

	step(20, 15)
	if len(fired) != 1 {
		t.Fatalf("expected divergence on the fifth apart day, got %+v", fired)
	}
	if fired[0].Day != 7 || fired[0].Population != labelBoth {
		t.Errorf("divergence = %+v", fired[0])
	}

	// Staying apart does not repeat; closing and reopening rearms
	for range 5 {
		step(20, 15)
	}
	step(20, 19)
	for range 5 {
		step(20, 14)
	}
	if len(fired) != 2 {
		t.Errorf("expected a second divergence after the curves closed, got %d", len(fired))
	}
}

func TestBookmarkDetectorStablePairs(t *testing.T) {
	bd := NewBookmarkDetector(10)
	var stable []Bookmark
	for d := 0; d < 40; d++ {
		stable = append(stable, findBookmarks(bd.Check(day(d, 16+d%2, 15)), BookmarkStablePairs)...)
	}
	if len(stable) != 1 {
		t.Fatalf("expected exactly one stable bookmark, got %+v", stable)
	}
}

func TestBookmarkDetectorStableNeedsPairs(t *testing.T) {
	bd := NewBookmarkDetector(10)
	for d := 0; d < 40; d++ {
		if got := findBookmarks(bd.Check(day(d, 2, 2)), BookmarkStablePairs); len(got) != 0 {
			t.Fatalf("day %d: stable reported with too few pairs", d)
		}
	}
}

func TestBookmarkDetectorRecentOrder(t *testing.T) {
	bd := NewBookmarkDetector(5)
	for d := 0; d < 8; d++ {
		bd.Check(day(d, d, d))
	}
	got := bd.recent(3)
	for i, want := range []int{5, 6, 7} {
		if got[i].Day != want {
			t.Fatalf("recent(3) days = %v, %v, %v; want 5, 6, 7", got[0].Day, got[1].Day, got[2].Day)
		}
	}
	if len(bd.recent(20)) != 5 {
		t.Error("recent should cap at the history size")
	}
}
