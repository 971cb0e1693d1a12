package telemetry

import (
	"fmt"
	"log/slog"

	"gonum.org/v1/gonum/stat"
)

// Population labels used in output.
const (
	LabelNoApp = "noapp"
	LabelApp   = "app"
	labelBoth  = "both"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkPairCrash       BookmarkType = "pair_crash"
	BookmarkCurveDivergence BookmarkType = "curve_divergence"
	BookmarkStablePairs     BookmarkType = "stable_pairs"
)

const (
	crashDropFraction = 0.30 // Drop from recent peak that counts as a crash
	crashMinPairs     = 3    // and at least this many pairs lost
	divergenceMinGap  = 3    // Pair gap between the curves
	divergenceDays    = 5    // held for this many consecutive days
	stableWindow      = 4    // Days the variance check looks back over
	stableMinPairs    = 5    // Both series need at least this many pairs
	stableDays        = 10   // Consecutive low-variance days before triggering
)

// Bookmark represents an automatically triggered bookmark.
type Bookmark struct {
	Type        BookmarkType `csv:"type"`
	Day         int          `csv:"day"`
	Population  string       `csv:"population"`
	Description string       `csv:"description"`
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark() {
	slog.Info("bookmark",
		"type", string(b.Type),
		"day", b.Day,
		"population", b.Population,
		"description", b.Description,
	)
}

// BookmarkDetector watches the daily pair counts for notable moments.
type BookmarkDetector struct {
	// Rolling history (circular buffer)
	history     []DayStats
	historySize int
	historyIdx  int
	historyFull bool

	// State tracking
	peakNoApp  int  // recent peak pair count without the app
	peakApp    int  // recent peak pair count with the app
	diverged   bool // curves currently apart; rearms once they close
	stableRuns int  // consecutive days with stable pair counts
}

// NewBookmarkDetector creates a detector with the given history size.
func NewBookmarkDetector(historySize int) *BookmarkDetector {
	if historySize < divergenceDays {
		historySize = divergenceDays
	}
	return &BookmarkDetector{
		history:     make([]DayStats, historySize),
		historySize: historySize,
	}
}

// Check analyzes the latest day and returns any triggered bookmarks.
func (bd *BookmarkDetector) Check(stats DayStats) []Bookmark {
	var bookmarks []Bookmark

	if bd.historyFull || bd.historyIdx > 0 {
		if b := checkCrash(&bd.peakNoApp, stats.PairsNoApp, stats.Day, LabelNoApp); b != nil {
			bookmarks = append(bookmarks, *b)
		}
		if b := checkCrash(&bd.peakApp, stats.PairsApp, stats.Day, LabelApp); b != nil {
			bookmarks = append(bookmarks, *b)
		}
		if b := bd.checkDivergence(stats); b != nil {
			bookmarks = append(bookmarks, *b)
		}
		if b := bd.checkStable(stats); b != nil {
			bookmarks = append(bookmarks, *b)
		}
	}

	bd.addToHistory(stats)

	bd.peakNoApp = max(bd.peakNoApp, stats.PairsNoApp)
	bd.peakApp = max(bd.peakApp, stats.PairsApp)

	return bookmarks
}

func (bd *BookmarkDetector) addToHistory(stats DayStats) {
	bd.history[bd.historyIdx] = stats
	bd.historyIdx = (bd.historyIdx + 1) % bd.historySize
	if bd.historyIdx == 0 {
		bd.historyFull = true
	}
}

// recent returns up to n of the latest recorded days, oldest first.
func (bd *BookmarkDetector) recent(n int) []DayStats {
	size := bd.historyIdx
	if bd.historyFull {
		size = bd.historySize
	}
	n = min(n, size)

	out := make([]DayStats, n)
	for i := range n {
		idx := (bd.historyIdx - n + i + bd.historySize) % bd.historySize
		out[i] = bd.history[idx]
	}
	return out
}

// checkCrash fires when pairs fall well below the recent peak, then
// resets the peak so one crash is reported once.
func checkCrash(peak *int, pairs, day int, label string) *Bookmark {
	if *peak == 0 {
		return nil
	}

	drop := 1.0 - float64(pairs)/float64(*peak)
	if drop > crashDropFraction && pairs <= *peak-crashMinPairs {
		old := *peak
		*peak = pairs
		return &Bookmark{
			Type:        BookmarkPairCrash,
			Day:         day,
			Population:  label,
			Description: fmt.Sprintf("Pairs fell %.0f%% from peak %d to %d", drop*100, old, pairs),
		}
	}
	return nil
}

func gap(s DayStats) int {
	d := s.PairsNoApp - s.PairsApp
	if d < 0 {
		return -d
	}
	return d
}

// checkDivergence fires once when the two curves stay apart for
// divergenceDays in a row.
func (bd *BookmarkDetector) checkDivergence(stats DayStats) *Bookmark {
	if gap(stats) < divergenceMinGap {
		bd.diverged = false
		return nil
	}
	if bd.diverged {
		return nil
	}

	history := bd.recent(divergenceDays - 1)
	if len(history) < divergenceDays-1 {
		return nil
	}
	for _, h := range history {
		if gap(h) < divergenceMinGap {
			return nil
		}
	}

	bd.diverged = true
	direction := "below"
	if stats.PairsApp > stats.PairsNoApp {
		direction = "above"
	}
	return &Bookmark{
		Type:       BookmarkCurveDivergence,
		Day:        stats.Day,
		Population: labelBoth,
		Description: fmt.Sprintf("App curve %d pairs %s no-app curve for %d days",
			gap(stats), direction, divergenceDays),
	}
}

// checkStable fires once both pair counts have shown low variance for
// stableDays consecutive days.
func (bd *BookmarkDetector) checkStable(stats DayStats) *Bookmark {
	if stats.PairsNoApp < stableMinPairs || stats.PairsApp < stableMinPairs {
		bd.stableRuns = 0
		return nil
	}

	history := bd.recent(stableWindow)
	if len(history) < stableWindow {
		return nil
	}

	noApp := make([]float64, len(history))
	app := make([]float64, len(history))
	for i, h := range history {
		noApp[i], app[i] = float64(h.PairsNoApp), float64(h.PairsApp)
	}

	// CV^2 < 0.04 means CV < 0.2
	if squaredCV(noApp) < 0.04 && squaredCV(app) < 0.04 {
		bd.stableRuns++
	} else {
		bd.stableRuns = 0
	}

	if bd.stableRuns == stableDays {
		return &Bookmark{
			Type:        BookmarkStablePairs,
			Day:         stats.Day,
			Population:  labelBoth,
			Description: fmt.Sprintf("Stable pair counts: %d without app, %d with app", stats.PairsNoApp, stats.PairsApp),
		}
	}
	return nil
}

// squaredCV returns the squared coefficient of variation, 0 for a zero mean.
func squaredCV(values []float64) float64 {
	mean, variance := stat.PopMeanVariance(values, nil)
	if mean == 0 {
		return 0
	}
	return variance / (mean * mean)
}
