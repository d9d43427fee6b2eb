package wageengine

import (
	"sort"
	"time"

	"github.com/tolga/wagecalc/internal/timeutil"
)

// SplitAtSabbathBoundaries splits a segment into pieces that are each
// entirely inside or entirely outside the Sabbath window (spec §4.3/§4.5,
// testable property 4). A segment with no Sabbath crossing is returned
// unchanged as a single-element slice.
func SplitAtSabbathBoundaries(seg Segment, snap ReferenceSnapshot) []Segment {
	boundaries := sabbathBoundariesWithin(seg, snap)
	if len(boundaries) == 0 {
		return []Segment{seg}
	}

	var out []Segment
	start := seg.StartMinute
	for _, b := range boundaries {
		if b <= start || b >= seg.EndMinute {
			continue
		}
		piece := seg
		piece.StartMinute = start
		piece.EndMinute = b
		out = append(out, piece)
		start = b
	}
	last := seg
	last.StartMinute = start
	last.EndMinute = seg.EndMinute
	out = append(out, last)
	return out
}

// sabbathBoundariesWithin returns, sorted, the absolute minute (anchored at
// seg.Date) of the Friday-entry / Saturday-exit boundary on each day from
// seg.Date through the day after the segment ends. It does not filter them
// to the segment; SplitAtSabbathBoundaries skips those not strictly inside.
func sabbathBoundariesWithin(seg Segment, snap ReferenceSnapshot) []int {
	var boundaries []int
	startDay := 0
	endDay := (seg.EndMinute-1)/timeutil.MinutesPerDay + 1
	for d := startDay; d <= endDay; d++ {
		date := seg.Date.AddDate(0, 0, d)
		switch date.Weekday() {
		case time.Friday:
			w := snap.SabbathWindowFor(date)
			boundaries = append(boundaries, d*timeutil.MinutesPerDay+w.EntryMinute)
		case time.Saturday:
			w := snap.SabbathWindowFor(date)
			boundaries = append(boundaries, d*timeutil.MinutesPerDay+w.ExitMinute)
		}
	}
	sort.Ints(boundaries)
	return boundaries
}

// isSabbathSlice reports whether seg (assumed already Sabbath-homogeneous,
// i.e. post-SplitAtSabbathBoundaries) falls inside the Sabbath window.
func isSabbathSlice(seg Segment, snap ReferenceSnapshot) bool {
	window := snap.SabbathWindowFor(seg.Date)
	return timeutil.IsSabbathMinute(seg.Date, seg.StartMinute, window)
}
