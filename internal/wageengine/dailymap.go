package wageengine

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// StandbyOutcome is one standby segment's cancellation verdict, carrying
// enough to resolve its rate and compute payment/deduction in the
// aggregator.
type StandbyOutcome struct {
	Segment   Segment
	Cancelled bool
}

// Chain is a maximal run of consecutive work segments on one work-day with
// every inter-segment gap under BreakThresholdMinutes (spec §4.4). Segments
// are ordered by start-minute and already standby-cancellation-adjusted.
type Chain struct {
	WorkDay          time.Time
	Segments         []Segment
	CarriedInMinutes int // minutes carried over from a prior work-day's chain ending exactly at 08:00
}

// TotalMinutes returns the sum of the chain's own segment minutes,
// excluding any carried-in minutes (those belong to the previous chain).
func (c Chain) TotalMinutes() int {
	total := 0
	for _, s := range c.Segments {
		total += s.Minutes()
	}
	return total
}

// DailyMapResult is DailyMap's output for one month: chains ready for
// ChainWageEngine, plus standby outcomes and the non-work segments that
// feed the vacation/sick buckets directly.
type DailyMapResult struct {
	Chains        []Chain
	Standbys      []StandbyOutcome
	VacationSegs  []Segment
	SickSegs      []Segment
	EscortSegs    []Segment
}

// BuildDailyMap groups one month's decomposed segments by work-day,
// resolves standby cancellation, and partitions the remaining work into
// chains with carryover across the 08:00 work-day boundary applied (spec
// §4.4).
func BuildDailyMap(allSegments map[uuid.UUID][]Segment, workDayOf map[uuid.UUID]time.Time) DailyMapResult {
	byDay := make(map[time.Time][]Segment)
	var result DailyMapResult

	for reportID, segs := range allSegments {
		day := workDayOf[reportID]
		for _, s := range segs {
			switch s.Kind {
			case SegmentVacation:
				result.VacationSegs = append(result.VacationSegs, s)
			case SegmentSick:
				result.SickSegs = append(result.SickSegs, s)
			default:
				if s.FlatRate != nil || s.MinimumWageOverride {
					result.EscortSegs = append(result.EscortSegs, s)
					continue
				}
				byDay[day] = append(byDay[day], s)
			}
		}
	}

	days := make([]time.Time, 0, len(byDay))
	for d := range byDay {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	var prevChains []Chain
	for _, day := range days {
		work, standbys := splitWorkAndStandby(byDay[day])
		work, kept, cancelled := resolveStandbyCancellation(work, standbys)

		for _, s := range cancelled {
			result.Standbys = append(result.Standbys, StandbyOutcome{Segment: s, Cancelled: true})
		}
		for _, s := range kept {
			result.Standbys = append(result.Standbys, StandbyOutcome{Segment: s, Cancelled: false})
		}

		chains := formChains(day, work)
		applyCarryover(prevChains, chains)
		result.Chains = append(result.Chains, chains...)
		prevChains = chains
	}

	return result
}

func splitWorkAndStandby(segs []Segment) (work, standby []Segment) {
	for _, s := range segs {
		if s.Kind == SegmentStandby {
			standby = append(standby, s)
		} else {
			work = append(work, s)
		}
	}
	return
}

// resolveStandbyCancellation implements spec §4.4. It returns the work
// segments with every kept standby's minutes subtracted, alongside the kept
// and cancelled standbys.
func resolveStandbyCancellation(work []Segment, standbys []Segment) (remaining, kept, cancelled []Segment) {
	sort.SliceStable(standbys, func(i, j int) bool {
		if standbys[i].OrderIndex != standbys[j].OrderIndex {
			return standbys[i].OrderIndex < standbys[j].OrderIndex
		}
		return standbys[i].StartMinute < standbys[j].StartMinute
	})

	for _, s := range standbys {
		overlap := unionOverlap(s, work)
		ratio := 0.0
		if s.Minutes() > 0 {
			ratio = float64(overlap) / float64(s.Minutes())
		}
		if ratio >= StandbyCancelOverlapThreshold {
			cancelled = append(cancelled, s)
			continue
		}
		kept = append(kept, s)
		work = subtractFromWork(work, s)
	}
	return work, kept, cancelled
}

// unionOverlap returns how many minutes of s are covered by the union of
// the work segments; minutes covered by more than one work segment (e.g.
// from two reports on the same work-day) are counted once.
func unionOverlap(s Segment, work []Segment) int {
	var spans [][2]int
	for _, w := range work {
		start, end := max(s.StartMinute, w.StartMinute), min(s.EndMinute, w.EndMinute)
		if end > start {
			spans = append(spans, [2]int{start, end})
		}
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i][0] < spans[j][0] })
	total, covered := 0, s.StartMinute
	for _, sp := range spans {
		start := max(sp[0], covered)
		if sp[1] > start {
			total += sp[1] - start
			covered = sp[1]
		}
	}
	return total
}

func overlapMinutes(aStart, aEnd, bStart, bEnd int) int {
	start := max(aStart, bStart)
	end := min(aEnd, bEnd)
	if end <= start {
		return 0
	}
	return end - start
}

// subtractFromWork removes the portion of each work segment that overlaps
// s, splitting a segment into up to two pieces when s falls in its middle.
func subtractFromWork(work []Segment, s Segment) []Segment {
	var out []Segment
	for _, w := range work {
		if overlapMinutes(s.StartMinute, s.EndMinute, w.StartMinute, w.EndMinute) == 0 {
			out = append(out, w)
			continue
		}
		if s.StartMinute > w.StartMinute {
			left := w
			left.EndMinute = s.StartMinute
			if left.EndMinute > left.StartMinute {
				out = append(out, left)
			}
		}
		if s.EndMinute < w.EndMinute {
			right := w
			right.StartMinute = s.EndMinute
			if right.EndMinute > right.StartMinute {
				out = append(out, right)
			}
		}
	}
	return out
}

// formChains sorts the day's remaining work segments and groups them into
// maximal runs with every inter-segment gap under BreakThresholdMinutes.
func formChains(day time.Time, work []Segment) []Chain {
	sorted := append([]Segment(nil), work...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].StartMinute < sorted[j].StartMinute })

	var chains []Chain
	var current []Segment
	for _, s := range sorted {
		if len(current) > 0 {
			gap := s.StartMinute - current[len(current)-1].EndMinute
			if gap >= BreakThresholdMinutes {
				chains = append(chains, Chain{WorkDay: day, Segments: current})
				current = nil
			}
		}
		current = append(current, s)
	}
	if len(current) > 0 {
		chains = append(chains, Chain{WorkDay: day, Segments: current})
	}
	return chains
}

// applyCarryover implements the 08:00 boundary smoothing of spec §4.4: if
// the previous work-day's last chain ends exactly at 08:00 of the next
// civil date and this work-day's first chain starts exactly at 08:00, the
// running minute-count carries forward.
func applyCarryover(prevChains []Chain, chains []Chain) {
	if len(prevChains) == 0 || len(chains) == 0 {
		return
	}
	last := prevChains[len(prevChains)-1]
	first := &chains[0]
	if len(last.Segments) == 0 || len(first.Segments) == 0 {
		return
	}
	lastSeg := last.Segments[len(last.Segments)-1]
	firstSeg := first.Segments[0]
	if !lastSeg.Date.AddDate(0, 0, 1).Equal(firstSeg.Date) {
		return
	}
	lastEnd := lastSeg.EndMinute
	firstStart := firstSeg.StartMinute
	const workDayBoundary = 480 + 1440 // 08:00 next civil date, anchored at the previous day
	if lastEnd == workDayBoundary && firstStart == 480 {
		first.CarriedInMinutes = last.CarriedInMinutes + last.TotalMinutes()
	}
}
