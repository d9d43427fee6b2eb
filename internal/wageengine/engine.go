package wageengine

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tolga/wagecalc/internal/timeutil"
)

// ComputeMonthlyTotals implements the engine's primary contract (spec §6):
// transform one person's decorated reports for one month into MonthlyTotals
// plus any recoverable warnings. Fatal reference-data problems return a
// non-nil *EngineError.
func ComputeMonthlyTotals(ctx context.Context, snap ReferenceSnapshot, personID uuid.UUID, year, month int) (MonthlyTotals, []Warning, error) {
	dm, warnings, err := buildDailyMap(ctx, snap, personID, year, month)
	if err != nil {
		return MonthlyTotals{}, nil, err
	}
	totals, aggWarnings := AggregateMonthly(dm, snap, snap.Reports)
	return totals, append(warnings, aggWarnings...), nil
}

// GetDailySegments implements the engine's UI-facing contract (spec §6):
// the same decomposition as ComputeMonthlyTotals, shaped per work-day for
// rendering and statutory export instead of summed into totals.
func GetDailySegments(ctx context.Context, snap ReferenceSnapshot, personID uuid.UUID, year, month int) ([]DayView, []Warning, error) {
	dm, warnings, err := buildDailyMap(ctx, snap, personID, year, month)
	if err != nil {
		return nil, nil, err
	}

	byDay := make(map[time.Time]*DayView)
	order := make([]time.Time, 0)
	dayView := func(d time.Time) *DayView {
		if v, ok := byDay[d]; ok {
			return v
		}
		v := &DayView{WorkDay: d}
		byDay[d] = v
		order = append(order, d)
		return v
	}

	for _, chain := range dm.Chains {
		v := dayView(chain.WorkDay)
		v.Chains = append(v.Chains, ChainView{Contributions: ComputeChainContributions(chain, snap)})
	}
	for _, so := range dm.Standbys {
		d := timeutil.WorkDayFor(so.Segment.Date, so.Segment.EndMinute)
		v := dayView(d)
		rate, _ := resolveStandbyRate(so.Segment, snap)
		sv := StandbyView{
			SegmentID:   so.Segment.SegmentID,
			StartMinute: so.Segment.StartMinute,
			EndMinute:   so.Segment.EndMinute,
			Cancelled:   so.Cancelled,
			Amount:      rate,
		}
		if so.Cancelled {
			if rate.GreaterThan(MaxCancelledStandbyDeduction) {
				sv.Deduction = MaxCancelledStandbyDeduction
				sv.Residual = rate.Sub(MaxCancelledStandbyDeduction)
			} else {
				sv.Deduction = rate
			}
		}
		v.Standbys = append(v.Standbys, sv)
	}

	views := make([]DayView, 0, len(order))
	for _, d := range order {
		views = append(views, *byDay[d])
	}
	return views, warnings, nil
}

// buildDailyMap is the shared pipeline: validate, decompose every report
// into segments, group by work-day, resolve standby cancellation and
// chains.
func buildDailyMap(ctx context.Context, snap ReferenceSnapshot, personID uuid.UUID, year, month int) (DailyMapResult, []Warning, error) {
	if err := ctx.Err(); err != nil {
		return DailyMapResult{}, nil, err
	}

	segmentsByReport := make(map[uuid.UUID][]Segment)
	workDayOf := make(map[uuid.UUID]time.Time)
	var warnings []Warning

	for _, r := range snap.Reports {
		if err := ValidateReport(r); err != nil {
			return DailyMapResult{}, nil, &EngineError{Code: ErrCodeReferenceDataMissing, PersonID: personID, Year: year, Month: month, Cause: err}
		}

		segs, warn := BuildSegments(r, snap)
		if warn != nil {
			warnings = append(warnings, *warn)
			continue
		}
		segmentsByReport[r.ID] = segs
		workDayOf[r.ID] = reportWorkDay(r)
	}

	dm := BuildDailyMap(segmentsByReport, workDayOf)
	return dm, warnings, nil
}

// reportWorkDay attributes a report to a work-day per spec §4.1: the
// report's normalized end-minute, relative to its own civil date, decides
// whether it belongs to that date or the date before.
func reportWorkDay(r ReportInput) time.Time {
	end := timeutil.NormalizeCrossMidnight(r.StartMinute, r.EndMinute)
	return timeutil.WorkDayFor(r.Date, end)
}
