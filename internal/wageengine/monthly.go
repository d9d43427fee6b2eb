package wageengine

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tolga/wagecalc/internal/model"
)

// AggregateMonthly rolls one month's DailyMap result into MonthlyTotals
// (spec §4.6). Standby, vacation, sick, travel and extras are all summed
// here; minute buckets come from ComputeChainContributions per chain.
func AggregateMonthly(dm DailyMapResult, snap ReferenceSnapshot, reports []ReportInput) (MonthlyTotals, []Warning) {
	var totals MonthlyTotals
	var warnings []Warning

	for _, chain := range dm.Chains {
		for _, c := range ComputeChainContributions(chain, snap) {
			addTierMinutes(&totals, c.Tier, c.Minutes)
		}
	}
	totals.Calc150 = totals.Calc150Overtime + totals.Calc150Shabbat
	totals.Calc150Shabbat100, totals.Calc150Shabbat50 = splitShabbatPension(totals.Calc150Shabbat)

	for _, so := range dm.Standbys {
		rate, warn := resolveStandbyRate(so.Segment, snap)
		if warn != nil {
			warnings = append(warnings, *warn)
		}
		if so.Cancelled {
			if rate.GreaterThan(MaxCancelledStandbyDeduction) {
				totals.StandbyPayment = totals.StandbyPayment.Add(rate.Sub(MaxCancelledStandbyDeduction))
			}
			continue
		}
		totals.StandbyMinutes += so.Segment.Minutes()
		totals.StandbyPayment = totals.StandbyPayment.Add(rate)
	}

	for _, seg := range dm.EscortSegs {
		rate := snap.MinimumWageHourly
		if !seg.MinimumWageOverride && seg.FlatRate != nil {
			rate = *seg.FlatRate
		}
		totals.Extras = totals.Extras.Add(minutesToHours(seg.Minutes()).Mul(rate))
	}

	totals.VacationMinutes = sumMinutes(dm.VacationSegs)
	totals.VacationPayment = minutesToHours(totals.VacationMinutes).Mul(snap.MinimumWageHourly)

	totals.SickMinutes = sumMinutes(dm.SickSegs)
	totals.SickPayment = computeSickPayment(dm.SickSegs, snap.MinimumWageHourly)

	for _, r := range reports {
		totals.Travel = totals.Travel.Add(r.Travel)
		if amt, ok := snap.ExtrasPerReport[r.ID]; ok {
			totals.Extras = totals.Extras.Add(amt)
		}
	}

	return totals, warnings
}

func addTierMinutes(totals *MonthlyTotals, tier Tier, minutes int) {
	switch tier {
	case Tier100:
		totals.Calc100 += minutes
	case Tier125:
		totals.Calc125 += minutes
	case Tier150Overtime:
		totals.Calc150Overtime += minutes
	case Tier150Shabbat:
		totals.Calc150Shabbat += minutes
	case Tier175:
		totals.Calc175 += minutes
	case Tier200:
		totals.Calc200 += minutes
	}
}

// splitShabbatPension implements the "base 100 + supplement 50" statutory
// split (spec §4.5, open question 1): calc150_shabbat_100 =
// calc150_shabbat / 1.5, integer-rounded half-to-even; the remainder is
// calc150_shabbat_50.
func splitShabbatPension(calc150Shabbat int) (part100, part50 int) {
	if calc150Shabbat == 0 {
		return 0, 0
	}
	ratio := decimal.NewFromInt(int64(calc150Shabbat)).Div(decimal.NewFromFloat(1.5))
	part100 = int(ratio.RoundBank(0).IntPart())
	part50 = calc150Shabbat - part100
	return part100, part50
}

// resolveStandbyRate picks the highest-priority StandbyRate row matching
// (segment, apartment type, marital status), falling back to
// DefaultStandbyRate with a RateUnavailable warning when none matches
// (spec §4.6, §7).
func resolveStandbyRate(seg Segment, snap ReferenceSnapshot) (decimal.Decimal, *Warning) {
	maritalStatus := model.MaritalStatusSingle
	if seg.IsMarried {
		maritalStatus = model.MaritalStatusMarried
	}

	var best *StandbyRateView
	for i := range snap.StandbyRates {
		r := &snap.StandbyRates[i]
		if r.SegmentID != seg.SegmentID || r.ApartmentType != seg.ApartmentType || r.MaritalStatus != maritalStatus {
			continue
		}
		if best == nil || r.Priority > best.Priority {
			best = r
		}
	}
	if best == nil {
		return DefaultStandbyRate, &Warning{
			Code:     WarnCodeRateUnavailable,
			ReportID: seg.ReportID,
			Message:  "no standby rate matched; used default rate",
		}
	}
	return best.Amount, nil
}

// computeSickPayment applies the per-sequence sickness percentage (spec
// §4.6): day 1 of a sick sequence pays 0%, days 2-3 pay 50%, day 4 onward
// pays 100%; the sequence resets after a non-sick calendar-day gap.
func computeSickPayment(sickSegs []Segment, minimumWageHourly decimal.Decimal) decimal.Decimal {
	minutesByDate := make(map[time.Time]int)
	for _, s := range sickSegs {
		d := civilDate(s.Date)
		minutesByDate[d] += s.Minutes()
	}
	if len(minutesByDate) == 0 {
		return decimal.Zero
	}

	dates := make([]time.Time, 0, len(minutesByDate))
	for d := range minutesByDate {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	total := decimal.Zero
	sequenceDay := 0
	var prev time.Time
	for i, d := range dates {
		if i > 0 && d.Sub(prev) == 24*time.Hour {
			sequenceDay++
		} else {
			sequenceDay = 1
		}
		pct := sickSequencePercentage(sequenceDay)
		total = total.Add(minutesToHours(minutesByDate[d]).Mul(minimumWageHourly).Mul(pct))
		prev = d
	}
	return total
}

func sickSequencePercentage(sequenceDay int) decimal.Decimal {
	switch {
	case sequenceDay <= 1:
		return decimal.Zero
	case sequenceDay <= 3:
		return decimal.NewFromFloat(0.5)
	default:
		return decimal.NewFromInt(1)
	}
}

func civilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sumMinutes(segs []Segment) int {
	total := 0
	for _, s := range segs {
		total += s.Minutes()
	}
	return total
}

func minutesToHours(minutes int) decimal.Decimal {
	return decimal.NewFromInt(int64(minutes)).Div(decimal.NewFromInt(MinutesPerHour))
}
