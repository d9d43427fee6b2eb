package wageengine_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tolga/wagecalc/internal/model"
	"github.com/tolga/wagecalc/internal/wageengine"
)

func TestAggregateMonthly_ShabbatPensionSplit(t *testing.T) {
	friday := time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC)
	chain := wageengine.Chain{
		WorkDay: friday,
		Segments: []wageengine.Segment{
			{Kind: wageengine.SegmentWork, Date: friday, StartMinute: 960, EndMinute: 1410}, // 450 minutes, entirely Sabbath
		},
	}
	dm := wageengine.DailyMapResult{Chains: []wageengine.Chain{chain}}
	totals, warnings := wageengine.AggregateMonthly(dm, wageengine.ReferenceSnapshot{}, nil)

	assert.Empty(t, warnings)
	assert.Equal(t, 450, totals.Calc150Shabbat)
	assert.Equal(t, 300, totals.Calc150Shabbat100)
	assert.Equal(t, 150, totals.Calc150Shabbat50)
	assert.Equal(t, totals.Calc150Shabbat, totals.Calc150)
}

func TestAggregateMonthly_StandbyRateFallsBackWithWarning(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	seg := wageengine.Segment{SegmentID: uuid.New(), Kind: wageengine.SegmentStandby, Date: day, StartMinute: 480, EndMinute: 540}
	dm := wageengine.DailyMapResult{Standbys: []wageengine.StandbyOutcome{{Segment: seg, Cancelled: false}}}

	totals, warnings := wageengine.AggregateMonthly(dm, wageengine.ReferenceSnapshot{}, nil)

	require.Len(t, warnings, 1)
	assert.Equal(t, wageengine.WarnCodeRateUnavailable, warnings[0].Code)
	assert.True(t, totals.StandbyPayment.Equal(wageengine.DefaultStandbyRate))
	assert.Equal(t, 60, totals.StandbyMinutes)
}

func TestAggregateMonthly_StandbyRateHighestPriorityWins(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	segmentID := uuid.New()
	seg := wageengine.Segment{
		SegmentID: segmentID, Kind: wageengine.SegmentStandby, Date: day,
		StartMinute: 480, EndMinute: 540, ApartmentType: model.ApartmentTypeRegular,
	}
	dm := wageengine.DailyMapResult{Standbys: []wageengine.StandbyOutcome{{Segment: seg, Cancelled: false}}}
	snap := wageengine.ReferenceSnapshot{
		StandbyRates: []wageengine.StandbyRateView{
			{SegmentID: segmentID, ApartmentType: model.ApartmentTypeRegular, MaritalStatus: model.MaritalStatusSingle, Amount: decimal.NewFromInt(40), Priority: model.StandbyRatePriorityGeneric},
			{SegmentID: segmentID, ApartmentType: model.ApartmentTypeRegular, MaritalStatus: model.MaritalStatusSingle, Amount: decimal.NewFromInt(90), Priority: model.StandbyRatePrioritySpecific},
		},
	}

	totals, warnings := wageengine.AggregateMonthly(dm, snap, nil)
	assert.Empty(t, warnings)
	assert.True(t, totals.StandbyPayment.Equal(decimal.NewFromInt(90)))
}

func TestAggregateMonthly_CancelledStandbyDeductionCapped(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	segmentID := uuid.New()
	seg := wageengine.Segment{SegmentID: segmentID, Kind: wageengine.SegmentStandby, Date: day, StartMinute: 480, EndMinute: 540}
	dm := wageengine.DailyMapResult{Standbys: []wageengine.StandbyOutcome{{Segment: seg, Cancelled: true}}}
	snap := wageengine.ReferenceSnapshot{
		StandbyRates: []wageengine.StandbyRateView{
			{SegmentID: segmentID, MaritalStatus: model.MaritalStatusSingle, Amount: decimal.NewFromInt(200), Priority: model.StandbyRatePriorityGeneric},
		},
	}

	totals, _ := wageengine.AggregateMonthly(dm, snap, nil)
	expectedResidual := decimal.NewFromInt(200).Sub(wageengine.MaxCancelledStandbyDeduction)
	assert.True(t, totals.StandbyPayment.Equal(expectedResidual))
}

func TestAggregateMonthly_SickSequencePercentageRampsUp(t *testing.T) {
	day1 := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	days := []time.Time{day1, day1.AddDate(0, 0, 1), day1.AddDate(0, 0, 2), day1.AddDate(0, 0, 3)}

	var sickSegs []wageengine.Segment
	for _, d := range days {
		sickSegs = append(sickSegs, wageengine.Segment{Kind: wageengine.SegmentSick, Date: d, StartMinute: 0, EndMinute: 60})
	}
	dm := wageengine.DailyMapResult{SickSegs: sickSegs}
	minimumWage := decimal.NewFromInt(30)

	totals, _ := wageengine.AggregateMonthly(dm, wageengine.ReferenceSnapshot{MinimumWageHourly: minimumWage}, nil)

	// day1: 0%, day2-3: 50% each, day4: 100% -> (0 + 0.5 + 0.5 + 1) * 30 = 60
	assert.True(t, totals.SickPayment.Equal(decimal.NewFromInt(60)), "got %s", totals.SickPayment)
	assert.Equal(t, 240, totals.SickMinutes)
}

func TestAggregateMonthly_SickSequenceResetsOnGap(t *testing.T) {
	day1 := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)
	day5 := day1.AddDate(0, 0, 5) // gap breaks the sequence

	sickSegs := []wageengine.Segment{
		{Kind: wageengine.SegmentSick, Date: day1, StartMinute: 0, EndMinute: 60},
		{Kind: wageengine.SegmentSick, Date: day2, StartMinute: 0, EndMinute: 60},
		{Kind: wageengine.SegmentSick, Date: day5, StartMinute: 0, EndMinute: 60},
	}
	dm := wageengine.DailyMapResult{SickSegs: sickSegs}
	minimumWage := decimal.NewFromInt(30)

	totals, _ := wageengine.AggregateMonthly(dm, wageengine.ReferenceSnapshot{MinimumWageHourly: minimumWage}, nil)

	// day1: 0%, day2: 50%, day5 (new sequence day1): 0% -> (0 + 0.5 + 0) * 30 = 15
	assert.True(t, totals.SickPayment.Equal(decimal.NewFromInt(15)), "got %s", totals.SickPayment)
}

func TestAggregateMonthly_VacationPaysMinimumWage(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	dm := wageengine.DailyMapResult{
		VacationSegs: []wageengine.Segment{{Kind: wageengine.SegmentVacation, Date: day, StartMinute: 0, EndMinute: 480}},
	}
	totals, _ := wageengine.AggregateMonthly(dm, wageengine.ReferenceSnapshot{MinimumWageHourly: decimal.NewFromInt(30)}, nil)

	assert.Equal(t, 480, totals.VacationMinutes)
	assert.True(t, totals.VacationPayment.Equal(decimal.NewFromInt(240)))
}

func TestAggregateMonthly_EscortExtrasUseFlatRateOutsideSabbathAndMinimumWageInside(t *testing.T) {
	friday := time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC)
	flatRate := decimal.NewFromInt(50)
	dm := wageengine.DailyMapResult{
		EscortSegs: []wageengine.Segment{
			{Kind: wageengine.SegmentWork, Date: friday, StartMinute: 900, EndMinute: 960, FlatRate: &flatRate},
			{Kind: wageengine.SegmentWork, Date: friday, StartMinute: 960, EndMinute: 1020, MinimumWageOverride: true},
		},
	}
	totals, _ := wageengine.AggregateMonthly(dm, wageengine.ReferenceSnapshot{MinimumWageHourly: decimal.NewFromInt(30)}, nil)

	expected := decimal.NewFromFloat(1.0).Mul(flatRate).Add(decimal.NewFromFloat(1.0).Mul(decimal.NewFromInt(30)))
	assert.True(t, totals.Extras.Equal(expected), "got %s want %s", totals.Extras, expected)
}

func TestAggregateMonthly_TravelAndExtrasSummedPerReport(t *testing.T) {
	reportID := uuid.New()
	reports := []wageengine.ReportInput{{ID: reportID, Travel: decimal.NewFromInt(15)}}
	snap := wageengine.ReferenceSnapshot{ExtrasPerReport: map[uuid.UUID]decimal.Decimal{reportID: decimal.NewFromInt(25)}}

	totals, _ := wageengine.AggregateMonthly(wageengine.DailyMapResult{}, snap, reports)
	assert.True(t, totals.Travel.Equal(decimal.NewFromInt(15)))
	assert.True(t, totals.Extras.Equal(decimal.NewFromInt(25)))
}
