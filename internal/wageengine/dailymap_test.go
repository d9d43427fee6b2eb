package wageengine_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tolga/wagecalc/internal/wageengine"
)

func workSegment(reportID uuid.UUID, date time.Time, start, end int) wageengine.Segment {
	return wageengine.Segment{Kind: wageengine.SegmentWork, ReportID: reportID, Date: date, StartMinute: start, EndMinute: end}
}

func standbySegment(reportID uuid.UUID, date time.Time, start, end int) wageengine.Segment {
	return wageengine.Segment{Kind: wageengine.SegmentStandby, ReportID: reportID, Date: date, StartMinute: start, EndMinute: end}
}

func TestBuildDailyMap_ChainsBreakOnLargeGap(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	r1, r2 := uuid.New(), uuid.New()

	segs := map[uuid.UUID][]wageengine.Segment{
		r1: {workSegment(r1, day, 480, 600)},
		r2: {workSegment(r2, day, 700, 900)}, // 100-minute gap, over BreakThresholdMinutes
	}
	workDayOf := map[uuid.UUID]time.Time{r1: day, r2: day}

	result := wageengine.BuildDailyMap(segs, workDayOf)
	require.Len(t, result.Chains, 2)
	assert.Equal(t, 120, result.Chains[0].TotalMinutes())
	assert.Equal(t, 200, result.Chains[1].TotalMinutes())
}

func TestBuildDailyMap_ChainsMergeOnSmallGap(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	r1, r2 := uuid.New(), uuid.New()

	segs := map[uuid.UUID][]wageengine.Segment{
		r1: {workSegment(r1, day, 480, 600)},
		r2: {workSegment(r2, day, 630, 900)}, // 30-minute gap, under threshold
	}
	workDayOf := map[uuid.UUID]time.Time{r1: day, r2: day}

	result := wageengine.BuildDailyMap(segs, workDayOf)
	require.Len(t, result.Chains, 1)
	assert.Len(t, result.Chains[0].Segments, 2)
}

func TestBuildDailyMap_StandbyCancelledAboveThreshold(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	r1 := uuid.New()

	segs := map[uuid.UUID][]wageengine.Segment{
		r1: {
			workSegment(r1, day, 480, 960),     // 08:00-16:00
			standbySegment(r1, day, 960, 1020), // 16:00-17:00, fully inside a later work block below
			workSegment(r1, day, 960, 1020),
		},
	}
	workDayOf := map[uuid.UUID]time.Time{r1: day}

	result := wageengine.BuildDailyMap(segs, workDayOf)
	require.Len(t, result.Standbys, 1)
	assert.True(t, result.Standbys[0].Cancelled)
}

func TestBuildDailyMap_StandbyKeptBelowThresholdSubtractsFromWork(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	r1 := uuid.New()

	segs := map[uuid.UUID][]wageengine.Segment{
		r1: {
			workSegment(r1, day, 480, 1200),
			standbySegment(r1, day, 1150, 1250), // only 50 of its own 100 minutes overlap work: ratio 0.5
		},
	}
	workDayOf := map[uuid.UUID]time.Time{r1: day}

	result := wageengine.BuildDailyMap(segs, workDayOf)
	require.Len(t, result.Standbys, 1)
	assert.False(t, result.Standbys[0].Cancelled)

	require.Len(t, result.Chains, 1)
	total := result.Chains[0].TotalMinutes()
	assert.Equal(t, (1200-480)-50, total)
}

func TestBuildDailyMap_Carryover(t *testing.T) {
	day1 := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)
	r1, r2 := uuid.New(), uuid.New()

	segs := map[uuid.UUID][]wageengine.Segment{
		r1: {workSegment(r1, day1, 1200, 1920)}, // ends exactly at 08:00 next day (480+1440)
		r2: {workSegment(r2, day2, 480, 600)},   // starts exactly at 08:00
	}
	workDayOf := map[uuid.UUID]time.Time{r1: day1, r2: day2}

	result := wageengine.BuildDailyMap(segs, workDayOf)
	require.Len(t, result.Chains, 2)
	assert.Equal(t, 0, result.Chains[0].CarriedInMinutes)
	assert.Equal(t, result.Chains[0].TotalMinutes(), result.Chains[1].CarriedInMinutes)
}
