package wageengine

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tolga/wagecalc/internal/model"
	"github.com/tolga/wagecalc/internal/timeutil"
)

// Tier is one of the six wage-percentage buckets a chain minute can fall
// into. 150_shabbat is further decomposed into 150_shabbat_100/50 for
// pension reporting (spec §4.5), kept in MonthlyTotals rather than here.
type Tier string

const (
	Tier100         Tier = "100"
	Tier125         Tier = "125"
	Tier150Overtime Tier = "150_overtime"
	Tier150Shabbat  Tier = "150_shabbat"
	Tier175         Tier = "175"
	Tier200         Tier = "200"
)

// IsSabbath reports whether the tier is one of the Sabbath-slice tiers.
func (t Tier) IsSabbath() bool {
	switch t {
	case Tier150Shabbat, Tier175, Tier200:
		return true
	}
	return false
}

// SegmentKind is the kind of a SegmentBuilder output segment.
type SegmentKind string

const (
	SegmentWork     SegmentKind = "work"
	SegmentStandby  SegmentKind = "standby"
	SegmentVacation SegmentKind = "vacation"
	SegmentSick     SegmentKind = "sick"
)

// Segment is one ordered piece of a decomposed report. StartMinute/EndMinute
// are minutes from 00:00 of Date and may exceed timeutil.MinutesPerDay,
// meaning they fall on the civil day after Date.
type Segment struct {
	Kind        SegmentKind
	SegmentID   uuid.UUID
	StartMinute int
	EndMinute   int
	OrderIndex  int
	ReportID    uuid.UUID
	PersonID    uuid.UUID
	ApartmentID uuid.UUID
	Date        time.Time

	// FlatRate is set for hospital/medical-escort work outside Sabbath:
	// the segment is paid this rate instead of tiered wage.
	FlatRate *decimal.Decimal
	// MinimumWageOverride marks hospital/medical-escort work that falls
	// inside a Sabbath slice: paid minimum wage regardless of tier.
	MinimumWageOverride bool

	// ApartmentType and IsMarried are copied from the owning report's
	// resolved-for-month values, carried on the segment so standby-rate
	// resolution does not need to look the report back up.
	ApartmentType model.ApartmentType
	IsMarried     bool
}

// Minutes returns the segment's length.
func (s Segment) Minutes() int { return s.EndMinute - s.StartMinute }

// ShiftKindView is the resolved shift-kind template handed to SegmentBuilder
// — resolving it ahead of time breaks the cyclic coupling spec §9 flags
// between segment logic and shift-template lookup.
type ShiftKindView struct {
	ID               model.ShiftKindID
	TemplateSegments []model.TemplateSegment
}

// ReportInput is one report decorated with everything SegmentBuilder needs
// resolved for its month: effective apartment type, effective marital
// status, and the shift-kind template. HistoryResolver output is folded in
// before the engine runs (spec §9: no ambient state, no lookups inside
// SegmentBuilder).
type ReportInput struct {
	ID          uuid.UUID
	PersonID    uuid.UUID
	ApartmentID uuid.UUID
	Date        time.Time
	StartMinute int
	EndMinute   int
	ShiftKindID model.ShiftKindID
	IsVacation  bool
	IsSick      bool
	Travel      decimal.Decimal

	ApartmentType   model.ApartmentType
	IsMarried       bool
	ShiftTemplate   ShiftKindView
	ResolvedCluster model.ApartmentType // implicit-tagbur input: the housing-rate override's resolved cluster
	EscortFlatRate  decimal.Decimal     // hospital/medical-escort flat rate outside Sabbath, resolved from ShiftHousingRate
}

// StandbyRateView is a resolved standby-rate row, decoupled from its GORM
// model for the same reason ShiftKindView is.
type StandbyRateView struct {
	SegmentID     uuid.UUID
	ApartmentType model.ApartmentType
	MaritalStatus model.MaritalStatus
	Amount        decimal.Decimal
	Priority      int
}

// SabbathWeek is one calendar week's entry/exit pair, as stored in
// shabbat_times.
type SabbathWeek struct {
	EntryDate   time.Time
	EntryMinute int
	ExitDate    time.Time
	ExitMinute  int
}

// ReferenceSnapshot bundles everything the pure engine needs for one
// (person, month) invocation — spec §9's explicit reshaping of process-wide
// caches into a threaded argument. Only internal/wageservice constructs one.
type ReferenceSnapshot struct {
	PersonID uuid.UUID
	Year     int
	Month    int

	// Reports covers the target month plus the trailing/leading days
	// needed for work-day boundary attribution (spec §4.1), already
	// decorated by HistoryResolver.
	Reports []ReportInput

	SabbathWeeks      []SabbathWeek
	MinimumWageHourly decimal.Decimal
	StandbyRates      []StandbyRateView

	// ExtrasPerReport maps a report ID to a flat amount added to Extras
	// (spec §4.6 "Extras"); reports with no entry add nothing.
	ExtrasPerReport map[uuid.UUID]decimal.Decimal
}

// SabbathWindowFor resolves the Sabbath entry/exit minute pair from the
// first SabbathWeeks row whose entry or exit date lies within one day of
// date, falling back to the spec defaults when no row does.
func (s ReferenceSnapshot) SabbathWindowFor(date time.Time) timeutil.SabbathWindow {
	for _, w := range s.SabbathWeeks {
		if sameWeek(w.EntryDate, date) || sameWeek(w.ExitDate, date) {
			return timeutil.SabbathWindow{EntryMinute: w.EntryMinute, ExitMinute: w.ExitMinute}
		}
	}
	return timeutil.SabbathWindow{
		EntryMinute: timeutil.DefaultSabbathEntryMinute,
		ExitMinute:  timeutil.DefaultSabbathExitMinute,
	}
}

// sameWeek reports whether a and b fall within 1 day of each other, enough
// to associate a Friday-entry/Saturday-exit pair with either endpoint date.
func sameWeek(a, b time.Time) bool {
	diff := a.Sub(b)
	if diff < 0 {
		diff = -diff
	}
	return diff <= 24*time.Hour
}

// ChainContribution is a flat (tier, minutes) pair emitted by the
// ChainWageEngine for one chain; the aggregator sums these by tier.
type ChainContribution struct {
	Tier    Tier
	Minutes int
}

// ChainView is one chain's contributions, for UI segment display.
type ChainView struct {
	Contributions []ChainContribution
}

// StandbyView is one standby segment, kept or cancelled, with its resolved
// rate; for a cancelled standby, Deduction and Residual split that rate.
type StandbyView struct {
	SegmentID   uuid.UUID
	StartMinute int
	EndMinute   int
	Amount      decimal.Decimal
	Cancelled   bool
	Deduction   decimal.Decimal
	Residual    decimal.Decimal
}

// DayView is the per-day segment decomposition returned by
// GetDailySegments, for UI rendering and statutory export.
type DayView struct {
	WorkDay  time.Time
	Chains   []ChainView
	Standbys []StandbyView
}

// MonthlyTotals is the fixed-field monthly result record (spec §9: "express
// MonthlyTotals as a fixed-field record; UI-facing serialization happens at
// the boundary" — not a dict-shaped map).
type MonthlyTotals struct {
	Calc100 int
	Calc125 int
	Calc150 int
	Calc175 int
	Calc200 int

	Calc150Overtime   int
	Calc150Shabbat    int
	Calc150Shabbat100 int
	Calc150Shabbat50  int

	StandbyMinutes  int
	StandbyPayment  decimal.Decimal
	VacationMinutes int
	VacationPayment decimal.Decimal
	SickMinutes     int
	SickPayment     decimal.Decimal
	Travel          decimal.Decimal
	Extras          decimal.Decimal
}
