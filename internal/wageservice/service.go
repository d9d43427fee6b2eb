// Package wageservice orchestrates internal/wageengine against
// internal/repository: it resolves history-tracked attributes, assembles a
// wageengine.ReferenceSnapshot, runs the engine against it and returns the
// engine's results unchanged. No calculation logic lives here — that is
// entirely internal/wageengine's job (spec §9: "no database or HTTP
// dependencies" inside the engine).
package wageservice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/tolga/wagecalc/internal/model"
	"github.com/tolga/wagecalc/internal/wageengine"
)

// reportRepository is the subset of repository.ReportRepository this
// service needs.
type reportRepository interface {
	GetByPersonAndRange(ctx context.Context, personID uuid.UUID, from, to time.Time) ([]model.Report, error)
}

// shiftKindRepository resolves a shift kind's fixed template.
type shiftKindRepository interface {
	GetByCode(ctx context.Context, code model.ShiftKindID) (*model.ShiftKind, error)
}

// apartmentRepository resolves an apartment's live type plus its history.
type apartmentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Apartment, error)
	ListTypeHistory(ctx context.Context, apartmentID uuid.UUID) ([]model.ApartmentTypeHistory, error)
}

// personRepository resolves a person's live status plus its history.
type personRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Person, error)
	ListStatusHistory(ctx context.Context, personID uuid.UUID) ([]model.PersonStatusHistory, error)
}

// standbyRateRepository resolves configured on-call rates.
type standbyRateRepository interface {
	List(ctx context.Context) ([]model.StandbyRate, error)
}

// housingRateRepository resolves shift/apartment housing-cluster overrides,
// the implicit-tagbur and escort-flat-rate input.
type housingRateRepository interface {
	List(ctx context.Context) ([]model.ShiftHousingRate, error)
}

// sabbathTimesRepository resolves per-week Sabbath entry/exit overrides.
type sabbathTimesRepository interface {
	ListForRange(ctx context.Context, from, to time.Time) ([]model.SabbathTimes, error)
}

// minimumWageRepository resolves the effective minimum wage for a month.
type minimumWageRepository interface {
	GetEffectiveFor(ctx context.Context, year, month int) (*model.MinimumWage, error)
}

// WageService is the read-side orchestration entrypoint: it builds a
// wageengine.ReferenceSnapshot for one (person, month) and runs the engine
// against it.
type WageService struct {
	reports      reportRepository
	shiftKinds   shiftKindRepository
	apartments   apartmentRepository
	people       personRepository
	standbyRates standbyRateRepository
	housingRates housingRateRepository
	sabbathTimes sabbathTimesRepository
	minimumWage  minimumWageRepository

	minimumWageFallback decimal.Decimal
}

// New creates a WageService. minimumWageFallback is used when no
// minimum_wage_rates row is effective for the target month (spec §7,
// RateUnavailable-equivalent degrade for the base rate itself).
func New(
	reports reportRepository,
	shiftKinds shiftKindRepository,
	apartments apartmentRepository,
	people personRepository,
	standbyRates standbyRateRepository,
	housingRates housingRateRepository,
	sabbathTimes sabbathTimesRepository,
	minimumWage minimumWageRepository,
	minimumWageFallback decimal.Decimal,
) *WageService {
	return &WageService{
		reports:             reports,
		shiftKinds:          shiftKinds,
		apartments:          apartments,
		people:              people,
		standbyRates:        standbyRates,
		housingRates:        housingRates,
		sabbathTimes:        sabbathTimes,
		minimumWage:         minimumWage,
		minimumWageFallback: minimumWageFallback,
	}
}

// ComputeMonthlyTotals builds the month's reference snapshot and runs
// wageengine.ComputeMonthlyTotals against it, logging any warnings in the
// teacher's structured-event style.
func (s *WageService) ComputeMonthlyTotals(ctx context.Context, personID uuid.UUID, year, month int) (wageengine.MonthlyTotals, error) {
	snap, err := s.buildSnapshot(ctx, personID, year, month)
	if err != nil {
		return wageengine.MonthlyTotals{}, err
	}

	totals, warnings, err := wageengine.ComputeMonthlyTotals(ctx, snap, personID, year, month)
	if err != nil {
		return wageengine.MonthlyTotals{}, err
	}
	s.logWarnings(personID, year, month, warnings)
	return totals, nil
}

// GetDailySegments builds the month's reference snapshot and runs
// wageengine.GetDailySegments against it.
func (s *WageService) GetDailySegments(ctx context.Context, personID uuid.UUID, year, month int) ([]wageengine.DayView, error) {
	snap, err := s.buildSnapshot(ctx, personID, year, month)
	if err != nil {
		return nil, err
	}

	views, warnings, err := wageengine.GetDailySegments(ctx, snap, personID, year, month)
	if err != nil {
		return nil, err
	}
	s.logWarnings(personID, year, month, warnings)
	return views, nil
}

// RecalculateRange recomputes monthly totals for every (year, month) that
// [from, to] touches, one call per distinct period covered.
// Mirrors the teacher's DailyCalcService.RecalculateRange loop-and-collect
// shape, adapted from a per-day to a per-month cadence since this engine's
// unit of output is the monthly total, not a daily value.
func (s *WageService) RecalculateRange(ctx context.Context, personID uuid.UUID, from, to time.Time) ([]wageengine.MonthlyTotals, error) {
	var results []wageengine.MonthlyTotals
	seen := make(map[[2]int]bool)

	for d := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, from.Location()); !d.After(to); d = d.AddDate(0, 1, 0) {
		period := [2]int{d.Year(), int(d.Month())}
		if seen[period] {
			continue
		}
		seen[period] = true

		totals, err := s.ComputeMonthlyTotals(ctx, personID, period[0], period[1])
		if err != nil {
			return results, fmt.Errorf("recalculate %04d-%02d: %w", period[0], period[1], err)
		}
		results = append(results, totals)
	}
	return results, nil
}

func (s *WageService) logWarnings(personID uuid.UUID, year, month int, warnings []wageengine.Warning) {
	for _, w := range warnings {
		log.Warn().
			Str("code", w.Code).
			Str("person_id", personID.String()).
			Int("year", year).
			Int("month", month).
			Str("report_id", w.ReportID.String()).
			Msg(w.Message)
	}
}
