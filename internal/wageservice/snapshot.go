package wageservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tolga/wagecalc/internal/model"
	"github.com/tolga/wagecalc/internal/wageengine"
)

// rangePaddingDays covers the trailing/leading reports a work-day boundary
// attribution (spec §4.1) or a carryover check (spec §4.4) might need.
const rangePaddingDays = 1

// buildSnapshot assembles one (person, month) wageengine.ReferenceSnapshot:
// every dependency the pure engine needs, resolved ahead of time so
// internal/wageengine never imports internal/repository (spec §9).
func (s *WageService) buildSnapshot(ctx context.Context, personID uuid.UUID, year, month int) (wageengine.ReferenceSnapshot, error) {
	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)
	from := monthStart.AddDate(0, 0, -rangePaddingDays)
	to := monthEnd.AddDate(0, 0, rangePaddingDays)

	rawReports, err := s.reports.GetByPersonAndRange(ctx, personID, from, to)
	if err != nil {
		return wageengine.ReferenceSnapshot{}, refErr(personID, year, month, err)
	}

	person, err := s.people.GetByID(ctx, personID)
	if err != nil {
		return wageengine.ReferenceSnapshot{}, refErr(personID, year, month, err)
	}
	personHistory, err := s.people.ListStatusHistory(ctx, personID)
	if err != nil {
		return wageengine.ReferenceSnapshot{}, refErr(personID, year, month, err)
	}
	isMarried, err := wageengine.ResolveHistorical(toIsMarriedRows(personHistory), personID, year, month, person.IsMarried)
	if err != nil {
		return wageengine.ReferenceSnapshot{}, historyErr(personID, year, month, err)
	}

	housingRates, err := s.housingRates.List(ctx)
	if err != nil {
		return wageengine.ReferenceSnapshot{}, refErr(personID, year, month, err)
	}

	apartmentCache := make(map[uuid.UUID]model.ApartmentType)
	shiftKindCache := make(map[model.ShiftKindID]*model.ShiftKind)
	getShiftKind := func(code model.ShiftKindID) (*model.ShiftKind, error) {
		if sk, ok := shiftKindCache[code]; ok {
			return sk, nil
		}
		sk, err := s.shiftKinds.GetByCode(ctx, code)
		if err != nil {
			return nil, err
		}
		shiftKindCache[code] = sk
		return sk, nil
	}

	reports := make([]wageengine.ReportInput, 0, len(rawReports))
	for _, r := range rawReports {
		apartmentType, err := s.resolveApartmentType(ctx, r.ApartmentID, year, month, apartmentCache)
		if err != nil {
			if errors.Is(err, wageengine.ErrHistoryAmbiguous) {
				return wageengine.ReferenceSnapshot{}, historyErr(personID, year, month, err)
			}
			return wageengine.ReferenceSnapshot{}, refErr(personID, year, month, err)
		}

		resolvedCluster := apartmentType
		escortFlatRate := decimal.Zero
		if rawKind, err := getShiftKind(r.ShiftTypeID); err == nil {
			resolvedCluster, escortFlatRate = resolveHousingOverride(housingRates, rawKind.ID, apartmentType)
		}

		effectiveKind := wageengine.ResolveEffectiveShiftKind(r.ShiftTypeID, apartmentType, resolvedCluster)

		var template wageengine.ShiftKindView
		if effectiveKind != model.ShiftKindNight {
			sk, err := getShiftKind(effectiveKind)
			if err != nil {
				return wageengine.ReferenceSnapshot{}, refErr(personID, year, month, err)
			}
			template = wageengine.ShiftKindView{ID: sk.Code, TemplateSegments: sk.TemplateSegments.Data()}
		}

		reports = append(reports, wageengine.ReportInput{
			ID:              r.ID,
			PersonID:        r.PersonID,
			ApartmentID:     r.ApartmentID,
			Date:            r.Date,
			StartMinute:     r.StartMinute,
			EndMinute:       r.EndMinute,
			ShiftKindID:     effectiveKind,
			IsVacation:      r.IsVacation,
			IsSick:          r.IsSick,
			Travel:          r.Travel,
			ApartmentType:   apartmentType,
			IsMarried:       isMarried,
			ShiftTemplate:   template,
			ResolvedCluster: resolvedCluster,
			EscortFlatRate:  escortFlatRate,
		})
	}

	sabbathRows, err := s.sabbathTimes.ListForRange(ctx, from, to)
	if err != nil {
		return wageengine.ReferenceSnapshot{}, refErr(personID, year, month, err)
	}
	sabbathWeeks := make([]wageengine.SabbathWeek, 0, len(sabbathRows))
	for _, w := range sabbathRows {
		sabbathWeeks = append(sabbathWeeks, wageengine.SabbathWeek{
			EntryDate: w.EntryDate, EntryMinute: w.EntryMinute,
			ExitDate: w.ExitDate, ExitMinute: w.ExitMinute,
		})
	}

	standbyRows, err := s.standbyRates.List(ctx)
	if err != nil {
		return wageengine.ReferenceSnapshot{}, refErr(personID, year, month, err)
	}
	standbyRates := make([]wageengine.StandbyRateView, 0, len(standbyRows))
	for _, r := range standbyRows {
		standbyRates = append(standbyRates, wageengine.StandbyRateView{
			SegmentID: r.SegmentID, ApartmentType: r.ApartmentType,
			MaritalStatus: r.MaritalStatus, Amount: r.Amount, Priority: r.Priority,
		})
	}

	minimumWageHourly := s.minimumWageFallback
	if mw, err := s.minimumWage.GetEffectiveFor(ctx, year, month); err == nil {
		minimumWageHourly = mw.HourlyRate
	}

	return wageengine.ReferenceSnapshot{
		PersonID:          personID,
		Year:              year,
		Month:             month,
		Reports:           reports,
		SabbathWeeks:      sabbathWeeks,
		MinimumWageHourly: minimumWageHourly,
		StandbyRates:      standbyRates,
		ExtrasPerReport:   make(map[uuid.UUID]decimal.Decimal),
	}, nil
}

func (s *WageService) resolveApartmentType(ctx context.Context, apartmentID uuid.UUID, year, month int, cache map[uuid.UUID]model.ApartmentType) (model.ApartmentType, error) {
	if t, ok := cache[apartmentID]; ok {
		return t, nil
	}
	apartment, err := s.apartments.GetByID(ctx, apartmentID)
	if err != nil {
		return 0, err
	}
	history, err := s.apartments.ListTypeHistory(ctx, apartmentID)
	if err != nil {
		return 0, err
	}
	resolved, err := wageengine.ResolveHistorical(toApartmentTypeRows(history), apartmentID, year, month, apartment.Type)
	if err != nil {
		return 0, err
	}
	cache[apartmentID] = resolved
	return resolved, nil
}

// resolveHousingOverride finds the ShiftHousingRate row for (shiftKindID,
// apartmentType), if any, returning its resolved cluster and flat rate.
// Absent a match, the apartment's own type is the cluster and the flat rate
// is zero (no escort override configured for this pairing).
func resolveHousingOverride(rows []model.ShiftHousingRate, shiftKindID uuid.UUID, apartmentType model.ApartmentType) (model.ApartmentType, decimal.Decimal) {
	for _, r := range rows {
		if r.ShiftKindID == shiftKindID && r.ApartmentType == apartmentType {
			return r.ResolvedCluster, r.FlatRate
		}
	}
	return apartmentType, decimal.Zero
}

func refErr(personID uuid.UUID, year, month int, cause error) error {
	return &wageengine.EngineError{Code: wageengine.ErrCodeReferenceDataMissing, PersonID: personID, Year: year, Month: month, Cause: cause}
}

func historyErr(personID uuid.UUID, year, month int, cause error) error {
	return &wageengine.EngineError{Code: wageengine.ErrCodeHistoryAmbiguity, PersonID: personID, Year: year, Month: month, Cause: cause}
}

func toIsMarriedRows(rows []model.PersonStatusHistory) []wageengine.HistoryRow[bool] {
	out := make([]wageengine.HistoryRow[bool], len(rows))
	for i, r := range rows {
		out[i] = wageengine.HistoryRow[bool]{EntityID: r.EntityID, Year: r.Year, Month: r.Month, Value: r.IsMarried}
	}
	return out
}

func toApartmentTypeRows(rows []model.ApartmentTypeHistory) []wageengine.HistoryRow[model.ApartmentType] {
	out := make([]wageengine.HistoryRow[model.ApartmentType], len(rows))
	for i, r := range rows {
		out[i] = wageengine.HistoryRow[model.ApartmentType]{EntityID: r.EntityID, Year: r.Year, Month: r.Month, Value: r.Type}
	}
	return out
}
