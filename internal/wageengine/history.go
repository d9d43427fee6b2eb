package wageengine

import (
	"errors"

	"github.com/google/uuid"
)

// ErrHistoryAmbiguous indicates two history rows share (entity, year,
// month). The schema's UNIQUE(entity_id, year, month) constraint should
// make this impossible; if it is seen, spec §7 treats it as
// ReferenceDataMissing.
var ErrHistoryAmbiguous = errors.New("wageengine: ambiguous history rows for the same (entity, year, month)")

// HistoryRow is one row of a history-mirror table, decoupled from its GORM
// model so HistoryResolver stays free of persistence concerns and pure.
type HistoryRow[V any] struct {
	EntityID uuid.UUID
	Year     int
	Month    int
	Value    V
}

// ResolveHistorical implements the "valid-until" policy of spec §4.2: the
// earliest history row with (year, month) >= (targetYear, targetMonth) for
// this entity holds the value effective through the month before that row's
// (year, month); absent such a row, the live table value applies.
//
// Pure and memoizable: callers computing several (attribute, month) pairs
// against the same preloaded row set may cache by (entityID, targetYear,
// targetMonth).
func ResolveHistorical[V any](rows []HistoryRow[V], entityID uuid.UUID, targetYear, targetMonth int, liveValue V) (V, error) {
	var best *HistoryRow[V]
	ambiguous := false
	for i := range rows {
		r := &rows[i]
		if r.EntityID != entityID || comparePeriod(r.Year, r.Month, targetYear, targetMonth) < 0 {
			continue
		}
		if best == nil {
			best = r
			continue
		}
		switch comparePeriod(r.Year, r.Month, best.Year, best.Month) {
		case -1:
			best = r
			ambiguous = false
		case 0:
			ambiguous = true
		}
	}
	if best == nil {
		return liveValue, nil
	}
	if ambiguous {
		var zero V
		return zero, ErrHistoryAmbiguous
	}
	return best.Value, nil
}

// comparePeriod returns -1, 0, or 1 as (y1, m1) is before, equal to, or
// after (y2, m2).
func comparePeriod(y1, m1, y2, m2 int) int {
	if y1 != y2 {
		if y1 < y2 {
			return -1
		}
		return 1
	}
	if m1 != m2 {
		if m1 < m2 {
			return -1
		}
		return 1
	}
	return 0
}
