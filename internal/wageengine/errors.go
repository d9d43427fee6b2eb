package wageengine

import (
	"fmt"

	"github.com/google/uuid"
)

// Error and warning codes, classified the same way the teacher's
// calculation package keys its ErrCode*/WarnCode* constants: a small string
// space plus a classifier, rather than sentinel errors per case.
const (
	ErrCodeReferenceDataMissing = "REFERENCE_DATA_MISSING"
	ErrCodeMalformedReport      = "MALFORMED_REPORT"
	ErrCodeHistoryAmbiguity     = "HISTORY_LOOKUP_AMBIGUITY"
	WarnCodeRateUnavailable     = "RATE_UNAVAILABLE"
	WarnCodeMalformedReport     = "MALFORMED_REPORT_SKIPPED"
)

// IsError reports whether code aborts the whole month rather than degrading
// into a warning for a single report.
func IsError(code string) bool {
	switch code {
	case ErrCodeReferenceDataMissing, ErrCodeHistoryAmbiguity:
		return true
	}
	return false
}

// EngineError is a fatal, per-(person, month) failure: ReferenceDataMissing
// or HistoryLookupAmbiguity (spec §7 treats the latter as the former).
type EngineError struct {
	Code     string
	PersonID uuid.UUID
	Year     int
	Month    int
	Cause    error
}

func (e *EngineError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("wageengine: %s for person %s %04d-%02d: %v", e.Code, e.PersonID, e.Year, e.Month, e.Cause)
	}
	return fmt.Sprintf("wageengine: %s for person %s %04d-%02d", e.Code, e.PersonID, e.Year, e.Month)
}

func (e *EngineError) Unwrap() error { return e.Cause }

// Warning is a recoverable, per-report condition that does not abort the
// month; it is surfaced to the caller alongside the totals (spec §7).
type Warning struct {
	Code     string
	ReportID uuid.UUID
	Message  string
}
