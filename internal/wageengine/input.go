package wageengine

import "github.com/go-playground/validator/v10"

var reportValidator = validator.New()

// reportConstraints mirrors the subset of ReportInput that must be present
// before a report reaches the pure engine — the "validate at the boundary"
// split spec §9 calls for (cyclic-coupling / ambient-state re-architecture
// applies the same way to input validation: check shape here, not inside
// SegmentBuilder).
type reportConstraints struct {
	PersonID    [16]byte `validate:"required"`
	ApartmentID [16]byte `validate:"required"`
}

// ValidateReport checks that a report carries the identifiers the engine
// needs. Duration and template-bounds problems are caught by BuildSegments
// itself (MalformedReport, spec §7); this only catches missing references
// that would otherwise surface as a confusing nil-pointer deeper in the
// pipeline.
func ValidateReport(r ReportInput) error {
	return reportValidator.Struct(reportConstraints{
		PersonID:    r.PersonID,
		ApartmentID: r.ApartmentID,
	})
}
