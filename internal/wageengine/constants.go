package wageengine

import "github.com/shopspring/decimal"

// Constants named exactly as spec §6 requires. MinutesPerDay and
// WorkDayStartMinutes live in internal/timeutil since they are properties
// of the time model shared by any future caller, not wage-tier specific.
const (
	MinutesPerHour                = 60
	RegularHoursLimit             = 480
	Overtime125Limit              = 600
	BreakThresholdMinutes         = 60
	StandbyCancelOverlapThreshold = 0.70
	ShabbatEnterDefault           = 960
	ShabbatExitDefault            = 1320
)

// DefaultStandbyRate and MaxCancelledStandbyDeduction are decimal-valued
// monetary constants (shekels), matched against shopspring/decimal rather
// than float64 throughout the aggregator.
var (
	DefaultStandbyRate           = decimal.NewFromFloat(70.0)
	MaxCancelledStandbyDeduction = decimal.NewFromFloat(70.0)
)
