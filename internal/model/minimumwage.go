package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// MinimumWage is a shekels-per-hour rate effective from a date. Resolution
// picks the latest row with EffectiveFrom <= the target month's first day.
type MinimumWage struct {
	BaseModel
	EffectiveFrom time.Time       `gorm:"type:date;not null;uniqueIndex"`
	HourlyRate    decimal.Decimal `gorm:"type:numeric(10,2);not null"`
}

func (MinimumWage) TableName() string { return "minimum_wage_rates" }
