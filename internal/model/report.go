package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Report is one logged interval: the raw, authoritative record the engine
// reads but never writes. StartMinute/EndMinute are minutes from 00:00 of
// Date; EndMinute may be <= StartMinute, meaning the interval crosses
// midnight (normalized by timeutil.NormalizeCrossMidnight before use).
type Report struct {
	BaseModel
	PersonID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	ApartmentID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Date        time.Time       `gorm:"type:date;not null;index"`
	StartMinute int             `gorm:"column:start;not null"`
	EndMinute   int             `gorm:"column:end;not null"`
	ShiftTypeID ShiftKindID     `gorm:"not null"`
	IsVacation  bool            `gorm:"not null;default:false"`
	IsSick      bool            `gorm:"not null;default:false"`
	Travel      decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
}

func (Report) TableName() string { return "time_reports" }
