package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// HousingCluster is the resolved override target of a ShiftHousingRate: the
// apartment-type cluster a shift's rate is actually billed against. A
// therapeutic apartment (type 2) whose override resolves to the regular
// cluster is the implicit-tagbur trigger (§4.3).
type HousingCluster = ApartmentType

// ShiftHousingRate overrides, per shift kind and per apartment type, which
// housing cluster a shift's rate resolution should use and the flat rate
// paid for that shift outside Sabbath (hospital/medical escort, §4.3).
// History-tracked.
type ShiftHousingRate struct {
	BaseModel
	ShiftKindID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ApartmentType   ApartmentType   `gorm:"not null"`
	ResolvedCluster HousingCluster  `gorm:"not null"`
	FlatRate        decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
}

func (ShiftHousingRate) TableName() string { return "shift_housing_rates" }

// ShiftHousingRateHistory mirrors ShiftHousingRate's resolved cluster and
// flat rate.
type ShiftHousingRateHistory struct {
	HistoryMeta
	ResolvedCluster HousingCluster  `gorm:"not null"`
	FlatRate        decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
}

func (ShiftHousingRateHistory) TableName() string { return "shift_housing_rate_history" }
