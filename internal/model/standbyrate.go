package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaritalStatus is the narrow key StandbyRate resolution switches on; it is
// derived from Person.IsMarried rather than stored directly.
type MaritalStatus string

const (
	MaritalStatusSingle  MaritalStatus = "single"
	MaritalStatusMarried MaritalStatus = "married"
)

// StandbyRatePriority distinguishes a rate specific to (segment, apartment
// type, marital status) from a generic fallback row.
const (
	StandbyRatePrioritySpecific = 10
	StandbyRatePriorityGeneric  = 0
)

// StandbyRate is a flat on-call rate keyed by (segment, apartment type,
// marital status), resolved with highest-priority-wins and history-tracked.
type StandbyRate struct {
	BaseModel
	SegmentID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ApartmentType ApartmentType   `gorm:"not null"`
	MaritalStatus MaritalStatus   `gorm:"not null"`
	Amount        decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Priority      int             `gorm:"not null"`
}

func (StandbyRate) TableName() string { return "standby_rates" }

// StandbyRateHistory mirrors StandbyRate.Amount for a given rate row.
type StandbyRateHistory struct {
	HistoryMeta
	Amount decimal.Decimal `gorm:"type:numeric(10,2);not null"`
}

func (StandbyRateHistory) TableName() string { return "standby_rate_history" }
