package model

import "github.com/google/uuid"

// EmployeeType distinguishes statutory employment categories that affect
// standby-rate and extras resolution.
type EmployeeType string

// Person carries the mutable, history-tracked attributes SegmentBuilder and
// MonthlyAggregator need resolved for a report's month: marital status
// (standby-rate lookup), employer, and employee type.
type Person struct {
	BaseModel
	IsMarried    bool         `gorm:"not null"`
	EmployerID   uuid.UUID    `gorm:"type:uuid"`
	EmployeeType EmployeeType `gorm:"not null"`
}

func (Person) TableName() string { return "people" }

// PersonStatusHistory mirrors Person's history-tracked fields.
type PersonStatusHistory struct {
	HistoryMeta
	IsMarried    bool         `gorm:"not null"`
	EmployerID   uuid.UUID    `gorm:"type:uuid"`
	EmployeeType EmployeeType `gorm:"not null"`
}

func (PersonStatusHistory) TableName() string { return "person_status_history" }
