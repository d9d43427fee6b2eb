package model

// ApartmentType distinguishes housing clusters that drive tagbur detection
// and standby-rate resolution.
type ApartmentType int

const (
	ApartmentTypeRegular     ApartmentType = 1
	ApartmentTypeTherapeutic ApartmentType = 2
)

// Apartment is a housing unit a report is logged against. Type is
// history-tracked via ApartmentTypeHistory.
type Apartment struct {
	BaseModel
	Type ApartmentType `gorm:"not null"`
}

func (Apartment) TableName() string { return "apartments" }

// ApartmentTypeHistory mirrors Apartment.Type for retroactive resolution.
type ApartmentTypeHistory struct {
	HistoryMeta
	Type ApartmentType `gorm:"not null"`
}

func (ApartmentTypeHistory) TableName() string { return "apartment_type_history" }
