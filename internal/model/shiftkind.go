package model

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ShiftKindID is the well-known identifier space for shift kinds. The
// special ids below drive SegmentBuilder's tagged-variant dispatch.
type ShiftKindID int

const (
	ShiftKindFriday         ShiftKindID = 105
	ShiftKindShabbat        ShiftKindID = 106
	ShiftKindNight          ShiftKindID = 107
	ShiftKindTagburFriday   ShiftKindID = 108
	ShiftKindTagburShabbat  ShiftKindID = 109
	ShiftKindHospitalEscort ShiftKindID = 120
	ShiftKindMedicalEscort  ShiftKindID = 148
)

// SegmentType is the kind of a shift-template or derived segment.
type SegmentType string

const (
	SegmentTypeWork    SegmentType = "work"
	SegmentTypeStandby SegmentType = "standby"
)

// TemplateSegment is one ordered entry in a fixed-template shift kind.
type TemplateSegment struct {
	SegmentID   uuid.UUID   `json:"segment_id"`
	Type        SegmentType `json:"type"`
	StartMinute int         `json:"start_minute"`
	EndMinute   int         `json:"end_minute"`
	OrderIndex  int         `json:"order_index"`
}

// ShiftKind is a shift definition: an id plus, for fixed-template kinds, an
// ordered list of template segments. Night (107) carries no template — its
// segments are computed dynamically by SegmentBuilder.
type ShiftKind struct {
	BaseModel
	Code             ShiftKindID                              `gorm:"uniqueIndex;not null"`
	Name             string                                   `gorm:"not null"`
	TemplateSegments datatypes.JSONType[[]TemplateSegment]     `gorm:"type:jsonb"`
}

func (ShiftKind) TableName() string { return "shift_types" }
