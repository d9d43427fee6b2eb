package model

import (
	"time"

	"github.com/google/uuid"
)

// HistoryMeta is embedded by every history-mirror table. A history row names
// the first (year, month) in which its predecessor value ceased to apply —
// the "valid-until" convention described in the attribute resolvers that
// consume these tables.
type HistoryMeta struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	EntityID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Year      int       `gorm:"not null"`
	Month     int       `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null;default:now()"`
	CreatedBy uuid.UUID `gorm:"type:uuid"`
}

// HistoryUniqueConstraintNote documents the UNIQUE(entity_id, year, month) constraint every
// history table carries; GORM migrations are out of scope (spec Non-goals)
// so this is recorded for the DDL owner, not enforced by this package.
const HistoryUniqueConstraintNote = "UNIQUE(entity_id, year, month)"
