package model

import "time"

// SabbathTimes is the entry (Friday) / exit (Saturday) minute-of-day pair on
// file for one calendar week. Rows are sparse: a week with no row falls back
// to the engine's default window (spec §4.1).
type SabbathTimes struct {
	BaseModel
	EntryDate   time.Time `gorm:"type:date;not null;uniqueIndex:idx_sabbath_entry_date"`
	EntryMinute int       `gorm:"not null"`
	ExitDate    time.Time `gorm:"type:date;not null"`
	ExitMinute  int       `gorm:"not null"`
}

func (SabbathTimes) TableName() string { return "shabbat_times" }
