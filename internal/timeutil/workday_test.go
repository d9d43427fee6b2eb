package timeutil_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tolga/wagecalc/internal/timeutil"
)

func TestWorkDayFor(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		date       time.Time
		endMinutes int
		expected   time.Time
	}{
		{"ends exactly at 08:00 belongs to previous day", day, 480, day.AddDate(0, 0, -1)},
		{"ends before 08:00 belongs to previous day", day, 120, day.AddDate(0, 0, -1)},
		{"ends after 08:00 belongs to this day", day, 481, day},
		{"ends late evening belongs to this day", day, 1380, day},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.expected.Equal(timeutil.WorkDayFor(tt.date, tt.endMinutes)))
		})
	}
}

func TestNormalizeCrossMidnight(t *testing.T) {
	tests := []struct {
		name     string
		start    int
		end      int
		expected int
	}{
		{"same day", 480, 1020, 1020},        // 08:00 - 17:00
		{"cross midnight", 1320, 120, 1560},  // 22:00 - 02:00 -> 22:00 - 26:00
		{"same start and end is a full 24h interval", 480, 480, 1920},
		{"end at midnight rolls into the next day", 480, 0, 1440},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, timeutil.NormalizeCrossMidnight(tt.start, tt.end))
		})
	}
}

func TestIsSabbathMinute(t *testing.T) {
	friday := time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC)
	saturday := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	window := timeutil.SabbathWindow{EntryMinute: 960, ExitMinute: 1320}

	tests := []struct {
		name        string
		date        time.Time
		minuteInDay int
		expected    bool
	}{
		{"friday before entry", friday, 959, false},
		{"friday at entry", friday, 960, true},
		{"friday late night", friday, 1439, true},
		{"saturday before exit", saturday, 1319, true},
		{"saturday at exit", saturday, 1320, false},
		{"sunday never sabbath", sunday, 0, false},
		{"friday night rolled into saturday via minuteInDay >= 1440", friday, 1440 + 100, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, timeutil.IsSabbathMinute(tt.date, tt.minuteInDay, window))
		})
	}
}
