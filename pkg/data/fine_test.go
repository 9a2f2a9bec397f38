package data

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFinePolicyCalculate(t *testing.T) {
	now := time.Date(2024, 3, 31, 15, 30, 0, 0, time.UTC)
	p := DefaultFinePolicy

	tests := []struct {
		name       string
		borrowDate string
		want       int
	}{
		{"no borrow date", "", 0},
		{"garbage date", "yesterday", 0},
		{"borrowed today", "2024-03-31", 0},
		{"within period", "2024-03-20", 0},
		{"exactly at period end", "2024-03-16", 0},
		{"one day overdue", "2024-03-15", 2},
		{"ten days overdue", "2024-03-06", 20},
		{"future date", "2024-04-10", 0},
		{"timestamp", "2024-03-01T00:00:00Z", 30},
		{"centuries ago", "1700-01-01", 236826},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Calculate(tt.borrowDate, now))
		})
	}
}

func TestFinePolicyCustomRates(t *testing.T) {
	now := time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC)
	p := FinePolicy{PerDay: 5, BorrowPeriodDays: 7}

	assert.Equal(t, 3, p.OverdueDays("2024-01-01", now))
	assert.Equal(t, 15, p.Calculate("2024-01-01", now))
}

func TestFormatDateUsesUTC(t *testing.T) {
	loc := time.FixedZone("east", 10*60*60)
	// 2024-05-02 05:00 in UTC+10 is still May 1st in UTC
	ts := time.Date(2024, 5, 2, 5, 0, 0, 0, loc)
	assert.Equal(t, "2024-05-01", FormatDate(ts))
}
