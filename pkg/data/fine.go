package data

import "time"

// FinePolicy describes how overdue fines accrue.
type FinePolicy struct {
	PerDay           int
	BorrowPeriodDays int
}

const secondsPerDay = 24 * 60 * 60

var DefaultFinePolicy = FinePolicy{PerDay: 2, BorrowPeriodDays: 15}

// ParseDate parses a borrow date. Calendar dates are taken as UTC midnight;
// full RFC 3339 timestamps are accepted too.
func ParseDate(s string) (time.Time, bool) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// FormatDate renders t as a UTC calendar date.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// OverdueDays returns the whole days past the borrow period, never negative.
func (p FinePolicy) OverdueDays(borrowDate string, now time.Time) int {
	if borrowDate == "" {
		return 0
	}
	borrowed, ok := ParseDate(borrowDate)
	if !ok {
		return 0
	}
	// whole seconds, since a Duration overflows past about 292 years
	days := int((now.Unix() - borrowed.Unix()) / secondsPerDay)
	overdue := days - p.BorrowPeriodDays
	if overdue < 0 {
		return 0
	}
	return overdue
}

// Calculate returns the fine owed for a book borrowed on borrowDate.
func (p FinePolicy) Calculate(borrowDate string, now time.Time) int {
	return p.OverdueDays(borrowDate, now) * p.PerDay
}
