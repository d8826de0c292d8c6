package service

import (
	"strings"
	"time"
)

// Recurrence pattern labels accepted by the todo and reminder endpoints.
// Matching is case-insensitive. "custom" is stored as-is but never produces
// a computed occurrence.
const (
	RecurrenceDaily   = "daily"
	RecurrenceWeekly  = "weekly"
	RecurrenceMonthly = "monthly"
)

// NextOccurrence computes when a recurring item triggers again after base.
// Daily and weekly advance by calendar days, monthly by one calendar month
// with Go's date normalization (Jan 31 rolls into early March). Unrecognized
// patterns, including "custom", yield nil.
func NextOccurrence(pattern string, base time.Time) *time.Time {
	var next time.Time

	switch strings.ToLower(pattern) {
	case RecurrenceDaily:
		next = base.AddDate(0, 0, 1)
	case RecurrenceWeekly:
		next = base.AddDate(0, 0, 7)
	case RecurrenceMonthly:
		next = base.AddDate(0, 1, 0)
	default:
		return nil
	}

	return &next
}

// nextOccurrenceOf is the pointer-friendly form used by the resource
// services: a nil pattern means no recurrence at all.
func nextOccurrenceOf(pattern *string, base time.Time) *time.Time {
	if pattern == nil {
		return nil
	}
	return NextOccurrence(*pattern, base)
}
