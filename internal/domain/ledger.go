package domain

import "time"

// CheckIn marks that a user checked in on a calendar day
type CheckIn struct {
	UserID string    `json:"user_id"`
	Date   time.Time `json:"date"`
}

// TaxRecord is an immutable ledger entry charged to a user
type TaxRecord struct {
	ID        int       `json:"id"`
	UserID    string    `json:"user_id"`
	Amount    int       `json:"amount"`
	TaxType   string    `json:"tax_type"`
	Timestamp time.Time `json:"timestamp"`
}

// CalendarDay returns the civil date of t in loc, normalised to midnight UTC.
// Two instants on the same local day always map to the same value.
func CalendarDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// PreviousDay returns the calendar day before day
func PreviousDay(day time.Time) time.Time {
	return day.AddDate(0, 0, -1)
}
