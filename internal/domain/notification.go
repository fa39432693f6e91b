package domain

import "time"

// Notification is a user-facing event feed entry (applied coupon, placed
// order, invalid code, ...). Severity mirrors how the UI renders it.
type Notification struct {
	ID       string    `json:"id"`
	Type     string    `json:"type"`
	Message  string    `json:"message"`
	Severity string    `json:"severity"`
	Read     bool      `json:"read"`
	Time     time.Time `json:"time"`
}
