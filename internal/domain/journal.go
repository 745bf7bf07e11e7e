package domain

import "time"

// JournalEntry is one row of the append-only booking audit trail.
type JournalEntry struct {
	ID               int64
	EventType        string
	BookingID        string
	BookingReference string
	TrainID          string
	Status           BookingStatus
	NumberOfSeats    int
	PassengerEmail   string
	OccurredAt       time.Time
	RecordedAt       time.Time
}
