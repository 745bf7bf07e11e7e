package kafka

import (
	"time"

	"github.com/Domenick1991/railbooking/internal/domain"
)

const (
	EventBookingCreated   = "booking_created"
	EventBookingUpdated   = "booking_updated"
	EventBookingCancelled = "booking_cancelled"
	EventBookingDeleted   = "booking_deleted"
)

type BookingEvent struct {
	Type             string    `json:"type"`
	BookingID        string    `json:"booking_id"`
	BookingReference string    `json:"booking_reference"`
	TrainID          string    `json:"train_id"`
	TrainNumber      string    `json:"train_number"`
	TrainName        string    `json:"train_name"`
	Origin           string    `json:"origin"`
	Destination      string    `json:"destination"`
	DepartureTime    string    `json:"departure_time"`
	TravelDate       string    `json:"travel_date"`
	NumberOfSeats    int       `json:"number_of_seats"`
	TotalPrice       float64   `json:"total_price"`
	PassengerName    string    `json:"passenger_name"`
	PassengerEmail   string    `json:"passenger_email"`
	Status           string    `json:"status"`
	OccurredAt       time.Time `json:"occurred_at"`
}

func NewBookingEvent(eventType string, b *domain.Booking, at time.Time) BookingEvent {
	return BookingEvent{
		Type:             eventType,
		BookingID:        b.ID,
		BookingReference: b.BookingReference,
		TrainID:          b.TrainID,
		TrainNumber:      b.TrainNumber,
		TrainName:        b.TrainName,
		Origin:           b.Origin,
		Destination:      b.Destination,
		DepartureTime:    b.DepartureTime,
		TravelDate:       b.TravelDate,
		NumberOfSeats:    b.NumberOfSeats,
		TotalPrice:       b.TotalPrice,
		PassengerName:    b.PassengerName,
		PassengerEmail:   b.PassengerEmail,
		Status:           string(b.Status),
		OccurredAt:       at.UTC(),
	}
}

// JournalEntry converts the event into an audit journal row.
func (e BookingEvent) JournalEntry() *domain.JournalEntry {
	return &domain.JournalEntry{
		EventType:        e.Type,
		BookingID:        e.BookingID,
		BookingReference: e.BookingReference,
		TrainID:          e.TrainID,
		Status:           domain.BookingStatus(e.Status),
		NumberOfSeats:    e.NumberOfSeats,
		PassengerEmail:   e.PassengerEmail,
		OccurredAt:       e.OccurredAt,
	}
}
