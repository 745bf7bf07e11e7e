package email

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Domenick1991/railbooking/internal/kafka"
)

// Sender renders passenger notifications. Delivery is a write to out; there is
// no mail transport.
type Sender struct {
	out io.Writer
}

func NewSender() *Sender {
	return &Sender{out: os.Stdout}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	if event.PassengerEmail == "" {
		return nil
	}
	subject, ok := subjectFor(event)
	if !ok {
		return nil
	}
	_, err := fmt.Fprintf(s.out, "send email to %s: %s (%s, train %s %s -> %s, %d seat(s) on %s)\n",
		event.PassengerEmail, subject, event.BookingReference, event.TrainNumber,
		event.Origin, event.Destination, event.NumberOfSeats, event.TravelDate)
	return err
}

func subjectFor(event kafka.BookingEvent) (string, bool) {
	switch event.Type {
	case kafka.EventBookingCreated:
		return "Booking confirmed", true
	case kafka.EventBookingUpdated:
		return "Booking updated", true
	case kafka.EventBookingCancelled:
		return "Booking cancelled", true
	}
	return "", false
}
