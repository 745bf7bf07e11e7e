package domain

import "time"

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "Confirmed"
	BookingStatusCancelled BookingStatus = "Cancelled"
)

// TrainSnapshot is copied from the train when the booking is made and never
// changes afterwards.
type TrainSnapshot struct {
	TrainNumber   string `json:"trainNumber"`
	TrainName     string `json:"trainName"`
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureTime string `json:"departureTime"`
	ArrivalTime   string `json:"arrivalTime"`
}

type Booking struct {
	ID               string        `json:"id"`
	BookingReference string        `json:"bookingReference"`
	Status           BookingStatus `json:"status"`
	BookingDate      time.Time     `json:"bookingDate"`
	TrainID          string        `json:"trainId"`
	TrainSnapshot
	PassengerName  string  `json:"passengerName"`
	PassengerEmail string  `json:"passengerEmail"`
	PassengerPhone string  `json:"passengerPhone"`
	NumberOfSeats  int     `json:"numberOfSeats"`
	TravelDate     string  `json:"travelDate"`
	SeatNumbers    string  `json:"seatNumbers,omitempty"`
	TotalPrice     float64 `json:"totalPrice"`
}

// BookingPatch lists the fields a generic update may touch. Status, seat
// count, price and the train snapshot are not among them.
type BookingPatch struct {
	PassengerName  *string `json:"passengerName"`
	PassengerEmail *string `json:"passengerEmail" validate:"omitempty,email"`
	PassengerPhone *string `json:"passengerPhone"`
	TravelDate     *string `json:"travelDate"`
	SeatNumbers    *string `json:"seatNumbers"`
}

func (p BookingPatch) Apply(b *Booking) {
	if p.PassengerName != nil {
		b.PassengerName = *p.PassengerName
	}
	if p.PassengerEmail != nil {
		b.PassengerEmail = *p.PassengerEmail
	}
	if p.PassengerPhone != nil {
		b.PassengerPhone = *p.PassengerPhone
	}
	if p.TravelDate != nil {
		b.TravelDate = *p.TravelDate
	}
	if p.SeatNumbers != nil {
		b.SeatNumbers = *p.SeatNumbers
	}
}
