package domain

import "math"

const TrainStatusOnTime = "On Time"

// Train times and duration are opaque display strings ("08:00", "2h 30m").
type Train struct {
	ID             string    `json:"id"`
	TrainNumber    string    `json:"trainNumber"`
	TrainName      string    `json:"trainName"`
	Origin         string    `json:"origin"`
	Destination    string    `json:"destination"`
	DepartureTime  string    `json:"departureTime"`
	ArrivalTime    string    `json:"arrivalTime"`
	Duration       string    `json:"duration"`
	Price          float64   `json:"price"`
	TotalSeats     int       `json:"totalSeats"`
	AvailableSeats int       `json:"availableSeats"`
	Status         string    `json:"status"`
	Days           []Weekday `json:"days"`
}

func (t Train) Clone() Train {
	t.Days = append([]Weekday(nil), t.Days...)
	return t
}

// Fare is the price of seats on this train, rounded to cents.
func (t Train) Fare(seats int) float64 {
	return math.Round(t.Price*float64(seats)*100) / 100
}

// Snapshot freezes the fields a booking keeps about its train.
func (t Train) Snapshot() TrainSnapshot {
	return TrainSnapshot{
		TrainNumber:   t.TrainNumber,
		TrainName:     t.TrainName,
		Origin:        t.Origin,
		Destination:   t.Destination,
		DepartureTime: t.DepartureTime,
		ArrivalTime:   t.ArrivalTime,
	}
}

// TrainPatch carries a partial train update. AvailableSeats is only decoded so
// that an attempt to set it can be rejected; seats move through bookings.
type TrainPatch struct {
	TrainNumber    *string    `json:"trainNumber"`
	TrainName      *string    `json:"trainName"`
	Origin         *string    `json:"origin"`
	Destination    *string    `json:"destination"`
	DepartureTime  *string    `json:"departureTime"`
	ArrivalTime    *string    `json:"arrivalTime"`
	Duration       *string    `json:"duration"`
	Price          *float64   `json:"price" validate:"omitempty,gte=0"`
	TotalSeats     *int       `json:"totalSeats" validate:"omitempty,gt=0"`
	AvailableSeats *int       `json:"availableSeats"`
	Status         *string    `json:"status"`
	Days           *[]Weekday `json:"days"`
}

// Apply merges the patch into t. A totalSeats change shifts availableSeats by
// the same delta; callers must check the result stays non-negative.
func (p TrainPatch) Apply(t *Train) {
	if p.TrainNumber != nil {
		t.TrainNumber = *p.TrainNumber
	}
	if p.TrainName != nil {
		t.TrainName = *p.TrainName
	}
	if p.Origin != nil {
		t.Origin = *p.Origin
	}
	if p.Destination != nil {
		t.Destination = *p.Destination
	}
	if p.DepartureTime != nil {
		t.DepartureTime = *p.DepartureTime
	}
	if p.ArrivalTime != nil {
		t.ArrivalTime = *p.ArrivalTime
	}
	if p.Duration != nil {
		t.Duration = *p.Duration
	}
	if p.Price != nil {
		t.Price = *p.Price
	}
	if p.TotalSeats != nil {
		t.AvailableSeats += *p.TotalSeats - t.TotalSeats
		t.TotalSeats = *p.TotalSeats
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Days != nil {
		t.Days = append([]Weekday(nil), (*p.Days)...)
	}
}

type TrainSearch struct {
	Origin      string
	Destination string
	// Date is accepted from callers but does not narrow the result.
	Date string
}
