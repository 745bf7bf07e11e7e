package repository

// Store owns the three in-memory collections. State lives only as long as the
// process does.
type Store struct {
	Stations StationRepository
	Trains   TrainRepository
	Bookings BookingRepository
}

func NewMemoryStore() *Store {
	return &Store{
		Stations: NewStationRepository(),
		Trains:   NewTrainRepository(),
		Bookings: NewBookingRepository(),
	}
}
