package repository

import (
	"context"
	"fmt"

	"github.com/Domenick1991/railbooking/internal/domain"
)

var seedStations = []domain.Station{
	{ID: "1", Name: "Cairo Central Station", Code: "CAI", City: "Cairo", Address: "Ramses Square, Cairo",
		Facilities: []string{"WiFi", "Waiting Room", "Restaurant", "Parking", "ATM"}, Platforms: 12, ContactNumber: "+20-2-1234-5678"},
	{ID: "2", Name: "Alexandria Main Station", Code: "ALX", City: "Alexandria", Address: "El-Mahatta Square, Alexandria",
		Facilities: []string{"WiFi", "Waiting Room", "Cafeteria", "Parking"}, Platforms: 8, ContactNumber: "+20-3-1234-5678"},
	{ID: "3", Name: "Luxor Station", Code: "LXR", City: "Luxor", Address: "Station Street, Luxor",
		Facilities: []string{"Waiting Room", "Ticket Office", "Parking"}, Platforms: 4, ContactNumber: "+20-95-1234-5678"},
	{ID: "4", Name: "Aswan Station", Code: "ASW", City: "Aswan", Address: "Railway Street, Aswan",
		Facilities: []string{"Waiting Room", "Cafeteria", "Parking"}, Platforms: 4, ContactNumber: "+20-97-1234-5678"},
	{ID: "5", Name: "Giza Station", Code: "GZA", City: "Giza", Address: "Giza Square, Giza",
		Facilities: []string{"WiFi", "Waiting Room", "Parking"}, Platforms: 6, ContactNumber: "+20-2-9876-5432"},
	{ID: "6", Name: "Port Said Station", Code: "PSD", City: "Port Said", Address: "Port Station Road, Port Said",
		Facilities: []string{"Waiting Room", "Restaurant", "Parking", "ATM"}, Platforms: 5, ContactNumber: "+20-66-1234-5678"},
}

var seedTrains = []domain.Train{
	{ID: "1", TrainNumber: "T001", TrainName: "Express 100", Origin: "Cairo", Destination: "Alexandria",
		DepartureTime: "08:00", ArrivalTime: "10:30", Duration: "2h 30m", Price: 50, TotalSeats: 100, Days: domain.EveryDay},
	{ID: "2", TrainNumber: "T002", TrainName: "Fast Track 200", Origin: "Cairo", Destination: "Luxor",
		DepartureTime: "14:00", ArrivalTime: "22:00", Duration: "8h", Price: 120, TotalSeats: 80,
		Days: []domain.Weekday{domain.Monday, domain.Wednesday, domain.Friday, domain.Sunday}},
	{ID: "3", TrainNumber: "T003", TrainName: "Night Express", Origin: "Alexandria", Destination: "Aswan",
		DepartureTime: "20:00", ArrivalTime: "08:00", Duration: "12h", Price: 180, TotalSeats: 60,
		Days: []domain.Weekday{domain.Tuesday, domain.Thursday, domain.Saturday}},
	{ID: "4", TrainNumber: "T004", TrainName: "City Shuttle", Origin: "Cairo", Destination: "Giza",
		DepartureTime: "06:00", ArrivalTime: "06:45", Duration: "45m", Price: 15, TotalSeats: 150, Days: domain.EveryDay},
	{ID: "5", TrainNumber: "T005", TrainName: "Business Express", Origin: "Cairo", Destination: "Port Said",
		DepartureTime: "09:00", ArrivalTime: "12:30", Duration: "3h 30m", Price: 85, TotalSeats: 50,
		Days: []domain.Weekday{domain.Monday, domain.Tuesday, domain.Wednesday, domain.Thursday, domain.Friday}},
}

// Seed loads the default stations and timetable into an empty store.
func Seed(ctx context.Context, store *Store) error {
	for _, s := range seedStations {
		station := s.Clone()
		if err := store.Stations.Create(ctx, &station); err != nil {
			return fmt.Errorf("seed station %s: %w", s.Code, err)
		}
	}
	for _, t := range seedTrains {
		train := t.Clone()
		if err := store.Trains.Create(ctx, &train); err != nil {
			return fmt.Errorf("seed train %s: %w", t.TrainNumber, err)
		}
	}
	return nil
}
