package booking

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Domenick1991/railbooking/internal/domain"
	"github.com/Domenick1991/railbooking/internal/kafka"
	"github.com/Domenick1991/railbooking/internal/repository"
	"github.com/Domenick1991/railbooking/internal/service/validation"
)

type BookingUseCase interface {
	List(ctx context.Context) ([]domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByEmail(ctx context.Context, email string) ([]domain.Booking, error)
	CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	UpdateBooking(ctx context.Context, id string, patch domain.BookingPatch) (*domain.Booking, error)
	CancelBooking(ctx context.Context, id string) (*domain.Booking, error)
	DeleteBooking(ctx context.Context, id string) (*domain.Booking, error)
}

// Cache is the part of the trains cache that seat changes must invalidate.
type Cache interface {
	InvalidateTrains(ctx context.Context) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	bookings           repository.BookingRepository
	trains             repository.TrainRepository
	cache              Cache
	producer           Producer
	bookingTopic       string
	notificationsTopic string
	now                func() time.Time
}

type CreateBookingInput struct {
	TrainID        string `json:"trainId" validate:"required"`
	PassengerName  string `json:"passengerName" validate:"required"`
	PassengerEmail string `json:"passengerEmail" validate:"required,email"`
	PassengerPhone string `json:"passengerPhone" validate:"required"`
	NumberOfSeats  int    `json:"numberOfSeats" validate:"required,gt=0"`
	TravelDate     string `json:"travelDate" validate:"required"`
	SeatNumbers    string `json:"seatNumbers"`
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func WithClock(now func() time.Time) BookingServiceOption {
	return func(s *BookingService) {
		s.now = now
	}
}

// NewBookingService wires the workflow over store. cache and producer may be
// nil; events are only published when producer and bookingTopic are set.
func NewBookingService(
	store *repository.Store,
	cache Cache,
	producer Producer,
	bookingTopic string,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings:     store.Bookings,
		trains:       store.Trains,
		cache:        cache,
		producer:     producer,
		bookingTopic: bookingTopic,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *BookingService) List(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.List(ctx)
}

func (s *BookingService) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookings.GetByID(ctx, id)
}

func (s *BookingService) ListByEmail(ctx context.Context, email string) ([]domain.Booking, error) {
	return s.bookings.ListByEmail(ctx, email)
}

// CreateBooking validates the request, takes the seats off the train with an
// atomic compare-and-decrement and then records the booking. If the booking
// cannot be recorded the seats are handed back; if that fails too the error
// wraps domain.ErrPartialFailure.
func (s *BookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	train, err := s.trains.GetByID(ctx, input.TrainID)
	if err != nil {
		return nil, err
	}
	if input.NumberOfSeats > train.AvailableSeats {
		return nil, &domain.CapacityError{Available: train.AvailableSeats}
	}

	reserved, err := s.trains.ReserveSeats(ctx, input.TrainID, input.NumberOfSeats)
	if err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		TrainID:        reserved.ID,
		TrainSnapshot:  reserved.Snapshot(),
		PassengerName:  input.PassengerName,
		PassengerEmail: input.PassengerEmail,
		PassengerPhone: input.PassengerPhone,
		NumberOfSeats:  input.NumberOfSeats,
		TravelDate:     input.TravelDate,
		SeatNumbers:    input.SeatNumbers,
		TotalPrice:     reserved.Fare(input.NumberOfSeats),
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		if _, relErr := s.trains.ReleaseSeats(ctx, reserved.ID, input.NumberOfSeats); relErr != nil {
			log.Printf("ERROR: booking for train %s not stored and %d seats not returned: %v", reserved.ID, input.NumberOfSeats, relErr)
			return nil, fmt.Errorf("%w: store booking: %w; return %d seats to train %s: %w",
				domain.ErrPartialFailure, err, input.NumberOfSeats, reserved.ID, relErr)
		}
		return nil, fmt.Errorf("store booking: %w", err)
	}

	s.invalidateTrains(ctx)
	if err := s.publish(ctx, kafka.EventBookingCreated, booking); err != nil {
		log.Printf("WARNING: failed to publish %s event for booking %s: %v", kafka.EventBookingCreated, booking.ID, err)
	}
	return booking, nil
}

func (s *BookingService) UpdateBooking(ctx context.Context, id string, patch domain.BookingPatch) (*domain.Booking, error) {
	if err := validation.Struct(patch); err != nil {
		return nil, err
	}

	updated, err := s.bookings.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if err := s.publish(ctx, kafka.EventBookingUpdated, updated); err != nil {
		log.Printf("WARNING: failed to publish %s event for booking %s: %v", kafka.EventBookingUpdated, updated.ID, err)
	}
	return updated, nil
}

// CancelBooking flips a Confirmed booking to Cancelled and returns its seats
// to the train. Only the call that wins the status transition credits seats.
func (s *BookingService) CancelBooking(ctx context.Context, id string) (*domain.Booking, error) {
	cancelled, err := s.bookings.Cancel(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := s.trains.ReleaseSeats(ctx, cancelled.TrainID, cancelled.NumberOfSeats); err != nil {
		if !errors.Is(err, domain.ErrTrainNotFound) {
			return nil, fmt.Errorf("%w: booking %s cancelled but seats not returned: %w", domain.ErrPartialFailure, id, err)
		}
		log.Printf("train %s of cancelled booking %s no longer exists, no seats returned", cancelled.TrainID, id)
	}

	s.invalidateTrains(ctx)
	if err := s.publish(ctx, kafka.EventBookingCancelled, cancelled); err != nil {
		log.Printf("WARNING: failed to publish %s event for booking %s: %v", kafka.EventBookingCancelled, cancelled.ID, err)
	}
	return cancelled, nil
}

// DeleteBooking removes the record only. Seats of a deleted Confirmed booking
// stay taken; cancel first to return them.
func (s *BookingService) DeleteBooking(ctx context.Context, id string) (*domain.Booking, error) {
	deleted, err := s.bookings.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.publish(ctx, kafka.EventBookingDeleted, deleted); err != nil {
		log.Printf("WARNING: failed to publish %s event for booking %s: %v", kafka.EventBookingDeleted, deleted.ID, err)
	}
	return deleted, nil
}

func (s *BookingService) invalidateTrains(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateTrains(ctx); err != nil {
		log.Printf("WARNING: failed to invalidate trains cache: %v", err)
	}
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking) error {
	if s.producer == nil || s.bookingTopic == "" {
		return nil
	}
	event := kafka.NewBookingEvent(eventType, booking, s.now())
	if err := s.producer.Publish(ctx, s.bookingTopic, booking.ID, event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, booking.ID, event)
	}
	return nil
}

var _ BookingUseCase = (*BookingService)(nil)
