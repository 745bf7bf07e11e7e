package repository

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/Domenick1991/railbooking/internal/domain"
	"github.com/google/uuid"
)

type BookingRepository interface {
	List(ctx context.Context) ([]domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByEmail(ctx context.Context, email string) ([]domain.Booking, error)
	Create(ctx context.Context, booking *domain.Booking) error
	Update(ctx context.Context, id string, patch domain.BookingPatch) (*domain.Booking, error)
	// Cancel moves a Confirmed booking to Cancelled. A second cancel fails
	// with domain.ErrAlreadyCancelled and changes nothing.
	Cancel(ctx context.Context, id string) (*domain.Booking, error)
	Delete(ctx context.Context, id string) (*domain.Booking, error)
}

type MemBookingRepository struct {
	mu       sync.RWMutex
	bookings []domain.Booking
	now      func() time.Time
}

func NewBookingRepository() BookingRepository {
	return &MemBookingRepository{now: time.Now}
}

func (r *MemBookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append(make([]domain.Booking, 0, len(r.bookings)), r.bookings...), nil
}

func (r *MemBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, domain.ErrBookingNotFound
	}
	b := r.bookings[i]
	return &b, nil
}

// ListByEmail matches the passenger email exactly, case included.
func (r *MemBookingRepository) ListByEmail(ctx context.Context, email string) ([]domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bookings := make([]domain.Booking, 0)
	for _, b := range r.bookings {
		if b.PassengerEmail == email {
			bookings = append(bookings, b)
		}
	}
	return bookings, nil
}

// Create assigns id, reference, status and booking date; everything else is
// taken from the caller.
func (r *MemBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	booking.ID = uuid.NewString()
	booking.BookingReference = bookingReference(now)
	booking.Status = domain.BookingStatusConfirmed
	booking.BookingDate = now.UTC()
	r.bookings = append(r.bookings, *booking)
	return nil
}

func (r *MemBookingRepository) Update(ctx context.Context, id string, patch domain.BookingPatch) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, domain.ErrBookingNotFound
	}
	patch.Apply(&r.bookings[i])
	b := r.bookings[i]
	return &b, nil
}

func (r *MemBookingRepository) Cancel(ctx context.Context, id string) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, domain.ErrBookingNotFound
	}
	if r.bookings[i].Status == domain.BookingStatusCancelled {
		return nil, domain.ErrAlreadyCancelled
	}
	r.bookings[i].Status = domain.BookingStatusCancelled
	b := r.bookings[i]
	return &b, nil
}

func (r *MemBookingRepository) Delete(ctx context.Context, id string) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, domain.ErrBookingNotFound
	}
	deleted := r.bookings[i]
	r.bookings = append(r.bookings[:i], r.bookings[i+1:]...)
	return &deleted, nil
}

func (r *MemBookingRepository) indexOf(id string) int {
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			return i
		}
	}
	return -1
}

// bookingReference is "BKG" plus the last 8 digits of the Unix millisecond
// clock. Two bookings in the same millisecond share a reference.
func bookingReference(t time.Time) string {
	ms := strconv.FormatInt(t.UnixMilli(), 10)
	if len(ms) > 8 {
		ms = ms[len(ms)-8:]
	}
	return "BKG" + ms
}

var _ BookingRepository = (*MemBookingRepository)(nil)
