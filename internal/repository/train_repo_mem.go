package repository

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/Domenick1991/railbooking/internal/domain"
	"github.com/google/uuid"
)

type TrainRepository interface {
	List(ctx context.Context) ([]domain.Train, error)
	GetByID(ctx context.Context, id string) (*domain.Train, error)
	Search(ctx context.Context, query domain.TrainSearch) ([]domain.Train, error)
	Create(ctx context.Context, train *domain.Train) error
	Update(ctx context.Context, id string, patch domain.TrainPatch) (*domain.Train, error)
	Delete(ctx context.Context, id string) (*domain.Train, error)
	// ReserveSeats decrements availableSeats by n only if n seats are left.
	ReserveSeats(ctx context.Context, id string, n int) (*domain.Train, error)
	// ReleaseSeats credits n seats back, never above totalSeats.
	ReleaseSeats(ctx context.Context, id string, n int) (*domain.Train, error)
}

type MemTrainRepository struct {
	mu     sync.RWMutex
	trains []domain.Train
}

func NewTrainRepository() TrainRepository {
	return &MemTrainRepository{}
}

func (r *MemTrainRepository) List(ctx context.Context) ([]domain.Train, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	trains := make([]domain.Train, 0, len(r.trains))
	for _, t := range r.trains {
		trains = append(trains, t.Clone())
	}
	return trains, nil
}

func (r *MemTrainRepository) GetByID(ctx context.Context, id string) (*domain.Train, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, domain.ErrTrainNotFound
	}
	t := r.trains[i].Clone()
	return &t, nil
}

func (r *MemTrainRepository) Search(ctx context.Context, query domain.TrainSearch) ([]domain.Train, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	origin := strings.ToLower(query.Origin)
	destination := strings.ToLower(query.Destination)

	trains := make([]domain.Train, 0)
	for _, t := range r.trains {
		if origin != "" && !strings.Contains(strings.ToLower(t.Origin), origin) {
			continue
		}
		if destination != "" && !strings.Contains(strings.ToLower(t.Destination), destination) {
			continue
		}
		trains = append(trains, t.Clone())
	}
	return trains, nil
}

// Create assigns an id when missing, opens every seat and resets the status.
func (r *MemTrainRepository) Create(ctx context.Context, train *domain.Train) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if train.ID == "" {
		train.ID = uuid.NewString()
	}
	train.AvailableSeats = train.TotalSeats
	train.Status = domain.TrainStatusOnTime
	r.trains = append(r.trains, train.Clone())
	return nil
}

func (r *MemTrainRepository) Update(ctx context.Context, id string, patch domain.TrainPatch) (*domain.Train, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, domain.ErrTrainNotFound
	}

	updated := r.trains[i].Clone()
	patch.Apply(&updated)
	if updated.AvailableSeats < 0 {
		booked := r.trains[i].TotalSeats - r.trains[i].AvailableSeats
		return nil, &domain.ValidationError{
			Fields: []string{"totalSeats"},
			Reason: fmt.Sprintf("totalSeats cannot drop below the %d seats already booked", booked),
		}
	}
	r.trains[i] = updated
	t := updated.Clone()
	return &t, nil
}

func (r *MemTrainRepository) Delete(ctx context.Context, id string) (*domain.Train, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, domain.ErrTrainNotFound
	}
	deleted := r.trains[i]
	r.trains = append(r.trains[:i], r.trains[i+1:]...)
	return &deleted, nil
}

func (r *MemTrainRepository) ReserveSeats(ctx context.Context, id string, n int) (*domain.Train, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, domain.ErrTrainNotFound
	}
	if n > r.trains[i].AvailableSeats {
		return nil, &domain.CapacityError{Available: r.trains[i].AvailableSeats}
	}
	r.trains[i].AvailableSeats -= n
	t := r.trains[i].Clone()
	return &t, nil
}

func (r *MemTrainRepository) ReleaseSeats(ctx context.Context, id string, n int) (*domain.Train, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, domain.ErrTrainNotFound
	}
	t := &r.trains[i]
	t.AvailableSeats += n
	if t.AvailableSeats > t.TotalSeats {
		log.Printf("train %s: release of %d seats exceeds capacity, clamping to %d", id, n, t.TotalSeats)
		t.AvailableSeats = t.TotalSeats
	}
	released := t.Clone()
	return &released, nil
}

func (r *MemTrainRepository) indexOf(id string) int {
	for i := range r.trains {
		if r.trains[i].ID == id {
			return i
		}
	}
	return -1
}

var _ TrainRepository = (*MemTrainRepository)(nil)
