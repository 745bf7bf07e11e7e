package trains

import (
	"context"
	"log"

	"github.com/Domenick1991/railbooking/internal/domain"
	"github.com/Domenick1991/railbooking/internal/repository"
	"github.com/Domenick1991/railbooking/internal/service/validation"
)

type TrainUseCase interface {
	List(ctx context.Context) ([]domain.Train, error)
	GetByID(ctx context.Context, id string) (*domain.Train, error)
	Search(ctx context.Context, query domain.TrainSearch) ([]domain.Train, error)
	Create(ctx context.Context, input CreateTrainInput) (*domain.Train, error)
	Update(ctx context.Context, id string, patch domain.TrainPatch) (*domain.Train, error)
	Delete(ctx context.Context, id string) (*domain.Train, error)
}

// TrainCache holds the train list. GetTrains reports the invalidation
// generation it saw; SetTrains with an older generation is dropped.
type TrainCache interface {
	GetTrains(ctx context.Context) ([]domain.Train, int64, error)
	SetTrains(ctx context.Context, trains []domain.Train, generation int64) error
	InvalidateTrains(ctx context.Context) error
}

type CreateTrainInput struct {
	TrainNumber   string           `json:"trainNumber" validate:"required"`
	TrainName     string           `json:"trainName" validate:"required"`
	Origin        string           `json:"origin" validate:"required"`
	Destination   string           `json:"destination" validate:"required"`
	DepartureTime string           `json:"departureTime" validate:"required"`
	ArrivalTime   string           `json:"arrivalTime" validate:"required"`
	Duration      string           `json:"duration"`
	Price         float64          `json:"price" validate:"required,gt=0"`
	TotalSeats    int              `json:"totalSeats" validate:"required,gt=0"`
	Days          []domain.Weekday `json:"days" validate:"dive,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
}

type TrainService struct {
	repo  repository.TrainRepository
	cache TrainCache
}

// cache may be nil.
func NewTrainService(repo repository.TrainRepository, cache TrainCache) *TrainService {
	return &TrainService{repo: repo, cache: cache}
}

func (s *TrainService) List(ctx context.Context) ([]domain.Train, error) {
	var (
		generation int64
		cacheable  bool
	)
	if s.cache != nil {
		cached, gen, err := s.cache.GetTrains(ctx)
		if err == nil && cached != nil {
			return cached, nil
		}
		generation, cacheable = gen, err == nil
	}

	trains, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if cacheable {
		if err := s.cache.SetTrains(ctx, trains, generation); err != nil {
			log.Printf("WARNING: failed to cache trains: %v", err)
		}
	}
	return trains, nil
}

func (s *TrainService) GetByID(ctx context.Context, id string) (*domain.Train, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *TrainService) Search(ctx context.Context, query domain.TrainSearch) ([]domain.Train, error) {
	return s.repo.Search(ctx, query)
}

// Create always opens every seat and marks the train "On Time".
func (s *TrainService) Create(ctx context.Context, input CreateTrainInput) (*domain.Train, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	train := &domain.Train{
		TrainNumber:   input.TrainNumber,
		TrainName:     input.TrainName,
		Origin:        input.Origin,
		Destination:   input.Destination,
		DepartureTime: input.DepartureTime,
		ArrivalTime:   input.ArrivalTime,
		Duration:      input.Duration,
		Price:         input.Price,
		TotalSeats:    input.TotalSeats,
		Days:          input.Days,
	}
	if err := s.repo.Create(ctx, train); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return train, nil
}

// Update refuses to set availableSeats; the counter only moves through
// bookings and through totalSeats changes.
func (s *TrainService) Update(ctx context.Context, id string, patch domain.TrainPatch) (*domain.Train, error) {
	if patch.AvailableSeats != nil {
		return nil, &domain.ValidationError{
			Fields: []string{"availableSeats"},
			Reason: "seat availability is managed by bookings and cannot be set directly",
		}
	}
	if err := validation.Struct(patch); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return updated, nil
}

func (s *TrainService) Delete(ctx context.Context, id string) (*domain.Train, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return deleted, nil
}

func (s *TrainService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateTrains(ctx); err != nil {
		log.Printf("WARNING: failed to invalidate trains cache: %v", err)
	}
}

var _ TrainUseCase = (*TrainService)(nil)
