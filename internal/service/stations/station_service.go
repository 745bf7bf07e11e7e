package stations

import (
	"context"

	"github.com/Domenick1991/railbooking/internal/domain"
	"github.com/Domenick1991/railbooking/internal/repository"
	"github.com/Domenick1991/railbooking/internal/service/validation"
)

type StationUseCase interface {
	List(ctx context.Context) ([]domain.Station, error)
	GetByID(ctx context.Context, id string) (*domain.Station, error)
	GetByCode(ctx context.Context, code string) (*domain.Station, error)
	SearchByCity(ctx context.Context, city string) ([]domain.Station, error)
	Create(ctx context.Context, input CreateStationInput) (*domain.Station, error)
	Update(ctx context.Context, id string, patch domain.StationPatch) (*domain.Station, error)
	Delete(ctx context.Context, id string) (*domain.Station, error)
}

type CreateStationInput struct {
	Name          string   `json:"name" validate:"required"`
	Code          string   `json:"code" validate:"required"`
	City          string   `json:"city" validate:"required"`
	Address       string   `json:"address" validate:"required"`
	Facilities    []string `json:"facilities"`
	Platforms     int      `json:"platforms" validate:"gte=0"`
	ContactNumber string   `json:"contactNumber"`
}

type StationService struct {
	repo repository.StationRepository
}

func NewStationService(repo repository.StationRepository) *StationService {
	return &StationService{repo: repo}
}

func (s *StationService) List(ctx context.Context) ([]domain.Station, error) {
	return s.repo.List(ctx)
}

func (s *StationService) GetByID(ctx context.Context, id string) (*domain.Station, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *StationService) GetByCode(ctx context.Context, code string) (*domain.Station, error) {
	return s.repo.GetByCode(ctx, code)
}

func (s *StationService) SearchByCity(ctx context.Context, city string) ([]domain.Station, error) {
	if city == "" {
		return nil, &domain.ValidationError{Reason: "city parameter is required"}
	}
	return s.repo.SearchByCity(ctx, city)
}

func (s *StationService) Create(ctx context.Context, input CreateStationInput) (*domain.Station, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	station := &domain.Station{
		Name:          input.Name,
		Code:          input.Code,
		City:          input.City,
		Address:       input.Address,
		Facilities:    input.Facilities,
		Platforms:     input.Platforms,
		ContactNumber: input.ContactNumber,
	}
	if station.Facilities == nil {
		station.Facilities = []string{}
	}
	if err := s.repo.Create(ctx, station); err != nil {
		return nil, err
	}
	return station, nil
}

func (s *StationService) Update(ctx context.Context, id string, patch domain.StationPatch) (*domain.Station, error) {
	if err := validation.Struct(patch); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, patch)
}

func (s *StationService) Delete(ctx context.Context, id string) (*domain.Station, error) {
	return s.repo.Delete(ctx, id)
}

var _ StationUseCase = (*StationService)(nil)
