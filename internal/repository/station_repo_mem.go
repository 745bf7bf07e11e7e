package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/Domenick1991/railbooking/internal/domain"
	"github.com/google/uuid"
)

type StationRepository interface {
	List(ctx context.Context) ([]domain.Station, error)
	GetByID(ctx context.Context, id string) (*domain.Station, error)
	GetByCode(ctx context.Context, code string) (*domain.Station, error)
	SearchByCity(ctx context.Context, city string) ([]domain.Station, error)
	Create(ctx context.Context, station *domain.Station) error
	Update(ctx context.Context, id string, patch domain.StationPatch) (*domain.Station, error)
	Delete(ctx context.Context, id string) (*domain.Station, error)
}

type MemStationRepository struct {
	mu       sync.RWMutex
	stations []domain.Station
}

func NewStationRepository() StationRepository {
	return &MemStationRepository{}
}

func (r *MemStationRepository) List(ctx context.Context) ([]domain.Station, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stations := make([]domain.Station, 0, len(r.stations))
	for _, s := range r.stations {
		stations = append(stations, s.Clone())
	}
	return stations, nil
}

func (r *MemStationRepository) GetByID(ctx context.Context, id string) (*domain.Station, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, domain.ErrStationNotFound
	}
	s := r.stations[i].Clone()
	return &s, nil
}

func (r *MemStationRepository) GetByCode(ctx context.Context, code string) (*domain.Station, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.stations {
		if s.Code == code {
			found := s.Clone()
			return &found, nil
		}
	}
	return nil, domain.ErrStationNotFound
}

func (r *MemStationRepository) SearchByCity(ctx context.Context, city string) ([]domain.Station, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(city)
	stations := make([]domain.Station, 0)
	for _, s := range r.stations {
		if strings.Contains(strings.ToLower(s.City), needle) {
			stations = append(stations, s.Clone())
		}
	}
	return stations, nil
}

// Create stores the station as given. Codes are not checked for uniqueness.
func (r *MemStationRepository) Create(ctx context.Context, station *domain.Station) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if station.ID == "" {
		station.ID = uuid.NewString()
	}
	r.stations = append(r.stations, station.Clone())
	return nil
}

func (r *MemStationRepository) Update(ctx context.Context, id string, patch domain.StationPatch) (*domain.Station, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, domain.ErrStationNotFound
	}
	patch.Apply(&r.stations[i])
	s := r.stations[i].Clone()
	return &s, nil
}

func (r *MemStationRepository) Delete(ctx context.Context, id string) (*domain.Station, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, domain.ErrStationNotFound
	}
	deleted := r.stations[i]
	r.stations = append(r.stations[:i], r.stations[i+1:]...)
	return &deleted, nil
}

func (r *MemStationRepository) indexOf(id string) int {
	for i := range r.stations {
		if r.stations[i].ID == id {
			return i
		}
	}
	return -1
}

var _ StationRepository = (*MemStationRepository)(nil)
