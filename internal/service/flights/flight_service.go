package flights

import (
	"context"
	"time"

	"github.com/smelyanko/airport-service/internal/domain"
	"github.com/smelyanko/airport-service/internal/repository"
)

type FlightUseCase interface {
	List(ctx context.Context, filter domain.FlightFilter, limit, offset int) ([]domain.Flight, int, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	Create(ctx context.Context, input FlightInput) (*domain.Flight, error)
	Update(ctx context.Context, id int64, input FlightInput) (*domain.Flight, error)
	Delete(ctx context.Context, id int64) error
}

type FlightCache interface {
	GetFlights(ctx context.Context) ([]domain.Flight, error)
	SetFlights(ctx context.Context, flights []domain.Flight) error
	InvalidateFlights(ctx context.Context) error
}

type FlightInput struct {
	RouteID       int64     `json:"route"`
	AirplaneID    int64     `json:"airplane"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
	CrewIDs       []int64   `json:"crew"`
}

type FlightService struct {
	repo     repository.FlightRepository
	cache    FlightCache
	cacheTTL time.Duration
}

func NewFlightService(repo repository.FlightRepository, cache FlightCache, cacheTTL time.Duration) *FlightService {
	return &FlightService{repo: repo, cache: cache, cacheTTL: cacheTTL}
}

// List returns a page of flights with derived availability. The cache only
// ever holds the unfiltered listing, and only when it fits a single page.
func (s *FlightService) List(ctx context.Context, filter domain.FlightFilter, limit, offset int) ([]domain.Flight, int, error) {
	cacheable := filter.IsEmpty() && offset == 0

	if s.cache != nil && cacheable {
		if cached, err := s.cache.GetFlights(ctx); err == nil && cached != nil && len(cached) <= limit {
			return cached, len(cached), nil
		}
	}

	flights, total, err := s.repo.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	if s.cache != nil && cacheable && total == len(flights) {
		_ = s.cache.SetFlights(ctx, flights)
	}
	return flights, total, nil
}

func (s *FlightService) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *FlightService) Create(ctx context.Context, input FlightInput) (*domain.Flight, error) {
	if err := validateFlightInput(input); err != nil {
		return nil, err
	}

	flight := &domain.Flight{
		RouteID:       input.RouteID,
		AirplaneID:    input.AirplaneID,
		DepartureTime: input.DepartureTime,
		ArrivalTime:   input.ArrivalTime,
		CrewIDs:       input.CrewIDs,
	}
	if err := s.repo.Create(ctx, flight); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return s.repo.GetByID(ctx, flight.ID)
}

func (s *FlightService) Update(ctx context.Context, id int64, input FlightInput) (*domain.Flight, error) {
	if err := validateFlightInput(input); err != nil {
		return nil, err
	}

	flight := &domain.Flight{
		ID:            id,
		RouteID:       input.RouteID,
		AirplaneID:    input.AirplaneID,
		DepartureTime: input.DepartureTime,
		ArrivalTime:   input.ArrivalTime,
		CrewIDs:       input.CrewIDs,
	}
	if err := s.repo.Update(ctx, flight); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return s.repo.GetByID(ctx, id)
}

func (s *FlightService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *FlightService) invalidate(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.InvalidateFlights(ctx)
	}
}

func validateFlightInput(input FlightInput) error {
	if input.RouteID == 0 {
		return domain.NewValidationError("route", "route is required")
	}
	if input.AirplaneID == 0 {
		return domain.NewValidationError("airplane", "airplane is required")
	}
	if !input.ArrivalTime.After(input.DepartureTime) {
		return domain.NewValidationError("arrival_time", "arrival_time must be after departure_time")
	}
	return nil
}

var _ FlightUseCase = (*FlightService)(nil)
