package catalog

import (
	"context"

	"github.com/smelyanko/airport-service/internal/domain"
	"github.com/smelyanko/airport-service/internal/repository"
)

// CatalogUseCase covers CRUD over the reference aggregates: countries,
// cities, airports, routes, airplane types, airplanes and crews.
type CatalogUseCase interface {
	ListCountries(ctx context.Context, limit, offset int) ([]domain.Country, int, error)
	GetCountry(ctx context.Context, id int64) (*domain.Country, error)
	CreateCountry(ctx context.Context, country *domain.Country) error
	UpdateCountry(ctx context.Context, country *domain.Country) error
	DeleteCountry(ctx context.Context, id int64) error

	ListCities(ctx context.Context, limit, offset int) ([]domain.City, int, error)
	GetCity(ctx context.Context, id int64) (*domain.City, error)
	CreateCity(ctx context.Context, city *domain.City) error
	UpdateCity(ctx context.Context, city *domain.City) error
	DeleteCity(ctx context.Context, id int64) error

	ListAirports(ctx context.Context, limit, offset int) ([]domain.Airport, int, error)
	GetAirport(ctx context.Context, id int64) (*domain.Airport, error)
	CreateAirport(ctx context.Context, airport *domain.Airport) error
	UpdateAirport(ctx context.Context, airport *domain.Airport) error
	DeleteAirport(ctx context.Context, id int64) error

	ListRoutes(ctx context.Context, limit, offset int) ([]domain.Route, int, error)
	GetRoute(ctx context.Context, id int64) (*domain.Route, error)
	CreateRoute(ctx context.Context, route *domain.Route) error
	UpdateRoute(ctx context.Context, route *domain.Route) error
	DeleteRoute(ctx context.Context, id int64) error

	ListAirplaneTypes(ctx context.Context, limit, offset int) ([]domain.AirplaneType, int, error)
	GetAirplaneType(ctx context.Context, id int64) (*domain.AirplaneType, error)
	CreateAirplaneType(ctx context.Context, at *domain.AirplaneType) error
	UpdateAirplaneType(ctx context.Context, at *domain.AirplaneType) error
	DeleteAirplaneType(ctx context.Context, id int64) error

	ListAirplanes(ctx context.Context, limit, offset int) ([]domain.Airplane, int, error)
	GetAirplane(ctx context.Context, id int64) (*domain.Airplane, error)
	CreateAirplane(ctx context.Context, airplane *domain.Airplane) error
	UpdateAirplane(ctx context.Context, airplane *domain.Airplane) error
	DeleteAirplane(ctx context.Context, id int64) error

	ListCrews(ctx context.Context, limit, offset int) ([]domain.Crew, int, error)
	GetCrew(ctx context.Context, id int64) (*domain.Crew, error)
	CreateCrew(ctx context.Context, crew *domain.Crew) error
	UpdateCrew(ctx context.Context, crew *domain.Crew) error
	DeleteCrew(ctx context.Context, id int64) error
}

type CatalogService struct {
	countries     repository.CountryRepository
	cities        repository.CityRepository
	airports      repository.AirportRepository
	routes        repository.RouteRepository
	airplaneTypes repository.AirplaneTypeRepository
	airplanes     repository.AirplaneRepository
	crews         repository.CrewRepository
}

func NewCatalogService(
	countries repository.CountryRepository,
	cities repository.CityRepository,
	airports repository.AirportRepository,
	routes repository.RouteRepository,
	airplaneTypes repository.AirplaneTypeRepository,
	airplanes repository.AirplaneRepository,
	crews repository.CrewRepository,
) *CatalogService {
	return &CatalogService{
		countries:     countries,
		cities:        cities,
		airports:      airports,
		routes:        routes,
		airplaneTypes: airplaneTypes,
		airplanes:     airplanes,
		crews:         crews,
	}
}

func (s *CatalogService) ListCountries(ctx context.Context, limit, offset int) ([]domain.Country, int, error) {
	return s.countries.List(ctx, limit, offset)
}

func (s *CatalogService) GetCountry(ctx context.Context, id int64) (*domain.Country, error) {
	return s.countries.GetByID(ctx, id)
}

func (s *CatalogService) CreateCountry(ctx context.Context, country *domain.Country) error {
	if country.Name == "" {
		return domain.NewValidationError("name", "name is required")
	}
	return s.countries.Create(ctx, country)
}

func (s *CatalogService) UpdateCountry(ctx context.Context, country *domain.Country) error {
	if country.Name == "" {
		return domain.NewValidationError("name", "name is required")
	}
	return s.countries.Update(ctx, country)
}

func (s *CatalogService) DeleteCountry(ctx context.Context, id int64) error {
	return s.countries.Delete(ctx, id)
}

func (s *CatalogService) ListCities(ctx context.Context, limit, offset int) ([]domain.City, int, error) {
	return s.cities.List(ctx, limit, offset)
}

func (s *CatalogService) GetCity(ctx context.Context, id int64) (*domain.City, error) {
	return s.cities.GetByID(ctx, id)
}

func (s *CatalogService) CreateCity(ctx context.Context, city *domain.City) error {
	if city.Name == "" {
		return domain.NewValidationError("name", "name is required")
	}
	return s.cities.Create(ctx, city)
}

func (s *CatalogService) UpdateCity(ctx context.Context, city *domain.City) error {
	if city.Name == "" {
		return domain.NewValidationError("name", "name is required")
	}
	return s.cities.Update(ctx, city)
}

func (s *CatalogService) DeleteCity(ctx context.Context, id int64) error {
	return s.cities.Delete(ctx, id)
}

func (s *CatalogService) ListAirports(ctx context.Context, limit, offset int) ([]domain.Airport, int, error) {
	return s.airports.List(ctx, limit, offset)
}

func (s *CatalogService) GetAirport(ctx context.Context, id int64) (*domain.Airport, error) {
	return s.airports.GetByID(ctx, id)
}

func (s *CatalogService) CreateAirport(ctx context.Context, airport *domain.Airport) error {
	if airport.Name == "" {
		return domain.NewValidationError("name", "name is required")
	}
	return s.airports.Create(ctx, airport)
}

func (s *CatalogService) UpdateAirport(ctx context.Context, airport *domain.Airport) error {
	if airport.Name == "" {
		return domain.NewValidationError("name", "name is required")
	}
	return s.airports.Update(ctx, airport)
}

func (s *CatalogService) DeleteAirport(ctx context.Context, id int64) error {
	return s.airports.Delete(ctx, id)
}

func (s *CatalogService) ListRoutes(ctx context.Context, limit, offset int) ([]domain.Route, int, error) {
	return s.routes.List(ctx, limit, offset)
}

func (s *CatalogService) GetRoute(ctx context.Context, id int64) (*domain.Route, error) {
	return s.routes.GetByID(ctx, id)
}

func (s *CatalogService) CreateRoute(ctx context.Context, route *domain.Route) error {
	if err := validateRoute(route); err != nil {
		return err
	}
	return s.routes.Create(ctx, route)
}

func (s *CatalogService) UpdateRoute(ctx context.Context, route *domain.Route) error {
	if err := validateRoute(route); err != nil {
		return err
	}
	return s.routes.Update(ctx, route)
}

func (s *CatalogService) DeleteRoute(ctx context.Context, id int64) error {
	return s.routes.Delete(ctx, id)
}

func (s *CatalogService) ListAirplaneTypes(ctx context.Context, limit, offset int) ([]domain.AirplaneType, int, error) {
	return s.airplaneTypes.List(ctx, limit, offset)
}

func (s *CatalogService) GetAirplaneType(ctx context.Context, id int64) (*domain.AirplaneType, error) {
	return s.airplaneTypes.GetByID(ctx, id)
}

func (s *CatalogService) CreateAirplaneType(ctx context.Context, at *domain.AirplaneType) error {
	if at.Name == "" {
		return domain.NewValidationError("name", "name is required")
	}
	return s.airplaneTypes.Create(ctx, at)
}

func (s *CatalogService) UpdateAirplaneType(ctx context.Context, at *domain.AirplaneType) error {
	if at.Name == "" {
		return domain.NewValidationError("name", "name is required")
	}
	return s.airplaneTypes.Update(ctx, at)
}

func (s *CatalogService) DeleteAirplaneType(ctx context.Context, id int64) error {
	return s.airplaneTypes.Delete(ctx, id)
}

func (s *CatalogService) ListAirplanes(ctx context.Context, limit, offset int) ([]domain.Airplane, int, error) {
	return s.airplanes.List(ctx, limit, offset)
}

func (s *CatalogService) GetAirplane(ctx context.Context, id int64) (*domain.Airplane, error) {
	return s.airplanes.GetByID(ctx, id)
}

func (s *CatalogService) CreateAirplane(ctx context.Context, airplane *domain.Airplane) error {
	if err := validateAirplane(airplane); err != nil {
		return err
	}
	return s.airplanes.Create(ctx, airplane)
}

func (s *CatalogService) UpdateAirplane(ctx context.Context, airplane *domain.Airplane) error {
	if err := validateAirplane(airplane); err != nil {
		return err
	}
	return s.airplanes.Update(ctx, airplane)
}

func (s *CatalogService) DeleteAirplane(ctx context.Context, id int64) error {
	return s.airplanes.Delete(ctx, id)
}

func (s *CatalogService) ListCrews(ctx context.Context, limit, offset int) ([]domain.Crew, int, error) {
	return s.crews.List(ctx, limit, offset)
}

func (s *CatalogService) GetCrew(ctx context.Context, id int64) (*domain.Crew, error) {
	return s.crews.GetByID(ctx, id)
}

func (s *CatalogService) CreateCrew(ctx context.Context, crew *domain.Crew) error {
	if crew.FirstName == "" || crew.LastName == "" {
		return domain.NewValidationError("name", "first_name and last_name are required")
	}
	return s.crews.Create(ctx, crew)
}

func (s *CatalogService) UpdateCrew(ctx context.Context, crew *domain.Crew) error {
	if crew.FirstName == "" || crew.LastName == "" {
		return domain.NewValidationError("name", "first_name and last_name are required")
	}
	return s.crews.Update(ctx, crew)
}

func (s *CatalogService) DeleteCrew(ctx context.Context, id int64) error {
	return s.crews.Delete(ctx, id)
}

func validateRoute(route *domain.Route) error {
	if route.SourceID == route.DestinationID {
		return domain.NewValidationError("destination", "source and destination must differ")
	}
	if route.Distance <= 0 {
		return domain.NewValidationError("distance", "distance must be positive")
	}
	return nil
}

func validateAirplane(airplane *domain.Airplane) error {
	if airplane.Name == "" {
		return domain.NewValidationError("name", "name is required")
	}
	if airplane.Rows <= 0 {
		return domain.NewValidationError("rows", "rows must be positive")
	}
	if airplane.SeatsInRow <= 0 {
		return domain.NewValidationError("seats_in_row", "seats_in_row must be positive")
	}
	return nil
}

var _ CatalogUseCase = (*CatalogService)(nil)
