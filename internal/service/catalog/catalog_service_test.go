package catalog

import (
	"context"
	"testing"

	"github.com/smelyanko/airport-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRouteRepository struct {
	mock.Mock
}

func (m *MockRouteRepository) List(ctx context.Context, limit, offset int) ([]domain.Route, int, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]domain.Route), args.Int(1), args.Error(2)
}

func (m *MockRouteRepository) GetByID(ctx context.Context, id int64) (*domain.Route, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Route), args.Error(1)
}

func (m *MockRouteRepository) Create(ctx context.Context, route *domain.Route) error {
	args := m.Called(ctx, route)
	return args.Error(0)
}

func (m *MockRouteRepository) Update(ctx context.Context, route *domain.Route) error {
	args := m.Called(ctx, route)
	return args.Error(0)
}

func (m *MockRouteRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockAirplaneRepository struct {
	mock.Mock
}

func (m *MockAirplaneRepository) List(ctx context.Context, limit, offset int) ([]domain.Airplane, int, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]domain.Airplane), args.Int(1), args.Error(2)
}

func (m *MockAirplaneRepository) GetByID(ctx context.Context, id int64) (*domain.Airplane, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Airplane), args.Error(1)
}

func (m *MockAirplaneRepository) Create(ctx context.Context, airplane *domain.Airplane) error {
	args := m.Called(ctx, airplane)
	return args.Error(0)
}

func (m *MockAirplaneRepository) Update(ctx context.Context, airplane *domain.Airplane) error {
	args := m.Called(ctx, airplane)
	return args.Error(0)
}

func (m *MockAirplaneRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCrewRepository struct {
	mock.Mock
}

func (m *MockCrewRepository) List(ctx context.Context, limit, offset int) ([]domain.Crew, int, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]domain.Crew), args.Int(1), args.Error(2)
}

func (m *MockCrewRepository) GetByID(ctx context.Context, id int64) (*domain.Crew, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Crew), args.Error(1)
}

func (m *MockCrewRepository) Create(ctx context.Context, crew *domain.Crew) error {
	args := m.Called(ctx, crew)
	return args.Error(0)
}

func (m *MockCrewRepository) Update(ctx context.Context, crew *domain.Crew) error {
	args := m.Called(ctx, crew)
	return args.Error(0)
}

func (m *MockCrewRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestCatalogService_CreateRoute(t *testing.T) {
	testCases := []struct {
		name        string
		route       *domain.Route
		expectedErr string
	}{
		{
			name:  "Valid route",
			route: &domain.Route{SourceID: 1, DestinationID: 2, Distance: 500},
		},
		{
			name:        "Same source and destination",
			route:       &domain.Route{SourceID: 1, DestinationID: 1, Distance: 500},
			expectedErr: "destination: source and destination must differ",
		},
		{
			name:        "Zero distance",
			route:       &domain.Route{SourceID: 1, DestinationID: 2, Distance: 0},
			expectedErr: "distance: distance must be positive",
		},
		{
			name:        "Negative distance",
			route:       &domain.Route{SourceID: 1, DestinationID: 2, Distance: -10},
			expectedErr: "distance: distance must be positive",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockRoutes := &MockRouteRepository{}
			service := &CatalogService{routes: mockRoutes}

			if tc.expectedErr == "" {
				mockRoutes.On("Create", mock.Anything, tc.route).Return(nil).Once()
			}

			err := service.CreateRoute(context.Background(), tc.route)

			if tc.expectedErr == "" {
				assert.NoError(t, err)
				mockRoutes.AssertExpectations(t)
			} else {
				assert.EqualError(t, err, tc.expectedErr)
				mockRoutes.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestCatalogService_CreateAirplane(t *testing.T) {
	testCases := []struct {
		name        string
		airplane    *domain.Airplane
		expectedErr string
	}{
		{
			name:     "Valid airplane",
			airplane: &domain.Airplane{Name: "Boeing 737", AirplaneTypeID: 1, Rows: 20, SeatsInRow: 6},
		},
		{
			name:        "Missing name",
			airplane:    &domain.Airplane{AirplaneTypeID: 1, Rows: 20, SeatsInRow: 6},
			expectedErr: "name: name is required",
		},
		{
			name:        "Zero rows",
			airplane:    &domain.Airplane{Name: "Boeing 737", AirplaneTypeID: 1, Rows: 0, SeatsInRow: 6},
			expectedErr: "rows: rows must be positive",
		},
		{
			name:        "Negative seats in row",
			airplane:    &domain.Airplane{Name: "Boeing 737", AirplaneTypeID: 1, Rows: 20, SeatsInRow: -1},
			expectedErr: "seats_in_row: seats_in_row must be positive",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockAirplanes := &MockAirplaneRepository{}
			service := &CatalogService{airplanes: mockAirplanes}

			if tc.expectedErr == "" {
				mockAirplanes.On("Create", mock.Anything, tc.airplane).Return(nil).Once()
			}

			err := service.CreateAirplane(context.Background(), tc.airplane)

			if tc.expectedErr == "" {
				assert.NoError(t, err)
				mockAirplanes.AssertExpectations(t)
			} else {
				assert.EqualError(t, err, tc.expectedErr)
				mockAirplanes.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestCatalogService_CreateCrew_RequiresBothNames(t *testing.T) {
	mockCrews := &MockCrewRepository{}
	service := &CatalogService{crews: mockCrews}

	err := service.CreateCrew(context.Background(), &domain.Crew{FirstName: "Ivan"})
	assert.EqualError(t, err, "name: first_name and last_name are required")

	err = service.CreateCrew(context.Background(), &domain.Crew{LastName: "Petrov"})
	assert.EqualError(t, err, "name: first_name and last_name are required")

	mockCrews.On("Create", mock.Anything, mock.AnythingOfType("*domain.Crew")).Return(nil).Once()
	err = service.CreateCrew(context.Background(), &domain.Crew{FirstName: "Ivan", LastName: "Petrov"})
	assert.NoError(t, err)
	mockCrews.AssertExpectations(t)
}

func TestCatalogService_ListRoutes(t *testing.T) {
	mockRoutes := &MockRouteRepository{}
	service := &CatalogService{routes: mockRoutes}

	ctx := context.Background()
	stored := []domain.Route{{ID: 1, SourceID: 1, DestinationID: 2, Distance: 500}}
	mockRoutes.On("List", ctx, 10, 0).Return(stored, 1, nil).Once()

	routes, total, err := service.ListRoutes(ctx, 10, 0)

	assert.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, stored, routes)
}
