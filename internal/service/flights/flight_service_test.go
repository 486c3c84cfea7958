package flights

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/smelyanko/airport-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockFlightRepository struct {
	mock.Mock
}

func (m *MockFlightRepository) List(ctx context.Context, filter domain.FlightFilter, limit, offset int) ([]domain.Flight, int, error) {
	args := m.Called(ctx, filter, limit, offset)
	return args.Get(0).([]domain.Flight), args.Int(1), args.Error(2)
}

func (m *MockFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	args := m.Called(ctx, flight)
	return args.Error(0)
}

func (m *MockFlightRepository) Update(ctx context.Context, flight *domain.Flight) error {
	args := m.Called(ctx, flight)
	return args.Error(0)
}

func (m *MockFlightRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockFlightCache struct {
	mock.Mock
}

func (m *MockFlightCache) GetFlights(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightCache) SetFlights(ctx context.Context, flights []domain.Flight) error {
	args := m.Called(ctx, flights)
	return args.Error(0)
}

func (m *MockFlightCache) InvalidateFlights(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestFlightService_List_CacheHit(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockCache := &MockFlightCache{}
	service := NewFlightService(mockRepo, mockCache, time.Minute)

	ctx := context.Background()
	cached := []domain.Flight{{ID: 1}, {ID: 2}}
	mockCache.On("GetFlights", ctx).Return(cached, nil).Once()

	flights, total, err := service.List(ctx, domain.FlightFilter{}, 10, 0)

	assert.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, cached, flights)
	mockRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mockCache.AssertExpectations(t)
}

func TestFlightService_List_CacheMiss(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockCache := &MockFlightCache{}
	service := NewFlightService(mockRepo, mockCache, time.Minute)

	ctx := context.Background()
	stored := []domain.Flight{{ID: 1}}
	mockCache.On("GetFlights", ctx).Return(nil, nil).Once()
	mockRepo.On("List", ctx, domain.FlightFilter{}, 10, 0).Return(stored, 1, nil).Once()
	mockCache.On("SetFlights", ctx, stored).Return(nil).Once()

	flights, total, err := service.List(ctx, domain.FlightFilter{}, 10, 0)

	assert.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, stored, flights)
	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestFlightService_List_FilteredBypassesCache(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockCache := &MockFlightCache{}
	service := NewFlightService(mockRepo, mockCache, time.Minute)

	ctx := context.Background()
	filter := domain.FlightFilter{SourceIDs: []int64{1, 2}}
	stored := []domain.Flight{{ID: 3}}
	mockRepo.On("List", ctx, filter, 10, 0).Return(stored, 1, nil).Once()

	flights, total, err := service.List(ctx, filter, 10, 0)

	assert.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, stored, flights)
	mockCache.AssertNotCalled(t, "GetFlights", mock.Anything)
	mockCache.AssertNotCalled(t, "SetFlights", mock.Anything, mock.Anything)
}

func TestFlightService_List_SecondPageBypassesCache(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockCache := &MockFlightCache{}
	service := NewFlightService(mockRepo, mockCache, time.Minute)

	ctx := context.Background()
	mockRepo.On("List", ctx, domain.FlightFilter{}, 10, 10).Return([]domain.Flight{}, 25, nil).Once()

	_, total, err := service.List(ctx, domain.FlightFilter{}, 10, 10)

	assert.NoError(t, err)
	assert.Equal(t, 25, total)
	mockCache.AssertNotCalled(t, "GetFlights", mock.Anything)
}

func TestFlightService_List_MultiPageListingNotCached(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockCache := &MockFlightCache{}
	service := NewFlightService(mockRepo, mockCache, time.Minute)

	ctx := context.Background()
	stored := []domain.Flight{{ID: 1}, {ID: 2}}
	mockCache.On("GetFlights", ctx).Return(nil, nil).Once()
	mockRepo.On("List", ctx, domain.FlightFilter{}, 2, 0).Return(stored, 5, nil).Once()

	_, total, err := service.List(ctx, domain.FlightFilter{}, 2, 0)

	assert.NoError(t, err)
	assert.Equal(t, 5, total)
	mockCache.AssertNotCalled(t, "SetFlights", mock.Anything, mock.Anything)
}

func TestFlightService_Create_Success(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockCache := &MockFlightCache{}
	service := NewFlightService(mockRepo, mockCache, time.Minute)

	ctx := context.Background()
	departure := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	input := FlightInput{
		RouteID:       1,
		AirplaneID:    2,
		DepartureTime: departure,
		ArrivalTime:   departure.Add(2 * time.Hour),
		CrewIDs:       []int64{1, 2},
	}

	mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Flight")).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Flight).ID = 42
	}).Return(nil).Once()
	mockCache.On("InvalidateFlights", ctx).Return(nil).Once()
	mockRepo.On("GetByID", ctx, int64(42)).Return(&domain.Flight{ID: 42, RouteID: 1}, nil).Once()

	flight, err := service.Create(ctx, input)

	assert.NoError(t, err)
	assert.Equal(t, int64(42), flight.ID)
	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestFlightService_Create_ValidationErrors(t *testing.T) {
	departure := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	testCases := []struct {
		name        string
		input       FlightInput
		expectedErr string
	}{
		{
			name:        "Missing route",
			input:       FlightInput{AirplaneID: 2, DepartureTime: departure, ArrivalTime: departure.Add(time.Hour)},
			expectedErr: "route: route is required",
		},
		{
			name:        "Missing airplane",
			input:       FlightInput{RouteID: 1, DepartureTime: departure, ArrivalTime: departure.Add(time.Hour)},
			expectedErr: "airplane: airplane is required",
		},
		{
			name:        "Arrival before departure",
			input:       FlightInput{RouteID: 1, AirplaneID: 2, DepartureTime: departure, ArrivalTime: departure.Add(-time.Hour)},
			expectedErr: "arrival_time: arrival_time must be after departure_time",
		},
		{
			name:        "Arrival equals departure",
			input:       FlightInput{RouteID: 1, AirplaneID: 2, DepartureTime: departure, ArrivalTime: departure},
			expectedErr: "arrival_time: arrival_time must be after departure_time",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo := &MockFlightRepository{}
			service := NewFlightService(mockRepo, nil, 0)

			flight, err := service.Create(context.Background(), tc.input)

			assert.Nil(t, flight)
			assert.EqualError(t, err, tc.expectedErr)
			mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestFlightService_Delete_InvalidatesCache(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockCache := &MockFlightCache{}
	service := NewFlightService(mockRepo, mockCache, time.Minute)

	ctx := context.Background()
	mockRepo.On("Delete", ctx, int64(5)).Return(nil).Once()
	mockCache.On("InvalidateFlights", ctx).Return(nil).Once()

	err := service.Delete(ctx, 5)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestFlightService_Delete_RepositoryError(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockCache := &MockFlightCache{}
	service := NewFlightService(mockRepo, mockCache, time.Minute)

	ctx := context.Background()
	expectedErr := errors.New("database error")
	mockRepo.On("Delete", ctx, int64(5)).Return(expectedErr).Once()

	err := service.Delete(ctx, 5)

	assert.ErrorIs(t, err, expectedErr)
	mockCache.AssertNotCalled(t, "InvalidateFlights", mock.Anything)
}
