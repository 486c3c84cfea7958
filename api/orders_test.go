package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/smelyanko/airport-service/internal/domain"
	"github.com/smelyanko/airport-service/internal/service/orders"
	"github.com/smelyanko/airport-service/internal/service/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockOrderUseCase struct {
	mock.Mock
}

func (m *MockOrderUseCase) CreateOrder(ctx context.Context, input orders.CreateOrderInput) (*domain.Order, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderUseCase) ListOrders(ctx context.Context, userID int64, limit, offset int) ([]domain.Order, int, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]domain.Order), args.Int(1), args.Error(2)
}

func (m *MockOrderUseCase) GetOrder(ctx context.Context, userID, id int64) (*domain.Order, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderUseCase) DeleteOrder(ctx context.Context, userID, id int64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *MockOrderUseCase) ListTickets(ctx context.Context, limit, offset int) ([]domain.Ticket, int, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]domain.Ticket), args.Int(1), args.Error(2)
}

func (m *MockOrderUseCase) GetTicket(ctx context.Context, id int64) (*domain.Ticket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ticket), args.Error(1)
}

type MockUserUseCase struct {
	mock.Mock
}

func (m *MockUserUseCase) Register(ctx context.Context, input users.RegisterInput) (*domain.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserUseCase) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *MockUserUseCase) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserUseCase) List(ctx context.Context, limit, offset int) ([]domain.User, int, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]domain.User), args.Int(1), args.Error(2)
}

// authAs injects claims the way the auth middleware would.
func authAs(userID int64, admin bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ctxUserID, userID)
		c.Set(ctxIsAdmin, admin)
		c.Next()
	}
}

func newOrderRouter(service orders.OrderUseCase, userSvc users.UserUseCase, userID int64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewOrderHandler(service, userSvc, Paginator{DefaultSize: 50})
	group := router.Group("/orders", authAs(userID, false))
	handler.Register(group)
	return router
}

func TestOrderHandler_Create(t *testing.T) {
	mockService := &MockOrderUseCase{}
	mockUsers := &MockUserUseCase{}
	router := newOrderRouter(mockService, mockUsers, 7)

	created := &domain.Order{
		ID:        10,
		Number:    "a2f1c430-8c7e-4a7e-9f6b-1f0f8412cf55",
		UserID:    7,
		CreatedAt: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		Tickets:   []domain.Ticket{{ID: 1, Row: 1, Seat: 1, FlightID: 4}},
	}
	mockUsers.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{ID: 7, Email: "test@example.com"}, nil).Once()
	mockService.On("CreateOrder", mock.Anything, orders.CreateOrderInput{
		UserID:    7,
		UserEmail: "test@example.com",
		Tickets:   []orders.TicketSpec{{FlightID: 4, Row: 1, Seat: 1}},
	}).Return(created, nil).Once()

	body := bytes.NewBufferString(`{"tickets": [{"flight": 4, "row": 1, "seat": 1}]}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/orders/", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp orderResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(10), resp.ID)
	assert.Equal(t, created.Number, resp.Number)
	assert.Len(t, resp.Tickets, 1)

	mockService.AssertExpectations(t)
	mockUsers.AssertExpectations(t)
}

func TestOrderHandler_Create_BadJSON(t *testing.T) {
	mockService := &MockOrderUseCase{}
	mockUsers := &MockUserUseCase{}
	router := newOrderRouter(mockService, mockUsers, 7)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/orders/", bytes.NewBufferString(`{broken`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}

func TestOrderHandler_Create_SeatTaken(t *testing.T) {
	mockService := &MockOrderUseCase{}
	mockUsers := &MockUserUseCase{}
	router := newOrderRouter(mockService, mockUsers, 7)

	mockUsers.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{ID: 7, Email: "test@example.com"}, nil).Once()
	mockService.On("CreateOrder", mock.Anything, mock.Anything).Return(nil, domain.ErrSeatTaken).Once()

	body := bytes.NewBufferString(`{"tickets": [{"flight": 4, "row": 1, "seat": 1}]}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/orders/", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestOrderHandler_Create_ValidationError(t *testing.T) {
	mockService := &MockOrderUseCase{}
	mockUsers := &MockUserUseCase{}
	router := newOrderRouter(mockService, mockUsers, 7)

	mockUsers.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{ID: 7, Email: "test@example.com"}, nil).Once()
	mockService.On("CreateOrder", mock.Anything, mock.Anything).
		Return(nil, domain.NewValidationError("seat", "seat must be in range [1, %d]", 6)).Once()

	body := bytes.NewBufferString(`{"tickets": [{"flight": 4, "row": 1, "seat": 7}]}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/orders/", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "seat must be in range [1, 6]", resp["seat"])
}

func TestOrderHandler_Get_NotFound(t *testing.T) {
	mockService := &MockOrderUseCase{}
	mockUsers := &MockUserUseCase{}
	router := newOrderRouter(mockService, mockUsers, 7)

	mockService.On("GetOrder", mock.Anything, int64(7), int64(10)).Return(nil, domain.ErrNotFound).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/orders/10", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOrderHandler_List(t *testing.T) {
	mockService := &MockOrderUseCase{}
	mockUsers := &MockUserUseCase{}
	router := newOrderRouter(mockService, mockUsers, 7)

	stored := []domain.Order{{ID: 10, Number: "n-1", UserID: 7}}
	mockService.On("ListOrders", mock.Anything, int64(7), 50, 0).Return(stored, 1, nil).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/orders/", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var page PageResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, 1, page.Count)
	assert.Equal(t, 50, page.PageSize)
}

func TestOrderHandler_Delete(t *testing.T) {
	mockService := &MockOrderUseCase{}
	mockUsers := &MockUserUseCase{}
	router := newOrderRouter(mockService, mockUsers, 7)

	mockService.On("DeleteOrder", mock.Anything, int64(7), int64(10)).Return(nil).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/orders/10", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockService.AssertExpectations(t)
}
