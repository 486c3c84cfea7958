package orders

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/smelyanko/airport-service/internal/domain"
	"github.com/smelyanko/airport-service/internal/kafka"
	"github.com/smelyanko/airport-service/internal/repository"
)

type OrderUseCase interface {
	CreateOrder(ctx context.Context, input CreateOrderInput) (*domain.Order, error)
	ListOrders(ctx context.Context, userID int64, limit, offset int) ([]domain.Order, int, error)
	GetOrder(ctx context.Context, userID, id int64) (*domain.Order, error)
	DeleteOrder(ctx context.Context, userID, id int64) error
	ListTickets(ctx context.Context, limit, offset int) ([]domain.Ticket, int, error)
	GetTicket(ctx context.Context, id int64) (*domain.Ticket, error)
}

type Cache interface {
	AcquireSeatLock(ctx context.Context, flightID int64, row, seat int, ttl time.Duration) (bool, error)
	ReleaseSeatLock(ctx context.Context, flightID int64, row, seat int) error
	InvalidateFlights(ctx context.Context) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type OrderService struct {
	orders             repository.OrderRepository
	tickets            repository.TicketRepository
	flights            repository.FlightRepository
	cache              Cache
	producer           Producer
	orderTopic         string
	notificationsTopic string
	seatLockTTL        time.Duration
}

type CreateOrderInput struct {
	UserID    int64
	UserEmail string
	Tickets   []TicketSpec
}

type TicketSpec struct {
	FlightID int64 `json:"flight"`
	Row      int   `json:"row"`
	Seat     int   `json:"seat"`
}

type OrderServiceOption func(*OrderService)

func WithNotificationsTopic(topic string) OrderServiceOption {
	return func(s *OrderService) {
		s.notificationsTopic = topic
	}
}

func NewOrderService(
	orders repository.OrderRepository,
	tickets repository.TicketRepository,
	flights repository.FlightRepository,
	cache Cache,
	producer Producer,
	orderTopic string,
	seatLockTTL time.Duration,
	opts ...OrderServiceOption,
) *OrderService {
	service := &OrderService{
		orders:      orders,
		tickets:     tickets,
		flights:     flights,
		cache:       cache,
		producer:    producer,
		orderTopic:  orderTopic,
		seatLockTTL: seatLockTTL,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// CreateOrder validates every ticket against its flight's airplane, then
// persists the order and all tickets in one transaction. Validation is
// finished before the first write; once the transaction starts the only
// remaining failure is the unique index losing a concurrent race.
func (s *OrderService) CreateOrder(ctx context.Context, input CreateOrderInput) (*domain.Order, error) {
	if len(input.Tickets) == 0 {
		return nil, domain.NewValidationError("tickets", "order must contain at least one ticket")
	}

	flightsByID := make(map[int64]*domain.Flight)
	seen := make(map[TicketSpec]struct{}, len(input.Tickets))

	for _, spec := range input.Tickets {
		flight, ok := flightsByID[spec.FlightID]
		if !ok {
			var err error
			flight, err = s.flights.GetByID(ctx, spec.FlightID)
			if err != nil {
				return nil, err
			}
			flightsByID[spec.FlightID] = flight
		}

		if err := domain.ValidateTicket(spec.Row, spec.Seat, flight); err != nil {
			return nil, err
		}
		if _, dup := seen[spec]; dup {
			return nil, domain.NewValidationError("tickets", "duplicate seat (row %d, seat %d) on flight %d", spec.Row, spec.Seat, spec.FlightID)
		}
		seen[spec] = struct{}{}

		for _, taken := range flight.TakenSeats {
			if taken.Row == spec.Row && taken.Seat == spec.Seat {
				return nil, domain.ErrSeatTaken
			}
		}
	}

	locked, err := s.lockSeats(ctx, input.Tickets)
	if err != nil {
		return nil, err
	}
	defer s.releaseSeats(ctx, locked)

	order := &domain.Order{
		Number:  uuid.NewString(),
		UserID:  input.UserID,
		Tickets: make([]domain.Ticket, 0, len(input.Tickets)),
	}
	for _, spec := range input.Tickets {
		order.Tickets = append(order.Tickets, domain.Ticket{
			Row:      spec.Row,
			Seat:     spec.Seat,
			FlightID: spec.FlightID,
		})
	}

	if err := s.orders.CreateWithTickets(ctx, order); err != nil {
		return nil, err
	}
	s.invalidateFlights(ctx)

	if err := s.publish(ctx, "order_created", order, input.UserEmail); err != nil {
		fmt.Printf("WARNING: Failed to publish order_created event for order %s: %v\n", order.Number, err)
	}
	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context, userID int64, limit, offset int) ([]domain.Order, int, error) {
	return s.orders.ListByUser(ctx, userID, limit, offset)
}

// GetOrder is scoped to the owner: someone else's order is reported as
// not found, never as forbidden.
func (s *OrderService) GetOrder(ctx context.Context, userID, id int64) (*domain.Order, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return order, nil
}

func (s *OrderService) DeleteOrder(ctx context.Context, userID, id int64) error {
	order, err := s.GetOrder(ctx, userID, id)
	if err != nil {
		return err
	}
	if err := s.orders.Delete(ctx, order.ID); err != nil {
		return err
	}
	s.invalidateFlights(ctx)
	if err := s.publish(ctx, "order_deleted", order, ""); err != nil {
		fmt.Printf("WARNING: Failed to publish order_deleted event for order %s: %v\n", order.Number, err)
	}
	return nil
}

func (s *OrderService) ListTickets(ctx context.Context, limit, offset int) ([]domain.Ticket, int, error) {
	return s.tickets.List(ctx, limit, offset)
}

func (s *OrderService) GetTicket(ctx context.Context, id int64) (*domain.Ticket, error) {
	return s.tickets.GetByID(ctx, id)
}

// lockSeats takes redis holds on every requested seat. On any refusal the
// holds taken so far are released and the booking fails fast.
func (s *OrderService) lockSeats(ctx context.Context, specs []TicketSpec) ([]TicketSpec, error) {
	if s.cache == nil {
		return nil, nil
	}

	locked := make([]TicketSpec, 0, len(specs))
	for _, spec := range specs {
		ok, err := s.cache.AcquireSeatLock(ctx, spec.FlightID, spec.Row, spec.Seat, s.seatLockTTL)
		if err != nil {
			s.releaseSeats(ctx, locked)
			return nil, err
		}
		if !ok {
			s.releaseSeats(ctx, locked)
			return nil, domain.ErrSeatTaken
		}
		locked = append(locked, spec)
	}
	return locked, nil
}

// invalidateFlights drops the cached flight listing: it carries
// tickets_available, so every sold or released seat makes it stale.
func (s *OrderService) invalidateFlights(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateFlights(ctx); err != nil {
		log.Printf("invalidate flights cache: %v", err)
	}
}

func (s *OrderService) releaseSeats(ctx context.Context, locked []TicketSpec) {
	if s.cache == nil {
		return
	}
	for _, spec := range locked {
		if err := s.cache.ReleaseSeatLock(ctx, spec.FlightID, spec.Row, spec.Seat); err != nil {
			log.Printf("release seat lock flight=%d row=%d seat=%d: %v", spec.FlightID, spec.Row, spec.Seat, err)
		}
	}
}

func (s *OrderService) publish(ctx context.Context, eventType string, order *domain.Order, email string) error {
	if s.producer == nil || s.orderTopic == "" {
		return nil
	}
	event := kafka.OrderEvent{
		Type:        eventType,
		OrderNumber: order.Number,
		UserEmail:   email,
		CreatedAt:   order.CreatedAt,
		Tickets:     make([]kafka.TicketEvent, 0, len(order.Tickets)),
	}
	for _, t := range order.Tickets {
		event.Tickets = append(event.Tickets, kafka.TicketEvent{FlightID: t.FlightID, Row: t.Row, Seat: t.Seat})
	}
	if err := s.producer.Publish(ctx, s.orderTopic, order.Number, event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, order.Number, event)
	}
	return nil
}

var _ OrderUseCase = (*OrderService)(nil)
