package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/smelyanko/airport-service/internal/domain"
)

type OrderRepository interface {
	CreateWithTickets(ctx context.Context, order *domain.Order) error
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Order, int, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	Delete(ctx context.Context, id int64) error
}

type TicketRepository interface {
	List(ctx context.Context, limit, offset int) ([]domain.Ticket, int, error)
	GetByID(ctx context.Context, id int64) (*domain.Ticket, error)
}

type PGOrderRepository struct {
	db *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) OrderRepository {
	return &PGOrderRepository{db: db}
}

// CreateWithTickets persists the order and all of its tickets in one
// transaction: a failed ticket insert rolls back the whole order. The
// per-flight (row, seat) unique index settles concurrent bookings.
func (r *PGOrderRepository) CreateWithTickets(ctx context.Context, order *domain.Order) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := tx.QueryRow(ctx, `INSERT INTO orders (number, user_id) VALUES ($1, $2) RETURNING id, created_at`,
		order.Number, order.UserID).Scan(&order.ID, &order.CreatedAt); err != nil {
		return mapPGError(err)
	}

	for i := range order.Tickets {
		t := &order.Tickets[i]
		t.OrderID = order.ID
		if err := tx.QueryRow(ctx, `INSERT INTO tickets (row, seat, flight_id, order_id) VALUES ($1, $2, $3, $4) RETURNING id`,
			t.Row, t.Seat, t.FlightID, t.OrderID).Scan(&t.ID); err != nil {
			return mapPGError(err)
		}
	}

	return tx.Commit(ctx)
}

const orderTicketSelect = `
	SELECT t.id, t.row, t.seat, t.flight_id, t.order_id, src.name, dst.name, f.departure_time
	FROM tickets t
	JOIN flights f ON f.id = t.flight_id
	JOIN routes r ON r.id = f.route_id
	JOIN airports src ON src.id = r.source_id
	JOIN airports dst ON dst.id = r.destination_id`

func (r *PGOrderRepository) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Order, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM orders WHERE user_id=$1`, userID).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, `SELECT id, number, user_id, created_at FROM orders WHERE user_id=$1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	ids := make([]int64, 0)
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.Number, &o.UserID, &o.CreatedAt); err != nil {
			return nil, 0, err
		}
		orders = append(orders, o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	if len(orders) == 0 {
		return orders, total, nil
	}

	ticketRows, err := r.db.Query(ctx, orderTicketSelect+` WHERE t.order_id = ANY($1) ORDER BY t.row, t.seat`, ids)
	if err != nil {
		return nil, 0, err
	}
	defer ticketRows.Close()

	byOrder := make(map[int64][]domain.Ticket, len(orders))
	for ticketRows.Next() {
		var t domain.Ticket
		if err := ticketRows.Scan(&t.ID, &t.Row, &t.Seat, &t.FlightID, &t.OrderID, &t.RouteSource, &t.RouteDestination, &t.DepartureTime); err != nil {
			return nil, 0, err
		}
		byOrder[t.OrderID] = append(byOrder[t.OrderID], t)
	}
	if err := ticketRows.Err(); err != nil {
		return nil, 0, err
	}
	for i := range orders {
		orders[i].Tickets = byOrder[orders[i].ID]
	}
	return orders, total, nil
}

func (r *PGOrderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	var o domain.Order
	err := r.db.QueryRow(ctx, `SELECT id, number, user_id, created_at FROM orders WHERE id=$1`, id).
		Scan(&o.ID, &o.Number, &o.UserID, &o.CreatedAt)
	if err != nil {
		return nil, mapPGError(err)
	}

	rows, err := r.db.Query(ctx, orderTicketSelect+` WHERE t.order_id=$1 ORDER BY t.row, t.seat`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var t domain.Ticket
		if err := rows.Scan(&t.ID, &t.Row, &t.Seat, &t.FlightID, &t.OrderID, &t.RouteSource, &t.RouteDestination, &t.DepartureTime); err != nil {
			return nil, err
		}
		o.Tickets = append(o.Tickets, t)
	}
	return &o, rows.Err()
}

// Delete removes the order and its tickets explicitly inside one
// transaction.
func (r *PGOrderRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM tickets WHERE order_id=$1`, id); err != nil {
		return err
	}
	res, err := tx.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return tx.Commit(ctx)
}

type PGTicketRepository struct {
	db *pgxpool.Pool
}

func NewTicketRepository(db *pgxpool.Pool) TicketRepository {
	return &PGTicketRepository{db: db}
}

func (r *PGTicketRepository) List(ctx context.Context, limit, offset int) ([]domain.Ticket, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM tickets`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, orderTicketSelect+` ORDER BY t.id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	tickets := make([]domain.Ticket, 0)
	for rows.Next() {
		var t domain.Ticket
		if err := rows.Scan(&t.ID, &t.Row, &t.Seat, &t.FlightID, &t.OrderID, &t.RouteSource, &t.RouteDestination, &t.DepartureTime); err != nil {
			return nil, 0, err
		}
		tickets = append(tickets, t)
	}
	return tickets, total, rows.Err()
}

func (r *PGTicketRepository) GetByID(ctx context.Context, id int64) (*domain.Ticket, error) {
	var t domain.Ticket
	err := r.db.QueryRow(ctx, orderTicketSelect+` WHERE t.id=$1`, id).
		Scan(&t.ID, &t.Row, &t.Seat, &t.FlightID, &t.OrderID, &t.RouteSource, &t.RouteDestination, &t.DepartureTime)
	if err != nil {
		return nil, mapPGError(err)
	}
	return &t, nil
}

var _ OrderRepository = (*PGOrderRepository)(nil)
var _ TicketRepository = (*PGTicketRepository)(nil)
