package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/smelyanko/airport-service/internal/domain"
)

type FlightRepository interface {
	List(ctx context.Context, filter domain.FlightFilter, limit, offset int) ([]domain.Flight, int, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	Create(ctx context.Context, flight *domain.Flight) error
	Update(ctx context.Context, flight *domain.Flight) error
	Delete(ctx context.Context, id int64) error
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

const flightSelect = `
	SELECT f.id, f.route_id, f.airplane_id, f.departure_time, f.arrival_time, f.created_at, f.updated_at,
	       r.source_id, src.name, r.destination_id, dst.name, r.distance,
	       a.name, t.name, a.rows, a.seats_in_row,
	       COALESCE(cr.names, '{}'),
	       COALESCE(tk.sold, 0)
	FROM flights f
	JOIN routes r ON r.id = f.route_id
	JOIN airports src ON src.id = r.source_id
	JOIN airports dst ON dst.id = r.destination_id
	JOIN airplanes a ON a.id = f.airplane_id
	JOIN airplane_types t ON t.id = a.airplane_type_id
	LEFT JOIN LATERAL (
		SELECT array_agg(c.first_name || ' ' || c.last_name ORDER BY c.id) AS names
		FROM flight_crews fc JOIN crews c ON c.id = fc.crew_id
		WHERE fc.flight_id = f.id
	) cr ON TRUE
	LEFT JOIN LATERAL (
		SELECT count(*) AS sold FROM tickets WHERE tickets.flight_id = f.id
	) tk ON TRUE`

// buildFlightWhere renders filter conditions; ids within one field are
// OR-ed (= ANY), fields are AND-ed.
func buildFlightWhere(filter domain.FlightFilter) (string, []interface{}) {
	conds := make([]string, 0, 4)
	args := make([]interface{}, 0, 4)

	if len(filter.SourceIDs) > 0 {
		args = append(args, filter.SourceIDs)
		conds = append(conds, fmt.Sprintf("r.source_id = ANY($%d)", len(args)))
	}
	if len(filter.DestinationIDs) > 0 {
		args = append(args, filter.DestinationIDs)
		conds = append(conds, fmt.Sprintf("r.destination_id = ANY($%d)", len(args)))
	}
	if len(filter.CrewIDs) > 0 {
		args = append(args, filter.CrewIDs)
		conds = append(conds, fmt.Sprintf("EXISTS (SELECT 1 FROM flight_crews fc2 WHERE fc2.flight_id = f.id AND fc2.crew_id = ANY($%d))", len(args)))
	}
	if filter.DepartureDate != nil {
		args = append(args, *filter.DepartureDate)
		conds = append(conds, fmt.Sprintf("f.departure_time::date = $%d::date", len(args)))
	}
	if filter.ArrivalDate != nil {
		args = append(args, *filter.ArrivalDate)
		conds = append(conds, fmt.Sprintf("f.arrival_time::date = $%d::date", len(args)))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *PGFlightRepository) List(ctx context.Context, filter domain.FlightFilter, limit, offset int) ([]domain.Flight, int, error) {
	where, args := buildFlightWhere(filter)

	countQuery := `SELECT count(*) FROM flights f JOIN routes r ON r.id = f.route_id` + where
	var total int
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := flightSelect + where + fmt.Sprintf(" ORDER BY f.departure_time LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		var f domain.Flight
		if err := scanFlight(rows, &f); err != nil {
			return nil, 0, err
		}
		flights = append(flights, f)
	}
	return flights, total, rows.Err()
}

func scanFlight(row pgx.Row, f *domain.Flight) error {
	var sold int
	if err := row.Scan(&f.ID, &f.RouteID, &f.AirplaneID, &f.DepartureTime, &f.ArrivalTime, &f.CreatedAt, &f.UpdatedAt,
		&f.RouteSourceID, &f.RouteSource, &f.RouteDestinationID, &f.RouteDestination, &f.RouteDistance,
		&f.AirplaneName, &f.AirplaneTypeName, &f.AirplaneRows, &f.AirplaneSeatsInRow,
		&f.CrewNames, &sold); err != nil {
		return err
	}
	f.TicketsAvailable = f.SeatsLeft(sold)
	return nil
}

func (r *PGFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	var f domain.Flight
	if err := scanFlight(r.db.QueryRow(ctx, flightSelect+` WHERE f.id=$1`, id), &f); err != nil {
		return nil, mapPGError(err)
	}

	crewRows, err := r.db.Query(ctx, `SELECT crew_id FROM flight_crews WHERE flight_id=$1 ORDER BY crew_id`, id)
	if err != nil {
		return nil, err
	}
	defer crewRows.Close()
	for crewRows.Next() {
		var crewID int64
		if err := crewRows.Scan(&crewID); err != nil {
			return nil, err
		}
		f.CrewIDs = append(f.CrewIDs, crewID)
	}
	if err := crewRows.Err(); err != nil {
		return nil, err
	}

	seatRows, err := r.db.Query(ctx, `SELECT row, seat FROM tickets WHERE flight_id=$1 ORDER BY row, seat`, id)
	if err != nil {
		return nil, err
	}
	defer seatRows.Close()
	for seatRows.Next() {
		var s domain.SeatRef
		if err := seatRows.Scan(&s.Row, &s.Seat); err != nil {
			return nil, err
		}
		f.TakenSeats = append(f.TakenSeats, s)
	}
	return &f, seatRows.Err()
}

func (r *PGFlightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := tx.QueryRow(ctx, `INSERT INTO flights (route_id, airplane_id, departure_time, arrival_time)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`,
		flight.RouteID, flight.AirplaneID, flight.DepartureTime, flight.ArrivalTime).
		Scan(&flight.ID, &flight.CreatedAt, &flight.UpdatedAt); err != nil {
		return mapPGError(err)
	}

	for _, crewID := range flight.CrewIDs {
		if _, err := tx.Exec(ctx, `INSERT INTO flight_crews (flight_id, crew_id) VALUES ($1, $2)`, flight.ID, crewID); err != nil {
			return mapPGError(err)
		}
	}

	return tx.Commit(ctx)
}

func (r *PGFlightRepository) Update(ctx context.Context, flight *domain.Flight) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	res, err := tx.Exec(ctx, `UPDATE flights SET route_id=$1, airplane_id=$2, departure_time=$3, arrival_time=$4, updated_at=now() WHERE id=$5`,
		flight.RouteID, flight.AirplaneID, flight.DepartureTime, flight.ArrivalTime, flight.ID)
	if err != nil {
		return mapPGError(err)
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM flight_crews WHERE flight_id=$1`, flight.ID); err != nil {
		return err
	}
	for _, crewID := range flight.CrewIDs {
		if _, err := tx.Exec(ctx, `INSERT INTO flight_crews (flight_id, crew_id) VALUES ($1, $2)`, flight.ID, crewID); err != nil {
			return mapPGError(err)
		}
	}

	return tx.Commit(ctx)
}

// Delete removes the flight together with its tickets. The schema also
// cascades, but the tickets are removed explicitly so the deletion
// semantics do not depend on it.
func (r *PGFlightRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM tickets WHERE flight_id=$1`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM flight_crews WHERE flight_id=$1`, id); err != nil {
		return err
	}
	res, err := tx.Exec(ctx, `DELETE FROM flights WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return tx.Commit(ctx)
}

var _ FlightRepository = (*PGFlightRepository)(nil)
