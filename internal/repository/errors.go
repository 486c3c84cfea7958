package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/smelyanko/airport-service/internal/domain"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"

	ticketSeatConstraint = "tickets_flight_row_seat_key"
)

// mapPGError translates driver errors into domain sentinels so the layers
// above never see pgx types.
func mapPGError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			if pgErr.ConstraintName == ticketSeatConstraint {
				return domain.ErrSeatTaken
			}
			return domain.ErrAlreadyExists
		case pgForeignKeyViolation:
			return domain.ErrNotFound
		}
	}
	return err
}
