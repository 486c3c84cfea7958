package repository

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/smelyanko/airport-service/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestMapPGError(t *testing.T) {
	opaque := errors.New("connection refused")

	testCases := []struct {
		name     string
		err      error
		expected error
	}{
		{name: "Nil", err: nil, expected: nil},
		{name: "No rows", err: pgx.ErrNoRows, expected: domain.ErrNotFound},
		{
			name:     "Seat unique violation",
			err:      &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: ticketSeatConstraint},
			expected: domain.ErrSeatTaken,
		},
		{
			name:     "Other unique violation",
			err:      &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "users_email_key"},
			expected: domain.ErrAlreadyExists,
		},
		{
			name:     "Foreign key violation",
			err:      &pgconn.PgError{Code: pgForeignKeyViolation},
			expected: domain.ErrNotFound,
		},
		{name: "Opaque error passes through", err: opaque, expected: opaque},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, mapPGError(tc.err))
		})
	}
}
