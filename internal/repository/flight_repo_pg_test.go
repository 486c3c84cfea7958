package repository

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/smelyanko/airport-service/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestNewFlightRepository(t *testing.T) {
	pool := &pgxpool.Pool{}
	repo := NewFlightRepository(pool)
	assert.NotNil(t, repo)
}

func TestBuildFlightWhere(t *testing.T) {
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name         string
		filter       domain.FlightFilter
		expectedSQL  string
		expectedArgs int
	}{
		{
			name:   "Empty filter",
			filter: domain.FlightFilter{},
		},
		{
			name:         "Source only",
			filter:       domain.FlightFilter{SourceIDs: []int64{1, 2}},
			expectedSQL:  " WHERE r.source_id = ANY($1)",
			expectedArgs: 1,
		},
		{
			name:         "Source and destination",
			filter:       domain.FlightFilter{SourceIDs: []int64{1, 2}, DestinationIDs: []int64{3}},
			expectedSQL:  " WHERE r.source_id = ANY($1) AND r.destination_id = ANY($2)",
			expectedArgs: 2,
		},
		{
			name:         "Crew",
			filter:       domain.FlightFilter{CrewIDs: []int64{5}},
			expectedSQL:  " WHERE EXISTS (SELECT 1 FROM flight_crews fc2 WHERE fc2.flight_id = f.id AND fc2.crew_id = ANY($1))",
			expectedArgs: 1,
		},
		{
			name:         "Departure date",
			filter:       domain.FlightFilter{DepartureDate: &date},
			expectedSQL:  " WHERE f.departure_time::date = $1::date",
			expectedArgs: 1,
		},
		{
			name: "All fields",
			filter: domain.FlightFilter{
				SourceIDs:      []int64{1},
				DestinationIDs: []int64{2},
				CrewIDs:        []int64{3},
				DepartureDate:  &date,
				ArrivalDate:    &date,
			},
			expectedArgs: 5,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			where, args := buildFlightWhere(tc.filter)
			if tc.expectedSQL != "" {
				assert.Equal(t, tc.expectedSQL, where)
			}
			assert.Len(t, args, tc.expectedArgs)
		})
	}
}
