package domain

import "time"

type Order struct {
	ID        int64
	Number    string
	UserID    int64
	CreatedAt time.Time
	Tickets   []Ticket
}

type Ticket struct {
	ID       int64
	Row      int
	Seat     int
	FlightID int64
	OrderID  int64

	// projections filled on reads
	RouteSource      string
	RouteDestination string
	DepartureTime    time.Time
}

// ValidateSeat checks the seat against the airplane row width.
func ValidateSeat(seat, seatsInRow int) error {
	if seat < 1 || seat > seatsInRow {
		return NewValidationError("seat", "seat must be in range [1, %d]", seatsInRow)
	}
	return nil
}

// ValidateRow checks the row against the airplane row count.
func ValidateRow(row, rows int) error {
	if row < 1 || row > rows {
		return NewValidationError("row", "row must be in range [1, %d]", rows)
	}
	return nil
}

// ValidateTicket runs both range checks for a ticket on the given flight.
func ValidateTicket(row, seat int, flight *Flight) error {
	if err := ValidateSeat(seat, flight.AirplaneSeatsInRow); err != nil {
		return err
	}
	return ValidateRow(row, flight.AirplaneRows)
}
