package domain

import "time"

type Flight struct {
	ID            int64
	RouteID       int64
	AirplaneID    int64
	DepartureTime time.Time
	ArrivalTime   time.Time
	CrewIDs       []int64
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// projections filled on reads
	RouteSource        string
	RouteDestination   string
	RouteSourceID      int64
	RouteDestinationID int64
	RouteDistance      int
	AirplaneName       string
	AirplaneTypeName   string
	AirplaneRows       int
	AirplaneSeatsInRow int
	CrewNames          []string
	TicketsAvailable   int
	TakenSeats         []SeatRef
}

// SeatRef identifies one seat on an airplane.
type SeatRef struct {
	Row  int `json:"row"`
	Seat int `json:"seat"`
}

// TotalSeats of the airplane operating this flight.
func (f Flight) TotalSeats() int {
	return f.AirplaneRows * f.AirplaneSeatsInRow
}

// SeatsLeft derives availability from the sold-ticket count.
func (f Flight) SeatsLeft(sold int) int {
	return f.TotalSeats() - sold
}

// FlightFilter narrows flight listings. Empty slices and nil times mean
// no restriction; ids within one field are OR-ed, fields are AND-ed.
type FlightFilter struct {
	SourceIDs      []int64
	DestinationIDs []int64
	CrewIDs        []int64
	DepartureDate  *time.Time
	ArrivalDate    *time.Time
}

func (f FlightFilter) IsEmpty() bool {
	return len(f.SourceIDs) == 0 &&
		len(f.DestinationIDs) == 0 &&
		len(f.CrewIDs) == 0 &&
		f.DepartureDate == nil &&
		f.ArrivalDate == nil
}
