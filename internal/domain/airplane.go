package domain

import "fmt"

type AirplaneType struct {
	ID   int64
	Name string
}

type Airplane struct {
	ID             int64
	Name           string
	Rows           int
	SeatsInRow     int
	AirplaneTypeID int64

	TypeName string
}

// TotalSeats is derived, never stored.
func (a Airplane) TotalSeats() int {
	return a.Rows * a.SeatsInRow
}

type Crew struct {
	ID        int64
	FirstName string
	LastName  string
}

func (c Crew) FullName() string {
	return fmt.Sprintf("%s %s", c.FirstName, c.LastName)
}
