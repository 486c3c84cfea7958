package domain

type Country struct {
	ID   int64
	Name string
}

type City struct {
	ID        int64
	Name      string
	CountryID int64

	CountryName string
}

type Airport struct {
	ID            int64
	Name          string
	ClosestCityID int64

	CityName    string
	CountryName string
}

type Route struct {
	ID            int64
	SourceID      int64
	DestinationID int64
	Distance      int

	SourceName      string
	SourceCity      string
	DestinationName string
	DestinationCity string
}
