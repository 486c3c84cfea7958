package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/smelyanko/airport-service/internal/domain"
	"github.com/smelyanko/airport-service/internal/service/flights"
)

type FlightHandler struct {
	service flights.FlightUseCase
	pager   Paginator
}

type flightListItem struct {
	ID               int64    `json:"id"`
	RouteSource      string   `json:"route_source"`
	RouteDestination string   `json:"route_destination"`
	RouteDistance    int      `json:"route_distance"`
	AirplaneTypeName string   `json:"airplane_type_name"`
	AirplaneName     string   `json:"airplane_name"`
	DepartureTime    string   `json:"departure_time"`
	ArrivalTime      string   `json:"arrival_time"`
	Crew             []string `json:"crew"`
	TicketsAvailable int      `json:"tickets_available"`
}

type flightDetail struct {
	ID            int64            `json:"id"`
	Route         flightRoute      `json:"route"`
	Airplane      flightAirplane   `json:"airplane"`
	DepartureTime string           `json:"departure_time"`
	ArrivalTime   string           `json:"arrival_time"`
	Crew          []string         `json:"crew"`
	CrewIDs       []int64          `json:"crew_ids"`
	TakenSeats    []domain.SeatRef `json:"taken_seats"`
}

type flightRoute struct {
	ID          int64  `json:"id"`
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Distance    int    `json:"distance"`
}

type flightAirplane struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	Rows       int    `json:"rows"`
	SeatsInRow int    `json:"seats_in_row"`
	TotalSeats int    `json:"total_seats"`
}

func NewFlightHandler(service flights.FlightUseCase, pager Paginator) *FlightHandler {
	return &FlightHandler{service: service, pager: pager}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.POST("/", h.create)
	router.GET("/:id", h.get)
	router.PUT("/:id", h.update)
	router.PATCH("/:id", h.update)
	router.DELETE("/:id", h.delete)
}

func (h *FlightHandler) list(c *gin.Context) {
	filter, err := parseFlightFilter(c)
	if err != nil {
		respondError(c, err)
		return
	}

	limit, offset, page := h.pager.FromQuery(c)
	list, total, err := h.service.List(c.Request.Context(), filter, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	results := make([]flightListItem, 0, len(list))
	for _, f := range list {
		results = append(results, toFlightListItem(f))
	}
	c.JSON(http.StatusOK, newPage(total, page, limit, results))
}

func (h *FlightHandler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	flight, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toFlightDetail(flight))
}

func (h *FlightHandler) create(c *gin.Context) {
	var input flights.FlightInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	flight, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toFlightDetail(flight))
}

func (h *FlightHandler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input flights.FlightInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	flight, err := h.service.Update(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toFlightDetail(flight))
}

func (h *FlightHandler) delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// parseFlightFilter reads source, destination, crew (comma-separated ids)
// and departure_time/arrival_time (YYYY-MM-DD) query params.
func parseFlightFilter(c *gin.Context) (domain.FlightFilter, error) {
	var filter domain.FlightFilter
	var err error

	if filter.SourceIDs, err = parseIDList(c.Query("source"), "source"); err != nil {
		return filter, err
	}
	if filter.DestinationIDs, err = parseIDList(c.Query("destination"), "destination"); err != nil {
		return filter, err
	}
	if filter.CrewIDs, err = parseIDList(c.Query("crew"), "crew"); err != nil {
		return filter, err
	}
	if filter.DepartureDate, err = parseDate(c.Query("departure_time"), "departure_time"); err != nil {
		return filter, err
	}
	if filter.ArrivalDate, err = parseDate(c.Query("arrival_time"), "arrival_time"); err != nil {
		return filter, err
	}
	return filter, nil
}

func parseIDList(raw, field string) ([]int64, error) {
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, domain.NewValidationError(field, "%s must be a comma-separated list of ids", field)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func parseDate(raw, field string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, domain.NewValidationError(field, "%s must be a date in YYYY-MM-DD format", field)
	}
	return &t, nil
}

func toFlightListItem(f domain.Flight) flightListItem {
	return flightListItem{
		ID:               f.ID,
		RouteSource:      f.RouteSource,
		RouteDestination: f.RouteDestination,
		RouteDistance:    f.RouteDistance,
		AirplaneTypeName: f.AirplaneTypeName,
		AirplaneName:     f.AirplaneName,
		DepartureTime:    f.DepartureTime.Format(time.RFC3339),
		ArrivalTime:      f.ArrivalTime.Format(time.RFC3339),
		Crew:             f.CrewNames,
		TicketsAvailable: f.TicketsAvailable,
	}
}

func toFlightDetail(f *domain.Flight) flightDetail {
	detail := flightDetail{
		ID: f.ID,
		Route: flightRoute{
			ID:          f.RouteID,
			Source:      f.RouteSource,
			Destination: f.RouteDestination,
			Distance:    f.RouteDistance,
		},
		Airplane: flightAirplane{
			ID:         f.AirplaneID,
			Name:       f.AirplaneName,
			Type:       f.AirplaneTypeName,
			Rows:       f.AirplaneRows,
			SeatsInRow: f.AirplaneSeatsInRow,
			TotalSeats: f.TotalSeats(),
		},
		DepartureTime: f.DepartureTime.Format(time.RFC3339),
		ArrivalTime:   f.ArrivalTime.Format(time.RFC3339),
		Crew:          f.CrewNames,
		CrewIDs:       f.CrewIDs,
		TakenSeats:    f.TakenSeats,
	}
	if detail.TakenSeats == nil {
		detail.TakenSeats = []domain.SeatRef{}
	}
	return detail
}
