package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smelyanko/airport-service/internal/domain"
	"github.com/smelyanko/airport-service/internal/service/catalog"
)

// CatalogHandler serves the reference tables: countries, cities, airports,
// routes, airplane types, airplanes and crews.
type CatalogHandler struct {
	service catalog.CatalogUseCase
	pager   Paginator
}

func NewCatalogHandler(service catalog.CatalogUseCase, pager Paginator) *CatalogHandler {
	return &CatalogHandler{service: service, pager: pager}
}

func (h *CatalogHandler) Register(router *gin.RouterGroup) {
	countries := router.Group("/countries")
	countries.GET("/", h.listCountries)
	countries.POST("/", h.createCountry)
	countries.GET("/:id", h.getCountry)
	countries.PUT("/:id", h.updateCountry)
	countries.PATCH("/:id", h.updateCountry)
	countries.DELETE("/:id", h.deleteCountry)

	cities := router.Group("/cities")
	cities.GET("/", h.listCities)
	cities.POST("/", h.createCity)
	cities.GET("/:id", h.getCity)
	cities.PUT("/:id", h.updateCity)
	cities.PATCH("/:id", h.updateCity)
	cities.DELETE("/:id", h.deleteCity)

	airports := router.Group("/airports")
	airports.GET("/", h.listAirports)
	airports.POST("/", h.createAirport)
	airports.GET("/:id", h.getAirport)
	airports.PUT("/:id", h.updateAirport)
	airports.PATCH("/:id", h.updateAirport)
	airports.DELETE("/:id", h.deleteAirport)

	routes := router.Group("/routes")
	routes.GET("/", h.listRoutes)
	routes.POST("/", h.createRoute)
	routes.GET("/:id", h.getRoute)
	routes.PUT("/:id", h.updateRoute)
	routes.PATCH("/:id", h.updateRoute)
	routes.DELETE("/:id", h.deleteRoute)

	airplaneTypes := router.Group("/airplane_types")
	airplaneTypes.GET("/", h.listAirplaneTypes)
	airplaneTypes.POST("/", h.createAirplaneType)
	airplaneTypes.GET("/:id", h.getAirplaneType)
	airplaneTypes.PUT("/:id", h.updateAirplaneType)
	airplaneTypes.PATCH("/:id", h.updateAirplaneType)
	airplaneTypes.DELETE("/:id", h.deleteAirplaneType)

	airplanes := router.Group("/airplanes")
	airplanes.GET("/", h.listAirplanes)
	airplanes.POST("/", h.createAirplane)
	airplanes.GET("/:id", h.getAirplane)
	airplanes.PUT("/:id", h.updateAirplane)
	airplanes.PATCH("/:id", h.updateAirplane)
	airplanes.DELETE("/:id", h.deleteAirplane)

	crews := router.Group("/crews")
	crews.GET("/", h.listCrews)
	crews.POST("/", h.createCrew)
	crews.GET("/:id", h.getCrew)
	crews.PUT("/:id", h.updateCrew)
	crews.PATCH("/:id", h.updateCrew)
	crews.DELETE("/:id", h.deleteCrew)
}

type countryRequest struct {
	Name string `json:"name" binding:"required"`
}

type countryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (h *CatalogHandler) listCountries(c *gin.Context) {
	limit, offset, page := h.pager.FromQuery(c)
	list, total, err := h.service.ListCountries(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	results := make([]countryResponse, 0, len(list))
	for _, country := range list {
		results = append(results, countryResponse(country))
	}
	c.JSON(http.StatusOK, newPage(total, page, limit, results))
}

func (h *CatalogHandler) getCountry(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	country, err := h.service.GetCountry(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, countryResponse(*country))
}

func (h *CatalogHandler) createCountry(c *gin.Context) {
	var req countryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	country := &domain.Country{Name: req.Name}
	if err := h.service.CreateCountry(c.Request.Context(), country); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, countryResponse(*country))
}

func (h *CatalogHandler) updateCountry(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req countryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	country := &domain.Country{ID: id, Name: req.Name}
	if err := h.service.UpdateCountry(c.Request.Context(), country); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, countryResponse(*country))
}

func (h *CatalogHandler) deleteCountry(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteCountry(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type cityRequest struct {
	Name      string `json:"name" binding:"required"`
	CountryID int64  `json:"country" binding:"required"`
}

type cityResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	CountryID   int64  `json:"country"`
	CountryName string `json:"country_name,omitempty"`
}

func toCityResponse(city domain.City) cityResponse {
	return cityResponse{ID: city.ID, Name: city.Name, CountryID: city.CountryID, CountryName: city.CountryName}
}

func (h *CatalogHandler) listCities(c *gin.Context) {
	limit, offset, page := h.pager.FromQuery(c)
	list, total, err := h.service.ListCities(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	results := make([]cityResponse, 0, len(list))
	for _, city := range list {
		results = append(results, toCityResponse(city))
	}
	c.JSON(http.StatusOK, newPage(total, page, limit, results))
}

func (h *CatalogHandler) getCity(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	city, err := h.service.GetCity(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCityResponse(*city))
}

func (h *CatalogHandler) createCity(c *gin.Context) {
	var req cityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	city := &domain.City{Name: req.Name, CountryID: req.CountryID}
	if err := h.service.CreateCity(c.Request.Context(), city); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toCityResponse(*city))
}

func (h *CatalogHandler) updateCity(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req cityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	city := &domain.City{ID: id, Name: req.Name, CountryID: req.CountryID}
	if err := h.service.UpdateCity(c.Request.Context(), city); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCityResponse(*city))
}

func (h *CatalogHandler) deleteCity(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteCity(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type airportRequest struct {
	Name          string `json:"name" binding:"required"`
	ClosestCityID int64  `json:"closest_big_city" binding:"required"`
}

type airportResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	ClosestCityID int64  `json:"closest_big_city"`
	CityName      string `json:"city_name,omitempty"`
	CountryName   string `json:"country_name,omitempty"`
}

func toAirportResponse(a domain.Airport) airportResponse {
	return airportResponse{ID: a.ID, Name: a.Name, ClosestCityID: a.ClosestCityID, CityName: a.CityName, CountryName: a.CountryName}
}

func (h *CatalogHandler) listAirports(c *gin.Context) {
	limit, offset, page := h.pager.FromQuery(c)
	list, total, err := h.service.ListAirports(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	results := make([]airportResponse, 0, len(list))
	for _, a := range list {
		results = append(results, toAirportResponse(a))
	}
	c.JSON(http.StatusOK, newPage(total, page, limit, results))
}

func (h *CatalogHandler) getAirport(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	airport, err := h.service.GetAirport(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAirportResponse(*airport))
}

func (h *CatalogHandler) createAirport(c *gin.Context) {
	var req airportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	airport := &domain.Airport{Name: req.Name, ClosestCityID: req.ClosestCityID}
	if err := h.service.CreateAirport(c.Request.Context(), airport); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toAirportResponse(*airport))
}

func (h *CatalogHandler) updateAirport(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req airportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	airport := &domain.Airport{ID: id, Name: req.Name, ClosestCityID: req.ClosestCityID}
	if err := h.service.UpdateAirport(c.Request.Context(), airport); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAirportResponse(*airport))
}

func (h *CatalogHandler) deleteAirport(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteAirport(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type routeRequest struct {
	SourceID      int64 `json:"source" binding:"required"`
	DestinationID int64 `json:"destination" binding:"required"`
	Distance      int   `json:"distance" binding:"required"`
}

type routeResponse struct {
	ID              int64  `json:"id"`
	SourceID        int64  `json:"source"`
	DestinationID   int64  `json:"destination"`
	Distance        int    `json:"distance"`
	SourceName      string `json:"source_name,omitempty"`
	SourceCity      string `json:"source_city,omitempty"`
	DestinationName string `json:"dest_name,omitempty"`
	DestinationCity string `json:"dest_city,omitempty"`
}

func toRouteResponse(r domain.Route) routeResponse {
	return routeResponse{
		ID:              r.ID,
		SourceID:        r.SourceID,
		DestinationID:   r.DestinationID,
		Distance:        r.Distance,
		SourceName:      r.SourceName,
		SourceCity:      r.SourceCity,
		DestinationName: r.DestinationName,
		DestinationCity: r.DestinationCity,
	}
}

func (h *CatalogHandler) listRoutes(c *gin.Context) {
	limit, offset, page := h.pager.FromQuery(c)
	list, total, err := h.service.ListRoutes(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	results := make([]routeResponse, 0, len(list))
	for _, r := range list {
		results = append(results, toRouteResponse(r))
	}
	c.JSON(http.StatusOK, newPage(total, page, limit, results))
}

func (h *CatalogHandler) getRoute(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	route, err := h.service.GetRoute(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRouteResponse(*route))
}

func (h *CatalogHandler) createRoute(c *gin.Context) {
	var req routeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	route := &domain.Route{SourceID: req.SourceID, DestinationID: req.DestinationID, Distance: req.Distance}
	if err := h.service.CreateRoute(c.Request.Context(), route); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toRouteResponse(*route))
}

func (h *CatalogHandler) updateRoute(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req routeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	route := &domain.Route{ID: id, SourceID: req.SourceID, DestinationID: req.DestinationID, Distance: req.Distance}
	if err := h.service.UpdateRoute(c.Request.Context(), route); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRouteResponse(*route))
}

func (h *CatalogHandler) deleteRoute(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteRoute(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type airplaneTypeRequest struct {
	Name string `json:"name" binding:"required"`
}

type airplaneTypeResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (h *CatalogHandler) listAirplaneTypes(c *gin.Context) {
	limit, offset, page := h.pager.FromQuery(c)
	list, total, err := h.service.ListAirplaneTypes(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	results := make([]airplaneTypeResponse, 0, len(list))
	for _, at := range list {
		results = append(results, airplaneTypeResponse(at))
	}
	c.JSON(http.StatusOK, newPage(total, page, limit, results))
}

func (h *CatalogHandler) getAirplaneType(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	at, err := h.service.GetAirplaneType(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, airplaneTypeResponse(*at))
}

func (h *CatalogHandler) createAirplaneType(c *gin.Context) {
	var req airplaneTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	at := &domain.AirplaneType{Name: req.Name}
	if err := h.service.CreateAirplaneType(c.Request.Context(), at); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, airplaneTypeResponse(*at))
}

func (h *CatalogHandler) updateAirplaneType(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req airplaneTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	at := &domain.AirplaneType{ID: id, Name: req.Name}
	if err := h.service.UpdateAirplaneType(c.Request.Context(), at); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, airplaneTypeResponse(*at))
}

func (h *CatalogHandler) deleteAirplaneType(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteAirplaneType(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type airplaneRequest struct {
	Name           string `json:"name" binding:"required"`
	Rows           int    `json:"rows" binding:"required"`
	SeatsInRow     int    `json:"seats_in_row" binding:"required"`
	AirplaneTypeID int64  `json:"airplane_type" binding:"required"`
}

type airplaneResponse struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Rows           int    `json:"rows"`
	SeatsInRow     int    `json:"seats_in_row"`
	AirplaneTypeID int64  `json:"airplane_type"`
	Type           string `json:"type,omitempty"`
	TotalSeats     int    `json:"total_seats"`
}

func toAirplaneResponse(a domain.Airplane) airplaneResponse {
	return airplaneResponse{
		ID:             a.ID,
		Name:           a.Name,
		Rows:           a.Rows,
		SeatsInRow:     a.SeatsInRow,
		AirplaneTypeID: a.AirplaneTypeID,
		Type:           a.TypeName,
		TotalSeats:     a.TotalSeats(),
	}
}

func (h *CatalogHandler) listAirplanes(c *gin.Context) {
	limit, offset, page := h.pager.FromQuery(c)
	list, total, err := h.service.ListAirplanes(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	results := make([]airplaneResponse, 0, len(list))
	for _, a := range list {
		results = append(results, toAirplaneResponse(a))
	}
	c.JSON(http.StatusOK, newPage(total, page, limit, results))
}

func (h *CatalogHandler) getAirplane(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	airplane, err := h.service.GetAirplane(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAirplaneResponse(*airplane))
}

func (h *CatalogHandler) createAirplane(c *gin.Context) {
	var req airplaneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	airplane := &domain.Airplane{Name: req.Name, Rows: req.Rows, SeatsInRow: req.SeatsInRow, AirplaneTypeID: req.AirplaneTypeID}
	if err := h.service.CreateAirplane(c.Request.Context(), airplane); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toAirplaneResponse(*airplane))
}

func (h *CatalogHandler) updateAirplane(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req airplaneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	airplane := &domain.Airplane{ID: id, Name: req.Name, Rows: req.Rows, SeatsInRow: req.SeatsInRow, AirplaneTypeID: req.AirplaneTypeID}
	if err := h.service.UpdateAirplane(c.Request.Context(), airplane); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAirplaneResponse(*airplane))
}

func (h *CatalogHandler) deleteAirplane(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteAirplane(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type crewRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
}

type crewResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
}

func toCrewResponse(crew domain.Crew) crewResponse {
	return crewResponse{ID: crew.ID, FirstName: crew.FirstName, LastName: crew.LastName, FullName: crew.FullName()}
}

func (h *CatalogHandler) listCrews(c *gin.Context) {
	limit, offset, page := h.pager.FromQuery(c)
	list, total, err := h.service.ListCrews(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	results := make([]crewResponse, 0, len(list))
	for _, crew := range list {
		results = append(results, toCrewResponse(crew))
	}
	c.JSON(http.StatusOK, newPage(total, page, limit, results))
}

func (h *CatalogHandler) getCrew(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	crew, err := h.service.GetCrew(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCrewResponse(*crew))
}

func (h *CatalogHandler) createCrew(c *gin.Context) {
	var req crewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	crew := &domain.Crew{FirstName: req.FirstName, LastName: req.LastName}
	if err := h.service.CreateCrew(c.Request.Context(), crew); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toCrewResponse(*crew))
}

func (h *CatalogHandler) updateCrew(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req crewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	crew := &domain.Crew{ID: id, FirstName: req.FirstName, LastName: req.LastName}
	if err := h.service.UpdateCrew(c.Request.Context(), crew); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCrewResponse(*crew))
}

func (h *CatalogHandler) deleteCrew(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteCrew(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
