package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/smelyanko/airport-service/internal/domain"
	"github.com/smelyanko/airport-service/internal/service/orders"
	"github.com/smelyanko/airport-service/internal/service/users"
)

type OrderHandler struct {
	service orders.OrderUseCase
	users   users.UserUseCase
	pager   Paginator
}

type createOrderRequest struct {
	Tickets []orders.TicketSpec `json:"tickets" binding:"required"`
}

type orderResponse struct {
	ID        int64            `json:"id"`
	Number    string           `json:"number"`
	CreatedAt string           `json:"created_at"`
	Tickets   []ticketResponse `json:"tickets"`
}

type ticketResponse struct {
	ID               int64  `json:"id"`
	Row              int    `json:"row"`
	Seat             int    `json:"seat"`
	Flight           int64  `json:"flight"`
	RouteSource      string `json:"route_source,omitempty"`
	RouteDestination string `json:"route_destination,omitempty"`
	DepartureTime    string `json:"departure_time,omitempty"`
}

func NewOrderHandler(service orders.OrderUseCase, userSvc users.UserUseCase, pager Paginator) *OrderHandler {
	return &OrderHandler{service: service, users: userSvc, pager: pager}
}

func (h *OrderHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.POST("/", h.create)
	router.GET("/:id", h.get)
	router.DELETE("/:id", h.delete)
}

// RegisterTickets wires the admin-only ticket listing.
func (h *OrderHandler) RegisterTickets(router *gin.RouterGroup) {
	router.GET("/", h.listTickets)
	router.GET("/:id", h.getTicket)
}

func (h *OrderHandler) create(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := currentUserID(c)
	user, err := h.users.GetByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	order, err := h.service.CreateOrder(c.Request.Context(), orders.CreateOrderInput{
		UserID:    userID,
		UserEmail: user.Email,
		Tickets:   req.Tickets,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toOrderResponse(order))
}

func (h *OrderHandler) list(c *gin.Context) {
	limit, offset, page := h.pager.FromQuery(c)
	list, total, err := h.service.ListOrders(c.Request.Context(), currentUserID(c), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	results := make([]orderResponse, 0, len(list))
	for i := range list {
		results = append(results, toOrderResponse(&list[i]))
	}
	c.JSON(http.StatusOK, newPage(total, page, limit, results))
}

func (h *OrderHandler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	order, err := h.service.GetOrder(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(order))
}

func (h *OrderHandler) delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteOrder(c.Request.Context(), currentUserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *OrderHandler) listTickets(c *gin.Context) {
	limit, offset, page := h.pager.FromQuery(c)
	list, total, err := h.service.ListTickets(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	results := make([]ticketResponse, 0, len(list))
	for _, t := range list {
		results = append(results, toTicketResponse(t))
	}
	c.JSON(http.StatusOK, newPage(total, page, limit, results))
}

func (h *OrderHandler) getTicket(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ticket, err := h.service.GetTicket(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTicketResponse(*ticket))
}

func toOrderResponse(o *domain.Order) orderResponse {
	resp := orderResponse{
		ID:        o.ID,
		Number:    o.Number,
		CreatedAt: o.CreatedAt.Format(time.RFC3339),
		Tickets:   make([]ticketResponse, 0, len(o.Tickets)),
	}
	for _, t := range o.Tickets {
		resp.Tickets = append(resp.Tickets, toTicketResponse(t))
	}
	return resp
}

func toTicketResponse(t domain.Ticket) ticketResponse {
	resp := ticketResponse{
		ID:               t.ID,
		Row:              t.Row,
		Seat:             t.Seat,
		Flight:           t.FlightID,
		RouteSource:      t.RouteSource,
		RouteDestination: t.RouteDestination,
	}
	if !t.DepartureTime.IsZero() {
		resp.DepartureTime = t.DepartureTime.Format(time.RFC3339)
	}
	return resp
}
