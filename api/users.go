package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/smelyanko/airport-service/internal/domain"
	"github.com/smelyanko/airport-service/internal/service/users"
)

type UserHandler struct {
	service users.UserUseCase
	pager   Paginator
}

type registerRequest struct {
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password" binding:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type userResponse struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	IsAdmin   bool   `json:"is_admin"`
	CreatedAt string `json:"created_at"`
}

func NewUserHandler(service users.UserUseCase, pager Paginator) *UserHandler {
	return &UserHandler{service: service, pager: pager}
}

// RegisterPublic wires the endpoints open to anonymous callers.
func (h *UserHandler) RegisterPublic(router *gin.RouterGroup) {
	router.POST("/registration", h.register)
	router.POST("/login", h.login)
}

// RegisterProtected wires the endpoints behind the auth middleware.
func (h *UserHandler) RegisterProtected(router *gin.RouterGroup) {
	router.GET("/me", h.me)
}

// RegisterAdmin wires the admin-only user listing.
func (h *UserHandler) RegisterAdmin(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.GET("/:id", h.get)
}

func (h *UserHandler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.service.Register(c.Request.Context(), users.RegisterInput{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toUserResponse(user))
}

func (h *UserHandler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *UserHandler) me(c *gin.Context) {
	user, err := h.service.GetByID(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}

func (h *UserHandler) list(c *gin.Context) {
	limit, offset, page := h.pager.FromQuery(c)
	list, total, err := h.service.List(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	results := make([]userResponse, 0, len(list))
	for i := range list {
		results = append(results, toUserResponse(&list[i]))
	}
	c.JSON(http.StatusOK, newPage(total, page, limit, results))
}

func (h *UserHandler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	user, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}
