package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/smelyanko/airport-service/api"
	"github.com/smelyanko/airport-service/config"
	"github.com/smelyanko/airport-service/internal/service/catalog"
	"github.com/smelyanko/airport-service/internal/service/flights"
	"github.com/smelyanko/airport-service/internal/service/orders"
	"github.com/smelyanko/airport-service/internal/service/users"
)

// Run starts the HTTP server and blocks until the context is canceled or
// the server fails.
func Run(
	ctx context.Context,
	cfg *config.Config,
	userSvc users.UserUseCase,
	catalogSvc catalog.CatalogUseCase,
	flightSvc flights.FlightUseCase,
	orderSvc orders.OrderUseCase,
) error {
	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: newRouter(cfg, userSvc, catalogSvc, flightSvc, orderSvc),
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func newRouter(
	cfg *config.Config,
	userSvc users.UserUseCase,
	catalogSvc catalog.CatalogUseCase,
	flightSvc flights.FlightUseCase,
	orderSvc orders.OrderUseCase,
) *gin.Engine {
	smallPager := api.Paginator{DefaultSize: cfg.Pagination.ReferencePageSize}
	hugePager := api.Paginator{DefaultSize: cfg.Pagination.BookingPageSize}

	userHandler := api.NewUserHandler(userSvc, smallPager)
	catalogHandler := api.NewCatalogHandler(catalogSvc, smallPager)
	flightHandler := api.NewFlightHandler(flightSvc, hugePager)
	orderHandler := api.NewOrderHandler(orderSvc, userSvc, hugePager)

	router := gin.Default()

	userGroup := router.Group("/api/user")
	userHandler.RegisterPublic(userGroup)
	userHandler.RegisterProtected(userGroup.Group("", api.Auth(cfg.Auth.JWTSecret)))

	airport := router.Group("/api/airport", api.Auth(cfg.Auth.JWTSecret))

	// reference data: any authenticated caller reads, only admins write
	reference := airport.Group("", api.AdminOrReadOnly())
	catalogHandler.Register(reference)
	flightHandler.Register(reference.Group("/flights"))

	orderHandler.Register(airport.Group("/orders"))
	orderHandler.RegisterTickets(airport.Group("/tickets", api.AdminOnly()))
	userHandler.RegisterAdmin(airport.Group("/users", api.AdminOnly()))

	if cfg.HTTP.SwaggerDir != "" {
		router.Static("/swagger", cfg.HTTP.SwaggerDir)
		router.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(
			httpSwagger.URL("/swagger/openapi.json"),
		)))
	}

	return router
}
