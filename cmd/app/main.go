package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/smelyanko/airport-service/config"
	"github.com/smelyanko/airport-service/internal/bootstrap"
	"github.com/smelyanko/airport-service/internal/cache"
	"github.com/smelyanko/airport-service/internal/kafka"
	"github.com/smelyanko/airport-service/internal/repository"
	"github.com/smelyanko/airport-service/internal/service/catalog"
	"github.com/smelyanko/airport-service/internal/service/flights"
	"github.com/smelyanko/airport-service/internal/service/orders"
	"github.com/smelyanko/airport-service/internal/service/users"
)

func main() {
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	if cfg.Database.MigrationsDir != "" {
		if err := repository.Migrate(ctx, pool, cfg.Database.MigrationsDir); err != nil {
			log.Fatalf("migrate: %v", err)
		}
	}

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Booking.FlightsCacheTTL)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	userRepo := repository.NewUserRepository(pool)
	countryRepo := repository.NewCountryRepository(pool)
	cityRepo := repository.NewCityRepository(pool)
	airportRepo := repository.NewAirportRepository(pool)
	routeRepo := repository.NewRouteRepository(pool)
	airplaneTypeRepo := repository.NewAirplaneTypeRepository(pool)
	airplaneRepo := repository.NewAirplaneRepository(pool)
	crewRepo := repository.NewCrewRepository(pool)
	flightRepo := repository.NewFlightRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)
	ticketRepo := repository.NewTicketRepository(pool)

	userService := users.NewUserService(userRepo, cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)
	catalogService := catalog.NewCatalogService(countryRepo, cityRepo, airportRepo, routeRepo, airplaneTypeRepo, airplaneRepo, crewRepo)
	flightService := flights.NewFlightService(flightRepo, redisCache, time.Duration(cfg.Booking.FlightsCacheTTL)*time.Second)
	orderService := orders.NewOrderService(
		orderRepo,
		ticketRepo,
		flightRepo,
		redisCache,
		producer,
		cfg.Kafka.OrderEventsTopic,
		time.Duration(cfg.Booking.SeatLockSeconds)*time.Second,
		orders.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)

	if err := bootstrap.Run(ctx, cfg, userService, catalogService, flightService, orderService); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
