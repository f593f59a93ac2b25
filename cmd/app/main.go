package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/evseevdm/laundrobook/api"
	"github.com/evseevdm/laundrobook/config"
	"github.com/evseevdm/laundrobook/internal/bootstrap"
	"github.com/evseevdm/laundrobook/internal/cache"
	"github.com/evseevdm/laundrobook/internal/kafka"
	"github.com/evseevdm/laundrobook/internal/repository"
	"github.com/evseevdm/laundrobook/internal/service/auth"
	"github.com/evseevdm/laundrobook/internal/service/bookings"
	"github.com/evseevdm/laundrobook/internal/service/laundries"
	"github.com/evseevdm/laundrobook/internal/token"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
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

	if cfg.Database.MigrationsPath != "" {
		if err := runMigrations(cfg); err != nil {
			log.Fatalf("migrate: %v", err)
		}
	}

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Listing.CacheTTLSeconds)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	userRepo := repository.NewUserRepository(pool)
	laundryRepo := repository.NewLaundryRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)

	tokens := token.NewManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)

	authService := auth.NewAuthService(userRepo, tokens)
	laundryService := laundries.NewLaundryService(laundryRepo, redisCache)
	bookingService := bookings.NewBookingService(
		bookingRepo,
		laundryRepo,
		producer,
		cfg.Kafka.BookingEventsTopic,
		bookings.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)

	router := api.NewRouter(
		api.NewAuthHandler(authService),
		api.NewLaundryHandler(laundryService),
		api.NewBookingHandler(bookingService),
		api.AuthRequired(tokens, userRepo),
		cfg.HTTP.SwaggerDir,
	)

	if err := bootstrap.Run(ctx, cfg, router); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runMigrations(cfg *config.Config) error {
	m, err := migrate.New("file://"+cfg.Database.MigrationsPath, cfg.Database.URL())
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
