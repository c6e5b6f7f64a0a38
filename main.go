package main

import (
	"context"
	_ "embed"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/venue-booking-backend/api"
	"github.com/hanksha/venue-booking-backend/availability"
	bk "github.com/hanksha/venue-booking-backend/booking"
	"github.com/hanksha/venue-booking-backend/catalog"
	"github.com/hanksha/venue-booking-backend/config"
	"github.com/hanksha/venue-booking-backend/customer"
	"github.com/hanksha/venue-booking-backend/events"
	"github.com/hanksha/venue-booking-backend/store"
	"github.com/hanksha/venue-booking-backend/venuetime"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed database/setup.sql
var setupSQL string

func main() {
	cfg, err := config.Load()

	if err != nil {
		config.NewLogger(os.Stderr, "error").Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	logger := config.NewLogger(os.Stdout, cfg.LogLevel).With("component", "main")

	logger.Info("connecting to PostgreSQL database")
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)

	if err != nil {
		logger.Error("unable to connect to database", "err", err)
		os.Exit(1)
	}

	defer pool.Close()

	db := store.New(pool)

	if err := db.Bootstrap(context.Background(), setupSQL); err != nil {
		logger.Error("failed to initialize tables", "err", err)
		os.Exit(1)
	}

	logger.Info("initialized database tables")

	clock, err := venuetime.New(cfg.VenueTimezone)

	if err != nil {
		logger.Error("invalid venue timezone", "err", err)
		os.Exit(1)
	}

	window, err := cfg.Window()

	if err != nil {
		logger.Error("invalid operating window", "err", err)
		os.Exit(1)
	}

	var directory bk.CustomerDirectory = db

	if cfg.CustomerDirectoryURL != "" {
		logger.Info("using remote customer directory", "url", cfg.CustomerDirectoryURL)
		directory = customer.NewClient(cfg.CustomerDirectoryURL, cfg.CustomerDirectoryKey)
	}

	var publisher bk.EventPublisher = events.NewLogPublisher()

	if cfg.RabbitURL != "" {
		rabbit, err := events.NewPublisher(cfg.RabbitURL, cfg.BookingExchange)

		if err != nil {
			logger.Error("unable to connect to RabbitMQ", "err", err)
			os.Exit(1)
		}

		defer rabbit.Close()
		publisher = rabbit
	}

	engine := availability.NewEngine(db, clock)
	bookingService := bk.NewService(db, directory, publisher, clock, window)
	catalogService := catalog.NewService(db)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	staffOnly := api.StaffAuth(cfg.StaffToken)
	limit := api.RateLimit(cfg.RateLimitPerMinute, cfg.RateLimitBurst)

	// AVAILABILITY API

	availabilityRouter := r.Group("/api/v1/availability")
	availabilityRouter.Use(limit)
	api.NewAvailabilityHandler(engine, window, cfg.SlotStepMinutes).Register(availabilityRouter)

	// BOOKING API

	bookingRouter := r.Group("/api/v1/bookings")
	bookingRouter.Use(limit)
	api.NewBookingHandler(bookingService).Register(bookingRouter, staffOnly)

	// ADMIN API

	adminRouter := r.Group("/api/v1/admin")
	adminRouter.Use(staffOnly)
	api.NewAdminHandler(catalogService).Register(adminRouter)

	if err := r.Run(cfg.HTTPAddr); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
