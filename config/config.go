package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"github.com/hanksha/venue-booking-backend/model"
	"github.com/hanksha/venue-booking-backend/venuetime"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`
	HTTPAddr    string `envconfig:"HTTP_ADDR" default:":9090"`

	VenueTimezone   string `envconfig:"VENUE_TIMEZONE" default:"America/New_York"`
	OpenTime        string `envconfig:"OPEN_TIME" default:"10:00"`
	CloseTime       string `envconfig:"CLOSE_TIME" default:"23:00"`
	SlotStepMinutes int    `envconfig:"SLOT_STEP_MINUTES" default:"30"`

	StaffToken string `envconfig:"STAFF_TOKEN"`

	RabbitURL       string `envconfig:"RABBIT_URL"`
	BookingExchange string `envconfig:"BOOKING_EXCHANGE" default:"booking.exchange"`

	CustomerDirectoryURL string `envconfig:"CUSTOMER_DIRECTORY_URL"`
	CustomerDirectoryKey string `envconfig:"CUSTOMER_DIRECTORY_KEY"`

	RateLimitPerMinute int `envconfig:"RATE_LIMIT_PER_MINUTE" default:"60"`
	RateLimitBurst     int `envconfig:"RATE_LIMIT_BURST" default:"10"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Default().With("component", "config").Info("no .env file loaded", "err", err)
	}

	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var problems []string

	if _, err := venuetime.New(c.VenueTimezone); err != nil {
		problems = append(problems, fmt.Sprintf("VENUE_TIMEZONE: %v", err))
	}

	if _, err := c.Window(); err != nil {
		problems = append(problems, err.Error())
	}

	if c.SlotStepMinutes <= 0 || c.SlotStepMinutes > 120 {
		problems = append(problems, fmt.Sprintf("SLOT_STEP_MINUTES must be between 1 and 120, got %d", c.SlotStepMinutes))
	}

	if c.RateLimitPerMinute <= 0 {
		problems = append(problems, fmt.Sprintf("RATE_LIMIT_PER_MINUTE must be positive, got %d", c.RateLimitPerMinute))
	}

	if c.RateLimitBurst <= 0 {
		problems = append(problems, fmt.Sprintf("RATE_LIMIT_BURST must be positive, got %d", c.RateLimitBurst))
	}

	if c.CustomerDirectoryURL != "" {
		if u, err := url.Parse(c.CustomerDirectoryURL); err != nil || u.Scheme == "" || u.Host == "" {
			problems = append(problems, fmt.Sprintf("CUSTOMER_DIRECTORY_URL is not an absolute URL: %q", c.CustomerDirectoryURL))
		}
	}

	if _, err := ParseLevel(c.LogLevel); err != nil {
		problems = append(problems, err.Error())
	}

	if len(problems) > 0 {
		return errors.New("invalid configuration:\n  " + strings.Join(problems, "\n  "))
	}

	return nil
}

func (c Config) Window() (model.OperatingWindow, error) {
	open, err := venuetime.ParseClock(c.OpenTime)

	if err != nil {
		return model.OperatingWindow{}, fmt.Errorf("OPEN_TIME: %w", err)
	}

	closing, err := venuetime.ParseClock(c.CloseTime)

	if err != nil {
		return model.OperatingWindow{}, fmt.Errorf("CLOSE_TIME: %w", err)
	}

	window := model.OperatingWindow{OpenMinute: open, CloseMinute: closing}

	if !window.Valid() {
		return model.OperatingWindow{}, fmt.Errorf("OPEN_TIME %s must be before CLOSE_TIME %s", c.OpenTime, c.CloseTime)
	}

	return window, nil
}

func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return slog.LevelInfo, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error, got %q", level)
}

// NewLogger builds a JSON logger and installs it as the default one.
func NewLogger(w io.Writer, level string) *slog.Logger {
	lvl, err := ParseLevel(level)

	if err != nil {
		lvl = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)

	return logger
}
