package config_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"testing"

	"github.com/hanksha/venue-booking-backend/config"
	"github.com/hanksha/venue-booking-backend/model"
	"github.com/stretchr/testify/require"
)

func validConfig() config.Config {
	return config.Config{
		DatabaseURL:        "postgres://localhost:5432/venue",
		HTTPAddr:           ":9090",
		VenueTimezone:      "America/New_York",
		OpenTime:           "10:00",
		CloseTime:          "23:00",
		SlotStepMinutes:    30,
		RateLimitPerMinute: 60,
		RateLimitBurst:     10,
		LogLevel:           "info",
	}
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost:5432/venue")

		cfg, err := config.Load()
		require.NoError(t, err)

		require.Equal(t, ":9090", cfg.HTTPAddr)
		require.Equal(t, "America/New_York", cfg.VenueTimezone)
		require.Equal(t, 30, cfg.SlotStepMinutes)
		require.Equal(t, "booking.exchange", cfg.BookingExchange)
		require.Equal(t, 60, cfg.RateLimitPerMinute)
		require.Equal(t, 10, cfg.RateLimitBurst)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost:5432/venue")
		t.Setenv("OPEN_TIME", "12:00")
		t.Setenv("SLOT_STEP_MINUTES", "15")

		cfg, err := config.Load()
		require.NoError(t, err)

		window, err := cfg.Window()
		require.NoError(t, err)
		require.Equal(t, model.OperatingWindow{OpenMinute: 720, CloseMinute: 1380}, window)
		require.Equal(t, 15, cfg.SlotStepMinutes)
	})

	t.Run("database url is required", func(t *testing.T) {
		// Setenv restores the variable after Unsetenv removes it.
		t.Setenv("DATABASE_URL", "unused")
		require.NoError(t, os.Unsetenv("DATABASE_URL"))

		_, err := config.Load()
		require.ErrorContains(t, err, "DATABASE_URL")
	})
}

func TestValidate(t *testing.T) {
	require.NoError(t, validConfig().Validate())

	cfg := validConfig()
	cfg.VenueTimezone = "Mars/Olympus"
	cfg.OpenTime = "23:30"
	cfg.SlotStepMinutes = 0
	cfg.CustomerDirectoryURL = "not a url"
	cfg.LogLevel = "loud"

	err := cfg.Validate()
	require.Error(t, err)

	for _, want := range []string{"VENUE_TIMEZONE", "OPEN_TIME", "SLOT_STEP_MINUTES", "CUSTOMER_DIRECTORY_URL", "LOG_LEVEL"} {
		require.Contains(t, err.Error(), want)
	}
}

func TestNewLogger(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	var buf bytes.Buffer
	logger := config.NewLogger(&buf, "warn")

	logger.Info("dropped")
	logger.Warn("kept", "component", "test")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "kept", line["msg"])
	require.Equal(t, "test", line["component"])
	require.Same(t, logger, slog.Default())
}
