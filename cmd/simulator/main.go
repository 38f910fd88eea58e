// Simulator posts synthetic camera-alert batches to the listener webhook.
// It stands in for the real fleet during development: a fixed set of devices
// raises alerts on a randomized interval, each pointing at a numbered photo
// under an image root and carrying coordinates inside a bounding box.
package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"alert-listener-go/internal/models"
)

type simulatorConfig struct {
	TargetURL  string
	ImageRoot  string
	ImageCount int

	Interval   time.Duration
	NumDevices int
	MaxRunTime time.Duration

	// Bounding box for device coordinates; defaults cover central England
	MaxLat  float64
	MinLat  float64
	MaxLong float64
	MinLong float64
}

func loadSimulatorConfig() (*simulatorConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("No .env file found, using environment variables and defaults")
	}

	cfg := &simulatorConfig{
		TargetURL:  os.Getenv("ALARM_TARGET_URL"),
		ImageRoot:  os.Getenv("ALARM_IMAGE_ROOT"),
		ImageCount: getEnvInt("ALARM_IMAGE_COUNT", 20),
		Interval:   getEnvDuration("ALARM_INTERVAL", 30*time.Second),
		NumDevices: getEnvInt("ALARM_NUM_DEVICES", 10),
		MaxRunTime: getEnvDuration("ALARM_MAX_RUNTIME", 60*time.Minute),
		MaxLat:     getEnvFloat("ALARM_MAX_LAT", 53.810382),
		MinLat:     getEnvFloat("ALARM_MIN_LAT", 51.010299),
		MaxLong:    getEnvFloat("ALARM_MAX_LONG", -0.145569),
		MinLong:    getEnvFloat("ALARM_MIN_LONG", -3.048706),
	}

	if cfg.TargetURL == "" || cfg.ImageRoot == "" {
		return nil, fmt.Errorf("ALARM_TARGET_URL and ALARM_IMAGE_ROOT are required")
	}
	if !strings.HasSuffix(cfg.ImageRoot, "/") {
		cfg.ImageRoot += "/"
	}

	return cfg, nil
}

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := loadSimulatorConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid simulator configuration")
	}

	log.Info().
		Str("target", cfg.TargetURL).
		Str("image_root", cfg.ImageRoot).
		Int("devices", cfg.NumDevices).
		Dur("interval", cfg.Interval).
		Dur("max_runtime", cfg.MaxRunTime).
		Msg("Starting alert simulator")

	devices := makeDevices(cfg)
	client := resty.New().
		SetTimeout(10 * time.Second).
		SetHeader("Content-Type", "application/json")

	var deadline time.Time
	if cfg.MaxRunTime > 0 {
		deadline = time.Now().Add(cfg.MaxRunTime)
	}

	for {
		device := devices[rand.Intn(len(devices))]
		device.Image = alertImage(cfg)
		device.Text = "Alarm event raised"

		batch := []models.Envelope{newEnvelope(device)}

		resp, err := client.R().SetBody(batch).Post(cfg.TargetURL)
		switch {
		case err != nil:
			log.Error().Err(err).Msg("Error sending alert")
		case resp.IsError():
			log.Error().
				Str("status", resp.Status()).
				Str("body", resp.String()).
				Msg("Post unsuccessful")
		default:
			log.Info().
				Int64("device_id", device.DeviceID).
				Float64("lat", device.Latitude).
				Float64("long", device.Longitude).
				Str("image", device.Image).
				Msg("Alert sent")
		}

		if !deadline.IsZero() && time.Now().After(deadline) {
			log.Info().Dur("max_runtime", cfg.MaxRunTime).Msg("Maximum runtime reached, simulator stopping")
			return
		}

		time.Sleep(time.Duration(rand.Int63n(int64(cfg.Interval))))
	}
}

func newEnvelope(device models.Alert) models.Envelope {
	payload, _ := json.Marshal(device)
	return models.Envelope{
		ID:        uuid.NewString(),
		EventType: "recordInserted",
		Subject:   "Alarm",
		EventTime: time.Now().Format(time.RFC3339Nano),
		Data:      payload,
	}
}

// makeDevices builds the fixed fleet, each with a location drawn uniformly
// inside the configured bounding box
func makeDevices(cfg *simulatorConfig) []models.Alert {
	devices := make([]models.Alert, cfg.NumDevices)
	for i := range devices {
		devices[i] = models.Alert{
			DeviceID:  int64(i),
			Latitude:  cfg.MinLat + rand.Float64()*(cfg.MaxLat-cfg.MinLat),
			Longitude: cfg.MinLong + rand.Float64()*(cfg.MaxLong-cfg.MinLong),
			Name:      fmt.Sprintf("Alarm %d", i),
		}
	}
	return devices
}

func alertImage(cfg *simulatorConfig) string {
	n := 1 + rand.Intn(cfg.ImageCount)
	return fmt.Sprintf("%sphoto%02d.jpg", cfg.ImageRoot, n)
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
