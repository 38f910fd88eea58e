package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	// Application
	Version     string
	Environment string
	ListenerID  string
	Port        int
	LogLevel    string

	// Logdy (lightweight web log viewer)
	LogdyEnabled bool
	LogdyHost    string
	LogdyPort    int

	// Vision analysis service
	VisionEndpoint string
	VisionKey      string
	VisionTimeout  time.Duration

	// Pub/sub broker for enriched alerts
	// Driver selects the backend: "redis" (default) or "nats"
	BrokerDriver  string
	AlertsChannel string

	// Redis broker
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// NATS broker
	NatsURL            string
	NatsConnectTimeout time.Duration
	NatsReconnectWait  time.Duration
	NatsMaxReconnects  int

	// Document store (optional sink, needs a DSN when enabled)
	StoreEnabled bool
	DatabaseURL  string
	AlertsTable  string
	DBMaxConns   int
	DBMaxIdle    int

	// External call budget for store writes and channel publishes
	PublishTimeout time.Duration

	// Swagger Configuration
	SwaggerHost string
	SwaggerPort int

	// Graceful Shutdown
	ShutdownTimeout time.Duration
}

func Load() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("No .env file found or error loading .env file, using environment variables and defaults")
	} else {
		log.Info().Msg("Loaded configuration from .env file")
	}

	return &Config{
		// Application
		Version:     getEnv("VERSION", "1.0.0"),
		Environment: getEnv("ENVIRONMENT", "development"),
		ListenerID:  getEnv("LISTENER_ID", "listener-1"),
		Port:        getEnvInt("PORT", 8000),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		// Logdy (lightweight web log viewer)
		LogdyEnabled: getEnvBool("LOGDY_ENABLED", false),
		LogdyHost:    getEnv("LOGDY_HOST", "localhost"),
		LogdyPort:    getEnvInt("LOGDY_PORT", 8080),

		// Vision analysis service
		VisionEndpoint: getEnv("VISION_ENDPOINT", "https://westeurope.api.cognitive.microsoft.com"),
		VisionKey:      getEnv("VISION_KEY", ""),
		VisionTimeout:  getEnvDuration("VISION_TIMEOUT", 10*time.Second),

		// Pub/sub broker
		BrokerDriver:  getEnv("BROKER_DRIVER", "redis"),
		AlertsChannel: getEnv("ALERTS_CHANNEL", "alerts"),

		// Redis (configured for Docker Compose setup)
		RedisAddr:     getRedisAddr(),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		// NATS
		NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
		NatsConnectTimeout: getEnvDuration("NATS_CONNECT_TIMEOUT", 10*time.Second),
		NatsReconnectWait:  getEnvDuration("NATS_RECONNECT_WAIT", 2*time.Second),
		NatsMaxReconnects:  getEnvInt("NATS_MAX_RECONNECTS", -1), // -1 = unlimited

		// Document store
		StoreEnabled: getEnvBool("STORE_ENABLED", true),
		DatabaseURL:  getEnv("DATABASE_URL", ""),
		AlertsTable:  getEnv("ALERTS_TABLE", "alerts"),
		DBMaxConns:   getEnvInt("DB_MAX_CONNS", 10),
		DBMaxIdle:    getEnvInt("DB_MAX_IDLE", 5),

		PublishTimeout: getEnvDuration("PUBLISH_TIMEOUT", 5*time.Second),

		// Swagger Configuration
		SwaggerHost: getEnv("SWAGGER_HOST", "localhost"),
		SwaggerPort: getEnvInt("SWAGGER_PORT", 8000),

		// Graceful Shutdown
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 30*time.Second),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
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

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// Helper functions for Docker environment detection
func isRunningInDocker() bool {
	if os.Getenv("DOCKER_CONTAINER") == "true" {
		return true
	}

	if _, err := os.Stat("/.dockerenv"); err == nil {
		return true
	}

	return false
}

// getRedisAddr returns the appropriate Redis address based on environment
func getRedisAddr() string {
	if envAddr := os.Getenv("REDIS_ADDR"); envAddr != "" {
		return envAddr
	}

	// If running in Docker, use service name; otherwise use localhost
	if isRunningInDocker() {
		return "redis:6379"
	}

	return "localhost:6379"
}
