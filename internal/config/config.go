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
	WorkerID    string
	Port        int
	LogLevel    string

	// Logdy (lightweight web log viewer)
	LogdyEnabled bool
	LogdyHost    string
	LogdyPort    int

	// Detection model sidecar
	ModelURL     string
	ModelName    string
	ModelTimeout time.Duration

	// NATS (detection event publishing)
	NatsEnabled        bool
	NatsURL            string
	NatsConnectTimeout time.Duration
	NatsReconnectWait  time.Duration
	NatsMaxReconnects  int
	DetectionsSubject  string

	// Pipeline defaults (seed values for the runtime settings store)
	FrameSkipRate       int
	TargetFPS           int
	ConfThreshold       float64
	MaxFrameWidth       int
	MaxFrameHeight      int
	EnableThermal       bool
	EnableCLAHE         bool
	EnableBlurDetection bool

	// Swagger Configuration
	SwaggerHost string
	SwaggerPort int

	// Graceful Shutdown
	ShutdownTimeout time.Duration
}

func Load() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("No .env file found, using environment variables and defaults")
	} else {
		log.Info().Msg("Loaded configuration from .env file")
	}

	return &Config{
		// Application
		Version:     getEnv("VERSION", "2.0.0"),
		Environment: getEnv("ENVIRONMENT", "development"),
		WorkerID:    getEnv("WORKER_ID", "vision-worker-1"),
		Port:        getEnvInt("PORT", 5000),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		// Logdy (lightweight web log viewer)
		LogdyEnabled: getEnvBool("LOGDY_ENABLED", false),
		LogdyHost:    getEnv("LOGDY_HOST", "localhost"),
		LogdyPort:    getEnvInt("LOGDY_PORT", 8080),

		// Detection model sidecar
		ModelURL:     getEnv("MODEL_URL", "http://localhost:8081"),
		ModelName:    getEnv("MODEL_NAME", "YOLOv8-Large"),
		ModelTimeout: getEnvDuration("MODEL_TIMEOUT", 30*time.Second),

		// NATS
		NatsEnabled:        getEnvBool("NATS_ENABLED", false),
		NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
		NatsConnectTimeout: getEnvDuration("NATS_CONNECT_TIMEOUT", 10*time.Second),
		NatsReconnectWait:  getEnvDuration("NATS_RECONNECT_WAIT", 2*time.Second),
		NatsMaxReconnects:  getEnvInt("NATS_MAX_RECONNECTS", -1), // -1 = unlimited
		DetectionsSubject:  getEnv("DETECTIONS_SUBJECT", "detections"),

		// Pipeline defaults
		FrameSkipRate:       getEnvInt("FRAME_SKIP_RATE", 2),
		TargetFPS:           getEnvInt("TARGET_FPS", 15),
		ConfThreshold:       getEnvFloat("CONF_THRESHOLD", 0.25),
		MaxFrameWidth:       getEnvInt("MAX_FRAME_WIDTH", 1280),
		MaxFrameHeight:      getEnvInt("MAX_FRAME_HEIGHT", 720),
		EnableThermal:       getEnvBool("ENABLE_THERMAL", true),
		EnableCLAHE:         getEnvBool("ENABLE_CLAHE", true),
		EnableBlurDetection: getEnvBool("ENABLE_BLUR_DETECTION", true),

		// Swagger Configuration
		SwaggerHost: getEnv("SWAGGER_HOST", "localhost"),
		SwaggerPort: getEnvInt("SWAGGER_PORT", 5000),

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

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
