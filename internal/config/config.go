package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config carries every externally tunable knob of the proctoring service.
type Config struct {
	HTTPAddr      string
	InferenceAddr string
	RedisAddr     string
	JWTSecret     string
	JWTAudience   string
	ServiceAPIKey string
	Environment   string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Detection and liveness thresholds. Defaults match the tuned model
	// behaviour; they are exposed so staging can loosen them.
	ConfidenceFloor  float64
	EARThreshold     float64
	HeadMoveMinPx    float64
	EvidenceQueueLen int
}

// DSN assembles the Postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// IsDev reports whether the service runs in a development environment.
func (c *Config) IsDev() bool {
	return c.Environment == "dev"
}

// Load reads configuration from the environment, honouring a local .env file
// when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		HTTPAddr:      getEnv("HTTP_ADDR", ":8080"),
		InferenceAddr: getEnv("INFERENCE_ADDR", "inference:50051"),
		RedisAddr:     getEnv("REDIS_ADDR", "redis:6379"),
		JWTSecret:     getEnv("JWT_SECRET", "dev-secret"),
		JWTAudience:   os.Getenv("JWT_AUDIENCE"),
		ServiceAPIKey: os.Getenv("SERVICE_API_KEY"),
		Environment:   getEnv("ENVIRONMENT", "production"),

		DBHost:     getEnv("DB_HOST", "postgres"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "proctor"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		ConfidenceFloor:  getEnvFloat("CONFIDENCE_FLOOR", 0.5),
		EARThreshold:     getEnvFloat("EAR_THRESHOLD", 0.2),
		HeadMoveMinPx:    getEnvFloat("HEAD_MOVE_MIN_PX", 15),
		EvidenceQueueLen: getEnvInt("EVIDENCE_QUEUE_LEN", 64),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return fallback
}
