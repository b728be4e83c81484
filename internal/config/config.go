package config

import (
	"os"
	"strconv"
)

// Config carries every runtime setting the service needs. It is built once
// in main and handed to constructors explicitly; nothing else reads the
// environment after startup, and there is no ambient global.
type Config struct {
	Port string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBSSLMode  string

	// MediaRoot is the directory model artifacts live under; the trainer
	// writes and the predictor reads models/<kind>_model.gob below it.
	MediaRoot string

	RedisURL    string
	RabbitMQURL string
	EventQueue  string

	JWTSecret string

	WorkerCount int
}

// Load reads the environment into a Config. Optional integrations (Redis,
// RabbitMQ) stay empty when unset and the service runs without them.
func Load() *Config {
	cfg := &Config{
		Port:        getenv("PORT", "8080"),
		DBHost:      getenv("DB_HOST", "localhost"),
		DBUser:      getenv("DB_USER", "postgres"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBName:      getenv("DB_NAME", "calorify"),
		DBPort:      getenv("DB_PORT", "5432"),
		DBSSLMode:   getenv("DB_SSLMODE", "disable"),
		MediaRoot:   getenv("MEDIA_ROOT", "media"),
		RedisURL:    os.Getenv("REDIS_URL"),
		RabbitMQURL: os.Getenv("RABBITMQ_URL"),
		EventQueue:  getenv("TRAINING_EVENT_QUEUE", "training.events"),
		JWTSecret:   os.Getenv("JWT_SECRET_KEY"),
		WorkerCount: 2,
	}
	if n, err := strconv.Atoi(os.Getenv("WORKER_COUNT")); err == nil && n > 0 {
		cfg.WorkerCount = n
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
