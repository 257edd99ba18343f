package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	WebSocket WebSocketConfig
	CORS      CORSConfig
	Logging   LoggingConfig
}

type ServerConfig struct {
	Port            string
	Host            string
	Env             string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// Addr is the listen address in host:port form.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

type WebSocketConfig struct {
	Enabled         bool
	ReadBufferSize  int
	WriteBufferSize int
	MaxMessageSize  int64
	WriteWait       time.Duration
	PongWait        time.Duration
	PingPeriod      time.Duration
	MaxClients      int
}

type CORSConfig struct {
	AllowedOrigins string
	AllowedMethods string
	AllowedHeaders string
}

type LoggingConfig struct {
	Level      string
	Format     string
	File       string
	MaxSizeMB  int
	MaxAgeDays int
	Compress   bool
}

// Load reads configuration from the environment, after merging in a .env
// file when one is present. Variables already set in the environment win.
func Load(envFiles ...string) (*Config, error) {
	godotenv.Load(envFiles...)

	durations := map[string]string{
		"READ_TIMEOUT":     "15s",
		"WRITE_TIMEOUT":    "15s",
		"IDLE_TIMEOUT":     "60s",
		"SHUTDOWN_TIMEOUT": "30s",
		"WS_WRITE_WAIT":    "10s",
		"WS_PONG_WAIT":     "60s",
	}
	parsed := make(map[string]time.Duration, len(durations))
	for key, def := range durations {
		d, err := time.ParseDuration(getEnv(key, def))
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", key, err)
		}
		parsed[key] = d
	}

	for _, key := range []string{"WS_WRITE_WAIT", "WS_PONG_WAIT"} {
		if parsed[key] <= 0 {
			return nil, fmt.Errorf("invalid %s: must be positive, got %s", key, parsed[key])
		}
	}

	pongWait := parsed["WS_PONG_WAIT"]
	pingPeriod := (pongWait * 9) / 10
	if pingPeriod <= 0 {
		return nil, fmt.Errorf("invalid WS_PONG_WAIT: %s leaves no room for a ping period", pongWait)
	}

	maxClients := getEnvAsInt("WS_MAX_CLIENTS", 100)
	if maxClients < 1 {
		return nil, fmt.Errorf("invalid WS_MAX_CLIENTS: must be at least 1, got %d", maxClients)
	}

	return &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "3001"),
			Host:            getEnv("HOST", "0.0.0.0"),
			Env:             getEnv("ENV", "development"),
			ReadTimeout:     parsed["READ_TIMEOUT"],
			WriteTimeout:    parsed["WRITE_TIMEOUT"],
			IdleTimeout:     parsed["IDLE_TIMEOUT"],
			ShutdownTimeout: parsed["SHUTDOWN_TIMEOUT"],
		},
		WebSocket: WebSocketConfig{
			Enabled:         getEnvAsBool("WS_ENABLED", true),
			ReadBufferSize:  getEnvAsInt("WS_READ_BUFFER_SIZE", 1024),
			WriteBufferSize: getEnvAsInt("WS_WRITE_BUFFER_SIZE", 1024),
			MaxMessageSize:  int64(getEnvAsInt("WS_MAX_MESSAGE_SIZE", 4096)),
			WriteWait:       parsed["WS_WRITE_WAIT"],
			PongWait:        pongWait,
			PingPeriod:      pingPeriod,
			MaxClients:      maxClients,
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			AllowedMethods: getEnv("CORS_ALLOWED_METHODS", "GET,POST,PUT,DELETE,OPTIONS"),
			AllowedHeaders: getEnv("CORS_ALLOWED_HEADERS", "Content-Type,X-Request-ID"),
		},
		Logging: LoggingConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Format:     getEnv("LOG_FORMAT", "json"),
			File:       getEnv("LOG_FILE", ""),
			MaxSizeMB:  getEnvAsInt("LOG_MAX_SIZE_MB", 100),
			MaxAgeDays: getEnvAsInt("LOG_MAX_AGE_DAYS", 28),
			Compress:   getEnvAsBool("LOG_COMPRESS", true),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}
