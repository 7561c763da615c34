package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	DocAI    DocAIConfig
	Verify   VerifyConfig
}

// DatabaseConfig holds audit-store configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr    string
	MetricsAddr string
}

// DocAIConfig holds credentials and routing for the document-understanding
// backend. Two shapes are supported: a single base64-encoded service-account
// bundle, or the discrete key fields. Either shape may be absent; the
// pipeline degrades to the manual-entry fallback in that case.
type DocAIConfig struct {
	CredentialsBase64 string

	ClientEmail  string
	PrivateKey   string
	PrivateKeyID string
	ClientID     string

	ProjectID   string
	Location    string
	ProcessorID string
}

// VerifyConfig holds thresholds for the verification pipeline.
type VerifyConfig struct {
	ApprovalThreshold float64
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr:    getEnv("GRPC_ADDR", ":8080"),
			MetricsAddr: getEnv("METRICS_ADDR", ":9090"),
		},
		DocAI: DocAIConfig{
			CredentialsBase64: getEnv("DOCAI_CREDENTIALS_BASE64", ""),
			ClientEmail:       getEnv("DOCAI_CLIENT_EMAIL", ""),
			PrivateKey:        getEnv("DOCAI_PRIVATE_KEY", ""),
			PrivateKeyID:      getEnv("DOCAI_PRIVATE_KEY_ID", ""),
			ClientID:          getEnv("DOCAI_CLIENT_ID", ""),
			ProjectID:         getEnv("DOCAI_PROJECT_ID", ""),
			Location:          getEnv("DOCAI_LOCATION", "us"),
			ProcessorID:       getEnv("DOCAI_PROCESSOR_ID", ""),
		},
		Verify: VerifyConfig{
			ApprovalThreshold: getEnvAsFloat64("APPROVAL_THRESHOLD", 0.85),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration. DocAI settings are deliberately
// NOT validated here: an unconfigured backend is a supported, non-fatal state.
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.Verify.ApprovalThreshold <= 0 || c.Verify.ApprovalThreshold > 1 {
		return NewAppError("CONFIG_ERROR", "APPROVAL_THRESHOLD must be in (0,1]", ErrInvalidInput)
	}
	return nil
}
