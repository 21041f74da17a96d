package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// Source selector values.
const (
	SourceCSV      = "csv"
	SourcePostgres = "postgres"
)

// Config holds all generator settings, populated from environment variables.
// The defaults reproduce the classic one-shot behavior: read the scoring
// job's CSV from its fixed relative path and write the three maps into the
// working directory.
type Config struct {
	InputPath string
	OutputDir string
	Source    string

	PostgresDSN string

	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Optional render-summary publishing.
	KafkaEnabled      bool
	KafkaBrokers      []string
	KafkaSummaryTopic string
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := parseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		InputPath: envOrDefault("INPUT_PATH", "results/jet_fuel_opportunities.csv"),
		OutputDir: envOrDefault("OUTPUT_DIR", "."),
		Source:    envOrDefault("SOURCE", SourceCSV),

		PostgresDSN: os.Getenv("POSTGRES_DSN"),

		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		KafkaEnabled:      os.Getenv("KAFKA_ENABLED") == "true",
		KafkaBrokers:      parseBrokers(envOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaSummaryTopic: envOrDefault("KAFKA_SUMMARY_TOPIC", "map-render-summaries"),
	}

	switch cfg.Source {
	case SourceCSV, SourcePostgres:
	default:
		return nil, fmt.Errorf("SOURCE must be %q or %q, got %q", SourceCSV, SourcePostgres, cfg.Source)
	}
	if cfg.Source == SourcePostgres && cfg.PostgresDSN == "" {
		return nil, errors.New("SOURCE is postgres but POSTGRES_DSN is not set")
	}
	if cfg.InputPath == "" {
		return nil, errors.New("INPUT_PATH is required")
	}
	if cfg.OutputDir == "" {
		return nil, errors.New("OUTPUT_DIR is required")
	}
	if cfg.KafkaEnabled && len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("KAFKA_ENABLED is true but KAFKA_BROKERS is empty")
	}
	if cfg.KafkaEnabled && cfg.KafkaSummaryTopic == "" {
		return nil, errors.New("KAFKA_ENABLED is true but KAFKA_SUMMARY_TOPIC is empty")
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseShutdownTimeout() (time.Duration, error) {
	raw := envOrDefault("SHUTDOWN_TIMEOUT", "10s")
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return 0, errors.New("invalid SHUTDOWN_TIMEOUT")
	}
	return d, nil
}

// parseBrokers splits a comma-separated broker list, dropping empty entries.
func parseBrokers(raw string) []string {
	parts := strings.Split(raw, ",")
	brokers := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			brokers = append(brokers, p)
		}
	}
	return brokers
}
