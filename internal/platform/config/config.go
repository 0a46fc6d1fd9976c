package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"pet-preventive-care/internal/domain/careplan"
	"pet-preventive-care/internal/platform/logger"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Port  string
	DBDSN string

	LogLevel  logger.Level
	LogFormat logger.Format
	AppName   string

	// CatalogPath vacío => catálogo embebido por defecto.
	CatalogPath string

	HorizonCycles int
	PreviewLimit  int

	CORSAllowedOrigins []string
}

// Load lee la configuración desde env. Valores numéricos inválidos caen al default.
func Load() (*Config, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	appName := strings.TrimSpace(os.Getenv("APP_NAME"))
	if appName == "" {
		appName = "pet-preventive-care"
	}

	cfg := &Config{
		Port:               port,
		DBDSN:              strings.TrimSpace(os.Getenv("DB_DSN")),
		LogLevel:           logger.ParseLevel(os.Getenv("LOG_LEVEL")),
		LogFormat:          logger.ParseFormat(os.Getenv("LOG_FORMAT")),
		AppName:            appName,
		CatalogPath:        strings.TrimSpace(os.Getenv("CATALOG_PATH")),
		HorizonCycles:      intFromEnv("SCHEDULE_HORIZON_CYCLES", careplan.DefaultHorizonCycles),
		PreviewLimit:       intFromEnv("SCHEDULE_PREVIEW_LIMIT", 3),
		CORSAllowedOrigins: listFromEnv("CORS_ALLOWED_ORIGINS", []string{"*"}),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.HorizonCycles <= 0 || c.HorizonCycles > careplan.MaxHorizonCycles {
		return fmt.Errorf("%w: SCHEDULE_HORIZON_CYCLES must be between 1 and %d", ErrInvalidConfig, careplan.MaxHorizonCycles)
	}
	if c.PreviewLimit < 0 {
		return fmt.Errorf("%w: SCHEDULE_PREVIEW_LIMIT must be >= 0", ErrInvalidConfig)
	}
	return nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

func intFromEnv(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func listFromEnv(key string, def []string) []string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	out := make([]string, 0)
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
