package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Config holds runtime configuration sourced from env vars.
type Config struct {
	AuthServiceURL       string
	HistoryServiceURL    string
	MovementsServiceURL  string
	PromotionsServiceURL string

	UseMocks       bool
	RequestTimeout time.Duration
	TransferMax    decimal.Decimal

	SessionFile   string
	SessionSecret string
	SessionTTL    time.Duration

	LogLevel string

	// Mock server only.
	Port        string
	CORSOrigins []string
	InitBalance decimal.Decimal
}

// Load reads configuration from the environment and performs minimal validation.
func Load() (Config, error) {
	cfg := Config{
		AuthServiceURL:       trimSlash(fallback(os.Getenv("AUTH_SERVICE_URL"), "http://localhost:8080")),
		HistoryServiceURL:    trimSlash(fallback(os.Getenv("HISTORY_SERVICE_URL"), "http://localhost:8000")),
		MovementsServiceURL:  trimSlash(fallback(os.Getenv("MOVEMENTS_SERVICE_URL"), "http://localhost:8001")),
		PromotionsServiceURL: trimSlash(fallback(os.Getenv("PROMOTIONS_SERVICE_URL"), "http://localhost:8002")),
		SessionFile:          strings.TrimSpace(os.Getenv("SESSION_FILE")),
		SessionSecret:        strings.TrimSpace(os.Getenv("SESSION_SECRET")),
		LogLevel:             strings.ToLower(fallback(os.Getenv("LOG_LEVEL"), "info")),
		Port:                 fallback(os.Getenv("PORT"), "8080"),
		CORSOrigins:          parseCSV(fallback(os.Getenv("CORS_ALLOWED_ORIGINS"), "*")),
	}

	useMocks, err := strconv.ParseBool(fallback(os.Getenv("USE_MOCKS"), "false"))
	if err != nil {
		return Config{}, fmt.Errorf("USE_MOCKS: %w", err)
	}
	cfg.UseMocks = useMocks

	timeout, err := time.ParseDuration(fallback(os.Getenv("REQUEST_TIMEOUT"), "0s"))
	if err != nil || timeout < 0 {
		return Config{}, fmt.Errorf("invalid REQUEST_TIMEOUT %q", os.Getenv("REQUEST_TIMEOUT"))
	}
	cfg.RequestTimeout = timeout

	limit, err := decimal.NewFromString(fallback(os.Getenv("TRANSFER_MAX"), "500"))
	if err != nil || !limit.IsPositive() {
		return Config{}, fmt.Errorf("invalid TRANSFER_MAX %q", os.Getenv("TRANSFER_MAX"))
	}
	cfg.TransferMax = limit

	initBalance, err := decimal.NewFromString(fallback(os.Getenv("INIT_BALANCE"), "500"))
	if err != nil || initBalance.IsNegative() {
		return Config{}, fmt.Errorf("invalid INIT_BALANCE %q", os.Getenv("INIT_BALANCE"))
	}
	cfg.InitBalance = initBalance

	ttlMinutes, err := strconv.Atoi(fallback(os.Getenv("SESSION_TTL_MINUTES"), "1440"))
	if err != nil || ttlMinutes <= 0 {
		return Config{}, fmt.Errorf("invalid SESSION_TTL_MINUTES %q", os.Getenv("SESSION_TTL_MINUTES"))
	}
	cfg.SessionTTL = time.Duration(ttlMinutes) * time.Minute

	if cfg.SessionFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve session file: %w", err)
		}
		cfg.SessionFile = filepath.Join(home, ".yapekuna", "session")
	}

	for name, raw := range map[string]string{
		"AUTH_SERVICE_URL":       cfg.AuthServiceURL,
		"HISTORY_SERVICE_URL":    cfg.HistoryServiceURL,
		"MOVEMENTS_SERVICE_URL":  cfg.MovementsServiceURL,
		"PROMOTIONS_SERVICE_URL": cfg.PromotionsServiceURL,
	} {
		if err := validateURL(raw); err != nil {
			return Config{}, fmt.Errorf("%s: %w", name, err)
		}
	}

	return cfg, nil
}

// RequireSessionSecret checks the terminal client has a key to sign sessions
// with. In mock mode a fixed development key is used when none is set.
func (c *Config) RequireSessionSecret() error {
	if c.SessionSecret != "" {
		return nil
	}
	if !c.UseMocks {
		return errors.New("SESSION_SECRET is required")
	}
	c.SessionSecret = "yapekuna-mock-session-secret"
	return nil
}

// HTTPAddress returns the host:port pair for the mock server to bind to.
func (c Config) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

func validateURL(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", raw, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("invalid url %q: missing scheme or host", raw)
	}
	return nil
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}

func trimSlash(value string) string {
	return strings.TrimRight(value, "/")
}

func parseCSV(input string) []string {
	parts := strings.Split(input, ",")
	var out []string
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
