package api

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/lib/pq"
	"go.temporal.io/sdk/client"
	"golang.org/x/text/language"

	"github.com/Apurer/huerto-store/internal/shared/table"
)

// Config carries environment-driven settings for the API process.
type Config struct {
	Port              string
	PostgresDSN       string
	CatalogAPIURL     string
	CurrencyLocale    language.Tag
	TemporalAddress   string
	TemporalNamespace string
	TemporalDisabled  bool
	// SessionIssueDisabled turns off the credential-less POST /api/session.
	SessionIssueDisabled bool
}

// LoadConfig reads environment variables, applies defaults, and validates basic constraints.
func LoadConfig() (Config, error) {
	cfg := Config{
		Port:              envDefault("PORT", "8080"),
		PostgresDSN:       strings.TrimSpace(os.Getenv("POSTGRES_DSN")),
		CatalogAPIURL:     strings.TrimRight(strings.TrimSpace(os.Getenv("CATALOG_API_URL")), "/"),
		CurrencyLocale:    table.DefaultLocale,
		TemporalAddress:   envDefault("TEMPORAL_ADDRESS", client.DefaultHostPort),
		TemporalNamespace: envDefault("TEMPORAL_NAMESPACE", client.DefaultNamespace),
		TemporalDisabled:  isTruthy(os.Getenv("TEMPORAL_DISABLED")),

		SessionIssueDisabled: isTruthy(os.Getenv("SESSION_ISSUE_DISABLED")),
	}
	if err := validateDSN(cfg.PostgresDSN); err != nil {
		return Config{}, err
	}
	if cfg.CatalogAPIURL != "" {
		u, err := url.Parse(cfg.CatalogAPIURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return Config{}, fmt.Errorf("CATALOG_API_URL must be an absolute URL")
		}
	}
	if raw := strings.TrimSpace(os.Getenv("CURRENCY_LOCALE")); raw != "" {
		tag, err := language.Parse(raw)
		if err != nil {
			return Config{}, fmt.Errorf("CURRENCY_LOCALE: %w", err)
		}
		cfg.CurrencyLocale = tag
	}
	return cfg, nil
}

// validateDSN checks URL-form DSNs; key=value DSNs are left to the driver.
func validateDSN(dsn string) error {
	if !strings.HasPrefix(dsn, "postgres://") && !strings.HasPrefix(dsn, "postgresql://") {
		return nil
	}
	if _, err := pq.ParseURL(dsn); err != nil {
		return fmt.Errorf("POSTGRES_DSN: %w", err)
	}
	return nil
}

// SyncEnabled reports whether catalog commits are mirrored to the external API.
func (c Config) SyncEnabled() bool {
	return c.CatalogAPIURL != ""
}

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func isTruthy(value string) bool {
	value = strings.TrimSpace(strings.ToLower(value))
	return value == "1" || value == "true" || value == "yes"
}
