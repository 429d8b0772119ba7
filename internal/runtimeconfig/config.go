package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"

	urlkit "github.com/goliatone/go-urlkit"

	"github.com/aldawaly/go-backoffice/internal/locale"
)

// ErrBaseURLRequired indicates the backend address was left empty.
var ErrBaseURLRequired = errors.New("backoffice config: api base url is required")

// ErrDefaultLocaleUnsupported rejects locales outside the site's pair.
var ErrDefaultLocaleUnsupported = errors.New("backoffice config: default locale is unsupported")

var ErrSessionProviderUnknown = errors.New("backoffice config: session provider is invalid")
var ErrSessionDSNRequired = errors.New("backoffice config: session dsn is required for the bun provider")
var ErrCacheTTLInvalid = errors.New("backoffice config: cache ttl must be zero or positive")
var ErrLoggingProviderRequired = errors.New("backoffice config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("backoffice config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("backoffice config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("backoffice config: logging format is invalid")

// Config aggregates runtime bindings for the back-office module. Fields use
// simple types so host applications can load them from any source.
type Config struct {
	BaseURL       string
	DefaultLocale string
	Timeout       time.Duration
	Cache         CacheConfig
	Session       SessionConfig
	Navigation    NavigationConfig
	Features      Features
	Logging       LoggingConfig
}

// CacheConfig captures cache behaviour toggles.
type CacheConfig struct {
	Enabled    bool
	DefaultTTL time.Duration
}

// SessionConfig selects where the authenticated session persists between
// restarts. The bun provider keeps it in a local SQLite database.
type SessionConfig struct {
	Provider string
	DSN      string
}

// NavigationConfig captures routing configuration for localized URL building.
type NavigationConfig struct {
	RouteConfig *urlkit.Config
}

// Features toggles module functionality.
type Features struct {
	Logger bool
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns opinionated defaults: Arabic-first, caching on,
// in-memory session.
func DefaultConfig() Config {
	return Config{
		DefaultLocale: locale.Default,
		Timeout:       15 * time.Second,
		Cache: CacheConfig{
			Enabled:    true,
			DefaultTTL: 5 * time.Minute,
		},
		Session: SessionConfig{
			Provider: "memory",
		},
		Navigation: NavigationConfig{},
		Features:   Features{},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return ErrBaseURLRequired
	}
	if cfg.DefaultLocale != "" && !locale.Supported(cfg.DefaultLocale) {
		return fmt.Errorf("%w: %s", ErrDefaultLocaleUnsupported, cfg.DefaultLocale)
	}
	switch provider := normalize(cfg.Session.Provider); provider {
	case "", "memory":
	case "bun":
		if strings.TrimSpace(cfg.Session.DSN) == "" {
			return ErrSessionDSNRequired
		}
	default:
		return fmt.Errorf("%w: %s", ErrSessionProviderUnknown, provider)
	}
	if cfg.Cache.DefaultTTL < 0 {
		return ErrCacheTTLInvalid
	}
	if cfg.Features.Logger {
		provider := normalize(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch normalize(level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch normalize(format) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
