package backoffice

import "github.com/aldawaly/go-backoffice/internal/runtimeconfig"

var (
	ErrBaseURLRequired          = runtimeconfig.ErrBaseURLRequired
	ErrDefaultLocaleUnsupported = runtimeconfig.ErrDefaultLocaleUnsupported
	ErrSessionProviderUnknown   = runtimeconfig.ErrSessionProviderUnknown
	ErrSessionDSNRequired       = runtimeconfig.ErrSessionDSNRequired
	ErrCacheTTLInvalid          = runtimeconfig.ErrCacheTTLInvalid
	ErrLoggingProviderRequired  = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown   = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid      = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid     = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config           = runtimeconfig.Config
	CacheConfig      = runtimeconfig.CacheConfig
	SessionConfig    = runtimeconfig.SessionConfig
	NavigationConfig = runtimeconfig.NavigationConfig
	Features         = runtimeconfig.Features
	LoggingConfig    = runtimeconfig.LoggingConfig
)

// DefaultConfig returns opinionated defaults: Arabic-first, caching on,
// in-memory session.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
