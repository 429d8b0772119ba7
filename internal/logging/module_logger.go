package logging

import (
	"context"

	"github.com/aldawaly/go-backoffice/pkg/interfaces"
)

const (
	rootModule       = "backoffice"
	apiModule        = "backoffice.api"
	mutationsModule  = "backoffice.mutations"
	fetchModule      = "backoffice.fetch"
	sessionModule    = "backoffice.session"
	navigationModule = "backoffice.navigation"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// APILogger returns the logger namespace reserved for the resource client.
func APILogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, apiModule)
}

// MutationsLogger returns the logger namespace reserved for the mutation layer.
func MutationsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, mutationsModule)
}

// FetchLogger returns the logger namespace reserved for public fetchers.
func FetchLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, fetchModule)
}

// SessionLogger returns the logger namespace reserved for session lifecycle.
func SessionLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, sessionModule)
}

// NavigationLogger returns the logger namespace reserved for the access gate.
func NavigationLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, navigationModule)
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so callers never need nil checks.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithContext(context.Context) interfaces.Logger { return n }
