package mutations

import (
	"context"
	"time"

	command "github.com/goliatone/go-command"

	"github.com/aldawaly/go-backoffice/internal/logging"
	"github.com/aldawaly/go-backoffice/pkg/interfaces"
)

const defaultHandlerTimeout = 30 * time.Second

// HandlerOption configures a Handler instance.
type HandlerOption[T command.Message] func(*Handler[T])

// Handler wraps a write against the backend with the concerns every admin
// mutation shares: message validation, timeout enforcement, logging, cache
// invalidation, and toast notification. Cache entries are only evicted after
// the backend confirms the write; a failed mutation leaves every cached read
// untouched.
type Handler[T command.Message] struct {
	exec       command.CommandFunc[T]
	logger     interfaces.Logger
	timeout    time.Duration
	operation  string
	cache      interfaces.CacheProvider
	invalidate func(msg T) []string
	notifier   interfaces.Notifier
	successMsg string
	pending    *Tracker
}

// NewHandler creates a handler that satisfies go-command's Commander
// interface while applying the mutation-side concerns.
func NewHandler[T command.Message](fn command.CommandFunc[T], opts ...HandlerOption[T]) *Handler[T] {
	if fn == nil {
		panic("mutations: handler function cannot be nil")
	}
	h := &Handler[T]{
		exec:    fn,
		logger:  logging.NoOp(),
		timeout: defaultHandlerTimeout,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Execute conforms to command.Commander[T].Execute. The notifier fires exactly
// once per call: Success after the backend confirms and the cache is evicted,
// Error on any failure.
func (h *Handler[T]) Execute(ctx context.Context, msg T) error {
	ctx = ensureContext(ctx)

	if err := command.ValidateMessage(msg); err != nil {
		err = wrapValidationError(err)
		h.notifyError(ctx, err)
		return err
	}

	ctx, cancel := h.withTimeout(ctx)
	defer cancel()

	if err := ctx.Err(); err != nil {
		err = wrapContextError(err)
		h.notifyError(ctx, err)
		return err
	}

	if h.pending != nil {
		h.pending.begin()
		defer h.pending.end()
	}

	messageType := command.GetMessageType(msg)
	fields := map[string]any{
		"mutation": messageType,
	}
	if h.operation != "" {
		fields["operation"] = h.operation
	}
	logger := logging.WithFields(h.logger, fields)
	logger.Debug("mutation.execute.start")

	if err := h.exec(ctx, msg); err != nil {
		logger.Error("mutation.execute.failed", "error", err)
		err = wrapExecuteError(err)
		h.notifyError(ctx, err)
		return err
	}

	h.evict(ctx, msg, logger)

	if h.notifier != nil && h.successMsg != "" {
		h.notifier.Success(ctx, h.successMsg)
	}
	logger.Info("mutation.execute.success")
	return nil
}

func (h *Handler[T]) evict(ctx context.Context, msg T, logger interfaces.Logger) {
	if h.cache == nil || h.invalidate == nil {
		return
	}
	for _, prefix := range h.invalidate(msg) {
		if prefix == "" {
			continue
		}
		if err := h.cache.DeleteByPrefix(ctx, prefix); err != nil {
			// Stale reads heal on the next fetch; the write itself succeeded.
			logger.Warn("mutation.cache.evict_failed", "prefix", prefix, "error", err)
		}
	}
}

func (h *Handler[T]) notifyError(ctx context.Context, err error) {
	if h.notifier == nil || err == nil {
		return
	}
	h.notifier.Error(ctx, UserMessage(err))
}

// WithTimeout overrides the default execution timeout.
func WithTimeout[T command.Message](timeout time.Duration) HandlerOption[T] {
	return func(h *Handler[T]) {
		if timeout <= 0 {
			h.timeout = 0
			return
		}
		h.timeout = timeout
	}
}

// WithLogger injects the logger used during execution. Defaults to a no-op logger.
func WithLogger[T command.Message](logger interfaces.Logger) HandlerOption[T] {
	return func(h *Handler[T]) {
		if logger == nil {
			h.logger = logging.NoOp()
			return
		}
		h.logger = logger
	}
}

// WithOperation sets a human-friendly operation name emitted with every log entry.
func WithOperation[T command.Message](operation string) HandlerOption[T] {
	return func(h *Handler[T]) {
		h.operation = operation
	}
}

// WithInvalidation registers the cache prefixes to evict once the backend
// confirms the write. The callback runs per message so item keys can be
// derived from the payload.
func WithInvalidation[T command.Message](cache interfaces.CacheProvider, fn func(msg T) []string) HandlerOption[T] {
	return func(h *Handler[T]) {
		h.cache = cache
		h.invalidate = fn
	}
}

// WithNotifier wires the toast surface. successMsg is shown verbatim after a
// confirmed write; failures show the user-facing message of the error.
func WithNotifier[T command.Message](notifier interfaces.Notifier, successMsg string) HandlerOption[T] {
	return func(h *Handler[T]) {
		h.notifier = notifier
		h.successMsg = successMsg
	}
}

// WithPending shares an in-flight tracker so UI surfaces can disable
// submission while a mutation runs.
func WithPending[T command.Message](tracker *Tracker) HandlerOption[T] {
	return func(h *Handler[T]) {
		h.pending = tracker
	}
}

func (h *Handler[T]) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, h.timeout)
}

func ensureContext(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
