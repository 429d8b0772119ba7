package interfaces

import "context"

// Notifier surfaces user-facing outcome messages for admin operations. The
// embedding UI decides how a notification is rendered (toast, status bar);
// the data layer only guarantees that every settled mutation produces exactly
// one Success or Error call.
type Notifier interface {
	Success(ctx context.Context, message string)
	Error(ctx context.Context, message string)
}

// NotifierFunc pair adapts plain functions into a Notifier.
type NotifierFunc struct {
	OnSuccess func(ctx context.Context, message string)
	OnError   func(ctx context.Context, message string)
}

func (n NotifierFunc) Success(ctx context.Context, message string) {
	if n.OnSuccess != nil {
		n.OnSuccess(ctx, message)
	}
}

func (n NotifierFunc) Error(ctx context.Context, message string) {
	if n.OnError != nil {
		n.OnError(ctx, message)
	}
}
