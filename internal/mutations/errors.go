package mutations

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"

	"github.com/aldawaly/go-backoffice/internal/api"
)

const (
	mutationValidationCode   = "MUTATION_VALIDATION_FAILED"
	mutationContextCanceled  = "MUTATION_CONTEXT_CANCELED"
	mutationContextTimeout   = "MUTATION_CONTEXT_TIMEOUT"
	mutationContextErrorCode = "MUTATION_CONTEXT_ERROR"
	mutationExecuteFailed    = "MUTATION_EXECUTION_FAILED"
)

func wrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "mutation validation failed").
		WithTextCode(mutationValidationCode)
}

func wrapContextError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	switch err {
	case context.Canceled:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "mutation cancelled").
			WithTextCode(mutationContextCanceled)
	case context.DeadlineExceeded:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "mutation deadline exceeded").
			WithTextCode(mutationContextTimeout)
	default:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "mutation context error").
			WithTextCode(mutationContextErrorCode)
	}
}

func wrapExecuteError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "mutation failed").
		WithTextCode(mutationExecuteFailed)
}

// UserMessage extracts the text worth showing in a toast. Backend errors
// already carry a normalized user-facing message; anything else falls back to
// the error string.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
