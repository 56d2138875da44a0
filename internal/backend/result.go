package backend

import (
	"context"

	apperrors "github.com/spec-kit/supplychain-dashboard/pkg/util/errorutil"
)

// Result is the outcome of one backend fetch: either Value or Err is meaningful.
type Result[T any] struct {
	Value T
	Err   error
}

// Do runs fetch and wraps its outcome.
func Do[T any](ctx context.Context, fetch func(context.Context) (T, error)) Result[T] {
	v, err := fetch(ctx)
	if err != nil {
		var zero T
		return Result[T]{Value: zero, Err: err}
	}
	return Result[T]{Value: v}
}

// OK reports whether the fetch succeeded.
func (r Result[T]) OK() bool {
	return r.Err == nil
}

// Unauthorized reports whether the backend rejected the token.
func (r Result[T]) Unauthorized() bool {
	return apperrors.IsUnauthorized(r.Err)
}

// Message is the user-facing text of a failed fetch.
func (r Result[T]) Message() string {
	if r.Err == nil {
		return ""
	}
	return apperrors.ToDomainError(r.Err).Message
}
