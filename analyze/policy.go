package analyze

import (
	"context"
	"time"
)

// CallPolicy bounds one external call and declares the value that replaces
// its result when the call fails or times out.
type CallPolicy[T any] struct {
	Timeout  time.Duration
	Fallback func() T
}

// Do runs fn under the policy's timeout. Any error from fn, including
// deadline expiry, yields the fallback value instead.
func (p CallPolicy[T]) Do(ctx context.Context, fn func(ctx context.Context) (T, error)) T {
	if p.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.Timeout)
		defer cancel()
	}

	v, err := fn(ctx)
	if err != nil {
		return p.Fallback()
	}
	return v
}
