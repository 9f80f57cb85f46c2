package jira

import "context"

// Response carries either a decoded payload or the error that prevented it.
type Response[T any] struct {
	Data T
	Err  error
}

// goAsync runs fn in its own goroutine. The channel is buffered so the
// goroutine never blocks when nobody waits for the result anymore.
func goAsync[T any](ctx context.Context, fn func(context.Context) (T, error)) <-chan Response[T] {
	respch := make(chan Response[T], 1)

	go func() {
		data, err := fn(ctx)
		respch <- Response[T]{Data: data, Err: err}
	}()

	return respch
}

// Await blocks until the response arrives or ctx is done.
func Await[T any](ctx context.Context, respch <-chan Response[T]) (T, error) {
	select {
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	case resp := <-respch:
		return resp.Data, resp.Err
	}
}
