package slices

import (
	"context"
	"runtime/debug"

	"golang.org/x/sync/errgroup"
	"golang.org/x/xerrors"
)

type mapAsyncOption func(*mapAsyncParams)

type mapAsyncParams struct {
	limit      int
	panicCatch func(recover any) error
}

// WithLimit bounds the number of concurrently running mappers.
func WithLimit(limit int) mapAsyncOption {
	return func(o *mapAsyncParams) {
		o.limit = limit
	}
}

// WithPanicsCatch converts a recovered mapper panic into an error.
func WithPanicsCatch(fn func(recover any) error) mapAsyncOption {
	return func(o *mapAsyncParams) {
		o.panicCatch = fn
	}
}

// MapIndexedA is like MapIndexed, but maps each element in a dedicated
// goroutine. It returns the first error and cancels ctx for the rest.
func MapIndexedA[S ~[]T, T, M any](ctx context.Context, s S, fn func(context.Context, int, T) (M, error), options ...mapAsyncOption) ([]M, error) {
	if s == nil {
		return []M(nil), nil
	}

	params := &mapAsyncParams{
		panicCatch: func(recover any) error {
			return xerrors.Errorf("mapper panicked: %v\nStack trace: %s", recover, string(debug.Stack()))
		},
	}
	for _, opt := range options {
		opt(params)
	}

	g, ctx := errgroup.WithContext(ctx)
	if params.limit > 0 {
		g.SetLimit(params.limit)
	}

	res := make([]M, len(s))
	for i, v := range s {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = params.panicCatch(r)
				}
			}()
			res[i], err = fn(ctx, i, v)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}
