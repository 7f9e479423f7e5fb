// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package remap

import (
	"context"
	"sync"
)

// Future is a one-shot asynchronous result container: created pending,
// settled exactly once with a value or an error, then immutable. The
// settled result is fully published before any observer sees it, whether
// through [Future.Await], [Future.Done], or an attached continuation.
type Future[T any] struct {
	mu      sync.Mutex
	done    chan struct{}
	val     T
	err     error
	settled bool
	cbs     []func(T, error)
}

// NewFuture creates a pending future.
func NewFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// Completed creates a future already settled with v.
func Completed[T any](v T) *Future[T] {
	f := NewFuture[T]()
	f.Complete(v)
	return f
}

// Failed creates a future already settled with err.
func Failed[T any](err error) *Future[T] {
	f := NewFuture[T]()
	f.Fail(err)
	return f
}

// Complete settles the future successfully. The first settle wins;
// Complete reports whether this call was it.
func (f *Future[T]) Complete(v T) bool {
	return f.settle(v, nil)
}

// Fail settles the future with a failure. The first settle wins; Fail
// reports whether this call was it. A nil error is a misuse and panics:
// failure and success must stay distinguishable.
func (f *Future[T]) Fail(err error) bool {
	if err == nil {
		panic("remap: future failed with nil error")
	}
	var zero T
	return f.settle(zero, err)
}

func (f *Future[T]) settle(v T, err error) bool {
	f.mu.Lock()
	if f.settled {
		f.mu.Unlock()
		return false
	}
	f.val, f.err = v, err
	f.settled = true
	cbs := f.cbs
	f.cbs = nil
	close(f.done)
	f.mu.Unlock()
	for _, cb := range cbs {
		cb(v, err)
	}
	return true
}

// Done returns a channel closed when the future settles.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the future settles or ctx ends, whichever is first,
// and returns the outcome. The context bounds only this wait: an expired
// ctx abandons the wait with ctx's error, it cancels nothing upstream.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// OnDone attaches a continuation invoked exactly once with the settled
// outcome. Continuations attached before settlement run on the settling
// goroutine in attach order; ordering across independently attached
// continuations is otherwise unspecified. Attached after settlement, the
// continuation runs inline before OnDone returns.
func (f *Future[T]) OnDone(cb func(v T, err error)) {
	f.mu.Lock()
	if !f.settled {
		f.cbs = append(f.cbs, cb)
		f.mu.Unlock()
		return
	}
	v, err := f.val, f.err
	f.mu.Unlock()
	cb(v, err)
}
