// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package remap

import "fmt"

// Continuation combinators over [Future].
//
// Both combinators short-circuit on failure: a failed upstream future
// settles the returned future with the same error and the continuation
// is never invoked. Faults inside a continuation never escape across the
// asynchronous boundary; they settle the returned future instead.
//
// These are package functions rather than methods: the result type U is
// a new type parameter, which Go methods cannot introduce.

// ThenApply transforms a future's value with a synchronous continuation.
// The returned future settles with fn's value, with fn's error, or, when
// fn panics, with a failure wrapping [ErrContinuation] and the captured
// fault.
func ThenApply[T, U any](f *Future[T], fn func(T) (U, error)) *Future[U] {
	out := NewFuture[U]()
	f.OnDone(func(v T, err error) {
		if err != nil {
			out.Fail(err)
			return
		}
		u, err := apply(fn, v)
		if err != nil {
			out.Fail(err)
			return
		}
		out.Complete(u)
	})
	return out
}

// ThenCompose chains a future-producing continuation. The returned
// future adopts the eventual outcome of the future fn returns, success
// or failure. A fn error, panic, or nil future settles the returned
// future instead; panics and nil futures wrap [ErrContinuation].
func ThenCompose[T, U any](f *Future[T], fn func(T) (*Future[U], error)) *Future[U] {
	out := NewFuture[U]()
	f.OnDone(func(v T, err error) {
		if err != nil {
			out.Fail(err)
			return
		}
		inner, err := apply(fn, v)
		if err != nil {
			out.Fail(err)
			return
		}
		if inner == nil {
			out.Fail(fmt.Errorf("%w: continuation returned a nil future", ErrContinuation))
			return
		}
		inner.OnDone(func(u U, err error) {
			if err != nil {
				out.Fail(err)
				return
			}
			out.Complete(u)
		})
	})
	return out
}

// apply invokes a continuation, converting a panic into a failure
// wrapping [ErrContinuation].
func apply[T, U any](fn func(T) (U, error), v T) (u U, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrContinuation, r)
		}
	}()
	return fn(v)
}
