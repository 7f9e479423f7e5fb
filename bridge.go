// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package remap

import "fmt"

// Bridge between the blocking and the composable worlds: a blocking
// computation handle goes in, a pending [Future] comes out, and the wait
// happens on a caller-supplied executor, never on the calling goroutine.

// Executor schedules tasks for asynchronous execution. No ordering is
// guaranteed between tasks. [Pool] is the bounded implementation this
// package provides; any scheduler satisfying the contract serves.
type Executor interface {
	Execute(task func())
}

// ExecutorFunc adapts a scheduling function to [Executor].
type ExecutorFunc func(task func())

// Execute calls f(task).
func (f ExecutorFunc) Execute(task func()) { f(task) }

// Adapt bridges a blocking handle into a composable future. The wait
// runs as one task on exec while Adapt returns immediately with the
// pending future; the adapter owns wait for the duration of that task
// and invokes it exactly once.
//
// A wait error or panic settles the future with a failure wrapping
// [ErrAdaptation] and the original fault, in that order, so errors.Is
// matches both. No fault from wait ever reaches the caller of Adapt
// synchronously, and none escapes on the executor's goroutine.
//
// Adapt provides no cancellation: a caller wanting to abandon the result
// stops waiting on the future; the handle itself stays the caller's to
// manage. Panics on a nil executor.
func Adapt[T any](wait func() (T, error), exec Executor) *Future[T] {
	if exec == nil {
		panic("remap: adapt with nil executor")
	}
	out := NewFuture[T]()
	exec.Execute(func() {
		v, err := runWait(wait)
		if err != nil {
			out.Fail(fmt.Errorf("%w: %w", ErrAdaptation, err))
			return
		}
		out.Complete(v)
	})
	return out
}

// runWait invokes the blocking handle, converting a panic into an error
// so the bridging task itself never faults.
func runWait[T any](wait func() (T, error)) (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			if rerr, ok := r.(error); ok {
				err = rerr
				return
			}
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return wait()
}
