// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package remap

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// Pool is a bounded [Executor]: at most limit tasks run at once. The
// bound applies to running tasks, not submissions. [Pool.Execute] never
// blocks the caller, so [Adapt] stays non-blocking even at the bound.
type Pool struct {
	sem *semaphore.Weighted
}

// NewPool creates a pool running at most limit tasks concurrently.
// A limit of zero or less means unbounded.
func NewPool(limit int) *Pool {
	if limit <= 0 {
		return &Pool{}
	}
	return &Pool{sem: semaphore.NewWeighted(int64(limit))}
}

// Execute schedules the task and returns immediately. The task runs on
// its own goroutine once a slot frees up; submission order does not fix
// execution order.
func (p *Pool) Execute(task func()) {
	if p.sem == nil {
		go task()
		return
	}
	go func() {
		// Acquire cannot fail with a Background context.
		_ = p.sem.Acquire(context.Background(), 1)
		defer p.sem.Release(1)
		task()
	}()
}
