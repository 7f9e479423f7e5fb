// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package remap

import "errors"

// Error taxonomy for the codec and bridge surfaces.
// Failures travel as values; match kinds with errors.Is and inspect
// causes through the wrap chain. Pure transforms (namespace, merge)
// declare no errors and intercept no panics.

var (
	// ErrDecode reports a compressed payload that could not be restored:
	// an unrecognized compression format, or a corrupted or truncated stream.
	ErrDecode = errors.New("remap: malformed compressed payload")

	// ErrParse reports structured text that could not be parsed into a
	// [Value], or a value that has no canonical textual form.
	ErrParse = errors.New("remap: malformed structured text")

	// ErrAdaptation reports a blocking handle that faulted while being
	// bridged by [Adapt]. The handle's own fault is wrapped alongside.
	ErrAdaptation = errors.New("remap: blocking handle faulted")

	// ErrContinuation reports a continuation that faulted inside
	// [ThenApply] or [ThenCompose]. The captured fault is carried in the
	// wrap chain; it never escapes as a panic on another goroutine.
	ErrContinuation = errors.New("remap: continuation faulted")
)
