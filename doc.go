// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package remap provides small, composable helpers for moving structured
// data across boundaries: restructuring flat mappings along namespace
// lines, deep-merging nested mappings with caller-controlled conflict
// resolution, round-tripping values through a compressed textual codec,
// and bridging blocking computations into composable futures.
//
// The four concerns are independent of one another at runtime, but they
// share one value model and one theme: each carries data across a
// boundary (namespace boundary, merge boundary, wire boundary,
// concurrency boundary) under an explicit correctness contract.
//
// # Value Model
//
// Structured data is the closed variant [Value]:
//
//   - [Mapping]: unordered [Key] → [Value] collection, possibly nested
//   - [Sequence]: ordered list
//   - [Set]: unique elements, order-free identity ([NewSet], [Set.Contains])
//   - [String], [Int], [Float], [Bool], [Nil]: scalars
//
// [Key] is a two-segment identifier (optional namespace, required name)
// compared structurally ([ParseKey], [Key.String], [Qualified], [Name]).
// [Equal] is structural equality over the whole variant; Int and Float
// never cross. [Mapping.Clone] deep-copies when callers need isolation.
//
// # Namespace Transforms
//
// Pure reshaping of flat mappings along the namespace segment:
//
//   - [StripNamespaces]: discard qualifiers, keep bare names
//   - [ExcludeNamespace]: drop one namespace's entries
//   - [ExtractNamespace]: select one namespace into nested form
//   - [GroupByNamespace]: partition all entries into nested form
//   - [UngroupNamespaces]: flatten nested form back to qualified keys
//   - [ReplaceInKeys]: literal substring rewrite of every key
//
// GroupByNamespace and UngroupNamespaces are inverses; unqualified
// entries travel through the empty-named bucket.
//
// # Deep Merge
//
// [DeepMerge] combines nested mappings depth-first under the merge/replace
// contract: at a shared key, all-mapping values merge recursively, any
// other mix goes to the caller's [Combiner] in input order. Keys present
// in one input pass through untouched. [MergeMaps] applies the default
// [LastWins] policy. The engine recovers nothing: a combiner fault
// propagates synchronously to the caller.
//
// # Codec
//
// [Compress] renders a value to canonical text ([EncodeText]) and runs it
// through a lossless compression stream, finalized before returning;
// [Decompress] recognizes the stream format from the payload and reverses
// both steps ([DecodeText]). For every representable value the round trip
// restores an [Equal] value. Compressed bytes are opaque: byte equality
// across calls is not promised. [CompressWith] selects [Gzip] or [Zstd].
//
// # Futures and Bridging
//
// [Future] is a one-shot result container: created pending ([NewFuture]),
// settled exactly once ([Future.Complete], [Future.Fail]), observed via
// [Future.Await], [Future.Done], or [Future.OnDone]. [Completed] and
// [Failed] construct settled futures.
//
// [Adapt] bridges a blocking handle onto an [Executor] and returns a
// pending future immediately; handle faults settle the future with an
// [ErrAdaptation] failure instead of escaping. [ThenApply] and
// [ThenCompose] chain continuations with failure short-circuiting;
// continuation faults become [ErrContinuation] failures. [Pool] is the
// provided bounded executor; [ExecutorFunc] adapts plain functions.
//
// # Errors
//
// Failures are values, matched with errors.Is against [ErrDecode],
// [ErrParse], [ErrAdaptation], and [ErrContinuation]; original faults
// stay visible through the wrap chain. The pure components declare no
// errors and intercept no panics. Nothing in this package logs.
//
// # Example
//
//	flat := remap.Mapping{
//		remap.Qualified("db", "host"): remap.String("localhost"),
//		remap.Qualified("db", "port"): remap.Int(5432),
//		remap.Name("debug"):           remap.Bool(true),
//	}
//	overrides := remap.Mapping{
//		remap.Name("db"): remap.Mapping{remap.Name("port"): remap.Int(6432)},
//	}
//
//	grouped := remap.GroupByNamespace(flat)
//	merged := remap.MergeMaps(grouped, overrides)
//
//	payload, err := remap.Compress(merged)
//	// ...
//	restored, err := remap.Decompress(payload)
//	// remap.Equal(merged, restored) == true
package remap
