// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package remap_test

import (
	"context"
	"strconv"
	"testing"

	"code.hybscloud.com/remap"
)

// benchFlat returns a flat mapping of n entries spread over 8 namespaces.
func benchFlat(n int) remap.Mapping {
	m := make(remap.Mapping, n)
	for i := range n {
		ns := "ns" + strconv.Itoa(i%8)
		m[remap.Qualified(ns, "key"+strconv.Itoa(i))] = remap.Int(int64(i))
	}
	return m
}

// benchNested returns a two-level mapping with scalar leaves.
func benchNested() remap.Mapping {
	return remap.Mapping{
		remap.Name("server"): remap.Mapping{
			remap.Name("host"):  remap.String("localhost"),
			remap.Name("port"):  remap.Int(8080),
			remap.Name("tls"):   remap.Bool(true),
			remap.Name("paths"): remap.Sequence{remap.String("/"), remap.String("/health")},
		},
		remap.Name("limits"): remap.Mapping{
			remap.Name("rps"):   remap.Float(1500.5),
			remap.Name("burst"): remap.Int(64),
		},
		remap.Name("tags"): remap.NewSet(remap.String("edge"), remap.String("canary")),
	}
}

// BenchmarkParseKey measures qualified key parsing.
func BenchmarkParseKey(b *testing.B) {
	for b.Loop() {
		_ = remap.ParseKey("namespace/name")
	}
}

// BenchmarkKeyString measures the textual form of a qualified key.
func BenchmarkKeyString(b *testing.B) {
	k := remap.Qualified("namespace", "name")
	for b.Loop() {
		_ = k.String()
	}
}

// BenchmarkGroupByNamespace measures partitioning a 64-entry mapping.
func BenchmarkGroupByNamespace(b *testing.B) {
	m := benchFlat(64)
	for b.Loop() {
		_ = remap.GroupByNamespace(m)
	}
}

// BenchmarkUngroupNamespaces measures flattening a grouped mapping.
func BenchmarkUngroupNamespaces(b *testing.B) {
	g := remap.GroupByNamespace(benchFlat(64))
	for b.Loop() {
		_ = remap.UngroupNamespaces(g)
	}
}

// BenchmarkStripNamespaces measures bare-naming a 64-entry mapping.
func BenchmarkStripNamespaces(b *testing.B) {
	m := benchFlat(64)
	for b.Loop() {
		_ = remap.StripNamespaces(m)
	}
}

// BenchmarkMergeMaps measures a deep merge of two overlapping mappings.
func BenchmarkMergeMaps(b *testing.B) {
	base := benchNested()
	override := remap.Mapping{
		remap.Name("server"): remap.Mapping{
			remap.Name("port"): remap.Int(9090),
		},
		remap.Name("limits"): remap.Mapping{
			remap.Name("rps"): remap.Float(2000),
		},
	}
	for b.Loop() {
		_ = remap.MergeMaps(base, override)
	}
}

// BenchmarkEqual measures structural comparison of two equal nested mappings.
func BenchmarkEqual(b *testing.B) {
	x, y := benchNested(), benchNested()
	for b.Loop() {
		_ = remap.Equal(x, y)
	}
}

// BenchmarkEncodeText measures canonical rendering of a nested mapping.
func BenchmarkEncodeText(b *testing.B) {
	m := benchNested()
	for b.Loop() {
		_, _ = remap.EncodeText(m)
	}
}

// BenchmarkDecodeText measures parsing canonical text back into a value.
func BenchmarkDecodeText(b *testing.B) {
	data, err := remap.EncodeText(benchNested())
	if err != nil {
		b.Fatal(err)
	}
	for b.Loop() {
		_, _ = remap.DecodeText(data)
	}
}

// BenchmarkCompressGzip measures the full encode and compress path.
func BenchmarkCompressGzip(b *testing.B) {
	m := benchNested()
	for b.Loop() {
		_, _ = remap.CompressWith(remap.Gzip, m)
	}
}

// BenchmarkCompressZstd measures the zstd variant of the same path.
func BenchmarkCompressZstd(b *testing.B) {
	m := benchNested()
	for b.Loop() {
		_, _ = remap.CompressWith(remap.Zstd, m)
	}
}

// BenchmarkDecompressGzip measures sniffing, inflating, and parsing.
func BenchmarkDecompressGzip(b *testing.B) {
	data, err := remap.CompressWith(remap.Gzip, benchNested())
	if err != nil {
		b.Fatal(err)
	}
	for b.Loop() {
		_, _ = remap.Decompress(data)
	}
}

// BenchmarkDecompressZstd measures the zstd variant of the same path.
func BenchmarkDecompressZstd(b *testing.B) {
	data, err := remap.CompressWith(remap.Zstd, benchNested())
	if err != nil {
		b.Fatal(err)
	}
	for b.Loop() {
		_, _ = remap.Decompress(data)
	}
}

// BenchmarkFutureCompleteAwait measures one settle and one wait.
func BenchmarkFutureCompleteAwait(b *testing.B) {
	ctx := context.Background()
	for b.Loop() {
		f := remap.NewFuture[int]()
		f.Complete(42)
		_, _ = f.Await(ctx)
	}
}

// BenchmarkThenApplyChain measures a three-stage continuation chain.
func BenchmarkThenApplyChain(b *testing.B) {
	ctx := context.Background()
	inc := func(x int) (int, error) { return x + 1, nil }
	for b.Loop() {
		f := remap.NewFuture[int]()
		g := remap.ThenApply(remap.ThenApply(remap.ThenApply(f, inc), inc), inc)
		f.Complete(0)
		_, _ = g.Await(ctx)
	}
}
