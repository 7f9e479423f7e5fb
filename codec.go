// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package remap

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Compressed round-trip codec: canonical text through a lossless
// compression stream. The compressed bytes are opaque. Equal values
// restore Equal, but byte equality of the payload across calls is not
// part of the contract.

// Compression selects the stream format produced by [CompressWith].
type Compression int8

const (
	// Gzip is the default format.
	Gzip Compression = iota
	// Zstd trades a newer format for faster, tighter streams.
	Zstd
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// Compress renders the value to canonical text and compresses it with
// the default format. The stream is fully finalized before returning;
// the result is self-contained.
func Compress(v Value) ([]byte, error) {
	return CompressWith(Gzip, v)
}

// CompressWith is [Compress] with an explicit stream format.
// Panics on a Compression value this package does not define.
func CompressWith(c Compression, v Value) ([]byte, error) {
	text, err := EncodeText(v)
	if err != nil {
		return nil, err
	}
	switch c {
	case Gzip:
		return gzipCompress(text)
	case Zstd:
		return zstdEncoder().EncodeAll(text, nil), nil
	}
	panic("remap: unknown compression format")
}

// Decompress restores a value from a compressed payload, whatever format
// produced it: the stream format is recognized from the payload itself.
// Fails with [ErrDecode] when the bytes are not a valid stream of a
// known format, and with [ErrParse] when the decompressed text does not
// parse back into a value.
func Decompress(data []byte) (Value, error) {
	text, err := expand(data)
	if err != nil {
		return nil, err
	}
	return DecodeText(text)
}

// expand inflates a payload after sniffing its magic bytes.
func expand(data []byte) ([]byte, error) {
	switch {
	case bytes.HasPrefix(data, gzipMagic):
		zr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecode, err)
		}
		defer zr.Close()
		text, err := io.ReadAll(zr)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecode, err)
		}
		return text, nil
	case bytes.HasPrefix(data, zstdMagic):
		text, err := zstdDecoder().DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecode, err)
		}
		return text, nil
	}
	return nil, fmt.Errorf("%w: unrecognized compression format", ErrDecode)
}

// Gzip writers are pooled and reset per call; a writer returns to the
// pool only after a clean close, so pooled writers are always reusable.
var gzipWriters = sync.Pool{New: func() any { return gzip.NewWriter(nil) }}

func gzipCompress(text []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := gzipWriters.Get().(*gzip.Writer)
	zw.Reset(&buf)
	if _, err := zw.Write(text); err != nil {
		return nil, fmt.Errorf("remap: compress: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("remap: compress: %w", err)
	}
	gzipWriters.Put(zw)
	return buf.Bytes(), nil
}

// The zstd encoder and decoder are stateless for whole-buffer use and
// shared process-wide, built on first need. Construction with no options
// cannot fail.
var (
	zstdEncOnce sync.Once
	zstdEnc     *zstd.Encoder
	zstdDecOnce sync.Once
	zstdDec     *zstd.Decoder
)

func zstdEncoder() *zstd.Encoder {
	zstdEncOnce.Do(func() { zstdEnc, _ = zstd.NewWriter(nil) })
	return zstdEnc
}

func zstdDecoder() *zstd.Decoder {
	zstdDecOnce.Do(func() { zstdDec, _ = zstd.NewReader(nil) })
	return zstdDec
}
