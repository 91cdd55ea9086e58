package codec

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/golang/snappy"
	"github.com/joeydtaylor/wavekit/pkg/internal/types"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4"
)

// Compress wraps data with the selected algorithm. CompressNone returns the input
// untouched.
func Compress(data []byte, algorithm types.CompressionAlgorithm) ([]byte, error) {
	var b bytes.Buffer
	var w io.WriteCloser

	switch algorithm {
	case types.CompressGzip:
		w = gzip.NewWriter(&b)
	case types.CompressSnappy:
		w = snappy.NewBufferedWriter(&b)
	case types.CompressZstd:
		var err error
		w, err = zstd.NewWriter(&b)
		if err != nil {
			return nil, err
		}
	case types.CompressBrotli:
		w = brotli.NewWriterLevel(&b, brotli.BestCompression)
	case types.CompressLZ4:
		w = lz4.NewWriter(&b)
	case types.CompressNone:
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported compression algorithm: %v", algorithm)
	}

	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// Decompress reverses Compress for the same algorithm.
func Decompress(data []byte, algorithm types.CompressionAlgorithm) ([]byte, error) {
	var b bytes.Buffer
	var r io.Reader

	switch algorithm {
	case types.CompressGzip:
		var err error
		r, err = gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
	case types.CompressSnappy:
		r = snappy.NewReader(bytes.NewReader(data))
	case types.CompressZstd:
		zr, err := zstd.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		r = zr
	case types.CompressBrotli:
		r = brotli.NewReader(bytes.NewReader(data))
	case types.CompressLZ4:
		r = lz4.NewReader(bytes.NewReader(data))
	case types.CompressNone:
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported compression algorithm: %v", algorithm)
	}

	if _, err := io.Copy(&b, r); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// CompressedEncoder wraps an inner encoder, compressing its output before writing.
type CompressedEncoder[T any] struct {
	inner     Encoder[T]
	algorithm types.CompressionAlgorithm
}

// CompressedDecoder reverses CompressedEncoder. It reads the stream to EOF before
// decompressing, so each stream must carry exactly one encoded value.
type CompressedDecoder[T any] struct {
	inner     Decoder[T]
	algorithm types.CompressionAlgorithm
}

func NewCompressedEncoder[T any](inner Encoder[T], algorithm types.CompressionAlgorithm) *CompressedEncoder[T] {
	return &CompressedEncoder[T]{inner: inner, algorithm: algorithm}
}

func NewCompressedDecoder[T any](inner Decoder[T], algorithm types.CompressionAlgorithm) *CompressedDecoder[T] {
	return &CompressedDecoder[T]{inner: inner, algorithm: algorithm}
}

func (e *CompressedEncoder[T]) Encode(w io.Writer, item T) error {
	var buf bytes.Buffer
	if err := e.inner.Encode(&buf, item); err != nil {
		return err
	}

	compressed, err := Compress(buf.Bytes(), e.algorithm)
	if err != nil {
		return fmt.Errorf("compression failed: %w", err)
	}

	_, err = w.Write(compressed)
	return err
}

func (d *CompressedDecoder[T]) Decode(r io.Reader) (T, error) {
	var item T

	compressed, err := io.ReadAll(r)
	if err != nil {
		return item, err
	}

	raw, err := Decompress(compressed, d.algorithm)
	if err != nil {
		return item, fmt.Errorf("decompression failed: %w", err)
	}

	return d.inner.Decode(bytes.NewReader(raw))
}
