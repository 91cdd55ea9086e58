package builder

import (
	"github.com/joeydtaylor/wavekit/pkg/internal/codec"
	"github.com/joeydtaylor/wavekit/pkg/internal/types"
)

type Encoder[T any] = codec.Encoder[T]

type Decoder[T any] = codec.Decoder[T]

type CompressionAlgorithm = types.CompressionAlgorithm

const (
	CompressNone   CompressionAlgorithm = types.CompressNone
	CompressGzip   CompressionAlgorithm = types.CompressGzip
	CompressSnappy CompressionAlgorithm = types.CompressSnappy
	CompressZstd   CompressionAlgorithm = types.CompressZstd
	CompressBrotli CompressionAlgorithm = types.CompressBrotli
	CompressLZ4    CompressionAlgorithm = types.CompressLZ4
)

// NewJSONEncoder creates an encoder that writes values as JSON.
func NewJSONEncoder[T any]() *codec.JSONEncoder[T] {
	return codec.NewJSONEncoder[T]()
}

// NewJSONDecoder creates a decoder that reads JSON values.
func NewJSONDecoder[T any]() *codec.JSONDecoder[T] {
	return codec.NewJSONDecoder[T]()
}

// NewBinarySignalEncoder creates an encoder for the compact binary signal format.
func NewBinarySignalEncoder() *codec.BinarySignalEncoder {
	return codec.NewBinarySignalEncoder()
}

// NewBinarySignalDecoder creates a decoder for the compact binary signal format.
func NewBinarySignalDecoder() *codec.BinarySignalDecoder {
	return codec.NewBinarySignalDecoder()
}

// NewCompressedEncoder wraps an encoder so its output is compressed with the given algorithm.
func NewCompressedEncoder[T any](inner codec.Encoder[T], algorithm CompressionAlgorithm) *codec.CompressedEncoder[T] {
	return codec.NewCompressedEncoder[T](inner, algorithm)
}

// NewCompressedDecoder wraps a decoder so its input is decompressed with the given algorithm.
func NewCompressedDecoder[T any](inner codec.Decoder[T], algorithm CompressionAlgorithm) *codec.CompressedDecoder[T] {
	return codec.NewCompressedDecoder[T](inner, algorithm)
}

// Compress applies the selected compression algorithm to data.
func Compress(data []byte, algorithm CompressionAlgorithm) ([]byte, error) {
	return codec.Compress(data, algorithm)
}

// Decompress reverses Compress for the selected algorithm.
func Decompress(data []byte, algorithm CompressionAlgorithm) ([]byte, error) {
	return codec.Decompress(data, algorithm)
}
