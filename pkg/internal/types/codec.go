package types

import "io"

// Decoder reads one value of type T from a stream.
type Decoder[T any] interface {
	Decode(io.Reader) (T, error)
}

// Encoder writes one value of type T to a stream.
type Encoder[T any] interface {
	Encode(io.Writer, T) error
}

// CompressionAlgorithm selects the wrapper applied around encoded payloads.
type CompressionAlgorithm int

const (
	CompressNone CompressionAlgorithm = iota
	CompressGzip
	CompressSnappy
	CompressZstd
	CompressBrotli
	CompressLZ4
)

// String returns the canonical lowercase name of the algorithm.
func (c CompressionAlgorithm) String() string {
	switch c {
	case CompressNone:
		return "none"
	case CompressGzip:
		return "gzip"
	case CompressSnappy:
		return "snappy"
	case CompressZstd:
		return "zstd"
	case CompressBrotli:
		return "brotli"
	case CompressLZ4:
		return "lz4"
	default:
		return "unknown"
	}
}
