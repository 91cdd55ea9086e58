// Package codec provides the serialization surface a persistence or transport
// collaborator uses to move signals in and out of the engine: JSON for
// interoperability, a compact little-endian binary layout for bulk point data, and an
// optional compression wrapper around either.
package codec

import (
	"io"
)

// Decoder interface remains unchanged, suitable for generic types.
type Decoder[T any] interface {
	Decode(io.Reader) (T, error)
}

// Encoder interface also remains unchanged, designed for generic types.
type Encoder[T any] interface {
	Encode(io.Writer, T) error
}
