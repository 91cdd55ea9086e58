package codec

import (
	"encoding/json"
	"io"
)

// JSONEncoder encodes a generic type into JSON.
type JSONEncoder[T any] struct{}

// JSONDecoder decodes JSON into a generic type.
type JSONDecoder[T any] struct{}

func NewJSONEncoder[T any]() *JSONEncoder[T] {
	return &JSONEncoder[T]{}
}

func NewJSONDecoder[T any]() *JSONDecoder[T] {
	return &JSONDecoder[T]{}
}

func (e *JSONEncoder[T]) Encode(w io.Writer, item T) error {
	return json.NewEncoder(w).Encode(item)
}

func (d *JSONDecoder[T]) Decode(r io.Reader) (T, error) {
	var item T
	err := json.NewDecoder(r).Decode(&item)
	return item, err
}
