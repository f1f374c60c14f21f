package msg

import (
	"bytes"
	"fmt"

	"github.com/DeluxeOwl/zmsg/serde"
)

// Serialize turns a payload into a message. The serializer's output is
// a fresh allocation with no other owner, so the message adopts it
// without copying.
func Serialize[T any](s serde.Serializer[T], payload T) (*Msg, error) {
	data, err := s.Serialize(payload)
	if err != nil {
		return nil, fmt.Errorf("msg: serialize payload: %w", err)
	}
	return FromOwnedBytes(data), nil
}

// Deserialize turns a message's content back into a payload. The
// content is copied before it is handed to the deserializer, since
// deserializers are free to retain slices of their input past the
// message's lifetime.
func Deserialize[T any](d serde.Deserializer[T], m *Msg) (T, error) {
	payload, err := d.Deserialize(bytes.Clone(m.Bytes()))
	if err != nil {
		var zero T
		return zero, fmt.Errorf("msg: deserialize payload: %w", err)
	}
	return payload, nil
}
