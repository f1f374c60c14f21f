// Package serde converts application payloads to and from the byte
// content carried by messages.
package serde

// A Serializer turns a payload into bytes.
type Serializer[T any] interface {
	Serialize(src T) ([]byte, error)
}

type SerializerFunc[T any] func(src T) ([]byte, error)

func (fn SerializerFunc[T]) Serialize(src T) ([]byte, error) {
	return fn(src)
}

// A Deserializer turns bytes back into a payload.
type Deserializer[T any] interface {
	Deserialize(data []byte) (T, error)
}

type DeserializerFunc[T any] func(data []byte) (T, error)

func (fn DeserializerFunc[T]) Deserialize(data []byte) (T, error) {
	return fn(data)
}

type Serde[T any] interface {
	Serializer[T]
	Deserializer[T]
}

type Fused[T any] struct {
	Serializer[T]
	Deserializer[T]
}

func Fuse[T any](serializer Serializer[T], deserializer Deserializer[T]) Fused[T] {
	return Fused[T]{
		Serializer:   serializer,
		Deserializer: deserializer,
	}
}
