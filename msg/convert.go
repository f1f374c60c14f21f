package msg

import (
	"github.com/DeluxeOwl/zmsg/internal/assert"
	"github.com/DeluxeOwl/zmsg/internal/native"
)

// FromBytes creates a message by copying b into a freshly allocated
// buffer. Use it when the caller keeps ownership of b: the caller's
// storage may be reused or freed before the message is sent, so
// copying is the only safe strategy.
func FromBytes(b []byte) *Msg {
	m := WithSize(len(b))
	copy(m.Bytes(), b)
	return m
}

// FromString creates a message by copying the text's bytes.
func FromString(s string) *Msg {
	m := WithSize(len(s))
	copy(m.Bytes(), s)
	return m
}

// FromOwnedBytes creates a message that adopts v without copying.
//
// The caller hands over ownership: v must not be read or written after
// this call. The runtime holds the exact slice and returns it to a
// release callback when the message is closed, so the allocation is
// released through the same owner that produced it.
//
// An empty v short-circuits to New: the runtime rejects zero-length
// adoptions, and there is nothing to save a copy of anyway.
func FromOwnedBytes(v []byte) *Msg {
	if len(v) == 0 {
		return New()
	}
	b := new(native.Buffer)
	rc := b.InitData(v, freeAdopted, nil)
	assert.That(rc == 0, "msg: adopt %d bytes: %s", len(v), native.LastErrno())
	return &Msg{buf: b}
}

// freeAdopted receives back the slice handed to the runtime in
// FromOwnedBytes. The runtime drops its reference by calling this, and
// the original allocation is reclaimed by the collector that produced
// it. The callback must exist even though it holds no logic: a
// zero-length or callback-less adoption is rejected at the boundary,
// which keeps the adopt/release pairing uniform and testable.
func freeAdopted(data []byte, hint any) {
	_ = data
	_ = hint
}
