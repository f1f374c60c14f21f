// Package msg provides the message envelope exchanged with the
// transport layer.
//
// A Msg owns exactly one native buffer handle. It is created by one of
// the constructors, optionally carries a routing id and a group name,
// and must be released with Close exactly once; the constructors and
// the close state machine make a second native release impossible, and
// deferred Close on every exit path is the intended usage. Byte views
// returned by Bytes and Text are valid only until Close.
//
// A Msg is a plain value with single-writer semantics: move it freely
// between goroutines, but do not share one instance across goroutines
// without external synchronization.
package msg

import (
	"fmt"
	"unicode/utf8"

	"github.com/DeluxeOwl/zmsg/group"
	"github.com/DeluxeOwl/zmsg/internal/assert"
	"github.com/DeluxeOwl/zmsg/internal/native"
)

// noCopy makes `go vet -copylocks` flag value copies of Msg. A bitwise
// copy would alias the buffer handle outside the Clone/Close
// discipline.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Msg is a handle to a message buffer owned by the runtime.
//
// Message content is opaque binary data. Two Msg values are equal only
// if they are the same handle, never by content; see Equal.
type Msg struct {
	noCopy noCopy

	buf *native.Buffer
}

// New creates an empty message. Never fails.
func New() *Msg {
	b := new(native.Buffer)
	rc := b.Init()
	assert.That(rc == 0, "msg: init: %s", native.LastErrno())
	return &Msg{buf: b}
}

// WithSize creates a message with size zero-filled bytes.
//
// The runtime treats allocation failure as unrecoverable, so this
// terminates the process rather than returning an error. A negative
// size is a programmer error and also fatal.
func WithSize(size int) *Msg {
	b := new(native.Buffer)
	rc := b.InitSize(size)
	assert.That(rc == 0, "msg: init with size %d: %s", size, native.LastErrno())
	return &Msg{buf: b}
}

// Len returns the content size in bytes.
func (m *Msg) Len() int {
	return m.buf.Size()
}

// IsEmpty reports whether the content has size zero.
func (m *Msg) IsEmpty() bool {
	return m.Len() == 0
}

// Bytes returns the content region.
//
// The slice aliases the message's storage: writing through it mutates
// the message, and it must not be used after Close. Callers that need
// the content past the message's lifetime must copy it out.
func (m *Msg) Bytes() []byte {
	return m.buf.Data()
}

// Text interprets the content as UTF-8 text. It fails with a
// *TextEncodingError if the content is not valid UTF-8.
func (m *Msg) Text() (string, error) {
	b := m.Bytes()
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return "", &TextEncodingError{Offset: i}
		}
		i += size
	}
	return string(b), nil
}

// RoutingID returns the routing id the transport assigned to this
// message, or false if none is set.
func (m *Msg) RoutingID() (RoutingId, bool) {
	v := m.buf.RoutingID()
	if v == 0 {
		return RoutingId{}, false
	}
	return RoutingId{value: v}, true
}

// SetRoutingID sets the routing id property so a reply can be routed
// back to the client it came from.
//
// The zero RoutingId means "absent" and is rejected with a failure
// wrapping ErrInvalidInput. Any other runtime failure cannot happen
// under correct use and terminates the process.
func (m *Msg) SetRoutingID(id RoutingId) error {
	if rc := m.buf.SetRoutingID(id.value); rc != 0 {
		errno := native.LastErrno()
		if errno == native.EINVAL {
			return fmt.Errorf("set routing id: id cannot be zero: %w", ErrInvalidInput)
		}
		assert.Never("msg: set routing id: %s", errno)
	}
	return nil
}

// Group returns the group property, or false if none is set.
func (m *Msg) Group() (group.Group, bool) {
	name, ok := m.buf.GroupName()
	if !ok {
		return group.Group{}, false
	}
	g, err := group.New(name)
	assert.That(err == nil, "msg: runtime returned invalid group %q: %v", name, err)
	return g, true
}

// SetGroup sets the group property used for multicast fan-out.
//
// Any group.Owner is accepted; the length bound was already validated
// when the group was constructed, so a runtime failure here cannot
// happen under correct use and terminates the process.
func (m *Msg) SetGroup(g group.Owner) {
	owned := group.ToOwned(g)
	if rc := m.buf.SetGroupName(owned.Name()); rc != 0 {
		assert.Never("msg: set group %q: %s", owned.Name(), native.LastErrno())
	}
}

// More reports whether more parts of a multi-part message follow. Only
// the transport sets this flag; it is read-only here.
func (m *Msg) More() bool {
	return m.buf.More()
}

// Clone duplicates the message content into an independent handle.
//
// This is a true copy at the runtime layer: the clone has its own
// buffer, identical content and properties, and its own lifecycle. A
// runtime failure here means the source handle is corrupted, which is
// not recoverable and terminates the process.
func (m *Msg) Clone() *Msg {
	out := New()
	if rc := out.buf.Copy(m.buf); rc != 0 {
		errno := native.LastErrno()
		if errno == native.EFAULT {
			assert.Never("msg: clone: source message buffer is invalid")
		}
		assert.Never("msg: clone: %s", errno)
	}
	return out
}

// Equal reports whether m and other are the same underlying handle.
//
// Equality is deliberately by identity, never by content: messages are
// handles to transport-level resources, and two byte-identical
// messages are not interchangeable when the runtime holds internal
// metadata that is not exposed for comparison. A message never equals
// its own Clone.
func (m *Msg) Equal(other *Msg) bool {
	return m.buf == other.buf
}

// Close releases the native buffer. Safe to call more than once; only
// the first call releases. It always returns nil: a runtime failure
// during release is logged through this package's logger and never
// propagated, since disposal must not disrupt the caller's control
// flow. Defer it on every path that owns a message.
func (m *Msg) Close() error {
	if !m.buf.IsLive() {
		return nil
	}
	if rc := m.buf.Close(); rc != 0 {
		logger().Error("message buffer close failed",
			"errno", native.LastErrno().String())
	}
	return nil
}

func (m *Msg) String() string {
	return fmt.Sprintf("%v", m.Bytes())
}
