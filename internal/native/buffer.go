package native

import (
	"bytes"
	"strings"
)

// GroupMaxLen is the longest group name the runtime accepts, in bytes,
// excluding the terminator appended at the C boundary.
const GroupMaxLen = 15

type state uint8

const (
	stateUninit state = iota
	stateLive
	stateClosed
)

// FreeFunc releases an allocation that was adopted through InitData.
// The runtime hands back the exact slice and hint it was given, so the
// deallocation always pairs with the original allocation.
type FreeFunc func(data []byte, hint any)

// Buffer is an opaque message buffer handle.
//
// The zero value is the uninitialized state; every handle must go
// through exactly one of the Init variants before any other call, and
// through Close exactly once at the end of its life. Calls on a handle
// outside the live state fail with EFAULT.
type Buffer struct {
	state     state
	data      []byte
	routingID uint32
	group     string
	hasGroup  bool
	more      bool
	free      FreeFunc
	hint      any
}

// IsLive reports whether b is initialized and not yet closed. This is
// a Go-side state query, not a runtime call, so it is not traced.
func (b *Buffer) IsLive() bool {
	return b.state == stateLive
}

// Init initializes b as an empty buffer. Never fails on a fresh handle.
func (b *Buffer) Init() int {
	trace("init", b)
	if b.state != stateUninit {
		return fail(EFAULT)
	}
	b.state = stateLive
	live.Add(1)
	return 0
}

// InitSize initializes b with n zero-filled bytes.
func (b *Buffer) InitSize(n int) int {
	trace("init_size", b)
	if b.state != stateUninit {
		return fail(EFAULT)
	}
	if n < 0 {
		return fail(EINVAL)
	}
	b.data = make([]byte, n)
	b.state = stateLive
	live.Add(1)
	return 0
}

// InitData initializes b by adopting data without copying. The free
// callback receives data and hint back when the buffer is closed.
// Zero-length adoptions are rejected, as is a nil callback: an adopted
// buffer with no way to release its allocation would leak it.
func (b *Buffer) InitData(data []byte, free FreeFunc, hint any) int {
	trace("init_data", b)
	if b.state != stateUninit {
		return fail(EFAULT)
	}
	if len(data) == 0 || free == nil {
		return fail(EINVAL)
	}
	b.data = data
	b.free = free
	b.hint = hint
	b.state = stateLive
	live.Add(1)
	return 0
}

// Close releases the buffer. Adopted allocations are handed back to
// their FreeFunc exactly once; the state machine makes a second release
// impossible. Closing a non-live handle fails with EFAULT.
func (b *Buffer) Close() int {
	trace("close", b)
	if b.state != stateLive {
		return fail(EFAULT)
	}
	b.release()
	b.state = stateClosed
	live.Add(-1)
	return 0
}

func (b *Buffer) release() {
	if b.free != nil {
		b.free(b.data, b.hint)
		b.free = nil
		b.hint = nil
	}
	b.data = nil
}

// Copy replaces b's content with an independent copy of src's content
// and properties. This is a true duplication, not a reference-count
// bump: mutating one buffer afterwards never affects the other. Any
// allocation b adopted beforehand is released first.
func (b *Buffer) Copy(src *Buffer) int {
	trace("copy", b)
	if b.state != stateLive || src.state != stateLive {
		return fail(EFAULT)
	}
	b.release()
	b.data = bytes.Clone(src.data)
	b.routingID = src.routingID
	b.group = src.group
	b.hasGroup = src.hasGroup
	b.more = src.more
	return 0
}

// Size returns the content length in bytes, or zero for a non-live
// handle.
func (b *Buffer) Size() int {
	trace("size", b)
	return len(b.data)
}

// Data returns the content region. The slice aliases the buffer's
// storage: writes through it mutate the message, and it is valid only
// while the handle is live.
func (b *Buffer) Data() []byte {
	trace("data", b)
	if b.state != stateLive {
		return nil
	}
	return b.data
}

// More reports whether more parts of a multi-part message follow.
func (b *Buffer) More() bool {
	trace("more", b)
	return b.state == stateLive && b.more
}

// SetMore marks the buffer as a non-final part of a multi-part
// message. Only the transport sets this.
func (b *Buffer) SetMore(v bool) int {
	trace("set_more", b)
	if b.state != stateLive {
		return fail(EFAULT)
	}
	b.more = v
	return 0
}

// RoutingID returns the routing id property, zero meaning unset.
func (b *Buffer) RoutingID() uint32 {
	trace("routing_id", b)
	if b.state != stateLive {
		return 0
	}
	return b.routingID
}

// SetRoutingID sets the routing id property. Zero is reserved for
// "unset" and rejected with EINVAL.
func (b *Buffer) SetRoutingID(id uint32) int {
	trace("set_routing_id", b)
	if b.state != stateLive {
		return fail(EFAULT)
	}
	if id == 0 {
		return fail(EINVAL)
	}
	b.routingID = id
	return 0
}

// GroupName returns the group property and whether one was set.
func (b *Buffer) GroupName() (string, bool) {
	trace("group", b)
	if b.state != stateLive || !b.hasGroup {
		return "", false
	}
	return b.group, true
}

// SetGroupName sets the group property. Names over GroupMaxLen bytes
// are rejected with EINVAL, as are names containing a NUL byte, since
// the name crosses the boundary as null-terminated text.
func (b *Buffer) SetGroupName(name string) int {
	trace("set_group", b)
	if b.state != stateLive {
		return fail(EFAULT)
	}
	if len(name) > GroupMaxLen || strings.IndexByte(name, 0) >= 0 {
		return fail(EINVAL)
	}
	b.group = name
	b.hasGroup = true
	return 0
}
