// Package native is the message buffer runtime this library wraps.
//
// It plays the role of the foreign messaging runtime: buffers are opaque
// handles with an explicit init/close lifecycle, failing calls report a
// C-style errno through a process-wide last-error slot, and adopted
// allocations are returned to their owner through a release callback.
// The package is internal on purpose: callers never touch handles
// directly, they go through the envelope type that guarantees
// exactly-once release.
//
// The runtime is not internally synchronized. A single buffer must not
// be operated on from multiple goroutines at once; moving a buffer
// between goroutines is fine.
package native

import "sync/atomic"

// Errno is the error code reported by a failing runtime call.
type Errno int32

const (
	// EINVAL reports a rejected argument: a zero routing id, a group
	// name over the length bound or containing a NUL byte, a negative
	// allocation size, or a zero-length adoption.
	EINVAL Errno = 22
	// EFAULT reports an operation on a handle that is not live:
	// uninitialized, already closed, or double-initialized.
	EFAULT Errno = 14
)

func (e Errno) String() string {
	switch e {
	case EINVAL:
		return "invalid argument"
	case EFAULT:
		return "bad handle state"
	default:
		return "unknown error"
	}
}

var lastErrno atomic.Int32

// LastErrno returns the error code recorded by the most recent failing
// call. It must be read immediately after the failing call, before any
// other runtime call can overwrite it.
func LastErrno() Errno {
	return Errno(lastErrno.Load())
}

func fail(e Errno) int {
	lastErrno.Store(int32(e))
	return -1
}

var live atomic.Int64

// Live returns the number of currently open buffer handles. Tests use
// it to prove that every constructed handle was released.
func Live() int64 {
	return live.Load()
}
