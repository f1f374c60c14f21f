// Package zmsg provides safe envelopes for the opaque message buffers
// a messaging transport exchanges across a process boundary.
//
// The core type is msg.Msg: a handle that owns exactly one native
// buffer and releases it exactly once, however the value is cloned or
// passed around. Conversions choose between copying borrowed data and
// adopting owned data without a copy. See the msg and group packages
// for the full API; this package re-exports the common entry points.
package zmsg

import (
	"github.com/DeluxeOwl/zmsg/group"
	"github.com/DeluxeOwl/zmsg/msg"
)

type (
	Msg        = msg.Msg
	RoutingId  = msg.RoutingId
	Group      = group.Group
	GroupOwned = group.GroupOwned
)

// Messages.
func New() *msg.Msg {
	return msg.New()
}

func WithSize(size int) *msg.Msg {
	return msg.WithSize(size)
}

func FromBytes(b []byte) *msg.Msg {
	return msg.FromBytes(b)
}

func FromString(s string) *msg.Msg {
	return msg.FromString(s)
}

func FromOwnedBytes(v []byte) *msg.Msg {
	return msg.FromOwnedBytes(v)
}

// Groups.
func NewGroup(name string) (group.Group, error) {
	return group.New(name)
}

func NewGroupOwned(name string) (group.GroupOwned, error) {
	return group.NewOwned(name)
}
