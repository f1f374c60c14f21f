package msg

import "fmt"

// RoutingId identifies a client connection on a server socket. The
// transport generates one for each connection; it is read off a
// received message and set on a reply to route it back.
//
// A RoutingId is only obtained from a message the transport delivered.
// There is no public constructor from an arbitrary integer: the zero
// value means "absent" and is rejected by SetRoutingID. Equality is by
// raw value, so values compare with ==.
type RoutingId struct {
	value uint32
}

func (id RoutingId) String() string {
	return fmt.Sprintf("RoutingId(%d)", id.value)
}
