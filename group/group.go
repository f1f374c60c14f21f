// Package group provides validated group names for multicast-style
// message fan-out.
//
// A group name is a short text label of at most MaxLen bytes. Two
// variants exist: Group is a view whose backing text may be managed
// elsewhere (a substring of a larger buffer, a name read back from a
// message), while GroupOwned detaches its text onto a fresh allocation
// so it can outlive whatever produced it. Both compare by content, and
// either can be assigned to a message.
package group

import (
	"strings"

	"github.com/DeluxeOwl/zerrors"
)

// MaxLen is the maximum encoded length of a group name in bytes.
const MaxLen = 15

type GroupError string

const (
	ErrTooLong     GroupError = "group_too_long"
	ErrContainsNUL GroupError = "group_contains_nul"
)

// Owner is anything convertible to an owned group name. Group and
// GroupOwned implement it; since both only exist in validated form, a
// message setter taking an Owner never has to re-validate.
type Owner interface {
	Name() string
	intoOwned() GroupOwned
}

// Group is a validated group name view.
type Group struct {
	name string
}

// New validates name and returns it as a Group. The backing text is
// not copied.
func New(name string) (Group, error) {
	if err := validate(name); err != nil {
		return Group{}, err
	}
	return Group{name: name}, nil
}

// Name returns the group name text.
func (g Group) Name() string { return g.name }

func (g Group) String() string { return g.name }

// Owned returns a copy of g that owns its backing text.
func (g Group) Owned() GroupOwned {
	return GroupOwned{name: strings.Clone(g.name)}
}

func (g Group) intoOwned() GroupOwned { return g.Owned() }

// Equal reports whether g and other name the same group, regardless of
// which variant other is.
func (g Group) Equal(other Owner) bool {
	return g.name == other.Name()
}

// GroupOwned is a validated group name that owns its backing text.
type GroupOwned struct {
	name string
}

// NewOwned validates name and returns it as a GroupOwned, copying the
// text onto its own allocation.
func NewOwned(name string) (GroupOwned, error) {
	if err := validate(name); err != nil {
		return GroupOwned{}, err
	}
	return GroupOwned{name: strings.Clone(name)}, nil
}

// Name returns the group name text.
func (g GroupOwned) Name() string { return g.name }

func (g GroupOwned) String() string { return g.name }

// Borrow returns a Group view over g's text.
func (g GroupOwned) Borrow() Group { return Group{name: g.name} }

func (g GroupOwned) intoOwned() GroupOwned { return g }

// Equal reports whether g and other name the same group, regardless of
// which variant other is.
func (g GroupOwned) Equal(other Owner) bool {
	return g.name == other.Name()
}

// ToOwned converts any Owner into its owned form.
func ToOwned(o Owner) GroupOwned {
	return o.intoOwned()
}

func validate(name string) error {
	if len(name) > MaxLen {
		return zerrors.New(ErrTooLong).
			Errorf("group name is %d bytes, max is %d", len(name), MaxLen)
	}
	if strings.IndexByte(name, 0) >= 0 {
		return zerrors.New(ErrContainsNUL).
			Errorf("group name %q contains a NUL byte", name)
	}
	return nil
}
