package pretty

import (
	"strconv"
	"sync/atomic"
)

var groupSeq atomic.Uint64

// GroupID identifies a group so that [IfBreak] and [IndentIfBreak] nodes
// elsewhere in the tree can follow its mode. Identity is the pointer; the
// name only shows up in debug output.
type GroupID struct {
	name string
	seq  uint64
}

// NewGroupID returns a new group identity.
func NewGroupID(name string) *GroupID {
	return &GroupID{name: name, seq: groupSeq.Add(1)}
}

// Name returns the name the identity was created with.
func (id *GroupID) Name() string { return id.name }

// String returns the name, or "group-N" for an unnamed identity.
func (id *GroupID) String() string {
	if id.name != "" {
		return id.name
	}
	return "group-" + strconv.FormatUint(id.seq, 10)
}

// groupNames assigns stable, unique names to the identities of one document.
type groupNames struct {
	byID   map[*GroupID]string
	byName map[string]*GroupID
}

func newGroupNames() *groupNames {
	return &groupNames{byID: map[*GroupID]string{}, byName: map[string]*GroupID{}}
}

func (n *groupNames) name(id *GroupID) string {
	if s, ok := n.byID[id]; ok {
		return s
	}
	base := id.String()
	s := base
	for i := 2; n.byName[s] != nil; i++ {
		s = base + "#" + strconv.Itoa(i)
	}
	n.byID[id] = s
	n.byName[s] = id
	return s
}

// lookup returns the identity registered under s, creating it on first use.
func (n *groupNames) lookup(s string) *GroupID {
	if id, ok := n.byName[s]; ok {
		return id
	}
	id := NewGroupID(s)
	n.byID[id] = s
	n.byName[s] = id
	return id
}
