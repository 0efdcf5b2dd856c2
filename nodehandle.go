package concurrentmap

// NodeHandle is a detached entry that has been removed from a map but
// still owns its key/value. It lets an entry move between maps (or out
// of and back into the same map) without the caller having to copy the
// value twice. A NodeHandle is produced only by Extract and consumed
// only by InsertNode.
//
// A NodeHandle is always used through a pointer. Key and Mapped are
// occupied-only accessors: calling either on an empty handle is a
// programming error and panics, the same way a caller indexing past
// the end of a slice gets a runtime panic rather than a silent wrong
// answer.
type NodeHandle[K comparable, V any] struct {
	entry Entry[K, V]
	ok    bool
}

// Empty reports whether this handle holds no entry.
func (n *NodeHandle[K, V]) Empty() bool {
	return n == nil || !n.ok
}

// Key returns the key of the held entry. It panics if the handle is
// empty.
func (n *NodeHandle[K, V]) Key() K {
	if n.Empty() {
		panic("concurrentmap: Key called on an empty NodeHandle")
	}
	return n.entry.Key
}

// Mapped returns the value of the held entry. It panics if the handle
// is empty.
func (n *NodeHandle[K, V]) Mapped() V {
	if n.Empty() {
		panic("concurrentmap: Mapped called on an empty NodeHandle")
	}
	return n.entry.Value
}

// take clears n to the empty state and returns the entry it held,
// along with whether it held one at all. Used by InsertNode so a
// handle can't be inserted twice.
func (n *NodeHandle[K, V]) take() (Entry[K, V], bool) {
	if n.Empty() {
		return Entry[K, V]{}, false
	}
	e := n.entry
	n.entry = Entry[K, V]{}
	n.ok = false
	return e, true
}
