package dll

// Node is a handle to a single node of a DoublyLinkedList.
//
// A handle stops resolving once its node is deleted or the list
// is destroyed, even if the slot is later reused.
type Node struct {
	list  *DoublyLinkedList
	index int
	gen   uint64
}

// Valid returns true if the handle still refers to a node in the list.
func (n Node) Valid() bool {
	if n.list == nil || n.list.destroyed || !n.list.isLive(n.index) {
		return false
	}
	return n.list.nodes[n.index].gen == n.gen
}

// Value returns the value of the node, or an empty string for a
// stale handle.
func (n Node) Value() string {
	if !n.Valid() {
		return ""
	}
	return n.list.nodes[n.index].value
}

// Next returns the node after this one.
func (n Node) Next() (Node, bool) {
	if !n.Valid() {
		return Node{}, false
	}
	return n.at(n.list.nodes[n.index].next)
}

// Prev returns the node before this one.
func (n Node) Prev() (Node, bool) {
	if !n.Valid() {
		return Node{}, false
	}
	return n.at(n.list.nodes[n.index].prev)
}

func (n Node) at(idx int) (Node, bool) {
	if idx == nilIndex {
		return Node{}, false
	}
	return Node{list: n.list, index: idx, gen: n.list.nodes[idx].gen}, true
}
