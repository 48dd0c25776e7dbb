package dll

import "iter"

// LinkedList describes an ordered collection of owned string values.
type LinkedList interface {
	// Insert stores a copy of the value in a new node at the head
	// of the list. Duplicates are stored as independent nodes.
	Insert(value string) error
	// Find returns the first node, head to tail, whose value is
	// exactly equal to the given value.
	Find(value string) (Node, bool)
	// Delete removes the first node holding the given value.
	// Deleting an absent value is a no-op and reports false.
	Delete(value string) (bool, error)
	// All walks the stored values from head to tail.
	All() iter.Seq[string]
	// Destroy releases every node and the list itself. The list
	// can't be used afterwards.
	Destroy() error
}
