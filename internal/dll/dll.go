package dll

import (
	"fmt"
	"iter"
	"strings"

	"github.com/rs/zerolog"
)

// nilIndex marks an absent link.
const nilIndex = -1

// slot is a single entry of the node arena. A slot is either live,
// holding a node of the chain, or sitting on the free list.
type slot struct {
	value string
	prev  int
	next  int
	// gen is bumped every time the slot is released so that
	// handles to an old occupant stop resolving.
	gen  uint64
	live bool
}

// Config describes how a DoublyLinkedList is allocated.
type Config struct {
	// MaxNodes caps the number of nodes the arena may hold.
	// Zero means no cap.
	MaxNodes int
	// Log receives debug events. A nil logger discards them.
	Log *zerolog.Logger
}

// Assert that *DoublyLinkedList implements LinkedList.
var _ LinkedList = (*DoublyLinkedList)(nil)

// DoublyLinkedList implements LinkedList.
//
// Nodes live in an arena owned by the list and are addressed by
// index, so previous and next are optional indices rather than
// pointers. Only the head is reachable directly, every other node
// is reached by walking next links from it.
type DoublyLinkedList struct {
	head      int
	nodes     []slot
	free      []int
	maxNodes  int
	destroyed bool
	log       zerolog.Logger
}

// New returns a new instance of an empty DoublyLinkedList.
//
// ErrListAllocation is returned when the arena can't be set up.
// Callers should treat it as fatal.
func New(cfg Config) (*DoublyLinkedList, error) {
	if cfg.MaxNodes < 0 {
		return nil, fmt.Errorf("%w: negative node capacity %d", ErrListAllocation, cfg.MaxNodes)
	}
	log := zerolog.Nop()
	if cfg.Log != nil {
		log = *cfg.Log
	}
	return &DoublyLinkedList{
		head:     nilIndex,
		maxNodes: cfg.MaxNodes,
		log:      log,
	}, nil
}

// Insert creates a new node holding a copy of value and links it
// in as the new head of the list.
//
// If no node can be allocated the list is left untouched and
// ErrNodeAllocation is returned.
func (dll *DoublyLinkedList) Insert(value string) error {
	if dll.destroyed {
		return ErrListDestroyed
	}
	idx, err := dll.alloc(value)
	if err != nil {
		dll.
			log.
			Debug().
			Str("value", value).
			Int("nodes", len(dll.nodes)).
			Msg("can't insert, arena is full")
		return err
	}

	n := &dll.nodes[idx]
	n.prev = nilIndex
	n.next = dll.head
	if dll.head != nilIndex {
		dll.nodes[dll.head].prev = idx
	}
	dll.head = idx

	dll.
		log.
		Debug().
		Str("value", value).
		Int("slot", idx).
		Msg("inserted")
	return nil
}

// Find returns the first node, starting from the head, whose value
// equals value. The comparison is exact and case-sensitive.
// A destroyed list finds nothing.
func (dll *DoublyLinkedList) Find(value string) (Node, bool) {
	idx := dll.find(value)
	if idx == nilIndex {
		return Node{}, false
	}
	return Node{list: dll, index: idx, gen: dll.nodes[idx].gen}, true
}

func (dll *DoublyLinkedList) find(value string) int {
	if dll.destroyed {
		return nilIndex
	}
	for i := dll.head; i != nilIndex; i = dll.nodes[i].next {
		if dll.nodes[i].value == value {
			return i
		}
	}
	return nilIndex
}

// Delete removes the first node holding value and reports whether
// one was removed. Deleting an absent value is not an error.
//
// The three link repairs are applied independently: a lone node
// only moves the head, an inner node only touches its neighbours.
func (dll *DoublyLinkedList) Delete(value string) (bool, error) {
	if dll.destroyed {
		return false, ErrListDestroyed
	}
	idx := dll.find(value)
	if idx == nilIndex {
		dll.
			log.
			Debug().
			Str("value", value).
			Msg("can't delete, not in list")
		return false, nil
	}

	prev, next := dll.nodes[idx].prev, dll.nodes[idx].next
	if idx == dll.head {
		dll.head = next
	}
	if prev != nilIndex {
		dll.nodes[prev].next = next
	}
	if next != nilIndex {
		dll.nodes[next].prev = prev
	}
	dll.release(idx)

	dll.
		log.
		Debug().
		Str("value", value).
		Int("slot", idx).
		Msg("deleted")
	return true, nil
}

// All returns the values from head to tail. The sequence is lazy
// and can be ranged over any number of times; it reflects the chain
// as it is when each walk happens.
func (dll *DoublyLinkedList) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		if dll.destroyed {
			return
		}
		for i := dll.head; i != nilIndex; i = dll.nodes[i].next {
			if !yield(dll.nodes[i].value) {
				return
			}
		}
	}
}

// Values returns a snapshot of the values from head to tail.
func (dll *DoublyLinkedList) Values() []string {
	values := []string{}
	for v := range dll.All() {
		values = append(values, v)
	}
	return values
}

// Len returns the number of nodes reachable from the head.
func (dll *DoublyLinkedList) Len() int {
	n := 0
	for range dll.All() {
		n++
	}
	return n
}

// Empty returns true if the list holds no nodes.
func (dll *DoublyLinkedList) Empty() bool {
	return dll.destroyed || dll.head == nilIndex
}

// Head returns the first node of the list.
func (dll *DoublyLinkedList) Head() (Node, bool) {
	if dll.Empty() {
		return Node{}, false
	}
	return Node{list: dll, index: dll.head, gen: dll.nodes[dll.head].gen}, true
}

// Destroy walks the chain once, releasing every node, and then
// sweeps the arena for nodes the walk didn't reach before dropping
// it. Such nodes are reported as ErrBrokenInvariant, the list is
// destroyed either way. It is terminal: every later call on the list
// fails with ErrListDestroyed.
func (dll *DoublyLinkedList) Destroy() error {
	if dll.destroyed {
		return ErrListDestroyed
	}
	freed := 0
	for i := dll.head; i != nilIndex; {
		// The slot is cleared on release, read next first.
		next := dll.nodes[i].next
		dll.release(i)
		i = next
		freed++
	}
	dll.head = nilIndex

	leaked := dll.Allocated()
	if leaked != 0 {
		dll.
			log.
			Error().
			Int("leaked", leaked).
			Msg("nodes unreachable from head at teardown")
	}

	dll.nodes = nil
	dll.free = nil
	dll.destroyed = true

	dll.
		log.
		Debug().
		Int("freed", freed).
		Msg("destroyed")
	if leaked != 0 {
		return fmt.Errorf("%w: %d nodes unreachable from head at teardown", ErrBrokenInvariant, leaked)
	}
	return nil
}

// Allocated sweeps the arena and returns the number of live slots.
// On a consistent list this equals Len.
func (dll *DoublyLinkedList) Allocated() int {
	live := 0
	for i := range dll.nodes {
		if dll.nodes[i].live {
			live++
		}
	}
	return live
}

// Verify walks the chain in both directions and checks that the
// head has no previous node, every next link is mirrored by a
// previous link, the chain is acyclic and every live slot is on it.
func (dll *DoublyLinkedList) Verify() error {
	if dll.destroyed {
		return ErrListDestroyed
	}
	if dll.head == nilIndex {
		if live := dll.Allocated(); live != 0 {
			return fmt.Errorf("%w: empty list holds %d nodes", ErrBrokenInvariant, live)
		}
		return nil
	}
	if !dll.isLive(dll.head) {
		return fmt.Errorf("%w: head points at released slot %d", ErrBrokenInvariant, dll.head)
	}
	if dll.nodes[dll.head].prev != nilIndex {
		return fmt.Errorf("%w: head has a previous node", ErrBrokenInvariant)
	}

	seen := make([]bool, len(dll.nodes))
	count, tail := 0, nilIndex
	for i := dll.head; i != nilIndex; i = dll.nodes[i].next {
		if !dll.isLive(i) {
			return fmt.Errorf("%w: dangling link to slot %d", ErrBrokenInvariant, i)
		}
		if seen[i] {
			return fmt.Errorf("%w: cycle through slot %d", ErrBrokenInvariant, i)
		}
		seen[i] = true
		count++
		next := dll.nodes[i].next
		if dll.isLive(next) && dll.nodes[next].prev != i {
			return fmt.Errorf("%w: slot %d doesn't link back to slot %d", ErrBrokenInvariant, next, i)
		}
		tail = i
	}

	back, last := 0, nilIndex
	for i := tail; i != nilIndex; i = dll.nodes[i].prev {
		if back == count {
			return fmt.Errorf("%w: backward walk is longer than forward walk", ErrBrokenInvariant)
		}
		back++
		last = i
	}
	if last != dll.head || back != count {
		return fmt.Errorf("%w: backward walk doesn't end at head", ErrBrokenInvariant)
	}

	if live := dll.Allocated(); live != count {
		return fmt.Errorf("%w: %d nodes unreachable from head", ErrBrokenInvariant, live-count)
	}
	return nil
}

// String renders the list the way the demo driver prints it.
func (dll *DoublyLinkedList) String() string {
	if dll.Empty() {
		return "List is empty."
	}
	var b strings.Builder
	b.WriteString("List contents: [")
	for v := range dll.All() {
		b.WriteByte('"')
		b.WriteString(v)
		b.WriteString(`" `)
	}
	b.WriteByte(']')
	return b.String()
}

// alloc takes a slot from the free list, or grows the arena if the
// cap allows it, and fills it with an owned copy of value.
func (dll *DoublyLinkedList) alloc(value string) (int, error) {
	var idx int
	if n := len(dll.free); n > 0 {
		idx = dll.free[n-1]
		dll.free = dll.free[:n-1]
	} else {
		if dll.maxNodes > 0 && len(dll.nodes) >= dll.maxNodes {
			return nilIndex, ErrNodeAllocation
		}
		dll.nodes = append(dll.nodes, slot{})
		idx = len(dll.nodes) - 1
	}
	s := &dll.nodes[idx]
	s.value = strings.Clone(value)
	s.prev = nilIndex
	s.next = nilIndex
	s.live = true
	return idx, nil
}

func (dll *DoublyLinkedList) release(idx int) {
	s := &dll.nodes[idx]
	s.value = ""
	s.prev = nilIndex
	s.next = nilIndex
	s.live = false
	s.gen++
	dll.free = append(dll.free, idx)
}

func (dll *DoublyLinkedList) isLive(idx int) bool {
	return idx >= 0 && idx < len(dll.nodes) && dll.nodes[idx].live
}
