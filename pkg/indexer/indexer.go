// Package indexer provides a slotted arena: a grow-only vector with a
// free-list of vacant slots that issues stable integer handles.
//
// Structures that need cyclic references address each other by handles into
// an Indexer instead of by pointers. Handles equal slot positions and are
// never re-numbered; growth relocates values but keeps every handle valid.
package indexer

import (
	"iter"

	"github.com/flier/aabbtree/internal/debug"
)

// Index is a stable handle to an occupied slot.
type Index uint32

// None is the sentinel index denoting absence.
const None Index = ^Index(0)

// minCapacity is the slot count allocated when growing from empty.
const minCapacity = 8

type slot[T any] struct {
	// next vacant slot when free, forming a singly linked free-list.
	next Index
	free bool
	data T
}

// Indexer is a slotted arena of values of type T.
//
// The zero value is an empty arena ready for use.
type Indexer[T any] struct {
	slots    []slot[T]
	freeHead Index
	count    int
}

// New creates an arena with room for initialCapacity values before the first
// growth.
func New[T any](initialCapacity int) *Indexer[T] {
	x := &Indexer[T]{freeHead: None}
	if initialCapacity > 0 {
		x.slots = make([]slot[T], initialCapacity)
		x.chainFrom(0)
	}
	return x
}

// chainFrom links slots [from, len) into the free-list, newest region first.
func (x *Indexer[T]) chainFrom(from int) {
	last := len(x.slots) - 1
	for i := from; i != last; i++ {
		x.slots[i].next = Index(i) + 1
		x.slots[i].free = true
	}
	x.slots[last].next = x.freeHead
	x.slots[last].free = true
	x.freeHead = Index(from)
}

func (x *Indexer[T]) grow() {
	newCapacity := len(x.slots) * 2
	if newCapacity == 0 {
		newCapacity = minCapacity
	}

	grown := make([]slot[T], newCapacity)
	copy(grown, x.slots)
	from := len(x.slots)
	x.slots = grown
	x.chainFrom(from)
}

// Emplace stores value in a vacant slot and returns its handle.
func (x *Indexer[T]) Emplace(value T) Index {
	if len(x.slots) == 0 {
		// Zero-value arena: no slots yet, the zero freeHead is meaningless.
		x.freeHead = None
	}
	if x.freeHead == None {
		x.grow()
	}

	idx := x.freeHead
	s := &x.slots[idx]
	x.freeHead = s.next
	s.free = false
	s.data = value
	x.count++

	return idx
}

// Create stores a zero value in a vacant slot and returns its handle.
func (x *Indexer[T]) Create() Index {
	var zero T
	return x.Emplace(zero)
}

// Remove vacates the slot at idx and destroys the stored value.
//
// Removing a vacant or out-of-range handle is a programming error.
func (x *Indexer[T]) Remove(idx Index) {
	debug.Assert(x.Contains(idx), "remove of vacant slot %d", idx)

	s := &x.slots[idx]
	var zero T
	s.data = zero
	s.next = x.freeHead
	s.free = true
	x.freeHead = idx
	x.count--
}

// Get returns a pointer to the value at idx.
//
// The pointer stays valid until the slot is removed or the arena grows.
func (x *Indexer[T]) Get(idx Index) *T {
	debug.Assert(x.Contains(idx), "get of vacant slot %d", idx)

	return &x.slots[idx].data
}

// Contains reports whether idx names an occupied slot.
func (x *Indexer[T]) Contains(idx Index) bool {
	return int(idx) < len(x.slots) && !x.slots[idx].free
}

// Count returns the number of occupied slots.
func (x *Indexer[T]) Count() int { return x.count }

// Capacity returns the number of slots, vacant ones included.
func (x *Indexer[T]) Capacity() int { return len(x.slots) }

// All yields the occupied slots in slot order.
func (x *Indexer[T]) All() iter.Seq2[Index, *T] {
	return func(yield func(Index, *T) bool) {
		for i := range x.slots {
			if x.slots[i].free {
				continue
			}
			if !yield(Index(i), &x.slots[i].data) {
				return
			}
		}
	}
}
