package aabbtree

import (
	"errors"
	"fmt"

	"github.com/flier/aabbtree/pkg/geom"
	"github.com/flier/aabbtree/pkg/indexer"
)

// errInvariant is wrapped by every violation reported by check.
var errInvariant = errors.New("aabbtree: structural invariant violated")

// check validates the structural tree invariants.
//
// This checker is intentionally strict and is meant to run after every
// mutation in tests while the implementation is evolving.
func (t *Tree[V, T]) check() error {
	if t.root == indexer.None {
		if n := t.data.Count(); n != 0 {
			return fmt.Errorf("%w: empty tree holds %d values", errInvariant, n)
		}
		if n := t.nodes.Count(); n != 0 {
			return fmt.Errorf("%w: empty tree holds %d nodes", errInvariant, n)
		}
		return nil
	}

	if p := t.nodes.Get(t.root).parent; p != indexer.None {
		return fmt.Errorf("%w: root has parent %d", errInvariant, p)
	}

	leaves, err := t.checkNode(t.root)
	if err != nil {
		return err
	}
	if n := t.data.Count(); leaves != n {
		return fmt.Errorf("%w: %d leaves but %d values", errInvariant, leaves, n)
	}
	return nil
}

func (t *Tree[V, T]) checkNode(idx indexer.Index) (leaves int, err error) {
	if !t.nodes.Contains(idx) {
		return 0, fmt.Errorf("%w: dangling handle %d", errInvariant, idx)
	}
	n := t.nodes.Get(idx)

	if (n.child1 == indexer.None) != (n.child2 == indexer.None) {
		return 0, fmt.Errorf("%w: half-internal node %d (child1=%d child2=%d)",
			errInvariant, idx, n.child1, n.child2)
	}

	if n.child1 == indexer.None {
		if n.height != 0 {
			return 0, fmt.Errorf("%w: leaf %d has height %d", errInvariant, idx, n.height)
		}
		if n.data == indexer.None {
			return 0, fmt.Errorf("%w: leaf %d has no payload", errInvariant, idx)
		}
		if !t.data.Contains(n.data) {
			return 0, fmt.Errorf("%w: leaf %d names vacant payload %d", errInvariant, idx, n.data)
		}
		if back := t.data.Get(n.data).leaf; back != idx {
			return 0, fmt.Errorf("%w: payload %d points back to %d, not leaf %d",
				errInvariant, n.data, back, idx)
		}
		return 1, nil
	}

	if n.data != indexer.None {
		return 0, fmt.Errorf("%w: internal node %d has payload %d", errInvariant, idx, n.data)
	}

	child1 := t.nodes.Get(n.child1)
	child2 := t.nodes.Get(n.child2)

	if child1.parent != idx || child2.parent != idx {
		return 0, fmt.Errorf("%w: node %d children have parents %d, %d",
			errInvariant, idx, child1.parent, child2.parent)
	}
	if want := 1 + max(child1.height, child2.height); n.height != want {
		return 0, fmt.Errorf("%w: node %d height %d, want %d", errInvariant, idx, n.height, want)
	}
	if slack := child1.height - child2.height; slack > 2 || slack < -2 {
		return 0, fmt.Errorf("%w: node %d sibling heights %d and %d differ by more than 2",
			errInvariant, idx, child1.height, child2.height)
	}
	if u := geom.Union(child1.aabb, child2.aabb); !boxEqual(n.aabb, u) {
		return 0, fmt.Errorf("%w: node %d box %v is not the union %v of its children",
			errInvariant, idx, n.aabb, u)
	}

	l1, err := t.checkNode(n.child1)
	if err != nil {
		return 0, err
	}
	l2, err := t.checkNode(n.child2)
	if err != nil {
		return 0, err
	}
	return l1 + l2, nil
}

func boxEqual[T geom.Scalar](a, b geom.AABB[T]) bool {
	for i := range a.Lo {
		if a.Lo[i] != b.Lo[i] || a.Hi[i] != b.Hi[i] {
			return false
		}
	}
	return true
}
