package aabbtree

import (
	"github.com/flier/aabbtree/internal/debug"
	"github.com/flier/aabbtree/pkg/indexer"
)

// balance restores the height slack at iA with at most one rotation and
// returns the handle now occupying iA's position. When one child is taller
// than its sibling by 2 or more, the taller child rotates up.
func (t *Tree[V, T]) balance(iA indexer.Index) indexer.Index {
	a := t.nodes.Get(iA)
	if a.leaf() || a.height < 2 {
		return iA
	}

	iB := a.child1
	iC := a.child2
	b := t.nodes.Get(iB)
	c := t.nodes.Get(iC)

	if c.height > b.height+1 {
		return t.rotate(iA, iC, iB)
	}
	if b.height > c.height+1 {
		return t.rotate(iA, iB, iC)
	}

	return iA
}

// rotate promotes iC over its parent iA; iB is iA's other (lighter) child.
// iC's heavier grandchild stays under iC and the lighter one swings under iA,
// landing in whichever child slot of iA previously held iC.
func (t *Tree[V, T]) rotate(iA, iC, iB indexer.Index) indexer.Index {
	debug.Log(nil, "rotate", "promote %d over %d", iC, iA)

	a := t.nodes.Get(iA)
	b := t.nodes.Get(iB)
	c := t.nodes.Get(iC)

	iF := c.child1
	iG := c.child2
	f := t.nodes.Get(iF)
	g := t.nodes.Get(iG)

	// Swap A and C.
	c.child1 = iA
	c.parent = a.parent
	a.parent = iC

	// A's old parent should point to C.
	if c.parent != indexer.None {
		parent := t.nodes.Get(c.parent)
		if parent.child1 == iA {
			parent.child1 = iC
		} else {
			debug.Assert(parent.child2 == iA, "broken parent link at %d", c.parent)
			parent.child2 = iC
		}
	} else {
		t.root = iC
	}

	if f.height > g.height {
		c.child2 = iF
		if a.child2 == iC {
			a.child2 = iG
		} else {
			a.child1 = iG
		}
		g.parent = iA

		a.aabb.SetUnion(b.aabb, g.aabb)
		c.aabb.SetUnion(a.aabb, f.aabb)

		a.height = 1 + max(b.height, g.height)
		c.height = 1 + max(a.height, f.height)
	} else {
		c.child2 = iG
		if a.child2 == iC {
			a.child2 = iF
		} else {
			a.child1 = iF
		}
		f.parent = iA

		a.aabb.SetUnion(b.aabb, f.aabb)
		c.aabb.SetUnion(a.aabb, g.aabb)

		a.height = 1 + max(b.height, f.height)
		c.height = 1 + max(a.height, g.height)
	}

	return iC
}
