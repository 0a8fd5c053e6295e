package aabbtree

import (
	"github.com/flier/aabbtree/internal/debug"
	"github.com/flier/aabbtree/pkg/geom"
	"github.com/flier/aabbtree/pkg/indexer"
)

// node is one tree node. A leaf stores the object's fat box and the handle of
// its payload record; an internal node stores the union of its children's
// boxes. There are no single-child nodes: child1 and child2 are both None or
// both set.
type node[T geom.Scalar] struct {
	aabb geom.AABB[T]

	parent indexer.Index
	child1 indexer.Index
	child2 indexer.Index

	height int32 // leaf = 0, internal = 1 + max(child heights)

	data indexer.Index // payload handle, None for internal nodes
}

func (n *node[T]) leaf() bool {
	debug.Assert(n.child1 != indexer.None || n.child1 == n.child2,
		"half-internal node: child1=%d child2=%d", n.child1, n.child2)

	return n.child1 == indexer.None
}
