// Package aabbtree implements a dynamic axis-aligned bounding-box tree: a
// self-balancing binary tree of AABBs used to answer overlap queries over a
// set of objects that are inserted, removed, and moved at runtime.
//
// Leaves hold user values behind stable handles; internal nodes hold the
// union of their children's boxes. Insertion picks a sibling by a surface
// measure heuristic and rebalances with rotations along the ancestor path, so
// queries stay close to logarithmic in the number of leaves. Leaves store
// "fat" boxes, grown by a margin and optionally by predicted motion, which
// makes small movements free on update.
//
// A Tree is a single-owner, single-threaded structure: no operation on the
// same tree may overlap a mutation.
package aabbtree

import (
	"iter"

	"github.com/flier/aabbtree/internal/debug"
	"github.com/flier/aabbtree/pkg/geom"
	"github.com/flier/aabbtree/pkg/indexer"
)

// record is the payload stored for a leaf: the user value plus the handle of
// the owning leaf node, so iteration can map a value back to its handle.
type record[V any] struct {
	leaf  indexer.Index
	value V
}

// Tree is a dynamic AABB tree storing values of type V with coordinates of
// type T.
type Tree[V any, T geom.Scalar] struct {
	extension  T // fat margin added on every side of stored boxes
	multiplier T // displacement prediction factor, 0 disables

	dim   int
	nodes indexer.Indexer[node[T]]
	data  indexer.Indexer[record[V]]
	root  indexer.Index
}

// Option configures a Tree.
type Option[T geom.Scalar] func(extension, multiplier *T)

// WithExtension sets the fat margin added on every side of a stored box.
func WithExtension[T geom.Scalar](m T) Option[T] {
	return func(extension, _ *T) { *extension = m }
}

// WithMultiplier sets the displacement multiplier used to pre-pay for motion
// in the displacement's direction on Update.
func WithMultiplier[T geom.Scalar](k T) Option[T] {
	return func(_, multiplier *T) { *multiplier = k }
}

// New creates an empty tree for boxes of the given dimension.
//
// With no options the tree stores tight boxes and predicts no motion.
func New[V any, T geom.Scalar](dim int, opts ...Option[T]) *Tree[V, T] {
	debug.Assert(dim > 0, "non-positive dimension %d", dim)

	t := &Tree[V, T]{dim: dim, root: indexer.None}
	for _, opt := range opts {
		opt(&t.extension, &t.multiplier)
	}
	return t
}

// Dim returns the box dimension the tree was created with.
func (t *Tree[V, T]) Dim() int { return t.dim }

// Len returns the number of stored values.
func (t *Tree[V, T]) Len() int { return t.data.Count() }

// Value returns the value stored at the given leaf handle.
//
// The handle must name a live leaf.
func (t *Tree[V, T]) Value(idx indexer.Index) *V {
	n := t.nodes.Get(idx)
	debug.Assert(n.leaf(), "handle %d is not a leaf", idx)

	return &t.data.Get(n.data).value
}

// Lookup returns the value stored at idx, or false if idx does not name a
// live leaf.
func (t *Tree[V, T]) Lookup(idx indexer.Index) (*V, bool) {
	if !t.nodes.Contains(idx) {
		return nil, false
	}
	n := t.nodes.Get(idx)
	if !n.leaf() {
		return nil, false
	}
	return &t.data.Get(n.data).value, true
}

// All yields every stored value with its leaf handle, in arena slot order.
// The order is unrelated to spatial position or insertion order.
func (t *Tree[V, T]) All() iter.Seq2[indexer.Index, *V] {
	return func(yield func(indexer.Index, *V) bool) {
		for _, rec := range t.data.All() {
			if !yield(rec.leaf, &rec.value) {
				return
			}
		}
	}
}
