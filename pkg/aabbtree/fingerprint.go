package aabbtree

import (
	"github.com/dolthub/maphash"

	"github.com/flier/aabbtree/pkg/indexer"
)

// shape is the handle-level layout of one node, box excluded.
type shape struct {
	slot, parent, child1, child2 indexer.Index
	height                       int32
}

var shapes = maphash.NewHasher[shape]()

// Fingerprint returns a signature of the tree's structural layout: which
// slots are occupied, how they link up, and their heights. Two calls return
// the same value iff no mutation changed the node layout in between.
//
// The seed is per process, so fingerprints are only comparable within one
// run. Boxes are not hashed; a refit that moves no links is invisible.
func (t *Tree[V, T]) Fingerprint() uint64 {
	fp := shapes.Hash(shape{slot: t.root, parent: indexer.None, child1: indexer.None, child2: indexer.None, height: -1})

	for idx, n := range t.nodes.All() {
		// xor keeps the signature independent of visit order; each term is
		// already position-salted by the slot index.
		fp ^= shapes.Hash(shape{
			slot:   idx,
			parent: n.parent,
			child1: n.child1,
			child2: n.child2,
			height: n.height,
		})
	}

	return fp
}
