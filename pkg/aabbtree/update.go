package aabbtree

import (
	"github.com/flier/aabbtree/internal/debug"
	"github.com/flier/aabbtree/pkg/geom"
	"github.com/flier/aabbtree/pkg/indexer"
)

// Update moves the leaf at idx to a new tight box.
//
// The stored box is the tight box grown by the fat margin and, with a
// non-zero multiplier, stretched in the direction of the given displacement
// to pre-pay for motion. A nil displacement predicts none. When the box
// currently stored at the leaf still covers the new tight box and is not too
// loose, the tree is left untouched; otherwise the leaf is unlinked and
// reinserted with the new box. The handle stays valid either way.
func (t *Tree[V, T]) Update(idx indexer.Index, aabb geom.AABB[T], displacement geom.Vec[T]) {
	debug.Assert(t.nodes.Get(idx).leaf(), "handle %d is not a leaf", idx)
	debug.Assert(aabb.Dim() == t.dim, "box dimension %d, tree dimension %d", aabb.Dim(), t.dim)

	var ext geom.AABB[T]
	if t.extension != 0 {
		ext = aabb.Expand(t.extension)
	} else {
		ext = aabb.Clone()
	}

	if t.multiplier != 0 && displacement != nil {
		// Predict box movement.
		for i, d := range displacement {
			if p := t.multiplier * d; p < 0 {
				ext.Lo[i] += p
			} else {
				ext.Hi[i] += p
			}
		}
	}

	treeAABB := t.nodes.Get(idx).aabb
	if treeAABB.Contains(aabb) {
		// The stored box still contains the object, but it might be too
		// large. Perhaps the object was moving fast but has since gone to
		// sleep. The huge box is larger than the new fat box.
		huge := ext.Expand(4 * t.extension)

		if huge.Contains(treeAABB) {
			// The stored box contains the object and is not too large.
			return
		}

		// Otherwise the stored box is huge and needs to be shrunk.
	}

	debug.Log(nil, "update", "reinsert leaf %d", idx)

	t.removeLeaf(idx)
	t.nodes.Get(idx).aabb = ext
	t.insertLeaf(idx)
}
