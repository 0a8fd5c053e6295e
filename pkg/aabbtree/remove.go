package aabbtree

import (
	"github.com/flier/aabbtree/internal/debug"
	"github.com/flier/aabbtree/pkg/indexer"
)

// Remove deletes the leaf at idx and its stored value. The handle becomes
// invalid; using it afterwards is a programming error.
func (t *Tree[V, T]) Remove(idx indexer.Index) {
	debug.Assert(t.nodes.Get(idx).leaf(), "handle %d is not a leaf", idx)

	t.removeLeaf(idx)
	t.data.Remove(t.nodes.Get(idx).data)
	t.nodes.Remove(idx)
}

// removeLeaf unlinks a leaf from the tree without freeing its node or
// payload. The leaf's internal parent, no longer needed once the sibling
// takes its place, is freed here.
func (t *Tree[V, T]) removeLeaf(leafIdx indexer.Index) {
	if leafIdx == t.root {
		t.root = indexer.None

		return
	}

	parentIdx := t.nodes.Get(leafIdx).parent
	parent := t.nodes.Get(parentIdx)

	siblingIdx := parent.child1
	if siblingIdx == leafIdx {
		siblingIdx = parent.child2
	}
	sibling := t.nodes.Get(siblingIdx)

	grandParentIdx := parent.parent
	if grandParentIdx != indexer.None {
		// Destroy parent and connect sibling to grandparent.
		grandParent := t.nodes.Get(grandParentIdx)
		if grandParent.child1 == parentIdx {
			grandParent.child1 = siblingIdx
		} else {
			grandParent.child2 = siblingIdx
		}
		sibling.parent = grandParentIdx

		t.refit(grandParentIdx)
	} else {
		t.root = siblingIdx
		sibling.parent = indexer.None
	}

	t.nodes.Remove(parentIdx)
}
