package aabbtree

import (
	"github.com/flier/aabbtree/internal/debug"
	"github.com/flier/aabbtree/pkg/geom"
	"github.com/flier/aabbtree/pkg/indexer"
)

// Insert stores value under the given box and returns the handle of the new
// leaf. The box is copied; with a non-zero fat margin the stored box is grown
// by it on every side.
func (t *Tree[V, T]) Insert(aabb geom.AABB[T], value V) indexer.Index {
	debug.Assert(aabb.Dim() == t.dim, "box dimension %d, tree dimension %d", aabb.Dim(), t.dim)

	leafIdx := t.nodes.Create()
	dataIdx := t.data.Emplace(record[V]{leaf: leafIdx, value: value})

	leaf := t.nodes.Get(leafIdx)
	if t.extension != 0 {
		leaf.aabb = aabb.Expand(t.extension)
	} else {
		leaf.aabb = aabb.Clone()
	}
	leaf.data = dataIdx
	leaf.height = 0
	leaf.child1, leaf.child2, leaf.parent = indexer.None, indexer.None, indexer.None

	t.insertLeaf(leafIdx)

	return leafIdx
}

// insertLeaf links an already-allocated leaf into the tree: picks a sibling
// by the surface measure heuristic, pairs the two under a fresh internal
// node, and rebalances and refits the ancestor path.
func (t *Tree[V, T]) insertLeaf(leafIdx indexer.Index) {
	if t.root == indexer.None {
		t.root = leafIdx
		t.nodes.Get(leafIdx).parent = indexer.None

		return
	}

	leafAABB := t.nodes.Get(leafIdx).aabb

	siblingIdx := t.root
	for n := t.nodes.Get(siblingIdx); !n.leaf(); n = t.nodes.Get(siblingIdx) {
		unitedArea := geom.UnionArea(n.aabb, leafAABB)

		// Cost of pairing the leaf with this whole subtree under a new
		// parent, versus pushing it into one of the children. Growing an
		// ancestor box is charged to every descent below it.
		directCost := 2 * unitedArea
		inheritanceCost := 2 * (unitedArea - n.aabb.Area())

		calcCost := func(child *node[T]) T {
			area := geom.UnionArea(leafAABB, child.aabb)
			if child.leaf() {
				return area + inheritanceCost
			}
			return (area - child.aabb.Area()) + inheritanceCost
		}
		cost1 := calcCost(t.nodes.Get(n.child1))
		cost2 := calcCost(t.nodes.Get(n.child2))

		if directCost < cost1 && directCost < cost2 {
			break
		}

		if cost1 <= cost2 {
			siblingIdx = n.child1
		} else {
			siblingIdx = n.child2
		}
	}

	debug.Log(nil, "insert", "leaf %d pairs with %d", leafIdx, siblingIdx)

	oldParentIdx := t.nodes.Get(siblingIdx).parent
	newParentIdx := t.nodes.Create()

	// Create may have grown the arena; fetch all pointers after it.
	leaf := t.nodes.Get(leafIdx)
	sibling := t.nodes.Get(siblingIdx)
	newParent := t.nodes.Get(newParentIdx)

	newParent.parent = oldParentIdx
	newParent.data = indexer.None
	newParent.aabb = geom.Union(leaf.aabb, sibling.aabb)
	newParent.height = sibling.height + 1

	if oldParentIdx != indexer.None {
		oldParent := t.nodes.Get(oldParentIdx)
		if oldParent.child1 == siblingIdx {
			oldParent.child1 = newParentIdx
		} else {
			oldParent.child2 = newParentIdx
		}
	} else {
		t.root = newParentIdx
	}

	newParent.child1 = siblingIdx
	newParent.child2 = leafIdx
	sibling.parent = newParentIdx
	leaf.parent = newParentIdx

	t.refit(leaf.parent)
}

// refit walks from idx to the root, rebalancing each ancestor and
// recomputing its box and height.
func (t *Tree[V, T]) refit(idx indexer.Index) {
	for idx != indexer.None {
		idx = t.balance(idx)

		current := t.nodes.Get(idx)
		child1 := t.nodes.Get(current.child1)
		child2 := t.nodes.Get(current.child2)

		current.height = 1 + max(child1.height, child2.height)
		current.aabb.SetUnion(child1.aabb, child2.aabb)

		idx = current.parent
	}
}
