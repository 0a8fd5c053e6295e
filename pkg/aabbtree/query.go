package aabbtree

import (
	"github.com/flier/aabbtree/internal/debug"
	"github.com/flier/aabbtree/pkg/geom"
	"github.com/flier/aabbtree/pkg/indexer"
	"github.com/flier/aabbtree/pkg/stack"
)

// Query calls visit for every stored value whose box overlaps aabb, passing
// the leaf handle and the value. visit returning false stops the traversal.
//
// Each match is visited at most once, in unspecified order. Overlap is tested
// against the stored fat boxes, which always contain the tight boxes they
// were built from.
func (t *Tree[V, T]) Query(aabb geom.AABB[T], visit func(idx indexer.Index, value *V) bool) {
	debug.Assert(aabb.Dim() == t.dim, "box dimension %d, tree dimension %d", aabb.Dim(), t.dim)

	var s stack.Stack[indexer.Index]
	s.Push(t.root)

	for s.Len() > 0 {
		idx := s.Pop()
		if idx == indexer.None {
			continue
		}

		n := t.nodes.Get(idx)
		if !n.aabb.Intersects(aabb) {
			continue
		}

		if n.leaf() {
			if !visit(idx, &t.data.Get(n.data).value) {
				return
			}
		} else {
			s.Push(n.child1)
			s.Push(n.child2)
		}
	}
}
