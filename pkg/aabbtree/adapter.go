package aabbtree

import (
	"github.com/flier/aabbtree/pkg/geom"
	"github.com/flier/aabbtree/pkg/indexer"
)

// Adapter variants of the tree operations for callers with their own vector
// and AABB types. Each converts through the axis-indexed extractors of
// [geom.AABBFrom] and [geom.VecFrom]; no other contract is required of the
// user geometry. These are free functions because methods cannot introduce
// the user types as extra type parameters.

// InsertFrom is [Tree.Insert] for a user box type.
func InsertFrom[A, V any, T geom.Scalar](t *Tree[V, T], aabb A, lo, hi geom.CornerGet[A, T], value V) indexer.Index {
	return t.Insert(geom.AABBFrom(t.dim, aabb, lo, hi), value)
}

// UpdateFrom is [Tree.Update] for user box and vector types.
func UpdateFrom[A, D, V any, T geom.Scalar](
	t *Tree[V, T], idx indexer.Index,
	aabb A, lo, hi geom.CornerGet[A, T],
	displacement D, get geom.VecGet[D, T],
) {
	t.Update(idx, geom.AABBFrom(t.dim, aabb, lo, hi), geom.VecFrom(t.dim, displacement, get))
}

// QueryFrom is [Tree.Query] for a user box type.
func QueryFrom[A, V any, T geom.Scalar](
	t *Tree[V, T], aabb A, lo, hi geom.CornerGet[A, T],
	visit func(idx indexer.Index, value *V) bool,
) {
	t.Query(geom.AABBFrom(t.dim, aabb, lo, hi), visit)
}
