package geom

import "github.com/flier/aabbtree/internal/debug"

// AABB is an axis-aligned bounding box described by its lower and upper
// corners. A box is valid when Lo[i] <= Hi[i] on every axis.
type AABB[T Scalar] struct {
	Lo Vec[T]
	Hi Vec[T]
}

// Box builds an AABB from its corner vectors.
func Box[T Scalar](lo, hi Vec[T]) AABB[T] {
	debug.Assert(len(lo) == len(hi), "dimension mismatch: %d != %d", len(lo), len(hi))

	return AABB[T]{Lo: lo, Hi: hi}
}

// Dim returns the dimension of the box.
func (a AABB[T]) Dim() int { return len(a.Lo) }

// Clone returns a copy of a that shares no storage with it.
func (a AABB[T]) Clone() AABB[T] {
	return AABB[T]{Lo: a.Lo.Clone(), Hi: a.Hi.Clone()}
}

// Union returns the smallest box containing both a and b.
func Union[T Scalar](a, b AABB[T]) AABB[T] {
	u := a.Clone()
	u.SetUnion(a, b)
	return u
}

// SetUnion overwrites a's corners with the smallest box containing both x
// and y. The receiver's storage is reused, so existing nodes can be refit
// without allocating.
func (a AABB[T]) SetUnion(x, y AABB[T]) {
	for i := range a.Lo {
		a.Lo[i] = min(x.Lo[i], y.Lo[i])
		a.Hi[i] = max(x.Hi[i], y.Hi[i])
	}
}

// UnionArea returns the measure of the union of a and b without
// materialising it.
func UnionArea[T Scalar](a, b AABB[T]) T {
	n := len(a.Lo)
	if n == 1 {
		return max(a.Hi[0], b.Hi[0]) - min(a.Lo[0], b.Lo[0])
	}

	var s T
	for i := 0; i < n; i++ {
		sub := T(1)
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			sub *= max(a.Hi[j], b.Hi[j]) - min(a.Lo[j], b.Lo[j])
		}
		s += sub
	}
	return 2 * s
}

// Intersects reports whether a and b overlap, touching faces included.
func (a AABB[T]) Intersects(b AABB[T]) bool {
	for i := range a.Lo {
		if b.Lo[i] > a.Hi[i] || a.Lo[i] > b.Hi[i] {
			return false
		}
	}
	return true
}

// Contains reports whether a fully encloses b.
func (a AABB[T]) Contains(b AABB[T]) bool {
	for i := range a.Lo {
		if a.Lo[i] > b.Lo[i] || a.Hi[i] < b.Hi[i] {
			return false
		}
	}
	return true
}

// Area returns the cost measure of the box: the perimeter in 2D, the surface
// area in 3D, and in general twice the sum over the axes of the product of
// the extents on the other axes. In 1D it is just the extent.
func (a AABB[T]) Area() T {
	n := len(a.Lo)
	if n == 1 {
		return a.Hi[0] - a.Lo[0]
	}

	var s T
	for i := 0; i < n; i++ {
		sub := T(1)
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			sub *= a.Hi[j] - a.Lo[j]
		}
		s += sub
	}
	return 2 * s
}

// Expand returns a copy of a grown by m on every side.
func (a AABB[T]) Expand(m T) AABB[T] {
	e := a.Clone()
	for i := range e.Lo {
		e.Lo[i] -= m
		e.Hi[i] += m
	}
	return e
}
