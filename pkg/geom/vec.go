// Package geom provides the fixed-dimension vector and axis-aligned
// bounding-box value types used by the AABB tree.
//
// The dimension is the length of the backing slice and is fixed per tree at
// construction time; all operands of a binary operation must share it.
package geom

import "github.com/flier/aabbtree/internal/debug"

// Vec is an N-dimensional vector of scalar elements.
type Vec[T Scalar] []T

// Splat returns a vector of dimension n with every component set to v.
func Splat[T Scalar](n int, v T) Vec[T] {
	p := make(Vec[T], n)
	for i := range p {
		p[i] = v
	}
	return p
}

// Clone returns a copy of v that shares no storage with it.
func (v Vec[T]) Clone() Vec[T] {
	p := make(Vec[T], len(v))
	copy(p, v)
	return p
}

// Add returns the componentwise sum v + o.
func (v Vec[T]) Add(o Vec[T]) Vec[T] {
	debug.Assert(len(v) == len(o), "dimension mismatch: %d != %d", len(v), len(o))

	p := make(Vec[T], len(v))
	for i := range p {
		p[i] = v[i] + o[i]
	}
	return p
}

// Sub returns the componentwise difference v - o.
func (v Vec[T]) Sub(o Vec[T]) Vec[T] {
	debug.Assert(len(v) == len(o), "dimension mismatch: %d != %d", len(v), len(o))

	p := make(Vec[T], len(v))
	for i := range p {
		p[i] = v[i] - o[i]
	}
	return p
}

// Scale returns v with every component multiplied by m.
func (v Vec[T]) Scale(m T) Vec[T] {
	p := make(Vec[T], len(v))
	for i := range p {
		p[i] = v[i] * m
	}
	return p
}

// IsZero reports whether every component of v is zero.
func (v Vec[T]) IsZero() bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}
