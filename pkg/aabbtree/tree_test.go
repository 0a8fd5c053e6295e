package aabbtree_test

import (
	"sort"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/flier/aabbtree/pkg/aabbtree"
	"github.com/flier/aabbtree/pkg/geom"
	"github.com/flier/aabbtree/pkg/indexer"
)

func box(lx, ly, hx, hy float64) geom.AABB[float64] {
	return geom.Box(geom.Vec[float64]{lx, ly}, geom.Vec[float64]{hx, hy})
}

// visited collects the values matched by a query, sorted for comparison.
func visited(t *aabbtree.Tree[int, float64], q geom.AABB[float64]) []int {
	var out []int
	t.Query(q, func(_ indexer.Index, v *int) bool {
		out = append(out, *v)
		return true
	})
	sort.Ints(out)
	return out
}

func TestInsertAndQuery(t *testing.T) {
	Convey("Given a tree with three boxes on the diagonal", t, func() {
		tree := aabbtree.New[int, float64](2)

		tree.Insert(box(0, 0, 1, 1), 1)
		tree.Insert(box(1, 1, 2, 2), 2)
		tree.Insert(box(2, 2, 3, 3), 3)

		So(tree.Len(), ShouldEqual, 3)

		Convey("Then a query inside the first box yields only it", func() {
			So(visited(tree, box(0, 0, 0.9, 0.9)), ShouldResemble, []int{1})
		})

		Convey("Then a query inside the second box yields only it", func() {
			So(visited(tree, box(1.1, 1.1, 1.2, 1.2)), ShouldResemble, []int{2})
		})

		Convey("Then a query touching all of them yields all", func() {
			So(visited(tree, box(0, 0, 3, 3)), ShouldResemble, []int{1, 2, 3})
		})

		Convey("Then a query off to the side yields nothing", func() {
			So(visited(tree, box(5, 5, 6, 6)), ShouldBeEmpty)
		})
	})

	Convey("Given a tree with two overlapping boxes", t, func() {
		tree := aabbtree.New[int, float64](2)

		tree.Insert(box(0, 0, 50, 50), 1)
		tree.Insert(box(25, 25, 75, 75), 2)

		Convey("Then a query in the overlap yields both", func() {
			So(visited(tree, box(30, 30, 35, 35)), ShouldResemble, []int{1, 2})
		})
	})

	Convey("Given an empty tree", t, func() {
		tree := aabbtree.New[int, float64](2)

		Convey("Then a query yields nothing", func() {
			So(visited(tree, box(0, 0, 100, 100)), ShouldBeEmpty)
			So(tree.Len(), ShouldEqual, 0)
		})
	})
}

func TestQueryStop(t *testing.T) {
	Convey("Given a tree with many overlapping boxes", t, func() {
		tree := aabbtree.New[int, float64](2)
		for i := 0; i < 10; i++ {
			tree.Insert(box(0, 0, 10, 10), i)
		}

		Convey("When the visitor stops after the first match", func() {
			var n int
			tree.Query(box(1, 1, 2, 2), func(indexer.Index, *int) bool {
				n++
				return false
			})

			Convey("Then the traversal ends immediately", func() {
				So(n, ShouldEqual, 1)
			})
		})
	})
}

func TestRemove(t *testing.T) {
	Convey("Given a tree with three boxes", t, func() {
		tree := aabbtree.New[int, float64](2)

		h1 := tree.Insert(box(0, 0, 1, 1), 1)
		h2 := tree.Insert(box(1, 1, 2, 2), 2)
		h3 := tree.Insert(box(2, 2, 3, 3), 3)

		Convey("When removing the middle one", func() {
			tree.Remove(h2)

			Convey("Then it no longer matches queries", func() {
				So(tree.Len(), ShouldEqual, 2)
				So(visited(tree, box(0, 0, 3, 3)), ShouldResemble, []int{1, 3})
			})
		})

		Convey("When removing everything", func() {
			tree.Remove(h1)
			tree.Remove(h2)
			tree.Remove(h3)

			Convey("Then the tree is empty again", func() {
				So(tree.Len(), ShouldEqual, 0)
				So(visited(tree, box(0, 0, 3, 3)), ShouldBeEmpty)
			})
		})
	})
}

func TestUpdate(t *testing.T) {
	Convey("Given a tree with a single box and no fat margin", t, func() {
		tree := aabbtree.New[int, float64](2)

		h := tree.Insert(box(0, 0, 100, 100), 1)

		Convey("When shrinking it to a far corner", func() {
			tree.Update(h, box(10, 10, 11, 11), nil)

			Convey("Then queries see the new position only", func() {
				So(visited(tree, box(0, 0, 2, 2)), ShouldBeEmpty)
				So(visited(tree, box(10, 10, 11, 11)), ShouldResemble, []int{1})
			})

			Convey("Then the handle survives the move", func() {
				So(*tree.Value(h), ShouldEqual, 1)
			})
		})

		Convey("When updating with the same box and zero displacement", func() {
			before := tree.Fingerprint()

			tree.Update(h, box(0, 0, 100, 100), geom.Vec[float64]{0, 0})

			Convey("Then the tree structure is untouched", func() {
				So(tree.Fingerprint(), ShouldEqual, before)
				So(tree.Len(), ShouldEqual, 1)
			})
		})
	})

	Convey("Given a tree with a displacement multiplier", t, func() {
		tree := aabbtree.New[int, float64](2, aabbtree.WithMultiplier[float64](2))

		h := tree.Insert(box(0, 0, 1, 1), 1)

		Convey("When moving with a displacement to the right", func() {
			tree.Update(h, box(1, 0, 2, 1), geom.Vec[float64]{10, 0})

			Convey("Then the stored box pre-pays for the predicted motion", func() {
				So(visited(tree, box(15, 0.2, 16, 0.8)), ShouldResemble, []int{1})
				So(visited(tree, box(0, 0, 0.9, 1)), ShouldBeEmpty)
			})
		})
	})
}

func TestFatMargin(t *testing.T) {
	Convey("Given a tree with a fat margin", t, func() {
		tree := aabbtree.New[int, float64](2, aabbtree.WithExtension[float64](10))

		h := tree.Insert(box(0, 0, 1, 1), 1)

		Convey("Then queries hit the fat box, not just the tight one", func() {
			So(visited(tree, box(-5, -5, -4, -4)), ShouldResemble, []int{1})
		})

		Convey("When the object moves within the margin", func() {
			before := tree.Fingerprint()

			tree.Update(h, box(3, 0, 4, 1), nil)

			Convey("Then no reinsertion happens", func() {
				So(tree.Fingerprint(), ShouldEqual, before)
			})
		})

		Convey("When the object moves far outside the margin", func() {
			tree.Update(h, box(100, 100, 101, 101), nil)

			Convey("Then the box is refit around the new position", func() {
				So(visited(tree, box(-5, -5, -4, -4)), ShouldBeEmpty)
				So(visited(tree, box(100, 100, 101, 101)), ShouldResemble, []int{1})
			})
		})
	})
}

func TestValueAccess(t *testing.T) {
	Convey("Given a tree with stored values", t, func() {
		tree := aabbtree.New[string, float64](2)

		h := tree.Insert(box(0, 0, 1, 1), "hello")

		Convey("Then Value returns a mutable reference", func() {
			*tree.Value(h) = "world"

			So(*tree.Value(h), ShouldEqual, "world")
		})

		Convey("Then Lookup distinguishes live handles", func() {
			v, ok := tree.Lookup(h)
			So(ok, ShouldBeTrue)
			So(*v, ShouldEqual, "hello")

			tree.Remove(h)

			_, ok = tree.Lookup(h)
			So(ok, ShouldBeFalse)
		})
	})
}

func TestAll(t *testing.T) {
	Convey("Given a tree with a few values", t, func() {
		tree := aabbtree.New[int, float64](2)

		want := map[indexer.Index]int{
			tree.Insert(box(0, 0, 1, 1), 10): 10,
			tree.Insert(box(2, 2, 3, 3), 20): 20,
			tree.Insert(box(4, 4, 5, 5), 30): 30,
		}

		Convey("When iterating over all values", func() {
			got := map[indexer.Index]int{}
			for idx, v := range tree.All() {
				got[idx] = *v
			}

			Convey("Then every value comes with its leaf handle", func() {
				So(got, ShouldResemble, want)
			})
		})
	})
}
