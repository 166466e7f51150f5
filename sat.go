// Package sat implements test-intersection predicates between 3D bounding
// boxes using the method of separating axes.
//
// Two convex shapes are disjoint if and only if there is an axis onto which
// their projections do not overlap. For a pair of boxes the candidate set is
// finite: the 3 face normals of each box plus the 9 pairwise cross products
// of an edge direction from each, 15 axes in total. Each axis is tested by
// comparing the projected distance between the box centers against the sum of
// the boxes' projected half-extents; the first axis on which the distance
// wins proves separation.
//
// The predicates are conservative: when a pair of box axes is numerically
// parallel the 9 cross-product axes are near zero length and their tests are
// ill-conditioned, so they are skipped and the pair is reported as
// overlapping. A false positive costs the caller one redundant refinement
// downstream; a false negative would silently drop a real collision.
//
// References:
//   - Gottschalk, Lin, Manocha: "OBBTree: A Hierarchical Structure for Rapid
//     Interference Detection" (1996)
//     http://www.cs.unc.edu/techreports/96-013.pdf
//   - Eberly: "Dynamic Collision Detection using Oriented Bounding Boxes"
//     https://www.geometrictools.com/Documentation/DynamicCollisionDetection.pdf
//   - Eberly: "Intersection of Convex Objects: The Method of Separating Axes"
//     https://www.geometrictools.com/Documentation/MethodOfSeparatingAxes.pdf
package sat

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/bgeom/sat/box"
)

// DefaultEpsilon is the unitization tolerance used by IntersectsAABBOBB and
// IntersectsOBBOBB. It serves two roles: extent vectors shorter than it
// cannot be normalized into meaningful unit axes, and two unit axes whose
// absolute dot product reaches 1-DefaultEpsilon are treated as parallel,
// which disables the cross-product axis tests. The cutoff is absolute, not
// scaled by the box extents; use the *Eps variants to supply a different
// tolerance.
const DefaultEpsilon = 1.0e-15

// next maps an axis index to the following one in cyclic order, so
// next[i] and next[next[i]] are the two axes completing a right-handed
// triple with i.
var next = [3]int{1, 2, 0}

// IntersectsAABBOBB reports whether an axis-aligned box and an oriented box
// overlap, using DefaultEpsilon as the unitization tolerance.
//
// The result is false only when a tested axis proves the boxes disjoint;
// touching boxes (zero gap) and numerically inconclusive configurations
// report true. Inputs must be well-formed: a.Min <= a.Max on every axis,
// finite coordinates, and non-degenerate extents if a definite verdict is
// required (see box.OBB.IsDegenerate).
func IntersectsAABBOBB(a box.AABB, o box.OBB) bool {
	return IntersectsAABBOBBEps(a, o, DefaultEpsilon)
}

// IntersectsAABBOBBEps is IntersectsAABBOBB with an explicit unitization
// tolerance.
//
// The aligned box enters the test in center/half-extent form with the world
// coordinate directions as its implicit axes, which makes its three face
// tests direct coordinate reads. Axis order: the 3 world axes, the oriented
// box's 3 axes, then, only if no pair of axes turned out parallel, the 9
// cross products.
func IntersectsAABBOBBEps(a box.AABB, o box.OBB, epsilon float64) bool {
	c0 := a.Center()
	e0 := a.HalfExtents()
	e1, a1 := unitize(o.Extents)

	cutoff := 1.0 - epsilon
	parallelPair := false

	// Difference of box centers.
	d := o.Center.Sub(c0)

	// dot01[i][j] = Dot(A0[i], A1[j]); with A0 the world axes this is a
	// coordinate read of A1[j].
	var dot01, absDot01 [3][3]float64

	// Separation on the aligned box's three face normals.
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			dot01[i][j] = a1[j][i]
			absDot01[i][j] = math.Abs(a1[j][i])
			if absDot01[i][j] >= cutoff {
				parallelPair = true
			}
		}
		r := math.Abs(d[i])
		r1 := e1[0]*absDot01[i][0] + e1[1]*absDot01[i][1] + e1[2]*absDot01[i][2]
		if r > e0[i]+r1 {
			return false
		}
	}

	// Separation on the oriented box's three face normals.
	for j := 0; j < 3; j++ {
		r := math.Abs(d.Dot(a1[j]))
		r0 := e0[0]*absDot01[0][j] + e0[1]*absDot01[1][j] + e0[2]*absDot01[2][j]
		if r > r0+e1[j] {
			return false
		}
	}

	// A pair of box axes is numerically parallel, so the separation, if
	// any, is effectively two-dimensional and the face-normal tests above
	// have already ruled it out. The cross-product axes are near zero
	// length here and their tests prove nothing.
	if parallelPair {
		return true
	}

	// Separation on the nine edge-edge axes A0[i] x A1[j].
	for i := 0; i < 3; i++ {
		i1, i2 := next[i], next[next[i]]
		for j := 0; j < 3; j++ {
			j1, j2 := next[j], next[next[j]]
			r := math.Abs(d[i2]*dot01[i1][j] - d[i1]*dot01[i2][j])
			r01 := e0[i1]*absDot01[i2][j] + e0[i2]*absDot01[i1][j] +
				e1[j1]*absDot01[i][j2] + e1[j2]*absDot01[i][j1]
			if r > r01 {
				return false
			}
		}
	}

	return true
}

// IntersectsOBBOBB reports whether two oriented boxes overlap, using
// DefaultEpsilon as the unitization tolerance. Contract and conservatism are
// the same as for IntersectsAABBOBB.
func IntersectsOBBOBB(a, b box.OBB) bool {
	return IntersectsOBBOBBEps(a, b, DefaultEpsilon)
}

// IntersectsOBBOBBEps is IntersectsOBBOBB with an explicit unitization
// tolerance.
//
// Structurally identical to the aligned variant, except that the first box's
// axes come from its extent vectors too, so every projection is a general
// dot product.
func IntersectsOBBOBBEps(a, b box.OBB, epsilon float64) bool {
	e0, a0 := unitize(a.Extents)
	e1, a1 := unitize(b.Extents)

	cutoff := 1.0 - epsilon
	parallelPair := false

	// Difference of box centers.
	d := b.Center.Sub(a.Center)

	// dot01[i][j] = Dot(A0[i], A1[j])
	var dot01, absDot01 [3][3]float64

	// Dot(D, A0[i]), reused by the cross-product axis tests.
	var dotDA0 [3]float64

	// Separation on the first box's three face normals.
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			dot01[i][j] = a0[i].Dot(a1[j])
			absDot01[i][j] = math.Abs(dot01[i][j])
			if absDot01[i][j] >= cutoff {
				parallelPair = true
			}
		}
		dotDA0[i] = d.Dot(a0[i])
		r := math.Abs(dotDA0[i])
		r1 := e1[0]*absDot01[i][0] + e1[1]*absDot01[i][1] + e1[2]*absDot01[i][2]
		if r > e0[i]+r1 {
			return false
		}
	}

	// Separation on the second box's three face normals.
	for j := 0; j < 3; j++ {
		r := math.Abs(d.Dot(a1[j]))
		r0 := e0[0]*absDot01[0][j] + e0[1]*absDot01[1][j] + e0[2]*absDot01[2][j]
		if r > r0+e1[j] {
			return false
		}
	}

	// Same shortcut as the aligned variant: parallel axes make the
	// edge-edge tests meaningless, and the face tests already covered the
	// two-dimensional separation.
	if parallelPair {
		return true
	}

	// Separation on the nine edge-edge axes A0[i] x A1[j].
	for i := 0; i < 3; i++ {
		i1, i2 := next[i], next[next[i]]
		for j := 0; j < 3; j++ {
			j1, j2 := next[j], next[next[j]]
			r := math.Abs(dotDA0[i2]*dot01[i1][j] - dotDA0[i1]*dot01[i2][j])
			r01 := e0[i1]*absDot01[i2][j] + e0[i2]*absDot01[i1][j] +
				e1[j1]*absDot01[i][j2] + e1[j2]*absDot01[i][j1]
			if r > r01 {
				return false
			}
		}
	}

	return true
}

// unitize splits extent vectors into unit axis directions and half-width
// magnitudes. The division is unconditional: a zero-length extent yields NaN
// axis components, and every comparison involving them is false, so no axis
// touched by the degenerate direction can ever prove separation. Separation
// on the remaining clean axes is still detected. Callers needing a definite
// answer on every axis must reject degenerate boxes up front.
func unitize(extents [3]mgl64.Vec3) (widths mgl64.Vec3, axes [3]mgl64.Vec3) {
	for i, extent := range extents {
		widths[i] = extent.Len()
		axes[i] = extent.Mul(1 / widths[i])
	}
	return widths, axes
}
