package box

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// OBB represents an oriented bounding box as a center point and three extent
// vectors. Each extent vector's direction is one local axis of the box and
// its magnitude the half-width along that axis. For a rigid box the three
// directions are mutually orthogonal; a zero-magnitude extent models a
// degenerate (flat, line or point) box.
type OBB struct {
	Center  mgl64.Vec3
	Extents [3]mgl64.Vec3
}

// FromAABB returns the oriented form of an axis-aligned box: world-axis
// extent vectors scaled by the half-widths.
func FromAABB(a AABB) OBB {
	h := a.HalfExtents()

	return OBB{
		Center: a.Center(),
		Extents: [3]mgl64.Vec3{
			{h.X(), 0, 0},
			{0, h.Y(), 0},
			{0, 0, h.Z()},
		},
	}
}

// FromTransform builds an oriented box with the given half-extents, posed at
// center with the given rotation.
func FromTransform(center mgl64.Vec3, rotation mgl64.Quat, halfExtents mgl64.Vec3) OBB {
	return OBB{
		Center: center,
		Extents: [3]mgl64.Vec3{
			rotation.Rotate(mgl64.Vec3{halfExtents.X(), 0, 0}),
			rotation.Rotate(mgl64.Vec3{0, halfExtents.Y(), 0}),
			rotation.Rotate(mgl64.Vec3{0, 0, halfExtents.Z()}),
		},
	}
}

// HalfWidths returns the magnitudes of the three extent vectors.
func (o OBB) HalfWidths() mgl64.Vec3 {
	return mgl64.Vec3{o.Extents[0].Len(), o.Extents[1].Len(), o.Extents[2].Len()}
}

// Corners returns the eight vertices of the box.
func (o OBB) Corners() [8]mgl64.Vec3 {
	var corners [8]mgl64.Vec3

	for i := range corners {
		c := o.Center
		for k, extent := range o.Extents {
			if i&(1<<k) != 0 {
				c = c.Add(extent)
			} else {
				c = c.Sub(extent)
			}
		}
		corners[i] = c
	}

	return corners
}

// Bounds returns the tightest axis-aligned box enclosing the oriented box.
func (o OBB) Bounds() AABB {
	corners := o.Corners()

	min := corners[0]
	max := corners[0]
	for _, c := range corners[1:] {
		for i := 0; i < 3; i++ {
			min[i] = math.Min(min[i], c[i])
			max[i] = math.Max(max[i], c[i])
		}
	}

	return AABB{Min: min, Max: max}
}

// Translated returns the box moved by t.
func (o OBB) Translated(t mgl64.Vec3) OBB {
	o.Center = o.Center.Add(t)
	return o
}

// Rotated returns the box rotated by q about the world origin. Both the
// center and the extent directions turn with the rotation, so the box keeps
// its shape.
func (o OBB) Rotated(q mgl64.Quat) OBB {
	return OBB{
		Center: q.Rotate(o.Center),
		Extents: [3]mgl64.Vec3{
			q.Rotate(o.Extents[0]),
			q.Rotate(o.Extents[1]),
			q.Rotate(o.Extents[2]),
		},
	}
}

// IsDegenerate reports whether any extent has zero magnitude. Degenerate
// boxes are well-formed input, but normalizing a zero-length extent inside
// the predicates produces NaN axis components, so candidate axes touched by
// the degenerate direction can never prove separation and the verdict leans
// conservatively toward "overlap".
func (o OBB) IsDegenerate() bool {
	return o.Extents[0].Len() == 0 || o.Extents[1].Len() == 0 || o.Extents[2].Len() == 0
}

// IsValid reports whether every component of the center and extents is
// finite. Callers that need a definite separation verdict should also reject
// degenerate boxes, see IsDegenerate.
func (o OBB) IsValid() bool {
	for i := 0; i < 3; i++ {
		if math.IsNaN(o.Center[i]) || math.IsInf(o.Center[i], 0) {
			return false
		}
		for _, extent := range o.Extents {
			if math.IsNaN(extent[i]) || math.IsInf(extent[i], 0) {
				return false
			}
		}
	}
	return true
}
