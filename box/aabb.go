// Package box defines the bounding-volume value types consumed by the
// separating-axis predicates: axis-aligned boxes as min/max corner pairs and
// oriented boxes as a center plus three extent vectors.
package box

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// Center returns the midpoint of the box.
func (a AABB) Center() mgl64.Vec3 {
	return a.Min.Add(a.Max).Mul(0.5)
}

// HalfExtents returns the half-widths of the box along the three world axes.
func (a AABB) HalfExtents() mgl64.Vec3 {
	return a.Max.Sub(a.Min).Mul(0.5)
}

// Size returns the full widths of the box along the three world axes.
func (a AABB) Size() mgl64.Vec3 {
	return a.Max.Sub(a.Min)
}

// ContainsPoint checks if a point is inside the AABB
func (a AABB) ContainsPoint(point mgl64.Vec3) bool {
	return point.X() >= a.Min.X() && point.X() <= a.Max.X() &&
		point.Y() >= a.Min.Y() && point.Y() <= a.Max.Y() &&
		point.Z() >= a.Min.Z() && point.Z() <= a.Max.Z()
}

// Overlaps checks if two AABBs overlap. Boxes that merely touch on a face,
// edge or corner count as overlapping.
func (a AABB) Overlaps(other AABB) bool {
	// AABBs overlap if they overlap on all three axes
	return a.Max.X() >= other.Min.X() && a.Min.X() <= other.Max.X() &&
		a.Max.Y() >= other.Min.Y() && a.Min.Y() <= other.Max.Y() &&
		a.Max.Z() >= other.Min.Z() && a.Min.Z() <= other.Max.Z()
}

// Translated returns the box moved by t.
func (a AABB) Translated(t mgl64.Vec3) AABB {
	return AABB{Min: a.Min.Add(t), Max: a.Max.Add(t)}
}

// IsValid reports whether every corner coordinate is finite and Min <= Max
// holds on every axis. The intersection predicates do not check this
// themselves; callers feeding untrusted geometry should.
func (a AABB) IsValid() bool {
	for i := 0; i < 3; i++ {
		if math.IsNaN(a.Min[i]) || math.IsInf(a.Min[i], 0) {
			return false
		}
		if math.IsNaN(a.Max[i]) || math.IsInf(a.Max[i], 0) {
			return false
		}
		if a.Min[i] > a.Max[i] {
			return false
		}
	}
	return true
}
