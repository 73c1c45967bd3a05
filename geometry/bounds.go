// Package geometry implements the bounding-volume, intersection, and
// contour primitives shared by the collision pipeline and the
// aggregate renderer: bounding spheres/boxes, sphere-plane distance,
// parametric line-triangle intersection, a per-frame SAT memoization
// tracker, and mesh contour extraction.
package geometry

import "github.com/gre-42/mlib/math32"

// BoundingSphere is a center + radius bounding volume, used both for
// the broad-phase BVH (per-static-triangle and per-movable-mesh) and
// for draw-distance culling in the renderer.
type BoundingSphere struct {
	Center math32.Vector3
	Radius float32
}

// Union returns the smallest sphere containing both a and b. A
// zero-radius sphere centered at the origin counts as empty, so a
// Union with it as a returns b unchanged.
func (a BoundingSphere) Union(b BoundingSphere) BoundingSphere {

	if a.Radius == 0 && a.Center == (math32.Vector3{}) {
		return b
	}
	diff := b.Center
	diff.Sub(&a.Center)
	dist := diff.Length()

	if dist+b.Radius <= a.Radius {
		return a
	}
	if dist+a.Radius <= b.Radius {
		return b
	}

	newRadius := (dist + a.Radius + b.Radius) / 2
	k := (newRadius - a.Radius) / dist
	center := diff.Clone().MultiplyScalar(k)
	center.Add(&a.Center)
	return BoundingSphere{Center: *center, Radius: newRadius}
}

// Overlaps returns whether two spheres intersect.
func (a BoundingSphere) Overlaps(b BoundingSphere) bool {

	diff := b.Center
	diff.Sub(&a.Center)
	r := a.Radius + b.Radius
	return diff.LengthSq() <= r*r
}

// BoundingBox is an axis-aligned bounding box, min/max corners.
type BoundingBox struct {
	Min math32.Vector3
	Max math32.Vector3
}

// EmptyBoundingBox returns a box primed so the first Union call
// collapses to exactly the unioned point/box.
func EmptyBoundingBox() BoundingBox {

	const inf = math32.Infinity
	return BoundingBox{
		Min: math32.Vector3{X: inf, Y: inf, Z: inf},
		Max: math32.Vector3{X: -inf, Y: -inf, Z: -inf},
	}
}

// ExtendPoint grows this box to include p.
func (b *BoundingBox) ExtendPoint(p math32.Vector3) {

	if p.X < b.Min.X {
		b.Min.X = p.X
	}
	if p.Y < b.Min.Y {
		b.Min.Y = p.Y
	}
	if p.Z < b.Min.Z {
		b.Min.Z = p.Z
	}
	if p.X > b.Max.X {
		b.Max.X = p.X
	}
	if p.Y > b.Max.Y {
		b.Max.Y = p.Y
	}
	if p.Z > b.Max.Z {
		b.Max.Z = p.Z
	}
}

// Overlaps returns whether two AABBs intersect.
func (b BoundingBox) Overlaps(other BoundingBox) bool {

	return b.Min.X <= other.Max.X && b.Max.X >= other.Min.X &&
		b.Min.Y <= other.Max.Y && b.Max.Y >= other.Min.Y &&
		b.Min.Z <= other.Max.Z && b.Max.Z >= other.Min.Z
}

// ContainsPoint returns whether p lies within this box (inclusive).
func (b BoundingBox) ContainsPoint(p math32.Vector3) bool {

	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// ToSphere returns the bounding sphere centered at the box's centroid
// with radius reaching the farthest corner; a cheap conservative
// conversion used when feeding the BVH's sphere-only broad phase.
func (b BoundingBox) ToSphere() BoundingSphere {

	center := b.Min
	center.Add(&b.Max)
	center.MultiplyScalar(0.5)
	r := b.Max
	r.Sub(&center)
	return BoundingSphere{Center: center, Radius: r.Length()}
}

// SignedDistanceToPlane returns the signed distance from point p to
// the plane through planePoint with unit normal, positive on the side
// the normal points to. Used by narrowphase contact generation to
// reject triangles whose plane is farther from a wheel/body sphere
// than its radius.
func SignedDistanceToPlane(p, planePoint, normal math32.Vector3) float32 {

	d := p
	d.Sub(&planePoint)
	return d.Dot(&normal)
}

// SphereOverlapsPlane returns whether the sphere intersects the
// half-space boundary defined by the plane through planePoint with
// unit normal.
func SphereOverlapsPlane(s BoundingSphere, planePoint, normal math32.Vector3) bool {

	d := SignedDistanceToPlane(s.Center, planePoint, normal)
	return math32.Abs(d) <= s.Radius
}
