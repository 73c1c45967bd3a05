package geometry

import "github.com/gre-42/mlib/math32"

// Triangle is three vertices in consistent winding order.
type Triangle struct {
	A, B, C math32.Vector3
}

// Normal returns the (non-normalized) face normal of the triangle,
// (B-A) x (C-A).
func (t Triangle) Normal() math32.Vector3 {

	e1 := t.B
	e1.Sub(&t.A)
	e2 := t.C
	e2.Sub(&t.A)
	n := math32.Vector3{}
	n.CrossVectors(&e1, &e2)
	return n
}

// LineSegment is a parametric segment from Origin to Origin+Direction,
// where t=0 is Origin and t=1 is the segment endpoint.
type LineSegment struct {
	Origin    math32.Vector3
	Direction math32.Vector3
}

// PointAt evaluates the segment at parameter t.
func (l LineSegment) PointAt(t float32) math32.Vector3 {

	p := l.Direction
	p.MultiplyScalar(t)
	p.Add(&l.Origin)
	return p
}

// LineTriangleIntersection is the result of intersecting a line
// segment against a triangle: the hit point, the ray parameter t in
// [0,1] at which it occurred, and the barycentric weights (u,v,w) of
// the hit point with respect to (A,B,C).
type LineTriangleIntersection struct {
	Point   math32.Vector3
	T       float32
	U, V, W float32
}

const lineTriangleEpsilon = 1e-7

// IntersectLineTriangle computes the intersection of a line segment
// with a triangle using the Möller-Trumbore algorithm. ok is false if
// the segment is parallel to the triangle's plane, the intersection
// falls outside the triangle, or t falls outside [0,1].
func IntersectLineTriangle(l LineSegment, tri Triangle) (hit LineTriangleIntersection, ok bool) {

	edge1 := tri.B
	edge1.Sub(&tri.A)
	edge2 := tri.C
	edge2.Sub(&tri.A)

	var h math32.Vector3
	h.CrossVectors(&l.Direction, &edge2)
	a := edge1.Dot(&h)
	if math32.Abs(a) < lineTriangleEpsilon {
		return hit, false
	}

	f := 1 / a
	s := l.Origin
	s.Sub(&tri.A)
	u := f * s.Dot(&h)
	if u < 0 || u > 1 {
		return hit, false
	}

	var q math32.Vector3
	q.CrossVectors(&s, &edge1)
	v := f * l.Direction.Dot(&q)
	if v < 0 || u+v > 1 {
		return hit, false
	}

	t := f * edge2.Dot(&q)
	if t < 0 || t > 1 {
		return hit, false
	}

	hit.T = t
	hit.Point = l.PointAt(t)
	hit.U = 1 - u - v
	hit.V = u
	hit.W = v
	return hit, true
}

// ClassifyAgainstTireLine reports whether a contact normal is
// consistent with the rolling direction of a tire line (the segment
// swept by the contact point of a wheel across one sub-step): it
// rejects near-tangential normals that would otherwise generate a
// spurious contact on the side of the tire rather than its tread.
func ClassifyAgainstTireLine(normal math32.Vector3, tireLine LineSegment, minCos float32) bool {

	dir := tireLine.Direction
	if dir.LengthSq() < 1e-12 {
		return true
	}
	dir.Normalize()
	n := normal
	n.Normalize()
	return math32.Abs(n.Dot(&dir)) <= minCos
}
