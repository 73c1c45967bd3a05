package geometry

import (
	"testing"

	"github.com/gre-42/mlib/errs"
	"github.com/gre-42/mlib/math32"
	"github.com/stretchr/testify/assert"
)

func TestBoundingSphereUnionContainsBoth(t *testing.T) {

	a := BoundingSphere{Center: math32.Vector3{X: 0, Y: 0, Z: 0}, Radius: 1}
	b := BoundingSphere{Center: math32.Vector3{X: 5, Y: 0, Z: 0}, Radius: 1}
	u := a.Union(b)

	da := u.Center
	da.Sub(&a.Center)
	assert.LessOrEqual(t, da.Length()+a.Radius, u.Radius+1e-4)

	db := u.Center
	db.Sub(&b.Center)
	assert.LessOrEqual(t, db.Length()+b.Radius, u.Radius+1e-4)
}

func TestBoundingSphereOverlaps(t *testing.T) {

	a := BoundingSphere{Center: math32.Vector3{X: 0, Y: 0, Z: 0}, Radius: 1}
	b := BoundingSphere{Center: math32.Vector3{X: 1.5, Y: 0, Z: 0}, Radius: 1}
	c := BoundingSphere{Center: math32.Vector3{X: 10, Y: 0, Z: 0}, Radius: 1}
	assert.True(t, a.Overlaps(b))
	assert.False(t, a.Overlaps(c))
}

func TestIntersectLineTriangleHitsCenter(t *testing.T) {

	tri := Triangle{
		A: math32.Vector3{X: -1, Y: 0, Z: -1},
		B: math32.Vector3{X: 1, Y: 0, Z: -1},
		C: math32.Vector3{X: 0, Y: 0, Z: 1},
	}
	seg := LineSegment{
		Origin:    math32.Vector3{X: 0, Y: 1, Z: -0.3},
		Direction: math32.Vector3{X: 0, Y: -2, Z: 0},
	}
	hit, ok := IntersectLineTriangle(seg, tri)
	assert.True(t, ok)
	assert.InDelta(t, 0.5, hit.T, 1e-3)
	assert.InDelta(t, 0, hit.Point.Y, 1e-3)
}

func TestIntersectLineTriangleMisses(t *testing.T) {

	tri := Triangle{
		A: math32.Vector3{X: -1, Y: 0, Z: -1},
		B: math32.Vector3{X: 1, Y: 0, Z: -1},
		C: math32.Vector3{X: 0, Y: 0, Z: 1},
	}
	seg := LineSegment{
		Origin:    math32.Vector3{X: 5, Y: 1, Z: 0},
		Direction: math32.Vector3{X: 0, Y: -2, Z: 0},
	}
	_, ok := IntersectLineTriangle(seg, tri)
	assert.False(t, ok)
}

func TestFindContourEdgesSingleTriangleIsAllBoundary(t *testing.T) {

	tri := Triangle{
		A: math32.Vector3{X: 0, Y: 0, Z: 0},
		B: math32.Vector3{X: 1, Y: 0, Z: 0},
		C: math32.Vector3{X: 0, Y: 1, Z: 0},
	}
	edges, err := FindContourEdges([]Triangle{tri})
	assert.NoError(t, err)
	assert.Len(t, edges, 3)
}

func TestFindContourEdgesSharedEdgeIsInterior(t *testing.T) {

	t1 := Triangle{
		A: math32.Vector3{X: 0, Y: 0, Z: 0},
		B: math32.Vector3{X: 1, Y: 0, Z: 0},
		C: math32.Vector3{X: 0, Y: 1, Z: 0},
	}
	t2 := Triangle{
		A: math32.Vector3{X: 1, Y: 0, Z: 0},
		B: math32.Vector3{X: 0, Y: 0, Z: 0},
		C: math32.Vector3{X: 1, Y: 1, Z: 0},
	}
	edges, err := FindContourEdges([]Triangle{t1, t2})
	assert.NoError(t, err)
	assert.Len(t, edges, 4)
}

func TestFindContourEdgesDuplicateRaisesEdgeException(t *testing.T) {

	t1 := Triangle{
		A: math32.Vector3{X: 0, Y: 0, Z: 0},
		B: math32.Vector3{X: 1, Y: 0, Z: 0},
		C: math32.Vector3{X: 0, Y: 1, Z: 0},
	}
	_, err := FindContourEdges([]Triangle{t1, t1})
	assert.Error(t, err)
	var edgeErr *errs.EdgeException
	assert.ErrorAs(t, err, &edgeErr)
}
