package geometry

import "github.com/gre-42/mlib/errs"

// orderedVertex is a hashable exact copy of a vertex position, used
// as a set key the way the original's OrderableFixedArray orders a
// FixedArray<float,3> lexicographically for use in an ordered set.
type orderedVertex [3]float32

// directedEdge is an ordered pair of vertex positions: (from, to).
type directedEdge struct {
	from, to orderedVertex
}

func toOrdered(v [3]float32) orderedVertex {
	return orderedVertex{v[0], v[1], v[2]}
}

// FindContourEdges returns the boundary edges of a triangle soup: for
// each directed edge (a,b) of every triangle, a duplicate directed
// edge (the same orientation appearing twice) raises an EdgeException
// -- the mesh is non-manifold. After inserting every directed edge,
// any edge whose reverse (b,a) also appears in the mesh is interior
// and is discarded; what remains is the set of contour (boundary)
// edges, each still expressed as a directed (from, to) pair.
//
// Ported from the C++ find_contour_edges in original_source's
// Contour.cpp: insert every forward edge of every triangle, erase the
// ones whose reverse was also inserted.
func FindContourEdges(triangles []Triangle) ([][2][3]float32, error) {

	edges := make(map[directedEdge]bool)

	insert := func(from, to [3]float32) error {
		e := directedEdge{from: toOrdered(from), to: toOrdered(to)}
		if edges[e] {
			return &errs.EdgeException{Msg: "detected duplicate edge in mesh"}
		}
		edges[e] = true
		return nil
	}

	for _, t := range triangles {
		a := [3]float32{t.A.X, t.A.Y, t.A.Z}
		b := [3]float32{t.B.X, t.B.Y, t.B.Z}
		c := [3]float32{t.C.X, t.C.Y, t.C.Z}
		if err := insert(a, b); err != nil {
			return nil, err
		}
		if err := insert(b, c); err != nil {
			return nil, err
		}
		if err := insert(c, a); err != nil {
			return nil, err
		}
	}

	for _, t := range triangles {
		a := toOrdered([3]float32{t.A.X, t.A.Y, t.A.Z})
		b := toOrdered([3]float32{t.B.X, t.B.Y, t.B.Z})
		c := toOrdered([3]float32{t.C.X, t.C.Y, t.C.Z})
		delete(edges, directedEdge{from: b, to: a})
		delete(edges, directedEdge{from: c, to: b})
		delete(edges, directedEdge{from: a, to: c})
	}

	result := make([][2][3]float32, 0, len(edges))
	for e := range edges {
		result = append(result, [2][3]float32{
			{e.from[0], e.from[1], e.from[2]},
			{e.to[0], e.to[1], e.to[2]},
		})
	}
	return result, nil
}
