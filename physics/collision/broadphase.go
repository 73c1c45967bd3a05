// Package collision implements the broad-phase BVH and narrow-phase
// triangle/line contact generation that feeds the physics package's
// sequential-impulse and penalty resolvers with real ContactInfo
// values, grounded on original_source's Collision_Engine broad/narrow
// phase split (spec 4.D) rather than on any of g3n-engine's own toy
// AABB physics demo, which this package replaces.
package collision

import (
	"github.com/gre-42/mlib/geometry"
	"github.com/gre-42/mlib/math32"
)

// cellKey identifies one cubic bucket of the static-triangle grid,
// edge length static_radius -- the simplest BVH that satisfies spec
// 4.D's broad-phase contract (sphere-overlap and point-in-AABB
// queries over a bounded world) without the complexity of a real
// hierarchical tree, which original_source's own Bvh.hpp also avoids
// in favor of a uniform grid keyed by static_radius.
type cellKey struct {
	X, Y, Z int32
}

func cellOf(p math32.Vector3, radius float32) cellKey {
	return cellKey{
		X: int32(math32.Floor(p.X / radius)),
		Y: int32(math32.Floor(p.Y / radius)),
		Z: int32(math32.Floor(p.Z / radius)),
	}
}

// StaticTriangle is one triangle of immovable level geometry together
// with its bounding sphere, the broad phase's atomic static unit.
type StaticTriangle struct {
	Tri    geometry.Triangle
	Sphere geometry.BoundingSphere
}

// MeshTriangle is one triangle of a movable body's collision mesh.
// TireIndex is >= 0 when the triangle belongs to a tire's contact
// patch, in which case its edges are tire lines rather than plain
// hitbox lines when tested in the narrow phase.
type MeshTriangle struct {
	Tri       geometry.Triangle
	TireIndex int
}

// MovableMesh is one dynamic body's collision mesh, with a single
// bounding sphere refreshed once per tick by RefreshSphere -- the
// per-movable-mesh half of spec 4.D's broad phase.
type MovableMesh struct {
	BodyID    int
	Triangles []MeshTriangle
	Sphere    geometry.BoundingSphere
}

// RefreshSphere recomputes the mesh's bounding sphere from its
// current triangle vertices, called once per tick before broad-phase
// queries against it.
func (m *MovableMesh) RefreshSphere() {

	box := geometry.EmptyBoundingBox()
	for _, t := range m.Triangles {
		box.ExtendPoint(t.Tri.A)
		box.ExtendPoint(t.Tri.B)
		box.ExtendPoint(t.Tri.C)
	}
	m.Sphere = box.ToSphere()
}

// BVH is the broad-phase acceleration structure: a uniform grid of
// static triangle bounding spheres bucketed by StaticRadius, queried
// by sphere overlap or point containment against movable mesh
// bounding spheres/boxes.
type BVH struct {
	StaticRadius float32
	statics      []StaticTriangle
	cells        map[cellKey][]int
}

// NewBVH creates an empty BVH with the given static bucket size
// (original_source's static_radius, PhysicsEngineConfig.StaticRadius).
func NewBVH(staticRadius float32) *BVH {
	return &BVH{
		StaticRadius: staticRadius,
		cells:        make(map[cellKey][]int),
	}
}

// AddStaticTriangle registers one static level triangle, bucketing it
// by the grid cells its bounding sphere touches (a sphere spanning
// multiple cells is registered in all of them so queries never miss
// it at a cell boundary).
func (b *BVH) AddStaticTriangle(tri geometry.Triangle) int {

	box := geometry.EmptyBoundingBox()
	box.ExtendPoint(tri.A)
	box.ExtendPoint(tri.B)
	box.ExtendPoint(tri.C)
	sphere := box.ToSphere()

	idx := len(b.statics)
	b.statics = append(b.statics, StaticTriangle{Tri: tri, Sphere: sphere})

	minCell := cellOf(box.Min, b.StaticRadius)
	maxCell := cellOf(box.Max, b.StaticRadius)
	for x := minCell.X; x <= maxCell.X; x++ {
		for y := minCell.Y; y <= maxCell.Y; y++ {
			for z := minCell.Z; z <= maxCell.Z; z++ {
				k := cellKey{x, y, z}
				b.cells[k] = append(b.cells[k], idx)
			}
		}
	}
	return idx
}

// AllTriangles returns every registered static triangle, used when
// folding one BVH's contents into another scratch BVH.
func (b *BVH) AllTriangles() []StaticTriangle {
	return b.statics
}

// Static returns the static triangle previously registered at idx.
func (b *BVH) Static(idx int) StaticTriangle {
	return b.statics[idx]
}

// QuerySphere returns the indices of static triangles whose bounding
// sphere overlaps s, deduplicated, implementing spec 4.D's
// mesh-sphere-vs-mesh-sphere broad-phase prefilter.
func (b *BVH) QuerySphere(s geometry.BoundingSphere) []int {

	box := geometry.BoundingBox{
		Min: math32.Vector3{X: s.Center.X - s.Radius, Y: s.Center.Y - s.Radius, Z: s.Center.Z - s.Radius},
		Max: math32.Vector3{X: s.Center.X + s.Radius, Y: s.Center.Y + s.Radius, Z: s.Center.Z + s.Radius},
	}
	seen := make(map[int]bool)
	var out []int
	minCell := cellOf(box.Min, b.StaticRadius)
	maxCell := cellOf(box.Max, b.StaticRadius)
	for x := minCell.X; x <= maxCell.X; x++ {
		for y := minCell.Y; y <= maxCell.Y; y++ {
			for z := minCell.Z; z <= maxCell.Z; z++ {
				for _, idx := range b.cells[cellKey{x, y, z}] {
					if seen[idx] {
						continue
					}
					seen[idx] = true
					if b.statics[idx].Sphere.Overlaps(s) {
						out = append(out, idx)
					}
				}
			}
		}
	}
	return out
}

// QueryPointAABB returns the indices of static triangles whose
// bounding box contains p, satisfying spec 4.D's point-in-AABB query
// (used e.g. to test whether a ground-probe point lies over known
// level geometry before falling back to a more expensive test).
func (b *BVH) QueryPointAABB(p math32.Vector3) []int {

	cell := cellOf(p, b.StaticRadius)
	var out []int
	for _, idx := range b.cells[cell] {
		box := geometry.EmptyBoundingBox()
		tri := b.statics[idx].Tri
		box.ExtendPoint(tri.A)
		box.ExtendPoint(tri.B)
		box.ExtendPoint(tri.C)
		if box.ContainsPoint(p) {
			out = append(out, idx)
		}
	}
	return out
}
