package collision

import (
	"github.com/gre-42/mlib/geometry"
	"github.com/gre-42/mlib/math32"
	"github.com/gre-42/mlib/physics"
)

// edgeKey is an unordered hashable pair of vertex positions, used to
// skip an edge shared by two triangles of the same mesh the second
// time it is encountered -- spec 4.D step 3's "order edges by vertex
// lexicographic order to avoid double-handling shared edges".
type edgeKey [6]float32

func makeEdgeKey(a, b math32.Vector3) edgeKey {

	av := [3]float32{a.X, a.Y, a.Z}
	bv := [3]float32{b.X, b.Y, b.Z}
	if lexicographicLess(bv, av) {
		av, bv = bv, av
	}
	return edgeKey{av[0], av[1], av[2], bv[0], bv[1], bv[2]}
}

func lexicographicLess(a, b [3]float32) bool {
	for i := 0; i < 3; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// TireLineInfo supplies the per-contact friction state for a tire
// line's narrow-phase hit: the owning tire, the combined magic-formula
// friction already bound to it, and the rigid body pulses it acts on.
type TireLineInfo struct {
	RBP   *physics.RigidBodyPulses
	Tire  *physics.Tire
}

// GenerateContacts runs the narrow phase for one movable body's
// collision mesh against the static BVH: mesh-sphere prefilter,
// per-triangle plane prefilter, edge-ordered line-triangle
// intersection, and normal/tire-line classification (spec 4.D). It
// returns one ContactInfo per accepted hit, ready to hand to
// physics.SolveContacts (SEQUENTIAL_PULSES). No penalty-force
// resolution is provided for these contacts.
//
// tireLookup resolves a MeshTriangle.TireIndex >= 0 to the owning
// tire's state; a triangle with TireIndex < 0 is a plain hitbox
// triangle and its edges are always treated as normal lines.
func GenerateContacts(bvh *BVH, rbp *physics.RigidBodyPulses, mesh *MovableMesh, cfg physics.PhysicsEngineConfig, tireLookup func(tireIndex int) *TireLineInfo) []physics.ContactInfo {

	mesh.RefreshSphere()
	candidates := bvh.QuerySphere(mesh.Sphere)
	if len(candidates) == 0 {
		return nil
	}

	var contacts []physics.ContactInfo

	for _, idx := range candidates {
		seen := make(map[edgeKey]bool)
		st := bvh.Static(idx)
		normal := st.Tri.Normal()
		if normal.LengthSq() < 1e-12 {
			continue
		}
		normal.Normalize()
		if !geometry.SphereOverlapsPlane(mesh.Sphere, st.Tri.A, normal) {
			continue
		}

		for _, mt := range mesh.Triangles {
			edges := [3][2]math32.Vector3{
				{mt.Tri.A, mt.Tri.B},
				{mt.Tri.B, mt.Tri.C},
				{mt.Tri.C, mt.Tri.A},
			}
			for _, e := range edges {
				key := makeEdgeKey(e[0], e[1])
				if seen[key] {
					continue
				}
				seen[key] = true

				dir := e[1]
				dir.Sub(&e[0])
				line := geometry.LineSegment{Origin: e[0], Direction: dir}

				hit, ok := geometry.IntersectLineTriangle(line, st.Tri)
				if !ok {
					continue
				}

				if mt.TireIndex >= 0 {
					if !geometry.ClassifyAgainstTireLine(normal, line, cfg.Alpha0) {
						continue
					}
					if tireLookup != nil {
						if tl := tireLookup(mt.TireIndex); tl != nil {
							contacts = append(contacts, newTireContact(tl, normal, hit.Point, cfg))
							continue
						}
					}
				}

				contacts = append(contacts, newNormalContact(rbp, normal, hit.Point, cfg))
			}
		}
	}
	return contacts
}

// newNormalContact builds the one-sided non-penetration contact for a
// plain hitbox-line hit against an immovable static triangle.
func newNormalContact(rbp *physics.RigidBodyPulses, normal, point math32.Vector3, cfg physics.PhysicsEngineConfig) *physics.NormalContactInfo1 {

	return &physics.NormalContactInfo1{
		RBP: rbp,
		PC: physics.PlaneInequalityConstraint{
			Impulse:   physics.NormalImpulse{Normal: normal},
			Intercept: -normal.Dot(&point),
			Beta:      cfg.ContactBeta,
			Slop:      0,
		},
		P:         point,
		LambdaMin: cfg.LambdaMin,
		LambdaMax: math32.Infinity,
	}
}

// newTireContact builds the friction contact for a tire-line hit,
// bounding tangential impulse by the configured stiction/friction
// coefficients (spec 4.C/4.D). The tire's magic formula and state are
// not consulted.
func newTireContact(tl *TireLineInfo, normal, point math32.Vector3, cfg physics.PhysicsEngineConfig) *physics.FrictionContactInfo1 {

	return &physics.FrictionContactInfo1{
		RBP:                 tl.RBP,
		NormalImpulse:       &physics.NormalImpulse{Normal: normal},
		P:                   point,
		StictionCoefficient: cfg.StictionCoefficient,
		FrictionCoefficient: cfg.FrictionCoefficient,
	}
}
