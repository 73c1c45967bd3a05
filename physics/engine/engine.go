// Package engine composes the physics package's rigid-body integrator
// and contact resolver with the collision package's broad/narrow phase
// into the single stepping facade spec 4.H's physics loop drives:
// collide, solve_contacts, move_rigid_bodies, move_advance_times.
package engine

import (
	"github.com/gre-42/mlib/math32"
	"github.com/gre-42/mlib/physics"
	"github.com/gre-42/mlib/physics/collision"
)

// AdvanceTimeObserver is anything that wants a per-sub-step callback
// riding along with a body -- check-point trackers, wheel movables,
// follower cameras (physics/advance's AdvanceTime, matched
// structurally so this package need not import it).
type AdvanceTimeObserver interface {
	AdvanceTime(dt float32)
}

// Body is one dynamic rigid body the engine steps: its integrator, its
// collision mesh, the tires mounted on its mesh's tire triangles
// (keyed by MeshTriangle.TireIndex), and any advance-time observers
// riding along with it.
type Body struct {
	RBI      *physics.RigidBodyIntegrator
	Mesh     *collision.MovableMesh
	Tires    map[int]*physics.Tire
	Advance  []AdvanceTimeObserver
	Destroyed bool
}

// Engine owns the static broad-phase BVH, the set of live dynamic
// bodies, and the config governing resolution policy and gravity.
type Engine struct {
	Config  physics.PhysicsEngineConfig
	Static  *collision.BVH
	Gravity math32.Vector3
	Bodies  []*Body
}

// NewEngine creates an engine over static, with the default gravity
// (0, -9.8, 0) original_source assumes absent a scene override.
func NewEngine(cfg physics.PhysicsEngineConfig, static *collision.BVH) *Engine {
	return &Engine{
		Config:  cfg,
		Static:  static,
		Gravity: math32.Vector3{X: 0, Y: -9.8, Z: 0},
	}
}

// AddBody registers a dynamic body and returns its index.
func (e *Engine) AddBody(b *Body) int {
	e.Bodies = append(e.Bodies, b)
	return len(e.Bodies) - 1
}

// RemoveBody marks body i destroyed, so the engine stops stepping it,
// and notifies its integrator's destruction observers.
func (e *Engine) RemoveBody(i int) {
	e.Bodies[i].Destroyed = true
	e.Bodies[i].RBI.NotifyDestroyed()
}

// Collide runs the narrow phase for every live body against the
// static BVH plus every other live body's mesh treated as a transient
// obstacle for that one body's query -- skipping self and skipping
// pairs where both sides carry infinite mass, per spec 4.D.
func (e *Engine) Collide() []physics.ContactInfo {

	var all []physics.ContactInfo
	for i, body := range e.Bodies {
		if body.Destroyed {
			continue
		}
		scratch := e.scratchBVHExcluding(i)
		tireLookup := func(tireIndex int) *collision.TireLineInfo {
			tire := body.Tires[tireIndex]
			if tire == nil {
				return nil
			}
			return &collision.TireLineInfo{RBP: body.RBI.RBP, Tire: tire}
		}
		all = append(all, collision.GenerateContacts(scratch, body.RBI.RBP, body.Mesh, e.Config, tireLookup)...)
	}
	return all
}

// scratchBVHExcluding returns the static BVH with every other live,
// finite-mass body's triangles folded in as additional static
// triangles for the purpose of testing body index `exclude` against
// them this sub-step.
func (e *Engine) scratchBVHExcluding(exclude int) *collision.BVH {

	if len(e.Bodies) <= 1 {
		return e.Static
	}
	scratch := collision.NewBVH(e.Static.StaticRadius)
	for _, s := range e.Static.AllTriangles() {
		scratch.AddStaticTriangle(s.Tri)
	}
	for j, other := range e.Bodies {
		if j == exclude || other.Destroyed {
			continue
		}
		if math32.IsInf(other.RBI.RBP.Mass) && math32.IsInf(e.Bodies[exclude].RBI.RBP.Mass) {
			continue
		}
		for _, t := range other.Mesh.Triangles {
			scratch.AddStaticTriangle(t.Tri)
		}
	}
	return scratch
}

// SolveContacts resolves the contact list collide produced for this
// sub-step with 10 sequential-impulse passes when the configured
// policy is SequentialPulses; under any other policy it does nothing.
func (e *Engine) SolveContacts(contacts []physics.ContactInfo, dt float32) {

	if e.Config.ResolveCollisionType != physics.SequentialPulses {
		return
	}
	physics.SolveContacts(contacts, dt, 10)
}

// MoveRigidBodies applies gravity, accumulated forces, and the
// sub-step's resolved impulses to every live body's pose -- the
// move_rigid_bodies step of spec 4.H's physics loop.
func (e *Engine) MoveRigidBodies(dt float32) {

	for _, body := range e.Bodies {
		if body.Destroyed {
			continue
		}
		body.RBI.IntegrateForce(physics.VectorAtPosition{
			Vector:   scaledGravity(e.Gravity, body.RBI.RBP.Mass),
			Position: body.RBI.RBP.AbsCom,
		})
		body.RBI.AdvanceTime(dt, e.Config.MinAcceleration, e.Config.MinVelocity, e.Config.MinAngularVelocity)
	}
}

func scaledGravity(g math32.Vector3, mass float32) math32.Vector3 {
	if math32.IsInf(mass) {
		return math32.Vector3{}
	}
	f := g
	f.MultiplyScalar(mass)
	return f
}

// MoveAdvanceTimes runs every live body's advance-time observers --
// check-point trackers, wheel movables, follower cameras -- once per
// sub-step, after the body's own pose has been advanced.
func (e *Engine) MoveAdvanceTimes(dt float32) {

	for _, body := range e.Bodies {
		if body.Destroyed {
			continue
		}
		for _, obs := range body.Advance {
			obs.AdvanceTime(dt)
		}
	}
}

// Step runs one full physics sub-step: collide, resolve, move.
func (e *Engine) Step(dt float32) {

	contacts := e.Collide()
	e.SolveContacts(contacts, dt)
	e.MoveRigidBodies(dt)
	e.MoveAdvanceTimes(dt)
}
