// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import "github.com/gre-42/mlib/math32"

// NormalImpulse accumulates the total impulse applied along a single
// contact normal across a physics step's sequential-impulse
// iterations, so each iteration can clamp against the running total
// instead of a per-iteration delta.
type NormalImpulse struct {
	Normal      math32.Vector3
	LambdaTotal float32
}

// PlaneInequalityConstraint is a one-sided (non-penetration) contact
// constraint: a plane through a point on body(s) with unit normal,
// active only while the bodies overlap it, with bias proportional to
// penetration depth beyond Slop. Beta has no default of its own: the
// narrow phase sets it from PhysicsEngineConfig.ContactBeta (0.5 in
// the default config), which is configured separately from
// ContactBeta2 rather than unified with it.
type PlaneInequalityConstraint struct {
	Impulse      NormalImpulse
	Intercept    float32
	B            float32
	Slop         float32
	AlwaysActive bool
	Beta         float32
}

// C returns the signed plane function at x: negative when x is on
// the normal's side, i.e. C < 0 means no penetration.
func (pc *PlaneInequalityConstraint) C(x math32.Vector3) float32 {
	return -(pc.Impulse.Normal.Dot(&x) + pc.Intercept)
}

// Overlap is an alias for C in original_source, kept distinct here
// for readability at call sites that talk about penetration depth.
func (pc *PlaneInequalityConstraint) Overlap(x math32.Vector3) float32 {
	return pc.C(x)
}

// Active returns whether the constraint currently participates in
// solving: always, or only while penetrating.
func (pc *PlaneInequalityConstraint) Active(x math32.Vector3) bool {
	return pc.AlwaysActive || pc.Overlap(x) > 0
}

// Bias returns the Baumgarte bias term's overlap input, clamped to
// non-negative and reduced by Slop.
func (pc *PlaneInequalityConstraint) Bias(x math32.Vector3) float32 {
	b := pc.Overlap(x) - pc.Slop
	if b < 0 {
		return 0
	}
	return b
}

// V returns the constraint's target relative velocity at p: the
// user-supplied baseline B plus a Baumgarte correction proportional
// to penetration depth over dt.
func (pc *PlaneInequalityConstraint) V(p math32.Vector3, dt float32) float32 {
	return pc.B + pc.Beta/dt*pc.Bias(p)
}

// ShockAbsorberConstraint is a one-body spring-damper constraint used
// by tires: Ks is the spring constant, Ka the damping constant,
// Distance the current compression relative to rest length.
type ShockAbsorberConstraint struct {
	Impulse  NormalImpulse
	Distance float32
	Ks       float32
	Ka       float32
}

// BoundedLambda clamps a proposed impulse increment so the running
// total stays within [lambdaMin, lambdaMax], returning the
// (possibly reduced) increment actually applied.
func BoundedLambda(impulse *NormalImpulse, lambda, lambdaMin, lambdaMax float32) float32 {

	total := impulse.LambdaTotal + lambda
	if total < lambdaMin {
		total = lambdaMin
	}
	if total > lambdaMax {
		total = lambdaMax
	}
	delta := total - impulse.LambdaTotal
	impulse.LambdaTotal = total
	return delta
}

// ContactInfo is one entry in a physics step's sequential-impulse
// solve list: a single iteration of Gauss-Seidel relaxation against
// whatever state the concrete contact closes over.
type ContactInfo interface {
	Solve(dt, relaxation float32)
	Finalize()
}

// NormalContactInfo1 is a one-body non-penetration contact against an
// immovable plane (e.g. static level geometry), solved by applying an
// impulse along the plane normal that drives the body's velocity at p
// toward the constraint's target V.
type NormalContactInfo1 struct {
	RBP       *RigidBodyPulses
	PC        PlaneInequalityConstraint
	P         math32.Vector3
	LambdaMin float32
	LambdaMax float32
}

func (n *NormalContactInfo1) Solve(dt, relaxation float32) {

	if !n.PC.Active(n.P) {
		return
	}
	vRel := n.RBP.VelocityAtPosition(n.P)
	vn := vRel.Dot(&n.PC.Impulse.Normal)
	target := n.PC.V(n.P, dt)
	vp := VectorAtPosition{Vector: n.PC.Impulse.Normal, Position: n.P}
	effMass := n.RBP.EffectiveMass(vp)
	lambda := -(vn - target) * effMass * relaxation
	lambda = BoundedLambda(&n.PC.Impulse, lambda, n.LambdaMin, n.LambdaMax)

	impulseVec := n.PC.Impulse.Normal
	impulseVec.MultiplyScalar(lambda)
	n.RBP.IntegrateImpulse(VectorAtPosition{Vector: impulseVec, Position: n.P}, 0)
}

func (n *NormalContactInfo1) Finalize() {}

// ShockAbsorberContactInfo1 is a one-body spring-damper contact,
// composed into tire resolution: it applies an impulse proportional
// to spring compression (Ks*Distance) plus a damping term (Ka times
// closing velocity), along the constraint's normal.
type ShockAbsorberContactInfo1 struct {
	RBP       *RigidBodyPulses
	SC        ShockAbsorberConstraint
	P         math32.Vector3
	LambdaMin float32
	LambdaMax float32
}

func (s *ShockAbsorberContactInfo1) Solve(dt, relaxation float32) {

	vRel := s.RBP.VelocityAtPosition(s.P)
	vn := vRel.Dot(&s.SC.Impulse.Normal)

	force := s.SC.Ks*s.SC.Distance - s.SC.Ka*vn
	lambda := force * dt * relaxation
	lambda = BoundedLambda(&s.SC.Impulse, lambda, s.LambdaMin, s.LambdaMax)

	impulseVec := s.SC.Impulse.Normal
	impulseVec.MultiplyScalar(lambda)
	s.RBP.IntegrateImpulse(VectorAtPosition{Vector: impulseVec, Position: s.P}, 0)
}

func (s *ShockAbsorberContactInfo1) Finalize() {}

// FrictionContactInfo1 is a one-body tangential (friction) contact,
// bounded by a stiction cone (max_impulse_stiction) until it has
// applied any impulse, and by a kinetic-friction bound
// (max_impulse_friction) from then on; both bounds are proportional to
// the associated normal impulse's accumulated total. An optional clamping
// direction restricts the impulse component along one axis (used by
// tire contacts to bound lateral vs. longitudinal slip separately),
// and ExtraW feeds an additional spin-inducing angular term (the tire
// "drives itself" via engine torque) into IntegrateImpulse.
type FrictionContactInfo1 struct {
	RBP                *RigidBodyPulses
	NormalImpulse      *NormalImpulse
	P                  math32.Vector3
	StictionCoefficient float32
	FrictionCoefficient float32
	B                   math32.Vector3
	LambdaTotal         math32.Vector3

	ClampingDirection math32.Vector3
	HasClamping       bool
	ClampingMin       float32
	ClampingMax       float32

	ExtraStiction float32
	ExtraFriction float32
	ExtraW        float32
}

// MaxImpulseStiction returns the maximum tangential impulse this
// contact may apply before it is considered to be sliding.
func (f *FrictionContactInfo1) MaxImpulseStiction() float32 {
	return f.StictionCoefficient*math32.Abs(f.NormalImpulse.LambdaTotal) + f.ExtraStiction
}

// MaxImpulseFriction returns the kinetic-friction impulse bound while
// sliding.
func (f *FrictionContactInfo1) MaxImpulseFriction() float32 {
	return f.FrictionCoefficient*math32.Abs(f.NormalImpulse.LambdaTotal) + f.ExtraFriction
}

func (f *FrictionContactInfo1) Solve(dt, relaxation float32) {

	n := f.NormalImpulse.Normal
	vRel := f.RBP.VelocityAtPosition(f.P)
	vn := vRel.Dot(&n)
	normalPart := n
	normalPart.MultiplyScalar(vn)
	tangent := vRel
	tangent.Sub(&normalPart)
	tangent.Sub(&f.B)

	vp := VectorAtPosition{Vector: tangent, Position: f.P}
	effMass := f.RBP.EffectiveMass(vp)

	speed := tangent.Length()
	bound := f.MaxImpulseStiction()
	if f.LambdaTotal.Length() > 0 {
		bound = f.MaxImpulseFriction()
	}

	if speed < 1e-9 {
		return
	}
	dir := tangent
	dir.Normalize()
	lambdaScalar := -speed * effMass * relaxation
	if math32.Abs(lambdaScalar) > bound {
		if lambdaScalar < 0 {
			lambdaScalar = -bound
		} else {
			lambdaScalar = bound
		}
	}

	if f.HasClamping {
		proj := dir.Dot(&f.ClampingDirection)
		clamped := proj * lambdaScalar
		if clamped < f.ClampingMin {
			lambdaScalar = f.ClampingMin / proj
		} else if clamped > f.ClampingMax {
			lambdaScalar = f.ClampingMax / proj
		}
	}

	impulseVec := dir
	impulseVec.MultiplyScalar(lambdaScalar)
	f.LambdaTotal.Add(&impulseVec)
	f.RBP.IntegrateImpulse(VectorAtPosition{Vector: impulseVec, Position: f.P}, f.ExtraW)
}

func (f *FrictionContactInfo1) Finalize() {}

// SolveContacts runs iterations Gauss-Seidel relaxation passes over
// cis, applying each contact's impulse in turn so later contacts see
// the velocity changes of earlier ones within the same pass -- the
// sequential-impulse resolver's defining property -- then finalizes
// every contact once.
func SolveContacts(cis []ContactInfo, dt float32, iterations int) {

	for i := 0; i < iterations; i++ {
		relaxation := float32(1)
		if i == 0 {
			relaxation = 1
		}
		for _, ci := range cis {
			ci.Solve(dt, relaxation)
		}
	}
	for _, ci := range cis {
		ci.Finalize()
	}
}
