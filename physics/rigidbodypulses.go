// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import (
	"github.com/gre-42/mlib/errs"
	"github.com/gre-42/mlib/math32"
)

// VectorAtPosition is a vector (an impulse, a force) applied at a
// world-space position, the input to impulse integration and the
// effective-mass computation used by the sequential-impulse resolver.
type VectorAtPosition struct {
	Vector   math32.Vector3
	Position math32.Vector3
}

// RigidBodyPulses is the minimal state needed to integrate a rigid
// body's linear and angular velocity and apply impulses to it: mass,
// local inertia tensor, local center of mass, velocity, angular
// velocity, orientation, and the absolute (world) center of mass.
// Mass of +Inf marks an immovable body (a static wall, the ground):
// integrate_impulse and effective_mass treat it as having zero
// inverse mass and zero inverse inertia.
type RigidBodyPulses struct {
	Mass           float32
	InertiaLocal   math32.Matrix3
	ComLocal       math32.Vector3
	Velocity       math32.Vector3
	AngularVel     math32.Vector3
	Rotation       math32.Matrix3
	AbsCom         math32.Vector3
	IIsDiagonal    bool

	absInertia    math32.Matrix3
	absInertiaInv math32.Matrix3
}

// NewRigidBodyPulses constructs a rigid body pulse state. Position is
// the body's world-space origin; the absolute center of mass is
// derived from it as position + rotation*com.
func NewRigidBodyPulses(mass float32, inertiaLocal math32.Matrix3, comLocal, v, w, position math32.Vector3, rotation math32.Matrix3, iIsDiagonal bool) *RigidBodyPulses {

	rbp := &RigidBodyPulses{
		Mass:         mass,
		InertiaLocal: inertiaLocal,
		ComLocal:     comLocal,
		Velocity:     v,
		AngularVel:   w,
		IIsDiagonal:  iIsDiagonal,
	}
	rbp.SetPose(rotation, position)
	return rbp
}

// SetPose sets rotation and world-space position (recomputing the
// absolute center of mass and world inertia tensor from them).
func (rbp *RigidBodyPulses) SetPose(rotation math32.Matrix3, position math32.Vector3) {

	rbp.Rotation = rotation
	abs := rbp.ComLocal
	abs.ApplyMatrix3(&rbp.Rotation)
	abs.Add(&position)
	rbp.AbsCom = abs
	rbp.updateAbsInertiaAndInverse()
}

// Position returns the body's world-space origin, derived from the
// absolute center of mass and the local center-of-mass offset.
func (rbp *RigidBodyPulses) Position() math32.Vector3 {

	offset := rbp.ComLocal
	offset.ApplyMatrix3(&rbp.Rotation)
	p := rbp.AbsCom
	p.Sub(&offset)
	return p
}

// Pose returns the body's current world-space rigid transform,
// satisfying scene.AbsolutePoseSource so a scene node can read its
// pose directly from the rigid body driving it.
func (rbp *RigidBodyPulses) Pose() math32.RigidTransform {
	return math32.RigidTransform{Rotation: rbp.Rotation, Translation: rbp.Position()}
}

// AbsZ returns the body's world-space z axis (third column of Rotation).
func (rbp *RigidBodyPulses) AbsZ() math32.Vector3 {
	return math32.Vector3{X: rbp.Rotation[6], Y: rbp.Rotation[7], Z: rbp.Rotation[8]}
}

// AbsI returns the world-space (rotated) inertia tensor.
func (rbp *RigidBodyPulses) AbsI() *math32.Matrix3 {
	return &rbp.absInertia
}

// AbsIInv returns the inverse of the world-space inertia tensor. Zero
// for an immovable (infinite mass) body.
func (rbp *RigidBodyPulses) AbsIInv() *math32.Matrix3 {
	return &rbp.absInertiaInv
}

func (rbp *RigidBodyPulses) updateAbsInertiaAndInverse() {

	if math32.IsInf(rbp.Mass) {
		rbp.absInertia.Zero()
		rbp.absInertiaInv.Zero()
		return
	}

	if rbp.IIsDiagonal {
		// R * diag(I) * R^T simplifies to a full symmetric matrix still,
		// but the diagonal-local case is common enough (boxes, default
		// unit inertia) that we keep the general path: it is correct for
		// both cases, the flag only documents the local tensor's shape.
	}

	var rt math32.Matrix3
	rt.Copy(&rbp.Rotation).Transpose()
	var tmp math32.Matrix3
	tmp.MultiplyMatrices(&rbp.Rotation, &rbp.InertiaLocal)
	rbp.absInertia.MultiplyMatrices(&tmp, &rt)

	if err := rbp.absInertiaInv.InvertMatrix3(&rbp.absInertia); err != nil {
		rbp.absInertiaInv.Zero()
	}
}

// VelocityAtPosition returns the world-space velocity of the material
// point of the body instantaneously located at position: v + w x (position - abs_com).
func (rbp *RigidBodyPulses) VelocityAtPosition(position math32.Vector3) math32.Vector3 {

	r := position
	r.Sub(&rbp.AbsCom)
	var wr math32.Vector3
	wr.CrossVectors(&rbp.AngularVel, &r)
	result := rbp.Velocity
	result.Add(&wr)
	return result
}

// SolveAbsI returns abs_I_inv * x, the angular velocity increment
// produced by applying angular impulse x about the world-space axes.
func (rbp *RigidBodyPulses) SolveAbsI(x math32.Vector3) math32.Vector3 {

	r := x
	r.ApplyMatrix3(&rbp.absInertiaInv)
	return r
}

// Dot1dAbsI returns abs_I * x.
func (rbp *RigidBodyPulses) Dot1dAbsI(x math32.Vector3) math32.Vector3 {

	r := x
	r.ApplyMatrix3(&rbp.absInertia)
	return r
}

// TransformToWorldCoordinates transforms a body-local point (e.g. a
// wheel's local mounting position) into world coordinates.
func (rbp *RigidBodyPulses) TransformToWorldCoordinates(v math32.Vector3) math32.Vector3 {

	r := v
	r.ApplyMatrix3(&rbp.Rotation)
	r.Add(&rbp.AbsCom)
	return r
}

// IntegrateGravity applies a constant acceleration (gravity) over dt.
func (rbp *RigidBodyPulses) IntegrateGravity(g math32.Vector3, dt float32) {

	if math32.IsInf(rbp.Mass) {
		return
	}
	dv := g
	dv.MultiplyScalar(dt)
	rbp.Velocity.Add(&dv)
}

// IntegrateImpulse applies an impulse J at a world-space position,
// changing linear velocity by J/mass and angular velocity by
// abs_I_inv * ((J.Position - abs_com) x J.Vector), plus an optional
// extra angular-velocity term along the impulse direction (used by
// tire contacts to apply spin-inducing friction impulses that are not
// purely positional torques).
func (rbp *RigidBodyPulses) IntegrateImpulse(j VectorAtPosition, extraW float32) {

	if math32.IsInf(rbp.Mass) {
		return
	}
	dv := j.Vector
	dv.MultiplyScalar(1 / rbp.Mass)
	rbp.Velocity.Add(&dv)

	r := j.Position
	r.Sub(&rbp.AbsCom)
	var torque math32.Vector3
	torque.CrossVectors(&r, &j.Vector)
	dw := rbp.SolveAbsI(torque)
	rbp.AngularVel.Add(&dw)

	if extraW != 0 {
		dir := j.Vector
		if dir.LengthSq() > 1e-12 {
			dir.Normalize()
			dir.MultiplyScalar(extraW)
			rbp.AngularVel.Add(&dir)
		}
	}
}

// Energy returns the body's kinetic energy (translational + rotational).
func (rbp *RigidBodyPulses) Energy() float32 {

	if math32.IsInf(rbp.Mass) {
		return 0
	}
	translational := 0.5 * rbp.Mass * rbp.Velocity.LengthSq()
	iw := rbp.Dot1dAbsI(rbp.AngularVel)
	rotational := 0.5 * rbp.AngularVel.Dot(&iw)
	return translational + rotational
}

// EffectiveMass returns the effective mass the body presents to an
// impulse applied along vp.Vector (treated as a unit direction) at
// vp.Position: 1 / (1/mass + n . (I_inv (r x n)) x r).
func (rbp *RigidBodyPulses) EffectiveMass(vp VectorAtPosition) float32 {

	if math32.IsInf(rbp.Mass) {
		return math32.Infinity
	}
	n := vp.Vector
	if n.LengthSq() > 1e-12 {
		n.Normalize()
	}
	r := vp.Position
	r.Sub(&rbp.AbsCom)

	var rn math32.Vector3
	rn.CrossVectors(&r, &n)
	iRn := rbp.SolveAbsI(rn)
	var angularTerm math32.Vector3
	angularTerm.CrossVectors(&iRn, &r)

	denom := 1/rbp.Mass + n.Dot(&angularTerm)
	if denom <= 0 {
		return math32.Infinity
	}
	return 1 / denom
}

// AdvanceTime integrates position and orientation by dt using
// semi-implicit Euler: the absolute center of mass advances by
// velocity*dt, and the orientation is rotated by the incremental
// rotation Rodrigues(angular_velocity*dt), applied on the left so the
// increment is expressed in world axes.
func (rbp *RigidBodyPulses) AdvanceTime(dt float32) {

	dPos := rbp.Velocity
	dPos.MultiplyScalar(dt)
	rbp.AbsCom.Add(&dPos)

	dTheta := rbp.AngularVel
	dTheta.MultiplyScalar(dt)
	incremental := math32.Rodrigues(&dTheta)

	var newRotation math32.Matrix3
	newRotation.MultiplyMatrices(&incremental, &rbp.Rotation)
	rbp.Rotation = newRotation

	rbp.updateAbsInertiaAndInverse()
}

// NewOrthonormalRotation validates a candidate rotation matrix before
// it is installed via SetPose, returning a DomainError if it has
// drifted beyond the orthonormality tolerance (e.g. after repeated
// float32 incremental updates without periodic re-orthonormalization).
func NewOrthonormalRotation(m math32.Matrix3) (math32.Matrix3, error) {

	if !math32.IsOrthonormal(&m, math32.OrthonormalTolerance) {
		return m, &errs.DomainError{Op: "NewOrthonormalRotation", Msg: "rotation matrix is not orthonormal"}
	}
	return m, nil
}
