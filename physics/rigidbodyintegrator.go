// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import "github.com/gre-42/mlib/math32"

// DestructionObserver is notified when the scene node owning a
// RigidBodyIntegrator is destroyed. Scene nodes keep a list of these
// (by interface value, not by index into a dense registry -- a
// simplification over original_source's index-based observer table
// that is safe here because Go's garbage collector, unlike the
// original's manual memory management, does not need a cyclic
// reference broken by hand).
type DestructionObserver interface {
	NotifyDestroyed()
}

// RigidBodyIntegrator wraps a RigidBodyPulses with the per-step force
// accumulators original_source keeps on top of the RBP: accumulated
// torque T, the acceleration a and angular momentum L produced by the
// last AdvanceTime call. Where RigidBodyPulses.IntegrateImpulse applies
// an instantaneous velocity change, IntegrateForce only accumulates --
// the actual velocity update happens once per sub-step in AdvanceTime.
type RigidBodyIntegrator struct {
	RBP *RigidBodyPulses

	a math32.Vector3 // linear acceleration accumulated this sub-step
	T math32.Vector3 // torque accumulated this sub-step
	L math32.Vector3 // angular momentum, abs_I * angular_velocity

	destroyed bool
}

// NewRigidBodyIntegrator wraps rbp, ready to accumulate forces for the
// next sub-step.
func NewRigidBodyIntegrator(rbp *RigidBodyPulses) *RigidBodyIntegrator {
	return &RigidBodyIntegrator{RBP: rbp}
}

// IntegrateForce accumulates a force/torque pair (vector_at_position)
// into this step's linear acceleration and torque, without touching
// velocity -- the counterpart to IntegrateImpulse, which changes
// velocity immediately. A force applied through the body's absolute
// center of mass contributes no torque.
func (ri *RigidBodyIntegrator) IntegrateForce(f VectorAtPosition) {

	if ri.destroyed || math32.IsInf(ri.RBP.Mass) {
		return
	}
	da := f.Vector
	da.MultiplyScalar(1 / ri.RBP.Mass)
	ri.a.Add(&da)

	r := f.Position
	r.Sub(&ri.RBP.AbsCom)
	var torque math32.Vector3
	torque.CrossVectors(&r, &f.Vector)
	ri.T.Add(&torque)
}

// AdvanceTime folds the accumulated acceleration and torque into the
// wrapped RBP's velocity and angular velocity -- clamped against the
// minimum thresholds original_source applies so residual numerical
// noise does not keep a body "awake" forever -- advances pose by dt,
// and clears the accumulators for the next sub-step.
func (ri *RigidBodyIntegrator) AdvanceTime(dt, minA, minV, minW float32) {

	if ri.destroyed || math32.IsInf(ri.RBP.Mass) {
		ri.a = math32.Vector3{}
		ri.T = math32.Vector3{}
		return
	}

	if ri.a.Length() >= minA {
		dv := ri.a
		dv.MultiplyScalar(dt)
		ri.RBP.Velocity.Add(&dv)
	}
	if ri.RBP.Velocity.Length() < minV {
		ri.RBP.Velocity = math32.Vector3{}
	}

	ri.L = ri.RBP.Dot1dAbsI(ri.RBP.AngularVel)
	dT := ri.T
	dT.MultiplyScalar(dt)
	ri.L.Add(&dT)
	ri.RBP.AngularVel = ri.RBP.SolveAbsI(ri.L)
	if ri.RBP.AngularVel.Length() < minW {
		ri.RBP.AngularVel = math32.Vector3{}
	}

	ri.RBP.AdvanceTime(dt)

	ri.a = math32.Vector3{}
	ri.T = math32.Vector3{}
}

// NotifyDestroyed satisfies DestructionObserver: once the owning scene
// node is gone, further IntegrateForce/AdvanceTime calls on this
// integrator become no-ops instead of mutating an orphaned body.
func (ri *RigidBodyIntegrator) NotifyDestroyed() {
	ri.destroyed = true
}

// Destroyed reports whether NotifyDestroyed has fired.
func (ri *RigidBodyIntegrator) Destroyed() bool {
	return ri.destroyed
}
