// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import (
	"github.com/gre-42/mlib/errs"
	"github.com/gre-42/mlib/math32"
)

// Tire is a single wheel's dynamic state: which named engine (if any)
// drives it, its braking/shock-absorber/friction state, its rolling
// angle, angular velocity, radius, and its mounting position in the
// owning body's local frame. Field list follows the engine's own
// Data Model rather than original_source's Tire.hpp/.cpp, whose
// declared constructor (engine, break_force, sKs, sKa,
// shock_absorber, tracking_wheel, position, radius) does not match
// its own .cpp constructor body (engine, break_force, shock_absorber,
// sticky_wheel, angle) -- an inconsistency in the original, resolved
// here by following the engine's own authoritative field list.
type Tire struct {
	EngineName         string
	BreakForce         float32
	ShockAbsorberState ShockAbsorberConstraint
	TrackingWheel      bool
	AngleX             float32 // rolling angle, wrapped to [0, 2*Pi) in VERSION1 mode
	AngleY             float32 // steering angle
	AngularVelocity    float32
	Radius             float32
	PositionLocal      math32.Vector3

	Friction CombinedMagicFormula
}

// NewTire constructs a tire with Radius validated to be positive
// (Radius<=0 would make angular-velocity-to-surface-speed conversion
// meaningless and later divide-by-zero in rolling kinematics).
func NewTire(engineName string, breakForce float32, radius float32, positionLocal math32.Vector3) (*Tire, error) {

	if radius <= 0 {
		return nil, &errs.DomainError{Op: "NewTire", Msg: "radius must be positive"}
	}
	return &Tire{
		EngineName:    engineName,
		BreakForce:    breakForce,
		Radius:        radius,
		PositionLocal: positionLocal,
		Friction: CombinedMagicFormula{
			Longitudinal: NewMagicFormulaArgmax(DefaultMagicFormula()),
			Lateral:      NewMagicFormulaArgmax(DefaultMagicFormula()),
		},
	}, nil
}

// AdvanceAngle integrates the rolling angle by surface speed / radius
// * dt, wrapping to [0, 2*Pi) under PhysicsVersion1 (the VERSION1
// tire-angle wrapping invariant named in the data model).
func (t *Tire) AdvanceAngle(dt float32, physicsType PhysicsType) {

	t.AngleX += t.AngularVelocity * dt
	if physicsType == PhysicsVersion1 {
		t.AngleX = math32.WrapTwoPi(t.AngleX)
	}
}

// SurfaceSpeed returns the tire's rolling surface speed (radius *
// angular velocity), the quantity compared against a contact point's
// tangential ground speed to compute longitudinal slip.
func (t *Tire) SurfaceSpeed() float32 {
	return t.Radius * t.AngularVelocity
}

// EnginePowerTable maps a named engine to its power output in watts
// at the current throttle. It is a standalone lookup: Tire and the
// contact solver do not read it. Ported from original_source's
// Vehicle_Type.hpp engine table concept.
type EnginePowerTable struct {
	powers map[string]float32
}

// NewEnginePowerTable creates an empty table.
func NewEnginePowerTable() *EnginePowerTable {
	return &EnginePowerTable{powers: make(map[string]float32)}
}

// SetPower registers a named engine's power output in watts.
func (t *EnginePowerTable) SetPower(name string, watts float32) {
	t.powers[name] = watts
}

// Power returns the named engine's power, or 0 if unknown (an
// unnamed/absent engine applies no drive torque, as for a free-
// rolling or purely braked wheel).
func (t *EnginePowerTable) Power(name string) float32 {
	return t.powers[name]
}

// TireContactInfo composes a FrictionContactInfo1 (lateral/
// longitudinal slip resolution) with the owning Tire's identity and
// the contact point and normal. Solve and Finalize delegate to the
// friction contact only; no driving torque is applied and the tire's
// angular velocity is not updated.
type TireContactInfo struct {
	Friction     *FrictionContactInfo1
	Tire         *Tire
	ContactPoint math32.Vector3
	ContactNorm  math32.Vector3
}

func (t *TireContactInfo) Solve(dt, relaxation float32) {
	t.Friction.Solve(dt, relaxation)
}

func (t *TireContactInfo) Finalize() {
	t.Friction.Finalize()
}

// DamageSink receives impulse-magnitude notifications from contact
// resolution, letting a caller implement health/damage accounting
// without the physics core depending on any notion of "health".
// Generalized from original_source's Damageable.cpp.
type DamageSink interface {
	OnImpulse(magnitude float32)
}
