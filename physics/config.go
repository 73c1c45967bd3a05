// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

// PhysicsType selects the overall rigid-body integration scheme.
// VERSION1 is the only scheme this engine implements; the field
// exists so scene files can name it explicitly and so a future scheme
// can be added without changing the config's shape.
type PhysicsType int

const (
	PhysicsVersion1 PhysicsType = iota
)

// ResolveCollisionType selects how contacts are resolved into
// velocity changes.
type ResolveCollisionType int

const (
	// Penalty applies a spring-like force proportional to penetration
	// depth, integrated directly into velocity each sub-step.
	Penalty ResolveCollisionType = iota
	// SequentialPulses runs a fixed number of Gauss-Seidel sequential-
	// impulse iterations over the step's ContactInfo set.
	SequentialPulses
)

// InterpPoint is one (x, y) knot of a piecewise-linear interpolation.
type InterpPoint struct {
	X, Y float32
}

// ClampedInterp is a piecewise-linear function over sorted knots,
// clamped to the first/last knot's Y outside their X range (the
// OutOfRangeBehavior::CLAMP original_source uses for outness_fac_interp).
type ClampedInterp struct {
	Points []InterpPoint
}

// Eval evaluates the interpolation at x.
func (c ClampedInterp) Eval(x float32) float32 {

	if len(c.Points) == 0 {
		return 0
	}
	if x <= c.Points[0].X {
		return c.Points[0].Y
	}
	last := c.Points[len(c.Points)-1]
	if x >= last.X {
		return last.Y
	}
	for i := 0; i < len(c.Points)-1; i++ {
		a, b := c.Points[i], c.Points[i+1]
		if x >= a.X && x <= b.X {
			t := (x - a.X) / (b.X - a.X)
			return a.Y + t*(b.Y-a.Y)
		}
	}
	return last.Y
}

// PhysicsEngineConfig collects every tunable of the physics step:
// substepping, collision tolerances, friction/stiction defaults, and
// the resolver selection. Defaults match original_source's own
// PhysicsEngineConfig exactly (including the unusual default of
// disabled damping/friction, intended to be overridden per-scene).
type PhysicsEngineConfig struct {
	Dt                   float32
	MaxResidualTime      float32
	PrintResidualTime    bool
	Sat                  bool
	CollideOnlyNormals   bool
	MinAcceleration      float32
	MinVelocity          float32
	MinAngularVelocity   float32
	Damping              float32
	Friction             float32
	OverlapTolerance     float32
	HandBreakVelocity    float32
	StictionCoefficient  float32
	FrictionCoefficient  float32
	Alpha0               float32
	AvoidBurnout         bool
	WheelPenetrationDepth float32
	StaticRadius         float32
	OutnessFacInterp     ClampedInterp
	PhysicsType          PhysicsType
	ResolveCollisionType ResolveCollisionType
	LambdaMin            float32
	ContactBeta          float32
	ContactBeta2         float32
	Bvh                  bool
	Oversampling         int
}

// DefaultPhysicsEngineConfig returns the engine's stock tuning.
func DefaultPhysicsEngineConfig() PhysicsEngineConfig {

	return PhysicsEngineConfig{
		Dt:                    0.01667,
		MaxResidualTime:       0.5,
		PrintResidualTime:     false,
		Sat:                   true,
		CollideOnlyNormals:    false,
		MinAcceleration:       2,
		MinVelocity:           1e-1,
		MinAngularVelocity:    1e-2,
		Damping:               0,
		Friction:              0,
		OverlapTolerance:      1.2,
		HandBreakVelocity:     0.5,
		StictionCoefficient:   2,
		FrictionCoefficient:   1.6,
		Alpha0:                0.1,
		AvoidBurnout:          true,
		WheelPenetrationDepth: 0.25,
		StaticRadius:          200,
		OutnessFacInterp: ClampedInterp{Points: []InterpPoint{
			{X: -0.5, Y: 1},
			{X: 2000, Y: 0},
		}},
		PhysicsType:          PhysicsVersion1,
		ResolveCollisionType: Penalty,
		LambdaMin:            -10,
		ContactBeta:          0.5,
		ContactBeta2:         0.2,
		Bvh:                  true,
		Oversampling:         20,
	}
}
