// Package advance implements the engine's small family of per-frame
// "advance time" observers that ride along with a rigid body without
// the physics core knowing anything about them: check-point progress
// tracking, a rolling-wheel visual transform, and a fixed local-frame
// relative transform.
package advance

import "github.com/gre-42/mlib/math32"

// AdvanceTime is implemented by anything that wants a callback once
// per physics sub-step, the same role original_source's AdvanceTime
// interface plays for check-points, wheels, and follower cameras.
type AdvanceTime interface {
	AdvanceTime(dt float32)
}

// CheckPointTracker watches a rigid body's position against an
// ordered polyline and fires OnCheckpoint whenever the body's
// position comes within TriggerRadius of the next expected
// checkpoint, in order -- reaching any other checkpoint does not
// advance it. Ported from original_source's Check_Points.cpp/hpp; the
// track geometry itself (e.g. OSM-derived) is out of scope, but the
// tracker over an arbitrary polyline is not.
type CheckPointTracker struct {
	Polyline       []math32.Vector3
	TriggerRadius  float32
	next           int
	OnCheckpoint   func(index int)
	OnLapCompleted func()
}

// NewCheckPointTracker creates a tracker over polyline with the given
// trigger radius.
func NewCheckPointTracker(polyline []math32.Vector3, triggerRadius float32) *CheckPointTracker {
	return &CheckPointTracker{Polyline: polyline, TriggerRadius: triggerRadius}
}

// AdvanceTime checks position against the next expected checkpoint.
func (c *CheckPointTracker) AdvanceTime(position math32.Vector3) {

	if c.next >= len(c.Polyline) {
		return
	}
	d := position
	d.Sub(&c.Polyline[c.next])
	if d.Length() > c.TriggerRadius {
		return
	}
	if c.OnCheckpoint != nil {
		c.OnCheckpoint(c.next)
	}
	c.next++
	if c.next == len(c.Polyline) {
		if c.OnLapCompleted != nil {
			c.OnLapCompleted()
		}
		c.next = 0
	}
}

// Progress returns the fraction of the polyline completed, in [0,1].
func (c *CheckPointTracker) Progress() float32 {

	if len(c.Polyline) == 0 {
		return 0
	}
	return float32(c.next) / float32(len(c.Polyline))
}

// WheelMovable derives a rolling wheel's local transform from its
// owning tire's rolling angle and steering angle: a yaw (steering)
// rotation composed with a roll (rolling angle) rotation, offset by
// the wheel's local mount position. Purely kinematic/visual -- the
// physical tire forces live in the physics package's Tire and
// FrictionContactInfo1/TireContactInfo types.
type WheelMovable struct {
	PositionLocal math32.Vector3
	AngleX        float32 // roll
	AngleY        float32 // steer
	Radius        float32
}

// Transform returns the wheel node's local rigid transform.
func (w *WheelMovable) Transform() *math32.RigidTransform {

	steer := math32.EulerToMatrix(&math32.Vector3{Y: w.AngleY}, math32.OrderYXZ)
	roll := math32.EulerToMatrix(&math32.Vector3{X: w.AngleX}, math32.OrderYXZ)
	var rotation math32.Matrix3
	rotation.MultiplyMatrices(&steer, &roll)

	t, _ := math32.NewRigidTransformFrom(&rotation, &w.PositionLocal)
	return t
}

// RelativeTransformer is the RelativeMovable policy variant that
// applies a fixed local-frame offset to a node relative to a parent
// transform supplied by the caller each frame (e.g. a turret mounted
// on a hull, a camera rigidly attached to a cabin).
type RelativeTransformer struct {
	Offset *math32.RigidTransform
}

// NewRelativeTransformer creates a transformer with a fixed offset.
func NewRelativeTransformer(offset *math32.RigidTransform) *RelativeTransformer {
	return &RelativeTransformer{Offset: offset}
}

// Apply composes the parent transform with this transformer's fixed
// offset, returning the resulting world transform.
func (r *RelativeTransformer) Apply(parent *math32.RigidTransform) *math32.RigidTransform {
	return parent.Compose(r.Offset)
}
