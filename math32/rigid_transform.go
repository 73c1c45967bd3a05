// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "fmt"

// DomainError is returned by operations whose preconditions on their
// inputs were violated, e.g. constructing a rotation from a matrix
// that is not orthonormal to tolerance.
type DomainError struct {
	Op  string
	Msg string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("math32: %s: %s", e.Op, e.Msg)
}

// OrthonormalTolerance is the maximum allowed deviation of a rotation
// matrix's columns from orthonormality (section 3: Vector/Matrix).
const OrthonormalTolerance = 1e-6

// RigidTransform is a (rotation, translation) pair describing a rigid
// body transform, with an affine 4x4 matrix cached on demand.
type RigidTransform struct {
	Rotation    Matrix3
	Translation Vector3

	affine     Matrix4
	affineDone bool
}

// NewRigidTransform creates an identity rigid transform.
func NewRigidTransform() *RigidTransform {

	t := new(RigidTransform)
	t.Rotation.Identity()
	return t
}

// NewRigidTransformFrom creates a rigid transform from an explicit
// rotation and translation. Returns a DomainError if rotation is not
// orthonormal to OrthonormalTolerance.
func NewRigidTransformFrom(rotation *Matrix3, translation *Vector3) (*RigidTransform, error) {

	if !IsOrthonormal(rotation, OrthonormalTolerance) {
		return nil, &DomainError{Op: "NewRigidTransformFrom", Msg: "rotation matrix is not orthonormal"}
	}
	t := new(RigidTransform)
	t.Rotation = *rotation
	t.Translation = *translation
	return t, nil
}

// IsOrthonormal returns whether the columns of m are pairwise
// orthogonal and unit length within tolerance.
func IsOrthonormal(m *Matrix3, tolerance float32) bool {

	col := func(i int) Vector3 {
		return Vector3{m[i*3], m[i*3+1], m[i*3+2]}
	}
	c0, c1, c2 := col(0), col(1), col(2)
	checks := []float32{
		c0.Dot(&c0) - 1,
		c1.Dot(&c1) - 1,
		c2.Dot(&c2) - 1,
		c0.Dot(&c1),
		c0.Dot(&c2),
		c1.Dot(&c2),
	}
	for _, v := range checks {
		if Abs(v) > tolerance {
			return false
		}
	}
	return true
}

// Compose composes this transform with other as this · other: applying
// the result to a point first applies other, then this.
func (t *RigidTransform) Compose(other *RigidTransform) *RigidTransform {

	var result RigidTransform
	result.Rotation.MultiplyMatrices(&t.Rotation, &other.Rotation)
	result.Translation = other.Translation
	result.Translation.ApplyMatrix3(&t.Rotation)
	result.Translation.Add(&t.Translation)
	return &result
}

// Inverse returns the inverse of a rigid transform: transpose of the
// rotation and the negated, rotated translation.
func (t *RigidTransform) Inverse() *RigidTransform {

	var result RigidTransform
	result.Rotation = t.Rotation
	result.Rotation.Transpose()
	result.Translation = t.Translation
	result.Translation.ApplyMatrix3(&result.Rotation).Negate()
	return &result
}

// TransformPoint applies this transform to a point (rotation + translation).
func (t *RigidTransform) TransformPoint(p *Vector3) Vector3 {

	r := *p
	r.ApplyMatrix3(&t.Rotation)
	r.Add(&t.Translation)
	return r
}

// TransformDirection applies only the rotational part of this transform.
func (t *RigidTransform) TransformDirection(v *Vector3) Vector3 {

	r := *v
	r.ApplyMatrix3(&t.Rotation)
	return r
}

// Affine returns the cached 4x4 affine matrix equivalent to this
// transform, rebuilding it only on the first call after
// InvalidateAffine; direct changes to Rotation or Translation are not
// detected on their own.
func (t *RigidTransform) Affine() *Matrix4 {

	if !t.affineDone {
		t.affine.Set(
			t.Rotation[0], t.Rotation[3], t.Rotation[6], t.Translation.X,
			t.Rotation[1], t.Rotation[4], t.Rotation[7], t.Translation.Y,
			t.Rotation[2], t.Rotation[5], t.Rotation[8], t.Translation.Z,
			0, 0, 0, 1,
		)
		t.affineDone = true
	}
	return &t.affine
}

// InvalidateAffine marks the cached affine matrix stale. Must be
// called whenever Rotation or Translation is mutated directly.
func (t *RigidTransform) InvalidateAffine() {
	t.affineDone = false
}

// Rodrigues returns the rotation matrix corresponding to the rotation
// vector w (axis = direction of w, angle = |w|), via the Rodrigues
// rotation formula. Used by the rigid-body integrator to turn an
// angular-velocity*dt increment into an incremental rotation.
func Rodrigues(w *Vector3) Matrix3 {

	theta := w.Length()
	var m Matrix3
	if theta < 1e-12 {
		m.Identity()
		return m
	}
	axis := w.Clone().MultiplyScalar(1 / theta)
	var q Quaternion
	q.SetFromAxisAngle(axis, theta)
	m.MakeRotationFromQuaternion(&q)
	return m
}

// TaitBryanOrder enumerates the axis application order used by
// EulerToMatrix. The engine's default loader
// convention is (Y, X, Z) (yaw, pitch, roll), but BVH/OBJ loaders may
// specify a different order, hence this is a parameter rather than a
// constant (section 4.A: "configurable per loader").
type TaitBryanOrder int

const (
	OrderYXZ TaitBryanOrder = iota
	OrderXYZ
	OrderZYX
)

// EulerToMatrix converts tait-bryan angles (radians) to a rotation
// matrix using the given axis order.
func EulerToMatrix(angles *Vector3, order TaitBryanOrder) Matrix3 {

	rx := axisRotation(Vector3{1, 0, 0}, angles.X)
	ry := axisRotation(Vector3{0, 1, 0}, angles.Y)
	rz := axisRotation(Vector3{0, 0, 1}, angles.Z)

	var m Matrix3
	switch order {
	case OrderYXZ:
		var tmp Matrix3
		tmp.MultiplyMatrices(&ry, &rx)
		m.MultiplyMatrices(&tmp, &rz)
	case OrderXYZ:
		var tmp Matrix3
		tmp.MultiplyMatrices(&rx, &ry)
		m.MultiplyMatrices(&tmp, &rz)
	case OrderZYX:
		var tmp Matrix3
		tmp.MultiplyMatrices(&rz, &ry)
		m.MultiplyMatrices(&tmp, &rx)
	}
	return m
}

func axisRotation(axis Vector3, angle float32) Matrix3 {

	var q Quaternion
	q.SetFromAxisAngle(&axis, angle)
	var m Matrix3
	m.MakeRotationFromQuaternion(&q)
	return m
}

// WrapTwoPi wraps an angle (radians) into [0, 2*Pi), matching the
// VERSION1 tire angle_x wrapping invariant (section 3).
func WrapTwoPi(angle float32) float32 {

	const twoPi = 2 * Pi
	a := Mod(angle, twoPi)
	if a < 0 {
		a += twoPi
	}
	return a
}
