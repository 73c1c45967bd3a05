package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRigidTransformInverseComposeIsIdentity(t *testing.T) {

	axis := NewVector3(0, 1, 0).Normalize()
	var q Quaternion
	q.SetFromAxisAngle(axis, 0.7)
	var rot Matrix3
	rot.MakeRotationFromQuaternion(&q)
	translation := NewVector3(1, 2, 3)

	tr, err := NewRigidTransformFrom(&rot, translation)
	assert.NoError(t, err)

	inv := tr.Inverse()
	id := tr.Compose(inv)

	p := NewVector3(5, -1, 2)
	got := id.TransformPoint(p)
	assert.InDelta(t, p.X, got.X, 1e-4)
	assert.InDelta(t, p.Y, got.Y, 1e-4)
	assert.InDelta(t, p.Z, got.Z, 1e-4)
}

func TestNewRigidTransformFromRejectsNonOrthonormal(t *testing.T) {

	var bad Matrix3
	bad.Set(
		2, 0, 0,
		0, 1, 0,
		0, 0, 1,
	)
	_, err := NewRigidTransformFrom(&bad, NewVector3(0, 0, 0))
	assert.Error(t, err)
	var domainErr *DomainError
	assert.ErrorAs(t, err, &domainErr)
}

func TestWrapTwoPi(t *testing.T) {

	cases := []struct {
		in, want float32
	}{
		{0, 0},
		{Pi, Pi},
		{2 * Pi, 0},
		{-Pi / 2, 3 * Pi / 2},
		{5 * Pi, Pi},
	}
	for _, c := range cases {
		got := WrapTwoPi(c.in)
		assert.InDelta(t, c.want, got, 1e-4)
		assert.True(t, got >= 0 && got < 2*Pi)
	}
}

func TestRodriguesIdentityForZeroVector(t *testing.T) {

	zero := NewVector3(0, 0, 0)
	m := Rodrigues(zero)
	var id Matrix3
	id.Identity()
	assert.Equal(t, id, m)
}

func TestEulerToMatrixOrthonormal(t *testing.T) {

	angles := NewVector3(0.3, 0.6, -0.2)
	for _, order := range []TaitBryanOrder{OrderYXZ, OrderXYZ, OrderZYX} {
		m := EulerToMatrix(angles, order)
		assert.True(t, IsOrthonormal(&m, 1e-4))
	}
}
