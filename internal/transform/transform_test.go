package transform

import (
	gomath "math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/rackmodel/pkg/math"
)

func TestZeroValueActsAsIdentity(t *testing.T) {
	var tr Transform
	assert.True(t, tr.IsIdentity())
	assert.Equal(t, math.Identity(), tr.Matrix())
}

func TestComposeOrder(t *testing.T) {
	a := FromMatrix(math.Translate(1, 0, 0))
	b := FromMatrix(math.RotateY(gomath.Pi / 2))

	// b first, then a
	got := a.Compose(b).Apply(math.Vec3{X: 1})
	assert.True(t, got.ApproxEqual(math.Vec3{X: 1, Z: -1}, 1e-5), "got %v", got)

	// Then is the reverse reading of Compose.
	assert.Equal(t, a.Compose(b).Matrix(), b.Then(a).Matrix())
}

func TestComposeMatrixProduct(t *testing.T) {
	a := New(math.Vec3{X: 1, Y: 2, Z: 3}, math.QuatFromDegrees(0, 30), math.Vec3{X: 2, Y: 2, Z: 2}, math.QuatIdentity())
	b := New(math.Vec3{Z: -1}, math.QuatFromDegrees(1, 45), math.Vec3{X: 1, Y: 0.5, Z: 1}, math.QuatFromDegrees(2, 10))

	want := mgl32.Mat4(a.Matrix()).Mul4(mgl32.Mat4(b.Matrix()))
	assert.True(t, a.Compose(b).Matrix().ApproxEqual(math.Mat4(want), 1e-5))
}

func TestNewIsTRSR(t *testing.T) {
	tr := New(math.Vec3{X: 5}, math.QuatIdentity(), math.Vec3{X: 2, Y: 2, Z: 2}, math.QuatIdentity())
	got := tr.Apply(math.Vec3{X: 1, Y: 1, Z: 1})
	assert.Equal(t, math.Vec3{X: 7, Y: 2, Z: 2}, got)
	assert.Equal(t, math.Vec3{X: 5}, tr.Translation())
}

func TestBlockCenterToCorner(t *testing.T) {
	rot := FromMatrix(math.RotateY(gomath.Pi))
	centered := BlockCenterToCorner(rot)

	// The block center is a fixed point.
	center := math.Vec3{X: 0.5, Y: 0.5, Z: 0.5}
	assert.True(t, centered.Apply(center).ApproxEqual(center, 1e-5))

	assert.True(t, BlockCenterToCorner(Identity()).IsIdentity())
}

func TestTransformIsModelState(t *testing.T) {
	tr := FromMatrix(math.Translate(1, 1, 1))
	got, ok := tr.BaseTransform()
	require.True(t, ok)
	assert.Equal(t, tr, got)
}
