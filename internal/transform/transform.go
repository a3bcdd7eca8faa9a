// Package transform provides the immutable affine transform used to place
// baked geometry, and its JSON encoding in model custom data.
package transform

import (
	"github.com/Faultbox/rackmodel/pkg/math"
)

// Transform is an immutable affine transform. The zero value behaves as
// Identity.
type Transform struct {
	matrix math.Mat4
}

// Identity returns the transform that leaves geometry unchanged.
func Identity() Transform {
	return Transform{matrix: math.Identity()}
}

// FromMatrix wraps an affine matrix.
func FromMatrix(m math.Mat4) Transform {
	return Transform{matrix: m}
}

// New builds a transform from translation, left rotation, scale and right
// rotation. The resulting matrix is T * L * S * R.
func New(translation math.Vec3, left math.Quat, scale math.Vec3, right math.Quat) Transform {
	m := math.Translate(translation.X, translation.Y, translation.Z).
		Mul(left.ToMat4()).
		Mul(math.Scale(scale.X, scale.Y, scale.Z)).
		Mul(right.ToMat4())
	return Transform{matrix: m}
}

// Matrix returns the transform as a column-major matrix.
func (t Transform) Matrix() math.Mat4 {
	if t.matrix == (math.Mat4{}) {
		return math.Identity()
	}
	return t.matrix
}

// Translation returns the translation part.
func (t Transform) Translation() math.Vec3 {
	return t.Matrix().Translation()
}

// IsIdentity reports whether t leaves geometry unchanged.
func (t Transform) IsIdentity() bool {
	return t.Matrix().IsIdentity()
}

// Compose returns the transform that applies other first and then t.
// Its matrix is t.Matrix() * other.Matrix().
func (t Transform) Compose(other Transform) Transform {
	return Transform{matrix: t.Matrix().Mul(other.Matrix())}
}

// Then returns the transform that applies t first and then next.
func (t Transform) Then(next Transform) Transform {
	return next.Compose(t)
}

// BlockCenterToCorner re-expresses a transform defined around the block
// center (0.5, 0.5, 0.5) in corner-origin block space.
func BlockCenterToCorner(t Transform) Transform {
	if t.IsIdentity() {
		return t
	}
	m := math.Translate(0.5, 0.5, 0.5).Mul(t.Matrix()).Mul(math.Translate(-0.5, -0.5, -0.5))
	return Transform{matrix: m}
}

// Apply transforms a point.
func (t Transform) Apply(p math.Vec3) math.Vec3 {
	return t.Matrix().TransformVec3(p)
}

// BaseTransform makes a Transform usable directly as a bake context.
func (t Transform) BaseTransform() (Transform, bool) {
	return t, true
}
