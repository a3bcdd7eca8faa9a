package model

import (
	gomath "math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/rackmodel/pkg/math"
)

func TestCubeFaceWindingMatchesNormal(t *testing.T) {
	for _, f := range Cardinals {
		q := CubeFaceQuad(f, MissingSprite, FormatBlock)
		p0 := math.V3(q.Vertices[0].Position)
		p1 := math.V3(q.Vertices[1].Position)
		p2 := math.V3(q.Vertices[2].Position)
		n := p1.Sub(p0).Cross(p2.Sub(p0)).Normalize()
		assert.Equal(t, math.V3(f.Normal()), n, "face %s", f)
		assert.Equal(t, f, q.Face)
	}
}

func TestFlatItemQuads(t *testing.T) {
	quads := FlatItemQuads(MissingSprite, 0)
	assert.Len(t, quads, 2)
	for _, q := range quads {
		assert.Equal(t, NoFacing, q.Face)
		assert.True(t, q.Format.Normal)
	}
	assert.Greater(t, quads[0].Vertices[0].Position[2], quads[1].Vertices[0].Position[2])
}

func TestNearestFacing(t *testing.T) {
	for _, f := range Cardinals {
		assert.Equal(t, f, NearestFacing(f.Normal()))
	}
	assert.Equal(t, Up, NearestFacing([3]float32{0.2, 0.9, 0.1}))
}

func TestRotateFacing(t *testing.T) {
	rot := math.RotateY(gomath.Pi / 2)
	assert.Equal(t, North, RotateFacing(East, rot))
	assert.Equal(t, Up, RotateFacing(Up, rot))
	assert.Equal(t, NoFacing, RotateFacing(NoFacing, rot))
}

func TestAllFacingsOrder(t *testing.T) {
	all := AllFacings()
	assert.Equal(t, NoFacing, all[6])
	for i, f := range Cardinals {
		assert.Equal(t, f, all[i])
	}
	f, ok := ParseFacing("east")
	assert.True(t, ok)
	assert.Equal(t, East, f)
	assert.Equal(t, "none", NoFacing.String())
}
