package model

import (
	gomath "math"

	"github.com/Faultbox/rackmodel/pkg/math"
)

type faceFrame struct {
	origin, u, v [3]float32
}

// Each face is origin, origin+u, origin+u+v, origin+v with u x v pointing out.
var cubeFrames = [6]faceFrame{
	Down:  {origin: [3]float32{0, 0, 0}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 0, 1}},
	Up:    {origin: [3]float32{0, 1, 0}, u: [3]float32{0, 0, 1}, v: [3]float32{1, 0, 0}},
	North: {origin: [3]float32{0, 0, 0}, u: [3]float32{0, 1, 0}, v: [3]float32{1, 0, 0}},
	South: {origin: [3]float32{0, 0, 1}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 1, 0}},
	West:  {origin: [3]float32{0, 0, 0}, u: [3]float32{0, 0, 1}, v: [3]float32{0, 1, 0}},
	East:  {origin: [3]float32{1, 0, 0}, u: [3]float32{0, 1, 0}, v: [3]float32{0, 0, 1}},
}

var cornerUV = [4][2]float32{{0, 16}, {16, 16}, {16, 0}, {0, 0}}

// CubeFaceQuad builds the full-block quad for face f textured with sprite.
func CubeFaceQuad(f Facing, sprite *Sprite, format VertexFormat) Quad {
	fr := cubeFrames[f]
	corners := [4][3]float32{
		fr.origin,
		add3(fr.origin, fr.u),
		add3(add3(fr.origin, fr.u), fr.v),
		add3(fr.origin, fr.v),
	}
	q := Quad{Face: f, Sprite: sprite, Format: format, TintIndex: -1, Shade: true}
	for i := range q.Vertices {
		q.Vertices[i] = Vertex{
			Position: corners[i],
			Normal:   f.Normal(),
			TexCoord: [2]float32{sprite.InterpolatedU(cornerUV[i][0]), sprite.InterpolatedV(cornerUV[i][1])},
			Color:    [4]uint8{0xFF, 0xFF, 0xFF, 0xFF},
		}
	}
	return q
}

// FlatItemQuads builds the front and back quads of a flat item sprite, a
// 1/16-thick plate centered on z = 0.5.
func FlatItemQuads(sprite *Sprite, tint int) []Quad {
	const half = 0.5 / 16
	front := CubeFaceQuad(South, sprite, FormatItem)
	back := CubeFaceQuad(North, sprite, FormatItem)
	for i := range front.Vertices {
		front.Vertices[i].Position[2] = 0.5 + half
		back.Vertices[i].Position[2] = 0.5 - half
	}
	front.TintIndex, back.TintIndex = tint, tint
	front.Face, back.Face = NoFacing, NoFacing
	return []Quad{front, back}
}

// NearestFacing returns the cardinal facing closest to the direction n.
func NearestFacing(n [3]float32) Facing {
	best, bestDot := NoFacing, float32(-gomath.MaxFloat32)
	for _, f := range Cardinals {
		fn := f.Normal()
		d := fn[0]*n[0] + fn[1]*n[1] + fn[2]*n[2]
		if d > bestDot {
			best, bestDot = f, d
		}
	}
	return best
}

// RotateFacing maps f through the linear part of m.
func RotateFacing(f Facing, m math.Mat4) Facing {
	if f == NoFacing {
		return NoFacing
	}
	return NearestFacing(m.TransformDirection(f.Normal()))
}

func add3(a, b [3]float32) [3]float32 {
	return [3]float32{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}
