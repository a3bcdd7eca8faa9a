package model

import (
	"github.com/Faultbox/rackmodel/pkg/math"
)

// TransformQuad returns a copy of q with every position transformed by m as a
// point and every normal by the inverse transpose of m's linear part.
// Normals are only touched when the quad's format carries them. Texture
// coordinates, colors, lightmap, sprite and face pass through.
func TransformQuad(q Quad, m math.Mat4) Quad {
	return transformQuad(q, m, normalMatrix(m))
}

// TransformQuads applies TransformQuad to each quad, preserving order. The
// result is a new slice and never nil.
func TransformQuads(quads []Quad, m math.Mat4) []Quad {
	out := make([]Quad, len(quads))
	if m.IsIdentity() {
		copy(out, quads)
		return out
	}
	n := normalMatrix(m)
	for i, q := range quads {
		out[i] = transformQuad(q, m, n)
	}
	return out
}

func normalMatrix(m math.Mat4) math.Mat3 {
	// A singular linear part has no inverse; fall back to the plain 3x3.
	n, _ := m.NormalMatrix()
	return n
}

func transformQuad(q Quad, m math.Mat4, n math.Mat3) Quad {
	out := q
	for i := range out.Vertices {
		v := &out.Vertices[i]
		v.Position = m.TransformPoint(v.Position)
		if q.Format.Normal {
			v.Normal = math.V3(n.MulVec3(v.Normal)).Normalize().Array()
		}
	}
	return out
}
