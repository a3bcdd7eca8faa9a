package transform

import (
	_ "embed"
	"encoding/json"
	"sort"

	"github.com/pkg/errors"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/Faultbox/rackmodel/pkg/math"
)

//go:embed transform.schema.json
var schemaSource string

var schema = jsonschema.MustCompileString("transform.schema.json", schemaSource)

// Parse decodes a transform from its JSON form. Accepted forms:
//
//	"identity"
//	[[m00,m01,m02,m03],[m10,...],[m20,...]]           3x4 affine matrix, row-major
//	{"matrix": [[...],[...],[...]]}
//	{"translation": [x,y,z], "rotation": R, "scale": S, "post-rotation": R}
//
// where R is a quaternion [x,y,z,w], a single-axis object such as {"y": 90}
// (degrees), or an array of such objects multiplied left to right
// (q0 * q1 * ...), and S is a number
// or [x,y,z]. The object TRSR form rotates and scales about the block center.
func Parse(data []byte) (Transform, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return Transform{}, errors.Wrap(err, "transform: invalid json")
	}
	return FromValue(v)
}

// FromValue converts an already decoded JSON value.
func FromValue(v any) (Transform, error) {
	if err := schema.Validate(v); err != nil {
		return Transform{}, errors.Wrap(err, "transform: schema")
	}

	switch val := v.(type) {
	case string:
		return Identity(), nil
	case []any:
		m, err := parseMatrix(val)
		if err != nil {
			return Transform{}, err
		}
		return FromMatrix(m), nil
	case map[string]any:
		return parseObject(val)
	}
	return Transform{}, errors.Errorf("transform: unsupported value %T", v)
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Transform) UnmarshalJSON(data []byte) error {
	parsed, err := Parse(data)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalJSON encodes the transform as "identity" or a 3x4 row-major matrix.
func (t Transform) MarshalJSON() ([]byte, error) {
	if t.IsIdentity() {
		return json.Marshal("identity")
	}
	m := t.Matrix()
	var rows [3][4]float32
	for r := 0; r < 3; r++ {
		for c := 0; c < 4; c++ {
			rows[r][c] = m[c*4+r]
		}
	}
	return json.Marshal(rows)
}

func parseObject(obj map[string]any) (Transform, error) {
	if raw, ok := obj["matrix"]; ok {
		if len(obj) != 1 {
			return Transform{}, errors.New("transform: matrix cannot be combined with other keys")
		}
		m, err := parseMatrix(raw.([]any))
		if err != nil {
			return Transform{}, err
		}
		return FromMatrix(m), nil
	}

	translation := math.Vec3{}
	left := math.QuatIdentity()
	scale := math.Vec3{X: 1, Y: 1, Z: 1}
	right := math.QuatIdentity()

	if raw, ok := obj["translation"]; ok {
		translation = math.V3(floats3(raw.([]any)))
	}
	if raw, ok := obj["rotation"]; ok {
		left = parseRotation(raw)
	}
	if raw, ok := obj["scale"]; ok {
		switch s := raw.(type) {
		case float64:
			f := float32(s)
			scale = math.Vec3{X: f, Y: f, Z: f}
		case []any:
			scale = math.V3(floats3(s))
		}
	}
	if raw, ok := obj["post-rotation"]; ok {
		right = parseRotation(raw)
	}

	return BlockCenterToCorner(New(translation, left, scale, right)), nil
}

func parseMatrix(rows []any) (math.Mat4, error) {
	var m [3][4]float32
	for r, row := range rows {
		cols, ok := row.([]any)
		if !ok || len(cols) != 4 {
			return math.Mat4{}, errors.Errorf("transform: matrix row %d must have 4 numbers", r)
		}
		for c, v := range cols {
			m[r][c] = float32(v.(float64))
		}
	}
	return math.FromRows3x4(m), nil
}

// parseRotation relies on the schema having checked the shape.
func parseRotation(v any) math.Quat {
	switch r := v.(type) {
	case map[string]any:
		return axisRotation(r)
	case []any:
		if len(r) == 4 {
			if _, isNum := r[0].(float64); isNum {
				return math.Quat{
					X: float32(r[0].(float64)),
					Y: float32(r[1].(float64)),
					Z: float32(r[2].(float64)),
					W: float32(r[3].(float64)),
				}.Normalize()
			}
		}
		q := math.QuatIdentity()
		for _, step := range r {
			q = q.Mul(axisRotation(step.(map[string]any)))
		}
		return q
	}
	return math.QuatIdentity()
}

func axisRotation(obj map[string]any) math.Quat {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	q := math.QuatIdentity()
	for _, k := range keys {
		deg := float32(obj[k].(float64))
		q = q.Mul(math.QuatFromDegrees(int(k[0]-'x'), deg))
	}
	return q
}

func floats3(a []any) [3]float32 {
	return [3]float32{
		float32(a[0].(float64)),
		float32(a[1].(float64)),
		float32(a[2].(float64)),
	}
}
