package transform

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/rackmodel/pkg/math"
)

func TestParseIdentity(t *testing.T) {
	tr, err := Parse([]byte(`"identity"`))
	require.NoError(t, err)
	assert.True(t, tr.IsIdentity())
}

func TestParseMatrix(t *testing.T) {
	tr, err := Parse([]byte(`[[1,0,0,0.25],[0,1,0,0.5],[0,0,1,0.75]]`))
	require.NoError(t, err)
	assert.Equal(t, math.Translate(0.25, 0.5, 0.75), tr.Matrix())

	tr, err = Parse([]byte(`{"matrix": [[2,0,0,0],[0,2,0,0],[0,0,2,0]]}`))
	require.NoError(t, err)
	assert.Equal(t, math.Scale(2, 2, 2), tr.Matrix())
}

func TestParseAxisRotationAboutCenter(t *testing.T) {
	tr, err := Parse([]byte(`{"rotation": {"y": 90}}`))
	require.NoError(t, err)

	got := tr.Apply(math.Vec3{X: 1, Y: 0.5, Z: 0.5})
	assert.True(t, got.ApproxEqual(math.Vec3{X: 0.5, Y: 0.5, Z: 0}, 1e-5), "got %v", got)
}

func TestParseRotationForms(t *testing.T) {
	quat, err := Parse([]byte(`{"rotation": [0, 0.70710677, 0, 0.70710677]}`))
	require.NoError(t, err)
	axis, err := Parse([]byte(`{"rotation": {"y": 90}}`))
	require.NoError(t, err)
	assert.True(t, quat.Matrix().ApproxEqual(axis.Matrix(), 1e-5))

	// Steps multiply left to right: qx * qy.
	seq, err := Parse([]byte(`{"rotation": [{"x": 90}, {"y": 90}]}`))
	require.NoError(t, err)
	want := math.QuatFromDegrees(0, 90).Mul(math.QuatFromDegrees(1, 90)).ToMat4()
	assert.True(t, seq.Matrix().ApproxEqual(BlockCenterToCorner(FromMatrix(want)).Matrix(), 1e-5))

	reversed := math.QuatFromDegrees(1, 90).Mul(math.QuatFromDegrees(0, 90)).ToMat4()
	assert.False(t, seq.Matrix().ApproxEqual(BlockCenterToCorner(FromMatrix(reversed)).Matrix(), 1e-5))
}

func TestParseRotationArrayMatchesMatrixProduct(t *testing.T) {
	seq, err := Parse([]byte(`{"rotation": [{"x": 90}, {"y": 90}, {"z": 45}]}`))
	require.NoError(t, err)

	want := math.QuatFromDegrees(0, 90).ToMat4().
		Mul(math.QuatFromDegrees(1, 90).ToMat4()).
		Mul(math.QuatFromDegrees(2, 45).ToMat4())
	assert.True(t, seq.Matrix().ApproxEqual(BlockCenterToCorner(FromMatrix(want)).Matrix(), 1e-5))
}

func TestParseTranslationAndScale(t *testing.T) {
	tr, err := Parse([]byte(`{"translation": [0, 0.25, 0], "scale": 0.5}`))
	require.NoError(t, err)

	// Scaling about the center keeps the center fixed, then translates.
	got := tr.Apply(math.Vec3{X: 0.5, Y: 0.5, Z: 0.5})
	assert.True(t, got.ApproxEqual(math.Vec3{X: 0.5, Y: 0.75, Z: 0.5}, 1e-5), "got %v", got)

	tr, err = Parse([]byte(`{"scale": [1, 2, 1]}`))
	require.NoError(t, err)
	got = tr.Apply(math.Vec3{X: 0.5, Y: 1, Z: 0.5})
	assert.True(t, got.ApproxEqual(math.Vec3{X: 0.5, Y: 1.5, Z: 0.5}, 1e-5), "got %v", got)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"bad json", `{"rotation":`},
		{"unknown string", `"forge:default-item"`},
		{"unknown key", `{"spin": 1}`},
		{"short translation", `{"translation": [1, 2]}`},
		{"bad axis", `{"rotation": {"w": 90}}`},
		{"two axes", `{"rotation": {"x": 90, "y": 90}}`},
		{"short matrix row", `[[1,0,0],[0,1,0,0],[0,0,1,0]]`},
		{"matrix with extras", `{"matrix": [[1,0,0,0],[0,1,0,0],[0,0,1,0]], "scale": 2}`},
		{"number", `42`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestUnmarshalJSON(t *testing.T) {
	var doc struct {
		T Transform `json:"t"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"t": {"translation": [1, 0, 0]}}`), &doc))
	assert.Equal(t, math.Vec3{X: 1}, doc.T.Translation())
}

func TestMarshalJSONReparses(t *testing.T) {
	orig, err := Parse([]byte(`{"rotation": {"z": 45}, "translation": [0, 1, 0]}`))
	require.NoError(t, err)

	data, err := json.Marshal(orig)
	require.NoError(t, err)
	back, err := Parse(data)
	require.NoError(t, err)
	assert.True(t, orig.Matrix().ApproxEqual(back.Matrix(), 1e-5))

	data, err = json.Marshal(Identity())
	require.NoError(t, err)
	assert.JSONEq(t, `"identity"`, string(data))
}
