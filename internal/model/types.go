package model

// Vertex is one corner of a quad.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
	Color    [4]uint8
	// Lightmap holds packed block/sky light; zero when the format has none.
	Lightmap uint32
}

// VertexFormat describes which optional vertex attributes a quad carries.
type VertexFormat struct {
	Name     string
	Color    bool
	Normal   bool
	Lightmap bool
}

var (
	// FormatBlock is used for world block geometry.
	FormatBlock = VertexFormat{Name: "block", Color: true, Lightmap: true}
	// FormatItem is used for item geometry and carries normals.
	FormatItem = VertexFormat{Name: "item", Color: true, Normal: true}
)

// Sprite is a region of the texture atlas.
type Sprite struct {
	Name          ResourceLocation
	Width, Height int
	MinU, MaxU    float32
	MinV, MaxV    float32
}

// InterpolatedU maps a 0..16 texel coordinate to atlas space.
func (s *Sprite) InterpolatedU(u float32) float32 {
	return s.MinU + (s.MaxU-s.MinU)*u/16
}

// InterpolatedV maps a 0..16 texel coordinate to atlas space.
func (s *Sprite) InterpolatedV(v float32) float32 {
	return s.MinV + (s.MaxV-s.MinV)*v/16
}

// MissingSprite stands in for any texture that could not be resolved.
var MissingSprite = &Sprite{
	Name:   ResourceLocation{Namespace: DefaultNamespace, Path: "missingno"},
	Width:  16,
	Height: 16,
	MaxU:   1,
	MaxV:   1,
}

// Quad is a four-vertex textured polygon. Face is the facing the quad was
// generated for and is kept for culling even after the quad is transformed.
type Quad struct {
	Vertices  [4]Vertex
	TintIndex int
	Face      Facing
	Sprite    *Sprite
	Format    VertexFormat
	Shade     bool
}

// ItemStack is a quantity of one item. The zero value is empty.
type ItemStack struct {
	Item   ResourceLocation
	Count  int
	Damage int
}

// IsEmpty reports whether the stack holds nothing.
func (s ItemStack) IsEmpty() bool {
	return s.Item.IsZero() || s.Count <= 0
}
