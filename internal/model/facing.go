package model

// Facing is one of the six block faces, or NoFacing for geometry that is not
// culled against a neighbour.
type Facing int8

const (
	NoFacing Facing = iota - 1
	Down
	Up
	North
	South
	West
	East
)

var facingNames = [...]string{"down", "up", "north", "south", "west", "east"}

// Cardinals lists the six faces in index order.
var Cardinals = [6]Facing{Down, Up, North, South, West, East}

// AllFacings lists the six faces followed by NoFacing, the order in which a
// model's complete geometry is gathered.
func AllFacings() [7]Facing {
	return [7]Facing{Down, Up, North, South, West, East, NoFacing}
}

// String implements fmt.Stringer.
func (f Facing) String() string {
	if f < Down || f > East {
		return "none"
	}
	return facingNames[f]
}

// ParseFacing returns the facing with the given lowercase name.
func ParseFacing(name string) (Facing, bool) {
	for i, n := range facingNames {
		if n == name {
			return Facing(i), true
		}
	}
	return NoFacing, false
}

// Normal returns the outward unit normal of the face.
func (f Facing) Normal() [3]float32 {
	switch f {
	case Down:
		return [3]float32{0, -1, 0}
	case Up:
		return [3]float32{0, 1, 0}
	case North:
		return [3]float32{0, 0, -1}
	case South:
		return [3]float32{0, 0, 1}
	case West:
		return [3]float32{-1, 0, 0}
	case East:
		return [3]float32{1, 0, 0}
	}
	return [3]float32{}
}
