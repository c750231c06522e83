package tileview

// RectStyle selects how a Rectangle is drawn.
type RectStyle uint8

const (
	RectSolid  RectStyle = iota // Filled, two triangles
	RectBorder                  // Outline, one line loop
)

// String returns the config name of the style.
func (s RectStyle) String() string {
	switch s {
	case RectSolid:
		return "solid"
	case RectBorder:
		return "border"
	default:
		return "unknown"
	}
}

// Primitive is the topology a vertex batch is drawn with.
type Primitive uint8

const (
	Triangles Primitive = iota
	LineLoop
)

// RectVertexStride is the number of floats per rectangle vertex:
// position (x, y) then color (r, g, b, a).
const RectVertexStride = 6

// Rectangle is a flat-colored overlay quad.
type Rectangle struct {
	Coords NDCRect
	Color  Color
	Style  RectStyle
}

// DefaultRectangle is the overlay shown when the config does not set one.
func DefaultRectangle() Rectangle {
	return Rectangle{
		Coords: NDCRect{X1: -0.75, Y1: -0.5, X2: 0.75, Y2: 0.5},
		Color:  Color{R: 1, G: 1, B: 0.2, A: 1},
		Style:  RectSolid,
	}
}

// Primitive returns the topology matching the style.
func (r Rectangle) Primitive() Primitive {
	if r.Style == RectBorder {
		return LineLoop
	}
	return Triangles
}

// VertexCount returns 6 for solid rectangles and 4 for borders.
func (r Rectangle) VertexCount() int {
	if r.Style == RectBorder {
		return 4
	}
	return 6
}

// Vertices returns the interleaved vertex data. (X1, Y1) is treated as
// the top-left corner and (X2, Y2) as the bottom-right.
func (r Rectangle) Vertices() []float32 {
	c := r.Coords
	var corners [][2]float32
	if r.Style == RectBorder {
		corners = [][2]float32{
			{c.X1, c.Y1},
			{c.X2, c.Y1},
			{c.X2, c.Y2},
			{c.X1, c.Y2},
		}
	} else {
		corners = [][2]float32{
			{c.X1, c.Y1}, // top left
			{c.X2, c.Y1}, // top right
			{c.X1, c.Y2}, // bottom left
			{c.X1, c.Y2}, // bottom left
			{c.X2, c.Y1}, // top right
			{c.X2, c.Y2}, // bottom right
		}
	}

	col := r.Color.Array()
	out := make([]float32, 0, len(corners)*RectVertexStride)
	for _, p := range corners {
		out = append(out, p[0], p[1], col[0], col[1], col[2], col[3])
	}
	return out
}

// TilesetVertexStride is the number of floats per tileset vertex:
// position (x, y) then texture coordinates (u, v).
const TilesetVertexStride = 4

// TilesetQuad covers the full NDC range. Image row 0 is the top of the
// picture and is uploaded first, so v runs downward.
var TilesetQuad = [6 * TilesetVertexStride]float32{
	-1, 1, 0, 0, // top left
	1, 1, 1, 0, // top right
	-1, -1, 0, 1, // bottom left
	-1, -1, 0, 1, // bottom left
	1, 1, 1, 0, // top right
	1, -1, 1, 1, // bottom right
}
