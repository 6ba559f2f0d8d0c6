package randomlife

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// minCircleSegments keeps tiny or very tolerant circles round enough.
const minCircleSegments = 8

// Mesh is an untextured triangle list ready for ebiten.Image.DrawTriangles.
type Mesh struct {
	Vertices []ebiten.Vertex
	Indices  []uint16
}

// PolygonMesh fan-triangulates a convex polygon filled with c.
// N points give N vertices and 3*(N-2) indices; fewer than 3 points give an
// empty mesh.
func PolygonMesh(points []Vec2, c Color) Mesh {
	n := len(points)
	if n < 3 {
		return Mesh{}
	}
	m := Mesh{
		Vertices: make([]ebiten.Vertex, n),
		Indices:  make([]uint16, (n-2)*3),
	}
	for i, p := range points {
		m.Vertices[i] = solidVertex(p, c)
	}
	// Fan triangulation: vertex 0 is the hub.
	for i := 0; i < n-2; i++ {
		m.Indices[i*3+0] = 0
		m.Indices[i*3+1] = uint16(i + 1)
		m.Indices[i*3+2] = uint16(i + 2)
	}
	return m
}

// CircleMesh builds a filled circle as a fan around center. The number of
// segments is the smallest that keeps every chord within tolerance of the arc.
func CircleMesh(center Vec2, radius, tolerance float64, c Color) Mesh {
	if radius <= 0 {
		return Mesh{}
	}
	segs := circleSegments(radius, tolerance)
	m := Mesh{
		Vertices: make([]ebiten.Vertex, segs+1),
		Indices:  make([]uint16, segs*3),
	}
	m.Vertices[0] = solidVertex(center, c)
	for i := 0; i < segs; i++ {
		angle := float64(i) * 2 * math.Pi / float64(segs)
		sin, cos := math.Sincos(angle)
		m.Vertices[i+1] = solidVertex(Vec2{X: center.X + cos*radius, Y: center.Y + sin*radius}, c)

		next := (i+1)%segs + 1
		m.Indices[i*3+0] = 0
		m.Indices[i*3+1] = uint16(i + 1)
		m.Indices[i*3+2] = uint16(next)
	}
	return m
}

// circleSegments returns the segment count for which the sagitta
// r*(1-cos(pi/n)) does not exceed tolerance.
func circleSegments(radius, tolerance float64) int {
	if tolerance <= 0 || tolerance >= radius {
		return minCircleSegments
	}
	n := int(math.Ceil(math.Pi / math.Acos(1-tolerance/radius)))
	return max(n, minCircleSegments)
}

// solidVertex maps p to the center of the white pixel with a premultiplied
// color.
func solidVertex(p Vec2, c Color) ebiten.Vertex {
	return ebiten.Vertex{
		DstX:   float32(p.X),
		DstY:   float32(p.Y),
		SrcX:   0.5,
		SrcY:   0.5,
		ColorR: float32(c.R * c.A),
		ColorG: float32(c.G * c.A),
		ColorB: float32(c.B * c.A),
		ColorA: float32(c.A),
	}
}

// Draw submits the mesh to dst.
func (m Mesh) Draw(dst *ebiten.Image) {
	if len(m.Indices) == 0 {
		return
	}
	dst.DrawTriangles(m.Vertices, m.Indices, ensureWhitePixel(), nil)
}

// --- White pixel ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image used
// as the source of every untextured mesh.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}
