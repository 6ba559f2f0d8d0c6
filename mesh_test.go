package randomlife

import (
	"math"
	"testing"
)

// --- Polygon ---

func TestPolygonMeshTriangle(t *testing.T) {
	c := Color{R: 1, G: 0.3, B: 0, A: 1}
	m := PolygonMesh([]Vec2{{0, 0}, {10, 0}, {5, 8}}, c)
	if len(m.Vertices) != 3 {
		t.Fatalf("vertices = %d, want 3", len(m.Vertices))
	}
	if len(m.Indices) != 3 {
		t.Fatalf("indices = %d, want 3", len(m.Indices))
	}
	if m.Vertices[2].DstX != 5 || m.Vertices[2].DstY != 8 {
		t.Errorf("vertex 2 = (%v, %v), want (5, 8)", m.Vertices[2].DstX, m.Vertices[2].DstY)
	}
	v := m.Vertices[0]
	if v.SrcX != 0.5 || v.SrcY != 0.5 {
		t.Errorf("src = (%v, %v), want white pixel center", v.SrcX, v.SrcY)
	}
	if v.ColorR != 1 || !approxEqual(float64(v.ColorG), 0.3, 1e-6) || v.ColorB != 0 || v.ColorA != 1 {
		t.Errorf("color = (%v, %v, %v, %v)", v.ColorR, v.ColorG, v.ColorB, v.ColorA)
	}
}

func TestPolygonMeshFan(t *testing.T) {
	m := PolygonMesh([]Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {-1, 0.5}}, ColorWhite)
	// 5 points → 3 triangles
	want := []uint16{0, 1, 2, 0, 2, 3, 0, 3, 4}
	if len(m.Indices) != len(want) {
		t.Fatalf("indices = %v, want %v", m.Indices, want)
	}
	for i := range want {
		if m.Indices[i] != want[i] {
			t.Fatalf("indices = %v, want %v", m.Indices, want)
		}
	}
}

func TestPolygonMeshTooFewPoints(t *testing.T) {
	m := PolygonMesh([]Vec2{{0, 0}, {1, 1}}, ColorWhite)
	if len(m.Vertices) != 0 || len(m.Indices) != 0 {
		t.Errorf("expected empty mesh, got %d vertices", len(m.Vertices))
	}
}

func TestPolygonMeshPremultiplies(t *testing.T) {
	m := PolygonMesh([]Vec2{{0, 0}, {1, 0}, {0, 1}}, Color{R: 1, G: 1, B: 1, A: 0.5})
	v := m.Vertices[0]
	if v.ColorR != 0.5 || v.ColorA != 0.5 {
		t.Errorf("color = (%v, ..., %v), want premultiplied 0.5", v.ColorR, v.ColorA)
	}
}

// --- Circle ---

func TestCircleSegments(t *testing.T) {
	tests := []struct {
		name              string
		radius, tolerance float64
		want              int
	}{
		{"head marker", 3, 0.1, 13},
		{"large fine", 100, 0.1, 71},
		{"coarse tolerance", 3, 2, minCircleSegments},
		{"tolerance above radius", 3, 5, minCircleSegments},
		{"zero tolerance", 3, 0, minCircleSegments},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := circleSegments(tt.radius, tt.tolerance); got != tt.want {
				t.Errorf("circleSegments(%v, %v) = %d, want %d", tt.radius, tt.tolerance, got, tt.want)
			}
		})
	}
}

func TestCircleSegmentsWithinTolerance(t *testing.T) {
	for _, r := range []float64{1, 3, 10, 50} {
		n := circleSegments(r, 0.1)
		sagitta := r * (1 - math.Cos(math.Pi/float64(n)))
		if sagitta > 0.1+1e-12 {
			t.Errorf("radius %v: %d segments give sagitta %v > 0.1", r, n, sagitta)
		}
	}
}

func TestCircleMesh(t *testing.T) {
	center := Vec2{100, 50}
	m := CircleMesh(center, 3, 0.1, ColorWhite)
	segs := circleSegments(3, 0.1)
	if len(m.Vertices) != segs+1 {
		t.Fatalf("vertices = %d, want %d", len(m.Vertices), segs+1)
	}
	if len(m.Indices) != segs*3 {
		t.Fatalf("indices = %d, want %d", len(m.Indices), segs*3)
	}
	if m.Vertices[0].DstX != 100 || m.Vertices[0].DstY != 50 {
		t.Errorf("hub = (%v, %v), want center", m.Vertices[0].DstX, m.Vertices[0].DstY)
	}
	for i, v := range m.Vertices[1:] {
		d := math.Hypot(float64(v.DstX)-center.X, float64(v.DstY)-center.Y)
		if !approxEqual(d, 3, 1e-4) {
			t.Errorf("rim vertex %d at distance %v, want 3", i, d)
		}
	}
	// Last triangle closes the fan back to the first rim vertex.
	last := m.Indices[len(m.Indices)-3:]
	if last[0] != 0 || last[1] != uint16(segs) || last[2] != 1 {
		t.Errorf("closing triangle = %v, want [0 %d 1]", last, segs)
	}
}

func TestCircleMeshZeroRadius(t *testing.T) {
	m := CircleMesh(Vec2{}, 0, 0.1, ColorWhite)
	if len(m.Indices) != 0 {
		t.Errorf("expected empty mesh, got %d indices", len(m.Indices))
	}
}
