package mandel

import (
	"image"
	"testing"
)

func TestEscapeTime(t *testing.T) {
	tests := []struct {
		name    string
		c       complex128
		maxIter uint16
		want    uint16
	}{
		{name: "origin", c: 0, maxIter: 1, want: 1},
		{name: "origin large budget", c: 0, maxIter: 65535, want: 65535},
		{name: "two escapes after one iteration", c: 2, maxIter: 100, want: 1},
		{name: "far corner", c: complex(-3.25, -2.5), maxIter: 256, want: 1},
		{name: "period-2 bulb center", c: -1, maxIter: 1000, want: 1000},
		{name: "cardioid cusp", c: 0.25, maxIter: 1000, want: 1000},
		{name: "zero budget", c: 0, maxIter: 0, want: 0},
		{name: "zero budget outside", c: complex(1, 1), maxIter: 0, want: 0},
		{name: "one plus i", c: complex(1, 1), maxIter: 100, want: 2},
		{name: "antenna tip reaches the threshold", c: -2, maxIter: 500, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EscapeTime(tt.c, tt.maxIter); got != tt.want {
				t.Errorf("EscapeTime(%v, %d) = %d, want %d", tt.c, tt.maxIter, got, tt.want)
			}
		})
	}
}

// iterate runs the recurrence without the cardioid and bulb shortcuts.
func iterate(c complex128, maxIter uint16) uint16 {
	z := complex(0, 0)
	for n := uint16(0); n < maxIter; n++ {
		z = z*z + c
		if real(z)*real(z)+imag(z)*imag(z) >= 4 {
			return n + 1
		}
	}
	return maxIter
}

func TestEscapeTimeShortcutsAreInside(t *testing.T) {
	inside := []complex128{
		0,
		-0.5,
		0.2,
		complex(-0.1, 0.5),
		complex(0.3, 0.1),
		complex(-0.5, -0.5),
		-1,
		complex(-1.1, 0.1),
		complex(-0.9, -0.1),
	}
	for _, c := range inside {
		if got := iterate(c, 2000); got != 2000 {
			t.Errorf("%v escaped after %d iterations", c, got)
		}
		if got := EscapeTime(c, 2000); got != 2000 {
			t.Errorf("EscapeTime(%v) = %d, want 2000", c, got)
		}
	}
}

func TestEscapeTimeMatchesIteration(t *testing.T) {
	// points far from the boundary, where rounding can't change the count
	outside := []complex128{
		2,
		complex(1, 1),
		complex(-2.5, 0),
		complex(0.5, 0.5),
		complex(0, 1.5),
		complex(-1.5, 1),
	}
	for _, c := range outside {
		want := iterate(c, 100)
		if want == 100 {
			t.Fatalf("%v doesn't escape, bad test point", c)
		}
		if got := EscapeTime(c, 100); got != want {
			t.Errorf("EscapeTime(%v) = %d, want %d", c, got, want)
		}
	}
}

func TestEvaluateChunkUsesAbsoluteCoordinates(t *testing.T) {
	r := ViewRequest{
		Center:        complex(-0.5, 0.25),
		Width:         40,
		Height:        30,
		PlaneWidth:    3,
		ChunkWidth:    8,
		ChunkHeight:   8,
		MaxIterations: 64,
	}
	chunk := image.Rect(16, 8, 24, 13)

	g := EvaluateChunk(r, chunk)
	if g.Rect != chunk {
		t.Fatalf("grid bounds = %v, want %v", g.Rect, chunk)
	}
	if len(g.Counts) != chunk.Dx()*chunk.Dy() {
		t.Fatalf("len(Counts) = %d, want %d", len(g.Counts), chunk.Dx()*chunk.Dy())
	}
	for y := chunk.Min.Y; y < chunk.Max.Y; y++ {
		for x := chunk.Min.X; x < chunk.Max.X; x++ {
			want := EscapeTime(r.PointAt(x, y), 64)
			if got := g.At(x, y); got != want {
				t.Errorf("count at (%d, %d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func BenchmarkEscapeTime(b *testing.B) {
	c := complex(-0.7436, 0.1318)
	for b.Loop() {
		EscapeTime(c, 1024)
	}
}
