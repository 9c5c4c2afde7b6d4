package mandel

import "image"

// EscapeTime returns the number of iterations of z -> z*z + c, starting at
// z = 0, after which |z| >= 2. Points that don't escape within maxIter
// iterations, including those inside the main cardioid or the period-2 bulb,
// return maxIter.
func EscapeTime(c complex128, maxIter uint16) uint16 {
	x0, y0 := real(c), imag(c)

	// main cardioid
	xp := x0 - 0.25
	yp := float64(y0 * y0)
	q := float64(xp*xp) + yp
	if float64(q*(q+xp)) <= float64(0.25*yp) {
		return maxIter
	}

	// period-2 bulb
	xp = x0 + 1
	if float64(xp*xp)+yp <= 0.0625 {
		return maxIter
	}

	var x, y, x2, y2 float64
	var n uint16
	for n < maxIter && x2+y2 < 4 {
		n++
		y = float64((x+x)*y) + y0
		x = x2 - y2 + x0
		x2 = x * x
		y2 = y * y
	}
	return n
}

// EscapeGrid holds the escape counts of one chunk, row-major.
type EscapeGrid struct {
	Rect   image.Rectangle // absolute pixel coordinates
	Counts []uint16
}

// At returns the count of the absolute pixel (x, y).
func (g *EscapeGrid) At(x, y int) uint16 {
	return g.Counts[(y-g.Rect.Min.Y)*g.Rect.Dx()+(x-g.Rect.Min.X)]
}

// EvaluateChunk computes the escape count of every pixel of chunk.
// r is assumed to be valid.
func EvaluateChunk(r ViewRequest, chunk image.Rectangle) *EscapeGrid {
	maxIter := uint16(r.MaxIterations)
	g := &EscapeGrid{
		Rect:   chunk,
		Counts: make([]uint16, chunk.Dx()*chunk.Dy()),
	}
	i := 0
	for py := chunk.Min.Y; py < chunk.Max.Y; py++ {
		for px := chunk.Min.X; px < chunk.Max.X; px++ {
			g.Counts[i] = EscapeTime(r.PointAt(px, py), maxIter)
			i++
		}
	}
	return g
}
