package mandel

// palette is the color table of escaped points, indexed by escape count mod 16.
var palette = [16][3]uint8{
	{66, 30, 15},
	{25, 7, 26},
	{9, 1, 47},
	{4, 4, 73},
	{0, 7, 100},
	{12, 44, 138},
	{24, 82, 177},
	{57, 125, 209},
	{134, 181, 229},
	{211, 236, 248},
	{241, 233, 191},
	{248, 201, 95},
	{255, 170, 0},
	{204, 128, 0},
	{153, 87, 0},
	{106, 52, 3},
}

// ColorOf returns the RGB color of escape count v.
// Counts of 0 and maxIter are black.
func ColorOf(v, maxIter uint16) [3]uint8 {
	if v == 0 || v == maxIter {
		return [3]uint8{}
	}
	return palette[v%uint16(len(palette))]
}

// Colorize converts an escape grid into an RGB grid covering the same pixels.
func Colorize(g *EscapeGrid, maxIter uint16) *PixelBuffer {
	b := NewPixelBuffer(g.Rect)
	for i, v := range g.Counts {
		c := ColorOf(v, maxIter)
		copy(b.Pix[3*i:3*i+3], c[:])
	}
	return b
}
