package render

import "github.com/sheikhrachel/glife/model"

// Canvas is an RGB image of width x height logical pixels, each drawn as a
// blockSize x blockSize square
type Canvas struct {
	width     int
	height    int
	blockSize int
	pix       []uint8 // RGB, row-major, at scaled resolution
}

// NewCanvas allocates a canvas. A block size below 1 is treated as 1.
func NewCanvas(width, height, blockSize int) *Canvas {
	c := &Canvas{}
	c.Reset(width, height, blockSize)
	return c
}

// Reset resizes the canvas, reusing its buffer when large enough
func (c *Canvas) Reset(width, height, blockSize int) {
	c.width = max(width, 0)
	c.height = max(height, 0)
	c.blockSize = max(blockSize, 1)

	n := c.PixelWidth() * c.PixelHeight() * 3
	if cap(c.pix) < n {
		c.pix = make([]uint8, n)
	}
	c.pix = c.pix[:n]
}

// PixelWidth returns the scaled image width
func (c *Canvas) PixelWidth() int { return c.width * c.blockSize }

// PixelHeight returns the scaled image height
func (c *Canvas) PixelHeight() int { return c.height * c.blockSize }

// Pixels returns the RGB buffer at scaled resolution
func (c *Canvas) Pixels() []uint8 { return c.pix }

// Clear paints the whole canvas with one color
func (c *Canvas) Clear(color Color) {
	for i := 0; i < len(c.pix); i += 3 {
		c.pix[i], c.pix[i+1], c.pix[i+2] = color.R, color.G, color.B
	}
}

// Set paints the logical pixel (x, y). Out-of-range coordinates are ignored.
func (c *Canvas) Set(x, y int, color Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	stride := c.PixelWidth() * 3
	for dy := 0; dy < c.blockSize; dy++ {
		row := (y*c.blockSize + dy) * stride
		for dx := 0; dx < c.blockSize; dx++ {
			i := row + (x*c.blockSize+dx)*3
			c.pix[i], c.pix[i+1], c.pix[i+2] = color.R, color.G, color.B
		}
	}
}

// At returns the color of the logical pixel (x, y)
func (c *Canvas) At(x, y int) Color {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return Color{}
	}
	i := (y*c.blockSize*c.PixelWidth() + x*c.blockSize) * 3
	return Color{c.pix[i], c.pix[i+1], c.pix[i+2]}
}

// Style picks the colors and block size used to paint boards
type Style struct {
	Background Color
	Alive      Color
	BlockSize  int
}

// Paint draws the board onto c: columns map to x, rows to y
func (s Style) Paint(c *Canvas, b *model.Board) {
	c.Reset(b.Cols(), b.Rows(), s.BlockSize)
	c.Clear(s.Background)
	for _, cell := range b.Cells() {
		c.Set(cell.Col, cell.Row, s.Alive)
	}
}
