package draw

import (
	"io"
	"math"
	"strings"
)

// Sub-pixel bits of a terminal cell. Each cell holds two vertically stacked
// sub-pixels drawn with half-block characters.
const (
	topHalf    uint8 = 1
	bottomHalf uint8 = 2
)

var cellGlyphs = [4]string{"", string(BlockUpperHalf), string(BlockLowerHalf), string(BlockFull)}

// Canvas is a drawing buffer with 2x vertical resolution using half-block characters.
// Shapes are given in logical coordinates and scaled to the terminal area.
type Canvas struct {
	cols, rows int
	cells      []uint8 // [row*cols + col], topHalf|bottomHalf

	logicalWidth  float64
	logicalHeight float64 // In sub-pixels
	scaleX        float64 // cols / logicalWidth
	scaleY        float64 // rows*2 / logicalHeight

	// 0-based terminal offset of the canvas' top-left cell.
	offsetCol int
	offsetRow int

	out    []byte  // Render buffer
	points []Point // Scratch polygon for shape helpers
}

// NewScaledCanvas creates a canvas of cols x rows terminal cells mapping a
// logicalWidth x logicalHeight coordinate space.
func NewScaledCanvas(cols, rows int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{logicalWidth: logicalWidth, logicalHeight: logicalHeight}
	c.Resize(cols, rows)
	return c
}

// Resize changes the terminal area while keeping the logical size.
func (c *Canvas) Resize(cols, rows int) {
	if cols != c.cols || rows != c.rows {
		c.cols, c.rows = cols, rows
		c.cells = make([]uint8, cols*rows)
	}
	c.scaleX = float64(cols) / c.logicalWidth
	c.scaleY = float64(rows*2) / c.logicalHeight
}

// SetOffset places the canvas at 0-based terminal column col and row row.
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.cells)
}

func (c *Canvas) toPixel(x, y float64) (px, py int) {
	return int(math.Round(x * c.scaleX)), int(math.Round(y * c.scaleY))
}

// setPixel sets a sub-pixel at terminal resolution. Out of range is ignored.
func (c *Canvas) setPixel(px, py int) {
	if px < 0 || px >= c.cols || py < 0 || py >= c.rows*2 {
		return
	}
	c.cells[(py/2)*c.cols+px] |= topHalf << (py & 1)
}

// Pixel reports whether the sub-pixel nearest to logical x, y is set.
func (c *Canvas) Pixel(x, y float64) bool {
	px, py := c.toPixel(x, y)
	if px < 0 || px >= c.cols || py < 0 || py >= c.rows*2 {
		return false
	}
	return c.cells[(py/2)*c.cols+px]&(topHalf<<(py&1)) != 0
}

// SetFloat sets the sub-pixel nearest to logical x, y.
func (c *Canvas) SetFloat(x, y float64) {
	c.setPixel(c.toPixel(x, y))
}

// DrawLine draws a line between two logical points.
func (c *Canvas) DrawLine(p1, p2 Point) {
	x1, y1 := c.toPixel(p1.X, p1.Y)
	x2, y2 := c.toPixel(p2.X, p2.Y)

	steps := max(abs(x2-x1), abs(y2-y1))
	if steps == 0 {
		c.setPixel(x1, y1)
		return
	}
	dx := float64(x2-x1) / float64(steps)
	dy := float64(y2-y1) / float64(steps)
	for i := 0; i <= steps; i++ {
		c.setPixel(x1+int(math.Round(dx*float64(i))), y1+int(math.Round(dy*float64(i))))
	}
}

// DrawRect draws an axis-aligned rectangle in logical coordinates.
func (c *Canvas) DrawRect(x, y, w, h float64, filled bool) {
	pts := c.Points(4)
	pts[0] = Point{X: x, Y: y}
	pts[1] = Point{X: x + w, Y: y}
	pts[2] = Point{X: x + w, Y: y + h}
	pts[3] = Point{X: x, Y: y + h}
	c.DrawPolygon(pts, filled)
}

// circleSegments is the polygon resolution used for circles.
const circleSegments = 24

// DrawCircle draws a circle as a regular polygon in logical coordinates.
func (c *Canvas) DrawCircle(cx, cy, radius float64, filled bool) {
	pts := c.Points(circleSegments)
	for i := range pts {
		angle := 2 * math.Pi * float64(i) / circleSegments
		pts[i] = Point{X: cx + math.Cos(angle)*radius, Y: cy + math.Sin(angle)*radius}
	}
	c.DrawPolygon(pts, filled)
}

// DrawPolygon draws the outline of a closed polygon and optionally fills it.
// Filling assumes the polygon is convex.
func (c *Canvas) DrawPolygon(points []Point, filled bool) {
	if len(points) < 3 {
		return
	}
	if filled {
		c.fillConvex(points)
	}
	n := len(points)
	for i := 0; i < n; i++ {
		c.DrawLine(points[i], points[(i+1)%n])
	}
}

// fillConvex fills each sub-pixel row between the leftmost and rightmost
// edge crossing of its centre line.
func (c *Canvas) fillConvex(points []Point) {
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, p := range points {
		minY = math.Min(minY, p.Y*c.scaleY)
		maxY = math.Max(maxY, p.Y*c.scaleY)
	}

	n := len(points)
	for py := int(math.Floor(minY)); py <= int(math.Ceil(maxY)); py++ {
		scanY := float64(py) + 0.5
		left, right := math.Inf(1), math.Inf(-1)
		for i := 0; i < n; i++ {
			ax, ay := points[i].X*c.scaleX, points[i].Y*c.scaleY
			bx, by := points[(i+1)%n].X*c.scaleX, points[(i+1)%n].Y*c.scaleY
			if (ay <= scanY) == (by <= scanY) {
				continue
			}
			x := ax + (scanY-ay)/(by-ay)*(bx-ax)
			left = math.Min(left, x)
			right = math.Max(right, x)
		}
		for px := int(math.Ceil(left)); float64(px) <= right; px++ {
			c.setPixel(px, py)
		}
	}
}

// Render writes every non-empty cell as a half-block character. Cursor
// moves are only emitted where a run of filled cells starts.
func (c *Canvas) Render(w io.Writer) {
	c.out = c.out[:0]
	for row := 0; row < c.rows; row++ {
		prev := -2
		for col := 0; col < c.cols; col++ {
			cell := c.cells[row*c.cols+col]
			if cell == 0 {
				continue
			}
			if col != prev+1 {
				c.out = appendCursor(c.out, row+1+c.offsetRow, col+1+c.offsetCol)
			}
			c.out = append(c.out, cellGlyphs[cell]...)
			prev = col
		}
	}
	writeChunks(w, c.out)
}

// RenderBorder frames the canvas with box-drawing characters on the sides
// where the terminal has room left over.
func (c *Canvas) RenderBorder(w io.Writer) {
	sides := c.offsetCol >= 1
	ends := c.offsetRow >= 1
	if !sides && !ends {
		return
	}

	left, right := c.offsetCol, c.offsetCol+c.cols+1
	top, bottom := c.offsetRow, c.offsetRow+c.rows+1
	bar := strings.Repeat("─", c.cols)

	var buf []byte
	if ends {
		for _, edge := range []struct {
			row          int
			open, closed string
		}{{top, "┌", "┐"}, {bottom, "└", "┘"}} {
			if sides {
				buf = appendCursor(buf, edge.row, left)
				buf = append(buf, edge.open+bar+edge.closed...)
			} else {
				buf = appendCursor(buf, edge.row, left+1)
				buf = append(buf, bar...)
			}
		}
	}
	if sides {
		for row := c.offsetRow + 1; row <= c.offsetRow+c.rows; row++ {
			buf = appendCursor(buf, row, left)
			buf = append(buf, "│"...)
			buf = appendCursor(buf, row, right)
			buf = append(buf, "│"...)
		}
	}
	writeChunks(w, buf)
}

// LogicalWidth returns the logical width.
func (c *Canvas) LogicalWidth() float64 {
	return c.logicalWidth
}

// LogicalHeight returns the logical height (in sub-pixels).
func (c *Canvas) LogicalHeight() float64 {
	return c.logicalHeight
}

// TerminalWidth returns the canvas width in terminal columns.
func (c *Canvas) TerminalWidth() int {
	return c.cols
}

// TerminalHeight returns the canvas height in terminal rows.
func (c *Canvas) TerminalHeight() int {
	return c.rows
}

// LogicalToTerminal converts logical coordinates to a 1-based cell (col, row)
// inside the canvas, for placing text next to drawn shapes.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px, py := c.toPixel(x, y)
	return px + 1, py/2 + 1
}

// Points returns a scratch slice of n points, valid until the next call.
// Each goroutine needs its own Canvas.
func (c *Canvas) Points(n int) []Point {
	if cap(c.points) < n {
		c.points = make([]Point, n)
	}
	return c.points[:n]
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
