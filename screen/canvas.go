//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package screen

import (
	"math"
	"strings"

	"github.com/timburks/turtle/tree"
	"github.com/timburks/turtle/turtle"
	tt "github.com/timburks/turtle/types"
)

const (
	PenRune    = '*'
	TurtleRune = '@'
	// cells are about twice as tall as they are wide
	aspect = 0.5
)

// A Canvas maps turtle coordinates onto terminal cells. The turtle origin
// is at the center and y grows upward.
type Canvas struct {
	Size  tt.Size
	Scale float64
	cells map[tt.Point]rune
}

func NewCanvas(size tt.Size, scale float64) *Canvas {
	if scale <= 0 {
		scale = 1
	}
	return &Canvas{Size: size, Scale: scale, cells: make(map[tt.Point]rune)}
}

// CellAt returns the cell that holds a turtle position.
func (c *Canvas) CellAt(p turtle.Position) tt.Point {
	row, col := c.offset(p)
	return tt.Point{
		Row: c.Size.Rows/2 + cell(row),
		Col: c.Size.Cols/2 + cell(col),
	}
}

// offset returns a position's distance from the center cell, in cells.
func (c *Canvas) offset(p turtle.Position) (row, col float64) {
	return -p.Y * c.Scale * aspect, p.X * c.Scale
}

// cell rounds an offset to a whole cell. Offsets far off the canvas are
// clamped so the conversion stays in range.
func cell(v float64) int {
	const limit = 1 << 30
	switch {
	case math.IsNaN(v):
		return limit
	case v > limit:
		return limit
	case v < -limit:
		return -limit
	}
	return int(math.Round(v))
}

func (c *Canvas) Contains(p tt.Point) bool {
	return p.Row >= 0 && p.Row < c.Size.Rows && p.Col >= 0 && p.Col < c.Size.Cols
}

func (c *Canvas) set(p tt.Point, r rune) {
	if c.Contains(p) {
		c.cells[p] = r
	}
}

// Plot draws a segment. Segments travelled with the pen up leave no mark.
// Only the part of a segment that crosses the canvas is rasterized.
func (c *Canvas) Plot(s turtle.Segment) {
	if !s.Pen {
		return
	}
	r0, c0 := c.offset(s.From)
	r1, c1 := c.offset(s.To)
	r0, c0, r1, c1, ok := c.clip(r0, c0, r1, c1)
	if !ok {
		return
	}
	from := tt.Point{Row: c.Size.Rows/2 + cell(r0), Col: c.Size.Cols/2 + cell(c0)}
	to := tt.Point{Row: c.Size.Rows/2 + cell(r1), Col: c.Size.Cols/2 + cell(c1)}
	dr := to.Row - from.Row
	dc := to.Col - from.Col
	n := max(abs(dr), abs(dc))
	if n == 0 {
		c.set(from, PenRune)
		return
	}
	for j := 0; j <= n; j++ {
		c.set(tt.Point{
			Row: from.Row + int(math.Round(float64(dr*j)/float64(n))),
			Col: from.Col + int(math.Round(float64(dc*j)/float64(n))),
		}, PenRune)
	}
}

// clip trims a segment, given as offsets from the center cell, to the
// canvas (Liang-Barsky). It reports false when nothing of it is visible.
func (c *Canvas) clip(r0, c0, r1, c1 float64) (float64, float64, float64, float64, bool) {
	for _, v := range []float64{r0, c0, r1, c1} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, 0, 0, 0, false
		}
	}
	minRow := -float64(c.Size.Rows/2) - 0.5
	maxRow := float64(c.Size.Rows-1-c.Size.Rows/2) + 0.5
	minCol := -float64(c.Size.Cols/2) - 0.5
	maxCol := float64(c.Size.Cols-1-c.Size.Cols/2) + 0.5

	dr, dc := r1-r0, c1-c0
	t0, t1 := 0.0, 1.0
	for _, edge := range [4][2]float64{
		{-dc, c0 - minCol},
		{dc, maxCol - c0},
		{-dr, r0 - minRow},
		{dr, maxRow - r0},
	} {
		p, q := edge[0], edge[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = math.Max(t0, t)
		} else {
			if t < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = math.Min(t1, t)
		}
	}
	return r0 + t0*dr, c0 + t0*dc, r0 + t1*dr, c0 + t1*dc, true
}

// Draw plots a turtle's path and marks its position.
func (c *Canvas) Draw(t *turtle.Turtle) {
	for _, s := range t.Path {
		c.Plot(s)
	}
	c.set(c.CellAt(t.Position), TurtleRune)
}

// Cell returns the rune drawn at a cell.
func (c *Canvas) Cell(p tt.Point) (rune, bool) {
	r, ok := c.cells[p]
	return r, ok
}

// Lines renders the canvas as text, one string per row.
func (c *Canvas) Lines() []string {
	lines := make([]string, c.Size.Rows)
	for row := 0; row < c.Size.Rows; row++ {
		var b strings.Builder
		for col := 0; col < c.Size.Cols; col++ {
			if r, ok := c.cells[tt.Point{Row: row, Col: col}]; ok {
				b.WriteRune(r)
			} else {
				b.WriteByte(' ')
			}
		}
		lines[row] = strings.TrimRight(b.String(), " ")
	}
	return lines
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// A TreeLine is one row of the tree panel.
type TreeLine struct {
	Text    string
	Focused bool
}

// TreeLines lists the nodes below root in pre-order, indented by depth,
// with each node's cursor progress.
func TreeLines(t *tree.Tree, root tree.NodeID) []TreeLine {
	var lines []TreeLine
	t.Walk(root, func(id tree.NodeID, depth int) {
		text := strings.Repeat("  ", depth) + t.Describe(id)
		if t.Cursor(id).Kind() == tree.CursorSequential {
			text += " [" + t.Cursor(id).Describe() + "]"
		}
		lines = append(lines, TreeLine{Text: text, Focused: t.Focused(id)})
	})
	return lines
}
