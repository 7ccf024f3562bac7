// Package brush provides the disk-shaped cell selection used to paint
// temperatures onto the grid.
package brush

// Cell is a grid coordinate covered by a brush application.
type Cell struct {
	X, Y int
}

// Selection is a brush placement: a center cell and a non-negative radius.
// The brush covers every cell within Euclidean distance Radius of the
// center (a filled disk, not a square).
type Selection struct {
	X, Y   int
	Radius int
}

// Contains reports whether (x, y) falls inside the brush disk. Distances
// are compared squared, so no square roots are taken.
func (s Selection) Contains(x, y int) bool {
	if s.Radius < 0 {
		return false
	}
	dx := x - s.X
	dy := y - s.Y
	return dx*dx+dy*dy <= s.Radius*s.Radius
}

// Cells enumerates the brush disk in row-major order. Radius 0 yields just
// the center cell. Cells outside the grid are included; the temperature
// manager treats writes to them as no-ops.
func (s Selection) Cells() []Cell {
	if s.Radius < 0 {
		return nil
	}

	r := s.Radius
	cells := make([]Cell, 0, (2*r+1)*(2*r+1))
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				cells = append(cells, Cell{X: s.X + dx, Y: s.Y + dy})
			}
		}
	}
	return cells
}

// Cells returns the disk of cells around (cx, cy) with the given radius.
func Cells(cx, cy, radius int) []Cell {
	return Selection{X: cx, Y: cy, Radius: radius}.Cells()
}
