// Package ugrid holds the unstructured grid model shared by the import
// tools: a dense coordinate table plus a flat cellstream describing cell
// topology.
package ugrid

import (
	"fmt"
)

// CellType tags cells inside a cellstream. Values follow the VTK cell
// type numbering so streams can be handed to VTK-compatible consumers
// without translation.
type CellType int

const (
	Triangle CellType = 5
	Quad     CellType = 9
)

func (c CellType) String() string {
	switch c {
	case Triangle:
		return "Triangle"
	case Quad:
		return "Quad"
	default:
		return fmt.Sprintf("CellType(%d)", int(c))
	}
}

// PointCount returns the number of points a cell of this type carries,
// or 0 for unknown types.
func (c CellType) PointCount() int {
	switch c {
	case Triangle:
		return 3
	case Quad:
		return 4
	default:
		return 0
	}
}

// ForPointCount returns the cell type for a point count. Only triangles
// and quads exist in the formats we import.
func ForPointCount(n int) (CellType, error) {
	switch n {
	case 3:
		return Triangle, nil
	case 4:
		return Quad, nil
	default:
		return 0, fmt.Errorf("no cell type with %d points", n)
	}
}

// Grid is an unstructured grid: locations indexed 0..N-1 and a
// cellstream of (type, point count, point indices...) tuples
// concatenated in sequence. Cell point indices reference the Locations
// slice.
type Grid struct {
	Name       string
	TwoD       bool // hint that the host should place the grid in its 2D mesh module
	Locations  [][3]float64
	Cellstream []int
}

// New builds a Grid after validating the cellstream against the
// location table.
func New(name string, locations [][3]float64, cellstream []int) (*Grid, error) {
	g := &Grid{Name: name, Locations: locations, Cellstream: cellstream}
	if err := g.validate(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Grid) validate() error {
	i := 0
	for i < len(g.Cellstream) {
		ct := CellType(g.Cellstream[i])
		want := ct.PointCount()
		if want == 0 {
			return fmt.Errorf("cellstream: unknown cell type %d at offset %d", g.Cellstream[i], i)
		}
		if i+1 >= len(g.Cellstream) {
			return fmt.Errorf("cellstream: truncated cell at offset %d", i)
		}
		n := g.Cellstream[i+1]
		if n != want {
			return fmt.Errorf("cellstream: %s cell with %d points at offset %d", ct, n, i)
		}
		if i+2+n > len(g.Cellstream) {
			return fmt.Errorf("cellstream: truncated cell at offset %d", i)
		}
		for _, idx := range g.Cellstream[i+2 : i+2+n] {
			if idx < 0 || idx >= len(g.Locations) {
				return fmt.Errorf("cellstream: point index %d out of range [0,%d) at offset %d",
					idx, len(g.Locations), i)
			}
		}
		i += 2 + n
	}
	return nil
}

// NumPoints returns the number of locations in the grid.
func (g *Grid) NumPoints() int { return len(g.Locations) }

// NumCells walks the cellstream and counts cells.
func (g *Grid) NumCells() int {
	count := 0
	for i := 0; i < len(g.Cellstream); {
		count++
		i += 2 + g.Cellstream[i+1]
	}
	return count
}

// Cells expands the cellstream into per-cell point index slices. The
// returned slices alias the cellstream.
func (g *Grid) Cells() []Cell {
	cells := make([]Cell, 0, g.NumCells())
	for i := 0; i < len(g.Cellstream); {
		n := g.Cellstream[i+1]
		cells = append(cells, Cell{
			Type:   CellType(g.Cellstream[i]),
			Points: g.Cellstream[i+2 : i+2+n],
		})
		i += 2 + n
	}
	return cells
}

// Cell is one expanded cellstream entry.
type Cell struct {
	Type   CellType
	Points []int
}
