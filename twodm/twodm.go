// Package twodm reads SMS .2dm mesh geometry files.
//
// The format is line oriented ASCII with whitespace delimited cards:
//
//	MESHNAME "name"
//	ND <id> <x> <y> <z>
//	E3T <id> <p1> <p2> <p3>
//	E4Q <id> <p1> <p2> <p3> <p4>
//
// Card keywords are case insensitive and blank lines are ignored. Node
// IDs may have gaps; they are remapped to dense zero-based indices when
// the grid is assembled.
package twodm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Aquaveo/xmstool-examples/ugrid"
)

// A word for each point plus the card and the node or cell ID.
const minNodeCards = 5

// Node is one ND card: an ID and a 3-D location.
type Node struct {
	ID      int
	X, Y, Z float64
}

// File is the parsed contents of a .2dm file. Nodes are in first-seen
// order. Cells hold node IDs (not indices), 3 per triangle and 4 per
// quad, in source order.
type File struct {
	MeshName string
	Nodes    []Node
	Cells    [][]int

	nodeSlot map[int]int // node ID -> position in Nodes
}

// ReadFile parses the named .2dm file.
func ReadFile(filename string) (*File, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Read(file)
}

// Read parses .2dm format text. Malformed node or cell cards abort the
// parse with an error naming the offending line.
func Read(r io.Reader) (*File, error) {
	f := &File{nodeSlot: make(map[int]int)}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if name, ok := meshName(line); ok {
			f.MeshName = name
			continue
		}
		fields := strings.Fields(line)
		switch strings.ToLower(fields[0]) {
		case "nd":
			if err := f.addNode(line, fields); err != nil {
				return nil, err
			}
		case "e3t":
			if err := f.addCell(line, fields, 3); err != nil {
				return nil, err
			}
		case "e4q":
			if err := f.addCell(line, fields, 4); err != nil {
				return nil, err
			}
		default:
			// Other cards (MESH2D, material counts, nodestrings...)
			// carry nothing we import.
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return f, nil
}

// meshName matches a MESHNAME card and extracts the quoted or bare
// name.
func meshName(line string) (string, bool) {
	const card = "meshname"
	if len(line) < len(card) || strings.ToLower(line[:len(card)]) != card {
		return "", false
	}
	return strings.Trim(strings.TrimSpace(line[len(card):]), `"`), true
}

// addNode parses an ND card: ND <ID> <X> <Y> <Z>. A repeated ID
// overwrites the earlier location but keeps its first-seen order.
func (f *File) addNode(line string, fields []string) error {
	if len(fields) < minNodeCards {
		return fmt.Errorf("unable to parse node: %s", line)
	}
	id, err := strconv.Atoi(fields[1])
	if err != nil {
		return fmt.Errorf("unable to parse node: %s", line)
	}
	var coords [3]float64
	for i := 0; i < 3; i++ {
		coords[i], err = strconv.ParseFloat(fields[i+2], 64)
		if err != nil {
			return fmt.Errorf("unable to parse node: %s", line)
		}
	}
	node := Node{ID: id, X: coords[0], Y: coords[1], Z: coords[2]}
	if slot, seen := f.nodeSlot[id]; seen {
		f.Nodes[slot] = node
		return nil
	}
	f.nodeSlot[id] = len(f.Nodes)
	f.Nodes = append(f.Nodes, node)
	return nil
}

// addCell parses an E3T or E4Q card. The cell ID is parsed but
// discarded; connectivity order is preserved.
func (f *File) addCell(line string, fields []string, numPts int) error {
	if len(fields) < numPts+2 {
		return fmt.Errorf("unable to parse element: %s", line)
	}
	if _, err := strconv.Atoi(fields[1]); err != nil {
		return fmt.Errorf("unable to parse element: %s", line)
	}
	cell := make([]int, numPts)
	for i := 0; i < numPts; i++ {
		id, err := strconv.Atoi(fields[i+2])
		if err != nil {
			return fmt.Errorf("unable to parse element: %s", line)
		}
		cell[i] = id
	}
	f.Cells = append(f.Cells, cell)
	return nil
}

// Grid assembles the parsed nodes and cells into an unstructured grid.
// Locations are emitted in node first-seen order and node IDs are
// remapped to dense zero-based indices, so files with ID gaps assemble
// correctly. A cell referencing a node ID absent from the node table
// fails the assembly.
func (f *File) Grid(name string) (*ugrid.Grid, error) {
	locations := make([][3]float64, len(f.Nodes))
	nodeIndex := make(map[int]int, len(f.Nodes))
	for i, node := range f.Nodes {
		nodeIndex[node.ID] = i
		locations[i] = [3]float64{node.X, node.Y, node.Z}
	}

	cellstream := make([]int, 0, 6*len(f.Cells))
	for _, cell := range f.Cells {
		ct, err := ugrid.ForPointCount(len(cell))
		if err != nil {
			return nil, err
		}
		cellstream = append(cellstream, int(ct), len(cell))
		for _, id := range cell {
			idx, ok := nodeIndex[id]
			if !ok {
				return nil, fmt.Errorf("element references unknown node %d", id)
			}
			cellstream = append(cellstream, idx)
		}
	}

	g, err := ugrid.New(name, locations, cellstream)
	if err != nil {
		return nil, err
	}
	g.TwoD = true
	return g, nil
}
