package ugrid

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// The .xmc interchange format is line oriented ASCII:
//
//	XMCOGRID 1
//	NAME "my grid"
//	DIM 2
//	NUMPOINTS <n>
//	<x> <y> <z>          (n lines)
//	CELLSTREAM <m>
//	<int> ...            (until m integers are consumed)
//
// Cards are whitespace delimited. DIM and NAME are optional and may
// appear in either order before NUMPOINTS.

const xmcMagic = "XMCOGRID"

// ReadXMCFile reads a constrained grid from a .xmc file.
func ReadXMCFile(filename string) (*Grid, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ReadXMC(file)
}

// ReadXMC reads a grid from .xmc format text.
func ReadXMC(r io.Reader) (*Grid, error) {
	scanner := bufio.NewScanner(r)

	line, ok := nextLine(scanner)
	if !ok {
		return nil, fmt.Errorf("empty .xmc input")
	}
	fields := strings.Fields(line)
	if fields[0] != xmcMagic {
		return nil, fmt.Errorf("not a .xmc grid file: %q", line)
	}
	if len(fields) < 2 || fields[1] != "1" {
		return nil, fmt.Errorf("unsupported .xmc version: %q", line)
	}

	var (
		name       string
		twoD       bool
		locations  [][3]float64
		cellstream []int
	)

	for {
		line, ok = nextLine(scanner)
		if !ok {
			break
		}
		fields = strings.Fields(line)
		switch strings.ToUpper(fields[0]) {
		case "NAME":
			name = strings.Trim(strings.TrimSpace(line[len(fields[0]):]), `"`)

		case "DIM":
			if len(fields) < 2 {
				return nil, fmt.Errorf("unable to parse dimension: %s", line)
			}
			dim, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, fmt.Errorf("unable to parse dimension: %s", line)
			}
			twoD = dim == 2

		case "NUMPOINTS":
			if len(fields) < 2 {
				return nil, fmt.Errorf("unable to parse point count: %s", line)
			}
			n, err := strconv.Atoi(fields[1])
			if err != nil || n < 0 {
				return nil, fmt.Errorf("unable to parse point count: %s", line)
			}
			locations = make([][3]float64, 0, n)
			for i := 0; i < n; i++ {
				line, ok = nextLine(scanner)
				if !ok {
					return nil, fmt.Errorf("unexpected EOF reading point %d of %d", i+1, n)
				}
				coords := strings.Fields(line)
				if len(coords) < 3 {
					return nil, fmt.Errorf("unable to parse point: %s", line)
				}
				var loc [3]float64
				for j := 0; j < 3; j++ {
					loc[j], err = strconv.ParseFloat(coords[j], 64)
					if err != nil {
						return nil, fmt.Errorf("unable to parse point: %s", line)
					}
				}
				locations = append(locations, loc)
			}

		case "CELLSTREAM":
			if len(fields) < 2 {
				return nil, fmt.Errorf("unable to parse cellstream length: %s", line)
			}
			m, err := strconv.Atoi(fields[1])
			if err != nil || m < 0 {
				return nil, fmt.Errorf("unable to parse cellstream length: %s", line)
			}
			cellstream = make([]int, 0, m)
			for len(cellstream) < m {
				line, ok = nextLine(scanner)
				if !ok {
					return nil, fmt.Errorf("unexpected EOF reading cellstream: have %d of %d values",
						len(cellstream), m)
				}
				for _, word := range strings.Fields(line) {
					v, err := strconv.Atoi(word)
					if err != nil {
						return nil, fmt.Errorf("unable to parse cellstream value: %s", line)
					}
					cellstream = append(cellstream, v)
				}
			}
			if len(cellstream) > m {
				return nil, fmt.Errorf("cellstream longer than declared length %d", m)
			}

		default:
			// Unrecognized cards are skipped for format compatibility.
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	g, err := New(name, locations, cellstream)
	if err != nil {
		return nil, err
	}
	g.TwoD = twoD
	return g, nil
}

// WriteXMCFile writes the grid to filename in .xmc format.
func WriteXMCFile(filename string, g *Grid) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteXMC(file, g)
}

// WriteXMC writes the grid as .xmc format text.
func WriteXMC(w io.Writer, g *Grid) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s 1\n", xmcMagic)
	if g.Name != "" {
		fmt.Fprintf(bw, "NAME %q\n", g.Name)
	}
	dim := 3
	if g.TwoD {
		dim = 2
	}
	fmt.Fprintf(bw, "DIM %d\n", dim)
	fmt.Fprintf(bw, "NUMPOINTS %d\n", len(g.Locations))
	for _, loc := range g.Locations {
		fmt.Fprintf(bw, "%g %g %g\n", loc[0], loc[1], loc[2])
	}
	fmt.Fprintf(bw, "CELLSTREAM %d\n", len(g.Cellstream))
	for _, cell := range g.Cells() {
		fmt.Fprintf(bw, "%d %d", int(cell.Type), len(cell.Points))
		for _, p := range cell.Points {
			fmt.Fprintf(bw, " %d", p)
		}
		fmt.Fprintln(bw)
	}
	return bw.Flush()
}

// nextLine advances to the next non-blank line, trimmed of surrounding
// whitespace.
func nextLine(scanner *bufio.Scanner) (string, bool) {
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			return line, true
		}
	}
	return "", false
}
