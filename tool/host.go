package tool

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Aquaveo/xmstool-examples/dataset"
	"github.com/Aquaveo/xmstool-examples/ugrid"
)

// FileHost is a directory-backed Host used by the CLI and tests.
// Dataset references resolve to .dat files under Dir, output datasets
// are persisted as .dat files and output grids as .xmc files.
type FileHost struct {
	Dir string

	datasets map[string]dataset.Reader
	grids    map[string]*ugrid.Grid
}

// NewFileHost creates a host rooted at dir.
func NewFileHost(dir string) *FileHost {
	return &FileHost{
		Dir:      dir,
		datasets: make(map[string]dataset.Reader),
		grids:    make(map[string]*ugrid.Grid),
	}
}

// resolve turns a reference into a path under the host directory.
// Absolute references are used as-is.
func (h *FileHost) resolve(ref string) string {
	if filepath.IsAbs(ref) || h.Dir == "" {
		return ref
	}
	return filepath.Join(h.Dir, ref)
}

func (h *FileHost) OpenDataset(ref string) (dataset.Reader, error) {
	return dataset.ReadDATFile(h.resolve(ref))
}

func (h *FileHost) NewDatasetWriter(meta dataset.Meta) (dataset.Writer, error) {
	return dataset.NewMemory(meta), nil
}

func (h *FileHost) SetOutputDataset(arg *Argument, ds dataset.Reader) error {
	name := arg.TextValue()
	if name == "" {
		name = ds.Meta().Name
	}
	if name == "" {
		return fmt.Errorf("output dataset for %q has no name", arg.Name)
	}
	path := h.resolve(safeName(name) + ".dat")
	if err := dataset.WriteDATFile(path, ds); err != nil {
		return err
	}
	h.datasets[name] = ds
	return nil
}

func (h *FileHost) SetOutputGrid(arg *Argument, g *ugrid.Grid, forceUGrid bool) error {
	name := arg.TextValue()
	if name == "" {
		name = g.Name
	}
	if name == "" {
		return fmt.Errorf("output grid for %q has no name", arg.Name)
	}
	// forceUGrid only steers module placement in a real host; the
	// grid is persisted with its own dimensionality either way.
	path := h.resolve(safeName(name) + ".xmc")
	if err := ugrid.WriteXMCFile(path, g); err != nil {
		return err
	}
	h.grids[name] = g
	return nil
}

// OutputDataset returns a dataset handed back by a tool, by name.
func (h *FileHost) OutputDataset(name string) (dataset.Reader, bool) {
	ds, ok := h.datasets[name]
	return ds, ok
}

// OutputGrid returns a grid handed back by a tool, by name.
func (h *FileHost) OutputGrid(name string) (*ugrid.Grid, bool) {
	g, ok := h.grids[name]
	return g, ok
}

// safeName maps an output name to a filename, replacing anything that
// is not portable across filesystems.
func safeName(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return '_'
		}
	}, name)
}
