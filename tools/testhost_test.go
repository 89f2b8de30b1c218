package tools

import (
	"fmt"

	"github.com/Aquaveo/xmstool-examples/dataset"
	"github.com/Aquaveo/xmstool-examples/tool"
	"github.com/Aquaveo/xmstool-examples/ugrid"
)

// memHost is an in-memory tool.Host for exercising tools without
// touching the filesystem.
type memHost struct {
	datasets map[string]dataset.Reader

	outDatasets map[string]dataset.Reader
	outGrids    map[string]*ugrid.Grid
	forceUGrid  bool
}

func newMemHost() *memHost {
	return &memHost{
		datasets:    make(map[string]dataset.Reader),
		outDatasets: make(map[string]dataset.Reader),
		outGrids:    make(map[string]*ugrid.Grid),
	}
}

func (h *memHost) OpenDataset(ref string) (dataset.Reader, error) {
	ds, ok := h.datasets[ref]
	if !ok {
		return nil, fmt.Errorf("no dataset %q", ref)
	}
	return ds, nil
}

func (h *memHost) NewDatasetWriter(meta dataset.Meta) (dataset.Writer, error) {
	return dataset.NewMemory(meta), nil
}

func (h *memHost) SetOutputDataset(arg *tool.Argument, ds dataset.Reader) error {
	h.outDatasets[arg.Name] = ds
	return nil
}

func (h *memHost) SetOutputGrid(arg *tool.Argument, g *ugrid.Grid, forceUGrid bool) error {
	h.outGrids[arg.Name] = g
	h.forceUGrid = forceUGrid
	return nil
}
