package tools

import (
	"path/filepath"

	"github.com/Aquaveo/xmstool-examples/tool"
	"github.com/Aquaveo/xmstool-examples/ugrid"
)

// UGridFromXmc imports a .xmc constraint geometry file as a UGrid.
type UGridFromXmc struct{}

// NewUGridFromXmc creates the .xmc import tool.
func NewUGridFromXmc() *UGridFromXmc { return &UGridFromXmc{} }

func (t *UGridFromXmc) Name() string { return "UGrid from xmc" }

func (t *UGridFromXmc) InitialArguments() []*tool.Argument {
	file := tool.File("xmc_file", "The .xmc file to import", "XMS constraint geometry files (*.xmc)")
	out := tool.Grid("imported_geom", "Imported UGrid name")
	out.Direction = tool.Output
	out.Optional = true
	return []*tool.Argument{file, out}
}

func (t *UGridFromXmc) ValidateArguments(rt *tool.Runtime, args []*tool.Argument) map[string]string {
	// No validation required for this tool.
	return nil
}

func (t *UGridFromXmc) EnableArguments(args []*tool.Argument) {
	// No GUI dependencies for this tool.
}

func (t *UGridFromXmc) Run(rt *tool.Runtime, args []*tool.Argument) error {
	filename := args[0].TextValue()
	rt.Log.Infof("Reading %s", filename)
	grid, err := ugrid.ReadXMCFile(filename)
	if err != nil {
		return err
	}
	// Name the output from the user's entry or the file basename.
	if args[1].TextValue() == "" {
		args[1].SetText(filepath.Base(filename))
	}
	return rt.Host.SetOutputGrid(args[1], grid, true)
}
