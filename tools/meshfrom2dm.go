package tools

import (
	"path/filepath"

	"github.com/Aquaveo/xmstool-examples/tool"
	"github.com/Aquaveo/xmstool-examples/twodm"
)

// MeshFrom2dm imports a .2dm file as a 2D mesh. The mesh is named by
// the file's MESHNAME card, the file basename when the card is absent,
// or a user-supplied override.
type MeshFrom2dm struct{}

// NewMeshFrom2dm creates the .2dm import tool.
func NewMeshFrom2dm() *MeshFrom2dm { return &MeshFrom2dm{} }

func (t *MeshFrom2dm) Name() string { return "2D Mesh from 2dm" }

func (t *MeshFrom2dm) InitialArguments() []*tool.Argument {
	file := tool.File("two_dm_file", "The .2dm file to import", "2dm geometry files (*.2dm)")
	override := tool.Bool("override_name", "Override the mesh name specified in the .2dm file", false)
	name := tool.String("mesh_name", "Mesh name", "")
	name.Optional = true
	out := tool.Grid("imported_geom", "Imported 2D Mesh/UGrid")
	out.Direction = tool.Output
	out.Hidden = true
	out.Optional = true
	return []*tool.Argument{file, override, name, out}
}

func (t *MeshFrom2dm) ValidateArguments(rt *tool.Runtime, args []*tool.Argument) map[string]string {
	// No validation required for this tool.
	return nil
}

func (t *MeshFrom2dm) EnableArguments(args []*tool.Argument) {
	// The mesh name field only matters when the user chose to ignore
	// the name from the file.
	args[2].Show = args[1].BoolValue()
}

func (t *MeshFrom2dm) Run(rt *tool.Runtime, args []*tool.Argument) error {
	filename := args[0].TextValue()
	rt.Log.Infof("Parsing %s", filename)
	parsed, err := twodm.ReadFile(filename)
	if err != nil {
		return err
	}

	meshName := parsed.MeshName
	if meshName == "" {
		meshName = filepath.Base(filename)
	}
	if args[1].BoolValue() && args[2].TextValue() != "" {
		meshName = args[2].TextValue()
	}

	rt.Log.Info("Building geometry")
	grid, err := parsed.Grid(meshName)
	if err != nil {
		return err
	}

	args[3].SetText(meshName)
	// forceUGrid off so the host creates the grid in its 2D mesh
	// module instead of UGrid.
	return rt.Host.SetOutputGrid(args[3], grid, false)
}
