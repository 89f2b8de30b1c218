package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aquaveo/xmstool-examples/ugrid"
)

func TestRunMeshFrom2dm(t *testing.T) {
	dir := t.TempDir()
	mesh := `MESHNAME "cli mesh"
ND 1 0.0 0.0 0.0
ND 2 1.0 0.0 0.0
ND 3 0.0 1.0 0.0
E3T 1 1 2 3
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cli.2dm"), []byte(mesh), 0644))
	argsFile := filepath.Join(dir, "args.yaml")
	argsYAML := "two_dm_file: " + filepath.Join(dir, "cli.2dm") + "\n"
	require.NoError(t, os.WriteFile(argsFile, []byte(argsYAML), 0644))

	rootCmd.SetArgs([]string{"run", "--tool", "mesh-from-2dm",
		"--args", argsFile, "--dir", dir})
	require.NoError(t, rootCmd.Execute())

	g, err := ugrid.ReadXMCFile(filepath.Join(dir, "cli_mesh.xmc"))
	require.NoError(t, err)
	assert.Equal(t, "cli mesh", g.Name)
	assert.Equal(t, 1, g.NumCells())
}

func TestRunUnknownTool(t *testing.T) {
	rootCmd.SetArgs([]string{"run", "--tool", "nope"})
	rootCmd.SilenceUsage = true
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown tool "nope"`)
}
