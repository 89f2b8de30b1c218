package tools

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aquaveo/xmstool-examples/tool"
)

const sampleXMC = `XMCOGRID 1
NAME "constraint grid"
DIM 2
NUMPOINTS 3
0.0 0.0 0.0
1.0 0.0 0.0
0.0 1.0 0.0
CELLSTREAM 5
5 3 0 1 2
`

func writeTempXMC(t *testing.T, name string) string {
	t.Helper()
	tmpFile := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(tmpFile, []byte(sampleXMC), 0644); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}

func TestUGridFromXmcImport(t *testing.T) {
	file := writeTempXMC(t, "grid.xmc")
	h := newMemHost()
	r := tool.NewRunner(NewUGridFromXmc(), h)
	require.NoError(t, r.SetText("xmc_file", file))
	require.NoError(t, r.Execute())

	g, ok := h.outGrids["imported_geom"]
	require.True(t, ok)
	assert.Equal(t, "constraint grid", g.Name)
	assert.Equal(t, 1, g.NumCells())
	assert.True(t, h.forceUGrid)
	// No user-supplied name, so the file basename names the output.
	assert.Equal(t, "grid.xmc", r.Argument("imported_geom").TextValue())
}

func TestUGridFromXmcUserName(t *testing.T) {
	file := writeTempXMC(t, "grid.xmc")
	h := newMemHost()
	r := tool.NewRunner(NewUGridFromXmc(), h)
	require.NoError(t, r.SetText("xmc_file", file))
	require.NoError(t, r.SetText("imported_geom", "Renamed Grid"))
	require.NoError(t, r.Execute())

	assert.Equal(t, "Renamed Grid", r.Argument("imported_geom").TextValue())
}

func TestUGridFromXmcBadFile(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "bad.xmc")
	require.NoError(t, os.WriteFile(tmpFile, []byte("not a grid\n"), 0644))

	h := newMemHost()
	r := tool.NewRunner(NewUGridFromXmc(), h)
	require.NoError(t, r.SetText("xmc_file", tmpFile))
	err := r.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a .xmc grid file")
}
