package tool

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTool is a minimal tool for exercising the runner.
type fakeTool struct {
	validateErrs map[string]string
	ran          bool
}

func (t *fakeTool) Name() string { return "Fake Tool" }

func (t *fakeTool) InitialArguments() []*Argument {
	file := File("in_file", "An input file", "All files (*.*)")
	flag := Bool("flag", "Toggles the detail field", false)
	detail := String("detail", "Only used when flag is set", "")
	detail.Optional = true
	out := Grid("out_grid", "Output")
	out.Direction = Output
	out.Optional = true
	return []*Argument{file, flag, detail, out}
}

func (t *fakeTool) ValidateArguments(rt *Runtime, args []*Argument) map[string]string {
	return t.validateErrs
}

func (t *fakeTool) EnableArguments(args []*Argument) {
	args[2].Show = args[1].BoolValue()
}

func (t *fakeTool) Run(rt *Runtime, args []*Argument) error {
	t.ran = true
	return nil
}

func TestRunnerRequiredArguments(t *testing.T) {
	ft := &fakeTool{}
	r := NewRunner(ft, NewFileHost(t.TempDir()))

	err := r.Execute()
	require.Error(t, err)
	verrs, ok := err.(ValidationError)
	require.True(t, ok)
	assert.Equal(t, "required argument has no value", verrs["in_file"])
	assert.False(t, ft.ran)

	require.NoError(t, r.SetText("in_file", "some.file"))
	require.NoError(t, r.Execute())
	assert.True(t, ft.ran)
}

func TestRunnerCollectsAllErrors(t *testing.T) {
	ft := &fakeTool{validateErrs: map[string]string{
		"flag":   "bad flag",
		"detail": "bad detail",
	}}
	r := NewRunner(ft, NewFileHost(t.TempDir()))

	errs := r.Validate()
	// Runner and tool errors are reported together, all at once.
	assert.Len(t, errs, 3)
	assert.Contains(t, errs, "in_file")
	assert.Contains(t, errs, "flag")
	assert.Contains(t, errs, "detail")
	assert.Contains(t, errs.Error(), "detail: bad detail")
}

func TestRunnerEnableArguments(t *testing.T) {
	r := NewRunner(&fakeTool{}, NewFileHost(t.TempDir()))
	// Visibility rules run once for the declared defaults.
	assert.False(t, r.Argument("detail").Show)

	require.NoError(t, r.SetBool("flag", true))
	assert.True(t, r.Argument("detail").Show)

	require.NoError(t, r.SetBool("flag", false))
	assert.False(t, r.Argument("detail").Show)
}

func TestRunnerApply(t *testing.T) {
	r := NewRunner(&fakeTool{}, NewFileHost(t.TempDir()))
	err := r.Apply(map[string]interface{}{
		"in_file": "mesh.2dm",
		"flag":    true,
		"detail":  "a name",
	})
	require.NoError(t, err)
	assert.Equal(t, "mesh.2dm", r.Argument("in_file").TextValue())
	assert.True(t, r.Argument("flag").BoolValue())
	assert.True(t, r.Argument("detail").Show)

	err = r.Apply(map[string]interface{}{"nope": 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no argument "nope"`)
}

func TestRunnerTypeMismatch(t *testing.T) {
	r := NewRunner(&fakeTool{}, NewFileHost(t.TempDir()))
	require.Error(t, r.SetText("flag", "yes"))
	require.Error(t, r.SetBool("in_file", true))
}

func TestValidationErrorMessage(t *testing.T) {
	err := ValidationError{"b": "second", "a": "first"}
	// Deterministic ordering by argument name.
	assert.Equal(t, "invalid arguments: a: first; b: second", err.Error())
	assert.Equal(t, fmt.Sprint(err), err.Error())
}
