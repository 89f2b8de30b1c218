package tool

import (
	"github.com/sirupsen/logrus"

	"github.com/Aquaveo/xmstool-examples/dataset"
	"github.com/Aquaveo/xmstool-examples/ugrid"
)

// Tool is the contract every plugin tool presents to its host.
type Tool interface {
	// Name is the user-facing tool name.
	Name() string

	// InitialArguments declares the tool's argument slots.
	InitialArguments() []*Argument

	// ValidateArguments inspects the arguments before execution and
	// returns a map from argument name to error message. All errors
	// are collected and reported together; Run is only called when
	// the map is empty.
	ValidateArguments(rt *Runtime, args []*Argument) map[string]string

	// EnableArguments shows or hides arguments based on the current
	// values. The runner re-evaluates it after every argument change.
	EnableArguments(args []*Argument)

	// Run executes the tool. A returned error aborts the run and is
	// surfaced to the user as-is.
	Run(rt *Runtime, args []*Argument) error
}

// Runtime is what a tool sees of its surroundings during validation
// and execution.
type Runtime struct {
	Host Host
	Log  *logrus.Entry
}

// Host is the capability surface for dataset and grid exchange with
// the hosting application. Datasets and grids are host-owned; tools
// only reach them through these operations.
type Host interface {
	// OpenDataset resolves a dataset reference from a dataset
	// argument to a reader.
	OpenDataset(ref string) (dataset.Reader, error)

	// NewDatasetWriter creates a writer for an output dataset with
	// the given attributes.
	NewDatasetWriter(meta dataset.Meta) (dataset.Writer, error)

	// SetOutputDataset hands a finished dataset back to the host for
	// the given output argument.
	SetOutputDataset(arg *Argument, ds dataset.Reader) error

	// SetOutputGrid hands a grid back to the host for the given
	// output argument. With forceUGrid unset a 2D grid may be placed
	// in the host's 2D mesh module instead of its UGrid module.
	SetOutputGrid(arg *Argument, g *ugrid.Grid, forceUGrid bool) error
}
