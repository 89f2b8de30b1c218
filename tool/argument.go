// Package tool is the plugin adapter framework: tools declare typed
// arguments, validate them, and hand their results to a host through
// narrow capability interfaces.
package tool

import "fmt"

// IoDirection marks an argument as tool input or tool output.
type IoDirection int

const (
	Input IoDirection = iota
	Output
)

func (d IoDirection) String() string {
	if d == Output {
		return "output"
	}
	return "input"
}

// ArgType is the kind of value an argument slot carries.
type ArgType int

const (
	FileArg ArgType = iota
	DatasetArg
	GridArg
	StringArg
	BoolArg
)

func (t ArgType) String() string {
	switch t {
	case FileArg:
		return "file"
	case DatasetArg:
		return "dataset"
	case GridArg:
		return "grid"
	case StringArg:
		return "string"
	case BoolArg:
		return "bool"
	default:
		return fmt.Sprintf("ArgType(%d)", int(t))
	}
}

// DatasetFilter restricts which datasets a dataset argument accepts.
type DatasetFilter int

const (
	AllowAll DatasetFilter = iota
	AllowOnlyScalars
)

// Argument is one declared tool argument slot. Tools build their slots
// with the constructors below and adjust the exported fields for
// direction, visibility and filters.
type Argument struct {
	Name        string
	Description string
	Type        ArgType
	Direction   IoDirection
	Optional    bool
	Hidden      bool // never shown in a host dialog
	Show        bool // runtime visibility, toggled by EnableArguments
	FileFilter  string
	Filter      DatasetFilter

	text    string
	boolVal bool
	set     bool
}

// File declares a file path input argument with a host dialog filter.
func File(name, description, fileFilter string) *Argument {
	return &Argument{Name: name, Description: description, Type: FileArg, Show: true,
		FileFilter: fileFilter}
}

// Dataset declares a dataset reference argument.
func Dataset(name, description string) *Argument {
	return &Argument{Name: name, Description: description, Type: DatasetArg, Show: true}
}

// Grid declares a grid reference argument.
func Grid(name, description string) *Argument {
	return &Argument{Name: name, Description: description, Type: GridArg, Show: true}
}

// String declares a string argument with a default value.
func String(name, description, value string) *Argument {
	return &Argument{Name: name, Description: description, Type: StringArg, Show: true,
		text: value, set: value != ""}
}

// Bool declares a boolean argument with a default value.
func Bool(name, description string, value bool) *Argument {
	return &Argument{Name: name, Description: description, Type: BoolArg, Show: true,
		boolVal: value}
}

// TextValue returns the argument's string form: the path for files, the
// reference for datasets and grids, the value for strings.
func (a *Argument) TextValue() string { return a.text }

// BoolValue returns the value of a boolean argument.
func (a *Argument) BoolValue() bool { return a.boolVal }

// IsSet reports whether a value was supplied for the argument.
func (a *Argument) IsSet() bool { return a.set }

// SetText assigns a string-typed value.
func (a *Argument) SetText(v string) {
	a.text = v
	a.set = true
}

// SetBool assigns a boolean value.
func (a *Argument) SetBool(v bool) {
	a.boolVal = v
	a.set = true
}
