package tool

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// ValidationError aggregates per-argument error messages from a failed
// validation pass. No execution happens while it is non-empty.
type ValidationError map[string]string

func (e ValidationError) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s: %s", k, e[k])
	}
	return "invalid arguments: " + strings.Join(parts, "; ")
}

// Runner binds a tool to a host, tracks argument values, and drives
// the validate-then-run lifecycle.
type Runner struct {
	tool Tool
	args []*Argument
	rt   *Runtime
}

// NewRunner prepares a tool for execution against a host. The tool's
// declared arguments are installed and its visibility rules evaluated
// once for the defaults.
func NewRunner(t Tool, h Host) *Runner {
	r := &Runner{
		tool: t,
		args: t.InitialArguments(),
		rt: &Runtime{
			Host: h,
			Log:  logrus.WithField("tool", t.Name()),
		},
	}
	t.EnableArguments(r.args)
	return r
}

// Arguments returns the tool's argument slots.
func (r *Runner) Arguments() []*Argument { return r.args }

// Argument finds an argument slot by name.
func (r *Runner) Argument(name string) *Argument {
	for _, a := range r.args {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// SetText assigns a string-form value to the named argument and
// re-evaluates argument visibility.
func (r *Runner) SetText(name, value string) error {
	a := r.Argument(name)
	if a == nil {
		return fmt.Errorf("tool %q has no argument %q", r.tool.Name(), name)
	}
	if a.Type == BoolArg {
		return fmt.Errorf("argument %q is boolean", name)
	}
	a.SetText(value)
	r.tool.EnableArguments(r.args)
	return nil
}

// SetBool assigns a boolean value to the named argument and
// re-evaluates argument visibility.
func (r *Runner) SetBool(name string, value bool) error {
	a := r.Argument(name)
	if a == nil {
		return fmt.Errorf("tool %q has no argument %q", r.tool.Name(), name)
	}
	if a.Type != BoolArg {
		return fmt.Errorf("argument %q is not boolean", name)
	}
	a.SetBool(value)
	r.tool.EnableArguments(r.args)
	return nil
}

// Apply assigns a batch of argument values, as decoded from a YAML
// arguments file or a host dialog.
func (r *Runner) Apply(values map[string]interface{}) error {
	for name, v := range values {
		switch v := v.(type) {
		case bool:
			if err := r.SetBool(name, v); err != nil {
				return err
			}
		case string:
			if err := r.SetText(name, v); err != nil {
				return err
			}
		default:
			if err := r.SetText(name, fmt.Sprint(v)); err != nil {
				return err
			}
		}
	}
	return nil
}

// Validate collects all argument errors: required inputs with no value
// plus whatever the tool's own validation reports. Tool messages win
// when both name the same argument.
func (r *Runner) Validate() ValidationError {
	errs := ValidationError{}
	for _, a := range r.args {
		if a.Direction == Input && !a.Optional && !a.IsSet() && a.Type != BoolArg {
			errs[a.Name] = "required argument has no value"
		}
	}
	for name, msg := range r.tool.ValidateArguments(r.rt, r.args) {
		errs[name] = msg
	}
	return errs
}

// Execute validates and runs the tool. Validation failures are
// returned as a ValidationError with every problem, never one at a
// time.
func (r *Runner) Execute() error {
	if errs := r.Validate(); len(errs) > 0 {
		return errs
	}
	r.rt.Log.Infof("Running %s", r.tool.Name())
	return r.tool.Run(r.rt, r.args)
}
