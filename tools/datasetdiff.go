// Package tools contains the example plugin tools: dataset difference,
// dataset import from .dat, 2D mesh import from .2dm, and UGrid import
// from .xmc.
package tools

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/Aquaveo/xmstool-examples/dataset"
	"github.com/Aquaveo/xmstool-examples/tool"
)

// DatasetDiff computes the elementwise difference of two scalar
// datasets on the same geometry, timestep by timestep. Locations that
// are null in either input stay null in the output.
type DatasetDiff struct {
	reader1 dataset.Reader
	reader2 dataset.Reader
}

// NewDatasetDiff creates the dataset difference tool.
func NewDatasetDiff() *DatasetDiff { return &DatasetDiff{} }

func (t *DatasetDiff) Name() string { return "Compute Dataset Difference" }

func (t *DatasetDiff) InitialArguments() []*tool.Argument {
	ds1 := tool.Dataset("input_dataset1", "First input scalar dataset")
	ds1.Filter = tool.AllowOnlyScalars
	ds2 := tool.Dataset("input_dataset2", "Second input scalar dataset")
	ds2.Filter = tool.AllowOnlyScalars
	out := tool.Dataset("output_dataset", "Diff Dataset")
	out.Direction = tool.Output
	out.Hidden = true
	out.Optional = true
	return []*tool.Argument{ds1, ds2, out}
}

func (t *DatasetDiff) ValidateArguments(rt *tool.Runtime, args []*tool.Argument) map[string]string {
	errors := map[string]string{}
	t.reader1 = validateInputDataset(rt, args[0], errors)
	t.reader2 = validateInputDataset(rt, args[1], errors)
	if t.reader1 == nil || t.reader2 == nil {
		return errors
	}
	if t.reader1.Meta().GeomID != t.reader2.Meta().GeomID {
		errors[args[0].Name] = "Datasets must be on the same geometry."
	}
	if t.reader1.NumValues() != t.reader2.NumValues() {
		errors[args[0].Name] = "Datasets must have the same dataset location."
	}
	if t.reader1.NumTimes() != t.reader2.NumTimes() {
		errors[args[0].Name] = "Datasets must have matching number of timesteps."
	}
	return errors
}

func (t *DatasetDiff) EnableArguments(args []*tool.Argument) {
	// No GUI dependencies for this tool.
}

func (t *DatasetDiff) Run(rt *tool.Runtime, args []*tool.Argument) error {
	meta1, meta2 := t.reader1.Meta(), t.reader2.Meta()

	// If either input defines a null value, adopt one so null
	// locations can be marked in the output. The first dataset's
	// sentinel wins when both define one.
	nullValue := meta1.NullValue
	if nullValue == nil {
		nullValue = meta2.NullValue
	}

	writer, err := rt.Host.NewDatasetWriter(dataset.Meta{
		Name:      fmt.Sprintf("%s - %s", meta1.Name, meta2.Name),
		ObjType:   meta1.ObjType,
		GeomID:    meta1.GeomID,
		Location:  meta1.Location,
		NullValue: nullValue,
		RefTime:   meta1.RefTime,
		TimeUnits: meta1.TimeUnits,
		NumValues: t.reader1.NumValues(),
	})
	if err != nil {
		return err
	}

	times := t.reader1.Times()
	for i := 0; i < t.reader1.NumTimes(); i++ {
		rt.Log.Infof("Processing timestep %d of %d", i+1, t.reader1.NumTimes())
		// Null sentinel locations come back NaN so the subtraction
		// marks them undefined on its own.
		values1, _, err := t.reader1.TimestepWithActivity(i, true)
		if err != nil {
			return err
		}
		values2, _, err := t.reader2.TimestepWithActivity(i, true)
		if err != nil {
			return err
		}
		floats.Sub(values1, values2)
		restoreNulls(values1, nullValue)
		logTimestepStats(rt, values1, nullValue)
		if err := writer.AppendTimestep(times[i], values1); err != nil {
			return err
		}
	}

	result, err := writer.Finish()
	if err != nil {
		return err
	}
	return rt.Host.SetOutputDataset(args[2], result)
}

// validateInputDataset opens a dataset argument, recording a
// validation error under the argument's name when it cannot be read.
// The reader is kept so Run does not have to retrieve it again.
func validateInputDataset(rt *tool.Runtime, arg *tool.Argument, errors map[string]string) dataset.Reader {
	if arg.TextValue() == "" {
		errors[arg.Name] = "No dataset selected."
		return nil
	}
	reader, err := rt.Host.OpenDataset(arg.TextValue())
	if err != nil {
		errors[arg.Name] = err.Error()
		return nil
	}
	return reader
}

// restoreNulls maps NaN results back to the null sentinel.
func restoreNulls(values []float64, nullValue *float64) {
	if nullValue == nil {
		return
	}
	for i, v := range values {
		if math.IsNaN(v) {
			values[i] = *nullValue
		}
	}
}

// logTimestepStats logs the mean and spread of the defined differences.
func logTimestepStats(rt *tool.Runtime, values []float64, nullValue *float64) {
	defined := values
	if nullValue != nil {
		defined = make([]float64, 0, len(values))
		for _, v := range values {
			if v != *nullValue {
				defined = append(defined, v)
			}
		}
	}
	if len(defined) == 0 {
		return
	}
	mean, std := stat.MeanStdDev(defined, nil)
	if math.IsNaN(std) {
		std = 0
	}
	rt.Log.Debugf("diff mean %.6g stddev %.6g min %.6g max %.6g",
		mean, std, floats.Min(defined), floats.Max(defined))
}
