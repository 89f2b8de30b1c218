package tools

import (
	"github.com/Aquaveo/xmstool-examples/dataset"
	"github.com/Aquaveo/xmstool-examples/tool"
)

// DatasetFromDat imports an ASCII .dat dataset file.
type DatasetFromDat struct{}

// NewDatasetFromDat creates the .dat import tool.
func NewDatasetFromDat() *DatasetFromDat { return &DatasetFromDat{} }

func (t *DatasetFromDat) Name() string { return "Dataset from dat" }

func (t *DatasetFromDat) InitialArguments() []*tool.Argument {
	file := tool.File("dat_file", "The .dat file to import", "DAT dataset files (*.dat)")
	out := tool.Dataset("imported_dataset", "Imported Dataset")
	out.Direction = tool.Output
	out.Hidden = true
	out.Optional = true
	return []*tool.Argument{file, out}
}

func (t *DatasetFromDat) ValidateArguments(rt *tool.Runtime, args []*tool.Argument) map[string]string {
	// No validation required for this tool.
	return nil
}

func (t *DatasetFromDat) EnableArguments(args []*tool.Argument) {
	// No GUI dependencies for this tool.
}

func (t *DatasetFromDat) Run(rt *tool.Runtime, args []*tool.Argument) error {
	filename := args[0].TextValue()
	rt.Log.Infof("Reading %s", filename)
	ds, err := dataset.ReadDATFile(filename)
	if err != nil {
		return err
	}
	return rt.Host.SetOutputDataset(args[1], ds)
}
