package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// The .dat scalar dataset format is line oriented ASCII:
//
//	DATASET
//	OBJTYPE "mesh2d"
//	BEGSCL
//	ND <numValues>
//	NC <numCells>
//	NAME "dataset name"
//	TIMEUNITS seconds
//	RT_JULIAN <julian date>
//	NULLVALUE <sentinel>
//	TS <istat> <time>
//	<activity flags, NC values, when istat is 1>
//	<data, ND values>
//	ENDDS
//
// TS blocks repeat per timestep; values may be split across lines.
// Vector datasets (BEGVEC) are not supported.
//
// The format carries no geometry identifier, so the geometry UUID is
// derived deterministically from the OBJTYPE card: datasets exported
// from the same object type compare as being on the same geometry.

// ReadDATFile parses the named .dat dataset file.
func ReadDATFile(filename string) (*Memory, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ReadDAT(file)
}

// ReadDAT parses .dat format text into an in-memory dataset. Malformed
// cards abort the parse with an error naming the offending line.
func ReadDAT(r io.Reader) (*Memory, error) {
	var (
		meta    Meta
		objType = "mesh2d"
		ds      *Memory
		began   bool
		ended   bool
	)
	meta.TimeUnits = "seconds"

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || ended {
			continue
		}
		fields := strings.Fields(line)
		card := strings.ToUpper(fields[0])
		switch card {
		case "DATASET":
			// File header, nothing to capture.

		case "OBJTYPE":
			if len(fields) < 2 {
				return nil, fmt.Errorf("unable to parse object type: %s", line)
			}
			objType = strings.Trim(strings.TrimSpace(line[len(fields[0]):]), `"`)

		case "BEGSCL":
			began = true

		case "BEGVEC":
			return nil, fmt.Errorf("vector datasets are not supported: %s", line)

		case "ND":
			n, err := cardInt(line, fields)
			if err != nil {
				return nil, err
			}
			meta.NumValues = n

		case "NC":
			n, err := cardInt(line, fields)
			if err != nil {
				return nil, err
			}
			meta.NumCells = n

		case "NAME":
			meta.Name = strings.Trim(strings.TrimSpace(line[len(fields[0]):]), `"`)

		case "TIMEUNITS":
			if len(fields) < 2 {
				return nil, fmt.Errorf("unable to parse time units: %s", line)
			}
			meta.TimeUnits = strings.ToLower(fields[1])

		case "RT_JULIAN":
			v, err := cardFloat(line, fields)
			if err != nil {
				return nil, err
			}
			meta.RefTime = v

		case "NULLVALUE":
			v, err := cardFloat(line, fields)
			if err != nil {
				return nil, err
			}
			null := v
			meta.NullValue = &null

		case "TS":
			if !began {
				return nil, fmt.Errorf("timestep before BEGSCL: %s", line)
			}
			if len(fields) < 3 {
				return nil, fmt.Errorf("unable to parse timestep: %s", line)
			}
			istat, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, fmt.Errorf("unable to parse timestep: %s", line)
			}
			time, err := strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, fmt.Errorf("unable to parse timestep: %s", line)
			}
			if ds == nil {
				meta.ObjType = objType
				meta.GeomID = uuid.NewSHA1(uuid.NameSpaceOID, []byte(objType))
				ds = NewMemory(meta)
			}
			var active []bool
			if istat != 0 {
				flags, err := readValues(scanner, meta.NumCells)
				if err != nil {
					return nil, err
				}
				active = make([]bool, len(flags))
				for i, f := range flags {
					active[i] = f != 0
				}
			}
			values, err := readValues(scanner, meta.NumValues)
			if err != nil {
				return nil, err
			}
			if err := ds.AppendTimestepWithActivity(time, values, active); err != nil {
				return nil, err
			}

		case "ENDDS":
			ended = true

		default:
			// Unrecognized cards are skipped for format compatibility.
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if ds == nil {
		return nil, fmt.Errorf("no timesteps found in dataset")
	}
	return ds, nil
}

// readValues consumes n whitespace-delimited floats, spanning lines as
// needed.
func readValues(scanner *bufio.Scanner, n int) ([]float64, error) {
	values := make([]float64, 0, n)
	for len(values) < n {
		if !scanner.Scan() {
			return nil, fmt.Errorf("unexpected EOF: have %d of %d values", len(values), n)
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		for _, word := range strings.Fields(line) {
			v, err := strconv.ParseFloat(word, 64)
			if err != nil {
				return nil, fmt.Errorf("unable to parse value: %s", line)
			}
			values = append(values, v)
		}
	}
	if len(values) > n {
		return nil, fmt.Errorf("timestep has %d values, want %d", len(values), n)
	}
	return values, nil
}

func cardInt(line string, fields []string) (int, error) {
	if len(fields) < 2 {
		return 0, fmt.Errorf("unable to parse card: %s", line)
	}
	v, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, fmt.Errorf("unable to parse card: %s", line)
	}
	return v, nil
}

func cardFloat(line string, fields []string) (float64, error) {
	if len(fields) < 2 {
		return 0, fmt.Errorf("unable to parse card: %s", line)
	}
	v, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return 0, fmt.Errorf("unable to parse card: %s", line)
	}
	return v, nil
}

// WriteDATFile writes the dataset to filename in .dat format.
func WriteDATFile(filename string, ds Reader) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteDAT(file, ds)
}

// WriteDAT writes the dataset as .dat format text, one value per line
// the way SMS exports them.
func WriteDAT(w io.Writer, ds Reader) error {
	meta := ds.Meta()
	objType := meta.ObjType
	if objType == "" {
		objType = "mesh2d"
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "DATASET")
	fmt.Fprintf(bw, "OBJTYPE %q\n", objType)
	fmt.Fprintln(bw, "BEGSCL")
	fmt.Fprintf(bw, "ND %d\n", ds.NumValues())
	fmt.Fprintf(bw, "NC %d\n", meta.NumCells)
	fmt.Fprintf(bw, "NAME %q\n", meta.Name)
	if meta.TimeUnits != "" {
		fmt.Fprintf(bw, "TIMEUNITS %s\n", meta.TimeUnits)
	}
	if meta.RefTime != 0 {
		fmt.Fprintf(bw, "RT_JULIAN %g\n", meta.RefTime)
	}
	if meta.NullValue != nil {
		fmt.Fprintf(bw, "NULLVALUE %g\n", *meta.NullValue)
	}
	for i, time := range ds.Times() {
		values, active, err := ds.TimestepWithActivity(i, false)
		if err != nil {
			return err
		}
		istat := 0
		if active != nil {
			istat = 1
		}
		fmt.Fprintf(bw, "TS %d %g\n", istat, time)
		for _, a := range active {
			flag := 0
			if a {
				flag = 1
			}
			fmt.Fprintf(bw, "%d\n", flag)
		}
		for _, v := range values {
			fmt.Fprintf(bw, "%g\n", v)
		}
	}
	fmt.Fprintln(bw, "ENDDS")
	return bw.Flush()
}
