// Package dataset models scalar time-series datasets: per-timestep
// value arrays tied to a geometry, with optional activity flags and a
// null-value sentinel marking "no data" locations.
package dataset

import (
	"fmt"
	"math"

	"github.com/google/uuid"
)

// Location says whether dataset values sit on mesh points or cells.
type Location int

const (
	AtPoints Location = iota
	AtCells
)

func (l Location) String() string {
	if l == AtCells {
		return "cells"
	}
	return "points"
}

// Meta carries the dataset attributes needed to create a compatible
// output dataset from inputs.
type Meta struct {
	Name      string
	ObjType   string    // host object type the dataset lives on, e.g. "mesh2d"
	GeomID    uuid.UUID // identity of the geometry the dataset lives on
	Location  Location
	NullValue *float64 // nil when the dataset defines no sentinel
	RefTime   float64  // julian date, 0 when unset
	TimeUnits string
	NumValues int // values per timestep
	NumCells  int // activity flags per timestep, 0 when none
}

// Reader is the capability surface a host exposes for an existing
// dataset.
type Reader interface {
	Meta() Meta
	NumValues() int
	NumTimes() int
	Times() []float64

	// TimestepWithActivity returns the value array and activity flags
	// for timestep i. Activity is nil when the dataset carries none.
	// With nanNulls set, values equal to the null sentinel come back
	// as NaN so arithmetic propagates "no data" naturally.
	TimestepWithActivity(i int, nanNulls bool) ([]float64, []bool, error)
}

// Writer builds a dataset one timestep at a time. Finish seals the
// dataset and returns a Reader over it.
type Writer interface {
	Meta() Meta
	AppendTimestep(time float64, values []float64) error
	Finish() (Reader, error)
}

// Memory is an in-memory dataset implementing Reader and Writer. The
// file-backed host buffers output datasets through it before
// persisting.
type Memory struct {
	meta     Meta
	times    []float64
	values   [][]float64
	activity [][]bool
	sealed   bool
}

// NewMemory creates an empty in-memory dataset with the given
// attributes.
func NewMemory(meta Meta) *Memory {
	return &Memory{meta: meta}
}

func (m *Memory) Meta() Meta       { return m.meta }
func (m *Memory) NumValues() int   { return m.meta.NumValues }
func (m *Memory) NumTimes() int    { return len(m.times) }
func (m *Memory) Times() []float64 { return m.times }

// AppendTimestep adds a value array for the given time offset. The
// first append fixes the value count when the metadata left it zero.
func (m *Memory) AppendTimestep(time float64, values []float64) error {
	return m.AppendTimestepWithActivity(time, values, nil)
}

// AppendTimestepWithActivity adds a value array plus activity flags.
func (m *Memory) AppendTimestepWithActivity(time float64, values []float64, active []bool) error {
	if m.sealed {
		return fmt.Errorf("dataset %q: append after Finish", m.meta.Name)
	}
	if m.meta.NumValues == 0 && len(m.values) == 0 {
		m.meta.NumValues = len(values)
	}
	if len(values) != m.meta.NumValues {
		return fmt.Errorf("dataset %q: timestep has %d values, want %d",
			m.meta.Name, len(values), m.meta.NumValues)
	}
	if active != nil {
		if m.meta.NumCells == 0 && len(m.activity) == 0 {
			m.meta.NumCells = len(active)
		}
		if len(active) != m.meta.NumCells {
			return fmt.Errorf("dataset %q: timestep has %d activity flags, want %d",
				m.meta.Name, len(active), m.meta.NumCells)
		}
	}
	m.times = append(m.times, time)
	m.values = append(m.values, values)
	m.activity = append(m.activity, active)
	return nil
}

// Finish seals the dataset against further appends.
func (m *Memory) Finish() (Reader, error) {
	m.sealed = true
	return m, nil
}

func (m *Memory) TimestepWithActivity(i int, nanNulls bool) ([]float64, []bool, error) {
	if i < 0 || i >= len(m.values) {
		return nil, nil, fmt.Errorf("dataset %q: timestep %d out of range [0,%d)",
			m.meta.Name, i, len(m.values))
	}
	values := make([]float64, len(m.values[i]))
	copy(values, m.values[i])
	if nanNulls && m.meta.NullValue != nil {
		null := *m.meta.NullValue
		for j, v := range values {
			if v == null {
				values[j] = math.NaN()
			}
		}
	}
	return values, m.activity[i], nil
}
