package dataset

import (
	"github.com/sartorproj/stattools/errs"
)

// Frame is an ordered set of named columns of equal length.
type Frame struct {
	columns []*Column
}

// NewFrame creates a frame from columns. Column names must be unique and all
// columns must have the same length.
func NewFrame(columns ...*Column) (*Frame, error) {
	f := &Frame{}
	for _, c := range columns {
		if c == nil {
			return nil, errs.Invalid("dataset.NewFrame", "nil column")
		}
		if f.index(c.Name) >= 0 {
			return nil, errs.Invalid("dataset.NewFrame", "duplicate column %q", c.Name)
		}
		if len(f.columns) > 0 && c.Len() != f.Len() {
			return nil, errs.Invalid("dataset.NewFrame", "column %q has %d rows, want %d", c.Name, c.Len(), f.Len())
		}
		f.columns = append(f.columns, c)
	}
	return f, nil
}

// Len returns the number of rows.
func (f *Frame) Len() int {
	if len(f.columns) == 0 {
		return 0
	}
	return f.columns[0].Len()
}

// Names returns the column names in order.
func (f *Frame) Names() []string {
	names := make([]string, len(f.columns))
	for i, c := range f.columns {
		names[i] = c.Name
	}
	return names
}

// Columns returns the columns in order.
func (f *Frame) Columns() []*Column {
	out := make([]*Column, len(f.columns))
	copy(out, f.columns)
	return out
}

// Column returns the named column, or nil.
func (f *Frame) Column(name string) *Column {
	if i := f.index(name); i >= 0 {
		return f.columns[i]
	}
	return nil
}

// NumericNames returns the names of the numeric columns.
func (f *Frame) NumericNames() []string {
	var names []string
	for _, c := range f.columns {
		if c.IsNumeric() {
			names = append(names, c.Name)
		}
	}
	return names
}

// With returns a new frame in which col replaces the column of the same name,
// or is appended when no such column exists.
func (f *Frame) With(col *Column) (*Frame, error) {
	if len(f.columns) > 0 && col.Len() != f.Len() {
		return nil, errs.Invalid("dataset.Frame.With", "column %q has %d rows, want %d", col.Name, col.Len(), f.Len())
	}
	out := &Frame{columns: f.Columns()}
	if i := out.index(col.Name); i >= 0 {
		out.columns[i] = col
		return out, nil
	}
	out.columns = append(out.columns, col)
	return out, nil
}

// Drop returns a new frame without the named column.
func (f *Frame) Drop(name string) (*Frame, error) {
	i := f.index(name)
	if i < 0 {
		return nil, errs.Invalid("dataset.Frame.Drop", "unknown column %q", name)
	}
	out := &Frame{columns: make([]*Column, 0, len(f.columns)-1)}
	out.columns = append(out.columns, f.columns[:i]...)
	out.columns = append(out.columns, f.columns[i+1:]...)
	return out, nil
}

// Copy creates a deep copy of the frame.
func (f *Frame) Copy() *Frame {
	out := &Frame{columns: make([]*Column, len(f.columns))}
	for i, c := range f.columns {
		out.columns[i] = c.Copy()
	}
	return out
}

// Matrix returns the named numeric columns as a row-major feature matrix.
// With no names, every numeric column is used.
func (f *Frame) Matrix(names ...string) ([][]float64, error) {
	if len(names) == 0 {
		names = f.NumericNames()
	}
	if len(names) == 0 {
		return nil, errs.Invalid("dataset.Frame.Matrix", "no numeric columns")
	}

	cols := make([]*Column, len(names))
	for j, name := range names {
		c := f.Column(name)
		if c == nil {
			return nil, errs.Invalid("dataset.Frame.Matrix", "unknown column %q", name)
		}
		if !c.IsNumeric() {
			return nil, errs.Invalid("dataset.Frame.Matrix", "column %q is categorical", name)
		}
		cols[j] = c
	}

	X := make([][]float64, f.Len())
	for i := range X {
		X[i] = make([]float64, len(cols))
		for j, c := range cols {
			X[i][j] = c.Values[i]
		}
	}
	return X, nil
}

// Labels returns the named column as a binary label vector.
func (f *Frame) Labels(name string) ([]float64, error) {
	c := f.Column(name)
	if c == nil {
		return nil, errs.Invalid("dataset.Frame.Labels", "unknown column %q", name)
	}
	if !c.IsNumeric() {
		return nil, errs.Invalid("dataset.Frame.Labels", "column %q is categorical", name)
	}
	y := make([]float64, len(c.Values))
	copy(y, c.Values)
	if err := ValidateLabels("dataset.Frame.Labels", y); err != nil {
		return nil, err
	}
	return y, nil
}

func (f *Frame) index(name string) int {
	for i, c := range f.columns {
		if c.Name == name {
			return i
		}
	}
	return -1
}
