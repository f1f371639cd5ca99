package dataset

import (
	"encoding/csv"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/sartorproj/stattools/errs"
)

// CSVOptions holds options for CSV decoding.
type CSVOptions struct {
	Delimiter rune     // Field delimiter (default: ',')
	SkipRows  int      // Number of rows to skip before the header
	Missing   []string // Cell values treated as missing
}

// DefaultCSVOptions returns default options for CSV decoding.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		Delimiter: ',',
		Missing:   []string{"", "NA", "NaN", "nan", "null"},
	}
}

// ReadCSV decodes a frame from CSV with a header row. A column whose every
// present cell parses as a number is numeric, with missing cells as NaN;
// any other column is categorical, with missing cells as "".
func ReadCSV(r io.Reader, opts *CSVOptions) (*Frame, error) {
	const op = "dataset.ReadCSV"

	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, err
		}
	}

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, errs.Invalid(op, "missing header row")
	}
	if err != nil {
		return nil, err
	}

	cells := make([][]string, len(header))
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(record) != len(header) {
			return nil, errs.Invalid(op, "row %d has %d fields, want %d", len(cells[0])+1, len(record), len(header))
		}
		for j := range header {
			cells[j] = append(cells[j], cleanCell(record[j]))
		}
	}

	missing := make(map[string]struct{}, len(opts.Missing))
	for _, m := range opts.Missing {
		missing[m] = struct{}{}
	}

	columns := make([]*Column, len(header))
	for j, h := range header {
		columns[j] = decodeColumn(cleanCell(h), cells[j], missing)
	}
	return NewFrame(columns...)
}

func cleanCell(s string) string {
	return strings.TrimSpace(s)
}

func decodeColumn(name string, cells []string, missing map[string]struct{}) *Column {
	values := make([]float64, len(cells))
	for i, s := range cells {
		if _, ok := missing[s]; ok {
			values[i] = math.NaN()
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return textColumn(name, cells, missing)
		}
		values[i] = v
	}
	return NewColumn(name, values)
}

func textColumn(name string, cells []string, missing map[string]struct{}) *Column {
	text := make([]string, len(cells))
	for i, s := range cells {
		if _, ok := missing[s]; ok {
			continue
		}
		text[i] = s
	}
	return NewTextColumn(name, text)
}

// WriteCSV encodes f as CSV with a header row. Missing values are written as
// empty cells.
func WriteCSV(w io.Writer, f *Frame, opts *CSVOptions) error {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	writer := csv.NewWriter(w)
	if opts.Delimiter != 0 {
		writer.Comma = opts.Delimiter
	}

	if err := writer.Write(f.Names()); err != nil {
		return err
	}
	record := make([]string, len(f.columns))
	for i := 0; i < f.Len(); i++ {
		for j, c := range f.columns {
			record[j] = c.cell(i)
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func (c *Column) cell(i int) string {
	if !c.IsNumeric() {
		return c.Text[i]
	}
	if math.IsNaN(c.Values[i]) {
		return ""
	}
	return strconv.FormatFloat(c.Values[i], 'g', -1, 64)
}
