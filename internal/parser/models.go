package parser

// Column describes one data column decoded from the header line.
type Column struct {
	LongName string // raw annotated text as it appeared in the header
	Name     string // canonical identifier, scale and unit suffix stripped
	Label    string // display form, scale macro expanded, units retained
}

// Header is the ordered column table of a single file. The sequence matches
// the column order of the numeric data; its length equals the number of
// data columns.
type Header struct {
	Columns []Column
}

// Names returns the short names of all columns, in column order.
func (h Header) Names() []string {
	names := make([]string, len(h.Columns))
	for i, c := range h.Columns {
		names[i] = c.Name
	}
	return names
}

// Index returns the zero-based column index of the given short name.
func (h Header) Index(name string) (int, bool) {
	for i, c := range h.Columns {
		if c.Name == name {
			return i, true
		}
	}
	return 0, false
}

// Dataset is one fully loaded input file: its decoded header table and its
// numeric matrix (rows = samples, columns = fields). Built once at load
// time and never mutated afterwards.
type Dataset struct {
	Path   string
	Root   string // base name up to the first dot, used for legend labels
	Header Header
	Rows   [][]float64
}

// Column returns the values of data column idx across all rows.
func (d *Dataset) Column(idx int) []float64 {
	out := make([]float64, len(d.Rows))
	for i, row := range d.Rows {
		out[i] = row[idx]
	}
	return out
}
