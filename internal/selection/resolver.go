// Package selection validates a caller's requested fields against the
// decoded column tables of one or more files and resolves them to per-file
// column indices.
package selection

import (
	"github.com/enisbelgacem/classplot/internal/classerr"
	"github.com/enisbelgacem/classplot/internal/parser"
)

// Resolve maps the requested short names onto column indices for every
// dataset. The first file sets the policy: a two-column file is assumed
// single-quantity and self-describing, so the selection is forced to its
// sole dependent column regardless of what the caller asked for; with more
// columns every requested name must exist in the first file's table.
//
// Each file is then looked up independently against its own table, since
// files may lay out their columns differently.
func Resolve(datasets []*parser.Dataset, requested []string) (*Resolved, error) {
	if len(datasets) == 0 {
		return nil, classerr.New(classerr.FileCount, "no files to resolve a selection against")
	}

	first := datasets[0].Header
	fields := requested
	switch {
	case len(first.Columns) == 2:
		fields = []string{first.Columns[1].Name}
	case len(first.Columns) > 2:
		names := first.Names()
		for _, field := range fields {
			if _, ok := first.Index(field); !ok {
				return nil, classerr.New(classerr.Input,
					"the selection must contain names of the fields in the specified files: asked for %q where I only found %v",
					field, names)
			}
		}
	}

	labels := make([]string, len(fields))
	for i, field := range fields {
		idx, _ := first.Index(field)
		labels[i] = first.Columns[idx].Label
	}

	files := make([]FileColumns, len(datasets))
	for i, ds := range datasets {
		indices := make(map[string]int, len(fields))
		for _, field := range fields {
			idx, ok := ds.Header.Index(field)
			if !ok {
				return nil, classerr.New(classerr.Input,
					"%s has no field %q (available: %v)", ds.Path, field, ds.Header.Names())
			}
			indices[field] = idx
		}
		files[i] = FileColumns{Path: ds.Path, Indices: indices}
	}

	return &Resolved{Fields: fields, Labels: labels, Files: files}, nil
}

// CheckRatio guards the ratio mode before any file is decoded. Dividing
// needs at least two files; beyond that the mode itself is not implemented
// (the sampling grids of different files are not aligned or interpolated),
// so it fails explicitly rather than producing a wrong ratio.
func CheckRatio(numFiles int) error {
	if numFiles < 2 {
		return classerr.New(classerr.FileCount,
			"if you want me to compute a ratio between two files, I strongly encourage you to give me at least two of them")
	}
	return classerr.New(classerr.Input, "sorry, ratio plotting is not working yet")
}
