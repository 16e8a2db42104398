package parser

import (
	"strings"

	"github.com/enisbelgacem/classplot/internal/classerr"
)

// CLASS headers list every column as "N:name", so each ':' marker is
// preceded by an ordinal tag of up to two digits. When slicing a column's
// long name we stop ordinalTagWidth characters before the next marker to
// drop that tag; surrounding whitespace absorbs the slack for one-digit
// ordinals. Three-digit ordinals would leave a stray digit behind, a known
// limit of the convention.
const ordinalTagWidth = 3

const commentMarker = '#'

// DecodeHeader splits a raw header line into its column descriptors.
// The number of ':' markers determines the column count; a header with no
// markers is not a CLASS-style header.
func DecodeHeader(header string) (Header, error) {
	var markers []int // offset just past each ':' marker
	for i := 0; i < len(header); i++ {
		if header[i] == ':' {
			markers = append(markers, i+1)
		}
	}
	if len(markers) == 0 {
		return Header{}, classerr.New(classerr.Format,
			"no column markers found in header line %q", strings.TrimSpace(header))
	}

	longNames := make([]string, len(markers))
	for i, start := range markers {
		end := len(header)
		if i < len(markers)-1 {
			end = markers[i+1] - ordinalTagWidth
			// Markers packed tighter than an ordinal tag (a timestamp-like
			// comment from another tool) leave no room for a name; degrade
			// to an empty one and let the column-count cross-check at load
			// time reject the file.
			if end < start {
				end = start
			}
		}
		longNames[i] = strings.TrimSpace(header[start:end])
	}

	names, labels := ProcessLongNames(longNames)
	columns := make([]Column, len(longNames))
	for i := range longNames {
		columns[i] = Column{LongName: longNames[i], Name: names[i], Label: labels[i]}
	}
	return Header{Columns: columns}, nil
}

// lastHeaderLine returns the last comment-marked line among lines, which by
// the CLASS convention carries the column descriptors.
func lastHeaderLine(lines []string) (string, bool) {
	header := ""
	found := false
	for _, line := range lines {
		if len(line) > 0 && line[0] == commentMarker {
			header = line
			found = true
		}
	}
	return header, found
}
