package parser

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/enisbelgacem/classplot/internal/classerr"
)

// Load reads a CLASS output file: a whitespace-delimited numeric matrix
// preceded by comment lines, the last of which is the header line encoding
// the column names. The decoded header is cross-checked against the data:
// a marker count that disagrees with the number of data columns is reported
// instead of silently producing a wrong column table.
//
// Empty lines are rejected with the offending line number. The original
// tool died with an undiagnosed loader failure on trailing blank lines;
// here they get a proper format error.
func Load(path string) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open data file: %w", err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	headerLine, ok := lastHeaderLine(lines)
	if !ok {
		return nil, classerr.New(classerr.Format,
			"%s: no comment-marked header line found", path)
	}
	header, err := DecodeHeader(headerLine)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	var rows [][]float64
	for lineNo, line := range lines {
		if strings.TrimSpace(line) == "" {
			return nil, classerr.New(classerr.Format,
				"%s: empty line %d (CLASS files must contain no blank lines, especially trailing ones)",
				path, lineNo+1)
		}
		if line[0] == commentMarker {
			continue
		}
		fields := strings.Fields(line)
		row := make([]float64, len(fields))
		for i, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, classerr.New(classerr.Format,
					"%s: line %d: cannot parse %q as a number", path, lineNo+1, field)
			}
			row[i] = v
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, classerr.New(classerr.Format,
				"%s: line %d has %d columns, previous rows have %d",
				path, lineNo+1, len(row), len(rows[0]))
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, classerr.New(classerr.Format, "%s: no data rows found", path)
	}
	if len(rows[0]) != len(header.Columns) {
		return nil, classerr.New(classerr.Format,
			"%s: header declares %d columns but data rows have %d",
			path, len(header.Columns), len(rows[0]))
	}

	return &Dataset{
		Path:   path,
		Root:   fileRoot(path),
		Header: header,
		Rows:   rows,
	}, nil
}

// fileRoot is the base name of path up to the first dot, e.g.
// "output/lcdm_z2_pk.dat" -> "lcdm_z2_pk".
func fileRoot(path string) string {
	base := filepath.Base(path)
	if i := strings.Index(base, "."); i != -1 {
		return base[:i]
	}
	return base
}
