package report

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
)

// scriptData feeds the replay template. File paths are absolute so the
// generated program runs from any directory, as the original's generated
// scripts did.
type scriptData struct {
	Files  []string
	Curves []scriptCurve
	Scale  Scale
	Output string
	XLabel string
	YLabel string
}

type scriptCurve struct {
	File   int
	Column int
	Legend string
}

// BuildScript renders a standalone Go program that reproduces the same
// plotting calls: same files, same resolved columns, same scale and legend
// labels, writing the figure to the same PNG path.
func BuildScript(curves []Curve, scale Scale, output string) ([]byte, error) {
	if len(curves) == 0 {
		return nil, fmt.Errorf("no curves to replay")
	}
	data := scriptData{
		Scale:  scale,
		Output: output,
		XLabel: curves[0].Dataset.Header.Columns[0].Label,
		YLabel: sharedLabel(curves),
	}
	fileIndex := map[string]int{}
	for _, c := range curves {
		abs, err := filepath.Abs(c.Dataset.Path)
		if err != nil {
			return nil, fmt.Errorf("cannot resolve %s: %w", c.Dataset.Path, err)
		}
		idx, ok := fileIndex[abs]
		if !ok {
			idx = len(data.Files)
			fileIndex[abs] = idx
			data.Files = append(data.Files, abs)
		}
		data.Curves = append(data.Curves, scriptCurve{
			File:   idx,
			Column: c.Column,
			Legend: c.Legend,
		})
	}

	var buf bytes.Buffer
	if err := replayTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render replay script: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteScript emits the replay program next to the first input file,
// suffixed with .go (the original appended .py to the first file's name).
func WriteScript(path string, curves []Curve, scale Scale, output string) error {
	script, err := BuildScript(curves, scale, output)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, script, 0o644); err != nil {
		return fmt.Errorf("failed to write replay script %s: %w", path, err)
	}
	return nil
}

var replayTemplate = template.Must(template.New("replay").Parse(`// Generated by classplot. Reproduces the plot: go run <this file>.
//go:build ignore

package main

import (
	"bufio"
	"log"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var files = []string{
{{- range .Files}}
	{{printf "%q" .}},
{{- end}}
}

type curve struct {
	file   int
	column int
	legend string
}

var curves = []curve{
{{- range .Curves}}
	{file: {{.File}}, column: {{.Column}}, legend: {{printf "%q" .Legend}}},
{{- end}}
}

const scale = {{printf "%q" .Scale}}
const output = {{printf "%q" .Output}}
const xLabel = {{printf "%q" .XLabel}}
const yLabel = {{printf "%q" .YLabel}}

func loadtxt(path string) [][]float64 {
	f, err := os.Open(path)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	var rows [][]float64
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		fields := strings.Fields(line)
		row := make([]float64, len(fields))
		for i, field := range fields {
			row[i], err = strconv.ParseFloat(field, 64)
			if err != nil {
				log.Fatal(err)
			}
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		log.Fatal(err)
	}
	return rows
}

func main() {
	data := make([][][]float64, len(files))
	for i, file := range files {
		data[i] = loadtxt(file)
	}

	p := plot.New()
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	logX := scale == "loglog" || scale == "loglin"
	logY := scale == "loglog"
	if logX {
		p.X.Scale = plot.LogScale{}
		p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	if logY {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	p.Add(plotter.NewGrid())

	for _, c := range curves {
		pts := make(plotter.XYs, 0, len(data[c.file]))
		for _, row := range data[c.file] {
			x, y := row[0], row[c.column]
			if (logX && x <= 0) || (logY && y <= 0) {
				continue
			}
			pts = append(pts, plotter.XY{X: x, Y: y})
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			log.Fatal(err)
		}
		p.Add(line)
		p.Legend.Add(c.legend, line)
	}

	if err := p.Save(vg.Points(800), vg.Points(400), output); err != nil {
		log.Fatal(err)
	}
}
`))
