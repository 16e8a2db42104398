// Package report renders the comparative overlay figure and its artifacts:
// PNG bytes, a PDF wrapper and a standalone replay program.
package report

import (
	"bytes"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/enisbelgacem/classplot/internal/classerr"
	"github.com/enisbelgacem/classplot/internal/config"
	"github.com/enisbelgacem/classplot/internal/parser"
	"github.com/enisbelgacem/classplot/internal/selection"
)

// Scale selects the axis scaling of the figure.
type Scale string

const (
	ScaleLin    Scale = "lin"    // both axes linear
	ScaleLogLog Scale = "loglog" // both axes logarithmic
	ScaleLogLin Scale = "loglin" // logarithmic x, linear y
)

// ParseScale validates a --scale value.
func ParseScale(s string) (Scale, error) {
	switch Scale(s) {
	case ScaleLin, ScaleLogLog, ScaleLogLin:
		return Scale(s), nil
	}
	return "", classerr.New(classerr.Input,
		"unknown scale %q, choose one of lin, loglog, loglin", s)
}

// Curve is one line of the overlay: a resolved (file, field) pair.
type Curve struct {
	Dataset *parser.Dataset
	Field   string
	Column  int    // resolved column index within Dataset
	Legend  string // "root: field", shown in the figure legend
	Label   string // display form of the field, annotation retained
}

// Curves expands a resolved selection into plotting order: files outermost,
// fields innermost, each labelled "root: field".
func Curves(datasets []*parser.Dataset, resolved *selection.Resolved) []Curve {
	labels := make(map[string]string, len(resolved.Fields))
	for i, field := range resolved.Fields {
		labels[field] = resolved.Labels[i]
	}
	var curves []Curve
	for i, ds := range datasets {
		for _, field := range resolved.Fields {
			curves = append(curves, Curve{
				Dataset: ds,
				Field:   field,
				Column:  resolved.Files[i].Indices[field],
				Legend:  ds.Root + ": " + field,
				Label:   labels[field],
			})
		}
	}
	return curves
}

// sharedLabel returns the display label when every curve plots the same
// field, empty otherwise: with several fields overlaid the y axis has no
// single meaning.
func sharedLabel(curves []Curve) string {
	for _, c := range curves[1:] {
		if c.Field != curves[0].Field {
			return ""
		}
	}
	return curves[0].Label
}

// RenderOverlay draws every curve (column 0 against the resolved column)
// into a single figure and returns it as PNG bytes.
func RenderOverlay(curves []Curve, scale Scale, style config.PlotConfig) ([]byte, error) {
	if len(curves) == 0 {
		return nil, fmt.Errorf("no curves to plot")
	}

	p := plot.New()
	p.X.Label.Text = curves[0].Dataset.Header.Columns[0].Label
	p.Y.Label.Text = sharedLabel(curves)
	applyScale(p, scale)
	p.Add(plotter.NewGrid())

	palette, err := parsePalette(style.Palette)
	if err != nil {
		return nil, err
	}

	logX := scale == ScaleLogLog || scale == ScaleLogLin
	logY := scale == ScaleLogLog

	for i, curve := range curves {
		pts := curvePoints(curve, logX, logY)
		if len(pts) == 0 {
			return nil, classerr.New(classerr.Input,
				"%s field %q has no plottable points on a %s scale",
				curve.Dataset.Path, curve.Field, scale)
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("failed to create line for %s: %w", curve.Legend, err)
		}
		line.Color = palette[i%len(palette)]
		line.LineStyle.Width = vg.Points(style.LineWidth)
		p.Add(line)
		p.Legend.Add(curve.Legend, line)
	}

	p.Legend.Top = style.LegendTop
	p.Legend.XOffs = -vg.Points(10)

	writer, err := p.WriterTo(vg.Points(style.WidthPts), vg.Points(style.HeightPts), "png")
	if err != nil {
		return nil, fmt.Errorf("failed to create plot writer: %w", err)
	}
	buf := new(bytes.Buffer)
	if _, err := writer.WriteTo(buf); err != nil {
		return nil, fmt.Errorf("failed to write plot to buffer: %w", err)
	}
	return buf.Bytes(), nil
}

// curvePoints extracts (x, y) pairs for one curve. Points that cannot sit
// on a log axis (non-positive coordinate) are dropped, matching what an
// interactive log plot would display.
func curvePoints(curve Curve, logX, logY bool) plotter.XYs {
	rows := curve.Dataset.Rows
	pts := make(plotter.XYs, 0, len(rows))
	for _, row := range rows {
		x, y := row[0], row[curve.Column]
		if logX && x <= 0 {
			continue
		}
		if logY && y <= 0 {
			continue
		}
		pts = append(pts, plotter.XY{X: x, Y: y})
	}
	return pts
}

func applyScale(p *plot.Plot, scale Scale) {
	switch scale {
	case ScaleLogLog:
		p.X.Scale = plot.LogScale{}
		p.X.Tick.Marker = plot.LogTicks{Prec: -1}
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	case ScaleLogLin:
		p.X.Scale = plot.LogScale{}
		p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	}
}

func parsePalette(hex []string) ([]color.Color, error) {
	if len(hex) == 0 {
		return nil, fmt.Errorf("empty color palette")
	}
	colors := make([]color.Color, len(hex))
	for i, h := range hex {
		c, err := parseHexColor(h)
		if err != nil {
			return nil, err
		}
		colors[i] = c
	}
	return colors, nil
}

func parseHexColor(s string) (color.RGBA, error) {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("invalid palette color %q: %w", s, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
