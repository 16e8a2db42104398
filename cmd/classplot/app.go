package main

import (
	"fmt"
	"log"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/enisbelgacem/classplot/internal/classerr"
	"github.com/enisbelgacem/classplot/internal/config"
	"github.com/enisbelgacem/classplot/internal/parser"
	"github.com/enisbelgacem/classplot/internal/report"
	"github.com/enisbelgacem/classplot/internal/selection"
)

// options is the flag surface. The original tool gave both --ratio and
// --repeat the -r shorthand; here -r belongs to --ratio (it is the flag the
// documented examples use) and --repeat has no shorthand.
type options struct {
	ratio      bool
	selection  []string
	scale      string
	printPNG   bool
	repeat     bool
	output     string
	configPath string
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "classplot [files...]",
		Short: "classplot, a CLASS Plotting Utility",
		Long: "classplot, a CLASS Plotting Utility: superimpose, or plot the ratio of,\n" +
			"different CLASS output files.",
		Example: "  classplot output/test_pk.dat output/test_pk_nl_density.dat\n" +
			"  classplot output/wmap_cl.dat output/planck_cl.dat -s TT EE",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Usage()
			}
			return run(args, opts)
		},
	}

	f := cmd.Flags()
	f.BoolVarP(&opts.ratio, "ratio", "r", false, "plot the ratio of the spectra (not implemented yet)")
	f.StringSliceVarP(&opts.selection, "selection", "s", nil, "fields to plot, as named in the file header")
	f.StringVar(&opts.scale, "scale", "", "axis scale to use: lin, loglog or loglin")
	f.BoolVarP(&opts.printPNG, "print", "p", false, "also write the figure as a .png file")
	f.BoolVar(&opts.repeat, "repeat", false, "repeat for all redshifts sharing each file's base name")
	f.StringVarP(&opts.output, "output", "o", "", "base name for the produced figure (default: first file without extension)")
	f.StringVar(&opts.configPath, "config", "", "TOML style configuration file")
	return cmd
}

func run(files []string, opts options) error {
	fmt.Println("~~~ Running classplot, a CLASS Plotting Utility ~~~")

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	// Ratio needs at least two files, and past that stays an explicit
	// failure: no alignment of the sampling grids is implemented.
	if opts.ratio {
		return selection.CheckRatio(len(files))
	}

	if opts.repeat {
		files = expandRepeat(files)
	}

	fields, scale, err := resolveFieldsAndScale(files[0], opts)
	if err != nil {
		return err
	}

	datasets := make([]*parser.Dataset, len(files))
	for i, file := range files {
		log.Printf("parsing %s", file)
		ds, err := parser.Load(file)
		if err != nil {
			return err
		}
		datasets[i] = ds
	}

	resolved, err := selection.Resolve(datasets, fields)
	if err != nil {
		return err
	}
	log.Printf("plotting %v from %d file(s), %s scale", resolved.Fields, len(datasets), scale)

	curves := report.Curves(datasets, resolved)
	png, err := report.RenderOverlay(curves, scale, cfg.Plot)
	if err != nil {
		return err
	}

	stem := opts.output
	if stem == "" {
		stem = strings.TrimSuffix(files[0], filepath.Ext(files[0]))
	}
	pdfPath := stem + ".pdf"
	pngPath := stem + ".png"

	if err := report.WritePDF(pdfPath, png, cfg.Plot.WidthPts, cfg.Plot.HeightPts); err != nil {
		return err
	}
	log.Printf("wrote %s", pdfPath)
	if opts.printPNG {
		if err := report.WritePNG(pngPath, png); err != nil {
			return err
		}
		log.Printf("wrote %s", pngPath)
	}

	scriptPath := files[0] + ".go"
	if err := report.WriteScript(scriptPath, curves, scale, pngPath); err != nil {
		return err
	}
	log.Printf("wrote replay script %s", scriptPath)
	return nil
}

// resolveFieldsAndScale applies the filename convention when no selection
// was given: cl files default to the TT spectrum, pk files to P, both on a
// loglog scale. An explicit --scale always wins; the inferred scale only
// fills an unset flag.
func resolveFieldsAndScale(firstFile string, opts options) ([]string, report.Scale, error) {
	fields := opts.selection
	inferredScale := ""
	if len(fields) == 0 {
		switch {
		case strings.Contains(firstFile, "cl"):
			fields, inferredScale = []string{"TT"}, "loglog"
		case strings.Contains(firstFile, "pk"):
			fields, inferredScale = []string{"P"}, "loglog"
		default:
			return nil, "", classerr.New(classerr.SpectrumType, "please specify a field to plot")
		}
	}

	scaleName := opts.scale
	if scaleName == "" {
		scaleName = inferredScale
	}
	if scaleName == "" {
		scaleName = string(report.ScaleLin)
	}
	scale, err := report.ParseScale(scaleName)
	if err != nil {
		return nil, "", err
	}
	return fields, scale, nil
}

// redshiftTag matches the z-index CLASS embeds in multi-redshift output
// names, e.g. lcdm_z2_pk.dat.
var redshiftTag = regexp.MustCompile(`z\d+`)

// expandRepeat replaces each input carrying a redshift tag with every
// sibling file sharing the same base name modulo that tag, sorted. Files
// without a tag pass through unchanged.
func expandRepeat(files []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, file := range files {
		dir, base := filepath.Split(file)
		if !redshiftTag.MatchString(base) {
			if !seen[file] {
				out = append(out, file)
				seen[file] = true
			}
			continue
		}
		pattern := filepath.Join(dir, redshiftTag.ReplaceAllString(base, "z*"))
		matches, err := filepath.Glob(pattern)
		if err != nil || len(matches) == 0 {
			matches = []string{file}
		}
		sort.Strings(matches)
		for _, m := range matches {
			if !seen[m] {
				out = append(out, m)
				seen[m] = true
			}
		}
	}
	return out
}
