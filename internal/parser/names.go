package parser

import "strings"

// scaleMarker prefixes quantities in CLASS background files that are quoted
// in units of the critical density factor. scaleMacro is the literal
// expansion used for display labels; it is a text substitution, not a unit
// conversion.
const (
	scaleMarker = "(.)"
	scaleMacro  = `(8\pi G/3)`
)

// ExpandScale rewrites a long name starting with the scale marker into its
// display form, e.g. "(.)rho_b" becomes `(8\pi G/3)rho_b`.
func ExpandScale(name string) string {
	return scaleMacro + name[len(scaleMarker):]
}

// ProcessLongNames turns the raw long names from the header into two
// index-aligned sequences: the short canonical names used for selection and
// the display labels used on plots.
//
// The first pass handles the leading scale marker: stripped from the short
// name, expanded to the macro in the label. The second pass truncates short
// names at the first '(' or, failing that, the first '[', removing unit
// annotations such as "[Gyr]". Labels are never truncated.
func ProcessLongNames(longNames []string) (names, labels []string) {
	names = make([]string, 0, len(longNames))
	labels = make([]string, 0, len(longNames))
	for _, name := range longNames {
		if strings.HasPrefix(name, scaleMarker) {
			names = append(names, name[len(scaleMarker):])
			labels = append(labels, ExpandScale(name))
		} else {
			names = append(names, name)
			labels = append(labels, name)
		}
	}
	for i, name := range names {
		cut := strings.Index(name, "(")
		if cut == -1 {
			cut = strings.Index(name, "[")
		}
		if cut != -1 {
			names[i] = strings.TrimSpace(name[:cut])
		}
	}
	return names, labels
}
