package selection

// FileColumns maps the resolved short names to their zero-based column
// index within one specific file. Identical names may resolve to different
// indices across files; only the name has to match.
type FileColumns struct {
	Path    string
	Indices map[string]int
}

// Resolved is the outcome of validating a selection against a set of
// decoded files: the final field list (after any forcing) in request order,
// the matching display labels taken from the first file, and per-file
// column indices. It lives for a single invocation and is consumed directly
// by the renderer.
type Resolved struct {
	Fields []string
	Labels []string
	Files  []FileColumns
}
