// Package diagfmt renders diagnostics for humans and for tooling.
package diagfmt

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeFull keeps paths exactly as the FileSet recorded them.
	PathModeFull PathMode = iota
	// PathModeBasename shows only the file name.
	PathModeBasename
)

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color     bool
	PathMode  PathMode
	ShowNotes bool
	// ShowSource prints the offending line with a caret underline.
	ShowSource bool
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	// IncludePositions resolves byte spans into line/column pairs.
	IncludePositions bool
	PathMode         PathMode
	IncludeNotes     bool
	// Max truncates the emitted list; 0 means everything.
	Max int
}
