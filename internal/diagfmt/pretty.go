package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"hidlgen/internal/diag"
	"hidlgen/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan)
	caretColor   = color.New(color.FgGreen)
)

// Pretty renders every diagnostic in the bag in source order. Callers run
// bag.Sort() first. Each diagnostic prints as
//
//	<path>:<line>:<col>: <severity>[<code>]: <message>
//
// followed by the offending source line with a caret underline when
// ShowSource is set, and the notes when ShowNotes is set.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeHeader(w, d, fs, opts)
		if opts.ShowSource {
			writeSourceLine(w, d.Primary, fs, opts)
		}
		if opts.ShowNotes {
			for _, note := range d.Notes {
				fmt.Fprintf(w, "  note: %s\n", note.Msg)
			}
		}
	}
}

func writeHeader(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	sev := severityLabel(d.Severity, opts.Color)
	fmt.Fprintf(w, "%s: %s[%s]: %s\n",
		location(d.Primary, fs, opts.PathMode), sev, d.Code.ID(), d.Message)
}

func severityLabel(s diag.Severity, colored bool) string {
	label := strings.ToLower(s.String())
	if !colored {
		return label
	}
	switch s {
	case diag.SevError:
		return errorColor.Sprint(label)
	case diag.SevWarning:
		return warningColor.Sprint(label)
	default:
		return infoColor.Sprint(label)
	}
}

func location(span source.Span, fs *source.FileSet, mode PathMode) string {
	f := fs.Get(span.File)
	if f == nil {
		return "<unknown>"
	}
	path := f.Path
	if mode == PathModeBasename {
		path = filepath.Base(path)
	}
	start, _ := fs.Resolve(span)
	return fmt.Sprintf("%s:%d:%d", path, start.Line, start.Col)
}

func writeSourceLine(w io.Writer, span source.Span, fs *source.FileSet, opts PrettyOpts) {
	f := fs.Get(span.File)
	if f == nil || span.Empty() {
		return
	}
	start, end := fs.Resolve(span)
	line := f.GetLine(start.Line)
	if line == "" {
		return
	}
	fmt.Fprintf(w, "    %s\n", line)

	// Underline within a single line; multi-line spans mark the first line.
	underlineLen := span.Len()
	if end.Line != start.Line {
		underlineLen = uint32(len(line)) - (start.Col - 1) // #nosec G115 -- line length fits
	}
	if underlineLen == 0 {
		underlineLen = 1
	}
	caret := "^" + strings.Repeat("~", int(underlineLen)-1)
	if opts.Color {
		caret = caretColor.Sprint(caret)
	}
	fmt.Fprintf(w, "    %s%s\n", strings.Repeat(" ", int(start.Col)-1), caret)
}
