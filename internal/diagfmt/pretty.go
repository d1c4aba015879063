// Package diagfmt renders diagnostics and compilation results for humans.
package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"widl/internal/diag"
	"widl/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan, color.Bold)
	noteColor    = color.New(color.FgBlue)
	caretColor   = color.New(color.FgGreen, color.Bold)
)

// Pretty formats diagnostics in a human-readable way. It walks bag.Items()
// (call bag.Sort() first for stable output). Each diagnostic prints as
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//
// followed by the source line with a ^~~~ underline covering the span, then
// the notes in the same layout.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeHeading(w, fs, d.Primary, severityLabel(d.Severity, opts.Color), d.Code.ID(), d.Message, opts)
		writeContext(w, fs, d.Primary, opts)
		if !opts.ShowNotes {
			continue
		}
		for _, note := range d.Notes {
			label := "note"
			if opts.Color {
				label = noteColor.Sprint(label)
			}
			writeHeading(w, fs, note.Span, label, "", note.Msg, opts)
			writeContext(w, fs, note.Span, opts)
		}
	}
}

func severityLabel(sev diag.Severity, colored bool) string {
	if !colored {
		return sev.String()
	}
	switch sev {
	case diag.SevError:
		return errorColor.Sprint(sev.String())
	case diag.SevWarning:
		return warningColor.Sprint(sev.String())
	default:
		return infoColor.Sprint(sev.String())
	}
}

func writeHeading(w io.Writer, fs *source.FileSet, sp source.Span, label, code, msg string, opts PrettyOpts) {
	path := displayPath(fs.Get(sp.File).Path, opts.PathMode)
	start, _ := fs.Resolve(sp)
	if code != "" {
		fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n", path, start.Line, start.Col, label, code, msg)
		return
	}
	fmt.Fprintf(w, "%s:%d:%d: %s: %s\n", path, start.Line, start.Col, label, msg)
}

// writeContext prints the first source line of the span with an underline.
func writeContext(w io.Writer, fs *source.FileSet, sp source.Span, opts PrettyOpts) {
	start, end := fs.Resolve(sp)
	line := fs.Get(sp.File).GetLine(start.Line)
	if line == "" {
		return
	}
	fmt.Fprintf(w, "    %s\n", line)

	underlineLen := uint32(1)
	if end.Line == start.Line && end.Col > start.Col {
		underlineLen = end.Col - start.Col
	}
	underline := buildUnderline(line, start.Col, underlineLen)
	if opts.Color {
		underline = caretColor.Sprint(underline)
	}
	fmt.Fprintf(w, "    %s\n", underline)
}

// buildUnderline positions a ^~~~ marker under the 1-based column, keeping
// tabs and wide runes aligned with the line above.
func buildUnderline(line string, col, length uint32) string {
	var b strings.Builder
	pos := uint32(1)
	for _, r := range line {
		if pos >= col {
			break
		}
		if r == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
		}
		pos++
	}
	b.WriteByte('^')
	for i := uint32(1); i < length; i++ {
		b.WriteByte('~')
	}
	return b.String()
}

func displayPath(path string, mode PathMode) string {
	if mode == PathModeBasename {
		return filepath.Base(path)
	}
	return path
}
