// Package diag turns a parse or I/O failure into the one-line,
// caret-annotated, colourised diagnostic the CLI and REPL print on
// fatal error.
package diag

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/fatih/color"
)

// Reporter formats diagnostics against one named source file.
type Reporter struct {
	filename string
	lines    []string
}

// NewReporter creates a reporter for filename holding source.
func NewReporter(filename, source string) *Reporter {
	return &Reporter{filename: filename, lines: strings.Split(source, "\n")}
}

// Format renders err as a one-line diagnostic. Parse errors get a
// caret pointing at the offending column; anything else is reported as
// a bare I/O failure.
func (r *Reporter) Format(err error) string {
	if pe, ok := err.(participle.Error); ok {
		return r.formatParseError(pe)
	}
	return fmt.Sprintf("%s %s", color.RedString("[%s]", CodeIO), err)
}

func (r *Reporter) formatParseError(pe participle.Error) string {
	pos := pe.Position()

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s:%d:%d: %s\n",
		color.RedString("[%s] syntax error in", CodeSyntax), r.filename, pos.Line, pos.Column, pe.Message())

	if pos.Line > 0 && pos.Line <= len(r.lines) {
		line := r.lines[pos.Line-1]
		b.WriteString(line)
		b.WriteByte('\n')
		col := pos.Column - 1
		if col < 0 {
			col = 0
		}
		b.WriteString(color.HiRedString(strings.Repeat(" ", col) + "^"))
	}

	return b.String()
}

// IOError reports a file-open or file-write failure.
func IOError(path string, err error) string {
	return fmt.Sprintf("%s failed on %s: %s", color.RedString("[%s]", CodeIO), path, err)
}
