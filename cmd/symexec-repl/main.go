// Command symexec-repl is an interactive front end for the same core
// the batch CLI drives: it reads one function definition at a time,
// symbolically executes it, and prints the simplified state list.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"symexec/internal/diag"
	"symexec/internal/grammar"
	"symexec/internal/interp"
	"symexec/internal/report"
	"symexec/internal/sema"
)

const prompt = ">> "

func main() {
	Start(os.Stdin, os.Stdout)
}

// Start runs the read-eval-print loop against in, writing to out until
// in is exhausted.
func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, prompt)

		source, ok := readFunction(scanner)
		if !ok {
			return
		}
		if strings.TrimSpace(source) == "" {
			continue
		}

		evalAndPrint(source, out)
	}
}

// readFunction buffers lines until brace depth returns to zero, so a
// function spanning multiple lines can be entered as one unit.
func readFunction(scanner *bufio.Scanner) (string, bool) {
	var b strings.Builder
	depth := 0
	sawBrace := false

	for scanner.Scan() {
		line := scanner.Text()
		b.WriteString(line)
		b.WriteByte('\n')

		for _, r := range line {
			switch r {
			case '{':
				depth++
				sawBrace = true
			case '}':
				depth--
			}
		}

		if sawBrace && depth <= 0 {
			return b.String(), true
		}
	}

	return b.String(), b.Len() > 0
}

func evalAndPrint(source string, out io.Writer) {
	fn, err := grammar.ParseSource("<repl>", source)
	if err != nil {
		reporter := diag.NewReporter("<repl>", source)
		color.New(color.FgRed).Fprintln(out, reporter.Format(err))
		return
	}

	if errs := sema.Check(fn); len(errs) > 0 {
		for _, e := range errs {
			color.New(color.FgRed).Fprintln(out, e)
		}
		return
	}

	states := interp.Execute(fn)
	color.New(color.FgGreen).Fprint(out, report.States(states))
}
