// Command symexec runs symbolic execution over a single function and
// writes the pretty-printed final states to an output file.
package main

import (
	"fmt"
	"log"
	"os"

	"symexec/internal/diag"
	"symexec/internal/grammar"
	"symexec/internal/interp"
	"symexec/internal/report"
	"symexec/internal/sema"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "Usage: %s <input file> <output file>\n", os.Args[0])
		os.Exit(1)
	}

	inputPath, outputPath := os.Args[1], os.Args[2]

	source, err := os.ReadFile(inputPath)
	if err != nil {
		log.Println(diag.IOError(inputPath, err))
		os.Exit(1)
	}

	fn, err := grammar.ParseSource(inputPath, string(source))
	if err != nil {
		reporter := diag.NewReporter(inputPath, string(source))
		log.Println(reporter.Format(err))
		os.Exit(1)
	}

	if errs := sema.Check(fn); len(errs) > 0 {
		for _, e := range errs {
			log.Println(e)
		}
		os.Exit(1)
	}

	states := interp.Execute(fn)
	output := report.States(states)

	if err := os.WriteFile(outputPath, []byte(output), 0o644); err != nil {
		log.Println(diag.IOError(outputPath, err))
		os.Exit(1)
	}
}
