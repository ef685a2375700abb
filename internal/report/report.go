// Package report renders the final states of a symbolic execution run
// into the text format the CLI and REPL both emit: every expression is
// fed through the simplifier before being printed.
package report

import (
	"fmt"
	"sort"
	"strings"

	"symexec/internal/ast"
	"symexec/internal/interp"
	"symexec/internal/simplify"
)

// States renders a full state list:
//
//	{
//		{
//			<var> = <expr>
//			...
//			pc = <expr> & ... | true
//			result = <expr> | undefined
//		}
//		...
//	}
func States(states []*interp.State) string {
	var b strings.Builder
	b.WriteString("{\n")
	for _, s := range states {
		b.WriteString("\t{\n")
		writeState(&b, s)
		b.WriteString("\t}\n")
	}
	b.WriteString("}\n")
	return b.String()
}

func writeState(b *strings.Builder, s *interp.State) {
	names := make([]string, 0, len(s.Memory))
	for name := range s.Memory {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Fprintf(b, "\t\t%s = %s\n", name, ast.Render(simplify.Expr(s.Memory[name])))
	}

	b.WriteString("\t\tpc = ")
	if len(s.PathCondition) == 0 {
		b.WriteString("true")
	} else {
		parts := make([]string, len(s.PathCondition))
		for i, e := range s.PathCondition {
			parts[i] = ast.Render(simplify.Expr(e))
		}
		b.WriteString(strings.Join(parts, " & "))
	}
	b.WriteString("\n")

	if s.Result == nil {
		b.WriteString("\t\tresult = undefined\n")
	} else {
		fmt.Fprintf(b, "\t\tresult = %s\n", ast.Render(simplify.Expr(s.Result)))
	}
}
