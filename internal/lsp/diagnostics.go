package lsp

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"symexec/internal/sema"
)

// parseDiagnostics converts a grammar parse failure into a single
// caret-range diagnostic.
func parseDiagnostics(err error) []protocol.Diagnostic {
	pe, ok := err.(participle.Error)
	if !ok {
		return []protocol.Diagnostic{{
			Range:    protocol.Range{Start: protocol.Position{}, End: protocol.Position{Character: 1}},
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Source:   ptrString("symexec"),
			Message:  err.Error(),
		}}
	}

	pos := pe.Position()
	start := reporterPosition(pos.Line, pos.Column)
	end := start
	end.Character++

	return []protocol.Diagnostic{{
		Range:    protocol.Range{Start: start, End: end},
		Severity: ptrSeverity(protocol.DiagnosticSeverityError),
		Source:   ptrString("symexec"),
		Message:  pe.Message(),
	}}
}

// semaDiagnostics converts static-check findings into diagnostics. The
// analyzer carries no position information (see DESIGN.md), so every
// finding is anchored at the top of the document.
func semaDiagnostics(errs []*sema.Error) []protocol.Diagnostic {
	out := make([]protocol.Diagnostic, 0, len(errs))
	for _, e := range errs {
		out = append(out, protocol.Diagnostic{
			Range:    protocol.Range{Start: protocol.Position{}, End: protocol.Position{Character: 1}},
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Source:   ptrString("symexec"),
			Message:  fmt.Sprintf("[%s] %s", e.Code, e.Message),
		})
	}
	return out
}
