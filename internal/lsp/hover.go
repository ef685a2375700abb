package lsp

import (
	"fmt"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"symexec/internal/interp"
	"symexec/internal/report"
)

// TextDocumentHover reports the symbolic result of the whole function
// on hover. The AST built here carries no per-node source positions, so
// this cannot narrow the answer to the token under the cursor — it
// shows the function's full state list wherever the cursor sits, which
// is still the one thing worth showing for a function this short.
func (h *Handler) TextDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}

	h.mu.RLock()
	fn, ok := h.asts[path]
	h.mu.RUnlock()
	if !ok {
		return nil, nil
	}

	states := interp.Execute(fn)
	body := fmt.Sprintf("**symbolic execution of `%s`**\n\n```\n%s```", fn.Name, report.States(states))

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: body,
		},
	}, nil
}
