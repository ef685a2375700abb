package lsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"symexec/internal/lsp"
)

func noopContext() *glsp.Context {
	return &glsp.Context{Notify: func(method string, params any) {}}
}

func TestTextDocumentHoverWithNoOpenDocumentReturnsNil(t *testing.T) {
	h := lsp.NewHandler()
	hover, err := h.TextDocumentHover(nil, &protocol.HoverParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: "file:///never/opened.sym"},
		},
	})
	require.NoError(t, err)
	assert.Nil(t, hover)
}

func TestTextDocumentHoverAfterOpenShowsSymbolicResult(t *testing.T) {
	h := lsp.NewHandler()
	uri := "file:///tmp/fixture.sym"

	err := h.TextDocumentDidOpen(noopContext(), &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{
			URI:  uri,
			Text: "f(int x): int {\n\treturn x + 1\n}",
		},
	})
	require.NoError(t, err)

	hover, err := h.TextDocumentHover(nil, &protocol.HoverParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: uri},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, hover)

	content, ok := hover.Contents.(protocol.MarkupContent)
	require.True(t, ok)
	assert.Contains(t, content.Value, "'x' + 1")
}

func TestTextDocumentDidCloseForgetsCachedAST(t *testing.T) {
	h := lsp.NewHandler()
	uri := "file:///tmp/fixture2.sym"

	require.NoError(t, h.TextDocumentDidOpen(noopContext(), &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, Text: "f(): int {\n\treturn 1\n}"},
	}))
	require.NoError(t, h.TextDocumentDidClose(noopContext(), &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	}))

	hover, err := h.TextDocumentHover(nil, &protocol.HoverParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: uri},
		},
	})
	require.NoError(t, err)
	assert.Nil(t, hover)
}

func TestTextDocumentDidOpenPublishesDiagnosticsOnSyntaxError(t *testing.T) {
	h := lsp.NewHandler()

	var published *protocol.PublishDiagnosticsParams
	ctx := &glsp.Context{Notify: func(method string, params any) {
		if p, ok := params.(*protocol.PublishDiagnosticsParams); ok {
			published = p
		}
	}}

	err := h.TextDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{
			URI:  "file:///tmp/broken.sym",
			Text: "f(int x): int {\n\ty = x +\n\treturn y\n}",
		},
	})
	require.NoError(t, err)
	require.NotNil(t, published)
	assert.NotEmpty(t, published.Diagnostics)
}
