// Package lsp implements an editor-integration server for the source
// language: diagnostics on open/change, and hover over a function
// showing the exact symbolic-execution output the batch CLI would
// write. Scoped to what a symbolic-execution tool can usefully say
// about a five-keyword language — no completion or semantic-token
// providers (see DESIGN.md).
package lsp

import (
	"fmt"
	"log"
	"net/url"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"symexec/internal/ast"
	"symexec/internal/grammar"
	"symexec/internal/sema"
)

// Handler implements the glsp protocol.Handler callbacks. One Handler
// serves every open document.
type Handler struct {
	mu      sync.RWMutex
	sources map[string]string
	asts    map[string]*ast.Function
}

// NewHandler returns a ready-to-use Handler.
func NewHandler() *Handler {
	return &Handler{
		sources: make(map[string]string),
		asts:    make(map[string]*ast.Function),
	}
}

// Initialize advertises this server's capabilities.
func (h *Handler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Println("symexec-lsp: initialize")

	syncKind := protocol.TextDocumentSyncKindFull
	trueVal := true

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: &trueVal,
				Change:    &syncKind,
			},
			HoverProvider: &trueVal,
		},
	}, nil
}

func (h *Handler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Println("symexec-lsp: initialized")
	return nil
}

func (h *Handler) Shutdown(ctx *glsp.Context) error {
	log.Println("symexec-lsp: shutdown")
	return nil
}

func (h *Handler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	return h.refresh(ctx, params.TextDocument.URI, params.TextDocument.Text)
}

func (h *Handler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	// Full-document sync: the last change event carries the whole text.
	change := params.ContentChanges[len(params.ContentChanges)-1]
	full, ok := change.(protocol.TextDocumentContentChangeEventWhole)
	if !ok {
		return nil
	}
	return h.refresh(ctx, params.TextDocument.URI, full.Text)
}

func (h *Handler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return err
	}
	h.mu.Lock()
	delete(h.sources, path)
	delete(h.asts, path)
	h.mu.Unlock()
	return nil
}

// refresh reparses a document's new text, publishes parse/semantic
// diagnostics, and caches the AST for hover.
func (h *Handler) refresh(ctx *glsp.Context, uri protocol.DocumentUri, text string) error {
	path, err := uriToPath(uri)
	if err != nil {
		return fmt.Errorf("invalid URI %s: %w", uri, err)
	}

	fn, parseErr := grammar.ParseSource(path, text)
	if parseErr != nil {
		publishDiagnostics(ctx, uri, parseDiagnostics(parseErr))
		return nil
	}

	var diagnostics []protocol.Diagnostic
	if errs := sema.Check(fn); len(errs) > 0 {
		diagnostics = semaDiagnostics(errs)
	}

	h.mu.Lock()
	h.sources[path] = text
	h.asts[path] = fn
	h.mu.Unlock()

	publishDiagnostics(ctx, uri, diagnostics)
	return nil
}

func publishDiagnostics(ctx *glsp.Context, uri protocol.DocumentUri, diagnostics []protocol.Diagnostic) {
	if diagnostics == nil {
		diagnostics = []protocol.Diagnostic{}
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func uriToPath(rawURI protocol.DocumentUri) (string, error) {
	u, err := url.Parse(string(rawURI))
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}
	return filepath.FromSlash(path), nil
}

// reporterPosition adapts a diag-style 1-based line/column to a
// 0-based LSP position.
func reporterPosition(line, column int) protocol.Position {
	l := line - 1
	c := column - 1
	if l < 0 {
		l = 0
	}
	if c < 0 {
		c = 0
	}
	return protocol.Position{Line: uint32(l), Character: uint32(c)}
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity { return &s }
func ptrString(s string) *string                                            { return &s }
