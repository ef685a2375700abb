// Command symexec-lsp is an editor-integration front end: the same
// core the batch CLI drives, wired to diagnostics-on-change and
// hover-for-result over stdio.
package main

import (
	"log"
	"os"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"symexec/internal/lsp"
)

const serverName = "symexec-lsp"

func main() {
	commonlog.Configure(1, nil)

	h := lsp.NewHandler()

	handler := protocol.Handler{
		Initialize:            h.Initialize,
		Initialized:           h.Initialized,
		Shutdown:              h.Shutdown,
		TextDocumentDidOpen:   h.TextDocumentDidOpen,
		TextDocumentDidClose:  h.TextDocumentDidClose,
		TextDocumentDidChange: h.TextDocumentDidChange,
		TextDocumentHover:     h.TextDocumentHover,
	}

	s := server.NewServer(&handler, serverName, false)

	log.Println("Starting symexec LSP server...")
	if err := s.RunStdio(); err != nil {
		log.Println("symexec-lsp:", err)
		os.Exit(1)
	}
}
