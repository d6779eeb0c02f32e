package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMethodNames(t *testing.T) {
	expected := map[string]string{
		MethodInitialize:                      "initialize",
		MethodInitialized:                     "initialized",
		MethodWorkspaceDidChangeConfiguration: "workspace/didChangeConfiguration",
		MethodTextDocumentDidOpen:             "textDocument/didOpen",
		MethodTextDocumentDidSave:             "textDocument/didSave",
		MethodTextDocumentDidChange:           "textDocument/didChange",
		MethodTextDocumentCompletion:          "textDocument/completion",
		MethodTextDocumentDefinition:          "textDocument/definition",
		MethodTextDocumentFormatting:          "textDocument/formatting",
		MethodTextDocumentRename:              "textDocument/rename",
		MethodTextDocumentSignatureHelp:       "textDocument/signatureHelp",
		MethodTextDocumentHover:               "textDocument/hover",
	}
	assert.Len(t, expected, 12)
	for got, want := range expected {
		assert.Equal(t, want, got)
	}
}
