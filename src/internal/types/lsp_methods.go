package types

import "go.lsp.dev/protocol"

// LSP protocol lifecycle methods
const (
	// MethodInitialize is sent as the first request from client to server
	MethodInitialize = protocol.MethodInitialize
	// MethodInitialized is sent from client to server after the initialize response
	MethodInitialized = protocol.MethodInitialized
	// MethodWorkspaceDidChangeConfiguration pushes per-filetype settings to the server
	MethodWorkspaceDidChangeConfiguration = protocol.MethodWorkspaceDidChangeConfiguration
)

// LSP document synchronization methods
const (
	// MethodTextDocumentDidOpen is sent when a document is opened
	MethodTextDocumentDidOpen = protocol.MethodTextDocumentDidOpen
	// MethodTextDocumentDidSave is sent when a document is saved
	MethodTextDocumentDidSave = protocol.MethodTextDocumentDidSave
	// MethodTextDocumentDidChange is sent with the full new document text
	MethodTextDocumentDidChange = protocol.MethodTextDocumentDidChange
)

// LSP language feature methods
const (
	MethodTextDocumentCompletion    = protocol.MethodTextDocumentCompletion
	MethodTextDocumentDefinition    = protocol.MethodTextDocumentDefinition
	MethodTextDocumentFormatting    = protocol.MethodTextDocumentFormatting
	MethodTextDocumentRename        = protocol.MethodTextDocumentRename
	MethodTextDocumentSignatureHelp = protocol.MethodTextDocumentSignatureHelp
	MethodTextDocumentHover         = protocol.MethodTextDocumentHover
)
