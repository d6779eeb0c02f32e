// Package wire is the entry point for hosts: one call per LSP message that
// returns the correlation id and the framed bytes ready to write to the
// server's stdin.
package wire

import (
	"lspwire/src/wire/idgen"
	"lspwire/src/wire/jsonrpc"
	"lspwire/src/wire/message"
)

// Encoder builds and frames messages. It holds no per-message state and is
// safe for concurrent use.
type Encoder struct {
	builder *jsonrpc.Builder
	lookup  message.ConfigLookup
}

// NewEncoder creates an encoder. A nil ids selects random ids; a nil
// lookup makes every didChangeConfiguration send empty settings.
func NewEncoder(ids idgen.Generator, lookup message.ConfigLookup) *Encoder {
	return &Encoder{
		builder: jsonrpc.NewBuilder(ids),
		lookup:  lookup,
	}
}

// Encode builds and frames any message. The id is empty for notifications.
func (e *Encoder) Encode(msg message.Message) (idgen.CorrelationID, []byte, error) {
	return e.builder.Encode(msg)
}

func (e *Encoder) encode(msg message.Message, err error) (idgen.CorrelationID, []byte, error) {
	if err != nil {
		return "", nil, err
	}
	return e.builder.Encode(msg)
}

// Initialize frames the initialize request for workspaces
func (e *Encoder) Initialize(processID int, workspaces []message.Workspace) (idgen.CorrelationID, []byte, error) {
	return e.encode(message.NewInitialize(processID, workspaces))
}

// Initialized frames the initialized notification
func (e *Encoder) Initialized() (idgen.CorrelationID, []byte, error) {
	return e.builder.Encode(message.NewInitialized())
}

// DidChangeConfiguration frames the settings registered for filetype
func (e *Encoder) DidChangeConfiguration(filetype string) (idgen.CorrelationID, []byte, error) {
	return e.encode(message.NewDidChangeConfiguration(filetype, e.lookup))
}

// DidOpen frames a textDocument/didOpen notification
func (e *Encoder) DidOpen(uri, languageID string, version int, text string) (idgen.CorrelationID, []byte, error) {
	return e.encode(message.NewDidOpen(uri, languageID, version, text))
}

// DidSave frames a textDocument/didSave notification
func (e *Encoder) DidSave(uri string, version int, text string) (idgen.CorrelationID, []byte, error) {
	return e.encode(message.NewDidSave(uri, version, text))
}

// DidChange frames a full-text textDocument/didChange notification
func (e *Encoder) DidChange(uri string, version int, text string) (idgen.CorrelationID, []byte, error) {
	return e.encode(message.NewDidChange(uri, version, text))
}

// Completion frames a completion request
func (e *Encoder) Completion(uri string, line, offset int) (idgen.CorrelationID, []byte, error) {
	return e.encode(message.NewCompletion(uri, line, offset))
}

// Definition frames a definition request
func (e *Encoder) Definition(uri string, line, offset int) (idgen.CorrelationID, []byte, error) {
	return e.encode(message.NewDefinition(uri, line, offset))
}

// Format frames a whole-document formatting request
func (e *Encoder) Format(uri string) (idgen.CorrelationID, []byte, error) {
	return e.encode(message.NewFormat(uri))
}

// Rename collapses the two rename steps when the name is already known
func (e *Encoder) Rename(uri string, line, offset int, newName string) (idgen.CorrelationID, []byte, error) {
	pending, err := message.NewRename(uri, line, offset)
	if err != nil {
		return "", nil, err
	}
	return e.encode(pending.Named(newName))
}

// Signature frames a signatureHelp request
func (e *Encoder) Signature(uri string, line, offset int) (idgen.CorrelationID, []byte, error) {
	return e.encode(message.NewSignature(uri, line, offset))
}

// Hover frames a hover request
func (e *Encoder) Hover(uri string, line, offset int) (idgen.CorrelationID, []byte, error) {
	return e.encode(message.NewHover(uri, line, offset))
}
