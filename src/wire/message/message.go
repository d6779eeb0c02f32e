// Package message defines one type per LSP method the client sends. Each
// type knows its method name, whether it is a notification, and how to
// build its params object.
package message

import (
	"lspwire/src/internal/errors"
)

// Message is an outbound LSP message. The set of implementations is closed.
type Message interface {
	// Method is the LSP method name, e.g. "textDocument/completion"
	Method() string
	// IsNotification reports whether the message is sent without an id
	IsNotification() bool
	// Payload builds a fresh params object on every call
	Payload() map[string]any

	sealed()
}

type request struct{}

func (request) IsNotification() bool { return false }
func (request) sealed()              {}

type notification struct{}

func (notification) IsNotification() bool { return true }
func (notification) sealed()              {}

func requireField(method, field, value string) error {
	if value == "" {
		return errors.NewMissingRequiredFieldError(method, field)
	}
	return nil
}

func textDocument(uri string) map[string]any {
	return map[string]any{"uri": uri}
}

func versionedTextDocument(uri string, version int) map[string]any {
	return map[string]any{"uri": uri, "version": version}
}

var (
	_ Message = (*Initialize)(nil)
	_ Message = (*Initialized)(nil)
	_ Message = (*DidChangeConfiguration)(nil)
	_ Message = (*DidOpen)(nil)
	_ Message = (*DidSave)(nil)
	_ Message = (*DidChange)(nil)
	_ Message = (*Completion)(nil)
	_ Message = (*Definition)(nil)
	_ Message = (*Format)(nil)
	_ Message = (*Rename)(nil)
	_ Message = (*Signature)(nil)
	_ Message = (*Hover)(nil)
)
