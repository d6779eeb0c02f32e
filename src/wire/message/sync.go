package message

import "lspwire/src/internal/types"

// DidOpen announces a document and its full text
type DidOpen struct {
	notification
	uri        string
	languageID string
	version    int
	text       string
}

// NewDidOpen requires uri and languageID
func NewDidOpen(uri, languageID string, version int, text string) (*DidOpen, error) {
	if err := requireField(types.MethodTextDocumentDidOpen, "uri", uri); err != nil {
		return nil, err
	}
	if err := requireField(types.MethodTextDocumentDidOpen, "languageId", languageID); err != nil {
		return nil, err
	}
	return &DidOpen{uri: uri, languageID: languageID, version: version, text: text}, nil
}

// Method returns "textDocument/didOpen"
func (*DidOpen) Method() string { return types.MethodTextDocumentDidOpen }

// Payload carries the full text document item
func (m *DidOpen) Payload() map[string]any {
	return map[string]any{
		"textDocument": map[string]any{
			"uri":        m.uri,
			"languageId": m.languageID,
			"version":    m.version,
			"text":       m.text,
		},
	}
}

// DidSave reports a saved document, including its text
type DidSave struct {
	notification
	uri     string
	version int
	text    string
}

// NewDidSave requires uri
func NewDidSave(uri string, version int, text string) (*DidSave, error) {
	if err := requireField(types.MethodTextDocumentDidSave, "uri", uri); err != nil {
		return nil, err
	}
	return &DidSave{uri: uri, version: version, text: text}, nil
}

// Method returns "textDocument/didSave"
func (*DidSave) Method() string { return types.MethodTextDocumentDidSave }

// Payload carries the versioned document and its text
func (m *DidSave) Payload() map[string]any {
	return map[string]any{
		"textDocument": versionedTextDocument(m.uri, m.version),
		"text":         m.text,
	}
}

// DidChange replaces the whole document text. Incremental ranges are
// never sent.
type DidChange struct {
	notification
	uri     string
	version int
	text    string
}

// NewDidChange requires uri
func NewDidChange(uri string, version int, text string) (*DidChange, error) {
	if err := requireField(types.MethodTextDocumentDidChange, "uri", uri); err != nil {
		return nil, err
	}
	return &DidChange{uri: uri, version: version, text: text}, nil
}

// Method returns "textDocument/didChange"
func (*DidChange) Method() string { return types.MethodTextDocumentDidChange }

// Payload carries a single whole-document content change
func (m *DidChange) Payload() map[string]any {
	return map[string]any{
		"textDocument": versionedTextDocument(m.uri, m.version),
		"contentChanges": []any{
			map[string]any{"text": m.text},
		},
	}
}
