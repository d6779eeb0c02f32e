package message

import "lspwire/src/internal/types"

// textPosition is the shared {textDocument, position} request body.
// Line and offset are 0-based, offset in UTF-16 code units, and are sent
// exactly as given.
type textPosition struct {
	uri    string
	line   int
	offset int
}

func newTextPosition(method, uri string, line, offset int) (textPosition, error) {
	if err := requireField(method, "uri", uri); err != nil {
		return textPosition{}, err
	}
	return textPosition{uri: uri, line: line, offset: offset}, nil
}

// URI, Line and Offset return the position exactly as given
func (p textPosition) URI() string { return p.uri }
func (p textPosition) Line() int   { return p.line }
func (p textPosition) Offset() int { return p.offset }

// Payload returns the textDocument and position params
func (p textPosition) Payload() map[string]any {
	return map[string]any{
		"textDocument": textDocument(p.uri),
		"position": map[string]any{
			"line":      p.line,
			"character": p.offset,
		},
	}
}

// Completion requests completion items at a position
type Completion struct {
	request
	textPosition
}

// NewCompletion requires uri
func NewCompletion(uri string, line, offset int) (*Completion, error) {
	pos, err := newTextPosition(types.MethodTextDocumentCompletion, uri, line, offset)
	if err != nil {
		return nil, err
	}
	return &Completion{textPosition: pos}, nil
}

// Method returns "textDocument/completion"
func (*Completion) Method() string { return types.MethodTextDocumentCompletion }

// Definition requests the definition location of the symbol at a position
type Definition struct {
	request
	textPosition
}

// NewDefinition requires uri
func NewDefinition(uri string, line, offset int) (*Definition, error) {
	pos, err := newTextPosition(types.MethodTextDocumentDefinition, uri, line, offset)
	if err != nil {
		return nil, err
	}
	return &Definition{textPosition: pos}, nil
}

// Method returns "textDocument/definition"
func (*Definition) Method() string { return types.MethodTextDocumentDefinition }

// Signature requests signature help at a position
type Signature struct {
	request
	textPosition
}

// NewSignature requires uri
func NewSignature(uri string, line, offset int) (*Signature, error) {
	pos, err := newTextPosition(types.MethodTextDocumentSignatureHelp, uri, line, offset)
	if err != nil {
		return nil, err
	}
	return &Signature{textPosition: pos}, nil
}

// Method returns "textDocument/signatureHelp"
func (*Signature) Method() string { return types.MethodTextDocumentSignatureHelp }

// Hover requests hover information at a position
type Hover struct {
	request
	textPosition
}

// NewHover requires uri
func NewHover(uri string, line, offset int) (*Hover, error) {
	pos, err := newTextPosition(types.MethodTextDocumentHover, uri, line, offset)
	if err != nil {
		return nil, err
	}
	return &Hover{textPosition: pos}, nil
}

// Method returns "textDocument/hover"
func (*Hover) Method() string { return types.MethodTextDocumentHover }

// Format requests edits that format a whole document
type Format struct {
	request
	uri string
}

// NewFormat requires uri
func NewFormat(uri string) (*Format, error) {
	if err := requireField(types.MethodTextDocumentFormatting, "uri", uri); err != nil {
		return nil, err
	}
	return &Format{uri: uri}, nil
}

// Method returns "textDocument/formatting"
func (*Format) Method() string { return types.MethodTextDocumentFormatting }

// Payload returns the textDocument params
func (m *Format) Payload() map[string]any {
	return map[string]any{"textDocument": textDocument(m.uri)}
}

// PendingRename holds the position of a rename until the new name is known.
// It is not a Message and cannot be encoded.
type PendingRename struct {
	pos textPosition
}

// NewRename starts a rename at a position; call Named to finish it
func NewRename(uri string, line, offset int) (*PendingRename, error) {
	pos, err := newTextPosition(types.MethodTextDocumentRename, uri, line, offset)
	if err != nil {
		return nil, err
	}
	return &PendingRename{pos: pos}, nil
}

// Named attaches the new symbol name. The pending value can be reused to
// produce renames with different names.
func (p *PendingRename) Named(name string) (*Rename, error) {
	if err := requireField(types.MethodTextDocumentRename, "newName", name); err != nil {
		return nil, err
	}
	return &Rename{textPosition: p.pos, newName: name}, nil
}

// Rename requests workspace edits renaming the symbol at a position
type Rename struct {
	request
	textPosition
	newName string
}

// Method returns "textDocument/rename"
func (*Rename) Method() string { return types.MethodTextDocumentRename }

// NewName returns the requested symbol name
func (m *Rename) NewName() string { return m.newName }

// Payload adds newName to the position params
func (m *Rename) Payload() map[string]any {
	payload := m.textPosition.Payload()
	payload["newName"] = m.newName
	return payload
}
