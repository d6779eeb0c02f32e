package wire

import (
	"fmt"

	"lspwire/src/wire/idgen"
	"lspwire/src/wire/message"
)

// Frame is one encoded message of a sequence
type Frame struct {
	ID     idgen.CorrelationID
	Method string
	Bytes  []byte
}

// Document is the buffer opened at the end of a handshake
type Document struct {
	URI        string
	LanguageID string
	Version    int
	Text       string
}

// Handshake encodes the session start-up sequence:
// initialize, initialized, workspace/didChangeConfiguration and, when doc
// has a URI, textDocument/didOpen. Every message is validated before any
// frame is returned, so a failure yields no partial sequence.
func (e *Encoder) Handshake(processID int, workspaces []message.Workspace, filetype string, doc Document) ([]Frame, error) {
	initialize, err := message.NewInitialize(processID, workspaces)
	if err != nil {
		return nil, err
	}
	configuration, err := message.NewDidChangeConfiguration(filetype, e.lookup)
	if err != nil {
		return nil, fmt.Errorf("settings for filetype %q: %w", filetype, err)
	}

	msgs := []message.Message{initialize, message.NewInitialized(), configuration}
	if doc.URI != "" {
		open, err := message.NewDidOpen(doc.URI, doc.LanguageID, doc.Version, doc.Text)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, open)
	}

	frames := make([]Frame, 0, len(msgs))
	for _, msg := range msgs {
		id, b, err := e.builder.Encode(msg)
		if err != nil {
			return nil, err
		}
		frames = append(frames, Frame{ID: id, Method: msg.Method(), Bytes: b})
	}
	return frames, nil
}
