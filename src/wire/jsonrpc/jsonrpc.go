// Package jsonrpc wraps LSP messages in JSON-RPC 2.0 envelopes and frames
// them with the Content-Length header of the LSP base protocol.
package jsonrpc

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"strconv"

	"github.com/segmentio/encoding/json"

	"lspwire/src/internal/common"
	"lspwire/src/wire/idgen"
	"lspwire/src/wire/message"
)

// JSON-RPC protocol constants
const (
	JSONRPCVersion = "2.0"

	contentLengthHeader = "Content-Length"
	headerSeparator     = "\r\n\r\n"
)

// ErrNilMessage is returned when Build is called without a message
var ErrNilMessage = stderrors.New("cannot build envelope for nil message")

// Envelope is a JSON-RPC 2.0 request or notification. ID is empty, and
// therefore omitted, for notifications. Params is always present.
type Envelope struct {
	JSONRPC string              `json:"jsonrpc"`
	ID      idgen.CorrelationID `json:"id,omitempty"`
	Method  string              `json:"method"`
	Params  map[string]any      `json:"params"`
}

// IsNotification reports whether the envelope carries no id
func (e Envelope) IsNotification() bool {
	return e.ID == ""
}

// Builder turns messages into envelopes, drawing ids for requests from its
// generator. It is safe for concurrent use when the generator is.
type Builder struct {
	ids idgen.Generator
}

// NewBuilder creates a builder; a nil generator selects idgen.NewRandom
func NewBuilder(ids idgen.Generator) *Builder {
	if ids == nil {
		ids = idgen.NewRandom()
	}
	return &Builder{ids: ids}
}

// Build wraps msg in an envelope. The returned id is empty for notifications.
func (b *Builder) Build(msg message.Message) (idgen.CorrelationID, Envelope, error) {
	if msg == nil {
		return "", Envelope{}, ErrNilMessage
	}

	params := msg.Payload()
	if params == nil {
		params = map[string]any{}
	}
	env := Envelope{
		JSONRPC: JSONRPCVersion,
		Method:  msg.Method(),
		Params:  params,
	}

	if !msg.IsNotification() {
		id := b.ids.NextID()
		if id == "" {
			return "", Envelope{}, fmt.Errorf("id generator returned an empty id for %s", env.Method)
		}
		env.ID = id
	}
	return env.ID, env, nil
}

// Encode builds and frames msg in one step
func (b *Builder) Encode(msg message.Message) (idgen.CorrelationID, []byte, error) {
	id, env, err := b.Build(msg)
	if err != nil {
		return "", nil, err
	}
	frame := Frame(env)
	if id != "" {
		common.WireLogger.Debug("Encoded request: method=%s, id=%s, bytes=%d", env.Method, id, len(frame))
	} else {
		common.WireLogger.Debug("Encoded notification: method=%s, bytes=%d", env.Method, len(frame))
	}
	return id, frame, nil
}

// Frame serializes env and prefixes it with its Content-Length header.
// The length is the UTF-8 byte length of the JSON body. Envelopes hold only
// JSON-safe values, so a marshal failure is a bug and panics.
func Frame(env Envelope) []byte {
	body, err := json.Marshal(env)
	if err != nil {
		panic(fmt.Sprintf("jsonrpc: cannot marshal %s envelope: %v", env.Method, err))
	}
	return FrameBody(body)
}

// FrameBody prefixes an already serialized JSON body with its header
func FrameBody(body []byte) []byte {
	var buf bytes.Buffer
	buf.Grow(len(contentLengthHeader) + 24 + len(body))
	buf.WriteString(contentLengthHeader)
	buf.WriteString(": ")
	buf.WriteString(strconv.Itoa(len(body)))
	buf.WriteString(headerSeparator)
	buf.Write(body)
	return buf.Bytes()
}
