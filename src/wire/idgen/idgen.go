// Package idgen produces correlation ids for outbound LSP requests.
package idgen

import (
	"encoding/hex"
	"strconv"
	"sync/atomic"

	"github.com/gofrs/uuid"
)

// CorrelationID matches a later response to the request that carried it.
// The empty value means "no id" and is only used for notifications.
type CorrelationID string

// randomIDLength is the number of hex characters kept from a v4 UUID (64 bits)
const randomIDLength = 16

// Generator hands out ids that are unique for the lifetime of a session.
// Implementations must be safe for concurrent use.
type Generator interface {
	NextID() CorrelationID
}

// Random generates ids from random version 4 UUIDs
type Random struct{}

// NewRandom returns the default generator
func NewRandom() *Random {
	return &Random{}
}

// NextID returns the first 16 hex characters of a fresh v4 UUID.
// It panics only if the system entropy source fails.
func (*Random) NextID() CorrelationID {
	u := uuid.Must(uuid.NewV4())
	return CorrelationID(hex.EncodeToString(u.Bytes())[:randomIDLength])
}

// Sequence generates deterministic ids "<prefix>1", "<prefix>2", ...
type Sequence struct {
	prefix string
	next   atomic.Uint64
}

// NewSequence creates a counter generator starting at 1
func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

// NextID returns the next id in the sequence
func (s *Sequence) NextID() CorrelationID {
	n := s.next.Add(1)
	return CorrelationID(s.prefix + strconv.FormatUint(n, 10))
}

// Func adapts a plain function to the Generator interface
type Func func() CorrelationID

// NextID calls f
func (f Func) NextID() CorrelationID {
	return f()
}
