package script

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// IdentitySource hands out identities for live nodes. Identities must not
// repeat within one namespace.
type IdentitySource interface {
	Next() string
}

type uuidSource struct{}

func (uuidSource) Next() string {
	return uuid.NewString()
}

// UUIDs returns a source of random version 4 UUIDs. It is the default.
func UUIDs() IdentitySource {
	return uuidSource{}
}

// Sequence generates identities prefix1, prefix2, ... It is safe for
// concurrent use.
type Sequence struct {
	prefix  string
	counter uint64
	mu      sync.Mutex
}

// NewSequence creates a Sequence.
func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

// Next returns the next identity.
func (s *Sequence) Next() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counter++
	return fmt.Sprintf("%s%d", s.prefix, s.counter)
}

// Current returns the count of identities handed out.
func (s *Sequence) Current() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counter
}
