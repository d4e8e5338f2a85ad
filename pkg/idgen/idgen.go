// Package idgen provides domain.IDGenerator implementations.
package idgen

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// UUID generates short random identifiers derived from UUIDv4 values.
type UUID struct {
	// Length truncates the hex form; zero keeps the full 32 characters.
	Length int
}

// NextID returns a new random identifier.
func (g UUID) NextID() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	if g.Length > 0 && g.Length < len(id) {
		return id[:g.Length]
	}
	return id
}

// Sequence generates deterministic identifiers: prefix1, prefix2, ...
type Sequence struct {
	Prefix string

	mu   sync.Mutex
	next int
}

// NewSequence returns a Sequence starting at 1.
func NewSequence(prefix string) *Sequence {
	return &Sequence{Prefix: prefix}
}

// NextID returns the next identifier in the sequence.
func (s *Sequence) NextID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	return fmt.Sprintf("%s%d", s.Prefix, s.next)
}
