package board

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"time"
)

// TokenSource produces token kinds for initialization and refill
type TokenSource interface {
	NextKind() Kind
}

// RandSource is a xorshift64 generator sampling uniformly from a fixed alphabet
type RandSource struct {
	state uint64
	kinds int
}

// NewRandSource creates a generator over [0, kinds); seed 0 is remapped to 1
func NewRandSource(seed uint64, kinds int) *RandSource {
	if seed == 0 {
		seed = 1
	}
	if kinds <= 0 {
		kinds = 1
	}
	return &RandSource{state: seed, kinds: kinds}
}

func (r *RandSource) next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// NextKind returns the next token kind
func (r *RandSource) NextKind() Kind {
	return Kind(r.next() % uint64(r.kinds))
}

// NewSeed draws a non-zero seed from the system entropy pool, falling back to the clock
func NewSeed() uint64 {
	var seed uint64
	if err := binary.Read(cryptorand.Reader, binary.BigEndian, &seed); err != nil || seed == 0 {
		return uint64(time.Now().UnixNano()) | 1
	}
	return seed
}

// ScriptedSource replays a fixed sequence of kinds, cycling when exhausted
type ScriptedSource struct {
	kinds []Kind
	pos   int
}

// NewScriptedSource creates a source returning kinds in order.
// An empty script always yields kind 0.
func NewScriptedSource(kinds ...Kind) *ScriptedSource {
	return &ScriptedSource{kinds: kinds}
}

// NextKind returns the next scripted kind
func (s *ScriptedSource) NextKind() Kind {
	if len(s.kinds) == 0 {
		return 0
	}
	k := s.kinds[s.pos%len(s.kinds)]
	s.pos++
	return k
}

// Drawn returns how many kinds have been consumed
func (s *ScriptedSource) Drawn() int {
	return s.pos
}
