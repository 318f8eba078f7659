package random

import (
	"math/rand"
	"sync"
)

// Source supplies uniform samples in [0, 1).
type Source interface {
	Float64() float64
}

// SourceFunc adapts a function to Source.
type SourceFunc func() float64

// Float64 returns the next sample.
func (f SourceFunc) Float64() float64 { return f() }

// NewSeeded returns a deterministic source. The returned source is not safe
// for concurrent use, wrap it with NewLocked when sharing it.
func NewSeeded(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// Fixed returns a source that always yields value.
func Fixed(value float64) Source {
	return SourceFunc(func() float64 { return value })
}

type lockedSource struct {
	mu  sync.Mutex
	src Source
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Float64()
}

// NewLocked guards src with a mutex.
func NewLocked(src Source) Source {
	if locked, ok := src.(*lockedSource); ok {
		return locked
	}
	return &lockedSource{src: src}
}
