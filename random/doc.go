// Package random draws pseudo-random values from inclusive numeric ranges.
//
// The randomness is always supplied by the caller through a Source, so that a
// seeded source yields a reproducible sequence:
//
//	src := random.NewSeeded(42)
//	n, err := random.Int(1, 6, src)
//	f, err := random.Float(0.5, 2.5, src)
//
// Both kinds use the span end-start+1. For floating-point ranges this means the
// result may exceed end by up to one unit; the behaviour is kept as is for
// compatibility with existing callers.
package random
