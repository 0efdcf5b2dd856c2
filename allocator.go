package concurrentmap

import "math"

// Allocator stands in for the memory-allocation abstraction an
// associative container's type parameters normally expose. Go has no
// user-facing allocator API for a built-in map, so this is a minimal
// rendering: it only answers the one question callers actually ask of
// it.
type Allocator struct{}

// MaxSize returns the largest number of entries this allocator is
// willing to claim it can hold. Go's map has no hard capacity limit
// short of available memory, so this reports the largest representable
// size.
func (Allocator) MaxSize() int {
	return math.MaxInt
}
