package concurrentmap

import "errors"

var (
	// ErrKeyNotFound is returned by At and Index when the requested
	// key is absent from the map.
	ErrKeyNotFound = errors.New("concurrentmap: key not found")

	// ErrAllocationFailure is reserved for callers layering their own
	// allocator on top of this package. Go's built-in map has no
	// recoverable allocation-failure signal: running out of memory is
	// a fatal runtime crash, not a returnable error, so this package
	// never returns it itself.
	ErrAllocationFailure = errors.New("concurrentmap: allocation failure")
)
