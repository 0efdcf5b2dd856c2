// Package util provides the low-level hashing helpers used to pick a
// shard for a given key. It mirrors the role lazydb's own util package
// played for its on-disk indices, minus everything that only makes
// sense for persisted data.
package util

import "github.com/spaolacci/murmur3"

// String returns a deterministic 64-bit hash of s, stable across
// processes and runs. Unlike the Go runtime's built-in map hash (which
// reseeds every process on purpose, to resist hash-flooding), shard
// selection needs the same key to land on the same shard for as long
// as callers care to reason about it, including across two different
// ShardedUnorderedMap instances a node handle is moved between.
func String(s string) uint64 {
	return murmur3.Sum64([]byte(s))
}

// Bytes returns a deterministic 64-bit hash of b. See String.
func Bytes(b []byte) uint64 {
	return murmur3.Sum64(b)
}
