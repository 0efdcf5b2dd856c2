package concurrentmap

import "concurrentmap/util"

// DefaultShardCount is the shard count used when a non-positive value
// is passed to NewShardedUnorderedMap or NewStringShardedUnorderedMap.
const DefaultShardCount = 16

// ShardedUnorderedMap partitions the same logical key/value mapping
// over a fixed number of independent UnorderedMap shards, selected by
// hash(key) mod N, to cut lock contention under mixed read/write load.
// N is fixed for the life of the instance.
//
// Per-key operations touch exactly one shard's lock. Aggregate
// operations (Size, Empty, Data, Clear, Equal) touch shards one at a
// time and are explicitly not linearizable across shards: this
// trades a globally consistent snapshot for the contention reduction
// sharding exists to provide.
type ShardedUnorderedMap[K comparable, V any] struct {
	shards []*UnorderedMap[K, V]
	hash   func(K) uint64
}

// NewShardedUnorderedMap returns a ShardedUnorderedMap with shardCount
// shards (DefaultShardCount if shardCount is not positive), selecting
// shards with hash. The same hash function is used for every
// operation on this instance, so it must be deterministic for the
// lifetime of the map.
func NewShardedUnorderedMap[K comparable, V any](shardCount int, hash func(K) uint64) *ShardedUnorderedMap[K, V] {
	if shardCount <= 0 {
		shardCount = DefaultShardCount
	}
	sm := &ShardedUnorderedMap[K, V]{
		shards: make([]*UnorderedMap[K, V], shardCount),
		hash:   hash,
	}
	for i := range sm.shards {
		sm.shards[i] = NewUnorderedMap[K, V]()
	}
	return sm
}

// NewStringShardedUnorderedMap returns a ShardedUnorderedMap keyed by
// string, hashing with the package's own murmur3-backed hash, the same
// choice NewShardedUnorderedMap would need a caller to supply by hand.
func NewStringShardedUnorderedMap[V any](shardCount int) *ShardedUnorderedMap[string, V] {
	return NewShardedUnorderedMap[string, V](shardCount, util.String)
}

// NewShardedUnorderedMapFrom returns a ShardedUnorderedMap with
// shardCount shards (DefaultShardCount if not positive), pre-populated
// with es.
func NewShardedUnorderedMapFrom[K comparable, V any](shardCount int, hash func(K) uint64, es ...Entry[K, V]) *ShardedUnorderedMap[K, V] {
	sm := NewShardedUnorderedMap[K, V](shardCount, hash)
	sm.InsertMany(es...)
	return sm
}

// ShardCount returns N, the fixed number of shards.
func (sm *ShardedUnorderedMap[K, V]) ShardCount() int {
	return len(sm.shards)
}

// MaxSize returns the largest number of entries the map's allocator
// claims it can hold.
func (sm *ShardedUnorderedMap[K, V]) MaxSize() int {
	return Allocator{}.MaxSize()
}

// Allocator returns the allocator abstraction backing this map.
func (sm *ShardedUnorderedMap[K, V]) Allocator() Allocator {
	return Allocator{}
}

func (sm *ShardedUnorderedMap[K, V]) shardFor(key K) *UnorderedMap[K, V] {
	return sm.shards[sm.hash(key)%uint64(len(sm.shards))]
}

// At returns the value stored for key, or ErrKeyNotFound if absent.
func (sm *ShardedUnorderedMap[K, V]) At(key K) (V, error) {
	return sm.shardFor(key).At(key)
}

// Index is the operator[] analogue of At: same contract, never
// default-inserts.
func (sm *ShardedUnorderedMap[K, V]) Index(key K) (V, error) {
	return sm.shardFor(key).Index(key)
}

// Count returns 1 if key is present, 0 otherwise.
func (sm *ShardedUnorderedMap[K, V]) Count(key K) int {
	return sm.shardFor(key).Count(key)
}

// Find returns the value stored for key and true if present, or the
// zero value and false otherwise.
func (sm *ShardedUnorderedMap[K, V]) Find(key K) (V, bool) {
	return sm.shardFor(key).Find(key)
}

// Insert stores e.Value under e.Key if e.Key is not already present in
// its shard. It reports whether the insert happened.
func (sm *ShardedUnorderedMap[K, V]) Insert(e Entry[K, V]) bool {
	return sm.shardFor(e.Key).Insert(e)
}

// InsertMany routes each entry in es to its shard; per-entry behavior
// matches Insert. It returns how many were actually inserted.
func (sm *ShardedUnorderedMap[K, V]) InsertMany(es ...Entry[K, V]) int {
	n := 0
	for _, e := range es {
		if sm.Insert(e) {
			n++
		}
	}
	return n
}

// InsertNode consumes n, routing it to the shard its key belongs to.
// This is what makes it safe to Extract a node from one sharded map
// and InsertNode it into another with a different shard count: the
// key, not the origin shard index, decides where it lands.
func (sm *ShardedUnorderedMap[K, V]) InsertNode(n *NodeHandle[K, V]) bool {
	if n.Empty() {
		return false
	}
	key := n.entry.Key
	return sm.shardFor(key).InsertNode(n)
}

// GetOrInsert returns the value already stored for key if present;
// otherwise it stores value under key and returns (value, true).
func (sm *ShardedUnorderedMap[K, V]) GetOrInsert(key K, value V) (V, bool) {
	return sm.shardFor(key).GetOrInsert(key, value)
}

// Erase removes key from its shard and returns 1 if it was present, 0
// otherwise.
func (sm *ShardedUnorderedMap[K, V]) Erase(key K) int {
	return sm.shardFor(key).Erase(key)
}

// Extract removes key from its shard and returns it as a NodeHandle.
func (sm *ShardedUnorderedMap[K, V]) Extract(key K) *NodeHandle[K, V] {
	return sm.shardFor(key).Extract(key)
}

// Size sums each shard's size, locking and releasing one shard at a
// time. The result is a point-in-time-per-shard sum, not a globally
// atomic count: a concurrent writer can make two successive calls to
// Size disagree with what "really happened," and that's by design. A
// single atomic counter shared by every shard would reintroduce the
// contention sharding exists to remove.
func (sm *ShardedUnorderedMap[K, V]) Size() int {
	total := 0
	for _, s := range sm.shards {
		total += s.Size()
	}
	return total
}

// Empty reports whether every shard is empty, short-circuiting on the
// first shard found non-empty.
func (sm *ShardedUnorderedMap[K, V]) Empty() bool {
	for _, s := range sm.shards {
		if !s.Empty() {
			return false
		}
	}
	return true
}

// Clear empties every shard, one at a time, each under its own
// exclusive lock.
func (sm *ShardedUnorderedMap[K, V]) Clear() {
	for _, s := range sm.shards {
		s.Clear()
	}
}

// Data concatenates a snapshot of every shard, each produced under
// that shard's own shared lock. Like Size, this is not a single
// globally atomic view: it is the concatenation of N independent
// point-in-time snapshots.
func (sm *ShardedUnorderedMap[K, V]) Data() []Entry[K, V] {
	out := make([]Entry[K, V], 0, sm.Size())
	for _, s := range sm.shards {
		out = append(out, s.Data()...)
	}
	return out
}

// Equal reports whether sm and other have the same size and every key
// in one maps to an eq-equal value in the other. Unlike UnorderedMap's
// Equal, this never holds two shard locks at once: each shard access
// below locks and releases independently, so there is no lock-order
// hazard to guard against in the first place.
func (sm *ShardedUnorderedMap[K, V]) Equal(other *ShardedUnorderedMap[K, V], eq func(a, b V) bool) bool {
	if sm == other {
		return true
	}
	if sm.Size() != other.Size() {
		return false
	}
	for _, s := range sm.shards {
		for _, e := range s.Data() {
			ov, ok := other.Find(e.Key)
			if !ok || !eq(e.Value, ov) {
				return false
			}
		}
	}
	return true
}
