// Package concurrentmap provides two interchangeable thread-safe
// associative containers: UnorderedMap, a single hash table behind one
// reader/writer lock, and ShardedUnorderedMap, the same abstraction
// partitioned over a fixed number of independent shards to cut lock
// contention under mixed read/write load.
//
// Both types expose the same operation surface (At, Index, Count,
// Find, Insert, InsertMany, InsertNode, Erase, Extract, Clear, Data,
// Equal, GetOrInsert) so code can be written once against either.
//
// Every reader returns copies, never references into the protected
// table; a value returned by At, Find, or Data stays valid after the
// lock that produced it has been released. Aggregate operations on
// ShardedUnorderedMap (Size, Data, Clear, Equal) are not linearizable
// across shards; this is a deliberate trade for reduced contention,
// not an oversight.
package concurrentmap
