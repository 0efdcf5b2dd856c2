package concurrentmap

import (
	"strconv"
	"sync"
	"testing"

	"concurrentmap/util"
)

// go test -bench='Map$' -benchtime=5s -count=1 -benchmem

const benchKeyCount = 100000

func benchmarkWriteUnorderedMap(b *testing.B) {
	m := NewUnorderedMap[string, string]()
	wg := sync.WaitGroup{}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		wg.Add(1)
		go func(key int) {
			m.Insert(Entry[string, string]{Key: strconv.Itoa(key), Value: "value"})
			wg.Done()
		}(i)
	}
	wg.Wait()
}

func benchmarkWriteShardedUnorderedMap(b *testing.B, shardCount int) {
	sm := NewStringShardedUnorderedMap[string](shardCount)
	wg := sync.WaitGroup{}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		wg.Add(1)
		go func(key int) {
			sm.Insert(Entry[string, string]{Key: strconv.Itoa(key), Value: "value"})
			wg.Done()
		}(i)
	}
	wg.Wait()
}

func BenchmarkWriteUnorderedMap(b *testing.B) {
	benchmarkWriteUnorderedMap(b)
}

func BenchmarkWrite16ShardedUnorderedMap(b *testing.B) {
	benchmarkWriteShardedUnorderedMap(b, 16)
}

func BenchmarkWrite64ShardedUnorderedMap(b *testing.B) {
	benchmarkWriteShardedUnorderedMap(b, 64)
}

func benchmarkReadUnorderedMap(b *testing.B) {
	m := NewUnorderedMap[string, string]()
	for i := 0; i < benchKeyCount; i++ {
		m.Insert(Entry[string, string]{Key: strconv.Itoa(i), Value: "value"})
	}
	wg := sync.WaitGroup{}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		wg.Add(1)
		go func(key int) {
			m.Find(strconv.Itoa(key % benchKeyCount))
			wg.Done()
		}(i)
	}
	wg.Wait()
}

func benchmarkReadShardedUnorderedMap(b *testing.B, shardCount int) {
	sm := NewStringShardedUnorderedMap[string](shardCount)
	for i := 0; i < benchKeyCount; i++ {
		sm.Insert(Entry[string, string]{Key: strconv.Itoa(i), Value: "value"})
	}
	wg := sync.WaitGroup{}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		wg.Add(1)
		go func(key int) {
			sm.Find(strconv.Itoa(key % benchKeyCount))
			wg.Done()
		}(i)
	}
	wg.Wait()
}

func BenchmarkReadUnorderedMap(b *testing.B) {
	benchmarkReadUnorderedMap(b)
}

func BenchmarkRead16ShardedUnorderedMap(b *testing.B) {
	benchmarkReadShardedUnorderedMap(b, 16)
}

func BenchmarkRead64ShardedUnorderedMap(b *testing.B) {
	benchmarkReadShardedUnorderedMap(b, 64)
}

func BenchmarkHashString(b *testing.B) {
	for i := 0; i < b.N; i++ {
		util.String("benchmark-key")
	}
}
