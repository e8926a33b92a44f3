package morris

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

const defaultShardCount = 64

// Store is a concurrency-safe set of canonical boards, sharded by the hash
// of the board's key so concurrent Add/Contains calls from different
// retrograde workers rarely contend on the same lock.
type Store struct {
	shards []storeShard
	mask   uint64
}

type storeShard struct {
	mu sync.RWMutex
	m  map[uint64]struct{}
}

// NewStore creates a Store with shardCount shards, rounded up to the next
// power of two. shardCount <= 0 uses a sensible default.
func NewStore(shardCount int) *Store {
	if shardCount <= 0 {
		shardCount = defaultShardCount
	}
	n := 1
	for n < shardCount {
		n <<= 1
	}
	s := &Store{
		shards: make([]storeShard, n),
		mask:   uint64(n - 1),
	}
	for i := range s.shards {
		s.shards[i].m = make(map[uint64]struct{})
	}
	return s
}

func (s *Store) shardFor(key uint64) *storeShard {
	var buf [8]byte
	for i := 0; i < 8; i++ {
		buf[i] = byte(key >> (8 * i))
	}
	h := xxhash.Sum64(buf[:])
	return &s.shards[h&s.mask]
}

// Add inserts b's key (canonical boards are expected) and reports whether
// it was previously absent.
func (s *Store) Add(b Board) bool {
	shard := s.shardFor(b.Key())
	shard.mu.Lock()
	defer shard.mu.Unlock()
	key := b.Key()
	if _, ok := shard.m[key]; ok {
		return false
	}
	shard.m[key] = struct{}{}
	return true
}

// Contains reports whether b's key is present.
func (s *Store) Contains(b Board) bool {
	shard := s.shardFor(b.Key())
	shard.mu.RLock()
	defer shard.mu.RUnlock()
	_, ok := shard.m[b.Key()]
	return ok
}

// Len returns the total number of boards across all shards.
func (s *Store) Len() int {
	n := 0
	for i := range s.shards {
		s.shards[i].mu.RLock()
		n += len(s.shards[i].m)
		s.shards[i].mu.RUnlock()
	}
	return n
}

// Keys returns every stored key. Order is unspecified.
func (s *Store) Keys() []uint64 {
	out := make([]uint64, 0, s.Len())
	for i := range s.shards {
		s.shards[i].mu.RLock()
		for k := range s.shards[i].m {
			out = append(out, k)
		}
		s.shards[i].mu.RUnlock()
	}
	return out
}
