// Package cache implements Vita's fitness cache: a direct-mapped,
// sharded hash table keyed by a 128-bit program signature, storing the
// last computed fitness with versioned (epoch-based) eviction so that
// stale entries from a previous generation are never returned (spec.md
// §4.5).
//
// Grounded on the teacher's worker/channel concurrency idiom
// (evolution/parallel.go) generalized into per-shard mutexes, since the
// cache itself — unlike the teacher's ParallelEvaluator — needs fine
// grained locking rather than a fan-out/fan-in pipeline.
package cache

import (
	"sync"

	"github.com/morinim/vita/fitness"
)

// Signature is a 128-bit digest of an individual's active content.
type Signature [2]uint64

// shardBits controls how many of the table's low-order slots are
// grouped under one mutex; a small, fixed number keeps lock contention
// low without allocating one mutex per slot.
const shardBits = 6 // 64 shards

type slot struct {
	sig   Signature
	valid bool
	f     fitness.Fitness
	seal  uint64 // generation epoch this entry was installed under
}

type shard struct {
	mu    sync.Mutex
	slots []slot
}

// Cache is a fixed-capacity fitness cache with 2^k slots.
type Cache struct {
	k      uint
	mask   uint64
	shards []*shard
	epoch  uint64 // current generation; bumped by Clear
}

// New creates a cache with 2^k slots (spec.md §6 "cache_size — k such
// that cache has 2^k slots"). k must be >= shardBits; smaller values are
// rounded up so every shard has at least one slot.
func New(k uint) *Cache {
	if k < shardBits {
		k = shardBits
	}
	size := uint64(1) << k
	numShards := uint64(1) << shardBits
	perShard := size / numShards

	c := &Cache{
		k:      k,
		mask:   size - 1,
		shards: make([]*shard, numShards),
		epoch:  0,
	}
	for i := range c.shards {
		c.shards[i] = &shard{slots: make([]slot, perShard)}
	}
	return c
}

// index splits a signature's low k bits into (shard index, slot index
// within that shard).
func (c *Cache) index(sig Signature) (int, int) {
	low := sig[0] & c.mask
	shardCount := uint64(len(c.shards))
	perShard := (c.mask + 1) / shardCount
	return int(low / perShard), int(low % perShard)
}

// Find returns the cached fitness for sig if present and still valid
// under the current epoch. The "no false positives" invariant (spec.md
// §8 scenario 6) is maintained by storing and comparing the full
// signature on every lookup, not just the slot's index bits.
func (c *Cache) Find(sig Signature) (fitness.Fitness, bool) {
	si, off := c.index(sig)
	sh := c.shards[si]
	sh.mu.Lock()
	defer sh.mu.Unlock()

	s := &sh.slots[off]
	if !s.valid || s.sig != sig || s.seal != c.currentEpoch() {
		return nil, false
	}
	return s.f.Clone(), true
}

// currentEpoch reads the epoch. Called with the owning shard's lock
// already held by Find/Insert, which is safe because epoch is only ever
// bumped by Clear(), a whole-cache operation documented as not running
// concurrently with Find/Insert (single evaluator per cache, spec.md §5).
func (c *Cache) currentEpoch() uint64 { return c.epoch }

// Insert writes sig/f into the slot addressed by sig's low bits,
// unconditionally evicting whatever was there before (spec.md §4.5 "no
// chaining"; §9(c) documents this as the accepted collision policy).
func (c *Cache) Insert(sig Signature, f fitness.Fitness) {
	si, off := c.index(sig)
	sh := c.shards[si]
	sh.mu.Lock()
	defer sh.mu.Unlock()

	sh.slots[off] = slot{sig: sig, valid: true, f: f.Clone(), seal: c.epoch}
}

// Clear bumps the epoch, invalidating every entry without touching the
// underlying storage (an O(1) "clear").
func (c *Cache) Clear() {
	c.epoch++
}

// Invalidate removes a single signature's entry regardless of epoch.
func (c *Cache) Invalidate(sig Signature) {
	si, off := c.index(sig)
	sh := c.shards[si]
	sh.mu.Lock()
	defer sh.mu.Unlock()
	sh.slots[off].valid = false
}

// Capacity returns the total number of slots (2^k).
func (c *Cache) Capacity() uint64 { return c.mask + 1 }

// K returns the configured exponent.
func (c *Cache) K() uint { return c.k }
