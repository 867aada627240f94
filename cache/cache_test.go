package cache

import (
	"math/rand"
	"testing"

	"github.com/morinim/vita/fitness"
)

func sig(a, b uint64) Signature { return Signature{a, b} }

func TestInsertThenFindHits(t *testing.T) {
	c := New(8)
	s := sig(42, 7)
	f := fitness.Fitness{1, 2, 3}
	c.Insert(s, f)

	got, ok := c.Find(s)
	if !ok {
		t.Fatal("expected a hit after insert")
	}
	if !fitness.Equal(got, f) {
		t.Fatalf("got %v, want %v", got, f)
	}
}

func TestClearInvalidatesEverything(t *testing.T) {
	c := New(8)
	s := sig(1, 1)
	c.Insert(s, fitness.Fitness{1})
	c.Clear()

	if _, ok := c.Find(s); ok {
		t.Fatal("expected a miss after Clear")
	}
}

func TestNoFalsePositivesOnCollision(t *testing.T) {
	c := New(8) // small table (256 slots) makes low-bit collisions likely
	a := sig(0, 111)
	b := sig(256, 222) // same low bits as a, so they share a's slot

	c.Insert(a, fitness.Fitness{9})
	// b was never inserted; even though it maps to the same slot as a, the
	// full signature check must report a miss rather than a's fitness.
	if got, ok := c.Find(b); ok {
		t.Fatalf("cache returned a fitness for a signature it never held: %v", got)
	}
}

func TestHighVolumeNoFalsePositives(t *testing.T) {
	c := New(16)
	rng := rand.New(rand.NewSource(1))
	held := make(map[Signature]fitness.Fitness)

	for i := 0; i < 200000; i++ {
		s := sig(rng.Uint64(), rng.Uint64())
		f := fitness.Fitness{rng.Float64()}
		c.Insert(s, f)
		held[s] = f
	}

	hits, misses := 0, 0
	for s, want := range held {
		got, ok := c.Find(s)
		if ok {
			hits++
			if !fitness.Equal(got, want) {
				t.Fatalf("stale/incorrect fitness returned for %v: got %v want %v", s, got, want)
			}
		} else {
			misses++
		}
	}
	if hits == 0 {
		t.Fatal("expected at least some hits")
	}
	t.Logf("hits=%d misses=%d (misses expected due to overwrite collisions)", hits, misses)
}

func TestInvalidateSingleEntry(t *testing.T) {
	c := New(8)
	s := sig(5, 5)
	c.Insert(s, fitness.Fitness{1})
	c.Invalidate(s)
	if _, ok := c.Find(s); ok {
		t.Fatal("expected a miss after Invalidate")
	}
}

func TestCapacityIsPowerOfTwo(t *testing.T) {
	c := New(10)
	if c.Capacity() != 1<<10 {
		t.Fatalf("expected capacity 1024, got %d", c.Capacity())
	}
}
