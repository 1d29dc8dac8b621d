package fixture

import (
	"math/rand"
	"testing"
)

func TestPoolSample(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	pool := Pool{"a", "b", "c"}

	members := map[string]bool{"a": true, "b": true, "c": true}
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		v := pool.Sample(r)
		if !members[v] {
			t.Fatalf("Sample returned value outside the pool: %q", v)
		}
		seen[v] = true
	}
	if len(seen) != 3 {
		t.Errorf("Expected all 3 pool entries to be sampled eventually, saw %d", len(seen))
	}
}

func TestPoolSampleEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected sampling an empty pool to panic")
		}
	}()
	Pool{}.Sample(rand.New(rand.NewSource(1)))
}
