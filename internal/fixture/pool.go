package fixture

import "math/rand"

// Pool is an ordered sequence of primary identifiers produced by one
// generator and consumed by later generators for foreign references.
// Pools are produced once and only read afterwards.
type Pool []string

// Sample draws one identifier uniformly, with replacement: the same id may
// back any number of downstream rows. Sampling an empty pool is a caller
// error — the upstream generator must run first.
func (p Pool) Sample(r *rand.Rand) string {
	if len(p) == 0 {
		panic("fixture: sample from empty identifier pool")
	}
	return p[r.Intn(len(p))]
}
