package htable

// TableStats is a snapshot of table occupancy.
//
// Note on semantics:
//   - Entries: live entry count (same as Len)
//   - Buckets: fixed bucket count
//   - UsedBuckets: buckets with a non-empty chain
//   - MaxChain: length of the longest chain
//   - LoadFactor: Entries / Buckets
type TableStats struct {
	Entries     int
	Buckets     int
	UsedBuckets int
	MaxChain    int
	LoadFactor  float64
}

// Stats returns a snapshot of table occupancy. It walks every chain, so it
// is O(n); intended for diagnostics, not hot paths.
func (t *Table[K, V]) Stats() TableStats {
	if t == nil || t.slots == nil {
		return TableStats{}
	}

	s := TableStats{
		Entries: t.count,
		Buckets: len(t.slots),
	}
	for _, head := range t.slots {
		if head == nil {
			continue
		}
		s.UsedBuckets++
		chain := 0
		for n := head; n != nil; n = n.next {
			chain++
		}
		if chain > s.MaxChain {
			s.MaxChain = chain
		}
	}
	s.LoadFactor = float64(s.Entries) / float64(s.Buckets)
	return s
}
