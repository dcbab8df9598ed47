package pq

// CheckInvariants exposes the internal consistency check to external tests.
func (h *IndexedMinHeap) CheckInvariants() error { return h.checkInvariants() }
