// Package store implements the reader's book cache: an LRU-bounded pool of
// loaded record sets keyed by filename, and the position query that runs
// against them.
package store

import "github.com/kjhughes/openbook/internal/book"

// TotalBufferSizeAllowed is the resident record cap, matching the original
// tool's 1<<24 (SPEC_FULL.md §4.7): 16 Mi records, roughly 256 MiB of raw
// 16-byte entries.
const TotalBufferSizeAllowed = 1 << 24

// Store is the reader's LRU book cache. It is not safe for concurrent use;
// SPEC_FULL.md §5 the reader processes one command at a time.
type Store struct {
	handles map[string]*Handle
	pool    [][]book.Entry
	tick    int64
}

// New returns an empty Store.
func New() *Store {
	return &Store{handles: make(map[string]*Handle)}
}

// Get returns the decoded records for filename, loading the file on first
// reference and running at most one eviction pass if the load pushed total
// resident size over TotalBufferSizeAllowed (SPEC_FULL.md §4.7).
//
// A file that fails to open leaves its handle in a terminal load-failed
// state: the error is returned once, to the caller that triggered the load,
// and every subsequent Get for that name returns an empty, error-free result
// rather than retrying the open (SPEC_FULL.md §7).
func (s *Store) Get(filename string) ([]book.Entry, error) {
	h, ok := s.handles[filename]
	if !ok {
		h = newHandle(filename, s.tick)
		s.handles[filename] = h
	}
	s.tick++
	h.LastTouch = s.tick

	if h.LoadFailed {
		return nil, nil
	}
	if h.Slot == unbound {
		entries, err := loadFile(filename)
		if err != nil {
			h.LoadFailed = true
			return nil, err
		}
		h.Slot = len(s.pool)
		s.pool = append(s.pool, entries)
		if s.totalSize() > TotalBufferSizeAllowed {
			s.evictOne()
		}
		return entries, nil
	}
	return s.pool[h.Slot], nil
}

// Close frees filename's slot, if any, and forgets its handle.
func (s *Store) Close(filename string) {
	h, ok := s.handles[filename]
	if !ok {
		return
	}
	delete(s.handles, filename)
	if h.Slot != unbound {
		s.freeSlot(h.Slot)
	}
}

func (s *Store) totalSize() int {
	total := 0
	for _, slot := range s.pool {
		total += len(slot)
	}
	return total
}

// evictOne finds the least-recently-touched handle that holds a pool slot,
// drops its handle entry, and frees its pool slot. Exactly one eviction runs
// per overflow-triggering load; no cascading (SPEC_FULL.md §4.7, §9).
func (s *Store) evictOne() {
	var victim string
	var min int64
	first := true
	for name, h := range s.handles {
		if h.Slot == unbound {
			continue
		}
		if first || h.LastTouch < min {
			victim, min = name, h.LastTouch
			first = false
		}
	}
	if first {
		return
	}
	slot := s.handles[victim].Slot
	delete(s.handles, victim)
	s.freeSlot(slot)
}

// freeSlot removes pool slot idx by swapping the last slot into its place
// and fixing up whichever handle referenced that last slot, then shrinking
// the pool (SPEC_FULL.md §4.7 "Pool compaction").
func (s *Store) freeSlot(idx int) {
	last := len(s.pool) - 1
	if idx != last {
		s.pool[idx] = s.pool[last]
		for _, h := range s.handles {
			if h.Slot == last {
				h.Slot = idx
				break
			}
		}
	}
	s.pool = s.pool[:last]
}
