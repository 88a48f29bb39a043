package filter

import "testing"

func TestReservoir_FillsUpToCapacity(t *testing.T) {
	r := NewReservoir(4, 1)
	for i := 1; i <= 4; i++ {
		ok, slot := r.Decide()
		if !ok || slot != -1 {
			t.Fatalf("candidate %d: got (%v, %d), want (true, -1)", i, ok, slot)
		}
	}
}

func TestReservoir_ReplacesWithinCapacityBounds(t *testing.T) {
	r := NewReservoir(3, 42)
	for i := 0; i < 3; i++ {
		r.Decide()
	}
	for i := 0; i < 1000; i++ {
		ok, slot := r.Decide()
		if ok && (slot < 0 || slot >= 3) {
			t.Fatalf("replacement slot %d out of bounds [0,3)", slot)
		}
	}
}

func TestReservoir_Deterministic(t *testing.T) {
	runOnce := func() []int {
		r := NewReservoir(5, 7)
		var slots []int
		for i := 0; i < 50; i++ {
			ok, slot := r.Decide()
			if ok {
				slots = append(slots, slot)
			} else {
				slots = append(slots, -2)
			}
		}
		return slots
	}

	a, b := runOnce(), runOnce()
	if len(a) != len(b) {
		t.Fatalf("length mismatch: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different decisions at %d: %d vs %d", i, a[i], b[i])
		}
	}
}

func TestBernoulli_DecidesOncePerGame(t *testing.T) {
	b := NewBernoulli(3, 1)
	b.StartPGN()
	ok1, slot1 := b.Decide()
	ok2, slot2 := b.Decide()
	if ok1 != ok2 || slot1 != slot2 {
		t.Error("Decide should be stable within a game until the next StartPGN")
	}
	if slot1 != -1 {
		t.Errorf("Bernoulli slot = %d, want -1 (always append)", slot1)
	}
}

func TestBernoulli_RateConcentratesNearOneOverP(t *testing.T) {
	const p = 4
	const n = 20000
	b := NewBernoulli(p, 99)
	accepted := 0
	for i := 0; i < n; i++ {
		b.StartPGN()
		if ok, _ := b.Decide(); ok {
			accepted++
		}
	}
	want := n / p
	tolerance := want / 5 // generous band; this is a statistical sanity check
	if accepted < want-tolerance || accepted > want+tolerance {
		t.Errorf("accepted %d of %d, want close to %d (+/- %d)", accepted, n, want, tolerance)
	}
}
