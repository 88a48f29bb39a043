package filter

import "math/rand"

// Sampler decides, for the post-header/post-ECO population of a stream,
// which games make it into the book. It is evaluated last among the
// filters (SPEC_FULL.md §4.6) because accepting a game here may claim or
// replace a reservoir slot.
//
// Decide is called once per post-filter candidate game, at start_moves.
// ok reports whether the game is accepted. When ok, slot is either -1
// (append a fresh game slot) or a non-negative reservoir index whose
// previous occupant the caller must discard and overwrite.
type Sampler interface {
	StartPGN()
	Decide() (ok bool, slot int)
}

// Reservoir implements fixed-size reservoir sampling: the first K
// post-filter candidates are accepted outright; thereafter the n-th
// candidate replaces a uniformly-random existing slot with probability
// K/n, and is otherwise rejected.
type Reservoir struct {
	k   int
	rng *rand.Rand
	n   int
}

// NewReservoir returns a Reservoir sampler with capacity k, seeded with s.
func NewReservoir(k int, s int64) *Reservoir {
	return &Reservoir{k: k, rng: rand.New(rand.NewSource(s))}
}

// StartPGN is a no-op for reservoir sampling: its decision depends only on
// the post-filter candidate count, settled at start_moves.
func (r *Reservoir) StartPGN() {}

// Decide implements the reservoir acceptance rule described above.
func (r *Reservoir) Decide() (ok bool, slot int) {
	r.n++
	if r.n <= r.k {
		return true, -1
	}
	if r.rng.Float64() > float64(r.k)/float64(r.n) {
		return false, 0
	}
	return true, r.rng.Intn(r.k)
}

// Bernoulli implements independent 1/p sampling: each game is accepted
// with probability 1/p, decided once per game at start_pgn time so the
// PRNG draw order does not depend on how many games earlier filters admit.
type Bernoulli struct {
	p      int
	rng    *rand.Rand
	accept bool
}

// NewBernoulli returns a Bernoulli sampler with denominator p, seeded with s.
func NewBernoulli(p int, s int64) *Bernoulli {
	return &Bernoulli{p: p, rng: rand.New(rand.NewSource(s))}
}

// StartPGN draws this game's accept/reject coin.
func (b *Bernoulli) StartPGN() {
	b.accept = b.rng.Intn(b.p) == 0
}

// Decide returns the decision already made in StartPGN; Bernoulli sampling
// never replaces an existing slot.
func (b *Bernoulli) Decide() (ok bool, slot int) {
	return b.accept, -1
}
