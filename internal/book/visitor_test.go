package book

import (
	"testing"

	"github.com/kjhughes/openbook/internal/filter"
)

func newTestVisitor() *Visitor {
	// A00-Z99 admits every ECO code, so these tests isolate the header and
	// sampler gating logic.
	eco := filter.NewECO("A00", "Z99")
	sampler := filter.NewBernoulli(1, 1) // p=1: always accept
	return NewVisitor(eco, sampler, 40, nil)
}

func acceptHeaders(v *Visitor) {
	v.Header("TimeControl", "180+0")
	v.Header("WhiteElo", "1800")
	v.Header("BlackElo", "1790")
}

func TestVisitor_AdmitsGameWithValidHeadersAndECO(t *testing.T) {
	v := newTestVisitor()
	v.StartPGN()
	acceptHeaders(v)
	v.Header("ECO", "B10")
	if skip := v.StartMoves(); skip {
		t.Fatal("expected game to be admitted, got skipBody = true")
	}
	if v.Creator().AcceptedGames() != 1 {
		t.Errorf("AcceptedGames = %d, want 1", v.Creator().AcceptedGames())
	}
}

func TestVisitor_SkipsOnHeaderRejection(t *testing.T) {
	v := newTestVisitor()
	v.StartPGN()
	v.Header("TimeControl", "180+0")
	v.Header("WhiteElo", "2800")
	v.Header("BlackElo", "1200") // Elo gap too wide
	v.Header("ECO", "B10")
	if skip := v.StartMoves(); !skip {
		t.Fatal("expected game to be skipped on header rejection")
	}
	if v.Creator().AcceptedGames() != 0 {
		t.Errorf("AcceptedGames = %d, want 0", v.Creator().AcceptedGames())
	}
}

func TestVisitor_SkipsOnECORejection(t *testing.T) {
	eco := filter.NewECO("A00", "A99") // excludes B-codes
	sampler := filter.NewBernoulli(1, 1)
	v := NewVisitor(eco, sampler, 40, nil)

	v.StartPGN()
	acceptHeaders(v)
	v.Header("ECO", "B10")
	if skip := v.StartMoves(); !skip {
		t.Fatal("expected game to be skipped on ECO rejection")
	}
}

func TestVisitor_SkipsOnSamplerRejection(t *testing.T) {
	eco := filter.NewECO("A00", "Z99")
	sampler := filter.NewBernoulli(1000000, 1) // effectively never accepts
	v := NewVisitor(eco, sampler, 40, nil)

	v.StartPGN()
	acceptHeaders(v)
	v.Header("ECO", "B10")
	if skip := v.StartMoves(); !skip {
		t.Fatal("expected game to be skipped when the sampler rejects it")
	}
	if v.Creator().AcceptedGames() != 0 {
		t.Errorf("AcceptedGames = %d, want 0", v.Creator().AcceptedGames())
	}
}

func TestVisitor_HeaderAndECORejectionNeverReachCreator(t *testing.T) {
	// A Bernoulli sampler with p=1 accepts every game, so AcceptedGames
	// staying at 0 across repeated ECO rejections shows that the rejection
	// short-circuits StartMoves before the sampler's decision is used.
	eco := filter.NewECO("A00", "A99")
	sampler := filter.NewBernoulli(1, 1)
	v := NewVisitor(eco, sampler, 40, nil)

	for i := 0; i < 5; i++ {
		v.StartPGN()
		acceptHeaders(v)
		v.Header("ECO", "B10")
		v.StartMoves()
	}
	if got := v.Creator().AcceptedGames(); got != 0 {
		t.Errorf("AcceptedGames = %d, want 0 after repeated ECO rejections", got)
	}
}
