package book

import (
	"github.com/freeeve/pgn/v3"

	"github.com/kjhughes/openbook/internal/filter"
)

// Progress receives per-game ticks so the builder can report throughput
// without the aggregation pipeline depending on how that's displayed.
type Progress interface {
	StartPGN()
	StartMoves(acceptedGames int)
}

type noProgress struct{}

func (noProgress) StartPGN()      {}
func (noProgress) StartMoves(int) {}

// Visitor composes the header, ECO, depth, and sampling filters with a
// Creator behind the pgnstream.Visitor contract, in the fixed order
// SPEC_FULL.md §4.6 requires: header and ECO are evaluated first since
// they're free of side effects, and the sampler is evaluated last because
// accepting a game there claims or replaces a reservoir slot.
type Visitor struct {
	header  *filter.Header
	eco     *filter.ECO
	depth   *filter.Depth
	sampler filter.Sampler
	creator *Creator
	prog    Progress

	moveFailed bool
}

// NewVisitor builds the builder's orchestrator. maxDepth is the halfmove
// cap (SPEC_FULL.md §4.5); prog may be nil to disable progress reporting.
func NewVisitor(eco *filter.ECO, sampler filter.Sampler, maxDepth int, prog Progress) *Visitor {
	if prog == nil {
		prog = noProgress{}
	}
	return &Visitor{
		header:  filter.NewHeader(),
		eco:     eco,
		depth:   filter.NewDepth(maxDepth),
		sampler: sampler,
		creator: NewCreator(),
		prog:    prog,
	}
}

// Creator exposes the underlying aggregator so the caller can Dump it once
// the stream ends.
func (v *Visitor) Creator() *Creator { return v.creator }

func (v *Visitor) StartPGN() {
	v.header.StartPGN()
	v.eco.StartPGN()
	v.sampler.StartPGN()
	v.prog.StartPGN()
}

func (v *Visitor) Header(key, value string) {
	v.header.Header(key, value)
	v.eco.Header(key, value)
}

func (v *Visitor) StartMoves() (skipBody bool) {
	if v.header.ShouldSkip() || v.eco.ShouldSkip() {
		return true
	}
	// Sampler is evaluated last: it must not claim or replace a reservoir
	// slot for a game the deterministic filters would have rejected anyway.
	ok, slot := v.sampler.Decide()
	if !ok {
		return true
	}
	v.prog.StartMoves(v.creator.AcceptedGames())
	v.creator.StartMoves(slot)
	v.depth.StartMoves()
	v.moveFailed = false
	return false
}

func (v *Visitor) Move(rawMove pgn.Mv, comment string) {
	if v.moveFailed {
		return
	}
	v.depth.Move()
	if v.depth.ShouldSkip() {
		return
	}
	if err := v.creator.Move(rawMove); err != nil {
		v.moveFailed = true
	}
}

func (v *Visitor) EndPGN() {}
