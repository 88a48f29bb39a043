// Package pgnstream defines the visitor contract the book builder consumes
// and drives it from github.com/freeeve/pgn/v3, the PGN/chess engine
// library this module treats as an external collaborator (SPEC_FULL.md §1).
package pgnstream

import "github.com/freeeve/pgn/v3"

// Visitor receives one call sequence per game: StartPGN, Header (zero or
// more, any order the source file lists them in), StartMoves, Move (zero or
// more), EndPGN. StartMoves' return value tells the driver whether to skip
// replaying this game's moves to the rest of the pipeline — the game was
// already fully parsed upstream, so "skipping the body" means the driver
// simply does not call Move for it; EndPGN is still called.
type Visitor interface {
	StartPGN()
	Header(key, value string)
	StartMoves() (skipBody bool)
	Move(rawMove pgn.Mv, comment string)
	EndPGN()
}
