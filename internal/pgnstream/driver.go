package pgnstream

import (
	"fmt"

	"github.com/freeeve/pgn/v3"
)

// Drive reads every game at path through the freeeve/pgn parser and replays
// it as a StartPGN/Header*/StartMoves/Move*/EndPGN sequence against v. It
// returns the number of games the parser yielded (accepted or not) and any
// parser-level error encountered after the stream ends.
//
// A malformed game (the underlying parser could not replay one of its
// moves) is dropped and the stream continues with the next game — §7, §9
// call this out as an explicit improvement over the original C++ tool,
// which lets such failures escape.
func Drive(path string, v Visitor) (gamesSeen int, err error) {
	parser := pgn.Games(path)
	for game := range parser.Games {
		gamesSeen++
		driveGame(game, v)
	}
	if perr := parser.Err(); perr != nil {
		return gamesSeen, fmt.Errorf("pgnstream: parser: %w", perr)
	}
	return gamesSeen, nil
}

// driveGame replays one parsed game to v. Per-move SAN replay failures are
// the consuming Visitor's concern (book.Creator drops a game's entries on a
// board desync rather than aborting the whole stream — SPEC_FULL.md §9).
func driveGame(game *pgn.Game, v Visitor) {
	v.StartPGN()
	for key, value := range game.Tags {
		v.Header(key, value)
	}
	if v.StartMoves() {
		v.EndPGN()
		return
	}
	for _, mv := range game.Moves {
		v.Move(mv, "")
	}
	v.EndPGN()
}
