package engine

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/freeeve/pgn/v3"
)

// Board wraps a pgn.GameState and adds the 64-bit position fingerprint the
// book format keys on.
type Board struct {
	state *pgn.GameState
}

// FromStartPos returns a Board set to the standard starting position.
func FromStartPos() *Board {
	return &Board{state: pgn.NewStartingPosition()}
}

// FromFEN parses a FEN string into a Board, via the library's packed-position
// round trip (there is no direct FEN-to-GameState constructor).
func FromFEN(fen string) (*Board, error) {
	packedStr, err := pgn.PackedPositionFromFEN(fen)
	if err != nil {
		return nil, fmt.Errorf("engine: parse fen %q: %w", fen, err)
	}
	packed, err := pgn.ParsePackedPosition(packedStr)
	if err != nil {
		return nil, fmt.Errorf("engine: parse fen %q: %w", fen, err)
	}
	state := packed.Unpack()
	if state == nil {
		return nil, fmt.Errorf("engine: parse fen %q: unpack failed", fen)
	}
	return &Board{state: state}, nil
}

// ParseSAN parses a SAN move token against the board's current position.
func (b *Board) ParseSAN(san string) (rawMove pgn.Mv, err error) {
	return pgn.ParseSAN(b.state, san)
}

// MakeMove applies a previously-parsed raw move to the board, mutating it in
// place.
func (b *Board) MakeMove(rawMove pgn.Mv) error {
	return pgn.ApplyMove(b.state, rawMove)
}

// MakeUCIMove applies a move given in UCI long algebraic form (e.g. "e2e4",
// "e7e8q") by matching it against the position's legal moves on
// origin/destination squares and, for promotions, the promoted piece. This
// is how positionfromseq replays a move sequence without going through SAN.
func (b *Board) MakeUCIMove(uci string) error {
	mv, err := MoveFromUCI(uci)
	if err != nil {
		return err
	}
	for _, legal := range pgn.GenerateLegalMoves(b.state) {
		if int(legal.From) != mv.From() || int(legal.To) != mv.To() {
			continue
		}
		if legal.Promo != 0 && promoFromMv(legal) != mv.PromotionPiece() {
			continue
		}
		return pgn.ApplyMove(b.state, legal)
	}
	return fmt.Errorf("engine: %q is not a legal move in this position", uci)
}

// Hash returns a stable 64-bit fingerprint of the current position: side to
// move, piece placement, castling rights, and en passant target all feed
// the packed position the engine library produces, which is hashed with
// xxhash rather than a classical Zobrist table (see SPEC_FULL.md §4.0 for
// why that substitution is sound here).
func (b *Board) Hash() uint64 {
	packed := b.state.Pack()
	return xxhash.Sum64([]byte(packed.String()))
}

// DecodeRawMove converts a pgn.Mv, produced by ParseSAN, into our packed
// Move, extracting origin/destination squares and promotion piece.
func DecodeRawMove(rawMove pgn.Mv) Move {
	from, to := int(rawMove.From), int(rawMove.To)
	promo := PromoNone
	if rawMove.Promo != 0 {
		promo = promoFromMv(rawMove)
	}
	return NewMove(from, to, promo)
}

// promoFromMv maps the engine library's promotion field onto this package's
// promotion ordinals.
func promoFromMv(mv pgn.Mv) byte {
	switch mv.Promo {
	case pgn.PromoQueen:
		return PromoQueen
	case pgn.PromoRook:
		return PromoRook
	case pgn.PromoBishop:
		return PromoBishop
	case pgn.PromoKnight:
		return PromoKnight
	default:
		return PromoNone
	}
}
