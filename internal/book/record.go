// Package book implements the builder-side aggregation pipeline: per-game
// move registration, global sort-and-dedup, and the 16-byte binary book
// format both programs share.
package book

import (
	"encoding/binary"

	"github.com/kjhughes/openbook/internal/engine"
)

// EntrySize is the on-disk size of one BookEntry, in bytes.
const EntrySize = 16

// Entry is the on-disk representation of one position→move edge: an
// 8-byte Zobrist-class hash, two square indices, a promotion flag and
// piece, and a 4-byte occurrence count. All fields are little-endian and
// unpadded (SPEC_FULL.md §3).
type Entry struct {
	Zobrist        uint64
	FromSquare     byte
	ToSquare       byte
	IsPromotion    byte
	PromotionPiece byte
	Count          uint32
}

// NewEntry builds an Entry from a hashed position and a decoded move, the
// way book.Creator registers a move before applying it to its board.
func NewEntry(zobrist uint64, mv engine.Move, count uint32) Entry {
	e := Entry{
		Zobrist:    zobrist,
		FromSquare: byte(mv.From()),
		ToSquare:   byte(mv.To()),
		Count:      count,
	}
	if mv.IsPromotion() {
		e.IsPromotion = 1
		e.PromotionPiece = mv.PromotionPiece()
	} else {
		e.PromotionPiece = engine.PromoNone
	}
	return e
}

// Encode writes the entry's 16-byte little-endian form into buf, which must
// be at least EntrySize long.
func (e Entry) Encode(buf []byte) {
	binary.LittleEndian.PutUint64(buf[0:8], e.Zobrist)
	buf[8] = e.FromSquare
	buf[9] = e.ToSquare
	buf[10] = e.IsPromotion
	buf[11] = e.PromotionPiece
	binary.LittleEndian.PutUint32(buf[12:16], e.Count)
}

// DecodeEntry reads one 16-byte record. data must be at least EntrySize long.
func DecodeEntry(data []byte) Entry {
	return Entry{
		Zobrist:        binary.LittleEndian.Uint64(data[0:8]),
		FromSquare:     data[8],
		ToSquare:       data[9],
		IsPromotion:    data[10],
		PromotionPiece: data[11],
		Count:          binary.LittleEndian.Uint32(data[12:16]),
	}
}

// sortKeyLess orders entries by (zobrist, from_sq, to_sq) ascending — the
// book's global ordering (SPEC_FULL.md §3). Promotion fields do not
// participate in ordering or in the dedup key below (a known, deliberately
// preserved limitation — see DESIGN.md and SPEC_FULL.md §9).
func sortKeyLess(a, b Entry) bool {
	if a.Zobrist != b.Zobrist {
		return a.Zobrist < b.Zobrist
	}
	if a.FromSquare != b.FromSquare {
		return a.FromSquare < b.FromSquare
	}
	return a.ToSquare < b.ToSquare
}

// sameKey reports whether a and b share a dedup key.
func sameKey(a, b Entry) bool {
	return a.Zobrist == b.Zobrist && a.FromSquare == b.FromSquare && a.ToSquare == b.ToSquare
}
