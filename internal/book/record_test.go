package book

import (
	"testing"

	"github.com/kjhughes/openbook/internal/engine"
)

func TestEntry_EncodeDecodeRoundTrip(t *testing.T) {
	cases := []Entry{
		NewEntry(0, engine.NewMove(12, 28, engine.PromoNone), 1),
		NewEntry(0xdeadbeefcafef00d, engine.NewMove(52, 60, engine.PromoQueen), 9001),
		NewEntry(1, engine.NewMove(0, 63, engine.PromoKnight), 0),
	}
	for _, want := range cases {
		buf := make([]byte, EntrySize)
		want.Encode(buf)
		got := DecodeEntry(buf)
		if got != want {
			t.Errorf("round trip mismatch: got %+v, want %+v", got, want)
		}
	}
}

func TestNewEntry_NonPromotionGetsPromoNone(t *testing.T) {
	e := NewEntry(42, engine.NewMove(8, 16, engine.PromoNone), 1)
	if e.IsPromotion != 0 {
		t.Errorf("IsPromotion = %d, want 0", e.IsPromotion)
	}
	if e.PromotionPiece != engine.PromoNone {
		t.Errorf("PromotionPiece = %d, want PromoNone", e.PromotionPiece)
	}
}

func TestNewEntry_PromotionSetsPieceAndFlag(t *testing.T) {
	e := NewEntry(42, engine.NewMove(52, 60, engine.PromoRook), 1)
	if e.IsPromotion != 1 {
		t.Errorf("IsPromotion = %d, want 1", e.IsPromotion)
	}
	if e.PromotionPiece != engine.PromoRook {
		t.Errorf("PromotionPiece = %d, want PromoRook", e.PromotionPiece)
	}
}

func TestSortKeyLess_OrdersByZobristThenSquares(t *testing.T) {
	a := NewEntry(1, engine.NewMove(0, 1, engine.PromoNone), 1)
	b := NewEntry(1, engine.NewMove(0, 2, engine.PromoNone), 1)
	c := NewEntry(2, engine.NewMove(0, 0, engine.PromoNone), 1)

	if !sortKeyLess(a, b) {
		t.Error("expected a < b by to-square")
	}
	if !sortKeyLess(b, c) {
		t.Error("expected b < c by zobrist")
	}
	if sortKeyLess(b, a) {
		t.Error("expected b not < a")
	}
}

func TestSameKey_IgnoresCountAndPromotion(t *testing.T) {
	a := NewEntry(7, engine.NewMove(12, 28, engine.PromoNone), 3)
	b := NewEntry(7, engine.NewMove(12, 28, engine.PromoQueen), 99)
	if !sameKey(a, b) {
		t.Error("expected same dedup key despite differing count/promotion (SPEC_FULL.md §9)")
	}
}
