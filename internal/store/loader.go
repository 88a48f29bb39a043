package store

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/kjhughes/openbook/internal/book"
	"github.com/kjhughes/openbook/internal/engine"
)

// loadFile reads path as a stream of fixed 16-byte records (SPEC_FULL.md
// §4.8). It performs no validation beyond a short-read cutting the stream
// off at the last whole record, with a warning on stderr; the file is
// trusted to already be sorted.
func loadFile(path string) ([]book.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	var entries []book.Entry
	buf := make([]byte, book.EntrySize)
	for {
		if _, err := io.ReadFull(r, buf); err != nil {
			if err == io.EOF {
				break
			}
			if err == io.ErrUnexpectedEOF {
				fmt.Fprintf(os.Stderr, "store: %s: ignoring trailing partial record\n", path)
				break
			}
			return nil, fmt.Errorf("store: read %s: %w", path, err)
		}
		entries = append(entries, book.DecodeEntry(buf))
	}
	return entries, nil
}

// Edge is one outgoing move from a queried position, with its recorded
// occurrence count.
type Edge struct {
	Move  engine.Move
	Count uint32
}

// FindEdges binary-searches entries (sorted ascending by zobrist, per the
// book format) for the lower bound of hash, linearly scans the matching
// run, and returns the edges sorted by count descending (SPEC_FULL.md §4.8).
func FindEdges(entries []book.Entry, hash uint64) []Edge {
	lo := sort.Search(len(entries), func(i int) bool { return entries[i].Zobrist >= hash })

	var edges []Edge
	for i := lo; i < len(entries) && entries[i].Zobrist == hash; i++ {
		e := entries[i]
		promo := engine.PromoNone
		if e.IsPromotion != 0 {
			promo = e.PromotionPiece
		}
		mv := engine.NewMove(int(e.FromSquare), int(e.ToSquare), promo)
		edges = append(edges, Edge{Move: mv, Count: e.Count})
	}

	sort.SliceStable(edges, func(i, j int) bool { return edges[i].Count > edges[j].Count })
	return edges
}
