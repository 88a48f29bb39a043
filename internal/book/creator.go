package book

import (
	"bufio"
	"os"
	"sort"

	"github.com/freeeve/pgn/v3"

	"github.com/kjhughes/openbook/internal/engine"
)

// Game is one accepted game's accumulated entries, in the order its moves
// were played.
type Game struct {
	entries []Entry
}

// Creator accumulates entries for every accepted game and, once the input
// stream ends, sorts, run-length collapses, and writes them. It is the Go
// counterpart of the original tool's BookCreator (SPEC_FULL.md §4.4);
// reservoir slot bookkeeping is driven from outside by filter.Sampler's
// decision, so Creator only needs to know which slot to (re)populate.
type Creator struct {
	games   []Game
	current int
	board   *engine.Board
}

// NewCreator returns an empty Creator.
func NewCreator() *Creator {
	return &Creator{current: -1}
}

// AcceptedGames reports how many games are currently held (including
// reservoir slots that have been replaced in place).
func (c *Creator) AcceptedGames() int {
	return len(c.games)
}

// StartMoves begins accumulating a newly-accepted game. slot is -1 to
// append a fresh game, or a reservoir index whose previous occupant is
// discarded and overwritten.
func (c *Creator) StartMoves(slot int) {
	if slot < 0 {
		c.games = append(c.games, Game{})
		c.current = len(c.games) - 1
	} else {
		c.games[slot] = Game{}
		c.current = slot
	}
	c.board = engine.FromStartPos()
}

// Move records the position→move edge for rawMove, keyed on the board as
// it stands before the move, and applies the move. A non-nil error means
// the move could not be replayed: every entry of the current game is
// discarded, so the game contributes no edges to the book (it keeps its
// slot and still counts in AcceptedGames), and the caller should stop
// feeding this game's remaining moves to Creator (SPEC_FULL.md §7, §9).
func (c *Creator) Move(rawMove pgn.Mv) error {
	mv := engine.DecodeRawMove(rawMove)
	entry := NewEntry(c.board.Hash(), mv, 1)
	if err := c.board.MakeMove(rawMove); err != nil {
		c.games[c.current].entries = nil
		return err
	}
	c.games[c.current].entries = append(c.games[c.current].entries, entry)
	return nil
}

// Collapse concatenates every game's entries, sorts them by the book's
// global ordering, and run-length collapses entries sharing a dedup key,
// summing their counts.
func (c *Creator) Collapse() []Entry {
	var entries []Entry
	for _, g := range c.games {
		entries = append(entries, g.entries...)
	}
	sort.Slice(entries, func(i, j int) bool { return sortKeyLess(entries[i], entries[j]) })

	collapsed := make([]Entry, 0, len(entries))
	for i := 0; i < len(entries); {
		j := i + 1
		sum := entries[i].Count
		for j < len(entries) && sameKey(entries[i], entries[j]) {
			sum += entries[j].Count
			j++
		}
		merged := entries[i]
		merged.Count = sum
		collapsed = append(collapsed, merged)
		i = j
	}
	return collapsed
}

// Dump collapses the accumulated entries, writes them to binPath, and
// returns the resulting build summary.
func (c *Creator) Dump(binPath string) (Summary, error) {
	entries := c.Collapse()
	if err := WriteEntries(binPath, entries); err != nil {
		return Summary{}, err
	}
	return Summary{Games: len(c.games), Moves: len(entries)}, nil
}

// WriteEntries writes entries, already in their final order, as a raw
// sequence of 16-byte records.
func WriteEntries(path string, entries []Entry) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	buf := make([]byte, EntrySize)
	for _, e := range entries {
		e.Encode(buf)
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	return w.Flush()
}
